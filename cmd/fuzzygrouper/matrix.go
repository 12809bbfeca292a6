package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mossblaser/fuzzy-grouper/internal/corpus"
	"github.com/mossblaser/fuzzy-grouper/internal/similarity"
)

const similarityDigits = 3

// renderMatrix renders the pairwise similarity of each group's exemplar
// against every other group's exemplar as an upper-triangular table.
func renderMatrix(groups [][]string, docs []corpus.Document) string {
	filtered := make(map[string]string, len(docs))
	for _, doc := range docs {
		filtered[doc.Name] = doc.Filtered
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(groups)+1)
	header[0] = "GROUP"
	for j := range groups {
		header[j+1] = fmt.Sprintf("%d", j)
	}
	tw.AppendHeader(header)

	for i, groupA := range groups {
		row := make(table.Row, len(groups)+1)
		row[0] = fmt.Sprintf("%d", i)
		for j, groupB := range groups {
			switch {
			case j > i:
				ratio := similarity.Ratio(filtered[groupA[0]], filtered[groupB[0]])
				row[j+1] = fmt.Sprintf("%1.*f", similarityDigits, ratio)
			case j == i:
				row[j+1] = fmt.Sprintf("%1.*f", similarityDigits, 1.0)
			default:
				row[j+1] = ""
			}
		}
		tw.AppendRow(row)
	}

	columnConfigs := make([]table.ColumnConfig, 0, len(groups)+1)
	for col := 0; col <= len(groups); col++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      col + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
