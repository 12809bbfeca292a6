package similarity

// Matcher compares two strings and reports a similarity ratio based on the
// total length of their longest matching contiguous blocks. Construction
// indexes the second string, so a Matcher can answer both UpperBound and
// Ratio without re-scanning it.
type Matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

// NewMatcher builds a matcher over the two strings. Comparison is
// rune-based so multi-byte characters score as single units.
func NewMatcher(a, b string) *Matcher {
	m := &Matcher{a: []rune(a), b: []rune(b)}
	m.b2j = make(map[rune][]int, len(m.b))
	for j, r := range m.b {
		m.b2j[r] = append(m.b2j[r], j)
	}
	return m
}

// Ratio is a convenience wrapper for one-shot comparisons.
func Ratio(a, b string) float64 {
	return NewMatcher(a, b).Ratio()
}

type block struct {
	a, b, size int
}

// findLongestMatch locates the longest block matching a[alo:ahi] against
// b[blo:bhi]. Ties go to the earliest block in a, then the earliest in b.
func (m *Matcher) findLongestMatch(alo, ahi, blo, bhi int) block {
	best := block{a: alo, b: blo}
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = next
	}
	return best
}

// matchingBlocks returns every maximal matching block, found greedily: the
// longest match first, then recursively the longest match in the regions
// before and after it. Block order is unspecified; callers only sum sizes.
func (m *Matcher) matchingBlocks() []block {
	type region struct {
		alo, ahi, blo, bhi int
	}
	pending := []region{{0, len(m.a), 0, len(m.b)}}
	var blocks []block
	for len(pending) > 0 {
		reg := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		found := m.findLongestMatch(reg.alo, reg.ahi, reg.blo, reg.bhi)
		if found.size == 0 {
			continue
		}
		blocks = append(blocks, found)
		if reg.alo < found.a && reg.blo < found.b {
			pending = append(pending, region{reg.alo, found.a, reg.blo, found.b})
		}
		if found.a+found.size < reg.ahi && found.b+found.size < reg.bhi {
			pending = append(pending, region{found.a + found.size, reg.ahi, found.b + found.size, reg.bhi})
		}
	}
	return blocks
}

// Ratio returns the exact similarity of the two strings:
// 2*M / (len(a)+len(b)) where M is the total matched length. The result is
// symmetric in a and b, and two empty strings score 1.0.
func (m *Matcher) Ratio() float64 {
	matched := 0
	for _, blk := range m.matchingBlocks() {
		matched += blk.size
	}
	return scaleRatio(matched, len(m.a)+len(m.b))
}

// UpperBound returns a value guaranteed to be >= Ratio, computed in linear
// time from character-frequency overlap: matching blocks can never consume
// a character more often than it occurs in both strings.
func (m *Matcher) UpperBound() float64 {
	if len(m.a)+len(m.b) == 0 {
		return 1.0
	}
	avail := make(map[rune]int, len(m.b2j))
	for r, js := range m.b2j {
		avail[r] = len(js)
	}
	matched := 0
	for _, r := range m.a {
		if avail[r] > 0 {
			avail[r]--
			matched++
		}
	}
	return scaleRatio(matched, len(m.a)+len(m.b))
}

func scaleRatio(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matched) / float64(total)
}
