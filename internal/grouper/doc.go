// Package grouper partitions an ordered collection of documents into
// groups of mutually similar content.
//
// Placement is greedy and first-fit: documents are considered in input
// order, each joins the first existing group whose sampled members all
// score at or above the threshold, and a document that fits nowhere starts
// a new group. Placements are never revisited, so the result depends on
// input order and is an approximation rather than an optimal clustering.
// Within a group only the sampled members are verified against a newcomer,
// so similarity is not transitive across the whole group; with a sample
// size of 1 membership is a star around the group's first member.
//
// Groups are kept sorted by descending size between placements purely as a
// performance heuristic: large groups are the most likely to absorb the
// next document, so checking them first saves comparisons.
package grouper
