// Package similarity scores how alike two pieces of text are.
//
// Scores are ratios in [0, 1] computed from the longest matching blocks
// shared by the two inputs, so 1.0 means character-for-character identity
// and values decay smoothly as content diverges. Every character
// participates in the score; there is no junk or stopword heuristic, since
// log content has no natural stopword set.
//
// The Matcher also exposes a cheap upper bound on the ratio so callers
// comparing one document against many candidates can skip the expensive
// exact computation when the bound already falls below their threshold.
package similarity
