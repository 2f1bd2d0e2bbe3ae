package verification

import (
	"regexp"

	"github.com/Lazzzer/structurizer-sub000/internal/llm"
)

// indexPattern strips bracketed indexes from a correction's field path so the
// path can be matched against form fields: "items[0].amount" becomes
// "items.amount". The match is greedy, so a path with several bracketed
// segments, like "a[0].b[1].c", collapses across them onto "a.c".
var indexPattern = regexp.MustCompile(`\[.*\]`)

// StripIndexes removes array indexing from a field path. The operation is
// idempotent; a path without brackets passes through unchanged.
func StripIndexes(path string) string {
	return indexPattern.ReplaceAllString(path, "")
}

// GroupByField buckets model-proposed corrections under their index-stripped
// field path, so a form can surface each bucket next to the field it concerns.
// The corrections themselves keep their original, fully-indexed paths.
func GroupByField(corrections []llm.Correction) map[string][]llm.Correction {
	out := make(map[string][]llm.Correction, len(corrections))
	for _, c := range corrections {
		key := StripIndexes(c.Field)
		out[key] = append(out[key], c)
	}
	return out
}
