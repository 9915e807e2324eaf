package paice

import "strings"

// Rule is one compiled entry of the stemming grammar.
type Rule struct {
	Suffix string // stored un-reversed, reads as the word ending
	Intact bool   // may only fire on a word no rule has touched yet
	Remove int    // trailing characters to delete
	Append string // appended after removal
	Restem bool   // '>' terminator: re-enter the loop after applying
	Label  string // "(<line>:<rule text>)", used for traces
}

// Table holds the compiled rules bucketed by the last letter of each
// suffix, so the engine only ever scans rules that could match the
// current stem. A Table is immutable after Compile and safe to share
// between any number of concurrent readers.
type Table struct {
	buckets [26][]*Rule
}

// Rules returns the bucket for letter ch in definition order.
func (t *Table) Rules(ch byte) []*Rule {
	if ch < 'a' || ch > 'z' {
		return nil
	}
	return t.buckets[ch-'a']
}

func (r *Rule) matches(stem string, intact bool) bool {
	if r.Intact && !intact {
		return false
	}
	return strings.HasSuffix(stem, r.Suffix)
}

func (r *Rule) apply(stem string) string {
	keep := len(stem) - r.Remove
	if keep < 0 {
		keep = 0
	}
	return stem[:keep] + r.Append
}
