package paice

import "strings"

// words longer than this are truncated before stemming, matching the
// fixed buffers of the reference implementation
const maxWordLen = 254

// Acceptable reports whether a stem is still a meaningful word form:
// a vowel-initial stem needs at least two letters, any other stem needs
// at least three and one of aeiouy somewhere. Rules producing an
// unacceptable stem are skipped, which stops words being reduced to
// fragments like a lone consonant.
func Acceptable(stem string) bool {
	if stem == "" {
		return false
	}
	switch stem[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return len(stem) >= 2
	}
	return len(stem) >= 3 && strings.ContainsAny(stem, "aeiouy")
}

// Step is one applied rule in a trace.
type Step struct {
	Label string
	Stem  string
}

// Trace records the word a stemming call started from and every rule
// application in order.
type Trace struct {
	Word  string
	Steps []Step
}

// String renders the trace the way the reference stemmer prints its
// debug line: word =(1:sei3y.)=> stem =(2:y1.)=> ...
func (t Trace) String() string {
	var b strings.Builder
	b.WriteString(t.Word)
	for _, s := range t.Steps {
		b.WriteString(" =")
		b.WriteString(s.Label)
		b.WriteString("=> ")
		b.WriteString(s.Stem)
	}
	return b.String()
}

// Stem reduces one lowercase alphabetic word to its stem. Words that
// fail the acceptability gate, or that no rule matches, come back
// unchanged; stemming itself never fails.
func (t *Table) Stem(word string) string {
	stem, _ := t.stem(word, false)
	return stem
}

// StemTrace is Stem plus the ordered trace of applied rules.
func (t *Table) StemTrace(word string) (string, Trace) {
	return t.stem(word, true)
}

func (t *Table) stem(word string, traced bool) (string, Trace) {
	if len(word) > maxWordLen {
		word = word[:maxWordLen]
	}

	var trace Trace
	stem := word

	// never touch words that are too short to stem
	if !Acceptable(stem) {
		return stem, trace
	}
	if traced {
		trace.Word = stem
	}

	intact := true
	restem := true
	for restem {
		// exit the loop unless a continuing rule fires
		restem = false

		last := stem[len(stem)-1]
		for _, rule := range t.Rules(last) {
			if !rule.matches(stem, intact) {
				continue
			}
			candidate := rule.apply(stem)
			if !Acceptable(candidate) {
				continue
			}

			// first acceptable match wins this pass
			stem = candidate
			intact = false
			if traced {
				trace.Steps = append(trace.Steps, Step{Label: rule.Label, Stem: stem})
			}
			restem = rule.Restem
			break
		}
	}

	return stem, trace
}
