package words

import (
	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"

	"github.com/basedalex/yadro-paice/pkg/paice"
)

// Stemmer reduces one lowercase word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// New picks the stemmer backend named in the config, defaulting to the
// Paice/Husk table.
func New(backend string, table *paice.Table) Stemmer {
	if backend == "snowball" {
		return Snowball{}
	}
	return &Paice{table: table}
}

// Paice stems with a compiled Paice/Husk rule table.
type Paice struct {
	table *paice.Table
}

func NewPaice(table *paice.Table) *Paice {
	return &Paice{table: table}
}

func (p *Paice) Stem(word string) string {
	return p.table.Stem(word)
}

// Snowball stems with the snowball english stemmer.
type Snowball struct{}

func (Snowball) Stem(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

// Fields splits a line into its alphabetic runs, lowercased. Anything
// that is not an ASCII letter separates words and is dropped.
func Fields(line string) []string {
	var words []string
	var cur []byte

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			cur = append(cur, ch)
		case ch >= 'A' && ch <= 'Z':
			cur = append(cur, ch+'a'-'A')
		default:
			if len(cur) > 0 {
				words = append(words, string(cur))
				cur = nil
			}
		}
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}

	return words
}

// Normalize tokenizes s, drops stop words, stems what is left and
// removes duplicates, preserving first-seen order.
func Normalize(s string, stemmer Stemmer) []string {
	seen := make(map[string]struct{})
	res := make([]string, 0)

	for _, word := range Fields(s) {
		if english.IsStopWord(word) {
			continue
		}

		stem := stemmer.Stem(word)
		if stem == "" {
			continue
		}

		if _, ok := seen[stem]; ok {
			continue
		}
		seen[stem] = struct{}{}
		res = append(res, stem)
	}

	return res
}
