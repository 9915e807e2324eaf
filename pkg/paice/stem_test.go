package paice

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptable(t *testing.T) {
	tests := []struct {
		stem string
		want bool
	}{
		{"", false},
		{"a", false},
		{"ab", true},
		{"at", true},
		{"rb", false},
		{"rub", true},
		{"sky", true},
		{"tsk", false},
		{"owl", true},
		{"crwth", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Acceptable(test.stem), "stem %q", test.stem)
	}
}

func loadTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := CompileFile("testdata/stemrules.txt")
	require.NoError(t, err)
	return table
}

func TestStem(t *testing.T) {
	table := loadTestTable(t)

	tests := []struct {
		name string
		word string
		want string
	}{
		{"terminal rule stops stemming", "ponies", "pony"},
		{"continuing rule restems", "splitting", "split"},
		{"intact rule skipped after first application", "dressings", "dress"},
		{"unacceptable candidate falls through to next rule", "shed", "shet"},
		{"remove count clamped to stem length", "cat", "nip"},
		{"no matching rule", "zigzag", "zigzag"},
		{"unacceptable word returned verbatim", "my", "my"},
		{"match rejected by acceptability leaves word alone", "sly", "sly"},
		{"word outside every bucket", "hello", "hello"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, table.Stem(test.word))
		})
	}
}

func TestStemFirstMatchWins(t *testing.T) {
	table := loadTestTable(t)

	// both sei3y. and s*1> match "ponies"; definition order decides
	stem := table.Stem("ponies")
	assert.Equal(t, "pony", stem)
}

func TestStemProtectRule(t *testing.T) {
	table := loadTestTable(t)

	// ylp0. matches, removes nothing and terminates, shielding -ply
	// from the yl2> rule that follows it
	stem, trace := table.StemTrace("reply")
	assert.Equal(t, "reply", stem)
	require.Len(t, trace.Steps, 1)
	assert.Equal(t, "(8:ylp0.)", trace.Steps[0].Label)
}

func TestStemTrace(t *testing.T) {
	table := loadTestTable(t)

	t.Run("every application is recorded in order", func(t *testing.T) {
		stem, trace := table.StemTrace("splitting")
		require.Equal(t, "split", stem)

		assert.Equal(t, "splitting", trace.Word)
		require.Len(t, trace.Steps, 2)
		assert.Equal(t, "(3:gni3>)", trace.Steps[0].Label)
		assert.Equal(t, "splitt", trace.Steps[0].Stem)
		assert.Equal(t, "(4:tt1.)", trace.Steps[1].Label)
		assert.Equal(t, "split", trace.Steps[1].Stem)

		assert.Equal(t, "splitting =(3:gni3>)=> splitt =(4:tt1.)=> split", trace.String())
	})

	t.Run("unacceptable word leaves the trace empty", func(t *testing.T) {
		stem, trace := table.StemTrace("my")
		assert.Equal(t, "my", stem)
		assert.Equal(t, "", trace.Word)
		assert.Empty(t, trace.Steps)
	})
}

func TestStemBucketIsolation(t *testing.T) {
	table := loadTestTable(t)

	// the s-bucket rules can never fire on a word ending in y
	for _, rule := range table.Rules('s') {
		assert.Equal(t, byte('s'), rule.Suffix[len(rule.Suffix)-1])
	}
	assert.Equal(t, "pony", table.Stem("pony"))
}

func TestStemTruncatesLongWords(t *testing.T) {
	table := loadTestTable(t)

	word := strings.Repeat("b", 300) + "a"
	stem := table.Stem(word)
	assert.Equal(t, 254, len(stem))
}

func TestStemConcurrent(t *testing.T) {
	table := loadTestTable(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "pony", table.Stem("ponies"))
			assert.Equal(t, "split", table.Stem("splitting"))
		}()
	}
	wg.Wait()
}
