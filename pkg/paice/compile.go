package paice

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// GrammarError reports a malformed rule entry. Compilation stops at the
// first bad entry and no table is returned.
type GrammarError struct {
	Line   int // ordinal of the offending entry, counting from 1
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("invalid rule %d: %s", e.Line, e.Reason)
}

// CompileFile compiles the rule grammar stored at path.
func CompileFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open rule file: %w", err)
	}
	defer f.Close()

	table, err := Compile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Compile reads rule entries from r and produces the bucketed table.
// Each entry is a reversed suffix, an optional '*' intact marker, an
// optional remove count, an optional append string and a '>' or '.'
// terminator; the rest of the line is a comment. The pseudo-rule
// "end0." terminates the grammar and is recognised by the label it
// assembles, exactly like a real rule would be.
func Compile(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)

	var readErr error
	next := func() byte {
		b, err := br.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			return 0
		}
		return b
	}

	table := &Table{}
	line := 0

	for {
		ch := next()
		if readErr != nil {
			return nil, fmt.Errorf("cannot read rules: %w", readErr)
		}
		if ch == 0 {
			return table, nil
		}
		if isSpace(ch) {
			continue
		}

		line++
		if ch < 'a' || ch > 'z' {
			return nil, &GrammarError{Line: line, Reason: fmt.Sprintf("rule must start with a suffix letter, got %q", ch)}
		}

		// the bucket letter is the first raw character, which the
		// reversed notation makes the suffix's last letter
		bucket := ch - 'a'
		rule := &Rule{}
		var raw []byte

		var suffix []byte
		for isLower(ch) {
			suffix = append(suffix, ch)
			raw = append(raw, ch)
			ch = next()
		}
		rule.Suffix = reverse(suffix)

		if ch == '*' {
			rule.Intact = true
			raw = append(raw, ch)
			ch = next()
		}

		var digits []byte
		for ch >= '0' && ch <= '9' {
			digits = append(digits, ch)
			raw = append(raw, ch)
			ch = next()
		}
		if len(digits) > 0 {
			n, err := strconv.Atoi(string(digits))
			if err != nil {
				return nil, &GrammarError{Line: line, Reason: fmt.Sprintf("remove count %s out of range", digits)}
			}
			rule.Remove = n
		}

		var app []byte
		for isLower(ch) {
			app = append(app, ch)
			raw = append(raw, ch)
			ch = next()
		}
		rule.Append = string(app)

		// a failed read yields zero bytes inside the entry; report the
		// stream error, not a grammar error
		if readErr != nil {
			return nil, fmt.Errorf("cannot read rules: %w", readErr)
		}

		switch ch {
		case '>':
			rule.Restem = true
		case '.':
		default:
			return nil, &GrammarError{Line: line, Reason: fmt.Sprintf("terminator must be '>' or '.', got %q", ch)}
		}
		raw = append(raw, ch)

		rule.Label = fmt.Sprintf("(%d:%s)", line, raw)

		if strings.Contains(rule.Label, ":end0.)") {
			// end-of-rules pseudo-entry, the rest of the stream is ignored
			return table, nil
		}

		table.buckets[bucket] = append(table.buckets[bucket], rule)

		// rest of the line is a comment
		for ch != 0 && ch != '\n' {
			ch = next()
		}
	}
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func reverse(b []byte) string {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
