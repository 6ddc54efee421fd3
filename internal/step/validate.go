package step

import (
	"errors"
	"strings"
)

// The three validation failures. The exact strings are user-facing: the
// host shows them (and copies them) verbatim when a line is rejected.
var (
	ErrEmptyLine        = errors.New("the selected line is empty")
	ErrWrongConjunction = errors.New("a step cannot start with And or Or")
	ErrMissingKeyword   = errors.New("the line must start with Given, When or Then")
)

var keywords = []string{"Given", "When", "Then"}

var conjunctions = []string{"And", "Or"}

// Validate checks that raw holds a single usable step line and returns it
// trimmed, original casing preserved.
func Validate(raw string) (string, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", ErrEmptyLine
	}
	if _, ok := leadingWord(line, conjunctions); ok {
		return "", ErrWrongConjunction
	}
	if _, ok := leadingWord(line, keywords); !ok {
		return "", ErrMissingKeyword
	}
	return line, nil
}

// ParseKeyword splits a step line into its title-cased keyword and the
// trimmed remainder. It re-checks the keyword rule itself, so it stays
// correct when called without prior validation.
func ParseKeyword(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	keyword, ok := leadingWord(trimmed, keywords)
	if !ok {
		return "", "", ErrMissingKeyword
	}
	remainder := strings.TrimSpace(trimmed[len(keyword):])
	return keyword, remainder, nil
}

// leadingWord reports which of words starts line, case-insensitively and at
// a word boundary: the match must be followed by whitespace or end-of-string,
// so "Andrew" never matches "And". Returns the canonical (title-case) word.
func leadingWord(line string, words []string) (string, bool) {
	for _, w := range words {
		if len(line) < len(w) {
			continue
		}
		if !strings.EqualFold(line[:len(w)], w) {
			continue
		}
		if len(line) == len(w) || isSpace(line[len(w)]) {
			return w, true
		}
	}
	return "", false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
