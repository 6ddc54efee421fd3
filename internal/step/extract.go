package step

import (
	"strconv"
	"strings"
)

// splitQuoted walks line left to right and partitions it into literal text
// and double-quoted regions. lit receives the text before each quoted region
// and the trailing text after the last one; quoted receives each region's
// inner content, quotes stripped. Quotes pair greedily, never nest, and have
// no escape form; a trailing unmatched quote is left in the literal text.
func splitQuoted(line string, lit func(string), quoted func(string)) {
	i := 0
	for i < len(line) {
		open := strings.IndexByte(line[i:], '"')
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(line[open+1:], '"')
		if end < 0 {
			break
		}
		end += open + 1
		lit(line[i:open])
		quoted(line[open+1 : end])
		i = end + 1
	}
	lit(line[i:])
}

// ExtractQuoted returns the contents of every quoted region in line, in
// left-to-right order. No matches yields an empty sequence, not an error.
func ExtractQuoted(line string) []string {
	var out []string
	splitQuoted(line,
		func(string) {},
		func(q string) { out = append(out, q) })
	return out
}

// ParameterNames generates n positional parameter names: a..z, then a1..z1,
// a2..z2, and so on.
func ParameterNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = parameterName(i)
	}
	return names
}

func parameterName(i int) string {
	name := string(rune('a' + i%26))
	if cycle := i / 26; cycle > 0 {
		name += strconv.Itoa(cycle)
	}
	return name
}

// DeriveName reduces a step line to a method-name identifier. Quoted regions
// and their delimiters drop out entirely; of the rest, only ASCII letters and
// digits survive, in order, case preserved. The result may be empty when the
// line holds no alphanumerics outside quotes.
func DeriveName(line string) string {
	var b strings.Builder
	splitQuoted(line,
		func(lit string) {
			for i := 0; i < len(lit); i++ {
				c := lit[i]
				if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
					b.WriteByte(c)
				}
			}
		},
		func(string) {})
	return b.String()
}
