package step

import (
	"strconv"
	"strings"
)

// escapePlain escapes s for a plain C# string literal.
func escapePlain(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// escapeInterpolated escapes s for a C# interpolated string literal. Braces
// delimit interpolation holes there, so literal braces must be doubled on
// top of the plain-literal escapes.
func escapeInterpolated(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '{':
			b.WriteString("{{")
		case '}':
			b.WriteString("}}")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// BuildAssignment renders the step-text assignment for a generated body.
// With no parameters the whole line becomes a plain literal. Otherwise each
// quoted region is rebuilt as \"{param}\" inside an interpolated literal,
// parameters bound to quoted regions by position; an index past the end of
// params falls back to a synthesized a<index+1> name.
func BuildAssignment(line string, params []string) string {
	if len(params) == 0 {
		return `var step = "` + escapePlain(line) + `";`
	}

	var b strings.Builder
	b.WriteString(`var step = $"`)
	idx := 0
	splitQuoted(line,
		func(lit string) {
			b.WriteString(escapeInterpolated(lit))
		},
		func(string) {
			name := "a" + strconv.Itoa(idx+1)
			if idx < len(params) {
				name = params[idx]
			}
			b.WriteString(`\"{`)
			b.WriteString(name)
			b.WriteString(`}\"`)
			idx++
		})
	b.WriteString(`";`)
	return b.String()
}
