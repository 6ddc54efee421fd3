package step

import "strings"

// captureGroup matches any run of non-quote characters, captured. The quotes
// are doubled because the pattern lives inside a C# verbatim string literal.
const captureGroup = `""([^""]*)""`

// Definition is a generated step definition.
type Definition struct {
	Keyword string // Given, When or Then
	Pattern string // the full binding-attribute line
	Method  string // derived method name
	Source  string // the validated source line
	Text    string // the complete generated block, CRLF line endings
}

// BindingAttribute rewrites each quoted region of remainder into a capture
// group and wraps the pattern in a [Keyword(@"...")] binding attribute.
func BindingAttribute(keyword, remainder string) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(keyword)
	b.WriteString(`(@"`)
	splitQuoted(remainder,
		func(lit string) {
			b.WriteString(strings.ReplaceAll(lit, `"`, `""`))
		},
		func(string) {
			b.WriteString(captureGroup)
		})
	b.WriteString(`")]`)
	return b.String()
}

// Generate runs the whole pipeline on one raw line: validate, then assemble
// the step-definition stub. Validation failure short-circuits with one of
// the three sentinel errors and no partial output. Output is deterministic:
// the same input always produces byte-identical text.
func Generate(raw string) (Definition, error) {
	line, err := Validate(raw)
	if err != nil {
		return Definition{}, err
	}
	return assemble(line), nil
}

func assemble(line string) Definition {
	quoted := ExtractQuoted(line)
	params := ParameterNames(len(quoted))

	def := Definition{
		Method: DeriveName(line),
		Source: line,
	}

	var b strings.Builder
	// Unreachable post-validation, but ParseKeyword is independently
	// correct; on failure the attribute line is simply omitted.
	if keyword, remainder, err := ParseKeyword(line); err == nil {
		def.Keyword = keyword
		def.Pattern = BindingAttribute(keyword, remainder)
		b.WriteString(def.Pattern)
		b.WriteString("\r\n")
	}

	b.WriteString("public bool ")
	b.WriteString(def.Method)
	b.WriteString("(")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("string ")
		b.WriteString(p)
	}
	b.WriteString(")\r\n")
	b.WriteString("{\r\n")
	b.WriteString("    ")
	b.WriteString(BuildAssignment(line, params))
	b.WriteString("\r\n")
	b.WriteString("\r\n")
	b.WriteString("    var result = CheckOutput(step);\r\n")
	// The true/false wiring is scaffolding for the author to edit.
	b.WriteString("    return result ? false : false;\r\n")
	b.WriteString("}\r\n")

	def.Text = b.String()
	return def
}
