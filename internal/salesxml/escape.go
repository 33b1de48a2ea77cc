package salesxml

import "strings"

var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape trims surrounding whitespace and escapes the five XML-significant
// characters so the value is safe as element text.
func Escape(value string) string {
	return entityReplacer.Replace(strings.TrimSpace(value))
}

// EscapeMode states whether the builder must escape field values itself.
type EscapeMode int

const (
	// RawValues: every scalar leaf is passed through Escape before emission.
	RawValues EscapeMode = iota
	// PreEscaped: values are emitted verbatim; the caller guarantees they
	// are already safe XML text.
	PreEscaped
)
