package docgen

import (
	"strings"

	"github.com/vaheed/ctrldoc/internal/patterns"
)

// ParamEntry is one @RequestParam parameter of a handler.
type ParamEntry struct {
	TypeName  string
	ParamName string
}

// Params returns the @RequestParam entries of a raw parameter list in order.
// Path variables, request bodies and other parameters are skipped.
func Params(raw string) []ParamEntry {
	var out []ParamEntry
	for _, m := range patterns.Param.FindAllStringSubmatch(raw, -1) {
		out = append(out, ParamEntry{TypeName: m[patterns.ParamType], ParamName: m[patterns.ParamName]})
	}
	return out
}

// RenderParams renders the @RequestParam entries of raw, one
// "- name : Type" line each. No entries render as "".
func RenderParams(raw string) string {
	return renderEntries(Params(raw))
}

func renderEntries(entries []ParamEntry) string {
	var b strings.Builder
	for _, p := range entries {
		b.WriteString("- ")
		b.WriteString(p.ParamName)
		b.WriteString(" : ")
		b.WriteString(p.TypeName)
		b.WriteString("\n")
	}
	return b.String()
}
