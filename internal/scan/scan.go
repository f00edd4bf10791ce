// Package scan finds handler declarations in controller source text.
package scan

import (
	"strings"

	"github.com/vaheed/ctrldoc/internal/patterns"
)

// Verb is the HTTP method named by a handler's mapping annotation.
type Verb string

const (
	Post Verb = "Post"
	Put  Verb = "Put"
	Get  Verb = "Get"
)

// HandlerRecord is one recognized handler declaration. Access and FuncName
// are kept for logging only.
type HandlerRecord struct {
	Method     Verb
	Path       string
	Access     string
	ReturnType string
	FuncName   string
	ParamsRaw  string

	// Offset is the byte offset of the annotation in the source; Line is its 1-based line.
	Offset int
	Line   int
}

// Extract returns one record per non-overlapping signature match in text,
// in source order. Text without handlers yields a nil slice.
func Extract(text string) []HandlerRecord {
	idx := patterns.Signature.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	out := make([]HandlerRecord, 0, len(idx))
	line, last := 1, 0
	for _, m := range idx {
		group := func(n int) string { return text[m[2*n]:m[2*n+1]] }
		line += strings.Count(text[last:m[0]], "\n")
		last = m[0]
		out = append(out, HandlerRecord{
			Method:     Verb(group(patterns.SigVerb)),
			Path:       group(patterns.SigPath),
			Access:     group(patterns.SigAccess),
			ReturnType: group(patterns.SigReturnType),
			FuncName:   strings.TrimSpace(group(patterns.SigFuncName)),
			ParamsRaw:  group(patterns.SigParams),
			Offset:     m[0],
			Line:       line,
		})
	}
	return out
}
