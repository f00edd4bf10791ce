// Package patterns holds the text recognition rules used to find handler
// declarations in controller sources. Each rule is a standalone compiled
// regexp so it can be exercised on its own.
package patterns

import "regexp"

const (
	// SignatureSource matches one annotated handler declaration.
	// Groups: verb, path, access modifier, return type, function name, raw parameter list.
	SignatureSource = `@(Post|Put|Get)Mapping\(path\s*=\s*"(.+?)".*?\)\s+(public|private|protected)\s+(\S+)\s+([^(]+)\((.+?)\)`

	// ParamSource matches one @RequestParam parameter. Groups: type, name.
	ParamSource = `@RequestParam\s+(.+?)\s+([A-Za-z]+)`

	// NestedTypeSource matches Wrapper<Inner>. Group: inner type.
	NestedTypeSource = `^\w+<(.+?)>`
)

// Capture group indexes of Signature.
const (
	SigVerb = iota + 1
	SigPath
	SigAccess
	SigReturnType
	SigFuncName
	SigParams
)

// Capture group indexes of Param.
const (
	ParamType = iota + 1
	ParamName
)

var (
	Signature  = regexp.MustCompile(SignatureSource)
	Param      = regexp.MustCompile(ParamSource)
	NestedType = regexp.MustCompile(NestedTypeSource)
)
