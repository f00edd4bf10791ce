package docgen

import (
	"errors"
	"strings"

	"golang.org/x/xerrors"

	"github.com/vaheed/ctrldoc/internal/patterns"
)

// DocBase is the relative location of the generated data-model pages.
const DocBase = "../com/foodmobile/server/datamodels/"

// ErrMalformedReturnType is returned when a return type starts with a known
// wrapper name but carries no <Inner> type.
var ErrMalformedReturnType = errors.New("malformed return type")

// TypeTable lists the return types that get documentation links.
// Simple names match exactly; wrapper names match as a prefix and link both
// the wrapper and its inner type.
type TypeTable struct {
	Simple   []string `yaml:"simple"`
	Wrappers []string `yaml:"wrappers"`
}

// DefaultTypeTable returns the table used when no types file is configured.
func DefaultTypeTable() TypeTable {
	return TypeTable{
		Simple:   []string{"SimpleStatusResponse", "LoginResponse"},
		Wrappers: []string{"DataModelResponse", "MultiDataModelResponse"},
	}
}

// Link renders a Markdown link to the data-model page of name.
func Link(name string) string {
	return "[" + name + "](" + DocBase + name + ".html)"
}

// Resolver maps raw return types to documentation links.
type Resolver struct {
	simple   map[string]struct{}
	wrappers []string
}

func NewResolver(t TypeTable) *Resolver {
	r := &Resolver{simple: make(map[string]struct{}, len(t.Simple))}
	for _, s := range t.Simple {
		r.simple[s] = struct{}{}
	}
	r.wrappers = append(r.wrappers, t.Wrappers...)
	return r
}

// Resolve returns the link text for returnType, or "" when the type is not
// in the table. Wrappers are unwrapped one level only.
func (r *Resolver) Resolve(returnType string) (string, error) {
	if _, ok := r.simple[returnType]; ok {
		return Link(returnType), nil
	}
	for _, w := range r.wrappers {
		if !strings.HasPrefix(returnType, w) {
			continue
		}
		m := patterns.NestedType.FindStringSubmatch(returnType)
		if m == nil {
			return "", xerrors.Errorf("return type %q: %w", returnType, ErrMalformedReturnType)
		}
		return Link(w) + " " + Link(m[1]), nil
	}
	return "", nil
}
