package docgen

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/xerrors"
)

// DefaultBlockTemplate renders one handler section.
const DefaultBlockTemplate = "#### {{ .Method }} {{ .Path }}\n---\n{{ .Params }}\n---\n{{ .Link }}\n"

// Block is the data handed to the block template.
type Block struct {
	Method     string
	Path       string
	Params     string
	Link       string
	ReturnType string
	FuncName   string
	Line       int
}

// Assembler renders handler blocks.
type Assembler struct {
	tmpl *template.Template
}

// NewAssembler parses text as the block template; empty text selects
// DefaultBlockTemplate. Sprig functions are available to custom templates.
func NewAssembler(text string) (*Assembler, error) {
	if text == "" {
		text = DefaultBlockTemplate
	}
	t, err := template.New("block").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, xerrors.Errorf("parse block template: %w", err)
	}
	return &Assembler{tmpl: t}, nil
}

func (a *Assembler) Render(b Block) (string, error) {
	var sb strings.Builder
	if err := a.tmpl.Execute(&sb, b); err != nil {
		return "", xerrors.Errorf("render %s %s: %w", b.Method, b.Path, err)
	}
	return sb.String(), nil
}

// Join concatenates rendered blocks without separators.
func Join(blocks []string) string {
	return strings.Join(blocks, "")
}
