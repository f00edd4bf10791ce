package config

import (
	_ "embed"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/vaheed/ctrldoc/internal/docgen"
)

//go:embed types.schema.json
var typesSchema string

var typesValidator = jsonschema.MustCompileString("types.schema.json", typesSchema)

// LoadTypeTable reads a YAML type table such as
//
//	simple: [SimpleStatusResponse, LoginResponse]
//	wrappers: [DataModelResponse, MultiDataModelResponse]
func LoadTypeTable(path string) (docgen.TypeTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return docgen.TypeTable{}, xerrors.Errorf("read types: %w", err)
	}
	return ParseTypeTable(b)
}

// ParseTypeTable validates and decodes a YAML type table.
func ParseTypeTable(b []byte) (docgen.TypeTable, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return docgen.TypeTable{}, xerrors.Errorf("parse types: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := typesValidator.Validate(doc); err != nil {
		return docgen.TypeTable{}, xerrors.Errorf("invalid types: %w", err)
	}
	var t docgen.TypeTable
	if err := yaml.Unmarshal(b, &t); err != nil {
		return docgen.TypeTable{}, xerrors.Errorf("decode types: %w", err)
	}
	return t, nil
}
