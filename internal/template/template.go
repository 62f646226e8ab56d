// internal/template/template.go
package template

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
)

// Package template loads report template files into declaration values for
// the transform pipeline. JSON templates decode directly into kind-tagged
// maps; XML templates map their element vocabulary onto the same shapes.
// The loader knows nothing about layout semantics; bad declarations are the
// pipeline's to reject.

// Load reads the template at path, picking the codec from the file
// extension. The returned declaration feeds the transformer unchanged.
func Load(path string) (any, error) {
	var codec func(io.Reader) (any, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		codec = LoadJSON
	case ".xml":
		codec = func(r io.Reader) (any, error) { return LoadXML(r) }
	default:
		return nil, fmt.Errorf("unsupported template format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer f.Close()

	declaration, err := codec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return declaration, nil
}

// LoadJSON decodes a JSON template. The root may be any declaration form: a
// kind-tagged layout, a band object, or a list of bands.
func LoadJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	var declaration any
	if err := json.Unmarshal(data, &declaration); err != nil {
		return nil, fmt.Errorf("parsing JSON template: %w", err)
	}
	return declaration, nil
}
