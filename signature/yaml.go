package signature

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/hint"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a set of signature declarations.
//
//	signatures:
//	  - name: f
//	    params:
//	      - name: r
//	        type: (int, string)
//	        default: foo
//	      - name: rest
//	        type: "[any]"
//	        variadic: true
//	    returns: "[int]"
type Document struct {
	Signatures []Declaration `json:"signatures" yaml:"signatures"`
}

// Declaration declares one callable.
type Declaration struct {
	Name    string             `json:"name"    yaml:"name"`
	Params  []ParamDeclaration `json:"params"  yaml:"params"`
	Returns string             `json:"returns" yaml:"returns"`
}

// ParamDeclaration declares one parameter. An empty Type leaves the
// parameter unannotated. Default is only applied when the key is present;
// an explicit null declares a nil default.
type ParamDeclaration struct {
	Name     string    `json:"name"     yaml:"name"`
	Type     string    `json:"type"     yaml:"type"`
	Default  yaml.Node `json:"-"        yaml:"default"`
	Variadic bool      `json:"variadic" yaml:"variadic"`
}

// Signature resolves the declaration's type names through reg, or through
// the default registry when reg is nil.
func (d Declaration) Signature(reg *Registry) (Signature, error) {
	if reg == nil {
		reg = hint.DefaultRegistry()
	}

	if d.Name == "" {
		return Signature{}, fmt.Errorf("%w: declaration without a name", errors.ErrInvalidSignature)
	}

	ret, err := hint.Parse(reg, d.Returns)
	if err != nil {
		return Signature{}, fmt.Errorf("%s: returns: %w", d.Name, err)
	}

	sig := Signature{
		Name:   d.Name,
		Params: make([]Param, len(d.Params)),
		Return: ret,
	}

	for i, pd := range d.Params {
		spec, err := hint.Parse(reg, pd.Type)
		if err != nil {
			return Signature{}, fmt.Errorf("%s: parameter %q: %w", d.Name, pd.Name, err)
		}

		p := Param{
			Name:     pd.Name,
			Spec:     spec,
			Variadic: pd.Variadic,
		}

		if pd.Default.Kind != 0 {
			var value any

			if err := pd.Default.Decode(&value); err != nil {
				return Signature{}, fmt.Errorf("%s: parameter %q: failed to decode default: %w", d.Name, pd.Name, err)
			}

			p.Default = DefaultOf(value)
		}

		sig.Params[i] = p
	}

	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}

	return sig, nil
}

// Registry is the type-name registry declarations resolve against.
type Registry = hint.Registry

// ParseYAML decodes a Document from data and resolves every declaration.
// Declared names must be unique.
func ParseYAML(data []byte, reg *Registry) (map[string]Signature, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	out := make(map[string]Signature, len(doc.Signatures))

	for _, decl := range doc.Signatures {
		if _, dup := out[decl.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate declaration %q", errors.ErrInvalidSignature, decl.Name)
		}

		sig, err := decl.Signature(reg)
		if err != nil {
			return nil, err
		}

		out[decl.Name] = sig
	}

	return out, nil
}

// LoadYAML reads a Document from r. See ParseYAML.
func LoadYAML(r io.Reader, reg *Registry) (map[string]Signature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read signatures: %w", err)
	}

	return ParseYAML(data, reg)
}

// LoadYAMLFS reads a Document from path in fsys, such as an embed.FS.
func LoadYAMLFS(fsys fs.FS, path string, reg *Registry) (map[string]Signature, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signatures from FS: %w", err)
	}

	return ParseYAML(data, reg)
}
