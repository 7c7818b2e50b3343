package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"math"
	"text/template"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/tnballo/smallnum"
)

// TypeSpec declares one generated type. Exactly one bound form must be set:
// Max alone (unsigned, covers 0..Max), Bound alone (signed, covers the
// symmetric range -|Bound|..|Bound|), or Min and Smax together (signed,
// covers Min..Smax).
type TypeSpec struct {
	Name  string
	Max   *uint64
	Min   *int64
	Smax  *int64
	Bound *int64
}

// Manifest is the decoded form of a smallnum manifest file.
type Manifest struct {
	Package string
	Types   []TypeSpec
}

// LoadFile reads and decodes a YAML manifest from disk.
func LoadFile(path string) (Manifest, error) {
	return load(file.Provider(path))
}

// LoadBytes decodes a YAML manifest from raw bytes.
func LoadBytes(b []byte) (Manifest, error) {
	return load(rawbytes.Provider(b))
}

func load(p koanf.Provider) (Manifest, error) {
	k := koanf.New(".")
	if err := k.Load(p, yaml.Parser()); err != nil {
		return Manifest{}, fmt.Errorf("load manifest: %w", err)
	}

	m := Manifest{Package: k.String("package")}

	rawTypes, ok := k.Get("types").([]any)
	if k.Exists("types") && !ok {
		return Manifest{}, errors.New("decode manifest: types must be a list of mappings")
	}

	for i, rt := range rawTypes {
		entry, ok := rt.(map[string]any)
		if !ok {
			return Manifest{}, fmt.Errorf("decode manifest: types[%d] must be a mapping", i)
		}

		t := TypeSpec{}
		if name, ok := entry["name"].(string); ok {
			t.Name = name
		}
		where := t.Name
		if where == "" {
			where = fmt.Sprintf("types[%d]", i)
		}

		// Bounds decode through sign-aware conversion rather than a struct
		// unmarshal, which would two's-complement-wrap a negative value
		// into an unsigned field instead of failing.
		_, hasMin := entry["min"]
		if raw, ok := entry["max"]; ok {
			if hasMin {
				// The pair form's upper bound is signed, so fully
				// negative ranges like -100..-40 stay declarable.
				v, err := asInt64(raw)
				if err != nil {
					return Manifest{}, fmt.Errorf("type %s: max: %w", where, err)
				}
				t.Smax = &v
			} else {
				v, err := asUint64(raw)
				if err != nil {
					return Manifest{}, fmt.Errorf("type %s: max: %w", where, err)
				}
				t.Max = &v
			}
		}
		if hasMin {
			v, err := asInt64(entry["min"])
			if err != nil {
				return Manifest{}, fmt.Errorf("type %s: min: %w", where, err)
			}
			t.Min = &v
		}
		if raw, ok := entry["bound"]; ok {
			v, err := asInt64(raw)
			if err != nil {
				return Manifest{}, fmt.Errorf("type %s: bound: %w", where, err)
			}
			t.Bound = &v
		}

		m.Types = append(m.Types, t)
	}

	return m, nil
}

// asUint64 converts a decoded YAML scalar to an unsigned bound. The YAML
// decoder yields int for values fitting the native int and uint64 beyond
// that; anything negative or non-integral is rejected.
func asUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, fmt.Errorf("bound %d cannot be negative", n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("bound %d cannot be negative", n)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("bound %v is not an integer", v)
	}
}

// asInt64 converts a decoded YAML scalar to a signed bound.
func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("bound %d exceeds the signed range", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("bound %v is not an integer", v)
	}
}

// resolve maps the declared bound to a rung and a doc string describing the
// covered range.
func (t TypeSpec) resolve() (smallnum.Kind, string, error) {
	switch {
	case t.Max != nil && t.Min == nil && t.Smax == nil && t.Bound == nil:
		return smallnum.UnsignedKind(*t.Max), fmt.Sprintf("holds values in 0..%d", *t.Max), nil

	case t.Min != nil && t.Smax != nil && t.Max == nil && t.Bound == nil:
		if *t.Min > *t.Smax {
			return smallnum.KindInvalid, "", fmt.Errorf("min %d exceeds max %d", *t.Min, *t.Smax)
		}
		return smallnum.SignedKind(*t.Min, *t.Smax), fmt.Sprintf("holds values in %d..%d", *t.Min, *t.Smax), nil

	case t.Bound != nil && t.Max == nil && t.Min == nil && t.Smax == nil:
		k, err := smallnum.SymmetricKind(*t.Bound)
		if err != nil {
			return smallnum.KindInvalid, "", err
		}
		mag := *t.Bound
		if mag < 0 {
			mag = -mag
		}
		return k, fmt.Sprintf("holds values in -%d..%d", mag, mag), nil

	default:
		return smallnum.KindInvalid, "", errors.New("exactly one of max, bound, or min and max must be set")
	}
}

type renderedType struct {
	Name     string
	TypeName string
	Kind     string
	Doc      string
}

var fileTmpl = template.Must(template.New("smallnum").Parse(`// Code generated by smallnumgen. DO NOT EDIT.

package {{.Package}}

import "github.com/tnballo/smallnum"
{{range .Types}}
// {{.Name}} {{.Doc}} ({{.Kind}}).
type {{.Name}} = smallnum.{{.TypeName}}
{{end}}`))

// Generate resolves every declared bound and renders the generated file,
// gofmt-formatted. Any invalid or unrepresentable declaration returns an
// error and no output.
func Generate(m Manifest) ([]byte, error) {
	if !token.IsIdentifier(m.Package) {
		return nil, fmt.Errorf("invalid package name %q", m.Package)
	}
	if len(m.Types) == 0 {
		return nil, errors.New("manifest declares no types")
	}

	data := struct {
		Package string
		Types   []renderedType
	}{Package: m.Package}

	seen := make(map[string]struct{}, len(m.Types))
	for _, t := range m.Types {
		if !token.IsIdentifier(t.Name) {
			return nil, fmt.Errorf("invalid type name %q", t.Name)
		}
		if _, ok := seen[t.Name]; ok {
			return nil, fmt.Errorf("duplicate type name %q", t.Name)
		}
		seen[t.Name] = struct{}{}

		kind, doc, err := t.resolve()
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", t.Name, err)
		}

		data.Types = append(data.Types, renderedType{
			Name:     t.Name,
			TypeName: kind.TypeName(),
			Kind:     kind.String(),
			Doc:      doc,
		})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render generated code: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}

	return src, nil
}
