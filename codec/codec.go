package codec

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"sigchain/access"
	"sigchain/sig"
)

const pathPrefix = "sigchain/sig."

// ErrNotSerializable marks signatures carrying values with no YAML form,
// such as Func signatures holding a live function.
var ErrNotSerializable = fmt.Errorf("codec: signature is not serializable")

// File is a named collection of accessor definitions.
type File struct {
	Version   string
	Accessors map[string]sig.Signature
}

type rawFile struct {
	Version   string         `yaml:"version"`
	Accessors map[string]any `yaml:"accessors"`
}

// LoadFile loads and parses a YAML accessor file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accessor file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var rf rawFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse accessor YAML: %w", err)
	}
	if rf.Version == "" {
		rf.Version = "1"
	}

	f := &File{Version: rf.Version, Accessors: make(map[string]sig.Signature, len(rf.Accessors))}
	for name, raw := range rf.Accessors {
		s, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("accessor %q: %w", name, err)
		}
		dec, ok := s.(sig.Signature)
		if !ok {
			return nil, fmt.Errorf("accessor %q: not a signature definition", name)
		}
		f.Accessors[name] = dec
	}
	return f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	rf := rawFile{Version: f.Version, Accessors: make(map[string]any, len(f.Accessors))}
	for name, s := range f.Accessors {
		enc, err := encodeValue(s)
		if err != nil {
			return nil, fmt.Errorf("accessor %q: %w", name, err)
		}
		rf.Accessors[name] = enc
	}
	return yaml.Marshal(&rf)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal accessors: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write accessor file %s: %w", path, err)
	}

	return nil
}

// Encode renders a single signature as YAML.
func Encode(s sig.Signature) ([]byte, error) {
	enc, err := encodeValue(s)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(enc)
}

// Decode parses a single YAML signature definition.
func Decode(data []byte) (sig.Signature, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse signature YAML: %w", err)
	}
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	s, ok := v.(sig.Signature)
	if !ok {
		return nil, fmt.Errorf("codec: not a signature definition")
	}
	return s, nil
}

func encodeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, bool, int, int64, float64, string:
		return t, nil
	case sig.Signature:
		return encodeSignature(t)
	case access.SliceSpec:
		return encodeSpec(t), nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			enc, err := encodeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			enc, err := encodeValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: cannot encode %T", ErrNotSerializable, v)
}

func encodeSignature(s sig.Signature) (map[string]any, error) {
	if s.Kind() == sig.KindFunc {
		return nil, fmt.Errorf("%w: %s holds a function value", ErrNotSerializable, s.Kind())
	}
	path, args, opts := sig.Deconstruct(s)
	out := map[string]any{"path": path}
	if len(args) > 0 {
		enc, err := encodeValue(args)
		if err != nil {
			return nil, err
		}
		out["args"] = enc
	}
	if len(opts) > 0 {
		enc, err := encodeValue(map[string]any(opts))
		if err != nil {
			return nil, err
		}
		out["options"] = enc
	}
	return out, nil
}

// encodeSpec renders a selection as a 3-element bound list; open bounds
// become nulls.
func encodeSpec(spec access.SliceSpec) []any {
	deref := func(p *int) any {
		if p == nil {
			return nil
		}
		return *p
	}
	return []any{deref(spec.Start), deref(spec.Stop), deref(spec.Step)}
}

func decodeValue(v any) (any, error) {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			dec, err := decodeValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = dec
		}
		return out, nil
	case map[string]any:
		if isSignatureDef(t) {
			return decodeSignature(t)
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			dec, err := decodeValue(e)
			if err != nil {
				return nil, err
			}
			out[k] = dec
		}
		return out, nil
	}
	return v, nil
}

func isSignatureDef(m map[string]any) bool {
	path, ok := m["path"].(string)
	return ok && strings.HasPrefix(path, pathPrefix)
}

func decodeSignature(m map[string]any) (sig.Signature, error) {
	path := m["path"].(string)
	for k := range m {
		if k != "path" && k != "args" && k != "options" {
			return nil, fmt.Errorf("codec: unknown key %q in %s definition", k, path)
		}
	}

	var args []any
	if raw, ok := m["args"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("codec: args of %s must be a list, got %T", path, raw)
		}
		dec, err := decodeValue(list)
		if err != nil {
			return nil, err
		}
		args = dec.([]any)
	}

	var opts sig.Options
	if raw, ok := m["options"]; ok {
		mm, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("codec: options of %s must be a mapping, got %T", path, raw)
		}
		dec, err := decodeValue(mm)
		if err != nil {
			return nil, err
		}
		opts = sig.Options(dec.(map[string]any))
	}

	s, err := sig.Reconstruct(path, args, opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}
