package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is a single decoded mapping. Nested mappings are Records too, and
// sequences decode to []any.
type Record = map[string]any

// Decode reads every document of a YAML stream from r. A document is either
// one mapping or a sequence of mappings; empty documents are skipped. JSON
// input decodes the same way.
//
// The context is checked before each document.
func Decode(ctx context.Context, r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	records := make([]Record, 0)

	for doc := 0; ; doc++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrDecodeCancelled, err)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("document %d: %w", doc, err))
		}

		switch v := normalize(raw).(type) {
		case nil:
		case Record:
			records = append(records, v)
		case []any:
			for i, item := range v {
				rec, ok := item.(Record)
				if !ok {
					return nil, fmt.Errorf("%w: document %d item %d is %s", ErrUnexpectedShape, doc, i, kindOf(item))
				}
				records = append(records, rec)
			}
		default:
			return nil, fmt.Errorf("%w: document %d is %s", ErrUnexpectedShape, doc, kindOf(v))
		}
	}

	return records, nil
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(ctx context.Context, path string) ([]Record, error) {
	if !SupportsFileExtension(filepath.Ext(path)) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return Decode(ctx, f)
}

// SupportsFileExtension reports whether files with ext can be decoded.
func SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml") || strings.EqualFold(ext, "json")
}

// normalize converts mappings with non-string keys, which yaml produces for
// keys such as 1 or true, into Records.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalize(item)
		}
		return t
	case map[any]any:
		out := make(Record, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalize(item)
		}
		return t
	}
	return v
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "a sequence"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int64, uint64, float64:
		return "a number"
	}
	return fmt.Sprintf("%T", v)
}
