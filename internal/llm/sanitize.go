package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

// SanitizeDraft cleans a model-produced draft so a mostly-correct document can
// still validate:
//   - removes keys the schema does not declare (additionalProperties = false friendliness)
//   - drops null values and empty strings on non-required fields
//   - trims string leaves
//
// It never invents data; required fields are left untouched so validation can
// flag them.
func SanitizeDraft(raw []byte, schema map[string]any, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	props, _ := schema["properties"].(map[string]any)
	required := map[string]struct{}{}
	if reqs, ok := schema["required"].([]string); ok {
		for _, r := range reqs {
			required[r] = struct{}{}
		}
	}

	var dropped []string

	// unknown keys
	for k := range maps.Clone(m) {
		if _, ok := props[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// nulls, empty optionals, string trimming
	for k, v := range maps.Clone(m) {
		_, isRequired := required[k]
		switch t := v.(type) {
		case nil:
			if !isRequired {
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			}
		case string:
			s := strings.TrimSpace(t)
			if s == "" && !isRequired {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		case map[string]any:
			m[k] = sanitizeNested(k, t, &dropped)
		case []any:
			for i, el := range t {
				if obj, ok := el.(map[string]any); ok {
					t[i] = sanitizeNested(fmt.Sprintf("%s[%d]", k, i), obj, &dropped)
				}
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.structure.sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// sanitizeNested cleans an inner object, recording every removal in dropped
// under its prefix-qualified path so the audit list covers the whole draft.
func sanitizeNested(prefix string, obj map[string]any, dropped *[]string) map[string]any {
	for k, v := range maps.Clone(obj) {
		path := prefix + "." + k
		switch t := v.(type) {
		case nil:
			delete(obj, k)
			*dropped = append(*dropped, path+"(null)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(obj, k)
				*dropped = append(*dropped, path+"(empty)")
			} else {
				obj[k] = s
			}
		case map[string]any:
			obj[k] = sanitizeNested(path, t, dropped)
		}
	}
	return obj
}
