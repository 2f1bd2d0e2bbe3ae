// Package verification implements the human-in-the-loop reconciliation of a
// structured-data draft: field-level user edits, model-proposed corrections,
// and the final schema-driven commit.
package verification

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Lazzzer/structurizer-sub000/internal/common"
)

// WorkingObject is the in-memory structured-data object a user audits during
// one verification session. It is never persisted until commit.
type WorkingObject map[string]any

// NewWorkingObject seeds a session from the extraction's persisted draft.
func NewWorkingObject(draft json.RawMessage) (WorkingObject, error) {
	var m map[string]any
	if err := json.Unmarshal(draft, &m); err != nil {
		return nil, fmt.Errorf("%w: draft is not a JSON object: %v", common.ErrValidation, err)
	}
	return WorkingObject(m), nil
}

// pathSegment is one step of a field path: a key, optionally followed by an
// array index ("items[2]" -> key "items", index 2).
type pathSegment struct {
	key   string
	index int
	hasIx bool
}

func parsePath(path string) ([]pathSegment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty field path", common.ErrValidation)
	}

	var segs []pathSegment
	for _, part := range strings.Split(path, ".") {
		seg := pathSegment{key: part, index: -1}
		if open := strings.IndexByte(part, '['); open >= 0 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("%w: malformed path segment %q", common.ErrValidation, part)
			}
			ix, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil || ix < 0 {
				return nil, fmt.Errorf("%w: malformed array index in %q", common.ErrValidation, part)
			}
			seg.key = part[:open]
			seg.index = ix
			seg.hasIx = true
		}
		if seg.key == "" {
			return nil, fmt.Errorf("%w: malformed path segment %q", common.ErrValidation, part)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// ApplyEdit replaces the leaf addressed by path with value, preserving all
// sibling data. Editing an array element replaces only that index; the index
// must exist (edits correct data, they do not grow arrays).
func (w WorkingObject) ApplyEdit(path string, value any) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}

	var cur any = map[string]any(w)
	for i, seg := range segs {
		last := i == len(segs)-1

		m, ok := cur.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s does not address an object", common.ErrValidation, joinPath(segs[:i]))
		}

		if !seg.hasIx {
			if last {
				m[seg.key] = value
				return nil
			}
			next, ok := m[seg.key]
			if !ok {
				// editing a nested field of a previously-omitted optional object
				child := map[string]any{}
				m[seg.key] = child
				cur = child
				continue
			}
			cur = next
			continue
		}

		arr, ok := m[seg.key].([]any)
		if !ok {
			return fmt.Errorf("%w: %s is not an array", common.ErrValidation, joinPath(segs[:i+1]))
		}
		if seg.index >= len(arr) {
			return fmt.Errorf("%w: index %d out of range for %s (len %d)",
				common.ErrValidation, seg.index, seg.key, len(arr))
		}
		if last {
			arr[seg.index] = value
			return nil
		}
		cur = arr[seg.index]
	}
	return nil
}

func joinPath(segs []pathSegment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		if s.hasIx {
			parts[i] = fmt.Sprintf("%s[%d]", s.key, s.index)
		} else {
			parts[i] = s.key
		}
	}
	return strings.Join(parts, ".")
}

// Clone returns a deep copy, so coercion can normalize values without
// mutating the caller's session state.
func (w WorkingObject) Clone() (WorkingObject, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return WorkingObject(out), nil
}
