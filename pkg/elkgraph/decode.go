package elkgraph

import (
	"encoding/json"
	"fmt"

	"github.com/mark/elkgo/pkg/elkerr"
)

// ParseID validates and coerces a decoded JSON id value into its string
// form, per spec.md §4.2: strings and integral numbers are accepted;
// booleans, arrays, mappings, and non-integral numbers are not. Failures
// are InvalidGraph errors (spec.md §7: "non-coercible id" is its own named
// example of that kind), so callers can branch on the taxonomy across the
// decode boundary, not just after validate.Validate.
func ParseID(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", elkerr.NewInvalidGraph("element id is missing")
	case bool:
		return "", elkerr.NewInvalidGraph("element id must be a string or integer, got boolean")
	case string:
		return val, nil
	case float64:
		if val != float64(int64(val)) {
			return "", elkerr.NewInvalidGraph(fmt.Sprintf("element id must be integral, got %v", val))
		}
		return fmt.Sprintf("%d", int64(val)), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return fmt.Sprintf("%d", i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return "", elkerr.NewInvalidGraph(fmt.Sprintf("element id must be a string or integer, got %v", val))
		}
		if f != float64(int64(f)) {
			return "", elkerr.NewInvalidGraph(fmt.Sprintf("element id must be integral, got %v", f))
		}
		return fmt.Sprintf("%d", int64(f)), nil
	default:
		return "", elkerr.NewInvalidGraph(fmt.Sprintf("element id must be a string or integer, got %T", v))
	}
}

// rawIDHolder captures just the id field as a raw value so it can be
// coerced with ParseID before the rest of a Container/Port is decoded.
type rawIDHolder struct {
	ID interface{} `json:"id"`
}

// UnmarshalJSON accepts string or integral-number ids, coercing them to
// their decimal string form, and rejects booleans/arrays/objects/non-
// integral numbers (spec.md §4.2, §8 scenario 12).
func (c *Container) UnmarshalJSON(data []byte) error {
	type alias Container
	aux := &struct {
		ID interface{} `json:"id"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	if aux.ID == nil {
		return nil // id presence is enforced by validate.Validate at the root
	}
	id, err := ParseID(aux.ID)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

// UnmarshalJSON mirrors Container's id coercion for ports.
func (p *Port) UnmarshalJSON(data []byte) error {
	type alias Port
	aux := &struct {
		ID interface{} `json:"id"`
		*alias
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	if aux.ID == nil {
		return nil
	}
	id, err := ParseID(aux.ID)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Decode parses a JSON graph description into a Container tree. It does
// not run validate.Validate or normalize edges — callers (typically
// pkg/elk.Driver.Layout) are responsible for that, matching spec.md §4.4
// step 4's ordering (validate, then normalize, before any layout phase).
func Decode(data []byte) (*Container, error) {
	var root Container
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Encode serializes a Container tree back to JSON.
func Encode(root *Container) ([]byte, error) {
	return json.MarshalIndent(root, "", "  ")
}
