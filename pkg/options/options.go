// Package options implements the ELK-style option store: parsing,
// resolving, scoping, and querying layout options (spec.md §4.1). It is
// grounded on _examples/original_source/pyelk/options.py, translated into
// idiomatic Go (typed parse results instead of ad hoc dicts, an
// OptionHolder interface instead of duck-typed dict access).
package options

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// OptionHolder is any graph element that carries a layoutOptions map and a
// properties map — the two places option lookup checks, under all key
// variants (spec.md §4.1 "Lookup on an element checks first the element's
// own layoutOptions map, then a properties map").
type OptionHolder interface {
	GetLayoutOptions() map[string]interface{}
	GetProperties() map[string]interface{}
}

// Padding is the left/top/right/bottom padding around a container's
// children.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// Vector is a 2D point parsed from the "(x, y)" option syntax.
type Vector struct {
	X, Y float64
}

// Defaults mirrors pyelk's DEFAULTS: baseline values used when nothing
// more specific is set. Per spec.md §9's third open question, the
// documented default for elk.direction is RIGHT but the observed runtime
// default is DOWN; GetDirection implements the latter (see DESIGN.md).
var Defaults = map[string]interface{}{
	"elk.direction":                               "RIGHT",
	"elk.padding":                                  "[left=12, top=12, right=12, bottom=12]",
	"elk.spacing.nodeNode":                         20.0,
	"elk.layered.spacing.nodeNodeBetweenLayers":    20.0,
	"elk.spacing.edgeNode":                         10.0,
	"elk.spacing.edgeEdge":                         10.0,
	"elk.layered.spacing.edgeNodeBetweenLayers":    10.0,
	"elk.layered.spacing.edgeEdgeBetweenLayers":    10.0,
	"elk.nodeLabels.placement":                     "",
	"elk.portConstraints":                          "UNDEFINED",
	"elk.layered.crossingMinimization.strategy":    "LAYER_SWEEP",
	"elk.layered.layering.strategy":                "LONGEST_PATH",
	"elk.hierarchyHandling":                        "SEPARATE_CHILDREN",
}

// Aliases maps short option names to their canonical dot-qualified form.
var Aliases = map[string]string{
	"algorithm":        "elk.algorithm",
	"direction":        "elk.direction",
	"spacing":          "elk.spacing.nodeNode",
	"layering.strategy": "elk.layered.layering.strategy",
	"hierarchyHandling": "elk.hierarchyHandling",
	"portConstraints":   "elk.portConstraints",
	"port.side":         "elk.port.side",
	"port.index":        "elk.port.index",
	"layerConstraint":   "elk.layered.layering.layerConstraint",
	"position":          "elk.position",
	"bendPoints":        "elk.bendPoints",
}

// AlgorithmAliases maps short algorithm names (and their elk.-prefixed
// variants) to their fully qualified org.eclipse.elk.* id.
var AlgorithmAliases = map[string]string{
	"layered":          "org.eclipse.elk.layered",
	"elk.layered":      "org.eclipse.elk.layered",
	"stress":           "org.eclipse.elk.stress",
	"elk.stress":       "org.eclipse.elk.stress",
	"mrtree":           "org.eclipse.elk.mrtree",
	"elk.mrtree":       "org.eclipse.elk.mrtree",
	"radial":           "org.eclipse.elk.radial",
	"elk.radial":       "org.eclipse.elk.radial",
	"force":            "org.eclipse.elk.force",
	"elk.force":        "org.eclipse.elk.force",
	"disco":            "org.eclipse.elk.disco",
	"elk.disco":        "org.eclipse.elk.disco",
	"sporeOverlap":     "org.eclipse.elk.sporeOverlap",
	"elk.sporeOverlap": "org.eclipse.elk.sporeOverlap",
	"sporeCompaction":     "org.eclipse.elk.sporeCompaction",
	"elk.sporeCompaction": "org.eclipse.elk.sporeCompaction",
	"rectpacking":      "org.eclipse.elk.rectpacking",
	"elk.rectpacking":  "org.eclipse.elk.rectpacking",
	"fixed":            "org.eclipse.elk.fixed",
	"elk.fixed":        "org.eclipse.elk.fixed",
}

// ResolveAlgorithm resolves a short or elk.-prefixed algorithm name to its
// fully qualified id. Unknown ids (including already-qualified ones) are
// returned unchanged; rejection happens at provider lookup (spec.md §4.1).
func ResolveAlgorithm(name string) string {
	if name == "" {
		return "org.eclipse.elk.layered"
	}
	if full, ok := AlgorithmAliases[name]; ok {
		return full
	}
	return name
}

// ResolveOptionKey expands a short alias or "org.eclipse."-prefixed key to
// the canonical "elk."-qualified key.
func ResolveOptionKey(key string) string {
	if full, ok := Aliases[key]; ok {
		return full
	}
	if strings.HasPrefix(key, "org.eclipse.elk.") {
		return strings.TrimPrefix(key, "org.eclipse.")
	}
	return key
}

// ParsePadding parses the ELK padding syntax: "[left=L, top=T, right=R,
// bottom=B]", with outer brackets optional and missing fields defaulting
// to 0.
func ParsePadding(value string) (Padding, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var p Padding
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return Padding{}, fmt.Errorf("invalid padding entry %q", part)
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return Padding{}, fmt.Errorf("invalid padding value in %q: %w", part, err)
		}
		switch key {
		case "left":
			p.Left = val
		case "top":
			p.Top = val
		case "right":
			p.Right = val
		case "bottom":
			p.Bottom = val
		default:
			return Padding{}, fmt.Errorf("unknown padding field %q", key)
		}
	}
	return p, nil
}

// ParseVector parses "(x, y)" into a Vector.
func ParseVector(value string) (Vector, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Vector{}, fmt.Errorf("invalid vector %q", value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("invalid vector x in %q: %w", value, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Vector{}, fmt.Errorf("invalid vector y in %q: %w", value, err)
	}
	return Vector{X: x, Y: y}, nil
}

var vectorChainEntry = regexp.MustCompile(`\{([^}]+)\}`)

// ParseVectorChain parses "( {x1,y1}, {x2,y2}, … )" into an ordered list
// of Vectors.
func ParseVectorChain(value string) ([]Vector, error) {
	matches := vectorChainEntry.FindAllStringSubmatch(value, -1)
	result := make([]Vector, 0, len(matches))
	for _, m := range matches {
		parts := strings.SplitN(m[1], ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid vector chain entry %q", m[0])
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vector chain x in %q: %w", m[0], err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vector chain y in %q: %w", m[0], err)
		}
		result = append(result, Vector{X: x, Y: y})
	}
	return result, nil
}

// variants returns the name forms under which a key may be stored on an
// element: the key itself, its resolved canonical form, and the
// org.eclipse.-prefixed canonical form.
func variants(key string) []string {
	resolved := ResolveOptionKey(key)
	full := resolved
	if !strings.HasPrefix(full, "org.eclipse.") {
		full = "org.eclipse." + full
	}
	if resolved == key {
		return []string{key, full}
	}
	return []string{key, resolved, full}
}

// Get looks up a layout option on an element, checking layoutOptions then
// properties, under all key name variants (spec.md §4.1).
func Get(elem OptionHolder, key string) (interface{}, bool) {
	for _, m := range []map[string]interface{}{elem.GetLayoutOptions(), elem.GetProperties()} {
		if len(m) == 0 {
			continue
		}
		for _, v := range variants(key) {
			if val, ok := m[v]; ok {
				return val, true
			}
		}
	}
	return nil, false
}

// GetString is Get with a string type assertion and default fallback.
func GetString(elem OptionHolder, key, def string) string {
	v, ok := Get(elem, key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// EffectiveOptions computes the effective option map at an element: global
// options, overlaid by inherited parent options, overlaid by the
// element's own layoutOptions then properties (spec.md §4.1 scoping —
// element-level options are never overridden by per-call globals because
// they are applied last).
func EffectiveOptions(elem OptionHolder, global, parent map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(global)+len(parent))
	for k, v := range global {
		result[k] = v
	}
	for k, v := range parent {
		result[k] = v
	}
	for k, v := range elem.GetLayoutOptions() {
		result[k] = v
	}
	for k, v := range elem.GetProperties() {
		result[k] = v
	}
	return result
}

// GetAlgorithm resolves the effective algorithm id for an element: the
// element's own "algorithm" option wins; otherwise the per-call global
// "algorithm"/"elk.algorithm"; otherwise "layered".
func GetAlgorithm(elem OptionHolder, global map[string]interface{}) string {
	if alg, ok := Get(elem, "algorithm"); ok {
		if s, ok := alg.(string); ok {
			return ResolveAlgorithm(s)
		}
	}
	if global != nil {
		if v, ok := global["algorithm"]; ok {
			if s, ok := v.(string); ok {
				return ResolveAlgorithm(s)
			}
		}
		if v, ok := global["elk.algorithm"]; ok {
			if s, ok := v.(string); ok {
				return ResolveAlgorithm(s)
			}
		}
	}
	return ResolveAlgorithm("")
}

// GetDirection resolves the effective layout direction. Per spec.md §9's
// third open question, the observed default (absent any configuration) is
// DOWN, not the DEFAULTS-documented RIGHT.
func GetDirection(elem OptionHolder, global map[string]interface{}) string {
	if v, ok := Get(elem, "elk.direction"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if global != nil {
		if v, ok := global["elk.direction"]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
		if v, ok := global["direction"]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return "DOWN"
}

// asFloat converts a raw option value (float64, int, or numeric string)
// into a float64.
func asFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// GetSpacing resolves a numeric spacing option by key, falling back to
// the per-call global map and finally to def.
func GetSpacing(elem OptionHolder, key string, global map[string]interface{}, def float64) float64 {
	if v, ok := Get(elem, key); ok {
		if f, ok := asFloat(v); ok {
			return f
		}
	}
	if global != nil {
		resolved := ResolveOptionKey(key)
		for _, k := range []string{key, resolved, "org.eclipse." + resolved} {
			if v, ok := global[k]; ok {
				if f, ok := asFloat(v); ok {
					return f
				}
			}
		}
	}
	return def
}

// GetPadding resolves the effective padding for an element.
func GetPadding(elem OptionHolder, global map[string]interface{}) (Padding, error) {
	var raw interface{}
	if v, ok := Get(elem, "elk.padding"); ok {
		raw = v
	} else if global != nil {
		if v, ok := global["elk.padding"]; ok {
			raw = v
		} else if v, ok := global["org.eclipse.elk.padding"]; ok {
			raw = v
		}
	}
	if raw == nil {
		raw = Defaults["elk.padding"]
	}
	switch val := raw.(type) {
	case string:
		return ParsePadding(val)
	case Padding:
		return val, nil
	default:
		return ParsePadding(fmt.Sprintf("%v", val))
	}
}
