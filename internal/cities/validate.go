package cities

import (
	"encoding/json"
	"math"
	"strings"
)

// Validation failure reasons, in the order the checks run.
const (
	ReasonNotArrays       = "cities/edges must be arrays"
	ReasonDuplicateCities = "duplicate cities"
	ReasonInvalidCity     = "invalid city entry"
	ReasonUnknownCity     = "edge references unknown city"
	ReasonInvalidDistance = "invalid distance"
)

// RawDataset is a dataset as decoded from untyped JSON. Fields hold whatever
// the input contained so ValidateGraphData can reject wrong shapes.
type RawDataset struct {
	Cities any `json:"cities"`
	Edges  any `json:"edges"`
}

// Validation is the outcome of ValidateGraphData.
type Validation struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func invalid(reason string) Validation {
	return Validation{OK: false, Reason: reason}
}

// ValidateGraphData checks a raw dataset without building anything. The first
// failing check determines the reason.
func ValidateGraphData(data RawDataset) Validation {
	cityList, okCities := asList(data.Cities)
	edgeList, okEdges := asList(data.Edges)

	if !okCities || !okEdges {
		return invalid(ReasonNotArrays)
	}

	if hasDuplicates(cityList) {
		return invalid(ReasonDuplicateCities)
	}

	known := make(map[string]bool, len(cityList))

	for _, c := range cityList {
		name, ok := c.(string)
		if !ok || strings.TrimSpace(name) == "" {
			return invalid(ReasonInvalidCity)
		}

		known[name] = true
	}

	for _, e := range edgeList {
		obj, _ := e.(map[string]any)

		from, _ := obj["from"].(string)
		to, _ := obj["to"].(string)

		if !known[from] || !known[to] {
			return invalid(ReasonUnknownCity)
		}
	}

	for _, e := range edgeList {
		obj, _ := e.(map[string]any)

		d, ok := toFloat(obj["distance"])
		if !ok || math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return invalid(ReasonInvalidDistance)
		}
	}

	return Validation{OK: true}
}

// asList normalizes the slice shapes a RawDataset may carry.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	case []EdgeSpec:
		out := make([]any, len(l))
		for i, e := range l {
			out[i] = map[string]any{"from": e.From, "to": e.To, "distance": e.Distance}
		}
		return out, true
	default:
		return nil, false
	}
}

// toFloat accepts the numeric shapes produced by encoding/json and by callers
// assembling a RawDataset in Go.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// hasDuplicates compares scalar entries by type and value. Objects and arrays
// never compare equal to each other.
func hasDuplicates(list []any) bool {
	type key struct {
		kind  string
		value any
	}

	seen := make(map[key]bool, len(list))

	for _, v := range list {
		var k key

		switch x := v.(type) {
		case nil:
			k = key{kind: "null"}
		case string:
			k = key{kind: "string", value: x}
		case float64:
			k = key{kind: "number", value: x}
		case json.Number:
			f, err := x.Float64()
			if err != nil {
				k = key{kind: "number", value: x.String()}
			} else {
				k = key{kind: "number", value: f}
			}
		case bool:
			k = key{kind: "bool", value: x}
		default:
			continue
		}

		if seen[k] {
			return true
		}

		seen[k] = true
	}

	return false
}
