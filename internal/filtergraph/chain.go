package filtergraph

import (
	"encoding/json"
	"fmt"
	"strings"

	"vidmake/internal/jsonutil"
)

// Keys of a structured chain stage.
const (
	keyIStream = "istream"
	keyFunc    = "func"
	keyOStream = "ostream"
)

// FormatChain renders a filter_complex array into one graph expression.
// String elements pass through verbatim; object elements render as
// istream + function + ostream. Fragments join with ";".
func FormatChain(raw json.RawMessage) (string, error) {
	elems, err := jsonutil.DecodeElems(raw)
	if err != nil {
		return "", fmt.Errorf("decode filter graph: %w", err)
	}
	parts := make([]string, 0, len(elems))
	for i, elem := range elems {
		switch jsonutil.KindOf(elem) {
		case jsonutil.KindString:
			var s string
			if err := json.Unmarshal(elem, &s); err != nil {
				return "", fmt.Errorf("filter graph element %d: %w", i, err)
			}
			parts = append(parts, s)
		case jsonutil.KindObject:
			fragment, err := formatStage(elem)
			if err != nil {
				return "", fmt.Errorf("filter graph element %d: %w", i, err)
			}
			parts = append(parts, fragment)
		default:
			return "", fmt.Errorf("filter graph element %d: expected string or object, got %s", i, jsonutil.KindOf(elem))
		}
	}
	return strings.Join(parts, ";"), nil
}

func formatStage(raw json.RawMessage) (string, error) {
	pairs, err := jsonutil.DecodePairs(raw)
	if err != nil {
		return "", err
	}
	var (
		istream, ostream *string
		fn               json.RawMessage
	)
	for _, p := range pairs {
		switch p.Key {
		case keyIStream:
			label, err := streamLabel(p.Key, p.Value)
			if err != nil {
				return "", err
			}
			istream = &label
		case keyOStream:
			label, err := streamLabel(p.Key, p.Value)
			if err != nil {
				return "", err
			}
			ostream = &label
		case keyFunc:
			fn = p.Value
		}
	}
	if istream == nil {
		return "", fmt.Errorf("missing %q", keyIStream)
	}
	if fn == nil {
		return "", fmt.Errorf("missing %q", keyFunc)
	}
	if ostream == nil {
		return "", fmt.Errorf("missing %q", keyOStream)
	}
	unit, err := FormatUnit(fn)
	if err != nil {
		return "", err
	}
	return *istream + unit + *ostream, nil
}

func streamLabel(key string, raw json.RawMessage) (string, error) {
	var label string
	if err := json.Unmarshal(raw, &label); err != nil {
		return "", fmt.Errorf("%s must be a string: %w", key, err)
	}
	return label, nil
}
