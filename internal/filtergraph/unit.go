package filtergraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vidmake/internal/jsonutil"
)

// ErrUnitKeyCount reports a filter unit whose object does not contain
// exactly one member.
var ErrUnitKeyCount = errors.New("filter unit must have exactly one key")

// UnsupportedTypeError reports a filter argument whose JSON shape has
// no textual rendering.
type UnsupportedTypeError struct {
	Function string
	Kind     jsonutil.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("filter %q: unsupported argument type %s", e.Function, e.Kind)
}

// Arg is one key=value argument of a filter function.
type Arg struct {
	Key   string
	Value string
}

// FormatFunc renders a filter invocation from pre-ordered arguments as
// name=k1=v1:k2=v2. An empty argument list leaves the trailing "="
// in place.
func FormatFunc(name string, args []Arg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return name + "=" + strings.Join(parts, ":")
}

// FormatUnit renders a single-function unit, {"name": args}. Arguments
// may be an object (key=value pairs in document order), an array of
// scalars (joined with ":"), or a single scalar used as-is.
func FormatUnit(raw json.RawMessage) (string, error) {
	pairs, err := jsonutil.DecodePairs(raw)
	if err != nil {
		return "", fmt.Errorf("decode filter unit: %w", err)
	}
	if len(pairs) != 1 {
		return "", fmt.Errorf("%w, found %d", ErrUnitKeyCount, len(pairs))
	}
	name, value := pairs[0].Key, pairs[0].Value
	switch jsonutil.KindOf(value) {
	case jsonutil.KindObject:
		args, err := decodeArgs(name, value)
		if err != nil {
			return "", err
		}
		return FormatFunc(name, args), nil
	case jsonutil.KindArray:
		parts, err := decodeList(name, value)
		if err != nil {
			return "", err
		}
		return name + "=" + strings.Join(parts, ":"), nil
	case jsonutil.KindString, jsonutil.KindNumber, jsonutil.KindBool:
		text, _ := jsonutil.ScalarText(value)
		return name + "=" + text, nil
	default:
		return "", &UnsupportedTypeError{Function: name, Kind: jsonutil.KindOf(value)}
	}
}

func decodeArgs(name string, raw json.RawMessage) ([]Arg, error) {
	pairs, err := jsonutil.DecodePairs(raw)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", name, err)
	}
	args := make([]Arg, 0, len(pairs))
	for _, p := range pairs {
		text, ok := jsonutil.ScalarText(p.Value)
		if !ok {
			return nil, &UnsupportedTypeError{Function: name, Kind: jsonutil.KindOf(p.Value)}
		}
		args = append(args, Arg{Key: p.Key, Value: text})
	}
	return args, nil
}

func decodeList(name string, raw json.RawMessage) ([]string, error) {
	elems, err := jsonutil.DecodeElems(raw)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", name, err)
	}
	parts := make([]string, 0, len(elems))
	for _, elem := range elems {
		text, ok := jsonutil.ScalarText(elem)
		if !ok {
			return nil, &UnsupportedTypeError{Function: name, Kind: jsonutil.KindOf(elem)}
		}
		parts = append(parts, text)
	}
	return parts, nil
}
