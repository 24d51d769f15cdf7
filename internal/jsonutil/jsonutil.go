// Package jsonutil decodes JSON fragments whose object member order is
// part of the contract. encoding/json maps drop ordering, so renderers
// that emit order-sensitive text walk the token stream through here.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind classifies a raw JSON value without decoding it.
type Kind string

const (
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBool    Kind = "bool"
	KindNull    Kind = "null"
	KindInvalid Kind = "invalid"
)

// KindOf inspects the first non-whitespace byte of raw. Empty or
// unrecognizable input reports KindInvalid.
func KindOf(raw []byte) Kind {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return KindInvalid
	}
	switch trimmed[0] {
	case '{':
		return KindObject
	case '[':
		return KindArray
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case 'n':
		return KindNull
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return KindNumber
	default:
		return KindInvalid
	}
}

// Pair is one member of a JSON object with the value left undecoded.
type Pair struct {
	Key   string
	Value json.RawMessage
}

// DecodePairs returns the members of a JSON object in document order.
func DecodePairs(raw []byte) ([]Pair, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode object: expected '{', got %v", tok)
	}
	var pairs []Pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode object key: unexpected token %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	return pairs, nil
}

// DecodeElems returns the elements of a JSON array in order, undecoded.
func DecodeElems(raw []byte) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("decode array: expected '[', got %v", tok)
	}
	var elems []json.RawMessage
	for dec.More() {
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode array element %d: %w", len(elems), err)
		}
		elems = append(elems, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode array: %w", err)
	}
	return elems, nil
}

// ScalarText renders a raw scalar as the text that belongs in generated
// command lines: strings unquoted, numbers with the digits as written,
// booleans lowercase. The second return is false for objects, arrays,
// and null.
func ScalarText(raw []byte) (string, bool) {
	switch KindOf(raw) {
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case KindNumber, KindBool:
		return string(bytes.TrimSpace(raw)), true
	default:
		return "", false
	}
}
