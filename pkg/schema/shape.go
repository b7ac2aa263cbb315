// Package schema describes the JSON shape of every record and checks
// request and response bodies against it. Checks walk fields in declared
// order and stop at the first failure; unknown fields are ignored.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// maxSafeInteger is the largest integer a JSON number holds exactly.
const maxSafeInteger = 1<<53 - 1

type Kind int

const (
	String Kind = iota
	Integer
	Number
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Number:
		return "number"
	default:
		return "string"
	}
}

type Field struct {
	Name string
	Kind Kind
}

// Shape is an ordered set of required fields of one JSON object.
type Shape struct {
	name   string
	fields []Field
}

func NewShape(name string, fields ...Field) Shape {
	return Shape{name: name, fields: fields}
}

func (s Shape) Name() string { return s.name }

func (s Shape) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Omit derives a shape without the named fields, e.g. the insert shape of
// a record without its server-assigned id.
func (s Shape) Omit(names ...string) Shape {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := Shape{name: s.name}
	for _, f := range s.fields {
		if !drop[f.Name] {
			out.fields = append(out.fields, f)
		}
	}
	return out
}

// FieldError is the first failing field of a check. Field is the dotted
// path from the document root; it is empty when the root itself is wrong.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Check validates a single JSON object.
func (s Shape) Check(data []byte) *FieldError {
	return s.check(data, "")
}

// CheckList validates a JSON array whose elements all have this shape.
func (s Shape) CheckList(data []byte) *FieldError {
	if got := jsonType(data); got != "array" {
		return &FieldError{Message: "Expected array, received " + got}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return &FieldError{Message: "Invalid JSON"}
	}
	for i, item := range items {
		if fe := s.check(item, strconv.Itoa(i)+"."); fe != nil {
			return fe
		}
	}
	return nil
}

func (s Shape) check(data []byte, prefix string) *FieldError {
	if got := jsonType(data); got != "object" {
		return &FieldError{Message: "Expected object, received " + got, Field: trimDot(prefix)}
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return &FieldError{Message: "Invalid JSON", Field: trimDot(prefix)}
	}
	for _, f := range s.fields {
		path := prefix + f.Name
		raw, ok := obj[f.Name]
		if !ok {
			return &FieldError{Message: "Required", Field: path}
		}
		if msg := checkKind(f.Kind, raw); msg != "" {
			return &FieldError{Message: msg, Field: path}
		}
	}
	return nil
}

func checkKind(k Kind, raw json.RawMessage) string {
	got := jsonType(raw)
	switch k {
	case String:
		if got == "string" {
			return ""
		}
	case Number:
		if got == "number" {
			return ""
		}
	case Integer:
		if got == "number" {
			if _, ok := integer(raw); ok {
				return ""
			}
			return "Expected integer, received float"
		}
	}
	return fmt.Sprintf("Expected %s, received %s", expectedName(k), got)
}

// integer accepts any JSON number with an integral value, so 100, 100.0
// and 1e2 are the same integer.
func integer(raw json.RawMessage) (int64, bool) {
	f, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int64(f), true
}

// project rebuilds a checked object with only the declared fields, keyed
// exactly by name and with integers in canonical form. Unmarshalling the
// result cannot pick up undeclared keys that differ only in case.
func (s Shape) project(data []byte) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(s.fields))
	for _, f := range s.fields {
		raw := obj[f.Name]
		if f.Kind == Integer {
			if n, ok := integer(raw); ok {
				raw = json.RawMessage(strconv.FormatInt(n, 10))
			}
		}
		out[f.Name] = raw
	}
	return json.Marshal(out)
}

// expectedName reports integers as numbers when the received value is not
// numeric at all, matching how the error reads for a string in a number slot.
func expectedName(k Kind) string {
	if k == Integer {
		return "number"
	}
	return k.String()
}

func jsonType(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	}
	return "number"
}

func trimDot(prefix string) string {
	if n := len(prefix); n > 0 && prefix[n-1] == '.' {
		return prefix[:n-1]
	}
	return prefix
}
