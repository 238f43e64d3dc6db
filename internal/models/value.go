package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ErrUnsupportedValue is returned when decoding anything other than a
// string, number or boolean into a Value.
var ErrUnsupportedValue = errors.New("configuration values must be a string, number or boolean")

type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "boolean"
)

// Value is a scalar used in extension configuration and audit details.
// It encodes as the bare JSON/BSON scalar it holds.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func String(s string) Value { return Value{Kind: ValueString, Str: s} }

func Number(n float64) Value { return Value{Kind: ValueNumber, Num: n} }

func Bool(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// Interface returns the Go value held by v, or nil for the zero Value.
func (v Value) Interface() any {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueNumber:
		return v.Num
	case ValueBool:
		return v.Bool
	}
	return nil
}

// ValueOf converts a plain Go scalar into a Value.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	}
	return Value{}, fmt.Errorf("%w: got %T", ErrUnsupportedValue, x)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == "" {
		return nil, fmt.Errorf("models: marshal of empty value")
	}
	return json.Marshal(v.Interface())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ValueOf(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(v.Interface())
}

func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*v = String(raw.StringValue())
	case bsontype.Double:
		*v = Number(raw.Double())
	case bsontype.Int32:
		*v = Number(float64(raw.Int32()))
	case bsontype.Int64:
		*v = Number(float64(raw.Int64()))
	case bsontype.Boolean:
		*v = Bool(raw.Boolean())
	default:
		return fmt.Errorf("%w: bson type %s", ErrUnsupportedValue, t)
	}
	return nil
}

// ConfigMap maps setting names to scalar values.
type ConfigMap map[string]Value

// Clone returns an independent copy; a nil map clones to an empty one.
func (m ConfigMap) Clone() ConfigMap {
	out := make(ConfigMap, len(m))
	maps.Copy(out, m)
	return out
}

// Merge returns a copy of m with every key of patch added or overwritten.
func (m ConfigMap) Merge(patch ConfigMap) ConfigMap {
	out := m.Clone()
	maps.Copy(out, patch)
	return out
}

// Plain converts the map to map[string]any for scripting and encoding.
func (m ConfigMap) Plain() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Interface()
	}
	return out
}
