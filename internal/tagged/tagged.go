// Package tagged decodes externally tagged YAML variants into closed Go sum
// types: a bare name selects a unit variant ("ClearDebuffs"), and a single-key
// map selects a variant and carries its payload ({Damage: 6},
// {DamageIfNoBlock: {base: 4, bonus: 4}}, {Combat: shadow_wolf}).
// JSON content decodes the same way since yaml.v3 reads JSON.
package tagged

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decoder builds one variant of T from its payload node; body is nil for a bare name.
type Decoder[T any] func(body *yaml.Node) (T, error)

// Registry maps variant names to their decoders.
type Registry[T any] map[string]Decoder[T]

// Decode reads a single variant.
func (r Registry[T]) Decode(node *yaml.Node) (T, error) {
	var zero T
	var name string
	var body *yaml.Node
	switch node.Kind {
	case yaml.ScalarNode:
		name = node.Value
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return zero, errors.New("variant map must have exactly one key")
		}
		name, body = node.Content[0].Value, node.Content[1]
	default:
		return zero, errors.New("variant must be a name or a single-key map")
	}
	dec, ok := r[name]
	if !ok {
		return zero, fmt.Errorf("unknown variant %q", name)
	}
	v, err := dec(body)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// DecodeSeq reads a sequence of variants, reporting the line of the first bad entry.
func (r Registry[T]) DecodeSeq(node *yaml.Node) ([]T, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence", node.Line)
	}
	out := make([]T, 0, len(node.Content))
	for _, item := range node.Content {
		v, err := r.Decode(item)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Int decodes an integer payload.
func Int[T any](build func(int) T) Decoder[T] {
	return func(body *yaml.Node) (T, error) {
		var zero T
		if body == nil {
			return zero, errors.New("missing amount")
		}
		var n int
		if err := body.Decode(&n); err != nil {
			return zero, err
		}
		return build(n), nil
	}
}

// String decodes a string payload.
func String[T any](build func(string) T) Decoder[T] {
	return func(body *yaml.Node) (T, error) {
		var zero T
		if body == nil || body.Kind != yaml.ScalarNode || body.Tag == "!!null" {
			return zero, errors.New("missing value")
		}
		return build(body.Value), nil
	}
}

// Unit accepts only a bare name or an explicit null payload.
func Unit[T any](v T) Decoder[T] {
	return func(body *yaml.Node) (T, error) {
		if body != nil && body.Tag != "!!null" {
			var zero T
			return zero, errors.New("takes no value")
		}
		return v, nil
	}
}

// Fields decodes a field-map payload into V and returns it as T.
//
// Precondition: V must be assignable to T.
func Fields[T any, V any]() Decoder[T] {
	return func(body *yaml.Node) (T, error) {
		var zero T
		if body == nil || body.Kind != yaml.MappingNode {
			return zero, errors.New("expected a field map")
		}
		var v V
		if err := body.Decode(&v); err != nil {
			return zero, err
		}
		return any(v).(T), nil
	}
}
