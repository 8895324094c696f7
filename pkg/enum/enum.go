package enum

import (
	"fmt"
	"reflect"
)

var registry = map[string]any{}

type values[T comparable] struct {
	byName map[string]T
}

// New registers a value of a string-based enum type and returns it unchanged,
// so it can be used directly in a var declaration.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	name := v.Type().Name()
	if _, ok := registry[name]; !ok {
		registry[name] = values[T]{byName: make(map[string]T)}
	}

	registry[name].(values[T]).byName[v.String()] = value
	return value
}

// ToEnum converts a raw string into a registered enum value. It fails if the
// string was never registered with New.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	e, ok := registry[reflect.TypeOf(zero).Name()]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := e.(values[T]).byName[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value, nil
}
