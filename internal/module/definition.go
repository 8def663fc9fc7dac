// Package module defines the unit a host registers and invokes: a named
// analyzer with fixed input and output type descriptors.
package module

import (
	"errors"
	"fmt"

	"GoNLP/internal/value"
)

// Handler computes an output value from an input value. It fails with a
// *value.ShapeError when the input does not have the expected shape.
type Handler func(input value.Value) (value.Value, error)

// Definition describes one invocable analyzer. It is built once at
// startup and never mutated afterwards.
type Definition struct {
	Name        string
	Version     string
	Description string
	InputType   value.Type
	OutputType  value.Type
	Handler     Handler
}

// Validate checks that the definition is complete.
func (d Definition) Validate() error {
	if d.Name == "" {
		return errors.New("module: definition name is required")
	}
	if !d.InputType.IsValid() {
		return fmt.Errorf("module %s: invalid input type", d.Name)
	}
	if !d.OutputType.IsValid() {
		return fmt.Errorf("module %s: invalid output type", d.Name)
	}
	if d.Handler == nil {
		return fmt.Errorf("module %s: handler is required", d.Name)
	}
	return nil
}

// Call re-validates input against InputType and then runs the handler.
func (d Definition) Call(input value.Value) (value.Value, error) {
	in, err := value.Decode(input, d.InputType)
	if err != nil {
		return nil, err
	}
	return d.Handler(in)
}
