// Package composition shows a has-a relationship: a Car owns its Engine and
// delegates part of its behavior to it.
//
// The Engine is created by NewCar and never exposed, so no other value can
// share or replace it. Compare with package inheritance, where the same
// behavior is reused through embedding instead of ownership.
package composition

import (
	"fmt"
	"io"
	"os"
)

// Engine is stateless; it only knows where to print.
// The zero value prints to os.Stdout.
type Engine struct {
	out io.Writer
}

// Start reports that the engine started.
func (e *Engine) Start() {
	_, _ = fmt.Fprintln(e.writer(), "Engine started.")
}

func (e *Engine) writer() io.Writer {
	if e.out == nil {
		return os.Stdout
	}
	return e.out
}

// Car has an Engine (composition).
// A zero Car builds its own Engine on the first StartCar and prints to os.Stdout.
type Car struct {
	engine *Engine
}

// NewCar builds a Car together with its own Engine.
// A nil out writes to os.Stdout.
func NewCar(out io.Writer) *Car {
	return &Car{engine: &Engine{out: out}}
}

// StartCar delegates to the owned Engine first, then reports the car itself.
func (c *Car) StartCar() {
	if c.engine == nil {
		c.engine = &Engine{}
	}
	c.engine.Start()
	_, _ = fmt.Fprintln(c.engine.writer(), "Car started.")
}
