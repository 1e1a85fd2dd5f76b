// Package inheritance shows is-a reuse without ownership.
//
// Go has no class inheritance; InheritedCar embeds Vehicle so that Vehicle's
// methods are promoted onto it. The car holds no reference to a separate
// vehicle value and never delegates through a field it owns.
package inheritance

import (
	"fmt"
	"io"
	"os"
)

// Starter is satisfied by Vehicle and, through promotion, by InheritedCar.
type Starter interface {
	Start()
}

var (
	_ Starter = Vehicle{}
	_ Starter = InheritedCar{}
)

// Vehicle is the base behavior. The zero value prints to os.Stdout.
type Vehicle struct {
	out io.Writer
}

// NewVehicle returns a Vehicle printing to out (os.Stdout when nil).
func NewVehicle(out io.Writer) Vehicle {
	return Vehicle{out: out}
}

// Start reports that the vehicle started.
func (v Vehicle) Start() {
	_, _ = fmt.Fprintln(v.writer(), "Vehicle started.")
}

func (v Vehicle) writer() io.Writer {
	if v.out == nil {
		return os.Stdout
	}
	return v.out
}

// InheritedCar reuses Vehicle.Start; it does not override it.
type InheritedCar struct {
	Vehicle
}

// NewInheritedCar returns an InheritedCar printing to out (os.Stdout when nil).
func NewInheritedCar(out io.Writer) InheritedCar {
	return InheritedCar{Vehicle: NewVehicle(out)}
}

// StartCar calls the promoted Start, then reports the car itself.
func (c InheritedCar) StartCar() {
	c.Start()
	_, _ = fmt.Fprintln(c.writer(), "Inherited Car started.")
}
