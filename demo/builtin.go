package demo

import (
	"fmt"
	"io"

	"github.com/sghaida/oopbasics/composition"
	"github.com/sghaida/oopbasics/encapsulation"
	"github.com/sghaida/oopbasics/inheritance"
)

// Names of the built-in demos.
const (
	NameComposition   = "composition"
	NameInheritance   = "inheritance"
	NameEncapsulation = "encapsulation"
)

// Composition starts a Car, which starts its own Engine first.
func Composition(w io.Writer) {
	composition.NewCar(w).StartCar()
}

// Inheritance starts an InheritedCar through the promoted Vehicle.Start.
func Inheritance(w io.Writer) {
	inheritance.NewInheritedCar(w).StartCar()
}

// Encapsulation returns a walkthrough that sets name and age on a Person,
// tries a negative age, and then shows the unguarded variant accepting it.
func Encapsulation(name string, age int) Demo {
	return func(w io.Writer) {
		var p encapsulation.Person
		p.SetName(name)
		p.SetAge(age)
		_, _ = fmt.Fprintf(w, "name=%s age=%d\n", p.Name(), p.Age())

		p.SetAge(-5)
		_, _ = fmt.Fprintf(w, "after SetAge(-5): age=%d\n", p.Age())

		open := encapsulation.PersonWithoutEncapsulation{Name: name, Age: age}
		open.Age = -5
		_, _ = fmt.Fprintf(w, "unencapsulated: name=%s age=%d\n", open.Name, open.Age)
	}
}

// Default returns a registry holding the three built-in demos.
// name and age seed the encapsulation walkthrough.
func Default(name string, age int) *Registry {
	return NewRegistry().
		Provide(NameComposition, Composition).
		Provide(NameInheritance, Inheritance).
		Provide(NameEncapsulation, Encapsulation(name, age))
}
