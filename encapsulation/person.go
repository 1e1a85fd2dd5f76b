// Package encapsulation contrasts a Person whose state is only reachable
// through accessors with one that exposes its fields directly.
//
// Accessors are where validation lives: SetAge refuses negative ages. The
// refusal is silent; the call simply has no effect.
package encapsulation

// Person keeps name and age unexported. The zero value is ready to use.
type Person struct {
	name string
	age  int
}

// Name returns the current name.
func (p *Person) Name() string { return p.name }

// SetName assigns the name unconditionally.
func (p *Person) SetName(name string) { p.name = name }

// Age returns the current age.
func (p *Person) Age() int { return p.age }

// SetAge assigns age only when it is >= 0; negative values are ignored.
func (p *Person) SetAge(age int) {
	if age >= 0 {
		p.age = age
	}
}

// PersonWithoutEncapsulation exposes its fields; nothing guards them.
type PersonWithoutEncapsulation struct {
	Name string
	Age  int
}
