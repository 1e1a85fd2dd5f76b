package encapsulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// Person
// -----------------------------------------------------------------------------

// TestPerson_ZeroValue verifies a fresh Person starts with default attributes.
func TestPerson_ZeroValue(t *testing.T) {
	t.Parallel()

	var p Person
	assert.Equal(t, "", p.Name())
	assert.Equal(t, 0, p.Age())
}

// TestPerson_SetName verifies any string round-trips exactly.
func TestPerson_SetName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "Alice", "  spaced  ", "Zoë", "line\nbreak"} {
		var p Person
		p.SetName(name)
		assert.Equal(t, name, p.Name())
	}
}

// TestPerson_SetAge_NonNegative verifies non-negative ages are stored.
func TestPerson_SetAge_NonNegative(t *testing.T) {
	t.Parallel()

	for _, age := range []int{0, 1, 30, 150, math.MaxInt} {
		var p Person
		p.SetAge(age)
		assert.Equal(t, age, p.Age())
	}
}

// TestPerson_SetAge_NegativeIgnored verifies negative ages leave the previous value in place.
func TestPerson_SetAge_NegativeIgnored(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		initial int
		attempt int
	}{
		{name: "from zero value", initial: 0, attempt: -1},
		{name: "keeps set age", initial: 42, attempt: -5},
		{name: "min int", initial: 7, attempt: math.MinInt},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var p Person
			p.SetAge(tc.initial)
			p.SetAge(tc.attempt)
			assert.Equal(t, tc.initial, p.Age())
		})
	}
}

// TestPerson_SetAge_ZeroAfterValue verifies zero is accepted as a real value.
func TestPerson_SetAge_ZeroAfterValue(t *testing.T) {
	t.Parallel()

	var p Person
	p.SetAge(10)
	p.SetAge(0)
	assert.Equal(t, 0, p.Age())
}

//
// -----------------------------------------------------------------------------
// PersonWithoutEncapsulation
// -----------------------------------------------------------------------------

// TestPersonWithoutEncapsulation_AcceptsAnything verifies fields take any value, negatives included.
func TestPersonWithoutEncapsulation_AcceptsAnything(t *testing.T) {
	t.Parallel()

	p := PersonWithoutEncapsulation{Name: "Bob", Age: 20}
	p.Age = -5
	p.Name = ""

	assert.Equal(t, -5, p.Age)
	assert.Equal(t, "", p.Name)
}
