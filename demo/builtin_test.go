package demo_test

import (
	"bytes"
	"testing"

	"github.com/sghaida/oopbasics/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Names verifies the built-in demos are registered.
func TestDefault_Names(t *testing.T) {
	t.Parallel()

	r := demo.Default("Alice", 30)
	assert.Equal(t, []string{
		demo.NameComposition,
		demo.NameEncapsulation,
		demo.NameInheritance,
	}, r.Names())
}

func TestDefault_Output(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{name: demo.NameComposition, want: "Engine started.\nCar started.\n"},
		{name: demo.NameInheritance, want: "Vehicle started.\nInherited Car started.\n"},
		{
			name: demo.NameEncapsulation,
			want: "name=Alice age=30\n" +
				"after SetAge(-5): age=30\n" +
				"unencapsulated: name=Alice age=-5\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, demo.Default("Alice", 30).Run(tc.name, &buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

// TestEncapsulation_NegativeSeed verifies a negative seed age never reaches the guarded Person.
func TestEncapsulation_NegativeSeed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	demo.Encapsulation("Bob", -1)(&buf)

	assert.Equal(t,
		"name=Bob age=0\n"+
			"after SetAge(-5): age=0\n"+
			"unencapsulated: name=Bob age=-5\n",
		buf.String())
}
