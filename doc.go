// Package oopbasics collects three small, independent demonstrations of how
// object relationships look in Go:
//
//   - composition: a Car owns its Engine and delegates to it (has-a)
//   - inheritance: an InheritedCar embeds Vehicle and reuses its Start (is-a reuse)
//   - encapsulation: a Person guards its age behind accessors; a plain struct does not
//
// Package demo names them so the oopbasics CLI (cmd/oopbasics) can run them.
// examples/composition is the minimal runnable entry point.
//
// Import
//
//	"github.com/sghaida/oopbasics/composition"
package oopbasics
