// Released under an MIT license. See LICENSE.

// Package heart defines the interface for all ren payload types.
package heart

// I (heart) is the underlying datatype of a value, independent of the
// quoting and isotope status carried by the cell that holds it.
type I interface {
	Equal(h I) bool
	Name() string
}
