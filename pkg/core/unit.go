package core

import (
	"fmt"
	"math"
)

// UnitTolerance is the allowed deviation of a unit direction's length from 1.
const UnitTolerance = 1e-6

// Unit normalizes v and, in debug builds, verifies the result has unit length.
// A zero vector stays zero and fails the debug check.
func Unit(v Vec3) Vec3 {
	u := v.Normalize()
	AssertUnit(u)
	return u
}

// AssertUnit panics when built with -tags debug and v is not a unit vector.
// Release builds trust the caller and skip the check.
func AssertUnit(v Vec3) {
	if !debugChecks {
		return
	}
	if l := v.Length(); math.Abs(l-1) > UnitTolerance {
		panic(fmt.Sprintf("core: expected unit vector, got %v with length %.9f", v, l))
	}
}

// IsUnit reports whether v has unit length within UnitTolerance
func IsUnit(v Vec3) bool {
	return math.Abs(v.Length()-1) <= UnitTolerance
}

// Reflect mirrors the unit direction d about the unit normal n: d - 2(d·n)n.
func Reflect(d, n Vec3) Vec3 {
	return Unit(d.Subtract(n.Multiply(2 * d.Dot(n))))
}
