// Package vector implements the 2D north/east vector math the raycasting
// core is built on: rotation, normalization, dot product and ray-plane
// intersection.
package vector

import "math"

// Vector is a 2D point or direction in world coordinates.
type Vector struct {
	N float64 // north
	E float64 // east
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 {
	return a.N*b.N + a.E*b.E
}

// Add returns a+b.
func Add(a, b Vector) Vector {
	return Vector{N: a.N + b.N, E: a.E + b.E}
}

// Sub returns a-b.
func Sub(a, b Vector) Vector {
	return Vector{N: a.N - b.N, E: a.E - b.E}
}

// Scale returns v scaled by s.
func Scale(v Vector, s float64) Vector {
	return Vector{N: v.N * s, E: v.E * s}
}

// Length returns the Euclidean length of v.
func Length(v Vector) float64 {
	return math.Sqrt(v.N*v.N + v.E*v.E)
}

// Normalize returns v scaled to unit length. Undefined on the zero vector;
// callers must never pass one.
func Normalize(v Vector) Vector {
	ilen := 1.0 / math.Sqrt(v.N*v.N+v.E*v.E)
	return Vector{N: v.N * ilen, E: v.E * ilen}
}

// Rotate rotates v by angleRad radians, counter-clockwise in the (e, n)
// plane. v must already be unit-length (within 1%); this is checked with a
// panic rather than silently producing drifted output.
func Rotate(v Vector, angleRad float64) Vector {
	lenSq := v.N*v.N + v.E*v.E
	if lenSq < 0.99 || lenSq > 1.01 {
		panic("vector: Rotate precondition violated, |v|^2 not in [0.99, 1.01]")
	}
	s := math.Sin(angleRad)
	c := math.Cos(angleRad)
	return Vector{
		N: c*v.N - s*v.E,
		E: s*v.N + c*v.E,
	}
}

// epsilon is the smallest |N·D| treated as non-parallel in
// RayPlaneIntersect.
const epsilon = 1e-5

// RayPlaneIntersect solves N·(P + f·D) + d = 0 for f, the fractional
// distance along ray P+f·D at which it crosses the plane {x : N·x + d = 0}.
// ok is false when the ray is parallel to the plane (|N·D| < epsilon), in
// which case f is not meaningful.
func RayPlaneIntersect(normal Vector, d float64, rayStart, rayDir Vector) (f float64, ok bool) {
	q := Dot(normal, rayDir)
	if math.Abs(q) < epsilon {
		return 0, false
	}
	f = -(Dot(normal, rayStart) + d) / q
	return f, true
}
