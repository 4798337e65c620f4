package vec

import (
	"fmt"
	"math"
)

type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// New2 builds a vector in the z = 0 plane.
func New2(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

func (v Vec3) Norm() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Normalize scales v to unit length in place. A zero vector is left as is.
func (v *Vec3) Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	v.X /= n
	v.Y /= n
	v.Z /= n
}

// Unit returns a normalized copy of v.
func (v Vec3) Unit() Vec3 {
	v.Normalize()
	return v
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ToMap projects v onto the {x, y, z} mapping written to config files.
func (v Vec3) ToMap() map[string]float64 {
	return map[string]float64{"x": v.X, "y": v.Y, "z": v.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
