// Package vec provides the three-component vector used for body positions
// and velocities.
//
// [Vec3] values are plain structs: arithmetic returns new vectors, while
// [Vec3.Normalize] mutates in place and leaves a zero vector untouched.
//
//	v := vec.New(3, 4, 0)
//	v.Normalize() // (0.6, 0.8, 0)
package vec
