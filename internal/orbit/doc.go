// Package orbit derives circular-orbit velocities for satellites.
//
// Given a central mass M at position c and a satellite at position s, the
// radius vector is r = c - s. The satellite's speed is the circular-orbit
// speed sqrt(G*M/|r|) and its direction is a vector perpendicular to r:
//
//	v, err := orbit.Place(1e24, vec.New(0, 0, 0), vec.New(10, 0, 0), vec.Vec3{})
//
// Two perpendicular constructions are available. [StrategyLegacy] swaps and
// negates two components of r depending on which component is zero; it
// reproduces configs generated by earlier versions of the tool. [StrategyCross]
// crosses r with the world axis least parallel to it and is orthogonal for any r.
package orbit
