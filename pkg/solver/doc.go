// Package solver turns a partial description of a triangle into the
// triangles consistent with it.
//
// An Input carries up to six known values: the sides a, b, c (each opposite
// the vertex of the same letter) and the angles A, B, C in degrees. Solve
// classifies the known fields into one of the classical congruence cases and
// returns zero, one or two solutions:
//
//	SSS      three sides                      one solution
//	AAS/ASA  two or more angles and a side    one solution
//	SAS      two sides and the included angle one solution
//	SSA      two sides and another angle      zero, one or two solutions
//
// Two or more angles without any side describe a shape but not a size. Solve
// returns no solution for that input instead of picking a unit scale.
//
// Every candidate passes the same validity check before it is returned: all
// values finite, every side and angle strictly positive, and the angles
// summing to 180° within AngleSumTolerance. Infeasible and underdetermined
// inputs both yield an empty slice. Solve never panics, whatever the input.
//
// Solve holds no state and is safe for concurrent use.
package solver
