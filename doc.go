// Package cubicbezier computes intersections between cubic Bézier curves
// using the Bézier clipping algorithm. It is a numerical geometry kernel for
// vector graphics and font processing pipelines that need robust curve-curve
// intersection without resorting to naive subdivision.
//
// # Bézier clipping
//
// The control points of a Bézier curve enclose the curve in their convex
// hull. Bézier clipping exploits this twice: the "fat line", a band around
// the baseline through one curve's endpoints, is guaranteed to contain that
// whole curve, and the convex hull over the other curve's control point
// distances from the baseline certifies where that curve can possibly enter
// the band. Clipping one curve against the other's fat line, swapping roles,
// and repeating shrinks both parameter domains towards the intersections; if
// a step fails to make progress, the region holds multiple intersections and
// is bisected. See T.W. Sederberg and T. Nishita, "Curve intersection using
// Bézier clipping", 1990.
//
// [IntersectCubics] is the curve-curve entry point. The same loop, reduced to
// one dimension against the zero band, is a polynomial root finder in the
// Bernstein basis: [FindBernsteinRoots] operates on a [BernsteinPoly], and
// [FindPolynomialRoots] accepts power basis coefficients of any degree.
// [IntersectCubicLine] and [ClosestParameters] reduce line intersection and
// closest point queries to that root finder.
//
// # Conventions
//
// All results are parameters in [0, 1] on the curve (pairs of parameters for
// curve-curve intersection); positions are recovered with [CubicBez.Eval].
// "No solution" is an empty slice, never an error. Results are accurate to a
// caller-supplied accuracy, which is clamped to 1e-8; comparisons against
// results should use tolerances, not exact equality.
//
// The package is purely functional: all types are immutable values, no state
// is shared, and functions are safe for concurrent use.
package cubicbezier
