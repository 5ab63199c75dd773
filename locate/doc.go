// Package locate implements the online counterpart to package sweep: given
// a precomputed boundary list and a candidate weight vector, it answers
// "is this vector already satisfactory, and if not, what is the nearest
// satisfactory vector of the same magnitude?" without re-running the
// sweep.
//
// A weight vector (w1, w2) is first reduced to its polar form (r, θ) via
// math.Atan2. Locate then binary-searches the boundary list (strictly
// ascending in Theta, as guaranteed by package sweep) for the bracketing
// pair of boundaries around θ. If θ falls inside an open [Start, End)
// region, the vector is returned unchanged. Otherwise it is snapped to
// whichever bracketing boundary is angularly closer, ties favoring the
// later (higher-θ) boundary, and the original magnitude r is preserved.
package locate
