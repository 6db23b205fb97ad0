package mercator

import "math"

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 2.220446049250313e-16

// Below these magnitudes the Mercator kernels switch from the textbook
// formulas to forms without catastrophic cancellation. Both branches are
// exact identities, so the cutoffs only trade a tan or expm1 call against
// precision lost by the direct formula near zero.
const (
	logTanCutoff  = 0.5
	atanExpCutoff = 0.5
)

// logTanHalfPlusQuarterPi returns log(tan(π/4 + x/2)), the spherical
// isometric latitude of x.
func logTanHalfPlusQuarterPi(x float64) float64 {
	if math.Abs(x) <= epsilon {
		// tan(π/4 + x/2) is 1 + x to working precision.
		return log1pSafe(x)
	}
	if math.Abs(x) <= logTanCutoff {
		// tan(π/4 + x/2) = (1 + t)/(1 - t) = 1 + 2t/(1 - t), t = tan(x/2)
		t := math.Tan(0.5 * x)
		return log1pSafe(2 * t / (1 - t))
	}
	return math.Log(math.Tan(math.Pi/4 + 0.5*x))
}

// halfPiMinusTwoAtanExp returns π/2 - 2 atan(exp(x)), the negated
// Gudermannian of x.
func halfPiMinusTwoAtanExp(x float64) float64 {
	if math.Abs(x) <= epsilon {
		// atan(exp(x)) is π/4 + x/2 to working precision.
		return -expm1Safe(x)
	}
	if math.Abs(x) <= atanExpCutoff {
		// 2 atan(exp(x)) - π/2 = 2 atan(tanh(x/2)) = 2 atan(m/(m + 2)), m = exp(x) - 1
		m := expm1Safe(x)
		return -2 * math.Atan(m/(m+2))
	}
	return math.Pi/2 - 2*math.Atan(math.Exp(x))
}

// log1pSafe returns log(1 + x) without losing the low order bits of x.
//
// y = 1 + z exactly and z approximates x, so log(y)/z (which is nearly
// constant near z = 0) is a good approximation to log(1 + x)/x. The explicit
// conversions force y and z to be rounded to float64 so the compiler cannot
// fold z back into x.
func log1pSafe(x float64) float64 {
	y := float64(1 + x)
	z := float64(y - 1)
	if z == 0 {
		return x
	}
	return x * math.Log(y) / z
}

// expm1Safe returns exp(x) - 1 without losing the low order bits of x.
func expm1Safe(x float64) float64 {
	if math.Abs(x) <= epsilon {
		return x
	}
	u := float64(math.Exp(x))
	if u == 1 {
		return x
	}
	um1 := float64(u - 1)
	if um1 == -1 {
		return -1
	}
	if math.IsInf(u, 1) {
		return u
	}
	// Kahan: the rounding error in u cancels between u - 1 and log(u).
	return um1 * x / math.Log(u)
}
