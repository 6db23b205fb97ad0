package mercator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs((got - want) / want)
}

func TestLogTanHalfPlusQuarterPiCancellation(t *testing.T) {
	const x = 1e-12
	// log(tan(π/4 + x/2)) = x + x³/6 + ..., so x is exact to double precision.
	got := logTanHalfPlusQuarterPi(x)
	if e := relErr(got, x); e > 1e-15 {
		t.Fatalf("logTanHalfPlusQuarterPi(%g) = %.17g, relative error %g", x, got, e)
	}
	naive := math.Log(math.Tan(math.Pi/4 + 0.5*x))
	if e := relErr(naive, x); e < 1e-8 {
		t.Fatalf("expected the direct formula to lose precision at %g, relative error %g", x, e)
	}
	assert.Equal(t, -logTanHalfPlusQuarterPi(x), logTanHalfPlusQuarterPi(-x))
}

func TestLogTanHalfPlusQuarterPi(t *testing.T) {
	for x := -1.55; x < 1.55; x += 0.001 {
		want := math.Asinh(math.Tan(x))
		if e := relErr(logTanHalfPlusQuarterPi(x), want); e > 1e-14 {
			t.Fatalf("logTanHalfPlusQuarterPi(%g) = %.17g, expected %.17g", x, logTanHalfPlusQuarterPi(x), want)
		}
	}
	assert.Equal(t, 0.0, logTanHalfPlusQuarterPi(0))
	for _, x := range []float64{epsilon, -epsilon, epsilon / 2, 1e-300} {
		assert.InEpsilon(t, x, logTanHalfPlusQuarterPi(x), 1e-15, "x = %g", x)
	}
}

func TestHalfPiMinusTwoAtanExp(t *testing.T) {
	for x := -10.0; x < 10; x += 0.001 {
		want := -math.Atan(math.Sinh(x))
		if e := relErr(halfPiMinusTwoAtanExp(x), want); e > 1e-14 {
			t.Fatalf("halfPiMinusTwoAtanExp(%g) = %.17g, expected %.17g", x, halfPiMinusTwoAtanExp(x), want)
		}
	}
	for _, x := range []float64{1e-12, -1e-12, 3e-9, epsilon} {
		assert.InEpsilon(t, -x, halfPiMinusTwoAtanExp(x), 1e-15, "x = %g", x)
	}
	assert.Equal(t, 0.0, halfPiMinusTwoAtanExp(0))
	assert.Equal(t, -math.Pi/2, halfPiMinusTwoAtanExp(math.Inf(1)))
	assert.Equal(t, math.Pi/2, halfPiMinusTwoAtanExp(math.Inf(-1)))
}

func sampleArguments() []float64 {
	var xs []float64
	for ex := -300; ex <= 2; ex++ {
		for _, m := range []float64{1, 1.37, 3.3, 7.9} {
			x := m * math.Pow(10, float64(ex))
			xs = append(xs, x)
			if x < 1 {
				xs = append(xs, -x)
			}
		}
	}
	return xs
}

func TestLog1pSafe(t *testing.T) {
	for _, x := range sampleArguments() {
		want := math.Log1p(x)
		if e := relErr(log1pSafe(x), want); e > 2e-15 {
			t.Errorf("log1pSafe(%g) = %.17g, expected %.17g", x, log1pSafe(x), want)
		}
	}
	assert.Equal(t, 0.0, log1pSafe(0))
	assert.True(t, math.IsInf(log1pSafe(-1), -1))
}

func TestExpm1Safe(t *testing.T) {
	for _, x := range sampleArguments() {
		if x > 700 {
			continue
		}
		want := math.Expm1(x)
		if e := relErr(expm1Safe(x), want); e > 2e-15 {
			t.Errorf("expm1Safe(%g) = %.17g, expected %.17g", x, expm1Safe(x), want)
		}
	}
	assert.Equal(t, 0.0, expm1Safe(0))
	assert.Equal(t, -1.0, expm1Safe(-800))
	assert.True(t, math.IsInf(expm1Safe(800), 1))
}
