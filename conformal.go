package mercator

import (
	"errors"
	"math"
)

// errNoConvergence is returned by phi2 when the latitude iteration fails to
// produce a solution.
var errNoConvergence = errors.New("conformal latitude iteration did not converge")

const phi2MaxIter = 30

// tsfn computes Snyder's t, exp(-ψ) for the isometric latitude ψ of phi on
// an ellipsoid of eccentricity e. It is positive for phi in (-π/2, π/2).
func tsfn(phi, sinPhi, e float64) float64 {
	esSin := e * sinPhi
	powEs := math.Pow((1.0-esSin)/(1.0+esSin), 0.5*e)
	return math.Tan(0.5*(math.Pi/2-phi)) / powEs
}

// phi2 inverts tsfn, returning the geodetic latitude whose t value is ts.
//
// Rather than the classic fixed point iteration
//
//	phi = π/2 - 2 atan(ts * ((1 - e sin phi)/(1 + e sin phi))^(e/2))
//
// which slows to a crawl as e approaches 1, this solves for tau = tan(phi)
// given taup = sinh(ψ) with Newton's method (C. F. F. Karney, "Transverse
// Mercator with an accuracy of a few nanometers", J. Geodesy 85, 2011). The
// starting guess lies on the convex side of the root so the iteration
// converges monotonically for every e in [0, 1).
func phi2(ts, e float64) (float64, error) {
	if math.IsNaN(ts) || ts < 0 {
		return 0, errNoConvergence
	}
	taup := 0.5 * (1/ts - ts)
	tau, ok := sinhPsiToTanPhi(taup, e)
	if !ok {
		return 0, errNoConvergence
	}
	return math.Atan(tau), nil
}

func sinhPsiToTanPhi(taup, e float64) (float64, bool) {
	rootEps := math.Sqrt(epsilon)
	tol := rootEps / 10
	tmax := 2 / rootEps
	e2m := 1 - e*e
	stol := tol * math.Max(1, math.Abs(taup))

	var tau float64
	if math.Abs(taup) > 70 {
		tau = taup * math.Exp(e*math.Atanh(e))
	} else {
		tau = taup / e2m
	}
	// Large, infinite and NaN values need no refinement; tan(phi) is
	// already ±Inf, or atan rounds it to ±π/2 anyway.
	if !(math.Abs(tau) < tmax) {
		return tau, !math.IsNaN(tau)
	}
	for i := 0; i < phi2MaxIter; i++ {
		tau1 := math.Hypot(1, tau)
		sig := math.Sinh(e * math.Atanh(e*tau/tau1))
		taupa := math.Hypot(1, sig)*tau - sig*tau1
		dtau := (taup - taupa) * (1 + e2m*tau*tau) /
			(e2m * tau1 * math.Hypot(1, taupa))
		tau += dtau
		if !(math.Abs(dtau) >= stol) {
			return tau, !math.IsNaN(tau)
		}
	}
	return 0, false
}

// msfn is the scale factor at latitude phi of a parallel on an ellipsoid with
// eccentricity squared es, relative to the semi-major axis.
func msfn(sinPhi, cosPhi, es float64) float64 {
	return cosPhi / math.Sqrt(1.0-es*sinPhi*sinPhi)
}
