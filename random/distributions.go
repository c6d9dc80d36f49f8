package random

import (
	"fmt"
	"math"
)

const (
	twoPi = 2 * math.Pi

	// vonMisesMinKappa is the concentration below which the von Mises distribution is treated as uniform.
	vonMisesMinKappa = 1e-6
)

var (
	normalMagic = 4 * math.Exp(-0.5) / math.Sqrt(2.0)
	log4        = math.Log(4.0)
	gammaMagic  = 1.0 + math.Log(4.5)
)

// Uniform returns a float N such that a <= N <= b for a <= b and b <= N <= a for b < a.
func (r *Rand) Uniform(a, b float64) float64 {
	return a + (b-a)*r.Random()
}

// Triangular returns a float N such that low <= N <= high, with the given mode between those bounds.
func (r *Rand) Triangular(low, high, mode float64) float64 {
	if high == low {
		return low
	}

	var (
		u = r.Random()
		c = (mode - low) / (high - low)
	)

	if u > c {
		u, c = 1.0-u, 1.0-c
		low, high = high, low
	}

	return low + (high-low)*math.Sqrt(u*c)
}

// NormalVariate returns a normally distributed float using the Kinderman and Monahan ratio method.
func (r *Rand) NormalVariate(mu, sigma float64) float64 {
	var z float64

	for {
		u1 := r.Random()
		u2 := 1.0 - r.Random()

		z = normalMagic * (u1 - 0.5) / u2
		if z*z/4.0 <= -math.Log(u2) {
			break
		}
	}

	return mu + z*sigma
}

// Gauss returns a normally distributed float using the Box-Muller transform. Unlike 'NormalVariate' it always
// consumes exactly two draws; the second value of each pair is discarded rather than cached.
func (r *Rand) Gauss(mu, sigma float64) float64 {
	var (
		x2pi  = r.Random() * twoPi
		g2rad = math.Sqrt(-2.0 * math.Log(1.0-r.Random()))
	)

	return mu + math.Cos(x2pi)*g2rad*sigma
}

// ExpoVariate returns an exponentially distributed float, lambda is one divided by the desired mean.
func (r *Rand) ExpoVariate(lambda float64) float64 {
	return -math.Log(1.0-r.Random()) / lambda
}

// GammaVariate returns a gamma distributed float with shape alpha and scale beta, both must be positive.
func (r *Rand) GammaVariate(alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, fmt.Errorf("%w: gammavariate requires alpha > 0 and beta > 0, got alpha=%g beta=%g",
			ErrInvalidParameter, alpha, beta)
	}

	switch {
	case alpha > 1:
		return r.gammaCheng(alpha) * beta, nil
	case alpha == 1:
		return -math.Log(1.0-r.Random()) * beta, nil
	default:
		return r.gammaSmallShape(alpha) * beta, nil
	}
}

// gammaCheng implements R.C.H. Cheng's rejection algorithm for alpha > 1.
func (r *Rand) gammaCheng(alpha float64) float64 {
	var (
		ainv = math.Sqrt(2.0*alpha - 1.0)
		bbb  = alpha - log4
		ccc  = alpha + ainv
	)

	for {
		u1 := r.Random()
		if u1 <= 1e-7 || u1 >= 0.9999999 {
			continue
		}

		u2 := 1.0 - r.Random()

		var (
			v = math.Log(u1/(1.0-u1)) / ainv
			x = alpha * math.Exp(v)
			z = u1 * u1 * u2
			t = bbb + ccc*v - x
		)

		if t+gammaMagic-4.5*z >= 0 || t >= math.Log(z) {
			return x
		}
	}
}

// gammaSmallShape implements the GS algorithm from Ahrens and Dieter for 0 < alpha < 1.
func (r *Rand) gammaSmallShape(alpha float64) float64 {
	b := (math.E + alpha) / math.E

	for {
		p := b * r.Random()

		var x float64
		if p <= 1.0 {
			x = math.Pow(p, 1.0/alpha)
		} else {
			x = -math.Log((b - p) / alpha)
		}

		u := r.Random()

		if p > 1.0 {
			if u <= math.Pow(x, alpha-1.0) {
				return x
			}
		} else if u <= math.Exp(-x) {
			return x
		}
	}
}

// BetaVariate returns a beta distributed float in [0, 1], alpha and beta must both be positive.
func (r *Rand) BetaVariate(alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, fmt.Errorf("%w: betavariate requires alpha > 0 and beta > 0, got alpha=%g beta=%g",
			ErrInvalidParameter, alpha, beta)
	}

	// Both parameters are valid, the errors below can't occur.
	y, _ := r.GammaVariate(alpha, 1.0)
	if y == 0 {
		return 0, nil
	}

	z, _ := r.GammaVariate(beta, 1.0)

	return y / (y + z), nil
}

// VonMisesVariate returns an angle in [0, 2*pi) from the circular normal distribution with mean angle mu and
// concentration kappa.
func (r *Rand) VonMisesVariate(mu, kappa float64) float64 {
	if kappa <= vonMisesMinKappa {
		return twoPi * r.Random()
	}

	var (
		s   = 0.5 / kappa
		rho = s + math.Sqrt(1.0+s*s)
		z   float64
	)

	for {
		z = math.Cos(math.Pi * r.Random())

		d := z / (rho + z)
		u := r.Random()

		if u < 1.0-d*d || u <= (1.0-d)*math.Exp(d) {
			break
		}
	}

	var (
		q = 1.0 / rho
		f = (q + z) / (1.0 + q*z)
	)

	if r.Random() > 0.5 {
		return floorModFloat(mu+math.Acos(f), twoPi)
	}

	return floorModFloat(mu-math.Acos(f), twoPi)
}

// ParetoVariate returns a Pareto distributed float with shape alpha.
func (r *Rand) ParetoVariate(alpha float64) float64 {
	u := 1.0 - r.Random()
	return math.Pow(u, -1.0/alpha)
}

// WeibullVariate returns a Weibull distributed float with scale alpha and shape beta.
func (r *Rand) WeibullVariate(alpha, beta float64) float64 {
	u := 1.0 - r.Random()
	return alpha * math.Pow(-math.Log(u), 1.0/beta)
}

// floorModFloat returns x modulo y with the sign of y.
func floorModFloat(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}

	return m
}
