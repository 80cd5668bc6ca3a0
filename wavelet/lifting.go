package wavelet

import "math"

// Filter bank taps of the CDF 9/7 biorthogonal wavelet, from Cohen,
// Daubechies and Feauveau, "Biorthogonal Bases of Compactly Supported
// Wavelets", p. 551.
var h = [5]float64{
	0.602949018236,
	0.266864118443,
	-0.078223266529,
	-0.016864118443,
	0.026748757411,
}

// Lifting constants in closed form from the taps, computed once at package
// initialization so every level uses identical values.
//
// QccPack ships rounded equivalents (ALPHA = -1.58615986717275,
// BETA = -0.05297864003258, GAMMA = 0.88293362717904,
// DELTA = 0.44350482244527, EPSILON = 1.14960430535816); the closed-form set
// below is the one in use.
var (
	r0 = h[0] - 2.0*h[4]*h[1]/h[3]
	r1 = h[2] - h[4] - h[4]*h[1]/h[3]
	s0 = h[1] - h[3] - h[3]*r0/r1
	t0 = h[0] - 2.0*(h[2]-h[4])

	alpha      = h[4] / h[3]
	beta       = h[3] / r1
	gamma      = r1 / s0
	delta      = s0 / t0
	epsilon    = math.Sqrt2 * t0
	invEpsilon = 1.0 / epsilon
)

// analysisEven runs the forward lifting steps in place on an even-length
// signal. Low-pass results land on even indices, high-pass on odd indices.
// len(s) must be even and at least 2.
func analysisEven(s []float64) {
	n := len(s)

	// Predict 1
	for i := 1; i < n-2; i += 2 {
		s[i] += alpha * (s[i-1] + s[i+1])
	}
	s[n-1] += 2.0 * alpha * s[n-2]

	// Update 1
	s[0] += 2.0 * beta * s[1]
	for i := 2; i < n; i += 2 {
		s[i] += beta * (s[i-1] + s[i+1])
	}

	// Predict 2
	for i := 1; i < n-2; i += 2 {
		s[i] += gamma * (s[i-1] + s[i+1])
	}
	s[n-1] += 2.0 * gamma * s[n-2]

	// Update 2
	s[0] += 2.0 * delta * s[1]
	for i := 2; i < n; i += 2 {
		s[i] += delta * (s[i-1] + s[i+1])
	}

	// Scale
	for i := 0; i < n; i += 2 {
		s[i] *= epsilon
		s[i+1] *= -invEpsilon
	}
}

// analysisOdd is the odd-length variant of analysisEven: the signal ends on
// an even index, so both ends mirror on even samples. len(s) must be odd and
// at least 3.
func analysisOdd(s []float64) {
	n := len(s)

	// Predict 1
	for i := 1; i < n-1; i += 2 {
		s[i] += alpha * (s[i-1] + s[i+1])
	}

	// Update 1
	s[0] += 2.0 * beta * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] += beta * (s[i-1] + s[i+1])
	}
	s[n-1] += 2.0 * beta * s[n-2]

	// Predict 2
	for i := 1; i < n-1; i += 2 {
		s[i] += gamma * (s[i-1] + s[i+1])
	}

	// Update 2
	s[0] += 2.0 * delta * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] += delta * (s[i-1] + s[i+1])
	}
	s[n-1] += 2.0 * delta * s[n-2]

	// Scale
	for i := 1; i < n; i += 2 {
		s[i-1] *= epsilon
		s[i] *= -invEpsilon
	}
	s[n-1] *= epsilon
}

// synthesisEven inverts analysisEven in place: unscale, then undo the
// lifting steps in reverse order with flipped signs.
func synthesisEven(s []float64) {
	n := len(s)

	// Unscale
	for i := 0; i < n; i += 2 {
		s[i] *= invEpsilon
		s[i+1] *= -epsilon
	}

	// Undo update 2
	s[0] -= 2.0 * delta * s[1]
	for i := 2; i < n; i += 2 {
		s[i] -= delta * (s[i-1] + s[i+1])
	}

	// Undo predict 2
	for i := 1; i < n-2; i += 2 {
		s[i] -= gamma * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2.0 * gamma * s[n-2]

	// Undo update 1
	s[0] -= 2.0 * beta * s[1]
	for i := 2; i < n; i += 2 {
		s[i] -= beta * (s[i-1] + s[i+1])
	}

	// Undo predict 1
	for i := 1; i < n-2; i += 2 {
		s[i] -= alpha * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2.0 * alpha * s[n-2]
}

// synthesisOdd inverts analysisOdd in place.
func synthesisOdd(s []float64) {
	n := len(s)

	// Unscale
	for i := 1; i < n; i += 2 {
		s[i-1] *= invEpsilon
		s[i] *= -epsilon
	}
	s[n-1] *= invEpsilon

	// Undo update 2
	s[0] -= 2.0 * delta * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] -= delta * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2.0 * delta * s[n-2]

	// Undo predict 2
	for i := 1; i < n-1; i += 2 {
		s[i] -= gamma * (s[i-1] + s[i+1])
	}

	// Undo update 1
	s[0] -= 2.0 * beta * s[1]
	for i := 2; i < n-1; i += 2 {
		s[i] -= beta * (s[i-1] + s[i+1])
	}
	s[n-1] -= 2.0 * beta * s[n-2]

	// Undo predict 1
	for i := 1; i < n-1; i += 2 {
		s[i] -= alpha * (s[i-1] + s[i+1])
	}
}

// analysis dispatches on signal parity. len(s) must be at least 2.
func analysis(s []float64) {
	if len(s)%2 == 0 {
		analysisEven(s)
	} else {
		analysisOdd(s)
	}
}

// synthesis dispatches on signal parity. len(s) must be at least 2.
func synthesis(s []float64) {
	if len(s)%2 == 0 {
		synthesisEven(s)
	} else {
		synthesisOdd(s)
	}
}
