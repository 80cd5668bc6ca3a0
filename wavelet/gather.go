package wavelet

// Sub-band permutations. After a lifting pass the low-pass samples sit on
// even indices and the high-pass samples on odd indices; gather moves them
// into a contiguous [low | high] layout and scatter reverses that. Both run
// source-to-destination over equal-length, non-overlapping slices, with the
// split point at ceil(n/2).

// gatherEven deinterleaves an even-length signal.
func gatherEven(src, dst []float64) {
	low := len(src) / 2
	for i := 0; i < low; i++ {
		dst[i] = src[2*i]
		dst[low+i] = src[2*i+1]
	}
}

// gatherOdd deinterleaves an odd-length signal; the low half holds one more
// sample than the high half.
func gatherOdd(src, dst []float64) {
	low := len(src)/2 + 1
	for i := 0; i < low-1; i++ {
		dst[i] = src[2*i]
		dst[low+i] = src[2*i+1]
	}
	dst[low-1] = src[len(src)-1]
}

// scatterEven interleaves [low | high] back into even/odd positions.
func scatterEven(src, dst []float64) {
	low := len(src) / 2
	for i := 0; i < low; i++ {
		dst[2*i] = src[i]
		dst[2*i+1] = src[low+i]
	}
}

// scatterOdd is the odd-length inverse of gatherOdd.
func scatterOdd(src, dst []float64) {
	low := len(src)/2 + 1
	for i := 0; i < low-1; i++ {
		dst[2*i] = src[i]
		dst[2*i+1] = src[low+i]
	}
	dst[len(src)-1] = src[low-1]
}

// gather dispatches on signal parity.
func gather(src, dst []float64) {
	if len(src)%2 == 0 {
		gatherEven(src, dst)
	} else {
		gatherOdd(src, dst)
	}
}

// scatter dispatches on signal parity.
func scatter(src, dst []float64) {
	if len(src)%2 == 0 {
		scatterEven(src, dst)
	} else {
		scatterOdd(src, dst)
	}
}
