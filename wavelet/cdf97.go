package wavelet

// CDF97 owns a sample volume and the scratch space needed to transform it.
// The zero value is an empty instance ready for ingestion. Instances are not
// safe for concurrent use; distinct instances are independent.
type CDF97 struct {
	data []float64
	dims Dims

	// buf holds a gathered run plus a working copy for one lifting
	// invocation; sized to 2*max(dx,dy,dz) at ingest.
	buf []float64

	// plane materializes whole planes during wavelet-packet passes along
	// the y and z axes; allocated lazily on first use.
	plane []float64
}

// Sample is the set of element types accepted for ingestion. Each element is
// value-converted to float64.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CopyData installs a copy of src as the owned volume with the given shape,
// converting each element to float64, and resets any prior state. It is a
// free function because Go methods cannot take type parameters.
func CopyData[T Sample](c *CDF97, src []T, dims Dims) error {
	if len(src) != dims.Total() {
		return ErrWrongDims
	}

	if cap(c.data) < len(src) {
		c.data = make([]float64, len(src))
	} else {
		c.data = c.data[:len(src)]
	}
	for i, v := range src {
		c.data[i] = float64(v)
	}

	c.dims = dims
	c.resetScratch()

	return nil
}

// TakeData adopts buf as the owned volume with the given shape and resets
// any prior state. The caller must not use buf afterwards.
func (c *CDF97) TakeData(buf []float64, dims Dims) error {
	if len(buf) != dims.Total() {
		return ErrWrongDims
	}

	c.data = buf
	c.dims = dims
	c.resetScratch()

	return nil
}

// ViewData returns the owned volume. The caller must not modify it.
func (c *CDF97) ViewData() []float64 {
	return c.data
}

// ReleaseData hands the owned volume back to the caller and clears the
// shape. Scratch capacity is retained for reuse.
func (c *CDF97) ReleaseData() []float64 {
	buf := c.data
	c.data = nil
	c.dims = Dims{}
	return buf
}

// Dims returns the current shape.
func (c *CDF97) Dims() Dims {
	return c.dims
}

// resetScratch sizes the lifting scratch for the current shape. Scratch only
// grows, never shrinks.
func (c *CDF97) resetScratch() {
	need := 2 * max(c.dims[0], max(c.dims[1], c.dims[2]))
	if cap(c.buf) < need {
		c.buf = make([]float64, need)
	} else {
		c.buf = c.buf[:cap(c.buf)]
	}
}

// planeScratch returns the plane scratch, allocating it on first use. The
// wavelet-packet z pass materializes x-z planes, so the buffer covers those
// as well as x-y planes.
func (c *CDF97) planeScratch() []float64 {
	need := max(c.dims[0]*c.dims[1], c.dims[0]*c.dims[2])
	if cap(c.plane) < need {
		c.plane = make([]float64, need)
	}
	return c.plane[:cap(c.plane)]
}
