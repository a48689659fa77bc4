package tensor

import (
	"math"
	"math/rand"
)

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	t := Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Eye creates an n x n identity matrix.
func Eye(n int) *Tensor {
	t := Zeros(Shape{n, n})
	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return t
}

// Arange creates a 1D tensor with values [start, start+1, ..., end-1].
func Arange(start, end float32) *Tensor {
	numElements := int(end - start)
	if numElements <= 0 {
		panic("arange: end must be greater than start")
	}

	t := Zeros(Shape{numElements})
	data := t.Data()
	for i := range data {
		data[i] = start + float32(i)
	}
	return t
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Uses math/rand, which is appropriate for numerical work and keeps
// runs reproducible under a fixed seed.
func Rand(shape Shape) *Tensor {
	t := Zeros(shape)
	data := t.Data()
	for i := range data {
		data[i] = float32(rand.Float64()) //nolint:gosec // G404: reproducible numeric data, not secrets
	}
	return t
}

// Randn creates a tensor with values drawn from a standard normal
// distribution (mean=0, std=1) via the Box-Muller transform.
func Randn(shape Shape) *Tensor {
	t := Zeros(shape)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := rand.Float64() //nolint:gosec // G404: reproducible numeric data, not secrets
		u2 := rand.Float64() //nolint:gosec // G404: reproducible numeric data, not secrets
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = float32(z0)
		if i+1 < len(data) {
			data[i+1] = float32(z1)
		}
	}
	return t
}
