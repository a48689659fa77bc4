package tensor

import "fmt"

// Element-wise operations. Every operation allocates a fresh result tensor;
// operands are never mutated. Both buffers are walked in lockstep by flat
// position, which is valid because all tensors are densely packed with
// offset 0 (no view constructors exist).

// Add performs element-wise addition. Shapes must be identical.
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.zip("add", other, func(a, b float32) float32 { return a + b })
}

// Sub performs element-wise subtraction. Shapes must be identical.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.zip("sub", other, func(a, b float32) float32 { return a - b })
}

// Mul performs element-wise multiplication. Shapes must be identical.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.zip("mul", other, func(a, b float32) float32 { return a * b })
}

// Div performs element-wise division. Shapes must be identical.
// Division by zero follows IEEE 754 semantics (±Inf or NaN), not an error.
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.zip("div", other, func(a, b float32) float32 { return a / b })
}

// zip combines two equally-shaped tensors position-wise.
func (t *Tensor) zip(op string, other *Tensor, fn func(a, b float32) float32) (*Tensor, error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %s requires identical shapes, got %v and %v",
			ErrShapeMismatch, op, t.shape, other.shape)
	}

	out := Zeros(t.shape)
	a, b, dst := t.storage.Data(), other.storage.Data(), out.storage.Data()
	for i := range dst {
		dst[i] = fn(a[i], b[i])
	}
	return out, nil
}

// AddScalar adds a scalar to every element, returning a new tensor.
func (t *Tensor) AddScalar(scalar float32) *Tensor {
	return t.apply(func(v float32) float32 { return v + scalar })
}

// MulScalar multiplies every element by a scalar, returning a new tensor.
// Scalar multiplication commutes; there is no separate scalar*tensor form.
func (t *Tensor) MulScalar(scalar float32) *Tensor {
	return t.apply(func(v float32) float32 { return v * scalar })
}

// Neg negates every element, returning a new tensor.
func (t *Tensor) Neg() *Tensor {
	return t.apply(func(v float32) float32 { return -v })
}

// apply maps fn over every element into a fresh tensor of the same shape.
func (t *Tensor) apply(fn func(v float32) float32) *Tensor {
	out := Zeros(t.shape)
	src, dst := t.storage.Data(), out.storage.Data()
	for i := range dst {
		dst[i] = fn(src[i])
	}
	return out
}
