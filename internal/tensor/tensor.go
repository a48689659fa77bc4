package tensor

import (
	"fmt"
	"math"
)

// Tensor is a dense multi-dimensional float32 array.
//
// It combines:
//   - storage: the raw data as a flat buffer
//   - shape:   the logical dimensions
//   - strides: how to navigate memory for each dimension (row-major)
//   - offset:  starting position in storage (reserved for views; always 0)
type Tensor struct {
	storage *Storage
	shape   Shape
	strides []int
	offset  int
}

// New creates a Tensor over an existing Storage. The storage length must
// match the number of elements implied by the shape.
func New(storage *Storage, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if storage.Len() != shape.NumElements() {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but storage holds %d",
			ErrShapeMismatch, shape, shape.NumElements(), storage.Len())
	}
	return &Tensor{
		storage: storage,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		offset:  0,
	}, nil
}

// Zeros creates a tensor of the given shape filled with zeros.
func Zeros(shape Shape) *Tensor {
	t, err := New(NewStorage(shape.NumElements()), shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return t
}

// FromSlice creates a tensor from a flat slice in row-major order.
// The slice is adopted without copying; it must not be mutated afterwards.
// Fails when the slice length does not match the shape's element count.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	return New(StorageFromSlice(data), shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumDims returns the tensor's rank (0 for a scalar).
func (t *Tensor) NumDims() int {
	return t.shape.NumDims()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.strides
}

// Data returns the tensor's flat buffer in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float32 {
	return t.storage.Data()
}

// LinearIndex translates a multi-index into a flat storage position:
// offset + sum(indices[i] * strides[i]). The number of indices must equal
// the rank, and every index is bounds-checked against its dimension before
// any storage access.
func (t *Tensor) LinearIndex(indices ...int) (int, error) {
	if len(indices) != t.NumDims() {
		return 0, fmt.Errorf("%w: expected %d indices, got %d",
			ErrIndexArity, t.NumDims(), len(indices))
	}

	pos := t.offset
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)",
				ErrIndexOutOfBounds, idx, i, t.shape[i])
		}
		pos += idx * t.strides[i]
	}
	return pos, nil
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) (float32, error) {
	pos, err := t.LinearIndex(indices...)
	if err != nil {
		return 0, err
	}
	return t.storage.Data()[pos], nil
}

// Set writes value at the given indices.
// This is the only operation that mutates an existing tensor.
func (t *Tensor) Set(value float32, indices ...int) error {
	pos, err := t.LinearIndex(indices...)
	if err != nil {
		return err
	}
	t.storage.Data()[pos] = value
	return nil
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		storage: t.storage.Clone(),
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
		offset:  t.offset,
	}
}

// Equal reports whether two tensors have the same shape and exactly the
// same elements.
func (t *Tensor) Equal(other *Tensor) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	a, b := t.storage.Data(), other.storage.Data()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether two tensors have the same shape and elements
// within tol of each other. NaN compares unequal to everything.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	a, b := t.storage.Data(), other.storage.Data()
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) > tol {
			return false
		}
	}
	return true
}

// Reshape returns a new tensor with the same elements in row-major order
// but a different shape. The new shape must describe the same number of
// elements. The result owns a fresh copy of the data.
func (t *Tensor) Reshape(newShape Shape) (*Tensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, err
	}
	if newShape.NumElements() != t.NumElements() {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrShapeMismatch, t.shape, t.NumElements(), newShape, newShape.NumElements())
	}
	data := make([]float32, t.NumElements())
	copy(data, t.storage.Data())
	return FromSlice(data, newShape)
}
