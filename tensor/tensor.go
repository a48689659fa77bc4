// Copyright 2026 Flint ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense float32 tensors in flint.
//
// A tensor composes three layers:
//   - Shape: dimension sizes and derived row-major strides
//   - Storage: the flat buffer of elements
//   - Tensor: shape-aware indexing, arithmetic, matmul and display
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := tensor.FromSlice([]float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
//	c, _ := a.MatMul(b)
//	fmt.Println(c)
package tensor

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Storage is the flat float32 buffer backing a tensor.
// Most users never touch Storage directly; Tensor owns it.
type Storage = tensor.Storage

// Tensor is a dense multi-dimensional float32 array.
//
// All arithmetic operations are pure: they allocate a fresh result and
// never mutate their operands. Set is the only mutating operation.
type Tensor = tensor.Tensor

// Creation functions

// Zeros creates a tensor of the given shape filled with zeros.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Tensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float32) *Tensor {
	return tensor.Full(shape, value)
}

// Eye creates an n x n identity matrix.
func Eye(n int) *Tensor {
	return tensor.Eye(n)
}

// Arange creates a 1D tensor with values [start, start+1, ..., end-1].
func Arange(start, end float32) *Tensor {
	return tensor.Arange(start, end)
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
func Rand(shape Shape) *Tensor {
	return tensor.Rand(shape)
}

// Randn creates a tensor with values drawn from a standard normal
// distribution (mean=0, std=1).
func Randn(shape Shape) *Tensor {
	return tensor.Randn(shape)
}

// FromSlice creates a tensor from a flat slice in row-major order.
// The slice is adopted without copying. Fails when the slice length does
// not match the shape's element count.
func FromSlice(data []float32, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// New creates a Tensor over an existing Storage.
func New(storage *Storage, shape Shape) (*Tensor, error) {
	return tensor.New(storage, shape)
}

// NewStorage allocates a zero-initialized buffer of the given size.
func NewStorage(size int) *Storage {
	return tensor.NewStorage(size)
}

// StorageFromSlice wraps an existing buffer without copying.
func StorageFromSlice(data []float32) *Storage {
	return tensor.StorageFromSlice(data)
}
