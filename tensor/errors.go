// Copyright 2026 Flint ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// Sentinel errors surfaced by tensor operations. Match with errors.Is.
var (
	// ErrInvalidShape reports a shape containing a negative dimension.
	ErrInvalidShape = tensor.ErrInvalidShape

	// ErrShapeMismatch reports operand shapes (or a data length and a
	// declared shape) that must agree but do not.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrIndexArity reports a multi-index whose length differs from the
	// tensor's rank.
	ErrIndexArity = tensor.ErrIndexArity

	// ErrIndexOutOfBounds reports an index exceeding its dimension size.
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds

	// ErrRank reports an operand of unsupported rank.
	ErrRank = tensor.ErrRank

	// ErrDimensionMismatch reports incompatible operand dimensions.
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
)
