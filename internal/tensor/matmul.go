package tensor

import "fmt"

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Both operands must be rank 2 and the inner dimensions must agree.
// Uses a naive O(M*N*K) triple loop; summation runs row-by-row,
// column-by-column, over increasing k.
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if t.NumDims() != 2 || other.NumDims() != 2 {
		return nil, fmt.Errorf("%w: matmul requires 2D operands, got %dD and %dD",
			ErrRank, t.NumDims(), other.NumDims())
	}

	m, k := t.shape[0], t.shape[1]
	kAlt, n := other.shape[0], other.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("%w: matmul [%d,%d] @ [%d,%d]: inner dimensions %d and %d differ",
			ErrDimensionMismatch, m, k, kAlt, n, k, kAlt)
	}

	out := Zeros(Shape{m, n})
	a, b, c := t.storage.Data(), other.storage.Data(), out.storage.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return out, nil
}
