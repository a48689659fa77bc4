package tensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringVector(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	assert.Equal(t, "Tensor([1.0000, 2.0000, 3.0000], shape=[3])", x.String())
}

func TestStringMatrix(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	want := "Tensor([[1.0000, 2.0000, 3.0000],\n" +
		" [4.0000, 5.0000, 6.0000]], shape=[2, 3])"
	assert.Equal(t, want, x.String())
}

func TestStringScalar(t *testing.T) {
	x := Zeros(Shape{})
	assert.Equal(t, "Tensor(0.0000, shape=[])", x.String())
}

func TestStringTruncation(t *testing.T) {
	x := Arange(0, 10) // shape [10] exceeds the threshold of 6

	want := "Tensor([0.0000, 1.0000, 2.0000, ..., 7.0000, 8.0000, 9.0000], shape=[10])"
	assert.Equal(t, want, x.String())
}

func TestStringNoTruncationAtThreshold(t *testing.T) {
	x := Arange(0, 6) // exactly at the threshold, printed in full
	s := x.String()

	assert.NotContains(t, s, "...")
	assert.Equal(t, 6, strings.Count(s, "."), "one decimal point per element")
}

func TestStringTruncatedOuterDimension(t *testing.T) {
	x := Zeros(Shape{10, 2})
	s := x.String()

	assert.Contains(t, s, "...")
	// Only 3 head and 3 tail rows are rendered.
	assert.Equal(t, 6, strings.Count(s, "[0.0000, 0.0000]"))
}

func TestStringNestedIndentation(t *testing.T) {
	x := Zeros(Shape{2, 2, 2})
	s := x.String()

	// Depth-1 siblings indent one space, depth-2 siblings two spaces.
	assert.Contains(t, s, "],\n [")
	assert.Contains(t, s, "],\n  [")
}
