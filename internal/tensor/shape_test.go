package tensor

import (
	"testing"
)

func assertIntsEqual(t *testing.T, expected, actual []int, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
		}
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // scalar convention
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{7, 0, 3}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeNumDims(t *testing.T) {
	if got := (Shape{}).NumDims(); got != 0 {
		t.Errorf("empty shape NumDims() = %d, want 0", got)
	}
	if got := (Shape{2, 3, 4}).NumDims(); got != 3 {
		t.Errorf("NumDims() = %d, want 3", got)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		assertIntsEqual(t, tt.want, tt.shape.ComputeStrides(), tt.shape.String())
	}
}

func TestShapeStridesLaw(t *testing.T) {
	// strides[last] == 1 and strides[i] == strides[i+1] * dims[i+1].
	shapes := []Shape{{3}, {4, 5}, {2, 3, 4}, {6, 1, 2, 5}}
	for _, s := range shapes {
		strides := s.ComputeStrides()
		if strides[len(strides)-1] != 1 {
			t.Errorf("%v: last stride = %d, want 1", s, strides[len(strides)-1])
		}
		for i := 0; i < len(s)-1; i++ {
			if strides[i] != strides[i+1]*s[i+1] {
				t.Errorf("%v: strides[%d] = %d, want %d", s, i, strides[i], strides[i+1]*s[i+1])
			}
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank reported equal")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] != 2 {
		t.Error("mutating clone changed the original")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero-size dimension rejected: %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 3, 4}).String(); got != "[2, 3, 4]" {
		t.Errorf("String() = %q, want %q", got, "[2, 3, 4]")
	}
	if got := (Shape{}).String(); got != "[]" {
		t.Errorf("String() = %q, want %q", got, "[]")
	}
}
