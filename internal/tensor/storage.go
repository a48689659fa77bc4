package tensor

// Storage is the raw data container for tensor elements: a flat, fixed-length
// float32 buffer. The interpretation of the data (shape, strides) belongs to
// Tensor; Storage itself is dimension-agnostic.
type Storage struct {
	data []float32
}

// NewStorage allocates a zero-initialized buffer of the given size.
func NewStorage(size int) *Storage {
	return &Storage{data: make([]float32, size)}
}

// StorageFromSlice wraps an existing buffer without copying.
// The caller hands over ownership; the slice must not be mutated afterwards.
func StorageFromSlice(data []float32) *Storage {
	return &Storage{data: data}
}

// Data returns the underlying buffer.
//
// WARNING: Modifications to the returned slice will modify the storage.
func (s *Storage) Data() []float32 {
	return s.data
}

// Len returns the number of elements in the buffer.
func (s *Storage) Len() int {
	return len(s.data)
}

// IsEmpty returns true if the buffer holds no elements.
func (s *Storage) IsEmpty() bool {
	return len(s.data) == 0
}

// Clone returns a deep copy of the storage.
func (s *Storage) Clone() *Storage {
	data := make([]float32, len(s.data))
	copy(data, s.data)
	return &Storage{data: data}
}
