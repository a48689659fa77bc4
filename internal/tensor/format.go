package tensor

import (
	"fmt"
	"strings"
)

// truncateThreshold is the largest dimension size printed in full.
// Larger dimensions show the first and last truncateThreshold/2 elements
// around an ellipsis.
const truncateThreshold = 6

// String renders the tensor as nested brackets mirroring its dimensional
// structure, with scalar values formatted to 4 decimal digits:
//
//	Tensor([[1.0000, 2.0000],
//	 [3.0000, 4.0000]], shape=[2, 2])
func (t *Tensor) String() string {
	var sb strings.Builder
	sb.WriteString("Tensor(")
	if t.NumDims() == 0 {
		fmt.Fprintf(&sb, "%.4f", t.storage.Data()[t.offset])
	} else {
		t.writeDim(&sb, 0, t.offset, 1)
	}
	fmt.Fprintf(&sb, ", shape=%s)", t.shape)
	return sb.String()
}

// writeDim recursively renders dimension dim starting at flat position base.
// Siblings of the innermost dimension are separated by ", "; siblings of
// outer dimensions by a newline indented with depth spaces.
func (t *Tensor) writeDim(sb *strings.Builder, dim, base, depth int) {
	size := t.shape[dim]
	stride := t.strides[dim]
	innermost := dim == len(t.shape)-1

	sep := ", "
	if !innermost {
		sep = ",\n" + strings.Repeat(" ", depth)
	}

	writeElem := func(i int) {
		if innermost {
			fmt.Fprintf(sb, "%.4f", t.storage.Data()[base+i*stride])
		} else {
			t.writeDim(sb, dim+1, base+i*stride, depth+1)
		}
	}

	sb.WriteString("[")
	if size > truncateThreshold {
		// Skipped elements are never visited.
		head := truncateThreshold / 2
		for i := 0; i < head; i++ {
			if i > 0 {
				sb.WriteString(sep)
			}
			writeElem(i)
		}
		sb.WriteString(sep)
		sb.WriteString("...")
		for i := size - head; i < size; i++ {
			sb.WriteString(sep)
			writeElem(i)
		}
	} else {
		for i := 0; i < size; i++ {
			if i > 0 {
				sb.WriteString(sep)
			}
			writeElem(i)
		}
	}
	sb.WriteString("]")
}
