// pad.go
//
// Dense integer tensors and the ragged-row padding builder used to assemble
// batch inputs for a single fused forward pass.

package runner

import "fmt"

// Tensor is a dense row-major 2-D integer tensor assembled on the host.
// Token ids, position ids and index lists all use int64 to match the widest
// dtype the device transfer accepts.
type Tensor struct {
	Rows int     // number of rows (requests in prefill, sequences in decode)
	Cols int     // uniform row width after padding
	Data []int64 // row-major backing store, len == Rows*Cols
}

// At returns the element at row r, column c.
func (t *Tensor) At(r, c int) int64 {
	return t.Data[r*t.Cols+c]
}

// Row returns a view of row r. The slice aliases the tensor's backing store.
func (t *Tensor) Row(r int) []int64 {
	return t.Data[r*t.Cols : (r+1)*t.Cols]
}

// PadToMax returns x followed by the fill value repeated up to maxLen.
// A row longer than maxLen is a programmer error upstream (the caller
// computed maxLen as the batch maximum) and panics.
func PadToMax(x []int64, maxLen int, fill int64) []int64 {
	if len(x) > maxLen {
		panic(fmt.Sprintf("runner: row of length %d exceeds pad width %d", len(x), maxLen))
	}
	out := make([]int64, maxLen)
	copy(out, x)
	for i := len(x); i < maxLen; i++ {
		out[i] = fill
	}
	return out
}

// MakeTensorWithPad pads every row to maxLen with the fill value and
// materializes the result as a dense rows x maxLen tensor.
func MakeTensorWithPad(rows [][]int64, maxLen int, fill int64) *Tensor {
	t := &Tensor{
		Rows: len(rows),
		Cols: maxLen,
		Data: make([]int64, 0, len(rows)*maxLen),
	}
	for _, row := range rows {
		t.Data = append(t.Data, PadToMax(row, maxLen, fill)...)
	}
	return t
}
