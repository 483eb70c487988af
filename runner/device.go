// device.go
//
// The host-to-device transfer primitive consumed by the batch assembly core.
// Transfers are non-blocking from the core's point of view: the accelerator
// runtime orders them before any kernel that consumes the data, so the core
// fires them and moves on.

package runner

// DType selects the on-device element width for a transfer.
type DType int

const (
	DTypeInt32 DType = iota
	DTypeInt64
)

// Array is an opaque handle to an on-device integer array.
type Array interface {
	// Len returns the element count.
	Len() int
	// DType returns the element type requested at transfer time.
	DType() DType
	// Ints returns a host-side view of the elements. Real backends copy
	// device memory back; the host backend returns its buffer directly.
	Ints() []int64
}

// Device issues host-to-device transfers. Implementations must be safe to
// call repeatedly with disjoint data within a step.
type Device interface {
	// FromInts copies the given integers to the device without blocking.
	// The caller may reuse data after the call returns.
	FromInts(data []int64, dtype DType) Array
}

// HostDevice is the in-memory Device used by tests and the CLI harness.
// Its "transfer" is a plain copy; the implicit pre-kernel synchronization a
// real accelerator runtime provides is a no-op here.
type HostDevice struct{}

type hostArray struct {
	dtype DType
	data  []int64
}

func (a *hostArray) Len() int      { return len(a.data) }
func (a *hostArray) DType() DType  { return a.dtype }
func (a *hostArray) Ints() []int64 { return a.data }

// FromInts copies data into a host-resident array.
func (HostDevice) FromInts(data []int64, dtype DType) Array {
	buf := make([]int64, len(data))
	copy(buf, data)
	return &hostArray{dtype: dtype, data: buf}
}
