// batch.go
//
// Defines the Batch struct which represents a group of requests processed
// together in a single forward pass. A batch is uniformly prefill or
// uniformly decode; the scheduler never mixes phases, and the tagged kind
// makes that explicit instead of inferring it from the first request.

package runner

import "fmt"

// BatchKind tags a batch as all-prefill or all-decode.
type BatchKind int

const (
	BatchPrefill BatchKind = iota
	BatchDecode
)

// String returns a human-readable batch kind.
func (k BatchKind) String() string {
	if k == BatchPrefill {
		return "prefill"
	}
	return "decode"
}

// Batch represents a group of requests being processed in one step.
// Construct it with NewPrefillBatch or NewDecodeBatch; the constructors
// enforce the uniform-phase invariant so the core never re-checks it.
type Batch struct {
	Kind     BatchKind  // phase shared by every request in the batch
	Requests []*Request // Requests included in the current batch
}

// NewPrefillBatch creates a prefill batch. Every request must be in prompt
// phase; an empty batch or a decode request here is a scheduler bug.
func NewPrefillBatch(reqs []*Request) *Batch {
	if len(reqs) == 0 {
		panic("runner: empty prefill batch")
	}
	for _, req := range reqs {
		if !req.IsPrompt {
			panic(fmt.Sprintf("runner: decode request %s in prefill batch", req.ID))
		}
	}
	return &Batch{Kind: BatchPrefill, Requests: reqs}
}

// NewDecodeBatch creates a decode batch. Every request must be past its
// prompt phase; an empty batch or a prefill request here is a scheduler bug.
func NewDecodeBatch(reqs []*Request) *Batch {
	if len(reqs) == 0 {
		panic("runner: empty decode batch")
	}
	for _, req := range reqs {
		if req.IsPrompt {
			panic(fmt.Sprintf("runner: prefill request %s in decode batch", req.ID))
		}
	}
	return &Batch{Kind: BatchDecode, Requests: reqs}
}
