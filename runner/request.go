// request.go
//
// Defines the Request struct: the scheduler's per-step snapshot of one
// in-flight generation request. The batch assembly core reads it and never
// mutates anything except the lazily-created generator in State.

package runner

import (
	"fmt"
	"sort"
)

// Request models one in-flight generation request as handed over by the
// scheduler for the current step. A request owns one or more sequences
// (parallel sampling / beam variants share the request's sampling config).
type Request struct {
	ID string // Unique identifier for the request

	IsPrompt       bool                     // true while the request is in prefill phase
	SeqData        map[int64]*SequenceState // sequence id -> token record
	SamplingParams *SamplingParams          // sampling configuration, shared by all sequences
	BlockTables    map[int64][]int64        // sequence id -> storage block indices (length 1 per batch invariant)

	// State survives across steps while everything above is a per-step
	// snapshot. It carries the request's seeded generator, created at most
	// once and reused on every later step.
	State RequestState
}

// SeqIDs returns the request's sequence ids in ascending order. Map iteration
// order is not deterministic in Go, and the flattened-row layout depends on a
// stable per-request sequence order, so callers must always go through this.
func (r *Request) SeqIDs() []int64 {
	ids := make([]int64, 0, len(r.SeqData))
	for id := range r.SeqData {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NumSeqs returns the number of sequences in the request.
func (r *Request) NumSeqs() int {
	return len(r.SeqData)
}

// This method returns a human-readable string representation of a Request.
func (r Request) String() string {
	phase := "decode"
	if r.IsPrompt {
		phase = "prefill"
	}
	return fmt.Sprintf("Request: (ID: %s, Phase: %s, NumSeqs: %d)", r.ID, phase, len(r.SeqData))
}
