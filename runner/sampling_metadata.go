// sampling_metadata.go
//
// SamplingMetadata: everything the sampler needs to know about where in the
// model's flattened output each request's logits live, and with which
// strategy each position must be sampled.

package runner

import "math/rand"

// SeqGroup pairs a request's sequence ids with its sampling configuration,
// in batch order.
type SeqGroup struct {
	SeqIDs         []int64
	SamplingParams *SamplingParams
}

// SamplingMetadata is handed to the sampler together with the model's hidden
// states. Index lists are kept on the host for inspection and mirrored onto
// the device ahead of the sampling kernel.
type SamplingMetadata struct {
	SeqGroups  []SeqGroup               // one entry per request, in batch order
	SeqData    map[int64]*SequenceState // union of every request's sequences
	PromptLens []int                    // per-request prompt length; empty for decode batches

	// SelectedTokenIndices lists, in batch order, every flattened output row
	// whose logits must be read, for sampling or for prompt logprob
	// reporting.
	SelectedTokenIndices []int64

	// CategorizedSampleIndices partitions the positions that need an actual
	// next-token decision by sampling strategy. Indices here address the
	// compacted logits produced by gathering SelectedTokenIndices, so
	// prompt-logprob-only positions are skipped over, not listed.
	CategorizedSampleIndices [NumSamplingTypes][]int64

	// Generators holds one handle per seeded request, in batch order,
	// matching the order of the random-seed bucket.
	Generators []*rand.Rand

	// Device mirrors, populated by the Runner before the model call.
	SelectedDevice    Array
	CategorizedDevice [NumSamplingTypes]Array
}
