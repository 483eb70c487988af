// sample_indices.go
//
// The sampling index resolver. Walks the batch in request order and computes,
// for every request, which flattened rows of the model's output must be read
// (selected indices) and which of those need an actual next-token decision,
// grouped by sampling strategy (categorized indices).
//
// Two cursors move through two different index spaces:
//   - selectedOffset walks the model's padded flattened output. A prefill
//     request occupies maxSubqueryLen rows there regardless of its real
//     prompt length, so the cursor strides by the padded width.
//   - categorizedOffset walks the compacted logits obtained by gathering the
//     selected rows. Prompt-logprob-only positions advance it without
//     entering any strategy bucket.

package runner

import "fmt"

// prepareSample resolves sampling indices for the batch. promptLens and
// subqueryLens come from the prefill builder and are empty for decode
// batches. Seeded requests get their generator handle created on first
// sight and reused afterwards.
func prepareSample(reqs []*Request, promptLens, subqueryLens []int) *SamplingMetadata {
	meta := &SamplingMetadata{
		SeqGroups:  make([]SeqGroup, 0, len(reqs)),
		SeqData:    make(map[int64]*SequenceState),
		PromptLens: promptLens,
	}

	selectedOffset := int64(0)
	categorizedOffset := int64(0)

	// Each decode row occupies exactly one flattened output row, so the
	// stride degenerates to 1 when there are no subquery lengths.
	maxSubqueryLen := 1
	if len(subqueryLens) > 0 {
		maxSubqueryLen = maxInts(subqueryLens)
	}

	for i, req := range reqs {
		seqIDs := req.SeqIDs()
		sp := req.SamplingParams
		meta.SeqGroups = append(meta.SeqGroups, SeqGroup{SeqIDs: seqIDs, SamplingParams: sp})
		strategy := sp.SamplingType()

		if req.IsPrompt {
			if len(seqIDs) != 1 {
				panic(fmt.Sprintf("runner: prefill request %s has %d sequences, want 1", req.ID, len(seqIDs)))
			}
			if i >= len(subqueryLens) {
				panic(fmt.Sprintf("runner: missing subquery length for prefill request %s", req.ID))
			}
			subqueryLen := int64(subqueryLens[i])

			if sp.PromptLogprobs != nil {
				// Prompt positions are read for logprob reporting but never
				// sampled; skip them in the compacted index space.
				categorizedOffset += subqueryLen - 1
			}
			meta.CategorizedSampleIndices[strategy] = append(
				meta.CategorizedSampleIndices[strategy], categorizedOffset)
			categorizedOffset++

			if sp.PromptLogprobs != nil {
				for idx := selectedOffset; idx < selectedOffset+subqueryLen-1; idx++ {
					meta.SelectedTokenIndices = append(meta.SelectedTokenIndices, idx)
				}
			}
			// The last prompt position is always selected: it yields the
			// next-token logits.
			meta.SelectedTokenIndices = append(meta.SelectedTokenIndices,
				selectedOffset+subqueryLen-1)
			// Later rows start at a fixed stride in the padded output even
			// when this prompt is shorter.
			selectedOffset += int64(maxSubqueryLen)

			if sp.Seed != nil {
				req.State.EnsureGenerator(*sp.Seed)
			}
		} else {
			numSeqs := int64(len(seqIDs))
			for idx := int64(0); idx < numSeqs; idx++ {
				meta.SelectedTokenIndices = append(meta.SelectedTokenIndices,
					selectedOffset+idx)
				meta.CategorizedSampleIndices[strategy] = append(
					meta.CategorizedSampleIndices[strategy], categorizedOffset+idx)
			}
			selectedOffset += numSeqs
			categorizedOffset += numSeqs

			if sp.Seed != nil {
				req.State.EnsureGenerator(*sp.Seed)
			}
		}

		// One handle per seeded request, not per sequence.
		if sp.Seed != nil {
			meta.Generators = append(meta.Generators, req.State.Generator)
		}

		for id, seqData := range req.SeqData {
			meta.SeqData[id] = seqData
		}
	}

	return meta
}
