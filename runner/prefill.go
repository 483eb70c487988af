// prefill.go
//
// Builds the padded token/position tensors and block index vector for an
// all-prefill batch: one row per request, padded to the batch's longest
// prompt.

package runner

import "fmt"

// prefillInputs is the host-side output of the prefill builder. Prompt and
// subquery lengths feed the sampling index resolver.
type prefillInputs struct {
	tokens    *Tensor
	positions *Tensor
	blockIDs  []int64

	promptLens   []int
	subqueryLens []int
}

// buildPrefill assembles inputs for a batch of prompt-phase requests.
// Each prefill request carries exactly one sequence and one storage block;
// the scheduler enforces both, so a violation here is a programmer error.
func buildPrefill(reqs []*Request) prefillInputs {
	if len(reqs) == 0 {
		panic("runner: buildPrefill on empty batch")
	}

	inputTokens := make([][]int64, 0, len(reqs))
	inputPositions := make([][]int64, 0, len(reqs))
	blockIDs := make([]int64, 0, len(reqs))
	promptLens := make([]int, 0, len(reqs))
	subqueryLens := make([]int, 0, len(reqs))

	for _, req := range reqs {
		seqIDs := req.SeqIDs()
		if len(seqIDs) != 1 {
			panic(fmt.Sprintf("runner: prefill request %s has %d sequences, want 1", req.ID, len(seqIDs)))
		}
		seqID := seqIDs[0]

		promptTokens := req.SeqData[seqID].TokenIDs()
		promptLen := len(promptTokens)
		promptLens = append(promptLens, promptLen)
		// No prefix is precomputed in this scope, so the whole prompt is the
		// subquery.
		subqueryLens = append(subqueryLens, promptLen)

		inputTokens = append(inputTokens, promptTokens)
		positions := make([]int64, promptLen)
		for i := range positions {
			positions[i] = int64(i)
		}
		inputPositions = append(inputPositions, positions)

		blockTable := req.BlockTables[seqID]
		if len(blockTable) != 1 {
			panic(fmt.Sprintf("runner: prefill request %s has %d blocks, want 1", req.ID, len(blockTable)))
		}
		blockIDs = append(blockIDs, blockTable[0])
	}

	maxSubqueryLen := maxInts(subqueryLens)
	if maxSubqueryLen <= 0 {
		panic("runner: prefill batch with empty prompts")
	}

	return prefillInputs{
		tokens:       MakeTensorWithPad(inputTokens, maxSubqueryLen, 0),
		positions:    MakeTensorWithPad(inputPositions, maxSubqueryLen, 0),
		blockIDs:     blockIDs,
		promptLens:   promptLens,
		subqueryLens: subqueryLens,
	}
}

// maxInts returns the maximum of a non-empty int slice.
func maxInts(xs []int) int {
	if len(xs) == 0 {
		panic("runner: maxInts on empty slice")
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
