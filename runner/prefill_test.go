package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrefill_PadsToBatchMaxSubqueryLen(t *testing.T) {
	// GIVEN prompts of lengths 3 and 5
	reqs := []*Request{
		newPrefillRequest("a", []int64{11, 12, 13}, nil, 4),
		newPrefillRequest("b", []int64{21, 22, 23, 24, 25}, nil, 9),
	}

	// WHEN prefill inputs are built
	in := buildPrefill(reqs)

	// THEN tensors are 2x5 with zero trailing padding
	require.Equal(t, 2, in.tokens.Rows)
	require.Equal(t, 5, in.tokens.Cols)
	assert.Equal(t, []int64{11, 12, 13, 0, 0}, in.tokens.Row(0))
	assert.Equal(t, []int64{21, 22, 23, 24, 25}, in.tokens.Row(1))

	// AND positions count 0..len-1 per row, zero-padded
	assert.Equal(t, []int64{0, 1, 2, 0, 0}, in.positions.Row(0))
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, in.positions.Row(1))

	// AND block ids and length lists follow request order
	assert.Equal(t, []int64{4, 9}, in.blockIDs)
	assert.Equal(t, []int{3, 5}, in.promptLens)
	assert.Equal(t, []int{3, 5}, in.subqueryLens)
}

func TestBuildPrefill_SingleRequest_WidthIsOwnLength(t *testing.T) {
	in := buildPrefill([]*Request{newPrefillRequest("a", []int64{1, 2, 3, 4}, nil, 0)})
	assert.Equal(t, 4, in.tokens.Cols)
	assert.Equal(t, []int64{1, 2, 3, 4}, in.tokens.Row(0))
}

func TestBuildPrefill_MultiSequenceRequest_Panics(t *testing.T) {
	// Prefill requests carry exactly one sequence.
	req := &Request{
		ID:       "bad",
		IsPrompt: true,
		SeqData: map[int64]*SequenceState{
			0: NewSequenceState([]int64{1}),
			1: NewSequenceState([]int64{2}),
		},
		SamplingParams: &SamplingParams{},
		BlockTables:    map[int64][]int64{0: {0}, 1: {1}},
	}
	assert.Panics(t, func() { buildPrefill([]*Request{req}) })
}

func TestBuildPrefill_MultiBlockSequence_Panics(t *testing.T) {
	// Exactly one storage block per sequence in this scope.
	req := newPrefillRequest("bad", []int64{1, 2}, nil, 0)
	req.BlockTables[0] = []int64{0, 1}
	assert.Panics(t, func() { buildPrefill([]*Request{req}) })
}

func TestBuildPrefill_EmptyBatch_Panics(t *testing.T) {
	assert.Panics(t, func() { buildPrefill(nil) })
}
