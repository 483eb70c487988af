package runner

// Shared builders for runner tests. Requests built here satisfy the
// scheduler contract: prefill requests carry exactly one sequence and one
// block, decode requests one block per sequence.

func newPrefillRequest(id string, tokens []int64, sp *SamplingParams, block int64) *Request {
	if sp == nil {
		sp = &SamplingParams{}
	}
	return &Request{
		ID:             id,
		IsPrompt:       true,
		SeqData:        map[int64]*SequenceState{0: NewSequenceState(tokens)},
		SamplingParams: sp,
		BlockTables:    map[int64][]int64{0: {block}},
	}
}

func newDecodeRequest(id string, seqs map[int64][]int64, sp *SamplingParams, blocks map[int64]int64) *Request {
	if sp == nil {
		sp = &SamplingParams{}
	}
	seqData := make(map[int64]*SequenceState, len(seqs))
	blockTables := make(map[int64][]int64, len(seqs))
	for seqID, tokens := range seqs {
		seqData[seqID] = NewSequenceState(tokens)
		blockTables[seqID] = []int64{blocks[seqID]}
	}
	return &Request{
		ID:             id,
		IsPrompt:       false,
		SeqData:        seqData,
		SamplingParams: sp,
		BlockTables:    blockTables,
	}
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
