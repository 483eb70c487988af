// decode.go
//
// Builds the single-column token/position tensors for an all-decode batch:
// one row per sequence (a request may decode several parallel sequences),
// plus per-sequence context lengths and block indices.

package runner

import "fmt"

// decodeInputs is the host-side output of the decode builder.
type decodeInputs struct {
	tokens      *Tensor
	positions   *Tensor
	blockIDs    []int64
	contextLens []int64
}

// buildDecode assembles inputs for a batch of decode-phase requests.
// slidingWindow clips each sequence's context length when positive; zero
// means no window.
func buildDecode(reqs []*Request, slidingWindow int) decodeInputs {
	if len(reqs) == 0 {
		panic("runner: buildDecode on empty batch")
	}

	var inputTokens [][]int64
	var inputPositions [][]int64
	var blockIDs []int64
	var contextLens []int64

	for _, req := range reqs {
		for _, seqID := range req.SeqIDs() {
			seqData := req.SeqData[seqID]
			inputTokens = append(inputTokens, []int64{seqData.LastTokenID()})

			seqLen := seqData.Len()
			inputPositions = append(inputPositions, []int64{int64(seqLen - 1)})

			contextLen := seqLen
			if slidingWindow > 0 && contextLen > slidingWindow {
				contextLen = slidingWindow
			}
			contextLens = append(contextLens, int64(contextLen))

			blockTable := req.BlockTables[seqID]
			if len(blockTable) != 1 {
				panic(fmt.Sprintf("runner: decode request %s seq %d has %d blocks, want 1", req.ID, seqID, len(blockTable)))
			}
			blockIDs = append(blockIDs, blockTable[0])
		}
	}

	// Width is fixed at 1 in decode; the padding builder keeps the tensor
	// construction uniform with prefill.
	return decodeInputs{
		tokens:      MakeTensorWithPad(inputTokens, 1, 0),
		positions:   MakeTensorWithPad(inputPositions, 1, 0),
		blockIDs:    blockIDs,
		contextLens: contextLens,
	}
}
