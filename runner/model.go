// model.go
//
// The opaque model-execution collaborators: a forward pass mapping the
// assembled tensors to hidden states, and a sampler mapping hidden states
// plus SamplingMetadata to output tokens. StubModel is the in-repo
// implementation used by tests and the CLI harness.

package runner

// HiddenStates is whatever the model's forward pass produces; the runner
// passes it to Sample untouched.
type HiddenStates any

// Model abstracts the execution backend. Both methods are opaque to the
// batch assembly core.
type Model interface {
	Forward(in *StepInputs) (HiddenStates, error)
	Sample(hidden HiddenStates, meta *SamplingMetadata) (*SamplerOutput, error)
}

// SequenceOutput is one sampled token for one sequence.
type SequenceOutput struct {
	SeqID   int64
	TokenID int64
}

// RequestOutput groups the sampled tokens of one request's sequences.
// Outputs follow batch order; callers holding the batch can zip them back
// to requests by index.
type RequestOutput struct {
	Samples []SequenceOutput
}

// SamplerOutput is the sampler's result for the whole step, in batch order.
type SamplerOutput struct {
	Outputs []RequestOutput
}

// stubVocabSize bounds the token ids the stub's seeded draws produce.
const stubVocabSize = 32000

// StubModel is a deterministic stand-in for a real backend. Forward echoes
// the token tensor as hidden states; Sample reads the value at each
// request's sampling position, except seeded requests, which draw from
// their persistent generator. It exercises the full SamplingMetadata
// contract without any real inference.
type StubModel struct{}

// Forward returns the token tensor unchanged.
func (StubModel) Forward(in *StepInputs) (HiddenStates, error) {
	return in.Tokens, nil
}

// Sample walks the seq groups in batch order, consuming selected indices and
// generator handles with the same cursor discipline the resolver used to
// produce them.
func (StubModel) Sample(hidden HiddenStates, meta *SamplingMetadata) (*SamplerOutput, error) {
	tokens := hidden.(*Tensor)
	flat := tokens.Data

	out := &SamplerOutput{}
	selectedCursor := 0
	genCursor := 0
	isPrefill := len(meta.PromptLens) > 0

	for i, group := range meta.SeqGroups {
		sp := group.SamplingParams
		reqOut := RequestOutput{Samples: make([]SequenceOutput, 0, len(group.SeqIDs))}

		samplePositions := len(group.SeqIDs)
		if isPrefill {
			if sp.PromptLogprobs != nil {
				// Skip the prompt-logprob-only positions; they are selected
				// but never sampled.
				selectedCursor += meta.PromptLens[i] - 1
			}
			samplePositions = 1
		}

		for s := 0; s < samplePositions; s++ {
			pos := meta.SelectedTokenIndices[selectedCursor]
			selectedCursor++

			tokenID := flat[pos]
			if sp.SamplingType() == SampleRandomSeed {
				tokenID = meta.Generators[genCursor].Int63n(stubVocabSize)
			}
			reqOut.Samples = append(reqOut.Samples, SequenceOutput{
				SeqID:   group.SeqIDs[s],
				TokenID: tokenID,
			})
		}
		if sp.Seed != nil {
			genCursor++
		}

		out.Outputs = append(out.Outputs, reqOut)
	}
	return out, nil
}
