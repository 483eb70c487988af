// sampling_params.go
//
// Sampling configuration carried by each request, and the closed strategy
// enum used to partition sampled positions into per-strategy buckets.

package runner

import "fmt"

// SamplingType identifies the sampling strategy applied to a request's
// selected positions. The enum is closed: the categorized index table in
// SamplingMetadata is a fixed-size array indexed by it.
type SamplingType int

const (
	SampleGreedy SamplingType = iota
	SampleRandom
	SampleRandomSeed
	SampleBeam

	// NumSamplingTypes sizes the per-strategy index table.
	NumSamplingTypes = 4
)

// String returns a human-readable strategy name.
func (st SamplingType) String() string {
	switch st {
	case SampleGreedy:
		return "greedy"
	case SampleRandom:
		return "random"
	case SampleRandomSeed:
		return "random-seed"
	case SampleBeam:
		return "beam"
	default:
		return fmt.Sprintf("SamplingType(%d)", int(st))
	}
}

// samplingEps is the temperature below which sampling degenerates to argmax.
const samplingEps = 1e-5

// SamplingParams holds the sampling configuration of a single request.
// The zero value means greedy sampling with no seed and no prompt logprobs.
type SamplingParams struct {
	Temperature    float64 // < samplingEps means greedy
	Seed           *int64  // fixed seed for reproducible stochastic sampling (nil = unseeded)
	PromptLogprobs *int    // request logprobs over the full prompt (nil = off)
	BestOf         int     // parallel sequences kept per request (0 treated as 1)
	UseBeamSearch  bool    // beam-style selection across the parallel sequences
}

// SamplingType derives the strategy bucket for these parameters.
func (sp *SamplingParams) SamplingType() SamplingType {
	switch {
	case sp.UseBeamSearch:
		return SampleBeam
	case sp.Temperature < samplingEps:
		return SampleGreedy
	case sp.Seed != nil:
		return SampleRandomSeed
	default:
		return SampleRandom
	}
}
