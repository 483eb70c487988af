package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplingParams_SamplingType_Derivation(t *testing.T) {
	tests := []struct {
		name string
		sp   SamplingParams
		want SamplingType
	}{
		{"zero temperature is greedy", SamplingParams{Temperature: 0}, SampleGreedy},
		{"near-zero temperature is greedy", SamplingParams{Temperature: 1e-7}, SampleGreedy},
		{"positive temperature is random", SamplingParams{Temperature: 0.7}, SampleRandom},
		{"seed promotes random to random-seed", SamplingParams{Temperature: 0.7, Seed: int64Ptr(1)}, SampleRandomSeed},
		{"seed does not override greedy", SamplingParams{Temperature: 0, Seed: int64Ptr(1)}, SampleGreedy},
		{"beam search wins over everything", SamplingParams{Temperature: 0.7, Seed: int64Ptr(1), UseBeamSearch: true}, SampleBeam},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sp.SamplingType())
		})
	}
}

func TestSamplingType_String(t *testing.T) {
	assert.Equal(t, "greedy", SampleGreedy.String())
	assert.Equal(t, "random", SampleRandom.String())
	assert.Equal(t, "random-seed", SampleRandomSeed.String())
	assert.Equal(t, "beam", SampleBeam.String())
}
