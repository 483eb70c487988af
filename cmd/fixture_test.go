package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelstep/modelstep/runner"
)

func TestLoadStepFixture_Prefill_BuildsBatch(t *testing.T) {
	// GIVEN the prefill fixture in testdata
	fixture, err := LoadStepFixture(filepath.Join("testdata", "step.yaml"))
	require.NoError(t, err)

	// WHEN the batch is built
	batch, err := fixture.Build()
	require.NoError(t, err)

	// THEN it is a prefill batch with both requests and their params intact
	assert.Equal(t, runner.BatchPrefill, batch.Kind)
	require.Len(t, batch.Requests, 2)

	reqA := batch.Requests[0]
	assert.Equal(t, "req-a", reqA.ID)
	assert.True(t, reqA.IsPrompt)
	assert.Equal(t, runner.SampleGreedy, reqA.SamplingParams.SamplingType())
	assert.Equal(t, 3, reqA.SeqData[0].Len())
	assert.Equal(t, []int64{4}, reqA.BlockTables[0])

	reqB := batch.Requests[1]
	require.NotNil(t, reqB.SamplingParams.Seed)
	assert.Equal(t, int64(42), *reqB.SamplingParams.Seed)
	assert.Equal(t, runner.SampleRandomSeed, reqB.SamplingParams.SamplingType())
}

func TestLoadStepFixture_Decode_RowsPerSequence(t *testing.T) {
	// GIVEN the decode fixture in testdata
	fixture, err := LoadStepFixture(filepath.Join("testdata", "decode.yaml"))
	require.NoError(t, err)
	batch, err := fixture.Build()
	require.NoError(t, err)
	assert.Equal(t, runner.BatchDecode, batch.Kind)

	// WHEN inputs are prepared
	r := runner.NewRunner(runner.Config{}, runner.HostDevice{}, runner.StubModel{})
	in, meta := r.PrepareInputs(batch)

	// THEN there is one row per sequence, not per request
	assert.Equal(t, 3, in.Tokens.Rows)
	assert.Equal(t, 1, in.Tokens.Cols)
	assert.Len(t, meta.SelectedTokenIndices, 3)
}

func TestStepFixture_Build_RejectsUnknownKind(t *testing.T) {
	fixture := &StepFixture{Kind: "mixed", Requests: []FixtureRequest{{}}}
	_, err := fixture.Build()
	assert.Error(t, err)
}

func TestStepFixture_Build_GeneratesIDWhenOmitted(t *testing.T) {
	fixture := &StepFixture{
		Kind: "prefill",
		Requests: []FixtureRequest{{
			Sequences: []FixtureSequence{{SeqID: 0, TokenIDs: []int64{1, 2}, Block: 0}},
		}},
	}
	batch, err := fixture.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if batch.Requests[0].ID == "" {
		t.Error("expected a generated request ID, got empty string")
	}
}
