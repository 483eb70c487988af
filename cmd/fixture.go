// fixture.go
//
// YAML step fixtures: a declarative description of one batch, used by the
// `run` subcommand to drive the runner without a live scheduler.

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/modelstep/modelstep/runner"
)

// FixtureSequence describes one sequence of a fixture request.
type FixtureSequence struct {
	SeqID    int64   `yaml:"seq_id"`
	TokenIDs []int64 `yaml:"token_ids"`
	Block    int64   `yaml:"block"`
}

// FixtureRequest describes one request of a fixture batch.
type FixtureRequest struct {
	ID             string            `yaml:"id"` // generated when omitted
	Sequences      []FixtureSequence `yaml:"sequences"`
	Temperature    float64           `yaml:"temperature"`
	Seed           *int64            `yaml:"seed"`
	PromptLogprobs *int              `yaml:"prompt_logprobs"`
	BestOf         int               `yaml:"best_of"`
	BeamSearch     bool              `yaml:"beam_search"`
}

// StepFixture is the root of a fixture file: one batch, uniformly prefill
// or uniformly decode.
type StepFixture struct {
	Kind     string           `yaml:"kind"` // "prefill" or "decode"
	Requests []FixtureRequest `yaml:"requests"`
}

// LoadStepFixture reads and parses a fixture file.
func LoadStepFixture(path string) (*StepFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fixture StepFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// Build converts the fixture into a runner.Batch, assigning fresh UUIDs to
// requests that omit an id.
func (f *StepFixture) Build() (*runner.Batch, error) {
	if f.Kind != "prefill" && f.Kind != "decode" {
		return nil, fmt.Errorf("unknown batch kind %q (want prefill or decode)", f.Kind)
	}
	if len(f.Requests) == 0 {
		return nil, fmt.Errorf("fixture has no requests")
	}

	isPrompt := f.Kind == "prefill"
	reqs := make([]*runner.Request, 0, len(f.Requests))
	for i, fr := range f.Requests {
		if len(fr.Sequences) == 0 {
			return nil, fmt.Errorf("request %d has no sequences", i)
		}
		id := fr.ID
		if id == "" {
			id = uuid.NewString()
		}

		seqData := make(map[int64]*runner.SequenceState, len(fr.Sequences))
		blockTables := make(map[int64][]int64, len(fr.Sequences))
		for _, fs := range fr.Sequences {
			if len(fs.TokenIDs) == 0 {
				return nil, fmt.Errorf("request %s seq %d has no tokens", id, fs.SeqID)
			}
			seqData[fs.SeqID] = runner.NewSequenceState(fs.TokenIDs)
			blockTables[fs.SeqID] = []int64{fs.Block}
		}

		reqs = append(reqs, &runner.Request{
			ID:       id,
			IsPrompt: isPrompt,
			SeqData:  seqData,
			SamplingParams: &runner.SamplingParams{
				Temperature:    fr.Temperature,
				Seed:           fr.Seed,
				PromptLogprobs: fr.PromptLogprobs,
				BestOf:         fr.BestOf,
				UseBeamSearch:  fr.BeamSearch,
			},
			BlockTables: blockTables,
		})
	}

	if isPrompt {
		return runner.NewPrefillBatch(reqs), nil
	}
	return runner.NewDecodeBatch(reqs), nil
}
