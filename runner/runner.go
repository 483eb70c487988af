// runner.go
//
// The step orchestrator: dispatches a batch to the prefill or decode
// builder, always runs the sampling index resolver, materializes everything
// onto the device, and drives the model's forward pass and sampler.

package runner

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// StepInputs carries the assembled per-step tensors, on the host for
// inspection and mirrored on the device for the model call.
type StepInputs struct {
	Kind BatchKind

	Tokens    *Tensor // [rows x cols] token ids
	Positions *Tensor // [rows x cols] position ids
	BlockIDs  []int64 // [rows] storage block index per row

	ContextLens []int64 // [rows] decode only; nil for prefill

	TokensDevice      Array
	PositionsDevice   Array
	BlockIDsDevice    Array
	ContextLensDevice Array // decode only
}

// Runner assembles batch inputs and sampling metadata for each step and
// hands them to the model-execution backend.
type Runner struct {
	cfg    Config
	device Device
	model  Model
}

// NewRunner creates a Runner. The sliding window is read from cfg once;
// device and model are the external collaborators of the step.
func NewRunner(cfg Config, device Device, model Model) *Runner {
	return &Runner{cfg: cfg, device: device, model: model}
}

// PrepareInputs converts a batch into padded tensors plus sampling metadata
// and issues the host-to-device transfers. The transfers are non-blocking;
// the accelerator runtime orders them before the consuming kernels.
func (r *Runner) PrepareInputs(batch *Batch) (*StepInputs, *SamplingMetadata) {
	var in *StepInputs
	var promptLens, subqueryLens []int

	switch batch.Kind {
	case BatchPrefill:
		p := buildPrefill(batch.Requests)
		in = &StepInputs{
			Kind:      BatchPrefill,
			Tokens:    p.tokens,
			Positions: p.positions,
			BlockIDs:  p.blockIDs,
		}
		promptLens = p.promptLens
		subqueryLens = p.subqueryLens
	case BatchDecode:
		d := buildDecode(batch.Requests, r.cfg.SlidingWindow)
		in = &StepInputs{
			Kind:        BatchDecode,
			Tokens:      d.tokens,
			Positions:   d.positions,
			BlockIDs:    d.blockIDs,
			ContextLens: d.contextLens,
		}
	default:
		panic(fmt.Sprintf("runner: unknown batch kind %d", batch.Kind))
	}

	meta := prepareSample(batch.Requests, promptLens, subqueryLens)

	in.TokensDevice = r.device.FromInts(in.Tokens.Data, DTypeInt64)
	in.PositionsDevice = r.device.FromInts(in.Positions.Data, DTypeInt64)
	in.BlockIDsDevice = r.device.FromInts(in.BlockIDs, DTypeInt64)
	if batch.Kind == BatchDecode {
		in.ContextLensDevice = r.device.FromInts(in.ContextLens, DTypeInt32)
	}

	meta.SelectedDevice = r.device.FromInts(meta.SelectedTokenIndices, DTypeInt64)
	for t := range meta.CategorizedSampleIndices {
		meta.CategorizedDevice[t] = r.device.FromInts(meta.CategorizedSampleIndices[t], DTypeInt32)
	}

	logrus.Debugf("[step] %s batch: %d requests, tokens %dx%d, %d selected indices",
		batch.Kind, len(batch.Requests), in.Tokens.Rows, in.Tokens.Cols,
		len(meta.SelectedTokenIndices))

	return in, meta
}

// ExecuteStep runs one full step: prepare inputs, forward pass, sample.
// The sampler's result is returned unchanged.
func (r *Runner) ExecuteStep(batch *Batch) (*SamplerOutput, error) {
	in, meta := r.PrepareInputs(batch)

	hidden, err := r.model.Forward(in)
	if err != nil {
		return nil, fmt.Errorf("forward pass: %w", err)
	}

	out, err := r.model.Sample(hidden, meta)
	if err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}
	return out, nil
}
