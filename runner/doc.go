// Package runner assembles model inputs for one serving step: it converts a
// scheduler's batch of in-flight generation requests into padded
// token/position/block tensors and resolves, per request, the flattened
// output positions the sampler must read and the strategy bucket each one
// belongs to.
//
// # Reading Guide
//
// Start with these three files to understand the step pipeline:
//   - request.go: the per-step Request snapshot and its sequences
//   - runner.go: the orchestrator (dispatch, device transfers, model call)
//   - sample_indices.go: the sampling index resolver and its two cursors
//
// # Architecture
//
// Batches are uniformly prefill or uniformly decode (batch.go); prefill.go
// builds one padded row per request, decode.go one single-column row per
// sequence. The resolver (sample_indices.go) then produces SamplingMetadata
// regardless of batch kind. The model and the device are external
// collaborators behind small interfaces (model.go, device.go); StubModel and
// HostDevice are the in-repo implementations used by tests and the CLI.
//
// Scheduler-contract violations (mixed batch, multi-sequence prefill request,
// multi-block sequence) are programmer errors and panic; there is no
// user-facing error surface at this layer.
package runner
