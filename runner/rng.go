// rng.go
//
// Per-request random generator handles for seeded sampling. Two steps over
// the same seeded request MUST observe the same generator instance, so the
// handle is created once and then reused (create-if-absent), tied to the
// Request entity's own lifetime rather than to any process-wide registry.

package runner

import "math/rand"

// RequestState is the only request data that survives across steps. The
// batch assembly core writes the generator at most once; every later step
// only reads it.
//
// Thread-safety: NOT thread-safe. The scheduler guarantees a request is in
// exactly one in-flight batch at a time.
type RequestState struct {
	Generator *rand.Rand // seeded generator, nil until the request first specifies a seed
}

// EnsureGenerator returns the request's generator, creating it from seed on
// first use. Later calls ignore the seed argument and return the cached
// instance, preserving the generator's draw position across steps.
func (s *RequestState) EnsureGenerator(seed int64) *rand.Rand {
	if s.Generator == nil {
		s.Generator = rand.New(rand.NewSource(seed))
	}
	return s.Generator
}
