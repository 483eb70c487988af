// sequence.go
//
// Defines SequenceState, the per-sequence token record owned by the scheduler.
// The batch assembly core only reads it; the scheduler appends each newly
// sampled token before the next step.

package runner

// SequenceState holds the ordered token ids accumulated by one sequence:
// the full prompt followed by every token generated so far.
type SequenceState struct {
	tokenIDs []int64
}

// NewSequenceState creates a SequenceState from an initial prompt.
// The slice is copied; the caller keeps ownership of its argument.
func NewSequenceState(tokenIDs []int64) *SequenceState {
	tokens := make([]int64, len(tokenIDs))
	copy(tokens, tokenIDs)
	return &SequenceState{tokenIDs: tokens}
}

// TokenIDs returns all token ids in order. The slice aliases internal state
// and must not be mutated by the caller.
func (s *SequenceState) TokenIDs() []int64 {
	return s.tokenIDs
}

// LastTokenID returns the most recent token id.
func (s *SequenceState) LastTokenID() int64 {
	return s.tokenIDs[len(s.tokenIDs)-1]
}

// Len returns the current sequence length in tokens.
func (s *SequenceState) Len() int {
	return len(s.tokenIDs)
}

// Append records a newly generated token. Called by the scheduler between
// steps, never by the batch assembly core.
func (s *SequenceState) Append(tokenID int64) {
	s.tokenIDs = append(s.tokenIDs, tokenID)
}
