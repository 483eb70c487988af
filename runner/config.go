package runner

// Config groups the runner parameters read once at construction.
type Config struct {
	SlidingWindow int // sliding attention window in tokens; 0 = unclipped context
}
