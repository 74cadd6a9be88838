package render

// Options configures Render's output beyond the canonical text itself.
type Options struct {
	// TrailingNewline appends a single '\n' after the rendered directive,
	// for callers emitting one directive per output line (spec.md §6).
	TrailingNewline bool
}
