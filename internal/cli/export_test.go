package cli

// SetIsTerminal replaces the stdin terminal check and returns a restore func.
func SetIsTerminal(fn func() bool) func() {
	prev := isTerminal
	isTerminal = fn
	return func() { isTerminal = prev }
}
