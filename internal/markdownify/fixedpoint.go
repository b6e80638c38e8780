package markdownify

// UntilStable applies f to v until a pass returns its own input or maxIters
// passes have run, whichever comes first. It returns the last value and the
// number of passes that were applied. maxIters < 1 applies no pass.
func UntilStable[T comparable](v T, maxIters int, f func(T) T) (T, int) {
	for i := 0; i < maxIters; i++ {
		next := f(v)
		if next == v {
			return v, i + 1
		}
		v = next
	}
	return v, maxIters
}
