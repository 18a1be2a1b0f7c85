package extract

const (
	// RunLength is the length of the run of ones broken by Suppress
	RunLength = 10
	// suppressedOffset is the position, within a run, of the bit cleared by Suppress
	suppressedOffset = 4
)

// Suppress rewrites every run of RunLength consecutive 1 bits into
// 1111011111. The scan is a single left-to-right pass over
// non-overlapping matches: after a rewrite it resumes right after the
// ten rewritten bits and never looks back. A run of 15 ones therefore
// becomes 1111011111 11111, which still holds ten consecutive ones
// across the boundary. The output has the length of bits, which is
// left untouched.
func Suppress(bits []uint8) []uint8 {
	out := make([]uint8, len(bits))
	copy(out, bits)

	var run int
	for i, b := range out {
		if b != 1 {
			run = 0
			continue
		}
		run++
		if run == RunLength {
			out[i-RunLength+1+suppressedOffset] = 0
			run = 0
		}
	}

	return out
}
