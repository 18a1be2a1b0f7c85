package crypto

import (
	"github.com/zeebo/blake3"
)

// PseudorandomGenerate fills dst with the output of a pseudorandom
// generator (PRG) seeded with seed. The blake3 extendable output
// function is used as a deterministic random bit generator, so the
// same seed always yields the same bytes.
func PseudorandomGenerate(dst []byte, seed []byte, h *blake3.Hasher) error {
	// reset internal state
	h.Reset()
	if _, err := h.Write(seed); err != nil {
		return err
	}

	drbg := h.Digest()

	_, err := drbg.Read(dst)

	return err
}
