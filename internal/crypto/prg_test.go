package crypto

import (
	"bytes"
	"testing"

	"github.com/zeebo/blake3"
)

func TestPrgWithSeed(t *testing.T) {
	seed := []byte("pixelrand synthetic frame seed")
	h := blake3.New()

	a := make([]byte, 1<<16)
	b := make([]byte, 1<<16)
	if err := PseudorandomGenerate(a, seed, h); err != nil {
		t.Fatal(err)
	}
	if err := PseudorandomGenerate(b, seed, h); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("PRG output should be deterministic for a given seed")
	}

	if err := PseudorandomGenerate(b, append(seed, 0), h); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("PRG output should depend on the seed")
	}

	// a shorter read is a prefix of a longer one
	c := make([]byte, 100)
	if err := PseudorandomGenerate(c, seed, h); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(c, a[:100]) {
		t.Fatalf("PRG output should be an extendable stream")
	}
}

func BenchmarkPrg(b *testing.B) {
	seed := make([]byte, 32)
	dst := make([]byte, 1024*1024)
	h := blake3.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PseudorandomGenerate(dst, seed, h)
	}
}
