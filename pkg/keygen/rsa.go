// Package keygen derives key pairs from an arbitrary source of randomness,
// typically an entropy.Buffer, and signs and verifies messages with them.
package keygen

import (
	"crypto"
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/sha3"
)

const (
	// DefaultRSABits is the modulus size used by the command line tools
	DefaultRSABits = 2048
	// MinRSABits is the smallest modulus GenerateRSA accepts
	MinRSABits = 512
	// publicExponent is e, fixed as most implementations do
	publicExponent = 65537
)

var (
	ErrKeySize      = fmt.Errorf("rsa modulus size must be an even number of at least %d bits", MinRSABits)
	ErrVerification = fmt.Errorf("signature verification failed")
)

// sha3DigestInfo is the DER encoded DigestInfo header of a SHA3-256 hash,
// which crypto/rsa does not know about
var sha3DigestInfo = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
	0x65, 0x03, 0x04, 0x02, 0x08, 0x05, 0x00, 0x04, 0x20,
}

// GenerateRSA generates a private key with a modulus of the given size.
// Every random bit is read from r, so the same stream produces the same key.
func GenerateRSA(r io.Reader, bits int) (*rsa.PrivateKey, error) {
	if bits < MinRSABits || bits%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrKeySize, bits)
	}

	e := big.NewInt(publicExponent)
	one := big.NewInt(1)
	for {
		p, err := randomPrime(r, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := randomPrime(r, bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		pminus1 := new(big.Int).Sub(p, one)
		qminus1 := new(big.Int).Sub(q, one)
		if !coprime(e, pminus1) || !coprime(e, qminus1) {
			continue
		}

		n := new(big.Int).Mul(p, q)
		if n.BitLen() != bits {
			continue
		}
		totient := new(big.Int).Mul(pminus1, qminus1)
		d := new(big.Int).ModInverse(e, totient)
		if d == nil {
			continue
		}

		key := &rsa.PrivateKey{
			PublicKey: rsa.PublicKey{N: n, E: publicExponent},
			D:         d,
			Primes:    []*big.Int{p, q},
		}
		if err := key.Validate(); err != nil {
			return nil, err
		}
		key.Precompute()
		return key, nil
	}
}

func coprime(a, b *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, b).Cmp(big.NewInt(1)) == 0
}

// randomPrime returns a prime of exactly the given bit length whose two
// top bits are set, so the product of two of them has twice the length
func randomPrime(r io.Reader, bits int) (*big.Int, error) {
	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}

	var (
		buf = make([]byte, (bits+7)/8)
		p   = new(big.Int)
	)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("reading prime candidate: %w", err)
		}

		// clear the bits above the length, then force the top two
		buf[0] &= uint8(int(1<<b) - 1)
		if b >= 2 {
			buf[0] |= 3 << (b - 2)
		} else {
			buf[0] |= 1
			if len(buf) > 1 {
				buf[1] |= 0x80
			}
		}
		// odd
		buf[len(buf)-1] |= 1

		p.SetBytes(buf)
		if p.ProbablyPrime(20) {
			return p, nil
		}
	}
}

// Digest returns the SHA3-256 hash of message
func Digest(message []byte) []byte {
	sum := sha3.Sum256(message)
	return sum[:]
}

// signedData is the PKCS #1 v1.5 payload for a message digest:
// the DigestInfo of SHA3-256(digest)
func signedData(digest []byte) []byte {
	sum := sha3.Sum256(digest)
	return append(append([]byte(nil), sha3DigestInfo...), sum[:]...)
}

// Sign signs the SHA3-256 hash of digest with PKCS #1 v1.5.
// PKCS #1 v1.5 signatures are deterministic, no randomness is needed.
func Sign(key *rsa.PrivateKey, digest []byte) ([]byte, error) {
	return rsa.SignPKCS1v15(nil, key, crypto.Hash(0), signedData(digest))
}

// Verify checks a signature produced by Sign
func Verify(pub *rsa.PublicKey, signature, digest []byte) error {
	if err := rsa.VerifyPKCS1v15(pub, crypto.Hash(0), signedData(digest), signature); err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return nil
}
