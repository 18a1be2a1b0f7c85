package keygen

import (
	"fmt"
	"io"

	gr "github.com/bwesterb/go-ristretto"
	r255 "github.com/gtank/ristretto255"
	"github.com/zeebo/blake3"
)

const (
	RistrettoTypeGR = iota
	RistrettoTypeR255
)

const (
	// EncodedLen is the length of an encoded scalar or point
	EncodedLen = 32
	// uniformLen is the number of random bytes reduced into a scalar
	uniformLen = 64
)

var ErrUnknownKeyType = fmt.Errorf("cannot create a key of unknown type")

// RistrettoKey is a ristretto255 key pair. Both backends produce the same
// encoding, a key generated with one can be used with the other.
type RistrettoKey struct {
	Type   int
	Secret [EncodedLen]byte
	Public [EncodedLen]byte
}

// GenerateRistretto reads 64 bytes from r, reduces them into a secret
// scalar and derives the public point with the backend t
func GenerateRistretto(t int, r io.Reader) (*RistrettoKey, error) {
	var uniform [uniformLen]byte
	if _, err := io.ReadFull(r, uniform[:]); err != nil {
		return nil, fmt.Errorf("reading scalar: %w", err)
	}

	key := &RistrettoKey{Type: t}
	switch t {
	case RistrettoTypeGR:
		var s gr.Scalar
		s.SetReduced(&uniform)
		var p gr.Point
		p.ScalarMultBase(&s)
		s.BytesInto(&key.Secret)
		p.BytesInto(&key.Public)
	case RistrettoTypeR255:
		s := r255.NewScalar()
		s.FromUniformBytes(uniform[:])
		p := r255.NewElement().ScalarBaseMult(s)
		copy(key.Secret[:], s.Encode(nil))
		copy(key.Public[:], p.Encode(nil))
	default:
		return nil, ErrUnknownKeyType
	}
	return key, nil
}

// SharedKey multiplies the peer's public point by the secret scalar and
// hashes the result into a 32 byte key
func (k *RistrettoKey) SharedKey(peer [EncodedLen]byte) ([]byte, error) {
	var shared [EncodedLen]byte
	switch k.Type {
	case RistrettoTypeGR:
		var s gr.Scalar
		s.SetBytes(&k.Secret)
		var p gr.Point
		if !p.SetBytes(&peer) {
			return nil, fmt.Errorf("invalid peer point %x", peer)
		}
		p.ScalarMult(&p, &s)
		p.BytesInto(&shared)
	case RistrettoTypeR255:
		s := r255.NewScalar()
		if err := s.Decode(k.Secret[:]); err != nil {
			return nil, err
		}
		p := r255.NewElement()
		if err := p.Decode(peer[:]); err != nil {
			return nil, err
		}
		copy(shared[:], p.ScalarMult(s, p).Encode(nil))
	default:
		return nil, ErrUnknownKeyType
	}

	key := blake3.Sum256(shared[:])
	return key[:], nil
}
