package keygen

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/caarlos0/sshmarshal"
	"golang.org/x/crypto/ssh"
)

const (
	privatePEMType = "RSA PRIVATE KEY"
	publicPEMType  = "PUBLIC KEY"
)

var ErrInvalidPEM = fmt.Errorf("cannot decode PEM block")

// EncodePrivatePEM encodes key as a PKCS #1 PEM block
func EncodePrivatePEM(key *rsa.PrivateKey) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  privatePEMType,
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

// EncodePublicPEM encodes pub as a PKIX PEM block
func EncodePublicPEM(pub *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicPEMType, Bytes: der}), nil
}

// EncodePrivateOpenSSH encodes key in the OpenSSH private key format
func EncodePrivateOpenSSH(key *rsa.PrivateKey, comment string) ([]byte, error) {
	block, err := sshmarshal.MarshalPrivateKey(key, comment)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(block), nil
}

// EncodePublicAuthorizedKey encodes pub as an authorized_keys line
func EncodePublicAuthorizedKey(pub *rsa.PublicKey) ([]byte, error) {
	sshkey, err := ssh.NewPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return ssh.MarshalAuthorizedKey(sshkey), nil
}

// ParsePrivatePEM decodes a key written by EncodePrivatePEM. PKCS #8
// blocks are accepted too.
func ParsePrivatePEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEM
	}
	if block.Type == privatePEMType {
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an RSA key", ErrInvalidPEM, key)
	}
	return rsaKey, nil
}

// ParsePublicPEM decodes a key written by EncodePublicPEM. PKCS #1
// "RSA PUBLIC KEY" blocks are accepted too.
func ParsePublicPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEM
	}
	if block.Type == "RSA PUBLIC KEY" {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an RSA key", ErrInvalidPEM, key)
	}
	return rsaKey, nil
}
