package rsa

import (
	"fmt"
	"math/big"
)

// PublicKey represents the public part of an RSA key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey represents the private part of an RSA key pair.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair holds a full RSA key pair. Invariants: N = p*q for two distinct
// primes, gcd(E, phi(N)) = 1 and E*D = 1 (mod phi(N)).
type KeyPair struct {
	N *big.Int
	E *big.Int
	D *big.Int
}

// Public returns the public half of the key pair.
func (k *KeyPair) Public() *PublicKey {
	return &PublicKey{E: k.E, N: k.N}
}

// Private returns the private half of the key pair.
func (k *KeyPair) Private() *PrivateKey {
	return &PrivateKey{D: k.D, N: k.N}
}

// Validate checks that all key pair components are present and positive.
func (k *KeyPair) Validate() error {
	for name, z := range map[string]*big.Int{"n": k.N, "e": k.E, "d": k.D} {
		if z == nil {
			return fmt.Errorf("key component %s is missing", name)
		}
		if z.Sign() <= 0 {
			return fmt.Errorf("key component %s must be positive, got %v", name, z)
		}
	}
	return nil
}

// Validate checks that the public key components are present and positive.
func (k *PublicKey) Validate() error {
	if k.E == nil || k.N == nil {
		return fmt.Errorf("public key components must be set")
	}
	if k.E.Sign() <= 0 || k.N.Sign() <= 0 {
		return fmt.Errorf("public key components must be positive")
	}
	return nil
}

// Validate checks that the private key components are present and positive.
func (k *PrivateKey) Validate() error {
	if k.D == nil || k.N == nil {
		return fmt.Errorf("private key components must be set")
	}
	if k.D.Sign() <= 0 || k.N.Sign() <= 0 {
		return fmt.Errorf("private key components must be positive")
	}
	return nil
}
