package rsa

import (
	"fmt"
	"math/big"
)

// InvalidKeyError indicates that a key pair could not be built from the
// supplied parameters: a non-prime factor, equal primes, or no usable
// public exponent in the search range.
type InvalidKeyError struct {
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key parameters: %s", e.Reason)
}

// NonInvertibleError indicates that no modular inverse exists because
// gcd(a, m) != 1.
type NonInvertibleError struct {
	A *big.Int
	M *big.Int
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("no modular inverse for %v mod %v", e.A, e.M)
}

// EncodingRangeError indicates that a message integer is not strictly less
// than the modulus and would not survive the encrypt/decrypt round trip.
type EncodingRangeError struct {
	Value   *big.Int
	Modulus *big.Int
}

func (e *EncodingRangeError) Error() string {
	return fmt.Sprintf("message integer %v out of range for modulus %v", e.Value, e.Modulus)
}
