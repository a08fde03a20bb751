package rsa

import "math/big"

// Processor handles textbook RSA operations on arbitrary-precision integers.
// NOTE: this is a pedagogical implementation; there is no padding scheme and
// no protection against timing attacks. Do not use it to protect real data.
type Processor interface {
	// GenerateKeyPair builds a key pair from two distinct primes p and q.
	// The public exponent is chosen deterministically: 65537 when it is
	// below phi(n) and coprime to it, otherwise the smallest odd candidate
	// from 3 upwards. Returns an *InvalidKeyError for non-prime or equal
	// inputs, or when no exponent exists.
	GenerateKeyPair(p, q *big.Int) (*KeyPair, error)

	// GenerateRandomKeyPair builds a key pair from two random distinct
	// primes of bits/2 each, using the requested public exponent.
	GenerateRandomKeyPair(bits int, e int64) (*KeyPair, error)

	// Encrypt maps each character of plaintext to its code point and raises
	// it to the public exponent modulo N. Returns an *EncodingRangeError if
	// any code point is not strictly less than N.
	Encrypt(plaintext string, publicKey *PublicKey) ([]*big.Int, error)

	// Decrypt reverses Encrypt: each ciphertext integer is raised to the
	// private exponent modulo N and mapped back to a character.
	Decrypt(ciphertext []*big.Int, privateKey *PrivateKey) (string, error)

	// EncryptText encrypts the whole message as a single big integer and
	// returns the ciphertext as a base64 string. The message's integer
	// representation must be strictly less than N. The encoding is the
	// integer's big-endian bytes, so leading NUL bytes do not survive the
	// round trip.
	EncryptText(plaintext string, publicKey *PublicKey) (string, error)

	// DecryptText reverses EncryptText.
	DecryptText(cipherB64 string, privateKey *PrivateKey) (string, error)
}
