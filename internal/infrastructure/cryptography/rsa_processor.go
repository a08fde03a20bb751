package cryptography

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
	"rsa_demo_service/internal/pkg/logger"
)

// minRandomKeyBits bounds random key generation from below; anything smaller
// cannot encrypt even a single ASCII character per block.
const minRandomKeyBits = 16

// rsaProcessor struct that implements the rsa.Processor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (rsaDomain.Processor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeyPair builds a key pair from two distinct primes p and q.
// Both inputs are checked with Miller-Rabin; the public exponent is chosen
// deterministically and the private exponent derived via the extended
// Euclidean algorithm.
func (r *rsaProcessor) GenerateKeyPair(p, q *big.Int) (*rsaDomain.KeyPair, error) {
	if p == nil || q == nil {
		return nil, &rsaDomain.InvalidKeyError{Reason: "p and q must be set"}
	}
	if !isPrime(p) {
		return nil, &rsaDomain.InvalidKeyError{Reason: fmt.Sprintf("p = %v is not prime", p)}
	}
	if !isPrime(q) {
		return nil, &rsaDomain.InvalidKeyError{Reason: fmt.Sprintf("q = %v is not prime", q)}
	}
	if p.Cmp(q) == 0 {
		return nil, &rsaDomain.InvalidKeyError{Reason: "p and q must be distinct"}
	}

	n := new(big.Int).Mul(p, q)
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	phi := new(big.Int).Mul(pMinusOne, qMinusOne)

	e, err := choosePublicExponent(phi)
	if err != nil {
		return nil, err
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	r.logger.Info("Generated RSA key pair with modulus of ", n.BitLen(), " bits")
	return &rsaDomain.KeyPair{N: n, E: e, D: d}, nil
}

// GenerateRandomKeyPair builds a key pair from two random distinct primes of
// bits/2 each, using the requested public exponent.
func (r *rsaProcessor) GenerateRandomKeyPair(bits int, e int64) (*rsaDomain.KeyPair, error) {
	if bits < minRandomKeyBits {
		return nil, &rsaDomain.InvalidKeyError{Reason: fmt.Sprintf("key size must be at least %d bits", minRandomKeyBits)}
	}
	if e < 3 || e%2 == 0 {
		return nil, &rsaDomain.InvalidKeyError{Reason: fmt.Sprintf("public exponent %d must be an odd integer >= 3", e)}
	}

	exponent := big.NewInt(e)
	for {
		p, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime p: %w", err)
		}
		q, err := rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime q: %w", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}

		pMinusOne := new(big.Int).Sub(p, one)
		qMinusOne := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(pMinusOne, qMinusOne)

		// retry with fresh primes when e is not coprime to phi
		if g, _, _ := ExtendedGCD(exponent, phi); g.Cmp(one) != 0 {
			continue
		}

		d, err := ModInverse(exponent, phi)
		if err != nil {
			return nil, fmt.Errorf("failed to derive private exponent: %w", err)
		}

		n := new(big.Int).Mul(p, q)
		r.logger.Info("Generated random RSA key pair with modulus of ", n.BitLen(), " bits")
		return &rsaDomain.KeyPair{N: n, E: new(big.Int).Set(exponent), D: d}, nil
	}
}

// Encrypt maps each character of plaintext to its code point and raises it
// to the public exponent modulo N.
func (r *rsaProcessor) Encrypt(plaintext string, publicKey *rsaDomain.PublicKey) ([]*big.Int, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	ciphertext := make([]*big.Int, 0, len(plaintext))
	for _, char := range plaintext {
		code := big.NewInt(int64(char))
		if code.Cmp(publicKey.N) >= 0 {
			return nil, &rsaDomain.EncodingRangeError{Value: code, Modulus: publicKey.N}
		}
		ciphertext = append(ciphertext, ModPow(code, publicKey.E, publicKey.N))
	}

	r.logger.Info("RSA encryption succeeded for ", len(ciphertext), " characters")
	return ciphertext, nil
}

// Decrypt raises each ciphertext integer to the private exponent modulo N
// and maps the result back to a character.
func (r *rsaProcessor) Decrypt(ciphertext []*big.Int, privateKey *rsaDomain.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", fmt.Errorf("private key cannot be nil")
	}
	if err := privateKey.Validate(); err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}

	var plaintext strings.Builder
	for i, c := range ciphertext {
		if c == nil || c.Sign() < 0 || c.Cmp(privateKey.N) >= 0 {
			return "", fmt.Errorf("ciphertext value at index %d out of range [0, n)", i)
		}
		code := ModPow(c, privateKey.D, privateKey.N)
		if !code.IsInt64() || code.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(code.Int64())) {
			return "", fmt.Errorf("decrypted value %v at index %d is not a valid code point", code, i)
		}
		plaintext.WriteRune(rune(code.Int64()))
	}

	r.logger.Info("RSA decryption succeeded for ", len(ciphertext), " characters")
	return plaintext.String(), nil
}

// EncryptText encrypts the whole message as a single big integer and returns
// the ciphertext as base64. The message is interpreted as the integer's
// big-endian bytes, so leading NUL bytes collapse and do not survive the
// round trip.
func (r *rsaProcessor) EncryptText(plaintext string, publicKey *rsaDomain.PublicKey) (string, error) {
	if publicKey == nil {
		return "", fmt.Errorf("public key cannot be nil")
	}
	if err := publicKey.Validate(); err != nil {
		return "", fmt.Errorf("invalid public key: %w", err)
	}

	m := new(big.Int).SetBytes([]byte(plaintext))
	if m.Cmp(publicKey.N) >= 0 {
		return "", &rsaDomain.EncodingRangeError{Value: m, Modulus: publicKey.N}
	}

	c := ModPow(m, publicKey.E, publicKey.N)
	r.logger.Info("RSA text encryption succeeded")
	return bigIntToBase64(c), nil
}

// DecryptText reverses EncryptText.
func (r *rsaProcessor) DecryptText(cipherB64 string, privateKey *rsaDomain.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", fmt.Errorf("private key cannot be nil")
	}
	if err := privateKey.Validate(); err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}

	c, err := base64ToBigInt(cipherB64)
	if err != nil {
		return "", err
	}
	if c.Cmp(privateKey.N) >= 0 {
		return "", fmt.Errorf("ciphertext integer out of range [0, n)")
	}

	m := ModPow(c, privateKey.D, privateKey.N)
	if !utf8.Valid(m.Bytes()) {
		return "", fmt.Errorf("decrypted bytes are not valid UTF-8")
	}

	r.logger.Info("RSA text decryption succeeded")
	return string(m.Bytes()), nil
}

// choosePublicExponent picks e with 1 < e < phi and gcd(e, phi) = 1.
// 65537 is preferred when usable; otherwise the smallest odd candidate from
// 3 upwards is taken, which keeps the choice deterministic for fixed phi.
func choosePublicExponent(phi *big.Int) (*big.Int, error) {
	preferred := big.NewInt(65537)
	if preferred.Cmp(phi) < 0 {
		if g, _, _ := ExtendedGCD(preferred, phi); g.Cmp(one) == 0 {
			return preferred, nil
		}
	}

	for e := big.NewInt(3); e.Cmp(phi) < 0; e.Add(e, big.NewInt(2)) {
		if g, _, _ := ExtendedGCD(e, phi); g.Cmp(one) == 0 {
			return new(big.Int).Set(e), nil
		}
	}

	return nil, &rsaDomain.InvalidKeyError{Reason: "no public exponent coprime to phi(n) exists"}
}
