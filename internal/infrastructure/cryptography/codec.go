package cryptography

import (
	"encoding/base64"
	"fmt"
	"math/big"
)

// bigIntToBase64 renders z as the base64 of its big-endian bytes. Zero is
// rendered as a single zero byte so the representation is never empty.
func bigIntToBase64(z *big.Int) string {
	b := z.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return base64.StdEncoding.EncodeToString(b)
}

// base64ToBigInt parses a base64 string produced by bigIntToBase64.
func base64ToBigInt(s string) (*big.Int, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 ciphertext: %w", err)
	}
	return new(big.Int).SetBytes(b), nil
}
