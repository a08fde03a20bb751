//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigIntBase64RoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2790),
		new(big.Int).Lsh(big.NewInt(1), 256),
	}

	for _, value := range values {
		encoded := bigIntToBase64(value)
		require.NotEmpty(t, encoded)

		decoded, err := base64ToBigInt(encoded)
		require.NoError(t, err)
		assert.Zero(t, value.Cmp(decoded))
	}
}

func TestBase64ToBigInt_Invalid(t *testing.T) {
	_, err := base64ToBigInt("not base64!")
	assert.Error(t, err)
}
