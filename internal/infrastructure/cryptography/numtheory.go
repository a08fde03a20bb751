package cryptography

import (
	"math/big"

	rsaDomain "rsa_demo_service/internal/domain/rsa"
)

// millerRabinRounds is the number of Miller-Rabin rounds used when checking
// caller-supplied primes.
const millerRabinRounds = 20

var one = big.NewInt(1)

// ExtendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
// It runs the Euclidean division steps iteratively while tracking the
// back-substitution coefficients.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	prevR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	prevX, curX := big.NewInt(1), big.NewInt(0)
	prevY, curY := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(prevR, r)
		prevR, r = r, new(big.Int).Sub(prevR, new(big.Int).Mul(q, r))
		prevX, curX = curX, new(big.Int).Sub(prevX, new(big.Int).Mul(q, curX))
		prevY, curY = curY, new(big.Int).Sub(prevY, new(big.Int).Mul(q, curY))
	}

	return prevR, prevX, prevY
}

// ModInverse returns the x in [0, m) with a*x = 1 (mod m). It fails with a
// *rsa.NonInvertibleError when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, &rsaDomain.NonInvertibleError{A: a, M: m}
	}
	// big.Int.Mod is Euclidean, so a negative coefficient lands in [0, m)
	return x.Mod(x, m), nil
}

// ModPow returns base^exponent mod modulus by repeated squaring, reducing
// after every step to bound intermediate magnitude. An exponent of 0 yields
// 1 and a modulus of 1 yields 0.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b).Mod(result, modulus)
		}
		b.Mul(b, b).Mod(b, modulus)
		e.Rsh(e, 1)
	}

	return result
}

// isPrime reports whether n is prime with high probability (Miller-Rabin).
func isPrime(n *big.Int) bool {
	if n == nil || n.Cmp(one) <= 0 {
		return false
	}
	return n.ProbablyPrime(millerRabinRounds)
}
