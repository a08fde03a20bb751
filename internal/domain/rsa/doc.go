// Package rsa defines the core types, error kinds and contracts for the
// textbook RSA demo: key pairs built from two primes, and per-character or
// whole-message encryption and decryption via modular exponentiation.
package rsa
