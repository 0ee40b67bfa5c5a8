// Package sampling implements deterministic and secure sampling of floating point values.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandFloat64 returns a float uniformly distributed in [min, max) built from 8 bytes read on prng.
// The result is deterministic if prng is a [KeyedPRNG].
func RandFloat64(prng PRNG, min, max float64) (float64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		return 0, fmt.Errorf("cannot RandFloat64: %w", err)
	}
	// 53 bits of entropy, the size of the float64 mantissa.
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min), nil
}

// RandComplex128 returns a random complex with the real and imaginary part in [min, max).
func RandComplex128(prng PRNG, min, max float64) (complex128, error) {
	re, err := RandFloat64(prng, min, max)
	if err != nil {
		return 0, err
	}
	im, err := RandFloat64(prng, min, max)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}
