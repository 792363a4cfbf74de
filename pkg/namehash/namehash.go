// Package namehash derives the short numeric fingerprint used to identify a client by name
// during pairing.
//
// The fingerprint is the sum of the name's Unicode code points multiplied by Multiplier and
// truncated to 16 bits. It is not a cryptographic hash: any two names made of the same
// characters (anagrams) produce the same value.
package namehash

import "strconv"

// Multiplier is applied to the code point sum before truncation.
const Multiplier = 1000

// Hash is the 16-bit fingerprint of a client name.
type Hash uint16

func (h Hash) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// CodePointSum returns the sum of every rune in name. Invalid UTF-8 bytes count as
// utf8.RuneError (U+FFFD).
func CodePointSum(name string) uint64 {
	var sum uint64
	for _, char := range name {
		sum += uint64(char)
	}

	return sum
}

// FromName computes the fingerprint for name. An empty name yields 0.
func FromName(name string) Hash {
	// 2^16 divides 2^64 so overflow of the accumulator never changes the low 16 bits.
	return Hash((CodePointSum(name) * Multiplier) % (1 << 16))
}
