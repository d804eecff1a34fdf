package chacha20

import (
	"encoding/binary"
	"math/bits"

	"chacha/internal/domain"
)

// BlockSize is the number of keystream bytes produced per counter value.
const BlockSize = 64

// The constant first row of the state: "expand 32-byte k" as little-endian words.
const (
	word0 uint32 = 0x61707865
	word1 uint32 = 0x3320646e
	word2 uint32 = 0x79622d32
	word3 uint32 = 0x6b206574
)

// roundIndices lists the state quadruples of one double round: the four
// columns followed by the four diagonals, indices into the row-major state.
var roundIndices = [8][4]int{
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
	{0, 5, 10, 15},
	{1, 6, 11, 12},
	{2, 7, 8, 13},
	{3, 4, 9, 14},
}

// quarterRound mixes four state words with wrapping adds, xors and rotations.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}

// initialState lays out constants, key, counter and nonce per RFC 8439 §2.3.
func initialState(key domain.Key, nonce domain.Nonce, counter uint32) [16]uint32 {
	var s [16]uint32
	s[0], s[1], s[2], s[3] = word0, word1, word2, word3
	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	s[12] = counter
	s[13] = binary.LittleEndian.Uint32(nonce[0:4])
	s[14] = binary.LittleEndian.Uint32(nonce[4:8])
	s[15] = binary.LittleEndian.Uint32(nonce[8:12])
	return s
}

// permute runs the 20 ChaCha rounds and the feed-forward addition in place.
func permute(state *[16]uint32) {
	initial := *state
	for i := 0; i < 10; i++ {
		for _, q := range roundIndices {
			state[q[0]], state[q[1]], state[q[2]], state[q[3]] =
				quarterRound(state[q[0]], state[q[1]], state[q[2]], state[q[3]])
		}
	}
	for i, w := range initial {
		state[i] += w
	}
}

// block produces the 64-byte keystream block for one counter value.
// Identical (key, nonce, counter) always yields identical output.
func block(key domain.Key, nonce domain.Nonce, counter uint32) [BlockSize]byte {
	state := initialState(key, nonce, counter)
	permute(&state)
	var out [BlockSize]byte
	for i, w := range state {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}
