package chacha20

import (
	"encoding/hex"
	"testing"

	"chacha/internal/domain"
)

func mustKey(t *testing.T, s string) domain.Key {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode key hex: %v", err)
	}
	k, err := domain.ParseKey(b)
	if err != nil {
		t.Fatalf("parse key: %v", err)
	}
	return k
}

func mustNonce(t *testing.T, s string) domain.Nonce {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decode nonce hex: %v", err)
	}
	n, err := domain.ParseNonce(b)
	if err != nil {
		t.Fatalf("parse nonce: %v", err)
	}
	return n
}

// RFC 8439 §2.1.1.
func TestQuarterRound(t *testing.T) {
	a, b, c, d := quarterRound(0x11111111, 0x01020304, 0x9b8d6f43, 0x01234567)
	got := [4]uint32{a, b, c, d}
	want := [4]uint32{0xea2a92f4, 0xcb1cf8ce, 0x4581472e, 0x5881c4bb}
	if got != want {
		t.Fatalf("quarterRound = %08x, want %08x", got, want)
	}
}

// RFC 8439 §2.2.1: a quarter round applied to a diagonal of a full state.
func TestQuarterRoundOnState(t *testing.T) {
	state := [16]uint32{
		0x879531e0, 0xc5ecf37d, 0x516461b1, 0xc9a62f8a,
		0x44c20ef3, 0x3390af7f, 0xd9fc690b, 0x2a5f714c,
		0x53372767, 0xb00a5631, 0x974c541a, 0x359e9963,
		0x5c971061, 0x3d631689, 0x2098d9d6, 0x91dbd320,
	}
	state[2], state[7], state[8], state[13] =
		quarterRound(state[2], state[7], state[8], state[13])

	want := [16]uint32{
		0x879531e0, 0xc5ecf37d, 0xbdb886dc, 0xc9a62f8a,
		0x44c20ef3, 0x3390af7f, 0xd9fc690b, 0xcfacafd2,
		0xe46bea80, 0xb00a5631, 0x974c541a, 0x359e9963,
		0x5c971061, 0xccc07c79, 0x2098d9d6, 0x91dbd320,
	}
	if state != want {
		t.Fatalf("state after quarter round = %08x, want %08x", state, want)
	}
}

// RFC 8439 §2.3.2: state layout for the block function test vector.
func TestInitialState(t *testing.T) {
	key := mustKey(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	nonce := mustNonce(t, "000000090000004a00000000")

	state := initialState(key, nonce, 1)

	want := [16]uint32{
		0x61707865, 0x3320646e, 0x79622d32, 0x6b206574,
		0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c,
		0x13121110, 0x17161514, 0x1b1a1918, 0x1f1e1d1c,
		0x00000001, 0x09000000, 0x4a000000, 0x00000000,
	}
	if state != want {
		t.Fatalf("initial state = %08x, want %08x", state, want)
	}
}

// RFC 8439 §2.3.2: the block function, including the feed-forward addition.
func TestPermute(t *testing.T) {
	key := mustKey(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	nonce := mustNonce(t, "000000090000004a00000000")

	state := initialState(key, nonce, 1)
	permute(&state)

	want := [16]uint32{
		0xe4e7f110, 0x15593bd1, 0x1fdd0f50, 0xc47120a3,
		0xc7f4d1c7, 0x0368c033, 0x9aaa2204, 0x4e6cd4c3,
		0x466482d2, 0x09aa9f07, 0x05d7c214, 0xa2028bd9,
		0xd19c12b5, 0xb94e16de, 0xe883d0cb, 0x4e3c50a2,
	}
	if state != want {
		t.Fatalf("permuted state = %08x, want %08x", state, want)
	}
}

// RFC 8439 §2.3.2: the serialized 64-byte keystream block.
func TestBlockSerialization(t *testing.T) {
	key := mustKey(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	nonce := mustNonce(t, "000000090000004a00000000")

	out := block(key, nonce, 1)

	want := "10f1e7e4d13b5915500fdd1fa32071c4" +
		"c7d1f4c733c068030422aa9ac3d46c4e" +
		"d2826446079faa0914c2d705d98b02a2" +
		"b5129cd1de164eb9cbd083e8a2503c4e"
	if got := hex.EncodeToString(out[:]); got != want {
		t.Fatalf("keystream block = %s, want %s", got, want)
	}
}

// Identical inputs must always produce identical blocks; seek correctness
// depends on it.
func TestBlockDeterminism(t *testing.T) {
	key := mustKey(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	nonce := mustNonce(t, "000000090000004a00000000")

	first := block(key, nonce, 7)
	second := block(key, nonce, 7)
	if first != second {
		t.Fatal("block transform is not deterministic")
	}
}
