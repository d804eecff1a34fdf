package domain

import "errors"

var (
	ErrInvalidKeyLength   = errors.New("chacha20 key: want 32 bytes")
	ErrInvalidNonceLength = errors.New("chacha20 nonce: want 12 bytes")
)

// Key is a 256-bit ChaCha20 key.
type Key [32]byte

func (k Key) Slice() []byte { return k[:] }

// Nonce is a 96-bit ChaCha20 nonce, RFC 8439 layout.
type Nonce [12]byte

func (n Nonce) Slice() []byte { return n[:] }

// ParseKey copies b into a Key, rejecting any length other than 32 bytes.
func ParseKey(b []byte) (Key, error) {
	var k Key
	if len(b) != len(k) {
		return Key{}, ErrInvalidKeyLength
	}
	copy(k[:], b)
	return k, nil
}

// ParseNonce copies b into a Nonce, rejecting any length other than 12 bytes.
func ParseNonce(b []byte) (Nonce, error) {
	var n Nonce
	if len(b) != len(n) {
		return Nonce{}, ErrInvalidNonceLength
	}
	copy(n[:], b)
	return n, nil
}
