package chacha20

import (
	"chacha/internal/domain"
	"chacha/internal/util/memzero"
)

// Cipher is a seekable ChaCha20 keystream engine bound to one key and nonce.
//
// A Cipher is not safe for concurrent use: ApplyKeystream and Seek both move
// the cursor. Use one instance per goroutine or synchronise externally.
type Cipher struct {
	key   domain.Key
	nonce domain.Nonce

	counter uint32 // block index of the next keystream byte; wraps mod 2^32
	offset  int    // byte offset within the current block, in [0, BlockSize)

	buf     [BlockSize]byte
	bufFor  uint32
	haveBuf bool
}

// New returns a Cipher positioned at byte index seek in the keystream.
func New(key domain.Key, nonce domain.Nonce, seek uint64) *Cipher {
	c := &Cipher{key: key, nonce: nonce}
	c.Seek(seek)
	return c
}

// NewAtBlock returns a Cipher positioned at the start of the given block.
func NewAtBlock(key domain.Key, nonce domain.Nonce, block uint32) *Cipher {
	c := &Cipher{key: key, nonce: nonce}
	c.SeekBlock(block)
	return c
}

// NewFromBytes validates raw key and nonce material and constructs a Cipher.
// It fails with domain.ErrInvalidKeyLength or domain.ErrInvalidNonceLength
// before any cryptographic work happens.
func NewFromBytes(key, nonce []byte, seek uint64) (*Cipher, error) {
	k, err := domain.ParseKey(key)
	if err != nil {
		return nil, err
	}
	n, err := domain.ParseNonce(nonce)
	if err != nil {
		return nil, err
	}
	return New(k, n, seek), nil
}

// ApplyKeystream XORs buf in place with consecutive keystream bytes,
// advancing the cursor by len(buf). Applying the keystream a second time
// from the same position restores the original bytes.
func (c *Cipher) ApplyKeystream(buf []byte) {
	for i := range buf {
		buf[i] ^= c.nextByte()
	}
}

// Seek repositions the cursor to the given byte index in the keystream.
// No block is computed until the next byte is requested. Block indices wrap
// modulo 2^32, so indices past 2^38 bytes alias earlier keystream rather
// than failing.
func (c *Cipher) Seek(index uint64) {
	c.counter = uint32(index / BlockSize)
	c.offset = int(index % BlockSize)
}

// SeekBlock repositions the cursor to the start of the given block.
func (c *Cipher) SeekBlock(block uint32) {
	c.counter = block
	c.offset = 0
}

// KeystreamBlock repositions the cursor to the given block and returns that
// block's 64 keystream bytes. The cursor is left at the block's first byte.
func (c *Cipher) KeystreamBlock(block uint32) [BlockSize]byte {
	c.SeekBlock(block)
	c.refill()
	return c.buf
}

// Wipe zeroes the key, nonce and any cached keystream bytes. The Cipher
// must not be used afterwards.
func (c *Cipher) Wipe() {
	memzero.Zero(c.key[:])
	memzero.Zero(c.nonce[:])
	memzero.Zero(c.buf[:])
	c.counter, c.offset, c.haveBuf = 0, 0, false
}

// nextByte returns the keystream byte at the cursor and advances it,
// generating a fresh block whenever the cached one no longer matches the
// cursor's counter.
func (c *Cipher) nextByte() byte {
	if !c.haveBuf || c.bufFor != c.counter {
		c.refill()
	}
	b := c.buf[c.offset]
	c.offset++
	if c.offset == BlockSize {
		c.offset = 0
		c.counter++
	}
	return b
}

func (c *Cipher) refill() {
	c.buf = block(c.key, c.nonce, c.counter)
	c.bufFor = c.counter
	c.haveBuf = true
}
