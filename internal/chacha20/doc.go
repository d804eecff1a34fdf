// Package chacha20 implements the ChaCha20 stream cipher of RFC 8439 with a
// byte-addressable, seekable keystream.
//
// A Cipher tracks a cursor (block counter, intra-block offset) into the
// keystream and regenerates 64-byte blocks lazily as bytes are consumed.
// The 32-bit block counter wraps, so the keystream repeats after 2^38 bytes;
// that bound comes from the wire format and is kept for interoperability.
//
// The cipher provides no authentication. Compose with a MAC externally when
// integrity is required.
package chacha20
