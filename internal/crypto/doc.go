// Package crypto provides the key material helpers around the cipher core:
// Argon2id passphrase derivation, random key/nonce/salt generation and short
// public fingerprints for display. The cipher itself lives in
// internal/chacha20 and only ever sees fixed-size material produced here or
// supplied by the caller.
package crypto
