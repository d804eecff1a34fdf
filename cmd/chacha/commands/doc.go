// Package commands defines the chacha CLI.
//
// Commands
//
//   - encrypt     XOR a file or stdin with the keystream
//   - decrypt     Same operation as encrypt; both spellings exist because
//     the stream cipher is self-inverse
//   - keystream   Write raw keystream bytes
//   - keygen      Generate a random key, nonce and salt
//
// # Implementation
//
// The root command carries the key material flags (--key, --nonce,
// --passphrase/--salt, --seek) shared by every subcommand; each handler
// builds its cipher from them via newCipher and wipes it when done.
package commands
