package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"chacha/internal/chacha20"
	"chacha/internal/crypto"
	"chacha/internal/domain"
	"chacha/internal/util/memzero"
)

var (
	keyHex     string
	nonceHex   string
	passphrase string
	saltHex    string
	seek       uint64
)

func Execute() error {
	root := &cobra.Command{
		Use:   "chacha",
		Short: "Seekable ChaCha20 keystream tool",
	}

	root.PersistentFlags().StringVar(&keyHex, "key", "", "256-bit key as 64 hex chars")
	root.PersistentFlags().StringVar(&nonceHex, "nonce", "", "96-bit nonce as 24 hex chars")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "derive the key from a passphrase (requires --salt)")
	root.PersistentFlags().StringVar(&saltHex, "salt", "", "16-byte salt as 32 hex chars, used with --passphrase")
	root.PersistentFlags().Uint64Var(&seek, "seek", 0, "keystream byte index to start at")

	root.AddCommand(encryptCmd(), decryptCmd(), keystreamCmd(), keygenCmd())
	return root.Execute()
}

// newCipher builds a cipher from the persistent flags. The key comes from
// --key, or is derived from --passphrase and --salt when --key is absent.
func newCipher() (*chacha20.Cipher, error) {
	nb, err := hex.DecodeString(nonceHex)
	if err != nil {
		return nil, fmt.Errorf("decode nonce: %w", err)
	}
	nonce, err := domain.ParseNonce(nb)
	if err != nil {
		return nil, err
	}

	var key domain.Key
	switch {
	case keyHex != "":
		kb, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		key, err = domain.ParseKey(kb)
		memzero.Zero(kb)
		if err != nil {
			return nil, err
		}
	case passphrase != "":
		salt, err := hex.DecodeString(saltHex)
		if err != nil {
			return nil, fmt.Errorf("decode salt: %w", err)
		}
		key, err = crypto.DeriveKey(passphrase, salt)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("key required: use --key, or --passphrase with --salt")
	}

	return chacha20.New(key, nonce, seek), nil
}
