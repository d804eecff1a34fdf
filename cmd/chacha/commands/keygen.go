package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chacha/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random key, nonce and salt",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.RandomKey()
			if err != nil {
				return err
			}
			nonce, err := crypto.RandomNonce()
			if err != nil {
				return err
			}
			salt, err := crypto.RandomSalt()
			if err != nil {
				return err
			}

			fmt.Printf("key:         %x\n", key.Slice())
			fmt.Printf("nonce:       %x\n", nonce.Slice())
			fmt.Printf("salt:        %x\n", salt)
			fmt.Printf("fingerprint: %s\n", crypto.Fingerprint(key.Slice()))
			return nil
		},
	}
}
