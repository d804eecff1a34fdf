package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func keystreamCmd() *cobra.Command {
	var length uint64
	var asHex bool

	cmd := &cobra.Command{
		Use:   "keystream",
		Short: "Write raw keystream bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := newCipher()
			if err != nil {
				return err
			}
			defer cipher.Wipe()

			buf := make([]byte, 64*1024)
			for remaining := length; remaining > 0; {
				n := uint64(len(buf))
				if remaining < n {
					n = remaining
				}
				chunk := buf[:n]
				for i := range chunk {
					chunk[i] = 0
				}
				cipher.ApplyKeystream(chunk)

				if asHex {
					if _, err := fmt.Fprint(os.Stdout, hex.EncodeToString(chunk)); err != nil {
						return err
					}
				} else if _, err := os.Stdout.Write(chunk); err != nil {
					return err
				}
				remaining -= n
			}
			if asHex {
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&length, "length", 64, "number of keystream bytes to write")
	cmd.Flags().BoolVar(&asHex, "hex", false, "hex-encode the output")
	return cmd
}
