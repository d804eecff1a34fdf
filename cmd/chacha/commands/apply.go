package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var outPath string

func encryptCmd() *cobra.Command {
	return applyCmd("encrypt", "Encrypt a file or stdin with the keystream")
}

func decryptCmd() *cobra.Command {
	return applyCmd("decrypt", "Decrypt a file or stdin with the keystream")
}

// applyCmd builds the shared XOR command. Encryption and decryption are the
// same operation at the same keystream position.
func applyCmd(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := newCipher()
			if err != nil {
				return err
			}
			defer cipher.Wipe()

			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			out := io.Writer(os.Stdout)
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			buf := make([]byte, 64*1024)
			for {
				n, rerr := in.Read(buf)
				if n > 0 {
					cipher.ApplyKeystream(buf[:n])
					if _, werr := out.Write(buf[:n]); werr != nil {
						return werr
					}
				}
				if rerr == io.EOF {
					return nil
				}
				if rerr != nil {
					return rerr
				}
			}
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	return cmd
}
