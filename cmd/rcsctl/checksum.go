package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/Steppenwolfe65/RCS-sub000/sha3"
)

var checksumMACKey string

var checksumCmd = &cobra.Command{
	Use:   "checksum [file...]",
	Short: "SHAKE256 checksum of stdin or one or more files, optionally keyed as a MAC",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			sum, err := shakeSum(os.Stdin, checksumMACKey)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			fmt.Println(sum)
			return nil
		}

		failed := 0
		for _, filename := range args {
			sum, err := shakeSumFile(filename, checksumMACKey)
			if err != nil {
				glog.Errorf("checksum %s: %v", filename, err)
				failed++
				continue
			}
			fmt.Printf("SHAKE256(%s) = %s\n", filename, sum)
		}
		if failed != 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	checksumCmd.Flags().StringVar(&checksumMACKey, "mackey", "", "an ASCII key, prepended before hashing, to key the checksum as a MAC")
	rootCmd.AddCommand(checksumCmd)
}

// shakeSum computes the base64-encoded 64-byte SHAKE256 digest of r, keyed
// by macKey if non-empty. The key is simply prepended to the input of plain
// SHAKE256; this is not the cSHAKE/KMAC construction the encrypt/decrypt
// subcommands use.
func shakeSum(r io.Reader, macKey string) (string, error) {
	sp := sha3.NewShake256()
	sp.Write([]byte(macKey))
	if _, err := io.Copy(sp, r); err != nil {
		return "", err
	}
	digest := make([]byte, 64)
	sp.Read(digest)
	return base64.URLEncoding.EncodeToString(digest), nil
}

func shakeSumFile(filename, macKey string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return shakeSum(f, macKey)
}
