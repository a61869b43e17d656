package main

import (
	"encoding/hex"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/Steppenwolfe65/RCS-sub000/rcs"
)

var (
	flagKey        string
	flagNonce      string
	flagInfo       string
	flagAD         string
	flagPlaintext  string
	flagCiphertext string
)

func addTransformFlags(cmd *cobra.Command, needsCiphertext bool) {
	cmd.Flags().StringVar(&flagKey, "key", "", "hex-encoded cipher key")
	cmd.Flags().StringVar(&flagNonce, "nonce", "", "hex-encoded 32-byte nonce")
	cmd.Flags().StringVar(&flagInfo, "info", "", "hex-encoded customization string")
	cmd.Flags().StringVar(&flagAD, "ad", "", "hex-encoded associated data")
	if needsCiphertext {
		cmd.Flags().StringVar(&flagCiphertext, "ciphertext", "", "hex-encoded ciphertext||tag")
	} else {
		cmd.Flags().StringVar(&flagPlaintext, "plaintext", "", "hex-encoded plaintext")
	}
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("nonce")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt and authenticate a single message",
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := parseVariant(variantFromFlag())
		if err != nil {
			return err
		}
		key, err := decodeHexFlag("key", flagKey)
		if err != nil {
			return err
		}
		nonce, err := newNonce(flagNonce)
		if err != nil {
			return err
		}
		info, err := decodeHexFlag("info", flagInfo)
		if err != nil {
			return err
		}
		plaintext, err := decodeHexFlag("plaintext", flagPlaintext)
		if err != nil {
			return err
		}

		var s rcs.State
		if err := s.Initialize(rcs.KeyParams{Key: key, Nonce: nonce, Info: info}, true, variant); err != nil {
			return err
		}
		if flagAD != "" {
			ad, err := decodeHexFlag("ad", flagAD)
			if err != nil {
				return err
			}
			s.SetAssociated(ad)
		}

		out := make([]byte, len(plaintext)+s.TagSize())
		s.Transform(out, plaintext)
		glog.V(1).Infof("encrypted %d plaintext bytes under variant %v", len(plaintext), variant)
		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}

func init() {
	addTransformFlags(encryptCmd, false)
}
