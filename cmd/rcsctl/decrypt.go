package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/Steppenwolfe65/RCS-sub000/rcs"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Verify and decrypt a single ciphertext||tag",
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
		ct, err := decodeHexFlag("ciphertext", flagCiphertext)
		if err != nil {
			return err
		}

		var s rcs.State
		if err := s.Initialize(rcs.KeyParams{Key: key, Nonce: nonce, Info: info}, false, variant); err != nil {
			return err
		}
		if flagAD != "" {
			ad, err := decodeHexFlag("ad", flagAD)
			if err != nil {
				return err
			}
			s.SetAssociated(ad)
		}
		if len(ct) < s.TagSize() {
			return fmt.Errorf("ciphertext too short: want at least %d bytes, got %d", s.TagSize(), len(ct))
		}

		pt := make([]byte, len(ct)-s.TagSize())
		if !s.Transform(pt, ct) {
			glog.Errorf("authentication failed for variant %v", variant)
			return errors.New("authentication failed")
		}
		fmt.Println(hex.EncodeToString(pt))
		return nil
	},
}

func init() {
	addTransformFlags(decryptCmd, true)
}
