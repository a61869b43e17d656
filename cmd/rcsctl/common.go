package main

import (
	"encoding/hex"
	"fmt"

	"github.com/Steppenwolfe65/RCS-sub000/rcs"
)

func parseVariant(name string) (rcs.Variant, error) {
	switch name {
	case "rcs256", "256":
		return rcs.RCS256, nil
	case "rcs512", "512":
		return rcs.RCS512, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want rcs256 or rcs512)", name)
	}
}

func decodeHexFlag(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

func newNonce(hexNonce string) ([rcs.BlockSize]byte, error) {
	var nonce [rcs.BlockSize]byte
	b, err := decodeHexFlag("nonce", hexNonce)
	if err != nil {
		return nonce, err
	}
	if len(b) != rcs.BlockSize {
		return nonce, fmt.Errorf("--nonce: want %d bytes, got %d", rcs.BlockSize, len(b))
	}
	copy(nonce[:], b)
	return nonce, nil
}
