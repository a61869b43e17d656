package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/Steppenwolfe65/RCS-sub000/rcs"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time Transform over repeated random messages (wall-clock only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := parseVariant(variantFromFlag())
		if err != nil {
			return err
		}
		iterations := cfg.GetInt("bench-iterations")
		size := cfg.GetInt("bench-size")

		keySize := rcs.RCS256KeySize
		if variant == rcs.RCS512 {
			keySize = rcs.RCS512KeySize
		}
		key := make([]byte, keySize)
		rand.Read(key)
		var nonce [rcs.BlockSize]byte
		rand.Read(nonce[:])
		plaintext := make([]byte, size)
		rand.Read(plaintext)

		var s rcs.State
		if err := s.Initialize(rcs.KeyParams{Key: key, Nonce: nonce}, true, variant); err != nil {
			return err
		}
		out := make([]byte, size+s.TagSize())

		glog.V(1).Infof("benchmarking variant %v: %d iterations of %d bytes", variant, iterations, size)
		start := time.Now()
		for i := 0; i < iterations; i++ {
			s.Transform(out, plaintext)
		}
		elapsed := time.Since(start)

		totalBytes := int64(iterations) * int64(size)
		mbPerSec := float64(totalBytes) / elapsed.Seconds() / (1 << 20)
		fmt.Printf("variant=%v iterations=%d size=%d elapsed=%s throughput=%.2f MB/s\n",
			variant, iterations, size, elapsed, mbPerSec)
		return nil
	},
}
