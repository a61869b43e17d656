package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg = viper.New()

var rootCmd = &cobra.Command{
	Use:   "rcsctl",
	Short: "Encrypt, decrypt, and verify against the Rijndael-256 authenticated Cipher Stream",
}

func init() {
	rootCmd.PersistentFlags().String("variant", "rcs256", "cipher variant: rcs256 or rcs512")
	rootCmd.PersistentFlags().Int("bench-iterations", 1000, "iterations for the bench subcommand")
	rootCmd.PersistentFlags().Int("bench-size", 4096, "message size in bytes for the bench subcommand")

	cfg.BindPFlag("variant", rootCmd.PersistentFlags().Lookup("variant"))
	cfg.BindPFlag("bench-iterations", rootCmd.PersistentFlags().Lookup("bench-iterations"))
	cfg.BindPFlag("bench-size", rootCmd.PersistentFlags().Lookup("bench-size"))

	cfg.SetEnvPrefix("RCSCTL")
	cfg.AutomaticEnv()

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(katCmd)
	rootCmd.AddCommand(benchCmd)
}

func variantFromFlag() string {
	return strings.ToLower(cfg.GetString("variant"))
}
