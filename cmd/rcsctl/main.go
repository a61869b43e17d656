// Command rcsctl is a dogfooding CLI over the rcs package: it encrypts and
// decrypts single messages from hex-encoded flags, reproduces the published
// known-answer vectors, and benchmarks Transform. It is an external
// collaborator, not part of the library's contract.
package main

import "github.com/golang/glog"

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Exit(err)
	}
}
