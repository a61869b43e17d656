// Package cpufeature snapshots the CPU capabilities relevant to RCS's
// block-function dispatch. It never exposes a process-wide singleton: a
// Features value is produced once by Detect and threaded explicitly into
// rcs.Initialize by the caller.
package cpufeature

import "golang.org/x/sys/cpu"

// Features records the subset of CPU capabilities RCS's backend dispatch
// cares about. The zero value means "scalar only" and is always safe.
type Features struct {
	HasAES    bool
	HasAVX2   bool
	HasAVX512 bool
}

// Detect snapshots the running CPU's feature bits via golang.org/x/sys/cpu.
func Detect() Features {
	return Features{
		HasAES:    cpu.X86.HasAES,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
	}
}
