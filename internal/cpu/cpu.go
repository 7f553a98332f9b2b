// Package cpu reports the processor features of the running host.
//
// The radix-2 kernels are pure Go and do not dispatch on these flags; the
// report is printed by benchmark tooling so results can be compared across
// machines. Detection runs once and is cached.
package cpu

import (
	"strings"
	"sync"
)

// Features describes CPU capabilities of the host.
type Features struct {
	// x86 SIMD features
	HasSSE2   bool
	HasSSE3   bool
	HasSSSE3  bool
	HasSSE41  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// Runtime information
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
)

// DetectFeatures returns the CPU features available on the current system.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})

	return detectedFeatures
}

// String returns the architecture followed by the detected feature names,
// e.g. "amd64 sse2 avx avx2".
func (f Features) String() string {
	parts := []string{f.Architecture}

	flags := []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasSSE3, "sse3"},
		{f.HasSSSE3, "ssse3"},
		{f.HasSSE41, "sse4.1"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasNEON, "neon"},
	}

	for _, flag := range flags {
		if flag.on {
			parts = append(parts, flag.name)
		}
	}

	return strings.Join(parts, " ")
}
