// Command ctbench times the recursive DIT and iterative DIF radix-2 plans,
// optionally next to a production FFT, and prints a ns/op table per size.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"

	ctfft "github.com/cwbudde/algo-ctfft"
	"github.com/cwbudde/algo-ctfft/internal/cpu"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundtrip = "roundtrip"
)

// transformer is the subset of plan behavior the benchmark drives.
type transformer interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

type candidate struct {
	name string
	plan transformer
}

type benchResult struct {
	name    string
	nsPerOp float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "256,1024,4096,16384", "comma-separated power-of-two sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		mode     = flag.String("mode", modeForward, "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
		compare  = flag.Bool("compare", false, "include github.com/MeKo-Christian/algo-fft in the table")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		os.Exit(2)
	}

	run(os.Stdout, rand.New(rand.NewSource(*seed)), sizes, *iters, *warmup, resolveModes(*mode), *compare)
}

func run(w io.Writer, rnd *rand.Rand, sizes []int, iters, warmup int, modes []string, compare bool) {
	fmt.Fprintf(w, "cpu=%s go=%s iters=%d warmup=%d\n", cpu.DetectFeatures(), runtime.Version(), iters, warmup)
	fmt.Fprintf(w, "%8s  %10s  %10s  %12s\n", "size", "mode", "kernel", "ns/op")

	for _, n := range sizes {
		candidates, err := buildCandidates(n, compare)
		if err != nil {
			fmt.Fprintf(w, "%8d  skipped: %v\n", n, err)
			continue
		}

		for _, runMode := range modes {
			results := benchmarkSize(rnd, n, iters, warmup, runMode, candidates)

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				fmt.Fprintf(w, "%8d  %10s  %10s  %12.1f\n", n, runMode, res.name, res.nsPerOp)
			}
		}
	}
}

func buildCandidates(n int, compare bool) ([]candidate, error) {
	dit, err := ctfft.NewPlanWithStrategy[complex128](n, ctfft.KernelDIT)
	if err != nil {
		return nil, err
	}

	dif, err := ctfft.NewPlanWithStrategy[complex128](n, ctfft.KernelDIF)
	if err != nil {
		return nil, err
	}

	candidates := []candidate{
		{name: "dit", plan: dit},
		{name: "dif", plan: dif},
	}

	if compare {
		ref, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("algo-fft plan: %w", err)
		}

		candidates = append(candidates, candidate{name: "algo-fft", plan: ref})
	}

	return candidates, nil
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, mode string, candidates []candidate) []benchResult {
	src := make([]complex128, n)
	for i := range src {
		src[i] = complex(rnd.Float64(), rnd.Float64())
	}

	dst := make([]complex128, n)
	freq := make([]complex128, n)

	results := make([]benchResult, 0, len(candidates))

	for _, c := range candidates {
		if mode == modeInverse {
			if err := c.plan.Forward(freq, src); err != nil {
				continue
			}
		}

		ok := true

		for range warmup {
			if err := runPlanMode(c.plan, dst, src, freq, mode); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		runtime.GC()

		start := time.Now()

		for range iters {
			if err := runPlanMode(c.plan, dst, src, freq, mode); err != nil {
				ok = false
				break
			}
		}

		if !ok || iters <= 0 {
			continue
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			name:    c.name,
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func runPlanMode(plan transformer, dst, src, freq []complex128, mode string) error {
	switch mode {
	case modeInverse:
		return plan.Inverse(dst, freq)
	case modeRoundtrip:
		err := plan.Forward(freq, src)
		if err != nil {
			return err
		}

		return plan.Inverse(dst, freq)
	default:
		return plan.Forward(dst, src)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundtrip}
	case modeInverse, modeRoundtrip, modeForward:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
