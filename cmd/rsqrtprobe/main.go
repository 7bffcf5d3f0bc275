// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main reports which reciprocal square root kernel this binary
// selects on the current machine, and can fail fast when a required SIMD
// level is missing.
//
// Usage:
//
//	rsqrtprobe                   # print features, kernels and a self-check
//	rsqrtprobe --require avx2    # exit 1 unless an AVX2 kernel can run
//	rsqrtprobe --json -v         # JSON logs at debug level on stderr
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	xcpu "golang.org/x/sys/cpu"

	"github.com/go-highway/invsqrt/hwy"
	"github.com/go-highway/invsqrt/hwy/contrib/rsqrt"
)

// errSelfCheck is returned when the active kernel misses the 2^-20 bound.
var errSelfCheck = errors.New("self-check failed")

type options struct {
	require  string
	json     bool
	verbose  bool
	quiet    bool
	maxError float64
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "rsqrtprobe",
		Short:         "Report the reciprocal square root kernel selected on this machine",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.json, opts.verbose)
			err := run(out, logger, opts)
			if err != nil {
				logger.Error("rsqrtprobe failed", "error", err)
			}
			return err
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		return err
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.require, "require", "", "fail unless a kernel at this SIMD level can run (none, sse2, avx, avx2, avx512, neon)")
	flags.BoolVar(&opts.json, "json", false, "log JSON instead of text")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "skip the report, only check --require and the self-check")
	flags.Float64Var(&opts.maxError, "max-error", 0x1p-20, "largest DoubleF64x4 relative error the self-check accepts")

	return cmd
}

func run(out io.Writer, logger *slog.Logger, opts options) error {
	if opts.require != "" {
		level, err := parseLevel(opts.require)
		if err != nil {
			return err
		}
		if err := rsqrt.Require(level); err != nil {
			return err
		}
		logger.Debug("required target available", "level", level)
	}

	active := rsqrt.Active()
	logger.Debug("kernels",
		"active", active.Name,
		"registered", lo.Map(rsqrt.Global.Entries(), func(k rsqrt.Kernel, _ int) string { return k.Name }),
	)

	if !opts.quiet {
		report(out, active)
	}

	worst := selfCheck()
	logger.Debug("self-check", "kernel", active.Name, "worst_rel_err", worst)
	if !opts.quiet {
		fmt.Fprintf(out, "DoubleF64x4 worst relative error over [1e-3, 1e6]: %.3g\n", worst)
	}
	if worst > opts.maxError {
		return fmt.Errorf("%w: kernel %s worst relative error %.3g > %.3g", errSelfCheck, active.Name, worst, opts.maxError)
	}
	return nil
}

func report(out io.Writer, active rsqrt.Kernel) {
	fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(out, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(out, "Highway native 256-bit vectors: %v\n", hwy.SupportsWidth(32))
	fmt.Fprintf(out, "Highway HasAVX2: %v  HasFMA: %v  HasASIMD: %v\n", hwy.HasAVX2(), hwy.HasFMA(), hwy.HasASIMD())
	fmt.Fprintln(out)

	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintln(out, "=== golang.org/x/sys/cpu.X86 ===")
		fmt.Fprintf(out, "  HasAVX:     %v\n", xcpu.X86.HasAVX)
		fmt.Fprintf(out, "  HasAVX2:    %v\n", xcpu.X86.HasAVX2)
		fmt.Fprintf(out, "  HasAVX512F: %v\n", xcpu.X86.HasAVX512F)
		fmt.Fprintf(out, "  HasFMA:     %v\n", xcpu.X86.HasFMA)
	case "arm64":
		fmt.Fprintln(out, "=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Fprintf(out, "  HasASIMD:   %v (NEON baseline)\n", xcpu.ARM64.HasASIMD)
		fmt.Fprintf(out, "  HasFP:      %v\n", xcpu.ARM64.HasFP)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== rsqrt kernels ===")
	for _, k := range rsqrt.Global.Entries() {
		mark := " "
		if k.Name == active.Name {
			mark = "*"
		}
		fmt.Fprintf(out, " %s %-10s level=%-8s priority=%d\n", mark, k.Name, k.SIMDLevel, k.Priority)
	}
	fmt.Fprintln(out)
}

func newLogger(w io.Writer, json, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel maps a --require value to a SIMD level.
func parseLevel(s string) (cpu.SIMDLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "generic", "emulated":
		return cpu.SIMDNone, nil
	case "sse2":
		return cpu.SIMDSSE2, nil
	case "avx":
		return cpu.SIMDAVX, nil
	case "avx2":
		return cpu.SIMDAVX2, nil
	case "avx512":
		return cpu.SIMDAVX512, nil
	case "neon":
		return cpu.SIMDNEON, nil
	default:
		return cpu.SIMDNone, fmt.Errorf("unknown SIMD level %q", s)
	}
}

// selfCheck runs the active DoubleF64x4 over a geometric sweep and returns
// the worst relative error after scaling.
func selfCheck() float64 {
	var worst float64
	for x := 1e-3; x <= 1e6; x *= 1.5 {
		r2 := hwy.Float64x4{x, x * 1.1, x * 1.2, x * 1.3}
		got := rsqrt.DoubleF64x4(r2)
		for i := range got {
			exact := 1 / math.Sqrt(r2[i])
			worst = max(worst, math.Abs(got[i]*rsqrt.ScaleDouble-exact)/exact)
		}
	}
	return worst
}
