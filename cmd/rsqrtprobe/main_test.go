package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/go-highway/invsqrt/hwy"
	"github.com/go-highway/invsqrt/hwy/contrib/rsqrt"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    cpu.SIMDLevel
		wantErr bool
	}{
		{"avx2", cpu.SIMDAVX2, false},
		{" AVX512 ", cpu.SIMDAVX512, false},
		{"emulated", cpu.SIMDNone, false},
		{"neon", cpu.SIMDNEON, false},
		{"sve", cpu.SIMDNone, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelfCheck(t *testing.T) {
	if worst := selfCheck(); worst > 0x1p-20 {
		t.Errorf("selfCheck worst relative error %g exceeds 2^-20", worst)
	}
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		want    string
	}{
		{name: "report", args: []string{}, want: "=== rsqrt kernels ==="},
		{name: "report width", args: []string{}, want: "Highway native 256-bit vectors: " + strconv.FormatBool(hwy.SupportsWidth(32))},
		{name: "require emulated", args: []string{"--require", "emulated", "-q"}},
		{name: "require avx512", args: []string{"--require", "avx512", "-q"}, wantErr: rsqrt.ErrUnsupportedTarget},
		{name: "impossible bound", args: []string{"-q", "--max-error", "0"}, wantErr: errSelfCheck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			cmd := newRootCmd(&out)
			cmd.SetErr(&logs)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
				}
				if !strings.Contains(logs.String(), "rsqrtprobe failed") {
					t.Errorf("error not logged: %q", logs.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}
}
