package benchmark_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"

	argio "github.com/dzonerzy/go-argparse/io"
)

// Category: io

func BenchmarkIO_Colorize(b *testing.B) {
	m := argio.New().ForceColor()
	s := "hello world"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Colorize(s, color.FgRed)
	}
}

func BenchmarkLogger_Error(b *testing.B) {
	buf := &bytes.Buffer{}
	log := argio.NewLogger(argio.New().WithErr(buf).NoColor())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Error("Unknown option: near the arg '%s'.", "--bad")
		buf.Reset()
	}
}
