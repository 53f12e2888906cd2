package benchmark_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/dzonerzy/go-argparse/argparse"
)

// Category: parser

func BenchmarkParser_New(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := argparse.New("bench", "bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParser_Register(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p, _ := argparse.New("bench", "bench")
		var port int
		var verbose bool
		var name string
		_ = p.AddInt(&port, 8080, "-p", "--port", "port", "Server port")
		_ = p.AddFlag(&verbose, "-V", "--verbose", "verbose", "Verbose output")
		_ = p.AddString(&name, "bench", 32, "-n", "--name", "name", "Instance name")
	}
}

func BenchmarkParser_FullRegistry(b *testing.B) {
	p, _ := argparse.New("bench", "bench")
	vals := make([]int, 30)
	for i := range vals {
		_ = p.AddInt(&vals[i], i, fmt.Sprintf("-o%d", i), fmt.Sprintf("--opt%d", i), fmt.Sprintf("opt%d", i), "")
	}
	// the last option forces a scan over the whole registry
	args := []string{"bench", "--opt29", "1"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParser_Positionals(b *testing.B) {
	p, _ := argparse.New("bench", "bench")
	vals := make([]uint64, 8)
	args := []string{"bench"}
	for i := range vals {
		_ = p.AddUint64(&vals[i], 0, "", "", fmt.Sprintf("pos%d", i), "")
		args = append(args, fmt.Sprintf("0x%x", i+1))
	}
	p.RequireFullPositionalParams()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Parse(args); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParser_Help(b *testing.B) {
	p, _ := argparse.New("bench", "bench")
	var port int
	var host string
	_ = p.AddInt(&port, 8080, "-p", "--port", "port", "Server port")
	_ = p.AddString(&host, "localhost", 64, "", "--host", "host", "Server host\nname or address")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.PrintHelp(io.Discard)
	}
}
