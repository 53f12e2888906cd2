//nolint:testpackage // using package name 'benchmark' to reach internal packages
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-argparse/internal/arena"
	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// Category: arena

func BenchmarkArena_Intern(b *testing.B) {
	a := arena.New(0x1000)
	testStrings := []string{"-h", "--help", "int_param", "Show help message.", "--version"}
	m := a.Mark()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.Intern(testStrings[i%len(testStrings)]); err != nil {
			a.Rollback(m)
		}
	}
}

func BenchmarkArena_String(b *testing.B) {
	a := arena.New(0x1000)
	ref, _ := a.Intern("--intparam")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.String(ref)
	}
}

// Category: fuzzy

var knownOptions = []string{
	"-h", "--help", "-v", "--version", "--verbose", "--config", "--output",
	"--input", "--force", "--debug", "--port", "--host", "--timeout", "--retry",
}

func BenchmarkMatcher_Best(b *testing.B) {
	matcher := fuzzy.NewMatcher(fuzzy.DefaultMaxDistance)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Best("--hep", knownOptions)
	}
}

func BenchmarkMatcher_Rank(b *testing.B) {
	matcher := fuzzy.NewMatcher(fuzzy.DefaultMaxDistance)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.Rank("--ver", knownOptions)
	}
}

func BenchmarkSuggestOption(b *testing.B) {
	b.Run("Hit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.SuggestOption("--outptu", knownOptions)
		}
	})
	b.Run("Miss", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.SuggestOption("--zzzzzzzz", knownOptions)
		}
	})
}

// Category: pool

func BenchmarkBufferPool_GetPut(b *testing.B) {
	bp := pool.NewBufferPool(256)
	line := []byte("    -i [int] / --intparam [int] : int_param\n")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf := bp.Get()
			buf.Write(line)
			bp.Put(buf)
		}
	})
}

func BenchmarkBufferPool_vs_Direct(b *testing.B) {
	line := []byte("Unknown option: near the arg '--intparm'.")

	b.Run("Pool", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf := pool.GetBuffer()
				buf.Write(line)
				pool.PutBuffer(buf)
			}
		})
	})

	b.Run("Direct", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf := make([]byte, 0, 1024)
				buf = append(buf, line...)
				_ = buf
			}
		})
	})
}
