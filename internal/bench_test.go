package internal

import (
	"fmt"
	"testing"
)

// The gap between these is the point of the naive engine.

func BenchmarkBowyerWatson(b *testing.B) {
	for _, n := range []int{10, 30, 100, 300} {
		points := RandomPoints(1, n, 1000)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := triangulateBowyerWatson(points); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNaive(b *testing.B) {
	for _, n := range []int{10, 30} {
		points := RandomPoints(1, n, 1000)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				triangulateNaive(points)
			}
		})
	}
}
