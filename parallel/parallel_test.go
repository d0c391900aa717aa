package parallel

import (
	"sync/atomic"
	"testing"
)

func TestSequentialOrder(t *testing.T) {
	var got []int
	Sequential{}.Run(5, func(i int) {
		got = append(got, i)
	})
	if len(got) != 5 {
		t.Fatalf("executed %d times, want 5", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Errorf("sequential execution out of order: position %d got %d", i, v)
		}
	}
}

func TestWorkersEachIndexOnce(t *testing.T) {
	const n = 100
	counts := make([]int32, n)
	Workers{}.Run(n, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d executed %d times, want exactly once", i, c)
		}
	}
}

func TestWorkersSmallInput(t *testing.T) {
	// 小于并行阈值时退化为串行，仍需覆盖所有索引
	counts := make([]int32, 2)
	Workers{}.Run(2, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d executed %d times, want exactly once", i, c)
		}
	}
}

func TestWorkersLimit(t *testing.T) {
	const n = 50
	counts := make([]int32, n)
	Workers{Limit: 2}.Run(n, func(i int) {
		atomic.AddInt32(&counts[i], 1)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d executed %d times, want exactly once", i, c)
		}
	}
}

func TestWorkersZeroInput(t *testing.T) {
	ran := false
	Workers{}.Run(0, func(i int) { ran = true })
	if ran {
		t.Error("no work units should run for n=0")
	}
}

func TestMapOrdered(t *testing.T) {
	for _, alg := range []Algorithm{Sequential{}, Workers{}} {
		out := Map(alg, 20, func(i int) int {
			return i * i
		})
		if len(out) != 20 {
			t.Fatalf("Map returned %d results, want 20", len(out))
		}
		for i, v := range out {
			if v != i*i {
				t.Errorf("Map result out of order: out[%d] = %d, want %d", i, v, i*i)
			}
		}
	}
}
