// Package parallel 提供可注入的映射执行策略：把以索引为参数的
// 工作单元施加到 [0, n) 的每个索引上，串行或并行执行。
package parallel

import (
	"runtime"
	"sync"
)

// Algorithm 映射执行策略。
// Run 是同步的：所有工作单元完成后才返回；每个索引恰好被执行一次，
// 但执行顺序不做保证。结果的有序性由调用方保证：各工作单元只写入
// 各自索引对应的互不重叠位置（见 Map）。
type Algorithm interface {
	Run(n int, fn func(i int))
}

// Default 缺省执行策略（并行）。
var Default Algorithm = Workers{}

// Sequential 串行执行策略：在调用方的 goroutine 上按索引顺序执行。
type Sequential struct{}

func (Sequential) Run(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// minParallel 当索引数量小于此值时退化为串行执行
const minParallel = 4

// Workers 并行执行策略：共享索引队列 + 固定数量的工作协程。
type Workers struct {
	Limit int // 最大工作协程数量；0 表示 GOMAXPROCS
}

func (w Workers) Run(n int, fn func(i int)) {
	if n < minParallel {
		Sequential{}.Run(n, fn)
		return
	}

	workers := w.Limit
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	// 索引队列：工作协程竞争消费
	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for g := 0; g < workers; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// Map 通过执行策略对每个索引求值，并按索引顺序返回结果序列。
// 每个工作单元只写入结果切片中自己的位置，因此并发执行无需加锁。
func Map[V any](alg Algorithm, n int, fn func(i int) V) []V {
	out := make([]V, n)
	alg.Run(n, func(i int) {
		out[i] = fn(i)
	})
	return out
}
