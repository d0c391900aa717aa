// Package debug 记录分块对角矩阵分解与求解过程的统计信息，
// 并以 JSON 或网页图表的形式输出。
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"blockdiag"
	"blockdiag/maths"
)

// Record 记录历史状态
type Record struct {
	Blocks   int         // 块数量
	Dim      int         // 块维度
	Labels   []string    // 块标签
	Density  []float64   // 每块非零元素占比
	Residual [][]float64 // 每次求解的逐块残差（∞范数）
	Elapsed  []float64   // 每次求解耗时（毫秒）
	Success  []bool      // 每次分解是否成功
	Policy   []string    // 每次求解使用的执行策略名称
}

// NewRecord 由分块对角矩阵初始化记录
func NewRecord[T maths.Number](bd *blockdiag.BlockDiagonal[T]) *Record {
	k, n := bd.NumBlocks(), bd.BlockSize()
	rec := &Record{Blocks: k, Dim: n}
	for i := 0; i < k; i++ {
		rec.Labels = append(rec.Labels, fmt.Sprintf("块(%d)", i+1))
		rec.Density = append(rec.Density, float64(bd.Block(i).NonZeroCount())/float64(n*n))
	}
	return rec
}

// ObserveSolve 记录一次求解：按块计算残差 r_i = A_i*x_i - b_i 的∞范数。
func ObserveSolve[T maths.Number](rec *Record, bd *blockdiag.BlockDiagonal[T], x, b maths.Vector[T], elapsedMs float64, success bool, policy string) {
	k, n := bd.NumBlocks(), bd.BlockSize()
	residual := make([]float64, k)
	for i := 0; i < k; i++ {
		xi := maths.NewDenseVector[T](n)
		bi := maths.NewDenseVector[T](n)
		for r := 0; r < n; r++ {
			xi.Set(r, x.Get(i*n+r))
			bi.Set(r, b.Get(i*n+r))
		}
		res := bd.Block(i).MatrixVectorMultiply(xi)
		res.Scale(T(-1))
		res.Add(bi)
		residual[i] = res.MaxAbs()
	}
	rec.Residual = append(rec.Residual, residual)
	rec.Elapsed = append(rec.Elapsed, elapsedMs)
	rec.Success = append(rec.Success, success)
	rec.Policy = append(rec.Policy, policy)
}

// Render 格式和输出内容
func (rec *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(rec) }

func (rec *Record) Error(err error) { log.Println(err) }
