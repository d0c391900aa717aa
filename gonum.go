package blockdiag

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"blockdiag/maths"
	"blockdiag/parallel"
)

// gonumAdapter 让 float64 分块对角矩阵满足 gonum 的 mat.Matrix 接口，
// 以便直接参与 gonum 的矩阵运算（零拷贝只读视图）。
type gonumAdapter struct {
	bd *BlockDiagonal[float64]
}

// AsGonum 返回 bd 的 gonum mat.Matrix 视图。
func AsGonum(bd *BlockDiagonal[float64]) mat.Matrix {
	return gonumAdapter{bd: bd}
}

func (a gonumAdapter) Dims() (int, int) {
	return a.bd.Dims()
}

func (a gonumAdapter) At(i, j int) float64 {
	return a.bd.Get(i, j)
}

func (a gonumAdapter) T() mat.Matrix {
	return mat.Transpose{Matrix: a}
}

// ToGonum 物化为 gonum 稠密矩阵（非对角区域填零）。
func ToGonum(bd *BlockDiagonal[float64]) *mat.Dense {
	rows, cols := bd.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i, b := range bd.blocks {
		for r := 0; r < bd.n; r++ {
			for c := 0; c < bd.n; c++ {
				out.Set(i*bd.n+r, i*bd.n+c, b.Get(r, c))
			}
		}
	}
	return out
}

// FromGonum 把方阵沿对角线切分为 nblocks 个同维方块，构造分块对角
// 矩阵。对角块以外的值被丢弃。行数必须能被 nblocks 整除。
func FromGonum(src mat.Matrix, nblocks int, alg parallel.Algorithm) (*BlockDiagonal[float64], error) {
	rows, cols := src.Dims()
	if rows != cols {
		return nil, fmt.Errorf("blockdiag fromgonum: matrix must be square, got %dx%d", rows, cols)
	}
	if nblocks < 1 || rows%nblocks != 0 {
		return nil, fmt.Errorf("blockdiag fromgonum: %d rows cannot be split into %d equal square blocks", rows, nblocks)
	}
	n := rows / nblocks
	blocks := make([]maths.Matrix[float64], nblocks)
	for i := range blocks {
		blk := maths.NewDenseMatrix[float64](n, n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				blk.Set(r, c, src.At(i*n+r, i*n+c))
			}
		}
		blocks[i] = blk
	}
	return New(blocks, alg)
}
