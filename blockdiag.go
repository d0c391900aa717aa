// Package blockdiag 实现方形分块对角矩阵：由一组同维方阵块沿对角线
// 组成的方阵，非对角区域不存储、恒为零。LU分解、求解等逐块独立的
// 操作通过注入的执行策略（parallel.Algorithm）分发，可以并行执行。
package blockdiag

import (
	"errors"
	"fmt"

	"blockdiag/maths"
	"blockdiag/parallel"
)

// BlockDiagonal 分块对角矩阵。
// 由 k 个 n×n 的对角块组成，整体为 (k*n)×(k*n) 方阵。
// 执行策略在构造后不可变，并被所有派生对象（分解结果、逐块变换的
// 结果）继承。
type BlockDiagonal[T maths.Number] struct {
	blocks []maths.Matrix[T] // 对角块序列（按块顺序）
	n      int               // 公共块维度
	alg    parallel.Algorithm
}

// New 由块序列构造分块对角矩阵。alg 为 nil 时使用 parallel.Default。
// 构造时立即校验：块序列非空、每个块为方阵、所有块同维；
// 校验失败返回错误。块内容不复制，直接引用调用方的矩阵。
func New[T maths.Number](blocks []maths.Matrix[T], alg parallel.Algorithm) (*BlockDiagonal[T], error) {
	if len(blocks) == 0 {
		return nil, errors.New("blockdiag new: block list must not be empty")
	}
	n := blocks[0].Rows()
	for i, b := range blocks {
		if !b.IsSquare() {
			return nil, fmt.Errorf("blockdiag new: block %d is not square (%dx%d)", i, b.Rows(), b.Cols())
		}
		if b.Rows() != n {
			return nil, fmt.Errorf("blockdiag new: block %d dimension mismatch (expected %dx%d, got %dx%d)", i, n, n, b.Rows(), b.Cols())
		}
	}
	if alg == nil {
		alg = parallel.Default
	}
	return &BlockDiagonal[T]{blocks: blocks, n: n, alg: alg}, nil
}

// NumBlocks 返回对角块数量
func (bd *BlockDiagonal[T]) NumBlocks() int {
	return len(bd.blocks)
}

// BlockSize 返回公共块维度
func (bd *BlockDiagonal[T]) BlockSize() int {
	return bd.n
}

// Block 返回第 i 个对角块（直接引用，修改会反映到矩阵中）
func (bd *BlockDiagonal[T]) Block(i int) maths.Matrix[T] {
	return bd.blocks[i]
}

// Rows 返回整体矩阵行数
func (bd *BlockDiagonal[T]) Rows() int {
	return len(bd.blocks) * bd.n
}

// Cols 返回整体矩阵列数
func (bd *BlockDiagonal[T]) Cols() int {
	return len(bd.blocks) * bd.n
}

// Dims 返回整体矩阵维度
func (bd *BlockDiagonal[T]) Dims() (int, int) {
	return bd.Rows(), bd.Cols()
}

// IsSquare 分块对角矩阵恒为方阵
func (bd *BlockDiagonal[T]) IsSquare() bool {
	return true
}

// checkBounds 检查整体坐标是否在矩阵边界内
func (bd *BlockDiagonal[T]) checkBounds(row, col int) {
	size := bd.Rows()
	if row < 0 || row >= size || col < 0 || col >= size {
		panic(fmt.Sprintf("blockdiag index out of range: (%d, %d) with size %dx%d", row, col, size, size))
	}
}

// Get 获取整体坐标 (row, col) 处的元素值。
// 两个坐标落在不同块时该位置没有存储，返回元素类型的加法单位元（零）。
func (bd *BlockDiagonal[T]) Get(row, col int) T {
	bd.checkBounds(row, col)
	bi, bj := row/bd.n, col/bd.n
	if bi != bj {
		var zero T
		return zero
	}
	return bd.blocks[bi].Get(row%bd.n, col%bd.n)
}

// Set 设置整体坐标 (row, col) 处的元素值。
// 跨块位置没有存储：向其写入零值是约定的空操作（调用成功返回、
// 不修改任何状态），写入非零值 panic。块内位置委托给对应块的索引。
func (bd *BlockDiagonal[T]) Set(row, col int, value T) {
	bd.checkBounds(row, col)
	bi, bj := row/bd.n, col/bd.n
	if bi != bj {
		var zero T
		if value != zero {
			panic(fmt.Sprintf("blockdiag set: position (%d, %d) is outside the diagonal blocks and must stay zero", row, col))
		}
		return
	}
	bd.blocks[bi].Set(row%bd.n, col%bd.n, value)
}

// ToDense 物化为新分配的稠密矩阵：先零初始化，再把每个块复制到
// 其对应的对角区域。
func (bd *BlockDiagonal[T]) ToDense() maths.Matrix[T] {
	size := bd.Rows()
	dense := maths.NewDenseMatrix[T](size, size)
	for i, b := range bd.blocks {
		b.Copy(maths.NewSubMatrix(dense, i*bd.n, i*bd.n, bd.n, bd.n))
	}
	return dense
}

// String 格式化字符串输出
func (bd *BlockDiagonal[T]) String() string {
	return bd.ToDense().String()
}

// mapBlocks 把一元块操作经执行策略施加到每个块上，
// 并以相同的块维度和执行策略重组为新的分块对角矩阵。
func (bd *BlockDiagonal[T]) mapBlocks(op func(maths.Matrix[T]) maths.Matrix[T]) *BlockDiagonal[T] {
	out := parallel.Map(bd.alg, len(bd.blocks), func(i int) maths.Matrix[T] {
		return op(bd.blocks[i])
	})
	return &BlockDiagonal[T]{blocks: out, n: bd.n, alg: bd.alg}
}

// Copy 返回逐块复制的新矩阵：每个块的内容复制到独立的新存储。
func (bd *BlockDiagonal[T]) Copy() *BlockDiagonal[T] {
	return bd.mapBlocks(func(b maths.Matrix[T]) maths.Matrix[T] {
		return b.Clone()
	})
}

// DeepCopy 返回深复制的新矩阵。块为值存储的稠密矩阵时与 Copy 等价；
// 块为视图时二者同样会物化为独立存储。
func (bd *BlockDiagonal[T]) DeepCopy() *BlockDiagonal[T] {
	return bd.mapBlocks(func(b maths.Matrix[T]) maths.Matrix[T] {
		return b.Clone()
	})
}

// Similar 返回形状相同但内容未初始化（零值）的新矩阵。
func (bd *BlockDiagonal[T]) Similar() *BlockDiagonal[T] {
	return bd.mapBlocks(func(b maths.Matrix[T]) maths.Matrix[T] {
		return b.Similar()
	})
}

// Inverse 返回逐块求逆的新矩阵。任一块奇异时返回错误。
func (bd *BlockDiagonal[T]) Inverse() (*BlockDiagonal[T], error) {
	k := len(bd.blocks)
	out := make([]maths.Matrix[T], k)
	errs := make([]error, k)
	bd.alg.Run(k, func(i int) {
		out[i], errs[i] = maths.Inverse(bd.blocks[i])
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("blockdiag inverse: block %d: %w", i, err)
		}
	}
	return &BlockDiagonal[T]{blocks: out, n: bd.n, alg: bd.alg}, nil
}

// CopyTo 将自身内容复制到形状匹配的目标矩阵（块数量与块维度一致）。
// 形状不匹配时返回错误且目标保持不变。该操作刻意保持串行。
func (bd *BlockDiagonal[T]) CopyTo(dst *BlockDiagonal[T]) error {
	if dst.NumBlocks() != bd.NumBlocks() || dst.n != bd.n {
		return fmt.Errorf("blockdiag copyto: shape mismatch (source %d blocks of %d, target %d blocks of %d)",
			bd.NumBlocks(), bd.n, dst.NumBlocks(), dst.n)
	}
	for i, b := range bd.blocks {
		b.Copy(dst.blocks[i])
	}
	return nil
}

// AddScaledIdentity 返回 B + c*I 的新矩阵：均匀缩放限制在每个对角块上
// 仍是同维的均匀缩放，所以逐块加 c*I 即可。
func (bd *BlockDiagonal[T]) AddScaledIdentity(c T) *BlockDiagonal[T] {
	return bd.mapBlocks(func(b maths.Matrix[T]) maths.Matrix[T] {
		return maths.AddScaledIdentity(b, c)
	})
}
