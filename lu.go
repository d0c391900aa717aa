package blockdiag

import (
	"fmt"

	"blockdiag/maths"
	"blockdiag/parallel"
)

// Decomposition 分块对角矩阵的LU分解结果：每个块一个独立的分解句柄，
// 携带与来源矩阵相同的块维度和执行策略。
type Decomposition[T maths.Number] struct {
	facts []maths.LU[T]
	n     int
	alg   parallel.Algorithm
}

// Factorize 逐块执行LU分解（不修改来源块），逐块工作由执行策略分发。
// 奇异块不会中断分解：通过 Success 聚合上报，其余块的分解结果仍然
// 各自有效可用。
func (bd *BlockDiagonal[T]) Factorize() *Decomposition[T] {
	return bd.factorize(false)
}

// FactorizeInPlace 逐块原地执行LU分解：每个来源块的存储被其自身的
// 分解因子覆盖，句柄此后引用来源块。
func (bd *BlockDiagonal[T]) FactorizeInPlace() *Decomposition[T] {
	return bd.factorize(true)
}

func (bd *BlockDiagonal[T]) factorize(inPlace bool) *Decomposition[T] {
	k := len(bd.blocks)
	// 先用占位句柄填充输出容器以确定元素类型，再由执行策略写入真实分解
	facts := make([]maths.LU[T], k)
	for i, b := range bd.blocks {
		facts[i] = maths.NewLUInstance(b)
	}
	bd.alg.Run(k, func(i int) {
		var err error
		if inPlace {
			err = facts[i].DecomposeInPlace(bd.blocks[i])
		} else {
			err = facts[i].Decompose(bd.blocks[i])
		}
		if err != nil {
			// 块在构造时已通过形状校验，此处失败意味着内部不一致
			panic(fmt.Sprintf("blockdiag factorize: block %d: %v", i, err))
		}
	})
	return &Decomposition[T]{facts: facts, n: bd.n, alg: bd.alg}
}

// NumBlocks 返回对角块数量
func (d *Decomposition[T]) NumBlocks() int {
	return len(d.facts)
}

// BlockSize 返回公共块维度
func (d *Decomposition[T]) BlockSize() int {
	return d.n
}

// Rows 返回整体矩阵行数
func (d *Decomposition[T]) Rows() int {
	return len(d.facts) * d.n
}

// Cols 返回整体矩阵列数
func (d *Decomposition[T]) Cols() int {
	return len(d.facts) * d.n
}

// Success 当且仅当所有块的分解均成功时返回 true。
// 按块顺序检查，遇到首个失败块立即返回 false。
func (d *Decomposition[T]) Success() bool {
	for _, f := range d.facts {
		if !f.Success() {
			return false
		}
	}
	return true
}

// SolveTo 原地求解 AX=B：结果写入 x。
// 前置条件：x 与 b 形状一致，且行数等于矩阵行数；违反时返回错误、
// 不做任何逐块工作。每个块只访问自己对应的行切片视图，切片互不
// 重叠，因此逐块求解可以安全并行、无需加锁。
func (d *Decomposition[T]) SolveTo(x, b maths.Matrix[T]) error {
	if x.Rows() != b.Rows() || x.Cols() != b.Cols() {
		return fmt.Errorf("blockdiag solve: destination %dx%d does not match right-hand side %dx%d",
			x.Rows(), x.Cols(), b.Rows(), b.Cols())
	}
	if b.Rows() != d.Rows() {
		return fmt.Errorf("blockdiag solve: matrix has %d rows, right-hand side has %d", d.Rows(), b.Rows())
	}
	k := len(d.facts)
	errs := make([]error, k)
	d.alg.Run(k, func(i int) {
		bi := maths.NewSubMatrix(b, i*d.n, 0, d.n, b.Cols())
		xi := maths.NewSubMatrix(x, i*d.n, 0, d.n, x.Cols())
		errs[i] = d.facts[i].SolveMatrixReuse(bi, xi)
	})
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("blockdiag solve: block %d: %w", i, err)
		}
	}
	return nil
}

// Solve 求解 Ax=b 并返回新分配的解向量。
// 每个块独立求解自己的子问题（块对应的 b 片段），结果片段按块顺序
// 拼接为完整的解。
func (d *Decomposition[T]) Solve(b maths.Vector[T]) (maths.Vector[T], error) {
	if b.Length() != d.Rows() {
		return nil, fmt.Errorf("blockdiag solve: matrix has %d rows, right-hand side has length %d", d.Rows(), b.Length())
	}
	k := len(d.facts)
	frags := make([]maths.Vector[T], k)
	errs := make([]error, k)
	d.alg.Run(k, func(i int) {
		bi := maths.NewDenseVector[T](d.n)
		for r := 0; r < d.n; r++ {
			bi.Set(r, b.Get(i*d.n+r))
		}
		xi := maths.NewDenseVector[T](d.n)
		if err := d.facts[i].SolveReuse(bi, xi); err != nil {
			errs[i] = err
			return
		}
		frags[i] = xi
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("blockdiag solve: block %d: %w", i, err)
		}
	}

	x := maths.NewDenseVector[T](d.Rows())
	for i, frag := range frags {
		for r := 0; r < d.n; r++ {
			x.Set(i*d.n+r, frag.Get(r))
		}
	}
	return x, nil
}
