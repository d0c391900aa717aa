package maths

import (
	"errors"
	"fmt"
)

// luDense 稠密矩阵LU分解实现（PA=LU，部分主元，L/U合并存储）
// 严格下三角部分存储消元因子（L的对角线恒为1，不存储），
// 上三角部分（含对角线）存储U。合并存储使得原地分解变体
// 可以直接覆盖调用方矩阵的存储。
type luDense[T Number] struct {
	n  int       // 矩阵维度（方阵n×n）
	lu Matrix[T] // L和U合并存储的矩阵
	p  []int     // 置换向量：p[i] = 分解后第i行对应的原始矩阵行索引
	y  Vector[T] // 中间向量：存储前向替换结果Ly=Pb

	// info 分解状态：-1=尚未分解；0=分解成功；k=第k列（1起）遇到零主元
	info int
}

// NewLU 创建稠密矩阵LU分解器（输入矩阵维度n）
func NewLU[T Number](n int) (LU[T], error) {
	if n < 1 {
		return nil, errors.New("lu dimension must be positive")
	}
	return &luDense[T]{
		n:    n,
		p:    make([]int, n),
		y:    NewDenseVector[T](n),
		info: -1,
	}, nil
}

// NewLUInstance 占位探针：返回与输入矩阵结构匹配、但从未执行过分解的句柄。
// 仅用于确定输出容器的元素类型和预置形状信息，不是有效的分解结果：
// Success 返回 false，求解会返回错误。
func NewLUInstance[T Number](matrix Matrix[T]) LU[T] {
	return &luDense[T]{
		n:    matrix.Rows(),
		info: -1,
	}
}

// prepare 补齐占位句柄缺失的工作存储
func (lu *luDense[T]) prepare() {
	if lu.p == nil {
		lu.p = make([]int, lu.n)
	}
	if lu.y == nil {
		lu.y = NewDenseVector[T](lu.n)
	}
}

// Dim 获取矩阵维度
func (lu *luDense[T]) Dim() int {
	return lu.n
}

// Success 分解是否完全成功（所有主元非零）。
// 占位句柄以及含零主元的分解均返回 false。
func (lu *luDense[T]) Success() bool {
	return lu.info == 0
}

// Decompose 拷贝输入矩阵后执行LU分解（不修改输入矩阵）。
func (lu *luDense[T]) Decompose(matrix Matrix[T]) error {
	if !matrix.IsSquare() {
		return fmt.Errorf("lu decompose: input must be square matrix, got %dx%d", matrix.Rows(), matrix.Cols())
	}
	if matrix.Rows() != lu.n {
		return fmt.Errorf("lu decompose: matrix dimension mismatch (expected %d, got %d)", lu.n, matrix.Rows())
	}
	lu.prepare()
	lu.lu = matrix.Clone()
	lu.factor()
	return nil
}

// DecomposeInPlace 直接在输入矩阵的存储上执行LU分解。
// 输入矩阵被合并的L/U因子覆盖，句柄此后引用该矩阵。
func (lu *luDense[T]) DecomposeInPlace(matrix Matrix[T]) error {
	if !matrix.IsSquare() {
		return fmt.Errorf("lu decompose: input must be square matrix, got %dx%d", matrix.Rows(), matrix.Cols())
	}
	if matrix.Rows() != lu.n {
		return fmt.Errorf("lu decompose: matrix dimension mismatch (expected %d, got %d)", lu.n, matrix.Rows())
	}
	lu.prepare()
	lu.lu = matrix
	lu.factor()
	return nil
}

// factor 核心分解逻辑：逐列高斯消元+部分主元选择。
// 零主元不中断分解：记录首个失败列并跳过该列消元，
// 由 Success 统一上报，交给调用方决定是否继续使用。
func (lu *luDense[T]) factor() {
	n := lu.n
	A := lu.lu
	for i := range lu.p {
		lu.p[i] = i
	}
	lu.info = 0

	for k := 0; k < n; k++ {
		// 部分主元选择：在第k列[k, n-1]行中取模最大者
		maxRow := k
		maxAbs := Abs(A.Get(k, k))
		for i := k + 1; i < n; i++ {
			if v := Abs(A.Get(i, k)); v > maxAbs {
				maxAbs = v
				maxRow = i
			}
		}

		// 零主元：记录首个失败列后跳过该列
		if maxAbs < Epsilon {
			if lu.info == 0 {
				lu.info = k + 1
			}
			continue
		}

		// 行交换（合并存储：L因子与U的行一起交换）
		if maxRow != k {
			A.SwapRows(k, maxRow)
			lu.p[k], lu.p[maxRow] = lu.p[maxRow], lu.p[k]
		}

		// 高斯消元：消元因子存入严格下三角
		pivot := A.Get(k, k)
		for i := k + 1; i < n; i++ {
			factor := A.Get(i, k) / pivot
			A.Set(i, k, factor)
			for j := k + 1; j < n; j++ {
				A.Increment(i, j, -factor*A.Get(k, j))
			}
		}
	}
}

// SolveReuse 利用分解结果求解Ax=b（重用预分配向量）。
// 数学步骤：前向替换解Ly=Pb，后向回代解Ux=y。
func (lu *luDense[T]) SolveReuse(b, x Vector[T]) error {
	if lu.lu == nil {
		return errors.New("lu solve: matrix has not been decomposed")
	}
	if b.Length() != lu.n || x.Length() != lu.n {
		return fmt.Errorf("lu solve: vector dimension mismatch (matrix %d, b %d, x %d)", lu.n, b.Length(), x.Length())
	}

	// 前向替换：Ly = Pb（L对角线为1）
	for i := 0; i < lu.n; i++ {
		sum := b.Get(lu.p[i])
		for j := 0; j < i; j++ {
			sum -= lu.lu.Get(i, j) * lu.y.Get(j)
		}
		lu.y.Set(i, sum)
	}

	// 后向回代：Ux = y
	for i := lu.n - 1; i >= 0; i-- {
		sum := lu.y.Get(i)
		for j := i + 1; j < lu.n; j++ {
			sum -= lu.lu.Get(i, j) * x.Get(j)
		}
		diag := lu.lu.Get(i, i)
		if Abs(diag) < Epsilon {
			return fmt.Errorf("lu solve: zero pivot at column %d", i)
		}
		x.Set(i, sum/diag)
	}
	return nil
}

// SolveMatrixReuse 逐列求解AX=B，结果写入x。
// x与B形状必须一致；x可以与B是同一存储（逐列处理，前向替换
// 完成后才写入该列的解）。
func (lu *luDense[T]) SolveMatrixReuse(b, x Matrix[T]) error {
	if lu.lu == nil {
		return errors.New("lu solve: matrix has not been decomposed")
	}
	if b.Rows() != lu.n || x.Rows() != lu.n || x.Cols() != b.Cols() {
		return fmt.Errorf("lu solve: matrix dimension mismatch (matrix %d, b %dx%d, x %dx%d)", lu.n, b.Rows(), b.Cols(), x.Rows(), x.Cols())
	}

	for c := 0; c < b.Cols(); c++ {
		// 前向替换：Ly = Pb[:,c]
		for i := 0; i < lu.n; i++ {
			sum := b.Get(lu.p[i], c)
			for j := 0; j < i; j++ {
				sum -= lu.lu.Get(i, j) * lu.y.Get(j)
			}
			lu.y.Set(i, sum)
		}

		// 后向回代：Ux[:,c] = y
		for i := lu.n - 1; i >= 0; i-- {
			sum := lu.y.Get(i)
			for j := i + 1; j < lu.n; j++ {
				sum -= lu.lu.Get(i, j) * x.Get(j, c)
			}
			diag := lu.lu.Get(i, i)
			if Abs(diag) < Epsilon {
				return fmt.Errorf("lu solve: zero pivot at column %d", i)
			}
			x.Set(i, c, sum/diag)
		}
	}
	return nil
}
