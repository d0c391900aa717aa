package maths

import (
	"errors"
	"fmt"
)

// AddScaledIdentity 返回 m + c*I（不修改输入矩阵）。
// 输入必须为方阵。
func AddScaledIdentity[T Number](m Matrix[T], c T) Matrix[T] {
	if !m.IsSquare() {
		panic(fmt.Sprintf("add scaled identity: matrix must be square, got %dx%d", m.Rows(), m.Cols()))
	}
	out := m.Clone()
	for i := 0; i < out.Rows(); i++ {
		out.Increment(i, i, c)
	}
	return out
}

// Identity 创建 n 维单位矩阵
func Identity[T Number](n int) Matrix[T] {
	out := NewDenseMatrix[T](n, n)
	for i := 0; i < n; i++ {
		out.Set(i, i, T(1))
	}
	return out
}

// Inverse 基于LU分解计算稠密方阵的逆矩阵（不修改输入矩阵）。
// 矩阵奇异时返回错误。
func Inverse[T Number](m Matrix[T]) (Matrix[T], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("inverse: matrix must be square, got %dx%d", m.Rows(), m.Cols())
	}
	n := m.Rows()
	lu, err := NewLU[T](n)
	if err != nil {
		return nil, err
	}
	if err := lu.Decompose(m); err != nil {
		return nil, err
	}
	if !lu.Success() {
		return nil, errors.New("inverse: matrix is singular or nearly singular")
	}
	out := NewDenseMatrix[T](n, n)
	if err := lu.SolveMatrixReuse(Identity[T](n), out); err != nil {
		return nil, err
	}
	return out, nil
}
