package maths

import "fmt"

// denseMatrix 稠密矩阵实现（基于dataManager，行优先全量存储所有元素）
type denseMatrix[T Number] struct {
	data *dataManager[T]
	rows int
	cols int
}

// NewDenseMatrix 创建指定维度的空稠密矩阵
func NewDenseMatrix[T Number](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &denseMatrix[T]{
		data: newDataManager[T](rows * cols),
		rows: rows,
		cols: cols,
	}
}

// NewDenseMatrixWithData 从现有的行优先切片创建稠密矩阵（不复制数据）
func NewDenseMatrixWithData[T Number](rows, cols int, data []T) Matrix[T] {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("dense matrix data length mismatch: expected %d, got %d", rows*cols, len(data)))
	}
	return &denseMatrix[T]{
		data: newDataManagerWithData(data),
		rows: rows,
		cols: cols,
	}
}

// checkBounds 检查给定的行和列索引是否在矩阵的边界内。
func (m *denseMatrix[T]) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
}

// Base 获取底层
func (m *denseMatrix[T]) Base() Matrix[T] {
	return m
}

// Rows 返回矩阵行数
func (m *denseMatrix[T]) Rows() int {
	return m.rows
}

// Cols 返回矩阵列数
func (m *denseMatrix[T]) Cols() int {
	return m.cols
}

// String 格式化输出矩阵
func (m *denseMatrix[T]) String() string {
	result := ""
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result += fmt.Sprintf("%8.4v ", m.Get(i, j))
		}
		result += "\n"
	}
	return result
}

// IsSquare 判断是否为方阵
func (m *denseMatrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// Get 获取指定行列元素值（越界panic）
func (m *denseMatrix[T]) Get(row, col int) T {
	m.checkBounds(row, col)
	return m.data.Get(row*m.cols + col)
}

// Set 设置指定行列元素值（越界panic）
func (m *denseMatrix[T]) Set(row, col int, value T) {
	m.checkBounds(row, col)
	m.data.Set(row*m.cols+col, value)
}

// Increment 增量更新矩阵元素（value累加，越界panic）
func (m *denseMatrix[T]) Increment(row, col int, value T) {
	m.checkBounds(row, col)
	m.data.Increment(row*m.cols+col, value)
}

// ToDense 转换为稠密向量（行优先展开）
func (m *denseMatrix[T]) ToDense() Vector[T] {
	return NewDenseVectorWithData(m.data.DataCopy())
}

// BuildFromDense 从稠密矩阵构建（覆盖原有数据）
func (m *denseMatrix[T]) BuildFromDense(dense [][]T) {
	if len(dense) != m.rows || (len(dense) > 0 && len(dense[0]) != m.cols) {
		panic(fmt.Sprintf("dense matrix dimension mismatch: expected %dx%d, got %dx%d", m.rows, m.cols, len(dense), len(dense[0])))
	}
	for i := range dense {
		for j := range dense[i] {
			m.data.Set(i*m.cols+j, dense[i][j])
		}
	}
}

// Zero 清空矩阵为零矩阵
func (m *denseMatrix[T]) Zero() {
	m.data.Zero()
}

// Copy 复制自身数据到目标矩阵（支持稠密/视图等类型）
func (m *denseMatrix[T]) Copy(a Matrix[T]) {
	switch target := a.(type) {
	case *denseMatrix[T]:
		// 同类型直接复制（高效）
		if target.rows != m.rows || target.cols != m.cols {
			panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, target.rows, target.cols))
		}
		m.data.Copy(target.data)
	default:
		// 异类型逐个元素复制
		if a.Rows() != m.rows || a.Cols() != m.cols {
			panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, a.Rows(), a.Cols()))
		}
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				a.Set(i, j, m.Get(i, j))
			}
		}
	}
}

// Clone 分配同型新矩阵并复制内容
func (m *denseMatrix[T]) Clone() Matrix[T] {
	return &denseMatrix[T]{
		data: newDataManagerWithData(m.data.DataCopy()),
		rows: m.rows,
		cols: m.cols,
	}
}

// Similar 分配同型空矩阵（不复制内容）
func (m *denseMatrix[T]) Similar() Matrix[T] {
	return NewDenseMatrix[T](m.rows, m.cols)
}

// SwapRows 交换两行
func (m *denseMatrix[T]) SwapRows(row1, row2 int) {
	m.checkBounds(row1, 0)
	m.checkBounds(row2, 0)
	if row1 == row2 {
		return
	}
	data := m.data.DataPtr()
	r1 := row1 * m.cols
	r2 := row2 * m.cols
	for j := 0; j < m.cols; j++ {
		data[r1+j], data[r2+j] = data[r2+j], data[r1+j]
	}
}

// MatrixVectorMultiply 矩阵向量乘法（A*x，返回新向量）
func (m *denseMatrix[T]) MatrixVectorMultiply(x Vector[T]) Vector[T] {
	if x.Length() != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", x.Length(), m.cols))
	}
	result := NewDenseVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		var sum T
		for j := 0; j < m.cols; j++ {
			sum += m.Get(i, j) * x.Get(j)
		}
		result.Set(i, sum)
	}
	return result
}

// NonZeroCount 统计非零元素数量
func (m *denseMatrix[T]) NonZeroCount() int {
	return m.data.NonZeroCount()
}
