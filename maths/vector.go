package maths

import "fmt"

// denseVector 稠密向量实现
// 基于 dataManager 实现 Vector 接口
type denseVector[T Number] struct {
	*dataManager[T]
}

// NewDenseVector 创建新的稠密向量
func NewDenseVector[T Number](length int) Vector[T] {
	return &denseVector[T]{
		dataManager: newDataManager[T](length),
	}
}

// NewDenseVectorWithData 从现有数据创建稠密向量（不复制数据）
func NewDenseVectorWithData[T Number](data []T) Vector[T] {
	return &denseVector[T]{
		dataManager: newDataManagerWithData(data),
	}
}

// Base 获取底层
func (v *denseVector[T]) Base() Vector[T] {
	return v
}

// BuildFromDense 从稠密切片构建向量
func (v *denseVector[T]) BuildFromDense(dense []T) {
	if len(dense) != v.Length() {
		panic(fmt.Sprintf("vector dimension mismatch: expected %d, got %d", v.Length(), len(dense)))
	}
	copy(v.dataManager.DataPtr(), dense)
}

// Copy 将自身值复制到 a 向量
func (v *denseVector[T]) Copy(a Vector[T]) {
	if a.Length() != v.Length() {
		panic(fmt.Sprintf("vector dimension mismatch: source %d, target %d", v.Length(), a.Length()))
	}
	switch target := a.(type) {
	case *denseVector[T]:
		// 直接复制数据管理器
		v.dataManager.Copy(target.dataManager)
	default:
		// 对于其他类型的向量实现，逐个元素复制
		for i := 0; i < v.Length(); i++ {
			a.Set(i, v.Get(i))
		}
	}
}

// ToDense 转换为稠密切片（返回副本）
func (v *denseVector[T]) ToDense() []T {
	return v.dataManager.DataCopy()
}

// DotProduct 计算与另一个向量的点积
func (v *denseVector[T]) DotProduct(other Vector[T]) T {
	if other.Length() != v.Length() {
		panic("vector dimension mismatch")
	}
	var result T
	for i := 0; i < v.Length(); i++ {
		result += v.Get(i) * other.Get(i)
	}
	return result
}

// Scale 向量缩放
func (v *denseVector[T]) Scale(scalar T) {
	data := v.dataManager.DataPtr()
	for i := range data {
		data[i] *= scalar
	}
}

// Add 向量加法
func (v *denseVector[T]) Add(other Vector[T]) {
	if other.Length() != v.Length() {
		panic("vector dimension mismatch")
	}
	for i := 0; i < v.Length(); i++ {
		v.Increment(i, other.Get(i))
	}
}

// MaxAbs 获取向量中元素模的最大值
func (v *denseVector[T]) MaxAbs() float64 {
	max := 0.0
	for _, val := range v.dataManager.DataPtr() {
		if a := Abs(val); a > max {
			max = a
		}
	}
	return max
}
