package maths

import "fmt"

// dataManager 一维数据管理器（底层存储核心）
type dataManager[T Number] struct {
	data []T
}

// newDataManager 创建一个指定长度的新的数据管理器。
func newDataManager[T Number](length int) *dataManager[T] {
	return &dataManager[T]{
		data: make([]T, length),
	}
}

// newDataManagerWithData 使用给定的数据切片创建一个新的数据管理器。
// 注意：不复制数据，直接引用传入切片。
func newDataManagerWithData[T Number](data []T) *dataManager[T] {
	return &dataManager[T]{
		data: data,
	}
}

// Length 返回数据的长度。
func (dm *dataManager[T]) Length() int {
	return len(dm.data)
}

// String 返回数据的字符串表示形式。
func (dm *dataManager[T]) String() string {
	return fmt.Sprintf("%v", dm.data)
}

// Get 返回指定索引处的值。
func (dm *dataManager[T]) Get(index int) T {
	return dm.data[index]
}

// Set 设置指定索引处的值。
func (dm *dataManager[T]) Set(index int, value T) {
	dm.data[index] = value
}

// Increment 增加指定索引处的值。
func (dm *dataManager[T]) Increment(index int, value T) {
	dm.data[index] += value
}

// DataCopy 返回数据切片的副本。
func (dm *dataManager[T]) DataCopy() []T {
	cpy := make([]T, len(dm.data))
	copy(cpy, dm.data)
	return cpy
}

// DataPtr 返回指向数据切片的引用。
// 注意：直接修改返回的切片会影响原始数据。
func (dm *dataManager[T]) DataPtr() []T {
	return dm.data
}

// Zero 将所有元素设置为零。
func (dm *dataManager[T]) Zero() {
	var zero T
	for i := range dm.data {
		dm.data[i] = zero
	}
}

// NonZeroCount 计算非零元素的数量。
func (dm *dataManager[T]) NonZeroCount() int {
	count := 0
	var zero T
	for _, v := range dm.data {
		if v != zero {
			count++
		}
	}
	return count
}

// Copy 将数据复制到另一个数据管理器。
func (dm *dataManager[T]) Copy(target *dataManager[T]) {
	if dm.Length() != target.Length() {
		panic("dataManager.Copy: length mismatch")
	}
	copy(target.data, dm.data)
}
