package maths

import "testing"

func TestAddScaledIdentity(t *testing.T) {
	m := NewDenseMatrix[float64](2, 2)
	m.BuildFromDense([][]float64{
		{1, 2},
		{3, 4},
	})
	out := AddScaledIdentity(m, 10.0)

	want := NewDenseMatrix[float64](2, 2)
	want.BuildFromDense([][]float64{
		{11, 2},
		{3, 14},
	})
	if !matrixEquals(out, want, 0) {
		t.Errorf("AddScaledIdentity result wrong:\n%v", out)
	}
	// 输入矩阵不应被修改
	if m.Get(0, 0) != 1 {
		t.Error("AddScaledIdentity should not modify the input")
	}

	defer func() {
		if recover() == nil {
			t.Error("non-square input should panic")
		}
	}()
	AddScaledIdentity(NewDenseMatrix[float64](2, 3), 1.0)
}

func TestIdentity(t *testing.T) {
	id := Identity[float64](3)
	if id.NonZeroCount() != 3 {
		t.Errorf("identity should have exactly 3 non-zeros, got %d", id.NonZeroCount())
	}
	for i := 0; i < 3; i++ {
		if id.Get(i, i) != 1 {
			t.Errorf("diagonal entry (%d,%d) = %v, want 1", i, i, id.Get(i, i))
		}
	}
}

func TestInverse(t *testing.T) {
	m := NewDenseMatrix[float64](2, 2)
	m.BuildFromDense([][]float64{
		{4, 7},
		{2, 6},
	})
	inv, err := Inverse(m)
	if err != nil {
		t.Fatal(err)
	}
	// A * A^-1 = I
	if !matrixEquals(multiplyMatrices(m, inv), Identity[float64](2), 1e-12) {
		t.Errorf("A * inv(A) should be the identity:\n%v", multiplyMatrices(m, inv))
	}
}

func TestInverseSingular(t *testing.T) {
	m := NewDenseMatrix[float64](2, 2)
	m.BuildFromDense([][]float64{
		{1, 2},
		{2, 4},
	})
	if _, err := Inverse(m); err == nil {
		t.Error("inverse of a singular matrix should fail")
	}
}
