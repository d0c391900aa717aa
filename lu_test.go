package blockdiag

import (
	"testing"

	"blockdiag/maths"
	"blockdiag/parallel"
)

func TestFactorizeSolveDiagonal(t *testing.T) {
	bd, err := New([]maths.Matrix[float64]{
		newBlock([][]float64{{2, 0}, {0, 2}}),
		newBlock([][]float64{{3, 0}, {0, 3}}),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	d := bd.Factorize()
	if !d.Success() {
		t.Fatal("factorization of a regular matrix should succeed")
	}
	if d.NumBlocks() != 2 || d.BlockSize() != 2 || d.Rows() != 4 {
		t.Errorf("decomposition shape wrong: %d blocks of %d, %d rows", d.NumBlocks(), d.BlockSize(), d.Rows())
	}

	x, err := d.Solve(maths.NewDenseVectorWithData([]float64{4, 4, 9, 9}))
	if err != nil {
		t.Fatal(err)
	}
	if !vectorsEqual(x, maths.NewDenseVectorWithData([]float64{2, 2, 3, 3}), 1e-12) {
		t.Errorf("solve result wrong: %v", x)
	}
}

func TestSolveMatchesBlockwiseSolves(t *testing.T) {
	blocks := randomDominantBlocks(4, 3, 7)
	bd, _ := New(blocks, nil)
	d := bd.Factorize()
	if !d.Success() {
		t.Fatal("factorization should succeed")
	}

	b := maths.NewDenseVector[float64](12)
	for i := 0; i < 12; i++ {
		b.Set(i, float64(i+1))
	}
	x, err := d.Solve(b)
	if err != nil {
		t.Fatal(err)
	}

	// 逐块独立求解后拼接，结果应当一致
	want := maths.NewDenseVector[float64](12)
	for i, blk := range blocks {
		lu, _ := maths.NewLU[float64](3)
		if err := lu.Decompose(blk); err != nil {
			t.Fatal(err)
		}
		bi := maths.NewDenseVector[float64](3)
		xi := maths.NewDenseVector[float64](3)
		for r := 0; r < 3; r++ {
			bi.Set(r, b.Get(i*3+r))
		}
		if err := lu.SolveReuse(bi, xi); err != nil {
			t.Fatal(err)
		}
		for r := 0; r < 3; r++ {
			want.Set(i*3+r, xi.Get(r))
		}
	}
	if !vectorsEqual(x, want, 1e-12) {
		t.Errorf("blockwise solve disagrees with reference:\ngot  %v\nwant %v", x, want)
	}
}

func TestFactorizePreservesBlocks(t *testing.T) {
	blocks := randomDominantBlocks(2, 3, 11)
	before := make([]maths.Matrix[float64], len(blocks))
	for i, b := range blocks {
		before[i] = b.Clone()
	}
	bd, _ := New(blocks, nil)
	bd.Factorize()
	for i, b := range blocks {
		if !matricesEqual(b, before[i], 0) {
			t.Errorf("Factorize must not modify source block %d", i)
		}
	}
}

func TestFactorizeInPlaceOverwritesBlocks(t *testing.T) {
	blocks := randomDominantBlocks(2, 3, 13)
	before := make([]maths.Matrix[float64], len(blocks))
	for i, b := range blocks {
		before[i] = b.Clone()
	}
	bd, _ := New(blocks, nil)
	d := bd.FactorizeInPlace()
	if !d.Success() {
		t.Fatal("in-place factorization should succeed")
	}

	changed := false
	for i, b := range blocks {
		if !matricesEqual(b, before[i], 0) {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("FactorizeInPlace should overwrite the source blocks with factors")
	}

	// 原地分解的求解结果与普通分解一致
	ref, _ := New(before, nil)
	b := maths.NewDenseVector[float64](6)
	for i := 0; i < 6; i++ {
		b.Set(i, float64(i))
	}
	x1, err := d.Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	x2, err := ref.Factorize().Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	if !vectorsEqual(x1, x2, 1e-12) {
		t.Errorf("in-place and copying solves disagree:\n%v\n%v", x1, x2)
	}
}

func TestSuccessSingularBlock(t *testing.T) {
	bd, _ := New([]maths.Matrix[float64]{
		newBlock([][]float64{{1, 0}, {0, 1}}),
		maths.NewDenseMatrix[float64](2, 2), // 零块奇异
		newBlock([][]float64{{2, 0}, {0, 2}}),
	}, nil)
	d := bd.Factorize()
	if d.Success() {
		t.Error("factorization with a singular block should not report success")
	}
	// 奇异块不影响其余块的分解结果
	if !d.facts[0].Success() || !d.facts[2].Success() {
		t.Error("regular blocks should still factor successfully")
	}
	// 奇异分解求解失败并指明块
	if _, err := d.Solve(maths.NewDenseVector[float64](6)); err == nil {
		t.Error("solving with a singular block should fail")
	}
}

func TestSolveTo(t *testing.T) {
	blocks := randomDominantBlocks(3, 2, 17)
	bd, _ := New(blocks, nil)
	d := bd.Factorize()

	// 两列右端项
	b := maths.NewDenseMatrix[float64](6, 2)
	for i := 0; i < 6; i++ {
		b.Set(i, 0, float64(i+1))
		b.Set(i, 1, float64(2*i-3))
	}
	x := maths.NewDenseMatrix[float64](6, 2)
	if err := d.SolveTo(x, b); err != nil {
		t.Fatal(err)
	}

	// 与逐列的向量求解对照
	for c := 0; c < 2; c++ {
		col := maths.NewDenseVector[float64](6)
		for i := 0; i < 6; i++ {
			col.Set(i, b.Get(i, c))
		}
		want, err := d.Solve(col)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 6; i++ {
			if maths.Abs(x.Get(i, c)-want.Get(i)) > 1e-12 {
				t.Fatalf("column %d row %d: got %v, want %v", c, i, x.Get(i, c), want.Get(i))
			}
		}
	}
}

func TestSolveToShapeChecks(t *testing.T) {
	bd, _ := New(randomDominantBlocks(2, 2, 19), nil)
	d := bd.Factorize()

	b := maths.NewDenseMatrix[float64](4, 1)
	if err := d.SolveTo(maths.NewDenseMatrix[float64](4, 2), b); err == nil {
		t.Error("destination shape mismatch should fail")
	}
	if err := d.SolveTo(maths.NewDenseMatrix[float64](6, 1), maths.NewDenseMatrix[float64](6, 1)); err == nil {
		t.Error("right-hand side row mismatch should fail")
	}
	if _, err := d.Solve(maths.NewDenseVector[float64](3)); err == nil {
		t.Error("right-hand side length mismatch should fail")
	}
}

func TestSequentialMatchesParallel(t *testing.T) {
	blocks := randomDominantBlocks(8, 4, 23)
	clone := make([]maths.Matrix[float64], len(blocks))
	for i, b := range blocks {
		clone[i] = b.Clone()
	}

	seq, _ := New(blocks, parallel.Sequential{})
	par, _ := New(clone, parallel.Workers{})

	b := maths.NewDenseVector[float64](32)
	for i := 0; i < 32; i++ {
		b.Set(i, float64(i%7)-3)
	}
	x1, err := seq.Factorize().Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	x2, err := par.Factorize().Solve(b)
	if err != nil {
		t.Fatal(err)
	}
	// 逐块算法与调度无关，两种策略应得到完全相同的结果
	if !vectorsEqual(x1, x2, 0) {
		t.Error("sequential and parallel execution should produce identical results")
	}
}

func BenchmarkFactorizeSolve(b *testing.B) {
	for _, alg := range []struct {
		name string
		alg  parallel.Algorithm
	}{
		{"sequential", parallel.Sequential{}},
		{"parallel", parallel.Workers{}},
	} {
		b.Run(alg.name, func(b *testing.B) {
			bd, _ := New(randomDominantBlocks(32, 16, 29), alg.alg)
			rhs := maths.NewDenseVector[float64](32 * 16)
			for i := 0; i < rhs.Length(); i++ {
				rhs.Set(i, float64(i))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d := bd.Factorize()
				if _, err := d.Solve(rhs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
