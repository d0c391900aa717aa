package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"blockdiag"
	"blockdiag/debug"
	"blockdiag/maths"
	"blockdiag/parallel"
)

var (
	dim   = flag.Int("dim", 64, "块维度")
	html  = flag.String("html", "blockdiag.html", "图表页面输出路径")
	png   = flag.String("png", "blockdiag.png", "耗时对比曲线输出路径")
	serve = flag.String("serve", "", "发布图表页面的地址（为空则只写文件）")
)

// randomBlocks 生成 k 个 n×n 的对角占优随机块（保证分解成功）
func randomBlocks(k, n int, rng *rand.Rand) []maths.Matrix[float64] {
	blocks := make([]maths.Matrix[float64], k)
	for i := range blocks {
		m := maths.NewDenseMatrix[float64](n, n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				m.Set(r, c, rng.NormFloat64())
			}
			m.Increment(r, r, float64(2*n))
		}
		blocks[i] = m
	}
	return blocks
}

// randomVector 生成长度为 n 的随机向量
func randomVector(n int, rng *rand.Rand) maths.Vector[float64] {
	v := maths.NewDenseVector[float64](n)
	for i := 0; i < n; i++ {
		v.Set(i, rng.NormFloat64())
	}
	return v
}

// solveOnce 分解并求解一次，返回耗时（毫秒）
func solveOnce(blocks []maths.Matrix[float64], alg parallel.Algorithm, rec *debug.Record, policy string) float64 {
	bd, err := blockdiag.New(blocks, alg)
	if err != nil {
		log.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	b := randomVector(bd.Rows(), rng)

	start := time.Now()
	dec := bd.Factorize()
	x, err := dec.Solve(b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		log.Fatal(err)
	}
	if rec != nil {
		debug.ObserveSolve(rec, bd, x, b, elapsed, dec.Success(), policy)
	}
	return elapsed
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(42))

	// 不同块数量下对比串行与并行策略的耗时
	counts := []int{2, 8, 32, 128}
	ptsSeq := make(plotter.XYs, len(counts))
	ptsPar := make(plotter.XYs, len(counts))
	var rec *debug.Record
	for i, k := range counts {
		blocks := randomBlocks(k, *dim, rng)
		if i == len(counts)-1 {
			bd, err := blockdiag.New(blocks, nil)
			if err != nil {
				log.Fatal(err)
			}
			rec = debug.NewRecord(bd)
		}
		seq := solveOnce(blocks, parallel.Sequential{}, rec, "串行")
		par := solveOnce(blocks, parallel.Workers{}, rec, "并行")
		ptsSeq[i].X, ptsSeq[i].Y = float64(k), seq
		ptsPar[i].X, ptsPar[i].Y = float64(k), par
		fmt.Printf("blocks=%-4d dim=%d sequential=%.3fms parallel=%.3fms\n", k, *dim, seq, par)
	}

	// 耗时对比曲线
	p := plot.New()
	p.Title.Text = "分块对角LU分解与求解耗时"
	p.X.Label.Text = "块数量"
	p.Y.Label.Text = "耗时（毫秒）"
	if err := plotutil.AddLinePoints(p, "串行", ptsSeq, "并行", ptsPar); err != nil {
		log.Fatal(err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, *png); err != nil {
		log.Fatal(err)
	}

	// 图表页面
	c := &debug.Charts{Record: *rec}
	f, err := os.Create(*html)
	if err != nil {
		log.Fatal(err)
	}
	if err := c.Render(f); err != nil {
		log.Fatal(err)
	}
	f.Close()

	if *serve != "" {
		log.Fatal(c.Serve(*serve))
	}
}
