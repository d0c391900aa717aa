package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	// 块结构信息
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "块结构信息",
			Subtitle: fmt.Sprintf("%d 个 %dx%d 对角块的非零元素占比", c.Blocks, c.Dim, c.Dim),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	barItems := make([]opts.BarData, 0, c.Blocks)
	for _, d := range c.Density {
		barItems = append(barItems, opts.BarData{Value: d})
	}
	bar.SetXAxis(c.Labels).AddSeries("非零占比", barItems)

	// 残差曲线
	lineR := charts.NewLine()
	lineR.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "残差曲线",
			Subtitle: "每次求解的逐块残差（∞范数）",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	lineR.SetXAxis(c.Labels)
	for i, residual := range c.Residual {
		items := make([]opts.LineData, 0, len(residual))
		for _, r := range residual {
			items = append(items, opts.LineData{Value: r})
		}
		lineR.AddSeries(fmt.Sprintf("求解(%d)-%s", i+1, c.Policy[i]), items)
	}

	// 耗时曲线
	lineT := charts.NewLine()
	lineT.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "耗时曲线",
			Subtitle: "每次求解耗时（毫秒）",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	solveLabels := make([]string, 0, len(c.Elapsed))
	timeItems := make([]opts.LineData, 0, len(c.Elapsed))
	for i, e := range c.Elapsed {
		solveLabels = append(solveLabels, fmt.Sprintf("求解(%d)", i+1))
		timeItems = append(timeItems, opts.LineData{Value: e})
	}
	lineT.SetXAxis(solveLabels).AddSeries("耗时", timeItems)

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		bar,
		lineR,
		lineT,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

// Serve 在给定地址上发布图表页面
func (c *Charts) Serve(addr string) error {
	http.HandleFunc("/", c.Handler)
	log.Printf("debug charts listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}

func (c *Charts) Error(err error) { log.Println(err) }
