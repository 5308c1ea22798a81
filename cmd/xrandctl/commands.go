package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/omeyang/xrandom/pkg/random/xarray"
	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xdist"
	"github.com/omeyang/xrandom/pkg/random/xrandom"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createAlgorithmsCommand(),
		createDistributionsCommand(),
		createDrawCommand(),
		createStatsCommand(),
		createRandomCommand(),
	}
}

// distFlags draw 与 stats 共用的分布参数。
func distFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "param",
			Aliases: []string{"p"},
			Usage:   "分布参数 name=value，可重复",
		},
		&cli.StringFlag{
			Name:    "weight",
			Aliases: []string{"w"},
			Usage:   "discrete 的权重，逗号分隔",
		},
		&cli.StringFlag{
			Name:  "dtype",
			Usage: "数组元素类型（连续分布默认 float64，计数分布默认 int32）",
		},
	}
}

func createAlgorithmsCommand() *cli.Command {
	return &cli.Command{
		Name:         "algorithms",
		Usage:        "列出支持的位生成器算法",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdAlgorithms(cmd.Root().Writer)
		},
	}
}

func createDistributionsCommand() *cli.Command {
	return &cli.Command{
		Name:         "distributions",
		Aliases:      []string{"dists"},
		Usage:        "列出支持的分布及参数",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdDistributions(cmd.Root().Writer)
		},
	}
}

func createDrawCommand() *cli.Command {
	return &cli.Command{
		Name:         "draw",
		Usage:        "按形状生成样本数组",
		ArgsUsage:    "<distribution>",
		OnUsageError: onUsageError,
		Flags: append(distFlags(),
			&cli.StringFlag{
				Name:  "shape",
				Usage: "数组形状，逗号分隔",
				Value: "1",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "数组顺序 (row/column)",
				Value: "row",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "输出格式 (text/json)",
				Value: "text",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			req, err := parseDrawRequest(cmd)
			if err != nil {
				return err
			}
			g, cleanup, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()
			return cmdDraw(cmd.Root().Writer, g, req)
		},
	}
}

func createStatsCommand() *cli.Command {
	return &cli.Command{
		Name:         "stats",
		Usage:        "生成样本并输出统计摘要",
		ArgsUsage:    "<distribution>",
		OnUsageError: onUsageError,
		Flags: append(distFlags(),
			&cli.IntFlag{
				Name:  "size",
				Usage: "样本数量",
				Value: 100000,
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			size := cmd.Int("size")
			if size <= 0 {
				return usagef("size must be > 0")
			}
			req, err := parseRequest(cmd, []int{size})
			if err != nil {
				return err
			}
			g, cleanup, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()
			return cmdStats(cmd.Root().Writer, g, req)
		},
	}
}

func createRandomCommand() *cli.Command {
	return &cli.Command{
		Name:         "random",
		Usage:        "输出 [0,1) 上的均匀随机数",
		OnUsageError: onUsageError,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "输出个数",
				Value:   1,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			count := cmd.Int("count")
			if count < 0 {
				return usagef("count must be non-negative")
			}
			g, cleanup, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()
			return cmdRandom(cmd.Root().Writer, g, count)
		},
	}
}

// drawRequest 解析后的 draw/stats 请求。
type drawRequest struct {
	dist   xdist.Distribution
	shape  []int
	weight []float64
	opts   []xrandom.ArrayOption
	format string
}

func parseDrawRequest(cmd *cli.Command) (drawRequest, error) {
	shape, err := parseShape(cmd.String("shape"))
	if err != nil {
		return drawRequest{}, err
	}
	req, err := parseRequest(cmd, shape)
	if err != nil {
		return drawRequest{}, err
	}
	order, err := parseOrder(cmd.String("order"))
	if err != nil {
		return drawRequest{}, err
	}
	req.opts = append(req.opts, xrandom.WithOrder(order))
	switch format := strings.ToLower(cmd.String("format")); format {
	case "text", "json":
		req.format = format
	default:
		return drawRequest{}, usagef("invalid format %q, want text or json", cmd.String("format"))
	}
	return req, nil
}

func parseRequest(cmd *cli.Command, shape []int) (drawRequest, error) {
	if cmd.Args().Len() != 1 {
		return drawRequest{}, usagef("exactly one distribution name is required")
	}
	weight, err := parseFloats(cmd.String("weight"))
	if err != nil {
		return drawRequest{}, err
	}
	dist, err := buildDistribution(cmd.Args().First(), cmd.StringSlice("param"), weight)
	if err != nil {
		return drawRequest{}, err
	}
	req := drawRequest{dist: dist, shape: shape, weight: weight}
	if name := cmd.String("dtype"); name != "" {
		dtype, err := xarray.ParseDType(name)
		if err != nil {
			return drawRequest{}, err
		}
		req.opts = append(req.opts, xrandom.WithDType(dtype))
	}
	return req, nil
}

// sample 执行请求；discrete 走权重数组路径。
func sample(g *xrandom.Generator, req drawRequest) (xarray.Array, error) {
	if req.dist.Kind() == xdist.KindDiscrete {
		weight, err := xarray.FromSlice(req.weight, len(req.weight))
		if err != nil {
			return nil, err
		}
		return g.NewDiscrete(req.shape, weight, req.opts...)
	}
	return g.Draw(req.shape, req.dist, req.opts...)
}

func cmdAlgorithms(w io.Writer) error {
	for _, alg := range xbitgen.Algorithms() {
		line := alg.String()
		if alg == xbitgen.DefaultAlgorithm {
			line += " (default)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func cmdDistributions(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, k := range xdist.Kinds() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", k, k.Class(), paramUsage(k))
	}
	return tw.Flush()
}

// drawOutput draw --format json 的输出结构。
type drawOutput struct {
	Algorithm    string    `json:"algorithm"`
	Seed         string    `json:"seed"`
	Distribution string    `json:"distribution"`
	DType        string    `json:"dtype"`
	Shape        []int     `json:"shape"`
	Data         []float64 `json:"data"`
}

func cmdDraw(w io.Writer, g *xrandom.Generator, req drawRequest) error {
	x, err := sample(g, req)
	if err != nil {
		return err
	}
	if req.format == "text" {
		_, err = fmt.Fprintln(w, xarray.Format(x))
		return err
	}
	data, _ := xarray.Float64s(x)
	enc := json.NewEncoder(w)
	return enc.Encode(drawOutput{
		Algorithm:    g.Algorithm().String(),
		Seed:         g.Seed().String(),
		Distribution: req.dist.Kind().String(),
		DType:        x.DType().String(),
		Shape:        slices.Clone(x.Layout().Shape),
		Data:         data,
	})
}

func cmdStats(w io.Writer, g *xrandom.Generator, req drawRequest) error {
	x, err := sample(g, req)
	if err != nil {
		return err
	}
	data, _ := xarray.Float64s(x)
	mean, variance := stat.MeanVariance(data, nil)
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		name  string
		value float64
	}{
		{"mean", mean},
		{"variance", variance},
		{"stddev", stat.StdDev(data, nil)},
		{"min", floats.Min(data)},
		{"max", floats.Max(data)},
		{"median", stat.Quantile(0.5, stat.Empirical, sorted, nil)},
	}
	_, _ = fmt.Fprintf(tw, "distribution\t%s\n", req.dist.Kind())
	_, _ = fmt.Fprintf(tw, "dtype\t%s\n", x.DType())
	_, _ = fmt.Fprintf(tw, "size\t%d\n", len(data))
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%.6g\n", r.name, r.value)
	}
	return tw.Flush()
}

func cmdRandom(w io.Writer, g *xrandom.Generator, count int) error {
	for range count {
		if _, err := fmt.Fprintln(w, g.Random()); err != nil {
			return err
		}
	}
	return nil
}
