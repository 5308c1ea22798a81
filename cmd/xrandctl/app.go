package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xrandom/pkg/observability/xlog"
	"github.com/omeyang/xrandom/pkg/random/xrandom"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// usageError 参数错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exitCode 把命令错误映射为退出码。
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	if xrerr.KindOf(err) != xrerr.KindUnknown {
		return 2
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return 2
	}
	return 1
}

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xrandctl",
		Usage:     "可复现的随机数组生成工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "位生成器算法 (pcg32/pcg64/mt32/mt64)",
			},
			&cli.StringFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "种子，十进制或 0x 前缀十六进制",
			},
			&cli.StringFlag{
				Name:  "seed-key",
				Usage: "由字符串键派生种子",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (yaml/yml/json)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "日志级别 (" + strings.Join(xlog.LevelNames(), "/") + ")",
				Value:   "warn",
				Sources: cli.EnvVars("XRANDOM_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "日志格式 (text/json)",
				Value:   "text",
				Sources: cli.EnvVars("XRANDOM_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "日志文件路径，为空时输出到 stderr",
				Sources: cli.EnvVars("XRANDOM_LOG_FILE"),
			},
		},
		Commands:     createCommands(),
		OnUsageError: onUsageError,
		// 退出码统一由 run 映射，禁止 urfave/cli 直接调用 os.Exit。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				_, _ = fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := createApp(stdout, stderr).Run(ctx, args)
	code := exitCode(err)
	switch code {
	case 0:
	case 2:
		_, _ = fmt.Fprintf(stderr, "参数错误: %v\n", err)
	default:
		_, _ = fmt.Fprintf(stderr, "错误: %v\n", err)
	}
	return code
}

// loadConfig 合并配置文件、环境变量与命令行参数，后者优先。
func loadConfig(cmd *cli.Command) (xrandom.Config, error) {
	var cfg xrandom.Config
	if path := cmd.String("config"); path != "" {
		fileCfg, err := xrandom.LoadConfig(path)
		if err != nil {
			if errors.Is(err, xrandom.ErrUnsupportedFormat) {
				return cfg, &usageError{err: err}
			}
			return cfg, err
		}
		cfg = cfg.Merge(fileCfg)
	}
	envCfg, err := xrandom.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	cfg = cfg.Merge(envCfg)
	return cfg.Merge(xrandom.Config{
		Algorithm: cmd.String("algorithm"),
		Seed:      cmd.String("seed"),
		SeedKey:   cmd.String("seed-key"),
	}), nil
}

// newGenerator 按全局选项创建生成器，返回的清理函数关闭日志文件。
func newGenerator(cmd *cli.Command) (*xrandom.Generator, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	b := xlog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format")).
		SetAttrs(slog.String("command", cmd.Name))
	if file := cmd.String("log-file"); file != "" {
		b = b.SetRotation(file)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		if errors.Is(err, xlog.ErrUnknownLevel) || errors.Is(err, xlog.ErrUnknownFormat) {
			return nil, nil, &usageError{err: err}
		}
		return nil, nil, err
	}

	g, err := xrandom.NewFromConfig(cfg, xrandom.WithLogger(logger))
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return g, cleanup, nil
}
