package xlog_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/omeyang/xrandom/pkg/observability/xlog"
)

func ExampleNew() {
	logger, cleanup, err := xlog.New().
		SetOutput(os.Stdout).
		SetFormat("json").
		SetLevel(xlog.LevelWarn).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = cleanup() }()

	logger.Info("dropped")
	fmt.Println(logger.Enabled(context.Background(), slog.LevelWarn))
	// Output: true
}

func ExampleParseLevel() {
	level, err := xlog.ParseLevel("Warning")
	fmt.Println(level, err)
	// Output: WARN <nil>
}
