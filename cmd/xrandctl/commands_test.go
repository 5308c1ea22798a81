package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI 执行一次命令行并返回退出码与输出。
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"xrandctl"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestAlgorithms(t *testing.T) {
	code, out, _ := runCLI(t, "algorithms")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"pcg32", "pcg64 (default)", "mt32", "mt64"}, lines)
}

func TestDistributions(t *testing.T) {
	code, out, _ := runCLI(t, "distributions")
	require.Equal(t, 0, code)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 17)
	assert.Contains(t, out, "k, scale=1")
	assert.Contains(t, out, "--weight w0,w1,...")
	assert.Contains(t, out, "negative_binomial")
}

func TestDraw_Reproducible(t *testing.T) {
	args := []string{"-a", "mt64", "-s", "42", "draw", "--shape", "2,3", "--param", "loc=10", "--param", "scale=2", "normal"}
	code, first, stderr := runCLI(t, args...)
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(first, "[["))

	_, second, _ := runCLI(t, args...)
	assert.Equal(t, first, second)

	args[3] = "43"
	_, other, _ := runCLI(t, args...)
	assert.NotEqual(t, first, other)
}

func TestDraw_JSON(t *testing.T) {
	code, out, stderr := runCLI(t, "-s", "0x2a", "draw", "--shape", "2,3", "--dtype", "float32",
		"--order", "column", "--format", "json", "uniform")
	require.Equal(t, 0, code, stderr)

	var got drawOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "pcg64", got.Algorithm)
	assert.Equal(t, "42", got.Seed)
	assert.Equal(t, "uniform", got.Distribution)
	assert.Equal(t, "float32", got.DType)
	assert.Equal(t, []int{2, 3}, got.Shape)
	require.Len(t, got.Data, 6)
	for _, v := range got.Data {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestDraw_CountDistributions(t *testing.T) {
	code, out, stderr := runCLI(t, "-s", "1", "draw", "--shape", "3", "--weight", "0,1,0", "discrete")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "[1, 1, 1]\n", out)

	code, out, stderr = runCLI(t, "-s", "1", "draw", "--shape", "4", "--dtype", "uint8",
		"--param", "n=10", "--param", "p=0.5", "binomial")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(out, "["))
}

func TestDraw_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown distribution", []string{"draw", "zipf"}, `unknown distribution: "zipf"`},
		{"no distribution", []string{"draw"}, "exactly one distribution name is required"},
		{"bad parameter", []string{"draw", "--param", "df=-1", "chisquare"}, "df must be > 0"},
		{"missing parameter", []string{"draw", "gamma"}, `missing param "k" for gamma`},
		{"unknown parameter", []string{"draw", "--param", "mu=1", "normal"}, `unknown param "mu"`},
		{"non-integer n", []string{"draw", "--param", "n=2.5", "--param", "p=0.5", "binomial"}, `param "n" must be an integer`},
		{"type mismatch", []string{"draw", "--dtype", "int32", "normal"}, "invalid array dtype, it must be float64 or float32"},
		{"bad dtype", []string{"draw", "--dtype", "complex64", "normal"}, "wrong dtype is given: complex64"},
		{"negative shape", []string{"draw", "--shape", "2,-1", "normal"}, "shape must be non-negative"},
		{"bad shape", []string{"draw", "--shape", "2x3", "normal"}, `invalid shape "2x3"`},
		{"bad order", []string{"draw", "--order", "z", "normal"}, `invalid order "z"`},
		{"bad format", []string{"draw", "--format", "xml", "normal"}, `invalid format "xml"`},
		{"empty weight", []string{"draw", "discrete"}, "length of weight must be > 0"},
		{"weight on continuous", []string{"draw", "--weight", "1,2", "normal"}, "--weight only applies to discrete"},
		{"bad algorithm", []string{"-a", "xorshift", "draw", "normal"}, `invalid algorithm: "xorshift"`},
		{"seed conflict", []string{"-s", "1", "--seed-key", "k", "draw", "normal"}, "mutually exclusive"},
		{"bad log level", []string{"--log-level", "loud", "draw", "normal"}, "unknown level"},
		{"unknown flag", []string{"draw", "--bogus", "normal"}, "bogus"},
		{"bad stats size", []string{"stats", "--size", "0", "normal"}, "size must be > 0"},
		{"bad count", []string{"random", "--count", "-1"}, "count must be non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, stderr := runCLI(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestStats(t *testing.T) {
	code, out, stderr := runCLI(t, "-s", "7", "stats", "--size", "200000", "--param", "loc=10", "--param", "scale=2", "normal")
	require.Equal(t, 0, code, stderr)

	values := map[string]float64{}
	for line := range strings.Lines(out) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
			values[fields[0]] = v
		}
	}
	assert.InDelta(t, 10, values["mean"], 0.05)
	assert.InDelta(t, 4, values["variance"], 0.1)
	assert.InDelta(t, 2, values["stddev"], 0.05)
	assert.InDelta(t, 10, values["median"], 0.05)
	assert.Less(t, values["min"], values["max"])
	assert.Equal(t, 200000.0, values["size"])
	assert.Contains(t, out, "float64")
}

func TestRandom(t *testing.T) {
	code, out, stderr := runCLI(t, "--seed-key", "tenant-a", "random", "--count", "5")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	_, again, _ := runCLI(t, "--seed-key", "tenant-a", "random", "--count", "5")
	assert.Equal(t, out, again)
}

func TestConfigSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "random.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: mt32\nseed: \"5\"\n"), 0o600))

	_, fromFile, _ := runCLI(t, "-c", path, "random", "--count", "3")
	_, fromFlags, _ := runCLI(t, "-a", "mt32", "-s", "5", "random", "--count", "3")
	assert.Equal(t, fromFlags, fromFile)

	// 命令行覆盖配置文件
	code, out, stderr := runCLI(t, "-c", path, "-a", "pcg32", "draw", "--format", "json", "normal")
	require.Equal(t, 0, code, stderr)
	var got drawOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "pcg32", got.Algorithm)
	assert.Equal(t, "5", got.Seed)

	// 环境变量覆盖配置文件
	t.Setenv("XRANDOM_SEED", "9")
	_, out, _ = runCLI(t, "-c", path, "draw", "--format", "json", "normal")
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "mt32", got.Algorithm)
	assert.Equal(t, "9", got.Seed)
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCLI(t, "-c", filepath.Join(dir, "missing.yaml"), "random")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "load config failed")

	code, _, _ = runCLI(t, "-c", filepath.Join(dir, "random.toml"), "random")
	assert.Equal(t, 2, code)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	code, _, stderr = runCLI(t, "-c", bad, "random")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "parse config failed")
}

func TestLogging(t *testing.T) {
	code, _, stderr := runCLI(t, "--log-level", "debug", "-s", "3", "random")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "generator created")
	assert.Contains(t, stderr, "command=random")
	assert.Contains(t, stderr, "seed=3")

	file := filepath.Join(t.TempDir(), "logs", "xrandctl.log")
	code, _, stderr = runCLI(t, "--log-level", "debug", "--log-format", "json", "--log-file", file,
		"draw", "--param", "mean=-1", "poisson")
	require.Equal(t, 2, code)
	assert.NotContains(t, stderr, "call rejected")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"xrandom: call rejected"`)
	assert.Contains(t, string(data), `"distribution":"poisson"`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 2, exitCode(usagef("bad")))
	assert.Equal(t, 1, exitCode(os.ErrNotExist))
}
