package xrandom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xrandom/pkg/random/xbitgen"
	"github.com/omeyang/xrandom/pkg/random/xrerr"
)

// EnvPrefix 环境变量前缀。
const EnvPrefix = "XRANDOM_"

// Config 生成器配置。
//
// Seed 为十进制或 0x 前缀的十六进制整数文本，可以超过 64 位；
// SeedKey 通过哈希派生种子。两者都为空时使用系统熵源。
type Config struct {
	Algorithm string `koanf:"algorithm" env:"ALGORITHM" json:"algorithm,omitempty"`
	Seed      string `koanf:"seed" env:"SEED" json:"seed,omitempty"`
	SeedKey   string `koanf:"seed_key" env:"SEED_KEY" json:"seed_key,omitempty"`
}

// LoadConfig 从文件加载配置，按扩展名识别 YAML（.yaml/.yml）或 JSON（.json）。
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrEmptyPath
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !isValidFormat(format) {
		return Config{}, fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return LoadConfigBytes(data, format)
}

// LoadConfigBytes 从字节加载配置，format 为 yaml、yml 或 json。空数据得到零值配置。
func LoadConfigBytes(data []byte, format string) (Config, error) {
	var parser koanf.Parser
	switch strings.ToLower(format) {
	case "yaml", "yml":
		parser = yaml.Parser()
	case "json":
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var cfg Config
	if len(data) == 0 {
		return cfg, nil
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return cfg, nil
}

// ConfigFromEnv 从 XRANDOM_ALGORITHM、XRANDOM_SEED、XRANDOM_SEED_KEY 读取配置。
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return cfg, nil
}

// Merge 返回以 other 中非空字段覆盖 c 后的配置。
func (c Config) Merge(other Config) Config {
	if other.Algorithm != "" {
		c.Algorithm = other.Algorithm
	}
	if other.Seed != "" || other.SeedKey != "" {
		c.Seed = other.Seed
		c.SeedKey = other.SeedKey
	}
	return c
}

// Validate 检查配置：算法必须受支持，种子必须是非负整数，Seed 与 SeedKey 互斥。
func (c Config) Validate() error {
	_, err := c.Options()
	return err
}

// Options 把配置转换为生成器选项。
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Algorithm != "" {
		alg, err := xbitgen.ParseAlgorithm(c.Algorithm)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAlgorithm(alg.String()))
	}
	switch {
	case c.Seed != "" && c.SeedKey != "":
		return nil, xrerr.Configuration("seed and seed_key are mutually exclusive")
	case c.Seed != "":
		seed, err := xbitgen.ParseSeed(c.Seed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSeed(seed))
	case c.SeedKey != "":
		opts = append(opts, WithSeedKey(c.SeedKey))
	}
	return opts, nil
}

func isValidFormat(format string) bool {
	switch format {
	case "yaml", "yml", "json":
		return true
	default:
		return false
	}
}
