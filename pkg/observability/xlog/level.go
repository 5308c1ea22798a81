package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 包装 slog.Level，可直接出现在配置结构体与命令行参数中。
type Level slog.Level

// 四个标准级别，数值与 slog 相同。
const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames 可接受的名称，按级别从低到高排列；"warning" 是 "warn" 的别名。
var levelNames = []struct {
	name  string
	level Level
}{
	{"debug", LevelDebug},
	{"info", LevelInfo},
	{"warn", LevelWarn},
	{"warning", LevelWarn},
	{"error", LevelError},
}

// LevelNames 返回 [ParseLevel] 接受的规范名称，不含别名。
func LevelNames() []string {
	names := make([]string, 0, len(levelNames))
	seen := make(map[Level]bool, len(levelNames))
	for _, e := range levelNames {
		if !seen[e.level] {
			seen[e.level] = true
			names = append(names, e.name)
		}
	}
	return names
}

// Slog 返回对应的 slog.Level。
func (l Level) Slog() slog.Level {
	return slog.Level(l)
}

// String 与 slog 相同：DEBUG、INFO 这类大写名，中间级别带偏移（INFO+2）。
func (l Level) String() string {
	return l.Slog().String()
}

// MarshalText 输出 [Level.String] 的结果。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 解析失败时保持原值不变。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 忽略大小写与首尾空白；无法识别时返回包装了 [ErrUnknownLevel] 的错误。
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, e := range levelNames {
		if e.name == key {
			return e.level, nil
		}
	}
	return LevelInfo, fmt.Errorf("%w %q", ErrUnknownLevel, s)
}
