package xrandom

import "errors"

var (
	// ErrEmptyPath 配置文件路径为空
	ErrEmptyPath = errors.New("xrandom: config path is empty")
	// ErrUnsupportedFormat 不支持的配置格式
	ErrUnsupportedFormat = errors.New("xrandom: unsupported config format")
	// ErrLoadFailed 读取配置失败
	ErrLoadFailed = errors.New("xrandom: load config failed")
	// ErrParseFailed 解析配置失败
	ErrParseFailed = errors.New("xrandom: parse config failed")
)
