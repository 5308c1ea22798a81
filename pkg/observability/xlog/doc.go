// Package xlog 基于 log/slog 的日志构建器。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后 Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xrandctl.log", xlog.WithMaxSize(100)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// Build 返回标准库 *slog.Logger，可以直接传给 xrandom.WithLogger。
// cleanup 负责关闭轮转文件，可重复调用。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)，与 slog 一致。
// [ParseLevel] 支持 debug/info/warn/warning/error（大小写不敏感）。
//
// # 日志轮转
//
// [Builder.SetRotation] 使用 gopkg.in/natefinch/lumberjack.v2 按文件大小轮转，
// 默认单文件 500MB、保留 7 个备份、30 天、gzip 压缩。
package xlog
