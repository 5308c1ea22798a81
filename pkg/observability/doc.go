// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 基于 log/slog 的日志构建器，支持 lumberjack 文件轮转
//
// 指标由 xrandom 直接通过 OpenTelemetry metric API 上报，
// 调用方以 xrandom.WithMeterProvider 注入 MeterProvider。
package observability
