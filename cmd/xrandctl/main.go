// xrandctl 是 xrandom 随机数引擎的命令行工具。
//
// 用法:
//
//	xrandctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-a, --algorithm   位生成器算法 (pcg32/pcg64/mt32/mt64，默认 pcg64)
//	-s, --seed        种子（十进制或 0x 十六进制，可超过 64 位）
//	    --seed-key    由字符串键派生种子，与 --seed 互斥
//	-c, --config      配置文件 (yaml/yml/json)
//	    --log-level   日志级别 (debug/info/warn/error，默认 warn)
//	    --log-format  日志格式 (text/json)
//	    --log-file    日志文件（按大小轮转）
//
// 配置优先级：命令行 > 环境变量 (XRANDOM_ALGORITHM/XRANDOM_SEED/XRANDOM_SEED_KEY) > 配置文件。
//
// 命令:
//
//	algorithms              列出支持的算法
//	distributions           列出支持的分布及参数
//	draw [选项] <dist>      按形状生成样本数组
//	stats [选项] <dist>     生成样本并输出统计摘要
//	random                  输出 [0,1) 上的均匀随机数
//
// 退出码:
//
//	0: 成功
//	1: 运行错误（读取配置文件失败等）
//	2: 参数错误（未知分布、参数越界、数组类型不匹配等）
//
// 示例:
//
//	xrandctl -s 42 draw --shape 2,3 --param loc=10 --param scale=2 normal
//	xrandctl -a mt64 --seed-key tenant-a draw --shape 5 --dtype int64 --param mean=3 poisson
//	xrandctl draw --shape 10 --weight 0.1,0.6,0.3 --format json discrete
//	xrandctl stats --size 100000 --param k=2 --param scale=1.5 gamma
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
