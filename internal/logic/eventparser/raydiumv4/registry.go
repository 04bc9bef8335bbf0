package raydiumv4

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"
)

// 来源：https://github.com/raydium-io/raydium-amm/blob/master/program/src/instruction.rs
const (
	Initialize2 byte = 1
	Deposit     byte = 3
	Withdraw    byte = 4
	SwapBaseIn  byte = 9
	SwapBaseOut byte = 11
)

// ray_log 的 log_type，来源 program/src/log.rs
const (
	LogInit        byte = 0
	LogDeposit     byte = 1
	LogWithdraw    byte = 2
	LogSwapBaseIn  byte = 3
	LogSwapBaseOut byte = 4
)

// RayLogPrefix 是 Raydium V4 事件日志的文本前缀
const RayLogPrefix = "ray_log: "

// Program Raydium AMM V4：1 字节指令编号，事件通过 "Program log: ray_log: <base64>" 输出
var Program = &decoder.Program{
	ID:           consts.RaydiumV4Program,
	Name:         consts.ProgramRaydiumV4,
	Instructions: instructions,
	Events:       events,
	Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 1},
	Sources:      decoder.SourceLogText,
	TextPrefix:   RayLogPrefix,
}

// Register 注册 Raydium V4 的解码配置
func Register(r *decoder.Registry) {
	r.Register(Program)
}
