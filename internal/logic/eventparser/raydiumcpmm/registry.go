package raydiumcpmm

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"
)

// 来源：https://github.com/raydium-io/raydium-cp-swap/blob/master/programs/cp-swap/src/lib.rs
var (
	Initialize     = decoder.AnchorInstruction("initialize")
	Deposit        = decoder.AnchorInstruction("deposit")
	Withdraw       = decoder.AnchorInstruction("withdraw")
	SwapBaseInput  = decoder.AnchorInstruction("swap_base_input")
	SwapBaseOutput = decoder.AnchorInstruction("swap_base_output")

	SwapEvent     = decoder.AnchorEvent("SwapEvent")
	LpChangeEvent = decoder.AnchorEvent("LpChangeEvent")
)

// Program Raydium CPMM：事件通过 emit! 输出为 "Program data:"，
// 深度保留日志中的原始 invoke [n]。
var Program = &decoder.Program{
	ID:           consts.RaydiumCPMMProgram,
	Name:         consts.ProgramRaydiumCPMM,
	Instructions: instructions,
	Events:       events,
	Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 0},
	Sources:      decoder.SourceLogData,
}

func Register(r *decoder.Registry) {
	r.Register(Program)
}
