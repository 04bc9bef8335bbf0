package orcawhirlpool

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"
)

// 来源：https://github.com/orca-so/whirlpools/tree/main/programs/whirlpool/src
var (
	Swap        = decoder.AnchorInstruction("swap")
	SwapV2      = decoder.AnchorInstruction("swap_v2")
	TwoHopSwap  = decoder.AnchorInstruction("two_hop_swap")
	TradedEvent = decoder.AnchorEvent("Traded")
)

// Program Orca Whirlpool：Traded 事件通过 emit! 输出为 "Program data:"
var Program = &decoder.Program{
	ID:           consts.OrcaWhirlpoolProgram,
	Name:         consts.ProgramOrcaWhirlpool,
	Instructions: instructions,
	Events:       events,
	Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 1},
	Sources:      decoder.SourceLogData,
}

func Register(r *decoder.Registry) {
	r.Register(Program)
}
