package meteoradlmm

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"
)

var (
	Swap         = decoder.AnchorInstruction("swap")
	Swap2        = decoder.AnchorInstruction("swap2")
	SwapExactOut = decoder.AnchorInstruction("swap_exact_out")

	SwapEvent = decoder.AnchorEvent("Swap")
)

// Program Meteora DLMM：Swap 事件经 emit_cpi! 自调用输出
var Program = &decoder.Program{
	ID:           consts.MeteoraDLMMProgram,
	Name:         consts.ProgramMeteoraDLMM,
	Instructions: instructions,
	Events:       events,
	Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 1},
	Sources:      decoder.SourceSelfCPI,
}

func Register(r *decoder.Registry) {
	r.Register(Program)
}
