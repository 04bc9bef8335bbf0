package pumpfunamm

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"
)

var (
	Buy  = decoder.AnchorInstruction("buy")
	Sell = decoder.AnchorInstruction("sell")

	BuyEvent  = decoder.AnchorEvent("BuyEvent")
	SellEvent = decoder.AnchorEvent("SellEvent")
)

// Program Pump.fun AMM：经聚合器路由时日志常缺少 invoke [n] 与 success 标记，
// 深度按指令的 StackHeight 计算。
var Program = &decoder.Program{
	ID:           consts.PumpFunAMMProgram,
	Name:         consts.ProgramPumpfunAMM,
	Instructions: instructions,
	Events:       events,
	Log:          decoder.LogConvention{Mode: decoder.LogModeStackHeight, DepthBase: 1},
	Sources:      decoder.SourceLogData,
}

func Register(r *decoder.Registry) {
	r.Register(Program)
}
