package pumpfun

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"
)

var (
	Create  = decoder.AnchorInstruction("create")
	Buy     = decoder.AnchorInstruction("buy")
	Sell    = decoder.AnchorInstruction("sell")
	Migrate = decoder.AnchorInstruction("migrate")

	TradeEvent                    = decoder.AnchorEvent("TradeEvent")
	CreateEvent                   = decoder.AnchorEvent("CreateEvent")
	CompleteEvent                 = decoder.AnchorEvent("CompleteEvent")
	CompletePumpAmmMigrationEvent = decoder.AnchorEvent("CompletePumpAmmMigrationEvent")
)

// Program Pump.fun bonding curve：事件通过 emit_cpi! 以自调用指令的形式出现，
// 紧跟在触发它的指令之后。
var Program = &decoder.Program{
	ID:           consts.PumpFunProgram,
	Name:         consts.ProgramPumpfun,
	Instructions: instructions,
	Events:       events,
	Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 1},
	Sources:      decoder.SourceSelfCPI,
}

func Register(r *decoder.Registry) {
	r.Register(Program)
}
