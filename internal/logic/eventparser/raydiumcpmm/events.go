package raydiumcpmm

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

var swapEventV1 = d.Layout{
	d.Key("pool_id"),
	d.U64("input_vault_before"),
	d.U64("output_vault_before"),
	d.U64("input_amount"),
	d.U64("output_amount"),
	d.U64("input_transfer_fee"),
	d.U64("output_transfer_fee"),
	d.Bool("base_input"),
}

// v2 增加 mint 与手续费拆分（creator fee 上线后）
var swapEventV2 = swapEventV1.Extend(
	d.Key("input_mint"),
	d.Key("output_mint"),
	d.U64("trade_fee"),
	d.U64("creator_fee"),
	d.Bool("creator_fee_on_input"),
)

var events = d.NewEventTable(
	d.EventSpec{
		Name:          "SwapEvent",
		Discriminator: SwapEvent,
		Versions:      []d.Layout{swapEventV1, swapEventV2},
	},
	d.EventSpec{
		Name:          "LpChangeEvent",
		Discriminator: LpChangeEvent,
		Versions: []d.Layout{{
			d.Key("pool_id"),
			d.U64("lp_amount_before"),
			d.U64("token_0_vault_before"),
			d.U64("token_1_vault_before"),
			d.U64("token_0_amount"),
			d.U64("token_1_amount"),
			d.U64("token_0_transfer_fee"),
			d.U64("token_1_transfer_fee"),
			d.U8("change_type"), // 0: deposit，1: withdraw
		}},
	},
)
