package meteoradlmm

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

// swapRoles 几种 Swap 指令的账户结构一致：
//
// 0 - Lb Pair（池子地址）
// 1 - Bin Array Bitmap Extension
// 2 - Reserve X（池子 Token X 的 TokenAccount）
// 3 - Reserve Y（池子 Token Y 的 TokenAccount）
// 4 - User Token In
// 5 - User Token Out
// 6 - Token X Mint
// 7 - Token Y Mint
// 8 - Oracle
// 9 - Host Fee In
// 10 - 用户钱包
var swapRoles = d.Roles{
	d.Account("lb_pair", 0),
	d.Account("reserve_x", 2),
	d.Account("reserve_y", 3),
	d.Account("user_token_in", 4),
	d.Account("user_token_out", 5),
	d.Account("token_x_mint", 6),
	d.Account("token_y_mint", 7),
	d.Account("user", 10),
}

// swap2 之后还带有 RemainingAccountsInfo，不影响这里读取的字段
var instructions = d.NewInstructionTable(
	d.InstructionSpec{
		Name:          "swap",
		Discriminator: Swap,
		Args:          d.Layout{d.U64("amount_in"), d.U64("min_amount_out")},
		Accounts:      swapRoles,
		Results:       []string{"Swap"},
	},
	d.InstructionSpec{
		Name:          "swap2",
		Discriminator: Swap2,
		Args:          d.Layout{d.U64("amount_in"), d.U64("min_amount_out")},
		Accounts:      swapRoles,
		Results:       []string{"Swap"},
	},
	d.InstructionSpec{
		Name:          "swap_exact_out",
		Discriminator: SwapExactOut,
		Args:          d.Layout{d.U64("max_in_amount"), d.U64("out_amount")},
		Accounts:      swapRoles,
		Results:       []string{"Swap"},
	},
)

var events = d.NewEventTable(
	d.EventSpec{
		Name:          "Swap",
		Discriminator: SwapEvent,
		Versions: []d.Layout{{
			d.Key("lb_pair"),
			d.Key("from"),
			d.I32("start_bin_id"),
			d.I32("end_bin_id"),
			d.U64("amount_in"),
			d.U64("amount_out"),
			d.Bool("swap_for_y"),
			d.U64("fee"),
			d.U64("protocol_fee"),
			d.U128("fee_bps"),
			d.U64("host_fee"),
		}},
	},
)
