package raydiumv4

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

// ray_log 载荷首字节为 log_type，其余字段紧密排列（小端）
var events = d.NewEventTable(
	d.EventSpec{
		Name:          "InitLog",
		Discriminator: []byte{LogInit},
		Versions: []d.Layout{{
			d.U64("time"),
			d.U8("pc_decimals"),
			d.U8("coin_decimals"),
			d.U64("pc_lot_size"),
			d.U64("coin_lot_size"),
			d.U64("pc_amount"),
			d.U64("coin_amount"),
			d.Key("market"),
		}},
	},
	d.EventSpec{
		Name:          "DepositLog",
		Discriminator: []byte{LogDeposit},
		Versions: []d.Layout{{
			d.U64("max_coin"),
			d.U64("max_pc"),
			d.U64("base"),
			d.U64("pool_coin"),
			d.U64("pool_pc"),
			d.U64("pool_lp"),
			d.U128("calc_pnl_x"),
			d.U128("calc_pnl_y"),
			d.U64("deduct_coin"),
			d.U64("deduct_pc"),
			d.U64("mint_lp"),
		}},
	},
	d.EventSpec{
		Name:          "WithdrawLog",
		Discriminator: []byte{LogWithdraw},
		Versions: []d.Layout{{
			d.U64("withdraw_lp"),
			d.U64("user_lp"),
			d.U64("pool_coin"),
			d.U64("pool_pc"),
			d.U64("pool_lp"),
			d.U128("calc_pnl_x"),
			d.U128("calc_pnl_y"),
			d.U64("out_coin"),
			d.U64("out_pc"),
		}},
	},
	d.EventSpec{
		Name:          "SwapBaseInLog",
		Discriminator: []byte{LogSwapBaseIn},
		Versions: []d.Layout{{
			d.U64("amount_in"),
			d.U64("minimum_out"),
			d.U64("direction"), // 1: pc → coin，2: coin → pc
			d.U64("user_source"),
			d.U64("pool_coin"),
			d.U64("pool_pc"),
			d.U64("out_amount"),
		}},
	},
	d.EventSpec{
		Name:          "SwapBaseOutLog",
		Discriminator: []byte{LogSwapBaseOut},
		Versions: []d.Layout{{
			d.U64("max_in"),
			d.U64("amount_out"),
			d.U64("direction"),
			d.U64("user_source"),
			d.U64("pool_coin"),
			d.U64("pool_pc"),
			d.U64("deduct_in"),
		}},
	},
)
