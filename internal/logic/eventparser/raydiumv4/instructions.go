package raydiumv4

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

var instructions = d.NewInstructionTable(
	// Initialize2 创建池子，账户布局：
	//   4. AMM 主账户（池子地址）
	//   7. LP Mint
	//   8. coin Mint
	//   9. pc Mint
	//  10. 池子 coin vault
	//  11. 池子 pc vault
	//  16. Serum 市场
	//  17. 创建者钱包
	d.InstructionSpec{
		Name:          "Initialize2",
		Discriminator: []byte{Initialize2},
		Args: d.Layout{
			d.U8("nonce"),
			d.U64("open_time"),
			d.U64("init_pc_amount"),
			d.U64("init_coin_amount"),
		},
		Accounts: d.Roles{
			d.Account("amm", 4),
			d.Account("lp_mint", 7),
			d.Account("coin_mint", 8),
			d.Account("pc_mint", 9),
			d.Account("pool_coin_vault", 10),
			d.Account("pool_pc_vault", 11),
			d.Account("market", 16),
			d.Account("user", 17),
		},
		Results: []string{"InitLog"},
	},

	// Deposit 添加流动性，账户布局：
	//   1. AMM 主账户
	//   5. LP Mint
	//   6. 池子 coin vault
	//   7. 池子 pc vault
	//   9. 用户 coin 账户
	//  10. 用户 pc 账户
	//  11. 用户 LP 账户
	//  12. 用户钱包
	d.InstructionSpec{
		Name:          "Deposit",
		Discriminator: []byte{Deposit},
		Args: d.Layout{
			d.U64("max_coin_amount"),
			d.U64("max_pc_amount"),
			d.U64("base_side"),
			d.Trailing(d.U64("other_amount_min")), // 无标志位，剩余 8 字节时存在
		},
		Accounts: d.Roles{
			d.Account("amm", 1),
			d.Account("lp_mint", 5),
			d.Account("pool_coin_vault", 6),
			d.Account("pool_pc_vault", 7),
			d.Account("user_coin", 9),
			d.Account("user_pc", 10),
			d.Account("user_lp", 11),
			d.Account("user", 12),
		},
		Results: []string{"DepositLog"},
	},

	// Withdraw 移除流动性。尾部的 Serum 账户数量随版本变化，这里只取固定位置
	d.InstructionSpec{
		Name:          "Withdraw",
		Discriminator: []byte{Withdraw},
		Args: d.Layout{
			d.U64("amount"),
			d.Trailing(d.U64("min_coin_amount")),
			d.Trailing(d.U64("min_pc_amount")),
		},
		Accounts: d.Roles{
			d.Account("amm", 1),
			d.Account("lp_mint", 5),
			d.Account("pool_coin_vault", 6),
			d.Account("pool_pc_vault", 7),
		},
		Results: []string{"WithdrawLog"},
	},

	// SwapBaseIn / SwapBaseOut 共用账户布局，共 17 或 18 个账户（target orders 可选），
	// 用户相关账户固定在末尾：
	//   1. AMM 主账户
	//  -3. 用户 source token 账户
	//  -2. 用户 destination token 账户
	//  -1. 用户钱包
	d.InstructionSpec{
		Name:          "SwapBaseIn",
		Discriminator: []byte{SwapBaseIn},
		Args: d.Layout{
			d.U64("amount_in"),
			d.U64("minimum_amount_out"),
		},
		Accounts:    swapRoles,
		MinAccounts: 17,
		Results:     []string{"SwapBaseInLog"},
	},
	d.InstructionSpec{
		Name:          "SwapBaseOut",
		Discriminator: []byte{SwapBaseOut},
		Args: d.Layout{
			d.U64("max_amount_in"),
			d.U64("amount_out"),
		},
		Accounts:    swapRoles,
		MinAccounts: 17,
		Results:     []string{"SwapBaseOutLog"},
	},
)

var swapRoles = d.Roles{
	d.Account("amm", 1),
	d.AccountFromEnd("user_source", 3),
	d.AccountFromEnd("user_destination", 2),
	d.AccountFromEnd("user", 1),
}
