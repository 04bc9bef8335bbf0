package pumpfun

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

// tradeRoles buy / sell 前 7 个账户位置一致：
//
//	0. Global 配置账户
//	1. 手续费账户
//	2. 代币 Mint
//	3. Bonding Curve 主账户（池子地址）
//	4. Bonding Curve Vault（池子 TokenAccount）
//	5. 用户 TokenAccount
//	6. 用户钱包
//	7. System Program
//	8. Token Program / Creator Vault（buy 与 sell 顺序不同）
//	9. Creator Vault / Token Program
//	10. Event Authority
//	11. Pump.fun 程序
var tradeRoles = d.Roles{
	d.Account("fee_recipient", 1),
	d.Account("mint", 2),
	d.Account("bonding_curve", 3),
	d.Account("associated_bonding_curve", 4),
	d.Account("associated_user", 5),
	d.Account("user", 6),
}

var instructions = d.NewInstructionTable(
	// create 账户布局：
	//
	// #0  - Mint 账户（新创建的 Token Mint）
	// #1  - Mint Authority
	// #2  - Bonding Curve 主账户
	// #3  - Bonding Curve Vault
	// #4  - Global 配置账户
	// #5  - Metaplex Token Metadata 程序
	// #6  - Metadata 账户
	// #7  - 用户钱包
	d.InstructionSpec{
		Name:          "create",
		Discriminator: Create,
		Decode:        decodeCreateArgs,
		MinArgs:       4 * createStringCount,
		Accounts: d.Roles{
			d.Account("mint", 0),
			d.Account("bonding_curve", 2),
			d.Account("associated_bonding_curve", 3),
			d.Account("metadata", 6),
			d.Account("user", 7),
		},
		Results: []string{"CreateEvent"},
	},
	d.InstructionSpec{
		Name:          "buy",
		Discriminator: Buy,
		Args: d.Layout{
			d.U64("amount"),
			d.U64("max_sol_cost"),
			d.Trailing(d.Bool("track_volume")), // IDL 中 OptionBool 为单字节 struct { bool }
		},
		Accounts: tradeRoles,
		Results:  []string{"TradeEvent"},
	},
	d.InstructionSpec{
		Name:          "sell",
		Discriminator: Sell,
		Args: d.Layout{
			d.U64("amount"),
			d.U64("min_sol_output"),
		},
		Accounts: tradeRoles,
		Results:  []string{"TradeEvent"},
	},

	// migrate 迁移到 Pump AMM，账户布局：
	//
	// #0 - Global 配置账户
	// #1 - Withdraw Authority
	// #2 - 代币 Mint
	// #3 - Bonding Curve 主账户
	// #4 - Bonding Curve Vault
	// #5 - 发起迁移的用户
	// #9 - 新建的 Pump AMM 池子
	d.InstructionSpec{
		Name:          "migrate",
		Discriminator: Migrate,
		Accounts: d.Roles{
			d.Account("mint", 2),
			d.Account("bonding_curve", 3),
			d.Account("associated_bonding_curve", 4),
			d.Account("user", 5),
			d.Account("pool", 9),
		},
		Results: []string{"CompletePumpAmmMigrationEvent"},
	},
)
