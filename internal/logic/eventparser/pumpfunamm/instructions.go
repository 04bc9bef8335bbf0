package pumpfunamm

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

// tradeRoles buy / sell 账户布局：
//
// #0  - 池子地址
// #1  - 用户钱包
// #2  - Global 配置
// #3  - Base Mint
// #4  - Quote Mint
// #5  - 用户 base TokenAccount
// #6  - 用户 quote TokenAccount
// #7  - 池子 base TokenAccount
// #8  - 池子 quote TokenAccount
// #9  - 协议手续费接收者
// #10 - 协议手续费 TokenAccount
// #11 - Base Token Program
// #12 - Quote Token Program
// #13 - System Program
// #14 - Associated Token Program
// #15 - Event Authority
// #16 - Pump AMM 程序
// #17 - Coin Creator Vault ATA（creator fee 升级后出现）
// #18 - Coin Creator Vault Authority（同上）
var tradeRoles = d.Roles{
	d.Account("pool", 0),
	d.Account("user", 1),
	d.Account("base_mint", 3),
	d.Account("quote_mint", 4),
	d.Account("user_base_token_account", 5),
	d.Account("user_quote_token_account", 6),
	d.Account("pool_base_token_account", 7),
	d.Account("pool_quote_token_account", 8),
	d.Account("protocol_fee_recipient", 9),
	d.OptionalAccount("coin_creator_vault_ata", 17),
	d.OptionalAccount("coin_creator_vault_authority", 18),
}

var instructions = d.NewInstructionTable(
	d.InstructionSpec{
		Name:          "buy",
		Discriminator: Buy,
		Args: d.Layout{
			d.U64("base_amount_out"),
			d.U64("max_quote_amount_in"),
			d.Trailing(d.Bool("track_volume")), // IDL 中 OptionBool 为单字节 struct { bool }
		},
		Accounts: tradeRoles,
		Results:  []string{"BuyEvent"},
	},
	d.InstructionSpec{
		Name:          "sell",
		Discriminator: Sell,
		Args: d.Layout{
			d.U64("base_amount_in"),
			d.U64("min_quote_amount_out"),
		},
		Accounts: tradeRoles,
		Results:  []string{"SellEvent"},
	},
)
