package orcawhirlpool

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

var swapArgs = d.Layout{
	d.U64("amount"),
	d.U64("other_amount_threshold"),
	d.U128("sqrt_price_limit"),
	d.Bool("amount_specified_is_input"),
	d.Bool("a_to_b"),
}

var instructions = d.NewInstructionTable(
	// swap 账户布局：
	//   0. Token Program
	//   1. 用户钱包（token authority）
	//   2. Whirlpool（池子地址）
	//   3. 用户 token A 账户
	//   4. 池子 token A vault
	//   5. 用户 token B 账户
	//   6. 池子 token B vault
	//   7-9. tick arrays
	//  10. Oracle
	d.InstructionSpec{
		Name:          "swap",
		Discriminator: Swap,
		Args:          swapArgs,
		Accounts: d.Roles{
			d.Account("token_authority", 1),
			d.Account("whirlpool", 2),
			d.Account("token_owner_account_a", 3),
			d.Account("token_vault_a", 4),
			d.Account("token_owner_account_b", 5),
			d.Account("token_vault_b", 6),
		},
		Results: []string{"Traded"},
	},

	// swap_v2 账户布局：
	//   0. Token Program A
	//   1. Token Program B
	//   2. Memo Program
	//   3. 用户钱包（token authority）
	//   4. Whirlpool
	//   5. Token Mint A
	//   6. Token Mint B
	//   7. 用户 token A 账户
	//   8. 池子 token A vault
	//   9. 用户 token B 账户
	//  10. 池子 token B vault
	//  11-13. tick arrays
	//  14. Oracle
	//
	// 参数尾部为 Option<RemainingAccountsInfo>，这里只记录是否存在
	d.InstructionSpec{
		Name:          "swap_v2",
		Discriminator: SwapV2,
		Args:          swapArgs.Extend(d.Trailing(d.Bool("has_remaining_accounts"))),
		Accounts: d.Roles{
			d.Account("token_authority", 3),
			d.Account("whirlpool", 4),
			d.Account("token_mint_a", 5),
			d.Account("token_mint_b", 6),
			d.Account("token_owner_account_a", 7),
			d.Account("token_vault_a", 8),
			d.Account("token_owner_account_b", 9),
			d.Account("token_vault_b", 10),
		},
		Results: []string{"Traded"},
	},

	// two_hop_swap 两个池子依次成交，各自输出一条 Traded：
	//   1. 用户钱包
	//   2. Whirlpool One
	//   3. Whirlpool Two
	d.InstructionSpec{
		Name:          "two_hop_swap",
		Discriminator: TwoHopSwap,
		Args: d.Layout{
			d.U64("amount"),
			d.U64("other_amount_threshold"),
			d.Bool("amount_specified_is_input"),
			d.Bool("a_to_b_one"),
			d.Bool("a_to_b_two"),
			d.U128("sqrt_price_limit_one"),
			d.U128("sqrt_price_limit_two"),
		},
		Accounts: d.Roles{
			d.Account("token_authority", 1),
			d.Account("whirlpool_one", 2),
			d.Account("whirlpool_two", 3),
		},
		Results: []string{"Traded"},
	},
)

var events = d.NewEventTable(
	d.EventSpec{
		Name:          "Traded",
		Discriminator: TradedEvent,
		Versions: []d.Layout{{
			d.Key("whirlpool"),
			d.Bool("a_to_b"),
			d.U128("pre_sqrt_price"),
			d.U128("post_sqrt_price"),
			d.U64("input_amount"),
			d.U64("output_amount"),
			d.U64("input_transfer_fee"),
			d.U64("output_transfer_fee"),
			d.U64("lp_fee"),
			d.U64("protocol_fee"),
		}},
	},
)
