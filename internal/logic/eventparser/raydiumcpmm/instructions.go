package raydiumcpmm

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

// swapRoles swap_base_input / swap_base_output 账户布局：
//
// #0  - 用户钱包（payer）
// #1  - 池子权限 PDA
// #2  - AMM 配置
// #3  - 池子状态账户（池子地址）
// #4  - 用户输入 TokenAccount
// #5  - 用户输出 TokenAccount
// #6  - 池子输入 vault
// #7  - 池子输出 vault
// #8  - 输入 Token Program
// #9  - 输出 Token Program
// #10 - 输入 Mint
// #11 - 输出 Mint
// #12 - Observation 账户
var swapRoles = d.Roles{
	d.Account("payer", 0),
	d.Account("amm_config", 2),
	d.Account("pool_state", 3),
	d.Account("input_token_account", 4),
	d.Account("output_token_account", 5),
	d.Account("input_vault", 6),
	d.Account("output_vault", 7),
	d.Account("input_token_mint", 10),
	d.Account("output_token_mint", 11),
}

// liquidityRoles deposit / withdraw 账户布局：
//
// #0  - 用户钱包
// #1  - 池子权限 PDA
// #2  - 池子状态账户
// #3  - 用户 LP TokenAccount
// #4  - 用户 token0 账户
// #5  - 用户 token1 账户
// #6  - 池子 token0 vault
// #7  - 池子 token1 vault
// #8  - Token Program
// #9  - Token-2022 Program
// #10 - token0 Mint
// #11 - token1 Mint
// #12 - LP Mint
var liquidityRoles = d.Roles{
	d.Account("owner", 0),
	d.Account("pool_state", 2),
	d.Account("owner_lp_token", 3),
	d.Account("token_0_account", 4),
	d.Account("token_1_account", 5),
	d.Account("token_0_vault", 6),
	d.Account("token_1_vault", 7),
	d.Account("vault_0_mint", 10),
	d.Account("vault_1_mint", 11),
	d.Account("lp_mint", 12),
}

var instructions = d.NewInstructionTable(
	d.InstructionSpec{
		Name:          "swap_base_input",
		Discriminator: SwapBaseInput,
		Args:          d.Layout{d.U64("amount_in"), d.U64("minimum_amount_out")},
		Accounts:      swapRoles,
		Results:       []string{"SwapEvent"},
	},
	d.InstructionSpec{
		Name:          "swap_base_output",
		Discriminator: SwapBaseOutput,
		Args:          d.Layout{d.U64("max_amount_in"), d.U64("amount_out")},
		Accounts:      swapRoles,
		Results:       []string{"SwapEvent"},
	},
	d.InstructionSpec{
		Name:          "deposit",
		Discriminator: Deposit,
		Args: d.Layout{
			d.U64("lp_token_amount"),
			d.U64("maximum_token_0_amount"),
			d.U64("maximum_token_1_amount"),
		},
		Accounts: liquidityRoles,
		Results:  []string{"LpChangeEvent"},
	},
	d.InstructionSpec{
		Name:          "withdraw",
		Discriminator: Withdraw,
		Args: d.Layout{
			d.U64("lp_token_amount"),
			d.U64("minimum_token_0_amount"),
			d.U64("minimum_token_1_amount"),
		},
		Accounts: liquidityRoles,
		Results:  []string{"LpChangeEvent"},
	},

	// initialize 创建池子，账户布局：
	//
	// #0  - 创建者钱包
	// #1  - AMM 配置
	// #3  - 池子状态账户
	// #4  - token0 Mint
	// #5  - token1 Mint
	// #6  - LP Mint
	// #10 - 池子 token0 vault
	// #11 - 池子 token1 vault
	d.InstructionSpec{
		Name:          "initialize",
		Discriminator: Initialize,
		Args: d.Layout{
			d.U64("init_amount_0"),
			d.U64("init_amount_1"),
			d.U64("open_time"),
		},
		Accounts: d.Roles{
			d.Account("creator", 0),
			d.Account("amm_config", 1),
			d.Account("pool_state", 3),
			d.Account("token_0_mint", 4),
			d.Account("token_1_mint", 5),
			d.Account("lp_mint", 6),
			d.Account("token_0_vault", 10),
			d.Account("token_1_vault", 11),
		},
	},
)
