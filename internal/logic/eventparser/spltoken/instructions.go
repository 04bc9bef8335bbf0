package spltoken

import (
	d "dex-decoder-sol/internal/logic/decoder"

	sdktoken "github.com/blocto/solana-go-sdk/program/token"
)

var (
	amount        = d.Layout{d.U64("amount")}
	amountChecked = d.Layout{d.U64("amount"), d.U8("decimals")}
)

var instructions = d.NewInstructionTable(
	// Transfer: 0 source, 1 destination, 2 authority
	d.InstructionSpec{
		Name:          "Transfer",
		Discriminator: tag(sdktoken.InstructionTransfer),
		Args:          amount,
		Accounts: d.Roles{
			d.Account("source", 0),
			d.Account("destination", 1),
			d.Account("authority", 2),
		},
	},
	// TransferChecked: 0 source, 1 mint, 2 destination, 3 authority
	d.InstructionSpec{
		Name:          "TransferChecked",
		Discriminator: tag(sdktoken.InstructionTransferChecked),
		Args:          amountChecked,
		Accounts: d.Roles{
			d.Account("source", 0),
			d.Account("mint", 1),
			d.Account("destination", 2),
			d.Account("authority", 3),
		},
	},
	d.InstructionSpec{
		Name:          "MintTo",
		Discriminator: tag(sdktoken.InstructionMintTo),
		Args:          amount,
		Accounts:      mintRoles,
	},
	d.InstructionSpec{
		Name:          "MintToChecked",
		Discriminator: tag(sdktoken.InstructionMintToChecked),
		Args:          amountChecked,
		Accounts:      mintRoles,
	},
	d.InstructionSpec{
		Name:          "Burn",
		Discriminator: tag(sdktoken.InstructionBurn),
		Args:          amount,
		Accounts:      burnRoles,
	},
	d.InstructionSpec{
		Name:          "BurnChecked",
		Discriminator: tag(sdktoken.InstructionBurnChecked),
		Args:          amountChecked,
		Accounts:      burnRoles,
	},
	// CloseAccount: 0 account, 1 destination, 2 owner
	d.InstructionSpec{
		Name:          "CloseAccount",
		Discriminator: tag(sdktoken.InstructionCloseAccount),
		Accounts: d.Roles{
			d.Account("account", 0),
			d.Account("destination", 1),
			d.Account("owner", 2),
		},
	},
)

// MintTo(Checked): 0 mint, 1 destination, 2 authority
var mintRoles = d.Roles{
	d.Account("mint", 0),
	d.Account("destination", 1),
	d.Account("authority", 2),
}

// Burn(Checked): 0 account, 1 mint, 2 authority
var burnRoles = d.Roles{
	d.Account("account", 0),
	d.Account("mint", 1),
	d.Account("authority", 2),
}
