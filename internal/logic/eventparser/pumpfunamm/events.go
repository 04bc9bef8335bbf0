package pumpfunamm

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

// 两种事件尾部共有的账户字段
var eventAccounts = d.Layout{
	d.Key("pool"),
	d.Key("user"),
	d.Key("user_base_token_account"),
	d.Key("user_quote_token_account"),
	d.Key("protocol_fee_recipient"),
	d.Key("protocol_fee_recipient_token_account"),
}

var creatorFee = []d.FieldSpec{
	d.Key("coin_creator"),
	d.U64("coin_creator_fee_basis_points"),
	d.U64("coin_creator_fee"),
}

var buyEventV1 = d.Layout{
	d.I64("timestamp"),
	d.U64("base_amount_out"),
	d.U64("max_quote_amount_in"),
	d.U64("user_base_token_reserves"),
	d.U64("user_quote_token_reserves"),
	d.U64("pool_base_token_reserves"),
	d.U64("pool_quote_token_reserves"),
	d.U64("quote_amount_in"),
	d.U64("lp_fee_basis_points"),
	d.U64("lp_fee"),
	d.U64("protocol_fee_basis_points"),
	d.U64("protocol_fee"),
	d.U64("quote_amount_in_with_lp_fee"),
	d.U64("user_quote_amount_in"),
}.Extend(eventAccounts...)

var sellEventV1 = d.Layout{
	d.I64("timestamp"),
	d.U64("base_amount_in"),
	d.U64("min_quote_amount_out"),
	d.U64("user_base_token_reserves"),
	d.U64("user_quote_token_reserves"),
	d.U64("pool_base_token_reserves"),
	d.U64("pool_quote_token_reserves"),
	d.U64("quote_amount_out"),
	d.U64("lp_fee_basis_points"),
	d.U64("lp_fee"),
	d.U64("protocol_fee_basis_points"),
	d.U64("protocol_fee"),
	d.U64("quote_amount_out_without_lp_fee"),
	d.U64("user_quote_amount_out"),
}.Extend(eventAccounts...)

var events = d.NewEventTable(
	d.EventSpec{
		Name:          "BuyEvent",
		Discriminator: BuyEvent,
		Versions:      []d.Layout{buyEventV1, buyEventV1.Extend(creatorFee...)},
	},
	d.EventSpec{
		Name:          "SellEvent",
		Discriminator: SellEvent,
		Versions:      []d.Layout{sellEventV1, sellEventV1.Extend(creatorFee...)},
	},
)
