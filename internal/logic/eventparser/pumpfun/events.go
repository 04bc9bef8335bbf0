package pumpfun

import (
	d "dex-decoder-sol/internal/logic/decoder"
)

var tradeEventV1 = d.Layout{
	d.Key("mint"),
	d.U64("sol_amount"),
	d.U64("token_amount"),
	d.Bool("is_buy"),
	d.Key("user"),
	d.I64("timestamp"),
	d.U64("virtual_sol_reserves"),
	d.U64("virtual_token_reserves"),
}

// v2：增加真实储备与手续费拆分
var tradeEventV2 = tradeEventV1.Extend(
	d.U64("real_sol_reserves"),
	d.U64("real_token_reserves"),
	d.Key("fee_recipient"),
	d.U64("fee_basis_points"),
	d.U64("fee"),
	d.Key("creator"),
	d.U64("creator_fee_basis_points"),
	d.U64("creator_fee"),
)

// v3：交易量激励
var tradeEventV3 = tradeEventV2.Extend(
	d.Bool("track_volume"),
	d.U64("total_unclaimed_tokens"),
	d.U64("total_claimed_tokens"),
	d.U64("current_sol_volume"),
	d.I64("last_update_timestamp"),
)

var createEventV1 = d.Layout{
	d.Str("name"),
	d.Str("symbol"),
	d.Str("uri"),
	d.Key("mint"),
	d.Key("bonding_curve"),
	d.Key("user"),
}

var createEventV2 = createEventV1.Extend(
	d.Key("creator"),
	d.I64("timestamp"),
	d.U64("virtual_token_reserves"),
	d.U64("virtual_sol_reserves"),
	d.U64("real_token_reserves"),
	d.U64("token_total_supply"),
)

var events = d.NewEventTable(
	d.EventSpec{
		Name:          "TradeEvent",
		Discriminator: TradeEvent,
		Versions:      []d.Layout{tradeEventV1, tradeEventV2, tradeEventV3},
	},
	d.EventSpec{
		Name:          "CreateEvent",
		Discriminator: CreateEvent,
		Versions:      []d.Layout{createEventV1, createEventV2},
	},
	d.EventSpec{
		Name:          "CompleteEvent",
		Discriminator: CompleteEvent,
		Versions: []d.Layout{{
			d.Key("user"),
			d.Key("mint"),
			d.Key("bonding_curve"),
			d.I64("timestamp"),
		}},
	},
	d.EventSpec{
		Name:          "CompletePumpAmmMigrationEvent",
		Discriminator: CompletePumpAmmMigrationEvent,
		Versions: []d.Layout{{
			d.Key("user"),
			d.Key("mint"),
			d.U64("mint_amount"),
			d.U64("sol_amount"),
			d.U64("pool_migration_fee"),
			d.Key("bonding_curve"),
			d.I64("timestamp"),
			d.Key("pool"),
		}},
	},
)
