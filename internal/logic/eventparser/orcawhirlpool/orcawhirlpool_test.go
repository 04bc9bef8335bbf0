package orcawhirlpool

import (
	"encoding/hex"
	"testing"

	"dex-decoder-sol/internal/logic/decoder"
	dt "dex-decoder-sol/internal/logic/decoder/decodertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MIN_SQRT_PRICE_X64
const minSqrtPrice = "4295048016"

func TestDiscriminators(t *testing.T) {
	assert.Equal(t, "f8c69e91e17587c8", hex.EncodeToString(Swap))
	assert.Equal(t, "2b04ed0b1ac91e62", hex.EncodeToString(SwapV2))
	assert.Equal(t, "c360ed6c44a2dbe6", hex.EncodeToString(TwoHopSwap))
	assert.Equal(t, "e1ca49af932ba096", hex.EncodeToString(TradedEvent))
}

func TestSwap(t *testing.T) {
	accounts := dt.Keys(11)
	data := dt.New(Swap).U64(1000).U64(950).U128(4295048016, 0).Bool(true).Bool(true)
	ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, data, accounts))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"amount": "1000", "other_amount_threshold": "950", "sqrt_price_limit": minSqrtPrice,
		"amount_specified_is_input": "true", "a_to_b": "true",
	}, ix.Fields.Map())
	pool, _ := ix.Accounts.Get("whirlpool")
	assert.Equal(t, accounts[2], pool)
}

func TestSwapV2(t *testing.T) {
	accounts := dt.Keys(15)
	lo, hi := uint64(0x5d8bbd16_c5c5f6af), uint64(0x00000000_ffff_fb13)
	base := dt.New(SwapV2).U64(5).U64(4).U128(lo, hi).Bool(false).Bool(false)

	ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, base, accounts))
	require.NoError(t, err)
	assert.Equal(t, "swap_v2", ix.Variant)
	v, _ := ix.Fields.Get("has_remaining_accounts")
	assert.True(t, v.IsAbsent())
	wide, ok := ix.Fields.Get("sqrt_price_limit")
	require.True(t, ok)
	n, _ := wide.AsU128()
	assert.Equal(t, hi, n[1])
	assert.Equal(t, lo, n[0])

	withRemaining := append(dt.Payload{}, base...).Bool(true).U32(0)
	ix, err = Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, withRemaining, accounts))
	require.NoError(t, err)
	assert.Equal(t, "true", ix.Fields.Text("has_remaining_accounts"))
	mintB, _ := ix.Accounts.Get("token_mint_b")
	assert.Equal(t, accounts[6], mintB)
}

func TestTwoHopSwap(t *testing.T) {
	data := dt.New(TwoHopSwap).U64(1).U64(2).Bool(true).Bool(false).Bool(true).U128(3, 0).U128(0, 1)
	ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, data, dt.Keys(20)))
	require.NoError(t, err)
	assert.Equal(t, "two_hop_swap", ix.Variant)
	assert.Equal(t, "false", ix.Fields.Text("a_to_b_one"))
	assert.Equal(t, "18446744073709551616", ix.Fields.Text("sqrt_price_limit_two"))
}

func TestTradedEvent(t *testing.T) {
	pool := dt.Key(7)
	data := dt.New(TradedEvent).Key(pool).Bool(false).U128(1, 0).U128(2, 0).U64(3).U64(4).U64(5).U64(6).U64(7).U64(8)
	ev, err := Program.DecodeEvent(data, decoder.SourceLogData)
	require.NoError(t, err)
	assert.Equal(t, "Traded", ev.Variant)
	assert.Equal(t, map[string]string{
		"whirlpool": pool.String(), "a_to_b": "false", "pre_sqrt_price": "1", "post_sqrt_price": "2",
		"input_amount": "3", "output_amount": "4", "input_transfer_fee": "5", "output_transfer_fee": "6",
		"lp_fee": "7", "protocol_fee": "8",
	}, ev.Fields.Map())

	// bool 字节不是 0/1 视为不匹配
	bad := dt.New(TradedEvent).Key(pool).U8(7).U128(1, 0).U128(2, 0).U64(3).U64(4).U64(5).U64(6).U64(7).U64(8)
	_, err = Program.DecodeEvent(bad, decoder.SourceLogData)
	assert.ErrorIs(t, err, decoder.ErrNoMatch)
}
