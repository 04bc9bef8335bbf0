package raydiumcpmm

import (
	"encoding/hex"
	"testing"

	"dex-decoder-sol/internal/logic/decoder"
	dt "dex-decoder-sol/internal/logic/decoder/decodertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminators(t *testing.T) {
	assert.Equal(t, "8fbe5adac41e33de", hex.EncodeToString(SwapBaseInput))
	assert.Equal(t, "37d96256a34ab4ad", hex.EncodeToString(SwapBaseOutput))
	assert.Equal(t, "f223c68952e1f2b6", hex.EncodeToString(Deposit))
	assert.Equal(t, "b712469c946da122", hex.EncodeToString(Withdraw))
	assert.Equal(t, "afaf6d1f0d989bed", hex.EncodeToString(Initialize))
	assert.Equal(t, "40c6cde8260871e2", hex.EncodeToString(SwapEvent))
	assert.Equal(t, "79a3cdc939da753c", hex.EncodeToString(LpChangeEvent))
}

func TestDecodeInstructions(t *testing.T) {
	accounts := dt.Keys(14)
	cases := []struct {
		name string
		data dt.Payload
		want map[string]string
	}{
		{"swap_base_input", dt.New(SwapBaseInput).U64(1000).U64(950), map[string]string{"amount_in": "1000", "minimum_amount_out": "950"}},
		{"swap_base_output", dt.New(SwapBaseOutput).U64(2000).U64(10), map[string]string{"max_amount_in": "2000", "amount_out": "10"}},
		{"deposit", dt.New(Deposit).U64(1).U64(2).U64(3), map[string]string{"lp_token_amount": "1", "maximum_token_0_amount": "2", "maximum_token_1_amount": "3"}},
		{"withdraw", dt.New(Withdraw).U64(4).U64(5).U64(6), map[string]string{"lp_token_amount": "4", "minimum_token_0_amount": "5", "minimum_token_1_amount": "6"}},
		{"initialize", dt.New(Initialize).U64(7).U64(8).U64(9), map[string]string{"init_amount_0": "7", "init_amount_1": "8", "open_time": "9"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, c.data, accounts))
			require.NoError(t, err)
			assert.Equal(t, c.name, ix.Variant)
			assert.Equal(t, c.want, ix.Fields.Map())
		})
	}
}

func TestSwapRoles(t *testing.T) {
	accounts := dt.Keys(13)
	ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, dt.New(SwapBaseInput).U64(1).U64(1), accounts))
	require.NoError(t, err)
	pool, _ := ix.Accounts.Get("pool_state")
	assert.Equal(t, accounts[3], pool)
	mint, _ := ix.Accounts.Get("output_token_mint")
	assert.Equal(t, accounts[11], mint)

	_, err = Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, dt.New(SwapBaseInput).U64(1).U64(1), accounts[:11]))
	assert.ErrorIs(t, err, decoder.ErrNoMatch)
}

func swapEventV1Payload(pool dt.Payload) dt.Payload {
	return pool.U64(100).U64(200).U64(1000).U64(987).U64(0).U64(3).Bool(true)
}

func TestSwapEventVersions(t *testing.T) {
	pool, in, out := dt.Key(1), dt.Key(2), dt.Key(3)

	v1 := swapEventV1Payload(dt.New(SwapEvent).Key(pool))
	ev, err := Program.DecodeEvent(v1, decoder.SourceLogData)
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Version)
	assert.Equal(t, "987", ev.Fields.Text("output_amount"))
	assert.Equal(t, "true", ev.Fields.Text("base_input"))
	v, ok := ev.Fields.Get("trade_fee")
	require.True(t, ok)
	assert.True(t, v.IsAbsent())

	v2 := swapEventV1Payload(dt.New(SwapEvent).Key(pool)).Key(in).Key(out).U64(25).U64(5).Bool(false)
	ev, err = Program.DecodeEvent(v2, decoder.SourceLogData)
	require.NoError(t, err)
	assert.Equal(t, 2, ev.Version)
	assert.Equal(t, map[string]string{
		"pool_id": pool.String(), "input_vault_before": "100", "output_vault_before": "200",
		"input_amount": "1000", "output_amount": "987", "input_transfer_fee": "0", "output_transfer_fee": "3",
		"base_input": "true", "input_mint": in.String(), "output_mint": out.String(),
		"trade_fee": "25", "creator_fee": "5", "creator_fee_on_input": "false",
	}, ev.Fields.Map())

	// 截断在 v1 与 v2 之间，回退到 v1
	partial := append(swapEventV1Payload(dt.New(SwapEvent).Key(pool)), in[:10]...)
	ev, err = Program.DecodeEvent(partial, decoder.SourceLogData)
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Version)
}

func TestLpChangeEvent(t *testing.T) {
	pool := dt.Key(9)
	data := dt.New(LpChangeEvent).Key(pool).U64(1).U64(2).U64(3).U64(4).U64(5).U64(6).U64(7).U8(1)
	ev, err := Program.DecodeEvent(data, decoder.SourceLogData)
	require.NoError(t, err)
	assert.Equal(t, "LpChangeEvent", ev.Variant)
	assert.Equal(t, "1", ev.Fields.Text("change_type"))
	assert.Equal(t, pool.String(), ev.Fields.Text("pool_id"))
}
