package meteoradlmm

import (
	"encoding/hex"
	"testing"

	"dex-decoder-sol/internal/logic/decoder"
	dt "dex-decoder-sol/internal/logic/decoder/decodertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminators(t *testing.T) {
	assert.Equal(t, "f8c69e91e17587c8", hex.EncodeToString(Swap))
	assert.Equal(t, "414b3f4ceb5b5b88", hex.EncodeToString(Swap2))
	assert.Equal(t, "fa49652126cf4bb8", hex.EncodeToString(SwapExactOut))
	assert.Equal(t, "516ce3becdd00ac4", hex.EncodeToString(SwapEvent))
}

func TestDecodeSwaps(t *testing.T) {
	accounts := dt.Keys(16)
	cases := []struct {
		name string
		data dt.Payload
		want map[string]string
	}{
		{"swap", dt.New(Swap).U64(1000).U64(950), map[string]string{"amount_in": "1000", "min_amount_out": "950"}},
		// swap2 尾部的 remaining accounts 信息被忽略
		{"swap2", dt.New(Swap2).U64(10).U64(9).U32(1).U8(0).U8(2), map[string]string{"amount_in": "10", "min_amount_out": "9"}},
		{"swap_exact_out", dt.New(SwapExactOut).U64(77).U64(70), map[string]string{"max_in_amount": "77", "out_amount": "70"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 3, 1, c.data, accounts))
			require.NoError(t, err)
			assert.Equal(t, c.name, ix.Variant)
			assert.Equal(t, 1, ix.Depth)
			assert.Equal(t, c.want, ix.Fields.Map())
			user, _ := ix.Accounts.Get("user")
			assert.Equal(t, accounts[10], user)
			assert.True(t, ix.ExpectsResult("Swap"))
		})
	}
}

func TestSwapEvent(t *testing.T) {
	pair, from := dt.Key(1), dt.Key(2)
	data := dt.New(SwapEvent).Key(pair).Key(from).I32(-443636).I32(-443630).
		U64(1_000_000).U64(987_654).Bool(true).U64(2500).U64(125).U128(0, 3).U64(0)

	n := dt.Node(Program.ID, 4, 2, data.SelfCPI(), dt.Keys(1))
	require.True(t, Program.IsSelfCPIEvent(n.Data))
	ev, err := Program.DecodeSelfCPIEvent(n)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"lb_pair": pair.String(), "from": from.String(),
		"start_bin_id": "-443636", "end_bin_id": "-443630",
		"amount_in": "1000000", "amount_out": "987654", "swap_for_y": "true",
		"fee": "2500", "protocol_fee": "125", "fee_bps": "55340232221128654848", "host_fee": "0",
	}, ev.Fields.Map())
	assert.Equal(t, 4, ev.Ordinal)
}

func TestSelfCPIIsNotInstruction(t *testing.T) {
	data := dt.New(SwapEvent).Key(dt.Key(1)).SelfCPI()
	_, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 1, data, nil))
	assert.ErrorIs(t, err, decoder.ErrNoMatch)
}
