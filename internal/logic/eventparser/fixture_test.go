package eventparser

import (
	"testing"

	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/txadapter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFixtures(t *testing.T, path string) []*Result {
	t.Helper()
	fixtures, err := txadapter.LoadFixtures(path)
	require.NoError(t, err)

	e := NewEngine(NewFullRegistry())
	out := make([]*Result, 0, len(fixtures))
	for _, fx := range fixtures {
		exec, err := fx.Execution()
		require.NoError(t, err)
		out = append(out, e.Decode(exec))
	}
	return out
}

func TestDecode_CPMMFixture(t *testing.T) {
	results := decodeFixtures(t, "testdata/cpmm_swap.yaml")
	require.Len(t, results, 2)

	// 直接调用：swap + 两笔 token transfer
	direct := results[0]
	require.Len(t, direct.Records, 3)
	assert.Empty(t, direct.Events)

	swap := direct.Records[0]
	assert.Equal(t, consts.RaydiumCPMMProgramStr, swap.Instruction.ProgramID.String())
	assert.Equal(t, "swap_base_input", swap.Instruction.Variant)
	assert.Equal(t, "1000000", swap.Instruction.Fields.Text("amount_in"))
	assert.Equal(t, "950000", swap.Instruction.Fields.Text("minimum_amount_out"))
	require.NotNil(t, swap.Result)
	assert.Equal(t, 1, swap.Result.Version)
	assert.Equal(t, 0, swap.Result.Ordinal)
	assert.Equal(t, 9, swap.Result.LogIndex)
	assert.Equal(t, 1, swap.Result.Depth)
	assert.Equal(t, "GgBaCs3NCBuZN12kCJgAW63ydqohFkHEdfdEXBPzLHq", swap.Result.Fields.Text("pool_id"))
	assert.Equal(t, "987000", swap.Result.Fields.Text("output_amount"))
	assert.Equal(t, "true", swap.Result.Fields.Text("base_input"))

	row := swap.Row()
	assert.Equal(t, "GgBaCs3NCBuZN12kCJgAW63ydqohFkHEdfdEXBPzLHq", row.Fields["pool_state"])
	assert.Equal(t, "987000", row.Fields["result.output_amount"])

	assert.Equal(t, "Transfer", direct.Records[1].Instruction.Variant)
	assert.Equal(t, "1000000", direct.Records[1].Instruction.Fields.Text("amount"))
	assert.Equal(t, "987000", direct.Records[2].Instruction.Fields.Text("amount"))
	assert.Nil(t, direct.Records[1].Result)

	// 经路由调用的失败交易，SwapEvent 为 v2
	routed := results[1]
	require.Len(t, routed.Records, 1)
	rec := routed.Records[0]
	assert.Equal(t, 1, rec.Instruction.Ordinal)
	assert.Equal(t, 1, rec.Instruction.Depth)
	require.NotNil(t, rec.Result)
	assert.Equal(t, 2, rec.Result.Version)
	assert.Equal(t, 3, rec.Result.LogIndex)
	assert.Equal(t, "k7FaK87WHGVXzkaoHb7CdVPgkKDQhZ29VLDeBVbDfYn", rec.Result.Fields.Text("input_mint"))
	assert.Equal(t, "2500", rec.Result.Fields.Text("trade_fee"))
	assert.Equal(t, "false", rec.Result.Fields.Text("creator_fee_on_input"))
}
