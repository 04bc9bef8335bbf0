package pumpfun

import (
	"encoding/hex"
	"testing"

	"dex-decoder-sol/internal/logic/decoder"
	dt "dex-decoder-sol/internal/logic/decoder/decodertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminators(t *testing.T) {
	assert.Equal(t, "181ec828051c0777", hex.EncodeToString(Create))
	assert.Equal(t, "66063d1201daebea", hex.EncodeToString(Buy))
	assert.Equal(t, "33e685a4017f83ad", hex.EncodeToString(Sell))
	assert.Equal(t, "9beae792ec9ea21e", hex.EncodeToString(Migrate))
	assert.Equal(t, "bddb7fd34ee661ee", hex.EncodeToString(TradeEvent))
	assert.Equal(t, "1b72a94ddeeb6376", hex.EncodeToString(CreateEvent))
	assert.Equal(t, "5f72619cd42e9808", hex.EncodeToString(CompleteEvent))
	assert.Equal(t, "bde95db95c94ea94", hex.EncodeToString(CompletePumpAmmMigrationEvent))
}

func decode(t *testing.T, data []byte, accounts int) *decoder.DecodedInstruction {
	t.Helper()
	ix, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, data, dt.Keys(accounts)))
	require.NoError(t, err)
	return ix
}

func TestCreate(t *testing.T) {
	creator := dt.Key(0xcc)
	data := dt.New(Create).Str("Doge Moon").Str("DMOON").Str("https://ipfs.io/x").Key(creator)
	ix := decode(t, data, 14)
	assert.Equal(t, "create", ix.Variant)
	assert.Equal(t, map[string]string{
		"name": "Doge Moon", "symbol": "DMOON", "uri": "https://ipfs.io/x", "creator": creator.String(),
	}, ix.Fields.Map())
	user, _ := ix.Accounts.Get("user")
	assert.Equal(t, dt.Key(8), user)

	legacy := decode(t, dt.New(Create).Str("a").Str("b").Str("c"), 14)
	assert.Equal(t, "a", legacy.Fields.Text("name"))
	v, ok := legacy.Fields.Get("creator")
	require.True(t, ok)
	assert.True(t, v.IsAbsent())

	// 长度前缀越界
	bad := dt.New(Create).U32(1 << 20).Str("b").Str("c")
	_, err := Program.DecodeInstruction(dt.Node(Program.ID, 0, 0, bad, dt.Keys(14)))
	assert.ErrorIs(t, err, decoder.ErrNoMatch)
}

func TestBuySell(t *testing.T) {
	buy := decode(t, dt.New(Buy).U64(1_000_000).U64(50_000_000), 12)
	assert.Equal(t, map[string]string{"amount": "1000000", "max_sol_cost": "50000000"}, buy.Fields.Map())
	v, _ := buy.Fields.Get("track_volume")
	assert.True(t, v.IsAbsent())

	// track_volume 为单字节，false 也是有效值
	tracked := decode(t, dt.New(Buy).U64(1).U64(2).Bool(true), 12)
	assert.Equal(t, "true", tracked.Fields.Text("track_volume"))

	untracked := decode(t, dt.New(Buy).U64(1).U64(2).Bool(false), 12)
	assert.Equal(t, "false", untracked.Fields.Text("track_volume"))

	sell := decode(t, dt.New(Sell).U64(3).U64(4), 12)
	assert.Equal(t, map[string]string{"amount": "3", "min_sol_output": "4"}, sell.Fields.Map())
	assert.True(t, sell.ExpectsResult("TradeEvent"))
	mint, _ := sell.Accounts.Get("mint")
	assert.Equal(t, dt.Key(3), mint)
}

func TestMigrate(t *testing.T) {
	ix := decode(t, dt.New(Migrate), 24)
	assert.Equal(t, "migrate", ix.Variant)
	assert.Empty(t, ix.Fields)
	pool, _ := ix.Accounts.Get("pool")
	assert.Equal(t, dt.Key(10), pool)
}

func TestTradeEventVersions(t *testing.T) {
	mint, user, fee, creator := dt.Key(1), dt.Key(2), dt.Key(3), dt.Key(4)
	v1 := dt.New(TradeEvent).Key(mint).U64(1_000_000_000).U64(35_000_000_000).Bool(true).Key(user).
		I64(1735689600).U64(30_000_000_000).U64(1_073_000_000_000_000)
	v2 := append(dt.Payload{}, v1...).U64(1).U64(2).Key(fee).U64(95).U64(9_500_000).Key(creator).U64(5).U64(500_000)
	v3 := append(dt.Payload{}, v2...).Bool(true).U64(7).U64(8).U64(9).I64(-1)

	node := func(data dt.Payload) *decoder.DecodedEvent {
		n := dt.Node(Program.ID, 5, 2, data.SelfCPI(), dt.Keys(1))
		require.True(t, Program.IsSelfCPIEvent(n.Data))
		ev, err := Program.DecodeSelfCPIEvent(n)
		require.NoError(t, err)
		assert.Equal(t, 5, ev.Ordinal)
		assert.Equal(t, 2, ev.Depth)
		assert.Equal(t, decoder.SourceSelfCPI, ev.Source)
		return ev
	}

	ev := node(v1)
	assert.Equal(t, 1, ev.Version)
	assert.Equal(t, "1073000000000000", ev.Fields.Text("virtual_token_reserves"))
	assert.Equal(t, "", ev.Fields.Text("creator_fee"))

	ev = node(v2)
	assert.Equal(t, 2, ev.Version)
	assert.Equal(t, creator.String(), ev.Fields.Text("creator"))
	assert.Equal(t, "500000", ev.Fields.Text("creator_fee"))
	assert.Equal(t, "", ev.Fields.Text("track_volume"))

	ev = node(v3)
	assert.Equal(t, 3, ev.Version)
	assert.Equal(t, "-1", ev.Fields.Text("last_update_timestamp"))
	assert.Len(t, ev.Fields.Map(), 21)
}

func TestCreateAndCompleteEvents(t *testing.T) {
	mint, curve, user := dt.Key(1), dt.Key(2), dt.Key(3)
	v1 := dt.New(CreateEvent).Str("n").Str("s").Str("u").Key(mint).Key(curve).Key(user)
	ev, err := Program.DecodeEvent(v1, decoder.SourceSelfCPI)
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Version)
	assert.Equal(t, user.String(), ev.Fields.Text("user"))

	v2 := append(dt.Payload{}, v1...).Key(user).I64(1).U64(2).U64(3).U64(4).U64(1_000_000_000_000_000)
	ev, err = Program.DecodeEvent(v2, decoder.SourceSelfCPI)
	require.NoError(t, err)
	assert.Equal(t, 2, ev.Version)
	assert.Equal(t, "1000000000000000", ev.Fields.Text("token_total_supply"))

	complete := dt.New(CompleteEvent).Key(user).Key(mint).Key(curve).I64(42)
	ev, err = Program.DecodeEvent(complete, decoder.SourceSelfCPI)
	require.NoError(t, err)
	assert.Equal(t, "CompleteEvent", ev.Variant)
	assert.Equal(t, "42", ev.Fields.Text("timestamp"))

	pool := dt.Key(9)
	migration := dt.New(CompletePumpAmmMigrationEvent).Key(user).Key(mint).U64(1).U64(2).U64(3).Key(curve).I64(4).Key(pool)
	ev, err = Program.DecodeEvent(migration, decoder.SourceSelfCPI)
	require.NoError(t, err)
	assert.Equal(t, pool.String(), ev.Fields.Text("pool"))
}
