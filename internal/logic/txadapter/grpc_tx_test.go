package txadapter

import (
	"errors"
	"math/rand"
	"testing"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(b byte) []byte {
	k := make([]byte, types.PubkeyLen)
	k[0] = b
	return k
}

func height(h uint32) *uint32 { return &h }

// 账户：0 signer, 1 router, 2 amm, 3 token, 4 lookup-writable
func sampleTx() *pb.SubscribeUpdateTransactionInfo {
	cu := uint64(42000)
	return &pb.SubscribeUpdateTransactionInfo{
		Index: 7,
		Transaction: &pb.Transaction{
			Signatures: [][]byte{make([]byte, signatureLen)},
			Message: &pb.Message{
				Header:      &pb.MessageHeader{NumRequiredSignatures: 1},
				AccountKeys: [][]byte{key(10), key(11), key(12), key(13)},
				Instructions: []*pb.CompiledInstruction{
					{ProgramIdIndex: 1, Accounts: []byte{0, 4}, Data: []byte{1}},
					{ProgramIdIndex: 3, Accounts: []byte{0}, Data: []byte{2}},
				},
			},
		},
		Meta: &pb.TransactionStatusMeta{
			Fee:                     5000,
			ComputeUnitsConsumed:    &cu,
			LogMessages:             []string{"Program log: hi"},
			LoadedWritableAddresses: [][]byte{key(14)},
			InnerInstructions: []*pb.InnerInstructions{{
				Index: 0,
				Instructions: []*pb.InnerInstruction{
					{ProgramIdIndex: 2, Accounts: []byte{4}, Data: []byte{3}, StackHeight: height(2)},
					{ProgramIdIndex: 3, Data: []byte{4}, StackHeight: height(3)},
					{ProgramIdIndex: 3, Data: []byte{5}, StackHeight: height(3)},
					{ProgramIdIndex: 2, Data: []byte{6}, StackHeight: height(2)},
				},
			}},
		},
	}
}

func TestAdaptGrpcTx(t *testing.T) {
	txCtx := &core.TxContext{Slot: 99}
	exec, err := AdaptGrpcTx(txCtx, sampleTx())
	require.NoError(t, err)

	assert.Equal(t, uint32(7), exec.TxIndex)
	assert.Equal(t, uint64(5000), exec.Fee)
	require.NotNil(t, exec.ComputeUnits)
	assert.Equal(t, uint64(42000), *exec.ComputeUnits)
	assert.True(t, exec.Succeeded)
	assert.Equal(t, types.Pubkey(key(10)), exec.Signer)
	assert.Len(t, exec.Signers, 1)
	assert.Same(t, txCtx, exec.TxCtx)
	assert.Equal(t, []core.LogLine{{Index: 0, Text: "Program log: hi"}}, exec.Logs)

	require.Len(t, exec.Instructions, 6)
	want := []struct {
		data, height, parent int
		root                 bool
		ix, inner            uint16
	}{
		{1, 0, -1, true, 0, 0},
		{3, 1, 0, false, 0, 1},
		{4, 2, 1, false, 0, 2},
		{5, 2, 1, false, 0, 3},
		{6, 1, 0, false, 0, 4},
		{2, 0, -1, true, 1, 0},
	}
	for i, w := range want {
		n := exec.Instructions[i]
		assert.Equal(t, i, n.Ordinal)
		assert.Equal(t, []byte{byte(w.data)}, n.Data, "ordinal %d", i)
		assert.Equal(t, w.height, n.StackHeight, "ordinal %d", i)
		assert.Equal(t, w.parent, n.Parent, "ordinal %d", i)
		assert.Equal(t, w.root, n.IsRoot, "ordinal %d", i)
		assert.Equal(t, w.ix, n.IxIndex, "ordinal %d", i)
		assert.Equal(t, w.inner, n.InnerIndex, "ordinal %d", i)
	}
	// lookup table 中的账户
	assert.Equal(t, types.Pubkey(key(14)), exec.Instructions[0].Accounts[1])
}

func TestAdaptGrpcTx_LegacyStackHeight(t *testing.T) {
	tx := sampleTx()
	for _, inner := range tx.Meta.InnerInstructions[0].Instructions {
		inner.StackHeight = nil
	}
	exec, err := AdaptGrpcTx(&core.TxContext{}, tx)
	require.NoError(t, err)
	for _, n := range exec.Instructions {
		if n.IsRoot {
			continue
		}
		assert.Equal(t, 1, n.StackHeight)
		assert.Equal(t, 0, n.Parent)
	}
}

func TestAdaptGrpcTx_FailedTxStillAdapted(t *testing.T) {
	tx := sampleTx()
	tx.Meta.Err = &pb.TransactionError{Err: []byte{0x08}}
	exec, err := AdaptGrpcTx(&core.TxContext{}, tx)
	require.NoError(t, err)
	assert.False(t, exec.Succeeded)
	assert.Equal(t, "08", exec.ErrMessage)
}

func TestAdaptGrpcTx_StructuralAbsence(t *testing.T) {
	cases := map[string]func(tx *pb.SubscribeUpdateTransactionInfo){
		"missing meta":      func(tx *pb.SubscribeUpdateTransactionInfo) { tx.Meta = nil },
		"missing message":   func(tx *pb.SubscribeUpdateTransactionInfo) { tx.Transaction.Message = nil },
		"missing signature": func(tx *pb.SubscribeUpdateTransactionInfo) { tx.Transaction.Signatures = nil },
		"short key":         func(tx *pb.SubscribeUpdateTransactionInfo) { tx.Transaction.Message.AccountKeys[1] = []byte{1} },
		"bad account index": func(tx *pb.SubscribeUpdateTransactionInfo) {
			tx.Transaction.Message.Instructions[0].Accounts = []byte{9}
		},
		"bad program index": func(tx *pb.SubscribeUpdateTransactionInfo) {
			tx.Meta.InnerInstructions[0].Instructions[0].ProgramIdIndex = 30
		},
		"no signer": func(tx *pb.SubscribeUpdateTransactionInfo) {
			tx.Transaction.Message.Header.NumRequiredSignatures = 0
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			tx := sampleTx()
			mutate(tx)
			_, err := AdaptGrpcTx(&core.TxContext{}, tx)
			assert.True(t, errors.Is(err, ErrStructuralAbsence), "err=%v", err)
		})
	}
}

func TestIsValidGrpcTx(t *testing.T) {
	assert.False(t, IsValidGrpcTx(nil))
	assert.False(t, IsValidGrpcTx(&pb.SubscribeUpdateTransactionInfo{IsVote: true}))
	assert.True(t, IsValidGrpcTx(sampleTx()))
}

func randomTree(rnd *rand.Rand, depth int, next *byte) *TreeInstruction {
	*next++
	t := &TreeInstruction{Data: []byte{*next}}
	if depth < 4 {
		for i := rnd.Intn(3); i > 0; i-- {
			t.Children = append(t.Children, randomTree(rnd, depth+1, next))
		}
	}
	return t
}

// 展平结果需满足：父节点在前、兄弟节点有序、深度与父节点一致
func TestFlattenTree_DepthFirstProperty(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		var next byte
		var roots []*TreeInstruction
		for i := 1 + rnd.Intn(3); i > 0; i-- {
			roots = append(roots, randomTree(rnd, 0, &next))
		}

		nodes := FlattenTree(roots)
		byData := make(map[byte]*core.InstructionNode, len(nodes))
		for i, n := range nodes {
			require.Equal(t, i, n.Ordinal)
			byData[n.Data[0]] = n
			if n.IsRoot {
				assert.Equal(t, -1, n.Parent)
				assert.Zero(t, n.StackHeight)
				continue
			}
			require.Less(t, n.Parent, n.Ordinal)
			parent := nodes[n.Parent]
			assert.Equal(t, parent.StackHeight+1, n.StackHeight)
			assert.Equal(t, parent.IxIndex, n.IxIndex)
		}

		var check func(tr *TreeInstruction)
		check = func(tr *TreeInstruction) {
			p := byData[tr.Data[0]]
			prev := p.Ordinal
			for _, c := range tr.Children {
				cn := byData[c.Data[0]]
				assert.Equal(t, p.Ordinal, cn.Parent)
				assert.Greater(t, cn.Ordinal, prev)
				prev = cn.Ordinal
				check(c)
			}
		}
		for _, r := range roots {
			check(r)
		}
	}
}
