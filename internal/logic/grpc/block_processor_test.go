package grpc

import (
	"encoding/binary"
	"testing"

	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/eventparser"
	"dex-decoder-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyBytes(b byte) []byte {
	k := make([]byte, types.PubkeyLen)
	k[0] = b
	return k
}

// transferTx 账户：0 signer, 1 source, 2 destination, 3 Token 程序
func transferTx(index uint64, amount uint64) *pb.SubscribeUpdateTransactionInfo {
	data := binary.LittleEndian.AppendUint64([]byte{3}, amount)
	return &pb.SubscribeUpdateTransactionInfo{
		Index: index,
		Transaction: &pb.Transaction{
			Signatures: [][]byte{make([]byte, 64)},
			Message: &pb.Message{
				Header:      &pb.MessageHeader{NumRequiredSignatures: 1},
				AccountKeys: [][]byte{keyBytes(1), keyBytes(2), keyBytes(3), consts.TokenProgram[:]},
				Instructions: []*pb.CompiledInstruction{
					{ProgramIdIndex: 3, Accounts: []byte{1, 2, 0}, Data: data},
				},
			},
		},
		Meta: &pb.TransactionStatusMeta{
			Fee: 5000,
			LogMessages: []string{
				"Program " + consts.TokenProgramStr + " invoke [1]",
				"Program log: Instruction: Transfer",
				"Program " + consts.TokenProgramStr + " success",
			},
		},
	}
}

func TestDecodeBlock(t *testing.T) {
	require.NoError(t, eventparser.Init(nil))

	var hash types.Hash
	hash[0] = 9
	block := &pb.SubscribeUpdateBlock{
		Slot:        1234,
		ParentSlot:  1233,
		Blockhash:   hash.String(),
		BlockTime:   &pb.UnixTimestamp{Timestamp: 1700000000},
		BlockHeight: &pb.BlockHeight{BlockHeight: 1000},
	}
	vote := transferTx(0, 1)
	vote.IsVote = true
	noMeta := transferTx(2, 1)
	noMeta.Meta = nil

	txCtx := BuildTxContext(block)
	assert.Equal(t, hash, txCtx.BlockHash)
	assert.Equal(t, int64(1700000000), txCtx.BlockTime)
	assert.Equal(t, uint64(1000), txCtx.BlockHeight)

	res := DecodeBlock(txCtx, []*pb.SubscribeUpdateTransactionInfo{vote, transferTx(1, 77), noMeta, transferTx(3, 88)})
	assert.Equal(t, 4, res.TotalTxs)
	assert.Equal(t, 3, res.ValidTxs)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, 2, res.Rows)
	require.Len(t, res.Txs, 2)

	first := res.Txs[0]
	assert.Equal(t, uint32(1), first.Exec.TxIndex)
	require.Len(t, first.Rows, 1)
	assert.Equal(t, "Transfer", first.Rows[0].Variant)
	assert.Equal(t, "77", first.Rows[0].Fields["amount"])
	assert.Equal(t, "88", res.Txs[1].Rows[0].Fields["amount"])
}

func TestBuildTxContext_BadHash(t *testing.T) {
	txCtx := BuildTxContext(&pb.SubscribeUpdateBlock{Slot: 5, Blockhash: "bad"})
	assert.Equal(t, types.Hash{}, txCtx.BlockHash)
	assert.Equal(t, uint64(5), txCtx.Slot)
	assert.Zero(t, txCtx.BlockTime)
}
