package txadapter

import (
	"encoding/hex"
	"errors"
	"fmt"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
)

// ErrStructuralAbsence 交易缺少解码必需的结构（meta / message / 签名 / 账户），整笔丢弃
var ErrStructuralAbsence = errors.New("structural absence")

const signatureLen = 64

// IsValidGrpcTx 过滤空交易与投票交易，其余（包括执行失败的交易）都进入适配
func IsValidGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) bool {
	return tx != nil && !tx.IsVote
}

// buildFullAccountKeys 构造交易中完整的账户 Pubkey 列表。
// 拼接 message.accountKeys 与 Address Lookup Table 中的 writable / readonly 地址，
// 供后续通过 accountIndex 索引。
func buildFullAccountKeys(
	accountKeys, loadedWritable, loadedReadonly [][]byte,
) ([]types.Pubkey, error) {
	pubkeys := make([]types.Pubkey, 0, len(accountKeys)+len(loadedWritable)+len(loadedReadonly))

	for _, part := range []struct {
		name string
		keys [][]byte
	}{
		{"accountKeys", accountKeys},
		{"loadedWritable", loadedWritable},
		{"loadedReadonly", loadedReadonly},
	} {
		for i, b := range part.keys {
			key, err := types.PubkeyFromBytes(b)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid pubkey in %s at index %d: %v", ErrStructuralAbsence, part.name, i, err)
			}
			pubkeys = append(pubkeys, key)
		}
	}
	return pubkeys, nil
}

// resolveAccounts 将账户索引映射为 Pubkey，索引越界视为结构缺失
func resolveAccounts(accountKeys []types.Pubkey, indexes []byte) ([]types.Pubkey, error) {
	accounts := make([]types.Pubkey, len(indexes))
	for i, idx := range indexes {
		if int(idx) >= len(accountKeys) {
			return nil, fmt.Errorf("%w: account index %d out of range %d", ErrStructuralAbsence, idx, len(accountKeys))
		}
		accounts[i] = accountKeys[idx]
	}
	return accounts, nil
}

func programAt(accountKeys []types.Pubkey, idx uint32) (types.Pubkey, error) {
	if int(idx) >= len(accountKeys) {
		return types.Pubkey{}, fmt.Errorf("%w: program index %d out of range %d", ErrStructuralAbsence, idx, len(accountKeys))
	}
	return accountKeys[idx], nil
}

// buildInstructionNodes 按执行顺序展平主指令与 inner 指令：
//   - 主指令 StackHeight = 0，InnerIndex = 0；
//   - inner 指令的 StackHeight 取链上 stack_height - 1，旧区块缺失时按 1 处理；
//   - Parent 为之前最近一条 StackHeight 更小的指令。
func buildInstructionNodes(
	tx *pb.SubscribeUpdateTransactionInfo,
	accountKeys []types.Pubkey,
) ([]*core.InstructionNode, error) {
	rawInstructions := tx.Transaction.Message.Instructions
	rawInners := tx.Meta.InnerInstructions

	nodes := make([]*core.InstructionNode, 0, max(len(rawInstructions)*2, 16))
	innerIndex := 0

	for i, inst := range rawInstructions {
		programID, err := programAt(accountKeys, inst.ProgramIdIndex)
		if err != nil {
			return nil, err
		}
		accounts, err := resolveAccounts(accountKeys, inst.Accounts)
		if err != nil {
			return nil, err
		}
		rootOrdinal := len(nodes)
		nodes = append(nodes, &core.InstructionNode{
			Ordinal:   rootOrdinal,
			IxIndex:   uint16(i),
			Parent:    -1,
			IsRoot:    true,
			ProgramID: programID,
			Accounts:  accounts,
			Data:      inst.Data,
		})

		// inner 列表按主指令索引递增排列，顺序匹配即可
		for innerIndex < len(rawInners) && int(rawInners[innerIndex].Index) < i {
			innerIndex++
		}
		if innerIndex >= len(rawInners) || int(rawInners[innerIndex].Index) != i {
			continue
		}
		for j, inner := range rawInners[innerIndex].Instructions {
			programID, err := programAt(accountKeys, inner.ProgramIdIndex)
			if err != nil {
				return nil, err
			}
			accounts, err := resolveAccounts(accountKeys, inner.Accounts)
			if err != nil {
				return nil, err
			}
			height := 1
			if inner.StackHeight != nil && *inner.StackHeight > 1 {
				height = int(*inner.StackHeight) - 1
			}
			nodes = append(nodes, &core.InstructionNode{
				Ordinal:     len(nodes),
				IxIndex:     uint16(i),
				InnerIndex:  uint16(j + 1),
				Parent:      parentOf(nodes, rootOrdinal, height),
				StackHeight: height,
				ProgramID:   programID,
				Accounts:    accounts,
				Data:        inner.Data,
			})
		}
		innerIndex++
	}
	return nodes, nil
}

// parentOf 从后向前找到第一条深度更小的指令，最远回溯到所属主指令
func parentOf(nodes []*core.InstructionNode, rootOrdinal, height int) int {
	for k := len(nodes) - 1; k > rootOrdinal; k-- {
		if nodes[k].StackHeight < height {
			return k
		}
	}
	return rootOrdinal
}

// AdaptGrpcTx 将 gRPC 推送的交易转换为 Execution。
// 流程：
//  1. 校验 meta / message / 签名；
//  2. 构建 accountKeys（含 Address Lookup）；
//  3. 展平主指令与 inner 指令；
//  4. 填充执行元数据与日志；panic 会被 recover。
func AdaptGrpcTx(txCtx *core.TxContext, tx *pb.SubscribeUpdateTransactionInfo) (_ *core.Execution, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("AdaptGrpcTx panic: %v", r)
		}
	}()

	// 1. 结构校验
	if tx == nil || tx.Transaction == nil || tx.Transaction.Message == nil {
		return nil, fmt.Errorf("%w: missing transaction message", ErrStructuralAbsence)
	}
	if tx.Meta == nil {
		return nil, fmt.Errorf("%w: missing transaction meta", ErrStructuralAbsence)
	}
	if len(tx.Transaction.Signatures) == 0 || len(tx.Transaction.Signatures[0]) != signatureLen {
		return nil, fmt.Errorf("%w: missing or invalid signature", ErrStructuralAbsence)
	}

	// 2. 账户列表
	accountKeys, err := buildFullAccountKeys(
		tx.Transaction.Message.AccountKeys,
		tx.Meta.LoadedWritableAddresses,
		tx.Meta.LoadedReadonlyAddresses,
	)
	if err != nil {
		return nil, err
	}
	signerCount := 0
	if h := tx.Transaction.Message.Header; h != nil {
		signerCount = int(h.NumRequiredSignatures)
	}
	if signerCount == 0 || len(accountKeys) < signerCount {
		return nil, fmt.Errorf("%w: invalid signer count %d", ErrStructuralAbsence, signerCount)
	}

	// 3. 指令
	nodes, err := buildInstructionNodes(tx, accountKeys)
	if err != nil {
		return nil, err
	}

	// 4. 元数据
	signers := make([]types.Pubkey, signerCount)
	copy(signers, accountKeys[:signerCount])

	exec := &core.Execution{
		TxCtx:        txCtx,
		TxIndex:      uint32(tx.Index),
		Signature:    tx.Transaction.Signatures[0],
		Signer:       signers[0],
		Signers:      signers,
		Fee:          tx.Meta.Fee,
		ComputeUnits: tx.Meta.ComputeUnitsConsumed,
		Succeeded:    tx.Meta.Err == nil,
		Instructions: nodes,
	}
	if tx.Meta.Err != nil {
		exec.ErrMessage = hex.EncodeToString(tx.Meta.Err.Err)
	}
	if !tx.Meta.LogMessagesNone {
		exec.Logs = core.LogsFromStrings(tx.Meta.LogMessages)
	}
	return exec, nil
}
