package dispatcher

import (
	"strconv"
	"sync"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/logic/correlator"
	"dex-decoder-sol/internal/types"

	"github.com/klauspost/compress/zstd"
	"google.golang.org/protobuf/types/known/structpb"
)

// partitionRoles 按优先级选取分区键：同一池子的记录落在同一分区，保证消费顺序
var partitionRoles = []string{
	"pool",
	"pool_state",
	"amm",
	"lb_pair",
	"whirlpool",
	"whirlpool_one",
	"bonding_curve",
	"mint",
}

// partitionKey 返回记录的分区键（32 字节地址），没有池子类账户时退化为程序地址
func partitionKey(row *correlator.Row) []byte {
	for _, role := range partitionRoles {
		for _, name := range [2]string{role, correlator.ResultPrefix + role} {
			if text, ok := row.Fields[name]; ok {
				if key, err := types.TryPubkeyFromBase58(text); err == nil {
					return key[:]
				}
			}
		}
	}
	if key, err := types.TryPubkeyFromBase58(row.ProgramID); err == nil {
		return key[:]
	}
	return nil
}

// RowStruct 将一条记录连同所属交易的元数据编码为 protobuf Struct。
// 64 位 ID 以字符串输出，避免 Struct 数值精度（float64）截断。
func RowStruct(exec *core.Execution, row *correlator.Row) (*structpb.Struct, error) {
	fields := make(map[string]any, len(row.Fields))
	for k, v := range row.Fields {
		fields[k] = v
	}

	m := map[string]any{
		"record_id":  strconv.FormatUint(core.BuildRecordID(exec.TxIndex, row.Ordinal, row.LogIndex), 10),
		"tx_index":   exec.TxIndex,
		"signature":  exec.SignatureString(),
		"succeeded":  exec.Succeeded,
		"program_id": row.ProgramID,
		"program":    row.Program,
		"variant":    row.Variant,
		"version":    row.Version,
		"depth":      row.Depth,
		"ordinal":    row.Ordinal,
		"log_index":  row.LogIndex,
		"fields":     fields,
	}
	if exec.TxCtx != nil {
		m["slot"] = strconv.FormatUint(exec.TxCtx.Slot, 10)
		m["block_time"] = exec.TxCtx.BlockTime
	}
	return structpb.NewStruct(m)
}

var (
	encoderOnce sync.Once
	encoder     *zstd.Encoder
)

// compress zstd 压缩消息体，Encoder.EncodeAll 可并发调用
func compress(data []byte) []byte {
	encoderOnce.Do(func() {
		// 只传入合法的固定选项，不会返回错误
		encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	})
	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
}
