package pumpfun

import (
	"fmt"

	"dex-decoder-sol/internal/logic/decoder"
	"dex-decoder-sol/internal/types"

	"github.com/near/borsh-go"
)

// createArgs create 指令参数（creator 字段在 2025-05 升级后加入）
type createArgs struct {
	Name    string
	Symbol  string
	Uri     string
	Creator types.Pubkey
}

type legacyCreateArgs struct {
	Name   string
	Symbol string
	Uri    string
}

const createStringCount = 3

// decodeCreateArgs 使用 borsh 解析 create 参数，旧版本没有 creator 时记为缺失
func decodeCreateArgs(args []byte) (decoder.Fields, error) {
	// 先校验三个字符串的长度前缀都落在数据范围内
	r := decoder.NewReader(args)
	for i := 0; i < createStringCount; i++ {
		if _, err := r.BorshString(); err != nil {
			return nil, fmt.Errorf("create args string #%d: %w", i, err)
		}
	}

	var a createArgs
	if r.Remaining() >= types.PubkeyLen {
		if err := borsh.Deserialize(&a, args); err != nil {
			return nil, fmt.Errorf("borsh create args: %w", err)
		}
		return decoder.Fields{
			{Name: "name", Value: decoder.StringValue(a.Name)},
			{Name: "symbol", Value: decoder.StringValue(a.Symbol)},
			{Name: "uri", Value: decoder.StringValue(a.Uri)},
			{Name: "creator", Value: decoder.PubkeyValue(a.Creator)},
		}, nil
	}

	var legacy legacyCreateArgs
	if err := borsh.Deserialize(&legacy, args); err != nil {
		return nil, fmt.Errorf("borsh legacy create args: %w", err)
	}
	return decoder.Fields{
		{Name: "name", Value: decoder.StringValue(legacy.Name)},
		{Name: "symbol", Value: decoder.StringValue(legacy.Symbol)},
		{Name: "uri", Value: decoder.StringValue(legacy.Uri)},
		{Name: "creator", Value: decoder.Absent()},
	}, nil
}
