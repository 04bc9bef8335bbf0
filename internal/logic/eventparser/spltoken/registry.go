package spltoken

import (
	"dex-decoder-sol/internal/consts"
	"dex-decoder-sol/internal/logic/decoder"

	sdktoken "github.com/blocto/solana-go-sdk/program/token"
)

// 合约源代码:
// SplToken: https://github.com/solana-program/token/blob/main/program/src/instruction.rs
// Token2022: https://github.com/solana-program/token-2022
//
// 两个程序前 25 条指令编号一致，共用同一张表。
var (
	TokenProgram = &decoder.Program{
		ID:           consts.TokenProgram,
		Name:         consts.ProgramSPLToken,
		Instructions: instructions,
		Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 1},
	}
	Token2022Program = &decoder.Program{
		ID:           consts.TokenProgram2022,
		Name:         consts.ProgramToken2022,
		Instructions: instructions,
		Log:          decoder.LogConvention{Mode: decoder.LogModeExplicit, DepthBase: 1},
	}
)

// Register 注册 SPL Token 与 Token-2022
func Register(r *decoder.Registry) {
	r.Register(TokenProgram)
	r.Register(Token2022Program)
}

func tag(ins sdktoken.Instruction) []byte {
	return []byte{byte(ins)}
}
