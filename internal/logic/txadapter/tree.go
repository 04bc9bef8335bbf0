package txadapter

import (
	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/types"
)

// TreeInstruction 是显式嵌套的指令树，children 按执行顺序排列
type TreeInstruction struct {
	ProgramID types.Pubkey
	Accounts  []types.Pubkey
	Data      []byte
	Children  []*TreeInstruction
}

// FlattenTree 先序深度优先展平指令树，
// 父节点总在子节点之前，兄弟节点保持原有顺序。
func FlattenTree(roots []*TreeInstruction) []*core.InstructionNode {
	var nodes []*core.InstructionNode
	for i, root := range roots {
		innerIndex := uint16(0)
		var visit func(ins *TreeInstruction, height, parent int)
		visit = func(ins *TreeInstruction, height, parent int) {
			if ins == nil {
				return
			}
			n := &core.InstructionNode{
				Ordinal:     len(nodes),
				IxIndex:     uint16(i),
				Parent:      parent,
				StackHeight: height,
				IsRoot:      height == 0,
				ProgramID:   ins.ProgramID,
				Accounts:    ins.Accounts,
				Data:        ins.Data,
			}
			if height > 0 {
				innerIndex++
				n.InnerIndex = innerIndex
			}
			nodes = append(nodes, n)
			for _, child := range ins.Children {
				visit(child, height+1, n.Ordinal)
			}
		}
		visit(root, 0, -1)
	}
	return nodes
}
