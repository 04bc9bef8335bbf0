package decoder

import (
	"fmt"

	"dex-decoder-sol/internal/types"
)

// Registry 保存 programID → Program 的静态配置，初始化完成后只读，可并发查询
type Registry struct {
	programs map[types.Pubkey]*Program
	order    []*Program
}

func NewRegistry() *Registry {
	return &Registry{programs: make(map[types.Pubkey]*Program)}
}

// Register 注册程序配置，重复注册或配置错误直接 panic
func (r *Registry) Register(p *Program) {
	if err := p.validate(); err != nil {
		panic(err)
	}
	if _, ok := r.programs[p.ID]; ok {
		panic(fmt.Errorf("program %s (%s) registered twice", p.Name, p.ID))
	}
	r.programs[p.ID] = p
	r.order = append(r.order, p)
}

func (r *Registry) Lookup(id types.Pubkey) *Program {
	return r.programs[id]
}

// Programs 按注册顺序返回
func (r *Registry) Programs() []*Program {
	return r.order
}

// Filter 返回只包含指定名称程序的新 Registry，names 为空时返回自身
func (r *Registry) Filter(names []string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}
	out := NewRegistry()
	for _, name := range names {
		var found *Program
		for _, p := range r.order {
			if p.Name == name {
				found = p
				break
			}
		}
		if found == nil {
			return nil, fmt.Errorf("unknown program %q", name)
		}
		if _, ok := out.programs[found.ID]; !ok {
			out.programs[found.ID] = found
			out.order = append(out.order, found)
		}
	}
	return out, nil
}

// ProgramIDs 返回 base58 程序地址，用于 gRPC 订阅过滤
func (r *Registry) ProgramIDs() []string {
	ids := make([]string, 0, len(r.order))
	for _, p := range r.order {
		ids = append(ids, p.ID.String())
	}
	return ids
}
