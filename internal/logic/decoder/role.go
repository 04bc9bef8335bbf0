package decoder

import (
	"errors"
	"fmt"

	"dex-decoder-sol/internal/types"
)

var ErrMissingAccount = errors.New("decoder: account list too short for required role")

// Role 按位置给指令账户命名。FromEnd 时 Index 表示倒数第几个（1 为最后一个），
// 用于中间存在可选账户、尾部账户整体偏移的布局。
type Role struct {
	Name     string
	Index    int
	FromEnd  bool
	Optional bool
}

func Account(name string, index int) Role {
	return Role{Name: name, Index: index}
}

func OptionalAccount(name string, index int) Role {
	return Role{Name: name, Index: index, Optional: true}
}

func AccountFromEnd(name string, n int) Role {
	return Role{Name: name, Index: n, FromEnd: true}
}

func (r Role) position(total int) int {
	if r.FromEnd {
		return total - r.Index
	}
	return r.Index
}

// AccountRole 是解析后的一个角色，Present 为 false 表示可选账户缺失
type AccountRole struct {
	Name    string
	Key     types.Pubkey
	Present bool
}

// AccountMap 按角色声明顺序保存账户
type AccountMap []AccountRole

func (m AccountMap) Get(name string) (types.Pubkey, bool) {
	for _, a := range m {
		if a.Name == name {
			return a.Key, a.Present
		}
	}
	return types.Pubkey{}, false
}

// Map 转为 role → base58 地址，缺失的可选账户不输出
func (m AccountMap) Map() map[string]string {
	out := make(map[string]string, len(m))
	for _, a := range m {
		if a.Present {
			out[a.Name] = a.Key.String()
		}
	}
	return out
}

type Roles []Role

// MinAccounts 返回满足全部必需角色所需的最少账户数
func (rs Roles) MinAccounts() int {
	n := 0
	for _, r := range rs {
		if r.Optional {
			continue
		}
		need := r.Index + 1
		if r.FromEnd {
			need = r.Index
		}
		n = max(n, need)
	}
	return n
}

// Map 严格按位置映射账户：必需角色越界返回 ErrMissingAccount，可选角色越界记为缺失
func (rs Roles) Map(accounts []types.Pubkey) (AccountMap, error) {
	out := make(AccountMap, 0, len(rs))
	for _, r := range rs {
		pos := r.position(len(accounts))
		if pos < 0 || pos >= len(accounts) {
			if !r.Optional {
				return nil, fmt.Errorf("%w: role %s at %d, accounts=%d", ErrMissingAccount, r.Name, r.Index, len(accounts))
			}
			out = append(out, AccountRole{Name: r.Name})
			continue
		}
		out = append(out, AccountRole{Name: r.Name, Key: accounts[pos], Present: true})
	}
	return out, nil
}

func (rs Roles) validate() error {
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("duplicate role %q", r.Name)
		}
		seen[r.Name] = struct{}{}
		if r.Index < 0 || (r.FromEnd && r.Index == 0) {
			return fmt.Errorf("role %q: invalid index %d", r.Name, r.Index)
		}
	}
	return nil
}
