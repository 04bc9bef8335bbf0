package decoder

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"dex-decoder-sol/internal/types"
)

// ErrNoMatch 表示数据不匹配任何已注册的 discriminator，或匹配后数据不足 / 账户不足。
// 调用方只需跳过该条指令或事件。
var ErrNoMatch = errors.New("decoder: no match")

// ArgsDecoder 自定义参数解码，args 为去掉 discriminator 后的数据
type ArgsDecoder func(args []byte) (Fields, error)

// InstructionSpec 描述一种指令形态
type InstructionSpec struct {
	Name          string
	Discriminator []byte
	Args          Layout
	Decode        ArgsDecoder // 非空时替代 Args
	MinArgs       int         // 使用 Decode 时参数的最小长度
	Accounts      Roles
	MinAccounts   int      // 额外的最少账户数约束（AccountFromEnd 布局使用）
	Results       []string // 可与之配对的结果事件名
}

// MinLen 返回匹配该形态所需的最小数据长度
func (s *InstructionSpec) MinLen() int {
	if s.Decode != nil {
		return len(s.Discriminator) + s.MinArgs
	}
	return len(s.Discriminator) + s.Args.MinSize()
}

func (s *InstructionSpec) minAccounts() int {
	return max(s.MinAccounts, s.Accounts.MinAccounts())
}

// InstructionMatch 是一次成功的指令解码
type InstructionMatch struct {
	Spec     *InstructionSpec
	Fields   Fields
	Accounts AccountMap
}

// InstructionTable 是一个程序的指令 discriminator 表，有序、注册后只读
type InstructionTable struct {
	entries []*InstructionSpec
}

// NewInstructionTable 构造指令表，配置错误（discriminator 互为前缀、字段重名等）直接 panic
func NewInstructionTable(specs ...InstructionSpec) *InstructionTable {
	t := &InstructionTable{entries: make([]*InstructionSpec, 0, len(specs))}
	discs := make([][]byte, 0, len(specs))
	for i := range specs {
		s := specs[i]
		if err := s.Args.validate(); err != nil {
			panic(fmt.Errorf("instruction %s: %w", s.Name, err))
		}
		if err := s.Accounts.validate(); err != nil {
			panic(fmt.Errorf("instruction %s: %w", s.Name, err))
		}
		discs = append(discs, s.Discriminator)
		t.entries = append(t.entries, &s)
	}
	if err := checkDiscriminators(discs); err != nil {
		panic(err)
	}
	return t
}

func (t *InstructionTable) Specs() []*InstructionSpec {
	return t.entries
}

func (t *InstructionTable) discriminators() [][]byte {
	out := make([][]byte, len(t.entries))
	for i, s := range t.entries {
		out[i] = s.Discriminator
	}
	return out
}

// Decode 依次尝试表中各形态，第一个 discriminator 匹配的形态决定结果
func (t *InstructionTable) Decode(data []byte, accounts []types.Pubkey) (*InstructionMatch, error) {
	for _, s := range t.entries {
		if !bytes.HasPrefix(data, s.Discriminator) {
			continue
		}

		// 1. 长度校验
		if len(data) < s.MinLen() {
			return nil, fmt.Errorf("%w: %s: %w: len=%d, min=%d", ErrNoMatch, s.Name, ErrShortBuffer, len(data), s.MinLen())
		}
		if len(accounts) < s.minAccounts() {
			return nil, fmt.Errorf("%w: %s: %w: accounts=%d, min=%d", ErrNoMatch, s.Name, ErrMissingAccount, len(accounts), s.minAccounts())
		}

		// 2. 参数
		args := data[len(s.Discriminator):]
		var (
			fields Fields
			err    error
		)
		if s.Decode != nil {
			fields, err = s.Decode(args)
		} else {
			fields, err = s.Args.Decode(args)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoMatch, s.Name, err)
		}

		// 3. 账户角色
		accts, err := s.Accounts.Map(accounts)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrNoMatch, s.Name, err)
		}
		return &InstructionMatch{Spec: s, Fields: fields, Accounts: accts}, nil
	}
	return nil, ErrNoMatch
}

// EventSpec 描述一种事件。Versions 按从旧到新排列，新版本只在尾部追加字段。
type EventSpec struct {
	Name          string
	Discriminator []byte
	Versions      []Layout
}

func (s *EventSpec) latest() Layout {
	return s.Versions[len(s.Versions)-1]
}

// EventMatch 是一次成功的事件解码，Version 从 1 开始
type EventMatch struct {
	Spec    *EventSpec
	Version int
	Fields  Fields
}

// EventTable 是一个程序的事件 discriminator 表
type EventTable struct {
	entries []*EventSpec
}

func NewEventTable(specs ...EventSpec) *EventTable {
	t := &EventTable{entries: make([]*EventSpec, 0, len(specs))}
	discs := make([][]byte, 0, len(specs))
	for i := range specs {
		s := specs[i]
		if len(s.Versions) == 0 {
			panic(fmt.Errorf("event %s: no layout", s.Name))
		}
		for v, l := range s.Versions {
			if err := l.validate(); err != nil {
				panic(fmt.Errorf("event %s v%d: %w", s.Name, v+1, err))
			}
			if v > 0 && !l.hasPrefix(s.Versions[v-1]) {
				panic(fmt.Errorf("event %s v%d: layout must extend v%d", s.Name, v+1, v))
			}
		}
		discs = append(discs, s.Discriminator)
		t.entries = append(t.entries, &s)
	}
	if err := checkDiscriminators(discs); err != nil {
		panic(err)
	}
	return t
}

func (t *EventTable) Specs() []*EventSpec {
	return t.entries
}

// Decode 匹配 discriminator 后从最新版本开始尝试，数据长度不足时回退到旧版本；
// 旧版本中不存在的字段记为缺失。其他解码错误（如非法 bool 标志）直接视为不匹配。
func (t *EventTable) Decode(payload []byte) (*EventMatch, error) {
	for _, s := range t.entries {
		if !bytes.HasPrefix(payload, s.Discriminator) {
			continue
		}
		body := payload[len(s.Discriminator):]
		latest := s.latest()

		var lastErr error
		for v := len(s.Versions) - 1; v >= 0; v-- {
			fields, err := s.Versions[v].Decode(body)
			if err != nil {
				lastErr = err
				if errors.Is(err, ErrShortBuffer) {
					continue
				}
				break
			}
			for _, spec := range latest[len(s.Versions[v]):] {
				fields = append(fields, Field{Name: spec.Name, Value: Absent()})
			}
			return &EventMatch{Spec: s, Version: v + 1, Fields: fields}, nil
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrNoMatch, s.Name, lastErr)
	}
	return nil, ErrNoMatch
}

// checkDiscriminators 要求同一张表内的 discriminator 非空且两两不互为前缀
func checkDiscriminators(discs [][]byte) error {
	for i, a := range discs {
		if len(a) == 0 {
			return fmt.Errorf("discriminator #%d is empty", i)
		}
		for j := i + 1; j < len(discs); j++ {
			b := discs[j]
			if bytes.HasPrefix(a, b) || bytes.HasPrefix(b, a) {
				return fmt.Errorf("discriminator %s conflicts with %s", hex.EncodeToString(a), hex.EncodeToString(b))
			}
		}
	}
	return nil
}
