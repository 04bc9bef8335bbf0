package decoder

import (
	"fmt"

	"dex-decoder-sol/internal/types"
)

// FieldKind 描述字段的线上编码方式
type FieldKind uint8

const (
	FieldBool FieldKind = iota
	FieldU8
	FieldU16
	FieldU32
	FieldU64
	FieldI32
	FieldI64
	FieldU128
	FieldPubkey
	FieldBytes        // 定长字节数组，长度由 Size 指定
	FieldString       // borsh 字符串：u32 长度 + UTF-8
	FieldOptionU64    // 1 字节标志位 + u64
	FieldOptionBool   // 1 字节标志位 + bool
	FieldOptionPubkey // 1 字节标志位 + pubkey
)

// FieldSpec 声明布局中的一个字段
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Size     int  // 仅 FieldBytes 使用
	Trailing bool // 尾部可选字段：数据在此处结束时记为缺失而不是失败
}

func Bool(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldBool} }
func U8(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldU8} }
func U16(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldU16} }
func U32(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldU32} }
func U64(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldU64} }
func I32(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldI32} }
func I64(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldI64} }
func U128(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldU128} }
func Key(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldPubkey} }
func Str(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldString} }
func OptionU64(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldOptionU64} }
func OptionBool(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldOptionBool} }
func OptionPubkey(name string) FieldSpec { return FieldSpec{Name: name, Kind: FieldOptionPubkey} }

func Bytes(name string, size int) FieldSpec {
	return FieldSpec{Name: name, Kind: FieldBytes, Size: size}
}

// Trailing 将字段标记为尾部可选
func Trailing(spec FieldSpec) FieldSpec {
	spec.Trailing = true
	return spec
}

// MinSize 返回字段至少占用的字节数（变长字段按最短编码计算）
func (s FieldSpec) MinSize() int {
	switch s.Kind {
	case FieldBool, FieldU8:
		return 1
	case FieldU16:
		return 2
	case FieldU32, FieldI32, FieldString:
		return 4
	case FieldU64, FieldI64:
		return 8
	case FieldU128:
		return 16
	case FieldPubkey:
		return types.PubkeyLen
	case FieldBytes:
		return s.Size
	case FieldOptionU64, FieldOptionBool, FieldOptionPubkey:
		return 1
	}
	return 0
}

func (s FieldSpec) read(r *Reader) (Value, error) {
	switch s.Kind {
	case FieldBool:
		b, err := r.Bool()
		return BoolValue(b), err
	case FieldU8:
		n, err := r.U8()
		return U8Value(n), err
	case FieldU16:
		n, err := r.U16()
		return U16Value(n), err
	case FieldU32:
		n, err := r.U32()
		return U32Value(n), err
	case FieldU64:
		n, err := r.U64()
		return U64Value(n), err
	case FieldI32:
		n, err := r.U32()
		return I32Value(int32(n)), err
	case FieldI64:
		n, err := r.U64()
		return I64Value(int64(n)), err
	case FieldU128:
		lo, hi, err := r.U128()
		return U128Value(lo, hi), err
	case FieldPubkey:
		k, err := r.Pubkey()
		return PubkeyValue(k), err
	case FieldBytes:
		b, err := r.Bytes(s.Size)
		return BytesValue(b), err
	case FieldString:
		str, err := r.BorshString()
		return StringValue(str), err
	case FieldOptionU64, FieldOptionBool, FieldOptionPubkey:
		return s.readOption(r)
	}
	return Value{}, fmt.Errorf("decoder: unknown field kind %d for %q", s.Kind, s.Name)
}

// readOption 读取 borsh Option：0 为 None（记为缺失），1 为 Some
func (s FieldSpec) readOption(r *Reader) (Value, error) {
	present, err := r.Bool()
	if err != nil {
		return Value{}, err
	}
	if !present {
		return Absent(), nil
	}
	switch s.Kind {
	case FieldOptionU64:
		n, err := r.U64()
		return U64Value(n), err
	case FieldOptionBool:
		b, err := r.Bool()
		return BoolValue(b), err
	default:
		k, err := r.Pubkey()
		return PubkeyValue(k), err
	}
}

// Layout 是一组按顺序排列的定长 / 可选字段
type Layout []FieldSpec

// MinSize 返回非尾部字段占用的最少字节数
func (l Layout) MinSize() int {
	n := 0
	for _, s := range l {
		if !s.Trailing {
			n += s.MinSize()
		}
	}
	return n
}

// Extend 返回在尾部追加字段后的新布局，用于声明事件的新版本
func (l Layout) Extend(fields ...FieldSpec) Layout {
	out := make(Layout, 0, len(l)+len(fields))
	return append(append(out, l...), fields...)
}

func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Name
	}
	return names
}

// Decode 从 data 起始处按布局读取字段，末尾多余字节忽略
func (l Layout) Decode(data []byte) (Fields, error) {
	r := NewReader(data)
	fields := make(Fields, 0, len(l))
	for _, s := range l {
		if s.Trailing && r.Remaining() == 0 {
			fields = append(fields, Field{Name: s.Name, Value: Absent()})
			continue
		}
		v, err := s.read(r)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", s.Name, err)
		}
		fields = append(fields, Field{Name: s.Name, Value: v})
	}
	return fields, nil
}

// validate 检查字段名唯一、尾部可选字段只出现在末尾
func (l Layout) validate() error {
	seen := make(map[string]struct{}, len(l))
	trailing := false
	for _, s := range l {
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("duplicate field %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Kind == FieldBytes && s.Size <= 0 {
			return fmt.Errorf("field %q: bytes size must be positive", s.Name)
		}
		if trailing && !s.Trailing {
			return fmt.Errorf("field %q follows a trailing field", s.Name)
		}
		trailing = trailing || s.Trailing
	}
	return nil
}

// hasPrefix 判断 l 是否以 prefix 的全部字段开头
func (l Layout) hasPrefix(prefix Layout) bool {
	if len(prefix) > len(l) {
		return false
	}
	for i := range prefix {
		if prefix[i] != l[i] {
			return false
		}
	}
	return true
}
