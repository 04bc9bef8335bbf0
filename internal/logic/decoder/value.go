package decoder

import (
	"encoding/hex"
	"strconv"

	"dex-decoder-sol/internal/types"

	"github.com/holiman/uint256"
)

// Kind 标识解码值的类型
type Kind uint8

const (
	KindAbsent Kind = iota // 字段在当前版本的布局中不存在，或 Option 为 None
	KindBool
	KindU8
	KindU16
	KindU32
	KindU64
	KindI32
	KindI64
	KindU128
	KindPubkey
	KindBytes
	KindString
)

var kindNames = [...]string{
	KindAbsent: "absent",
	KindBool:   "bool",
	KindU8:     "u8",
	KindU16:    "u16",
	KindU32:    "u32",
	KindU64:    "u64",
	KindI32:    "i32",
	KindI64:    "i64",
	KindU128:   "u128",
	KindPubkey: "pubkey",
	KindBytes:  "bytes",
	KindString: "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value 是一个带类型的解码结果。缺失字段用 KindAbsent 表示，不会被填成 0。
type Value struct {
	kind Kind
	u    uint64
	i    int64
	wide *uint256.Int
	key  types.Pubkey
	raw  []byte
	str  string
}

func Absent() Value { return Value{kind: KindAbsent} }

func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.u = 1
	}
	return v
}

func U8Value(n uint8) Value { return Value{kind: KindU8, u: uint64(n)} }
func U16Value(n uint16) Value { return Value{kind: KindU16, u: uint64(n)} }
func U32Value(n uint32) Value { return Value{kind: KindU32, u: uint64(n)} }
func U64Value(n uint64) Value { return Value{kind: KindU64, u: n} }
func I32Value(n int32) Value { return Value{kind: KindI32, i: int64(n)} }
func I64Value(n int64) Value { return Value{kind: KindI64, i: n} }
func PubkeyValue(k types.Pubkey) Value { return Value{kind: KindPubkey, key: k} }
func BytesValue(b []byte) Value { return Value{kind: KindBytes, raw: b} }
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// U128Value 由小端的低、高 64 位构造 128 位无符号整数
func U128Value(lo, hi uint64) Value {
	return Value{kind: KindU128, wide: &uint256.Int{lo, hi, 0, 0}}
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsUint64 返回无符号整数值（u8 ~ u64）
func (v Value) AsUint64() (uint64, bool) {
	switch v.kind {
	case KindU8, KindU16, KindU32, KindU64:
		return v.u, true
	}
	return 0, false
}

// AsInt64 返回有符号整数值（i32 / i64）
func (v Value) AsInt64() (int64, bool) {
	switch v.kind {
	case KindI32, KindI64:
		return v.i, true
	}
	return 0, false
}

func (v Value) AsBool() (bool, bool) {
	return v.u == 1, v.kind == KindBool
}

func (v Value) AsPubkey() (types.Pubkey, bool) {
	return v.key, v.kind == KindPubkey
}

// AsU128 返回 128 位整数的副本
func (v Value) AsU128() (*uint256.Int, bool) {
	if v.kind != KindU128 || v.wide == nil {
		return nil, false
	}
	return new(uint256.Int).Set(v.wide), true
}

func (v Value) AsBytes() ([]byte, bool) {
	return v.raw, v.kind == KindBytes
}

// Text 返回值的文本形式：整数为十进制（128 位无精度损失），地址为 base58，字节为 hex，缺失为空串
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.u == 1)
	case KindU8, KindU16, KindU32, KindU64:
		return strconv.FormatUint(v.u, 10)
	case KindI32, KindI64:
		return strconv.FormatInt(v.i, 10)
	case KindU128:
		return v.wide.Dec()
	case KindPubkey:
		return v.key.String()
	case KindBytes:
		return hex.EncodeToString(v.raw)
	case KindString:
		return v.str
	}
	return ""
}

func (v Value) String() string {
	if v.kind == KindAbsent {
		return "<absent>"
	}
	return v.Text()
}
