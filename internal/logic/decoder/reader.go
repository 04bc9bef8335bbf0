package decoder

import (
	"encoding/binary"
	"errors"
	"fmt"

	"dex-decoder-sol/internal/types"
)

var (
	ErrShortBuffer = errors.New("decoder: read past end of buffer")
	ErrBadFlag     = errors.New("decoder: invalid bool/option flag")
)

// maxStringLen 限制 borsh 字符串长度，避免异常长度前缀导致大内存分配
const maxStringLen = 1 << 16

// Reader 按固定偏移顺序读取小端编码的字段，越界返回 ErrShortBuffer，不会 panic
type Reader struct {
	buf []byte
	off int
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Offset() int    { return r.off }
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d at offset %d, have %d", ErrShortBuffer, n, r.off, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) U64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// U128 返回低 64 位与高 64 位
func (r *Reader) U128() (lo, hi uint64, err error) {
	b, err := r.take(16)
	if err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

func (r *Reader) Bool() (bool, error) {
	b, err := r.U8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: %d at offset %d", ErrBadFlag, b, r.off-1)
}

func (r *Reader) Pubkey() (types.Pubkey, error) {
	var p types.Pubkey
	b, err := r.take(types.PubkeyLen)
	if err != nil {
		return p, err
	}
	copy(p[:], b)
	return p, nil
}

// Bytes 读取定长字节数组，返回副本
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// BorshString 读取 u32 长度前缀的 UTF-8 字符串
func (r *Reader) BorshString() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	if n > maxStringLen {
		return "", fmt.Errorf("%w: string length %d too large", ErrShortBuffer, n)
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
