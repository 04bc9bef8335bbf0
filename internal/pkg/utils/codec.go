package utils

import (
	"encoding/binary"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// EncodeMessage 将 protobuf 消息编码为带 4 字节类型前缀（小端）的二进制数据，
// 消费端先读前缀再决定反序列化的消息类型。
func EncodeMessage(msgType uint32, msg proto.Message) ([]byte, error) {
	const extraBuffer = 32

	size := proto.Size(msg)
	buf := make([]byte, 4, 4+size+extraBuffer)
	binary.LittleEndian.PutUint32(buf[:4], msgType)

	opts := proto.MarshalOptions{Deterministic: true}
	result, err := opts.MarshalAppend(buf, msg)
	if err != nil {
		return nil, fmt.Errorf("EncodeMessage: marshal %T: %w", msg, err)
	}
	return result, nil
}

// DecodeMessage 是 EncodeMessage 的逆过程，返回类型前缀
func DecodeMessage(data []byte, msg proto.Message) (uint32, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("DecodeMessage: payload too short: %d", len(data))
	}
	msgType := binary.LittleEndian.Uint32(data[:4])
	if err := proto.Unmarshal(data[4:], msg); err != nil {
		return msgType, fmt.Errorf("DecodeMessage: unmarshal %T: %w", msg, err)
	}
	return msgType, nil
}
