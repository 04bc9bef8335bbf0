package decoder

import "crypto/sha256"

// AnchorInstruction 返回 Anchor 指令 discriminator：sha256("global:<name>")[:8]
func AnchorInstruction(name string) []byte {
	return anchorDiscriminator("global:" + name)
}

// AnchorEvent 返回 Anchor 事件 discriminator：sha256("event:<Name>")[:8]
func AnchorEvent(name string) []byte {
	return anchorDiscriminator("event:" + name)
}

func anchorDiscriminator(preimage string) []byte {
	sum := sha256.Sum256([]byte(preimage))
	out := make([]byte, 8)
	copy(out, sum[:8])
	return out
}
