package txadapter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/types"

	"github.com/mr-tron/base58"
	"gopkg.in/yaml.v3"
)

// Fixture 是 YAML 格式的单笔交易描述，用于回放与测试：
//
//	signature: <base58>
//	slot: 123
//	signers: [<base58>]
//	meta:
//	  fee: 5000
//	  compute_units: 1200
//	  err: ""
//	  logs: ["Program ... invoke [1]", ...]
//	instructions:
//	  - program: <base58>
//	    accounts: [<base58>, ...]
//	    data: <hex>
//	    children: [...]
type Fixture struct {
	Signature    string               `yaml:"signature"`
	Slot         uint64               `yaml:"slot"`
	BlockTime    int64                `yaml:"block_time"`
	TxIndex      uint32               `yaml:"tx_index"`
	Signers      []string             `yaml:"signers"`
	Meta         *FixtureMeta         `yaml:"meta"`
	Instructions []FixtureInstruction `yaml:"instructions"`
}

type FixtureMeta struct {
	Fee          uint64   `yaml:"fee"`
	ComputeUnits *uint64  `yaml:"compute_units"`
	Err          string   `yaml:"err"`
	Logs         []string `yaml:"logs"`
}

type FixtureInstruction struct {
	Program  string               `yaml:"program"`
	Accounts []string             `yaml:"accounts"`
	Data     string               `yaml:"data"`
	Children []FixtureInstruction `yaml:"children"`
}

// LoadFixtures 读取文件中的一组交易（YAML 多文档）
func LoadFixtures(path string) ([]*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer f.Close()

	var out []*Fixture
	dec := yaml.NewDecoder(f)
	for {
		var fx Fixture
		if err := dec.Decode(&fx); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode fixture %s: %w", path, err)
		}
		out = append(out, &fx)
	}
	return out, nil
}

// ParseFixture 解析单个 YAML 文档
func ParseFixture(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fx, nil
}

// Execution 将 fixture 转换为 Execution，缺少 meta 或签名视为结构缺失
func (fx *Fixture) Execution() (*core.Execution, error) {
	if fx.Meta == nil {
		return nil, fmt.Errorf("%w: fixture %s missing meta", ErrStructuralAbsence, fx.Signature)
	}
	sig, err := base58.Decode(fx.Signature)
	if err != nil || len(sig) != signatureLen {
		return nil, fmt.Errorf("%w: fixture has invalid signature %q", ErrStructuralAbsence, fx.Signature)
	}
	signers, err := parseKeys(fx.Signers)
	if err != nil || len(signers) == 0 {
		return nil, fmt.Errorf("%w: fixture %s has invalid signers: %v", ErrStructuralAbsence, fx.Signature, err)
	}

	roots := make([]*TreeInstruction, 0, len(fx.Instructions))
	for i := range fx.Instructions {
		root, err := fx.Instructions[i].tree()
		if err != nil {
			return nil, fmt.Errorf("%w: fixture %s instruction %d: %v", ErrStructuralAbsence, fx.Signature, i, err)
		}
		roots = append(roots, root)
	}

	return &core.Execution{
		TxCtx:        &core.TxContext{Slot: fx.Slot, BlockTime: fx.BlockTime},
		TxIndex:      fx.TxIndex,
		Signature:    sig,
		Signer:       signers[0],
		Signers:      signers,
		Fee:          fx.Meta.Fee,
		ComputeUnits: fx.Meta.ComputeUnits,
		Succeeded:    fx.Meta.Err == "",
		ErrMessage:   fx.Meta.Err,
		Instructions: FlattenTree(roots),
		Logs:         core.LogsFromStrings(fx.Meta.Logs),
	}, nil
}

func (fi *FixtureInstruction) tree() (*TreeInstruction, error) {
	program, err := types.TryPubkeyFromBase58(fi.Program)
	if err != nil {
		return nil, err
	}
	accounts, err := parseKeys(fi.Accounts)
	if err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(strings.TrimPrefix(fi.Data, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}

	t := &TreeInstruction{ProgramID: program, Accounts: accounts, Data: data}
	for i := range fi.Children {
		child, err := fi.Children[i].tree()
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, child)
	}
	return t, nil
}

func parseKeys(strs []string) ([]types.Pubkey, error) {
	keys := make([]types.Pubkey, 0, len(strs))
	for _, s := range strs {
		k, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
