package eventparser

import (
	"fmt"
	"sync/atomic"

	"dex-decoder-sol/internal/logic/core"
	"dex-decoder-sol/internal/logic/decoder"
	"dex-decoder-sol/internal/logic/eventparser/meteoradlmm"
	"dex-decoder-sol/internal/logic/eventparser/orcawhirlpool"
	"dex-decoder-sol/internal/logic/eventparser/pumpfun"
	"dex-decoder-sol/internal/logic/eventparser/pumpfunamm"
	"dex-decoder-sol/internal/logic/eventparser/raydiumcpmm"
	"dex-decoder-sol/internal/logic/eventparser/raydiumv4"
	"dex-decoder-sol/internal/logic/eventparser/spltoken"
)

var engine atomic.Pointer[Engine]

// NewFullRegistry 注册所有支持的程序
func NewFullRegistry() *decoder.Registry {
	r := decoder.NewRegistry()
	spltoken.Register(r)
	raydiumv4.Register(r)
	raydiumcpmm.Register(r)
	pumpfun.Register(r)
	pumpfunamm.Register(r)
	meteoradlmm.Register(r)
	orcawhirlpool.Register(r)
	return r
}

// Init 初始化全局解码器。enabled 为空时启用全部程序，否则只启用列出的程序名
func Init(enabled []string) error {
	r := NewFullRegistry()
	if len(enabled) > 0 {
		filtered, err := r.Filter(enabled)
		if err != nil {
			return fmt.Errorf("eventparser init: %w", err)
		}
		r = filtered
	}
	engine.Store(NewEngine(r))
	return nil
}

// Registry 返回当前启用的程序表，未初始化时为 nil
func Registry() *decoder.Registry {
	if e := engine.Load(); e != nil {
		return e.Registry()
	}
	return nil
}

// DecodeExecution 使用全局解码器解码一笔交易，需先调用 Init
func DecodeExecution(exec *core.Execution) *Result {
	e := engine.Load()
	if e == nil {
		panic("eventparser: DecodeExecution called before Init")
	}
	return e.Decode(exec)
}
