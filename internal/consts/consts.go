package consts

import "runtime"

// CpuCount 表示逻辑 CPU 核心数，用于控制并发解析的 worker 数
var CpuCount = runtime.NumCPU()
