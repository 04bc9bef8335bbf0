package logwalk

import (
	"strconv"
	"strings"

	"dex-decoder-sol/internal/types"
)

// LineKind 日志行类型
type LineKind uint8

const (
	LineInert   LineKind = iota // consumed / return / 截断提示等，不影响状态
	LineInvoke                  // Program <id> invoke [n]
	LineSuccess                 // Program <id> success
	LineFailed                  // Program <id> failed: ...
	LineData                    // Program data: <base64>
	LineLog                     // Program log: <text>
)

func (k LineKind) IsTerminal() bool {
	return k == LineSuccess || k == LineFailed
}

const (
	programPrefix = "Program "
	dataPrefix    = "Program data: "
	logPrefix     = "Program log: "
)

// Line 是解析后的日志行
type Line struct {
	Kind      LineKind
	ProgramID types.Pubkey // invoke / terminal 行的程序
	Depth     int          // invoke 行中的 [n]，缺失为 -1
	Body      string       // data 行的 base64，log 行的文本
}

// ParseLine 识别单行日志，无法识别的行返回 LineInert
func ParseLine(text string) Line {
	switch {
	case strings.HasPrefix(text, dataPrefix):
		return Line{Kind: LineData, Depth: -1, Body: strings.TrimSpace(text[len(dataPrefix):])}
	case strings.HasPrefix(text, logPrefix):
		return Line{Kind: LineLog, Depth: -1, Body: text[len(logPrefix):]}
	case !strings.HasPrefix(text, programPrefix):
		return Line{Kind: LineInert, Depth: -1}
	}

	// Program <id> <verb> ...
	rest := text[len(programPrefix):]
	sp := strings.IndexByte(rest, ' ')
	if sp <= 0 {
		return Line{Kind: LineInert, Depth: -1}
	}
	id, err := types.TryPubkeyFromBase58(rest[:sp])
	if err != nil {
		return Line{Kind: LineInert, Depth: -1}
	}
	verb := rest[sp+1:]

	switch {
	case strings.HasPrefix(verb, "invoke"):
		return Line{Kind: LineInvoke, ProgramID: id, Depth: parseInvokeDepth(verb[len("invoke"):])}
	case verb == "success":
		return Line{Kind: LineSuccess, ProgramID: id, Depth: -1}
	case strings.HasPrefix(verb, "failed"):
		return Line{Kind: LineFailed, ProgramID: id, Depth: -1, Body: strings.TrimSpace(strings.TrimPrefix(verb, "failed:"))}
	}
	return Line{Kind: LineInert, ProgramID: id, Depth: -1}
}

// parseInvokeDepth 解析 " [n]"，格式不符返回 -1
func parseInvokeDepth(s string) int {
	s = strings.TrimSpace(s)
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return -1
	}
	n, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || n < 0 {
		return -1
	}
	return n
}
