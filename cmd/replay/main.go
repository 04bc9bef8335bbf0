package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"dex-decoder-sol/internal/logic/dispatcher"
	"dex-decoder-sol/internal/logic/eventparser"
	"dex-decoder-sol/internal/logic/txadapter"
	"dex-decoder-sol/internal/pkg/logger"

	"google.golang.org/protobuf/encoding/protojson"
)

var (
	fixtureFile = flag.String("f", "", "the fixture file (yaml, multi-document)")
	programs    = flag.String("programs", "", "comma separated program names, empty for all")
	level       = flag.String("level", "warn", "log level")
)

// replay 离线解码 fixture 中的交易，每条记录输出一行 JSON，格式与 Kafka 消息体中的单条记录一致
func main() {
	flag.Parse()
	if *fixtureFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := logger.Init(logger.LogOption{Level: *level}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := run(out, *fixtureFile, splitNames(*programs)); err != nil {
		out.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, path string, enabled []string) error {
	if err := eventparser.Init(enabled); err != nil {
		return err
	}
	fixtures, err := txadapter.LoadFixtures(path)
	if err != nil {
		return err
	}

	opts := protojson.MarshalOptions{UseProtoNames: true}
	for i, fx := range fixtures {
		exec, err := fx.Execution()
		if err != nil {
			// 结构缺失的交易跳过，与在线流程一致
			logger.Warnf("[replay] skip fixture %d: %v", i, err)
			continue
		}
		for _, row := range eventparser.DecodeExecution(exec).Rows() {
			s, err := dispatcher.RowStruct(exec, row)
			if err != nil {
				return fmt.Errorf("fixture %d: %w", i, err)
			}
			line, err := opts.Marshal(s)
			if err != nil {
				return fmt.Errorf("fixture %d: %w", i, err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
