package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dex-decoder-sol/internal/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cpmmFixture = "../../internal/logic/eventparser/testdata/cpmm_swap.yaml"

func TestRun_CPMMOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, cpmmFixture, []string{consts.ProgramRaydiumCPMM}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "13194139533322", first["record_id"])
	assert.Equal(t, "320000000", first["slot"])
	assert.Equal(t, "swap_base_input", first["variant"])
	assert.Equal(t, true, first["succeeded"])
	assert.EqualValues(t, 1, first["version"])
	fields := first["fields"].(map[string]any)
	assert.Equal(t, "987000", fields["result.output_amount"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "14293652209668", second["record_id"])
	assert.Equal(t, false, second["succeeded"])
	assert.EqualValues(t, 2, second["version"])
}

func TestRun_AllPrograms(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, cpmmFixture, nil))
	// 第一笔额外包含两笔 token transfer
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 4)
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run(&buf, cpmmFixture, []string{"NoSuchProgram"}))
	assert.Error(t, run(&buf, "testdata/missing.yaml", nil))
}

func TestSplitNames(t *testing.T) {
	assert.Nil(t, splitNames(""))
	assert.Equal(t, []string{"Pumpfun", "RaydiumCPMM"}, splitNames(" Pumpfun, ,RaydiumCPMM "))
}
