package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioArgs(trace string) []string {
	return []string{
		trace,
		"--mem-cyc", "100",
		"--bsize", "4",
		"--l1-size", "6",
		"--l2-size", "8",
		"--l1-assoc", "0",
		"--l2-assoc", "1",
		"--l1-cyc", "1",
		"--l2-cyc", "5",
		"--wr-alloc", "1",
	}
}

func TestParseValidConfig(t *testing.T) {
	var errOut bytes.Buffer
	cfg, err := Parse(scenarioArgs("trace.txt"), &errOut)
	require.NoError(t, err)
	assert.Equal(t, "trace.txt", cfg.TracePath)
	assert.Equal(t, 100, cfg.Hierarchy.MemCycles)
	assert.True(t, cfg.Hierarchy.WriteAllocate)
	assert.Equal(t, 6, cfg.Hierarchy.L1.SizeLog2)
	assert.Equal(t, 8, cfg.Hierarchy.L2.SizeLog2)
}

func TestParseMissingFlagFails(t *testing.T) {
	args := []string{
		"trace.txt",
		"--mem-cyc", "100",
		"--bsize", "4",
		"--l1-size", "6",
		"--l2-size", "8",
		"--l1-assoc", "0",
		"--l2-assoc", "1",
		"--l1-cyc", "1",
		// --l2-cyc omitted
		"--wr-alloc", "1",
	}
	var errOut bytes.Buffer
	_, err := Parse(args, &errOut)
	require.Error(t, err)
}

func TestParseMissingTracePathFails(t *testing.T) {
	args := []string{
		"--mem-cyc", "100",
		"--bsize", "4",
		"--l1-size", "6",
		"--l2-size", "8",
		"--l1-assoc", "0",
		"--l2-assoc", "1",
		"--l1-cyc", "1",
		"--l2-cyc", "5",
		"--wr-alloc", "1",
	}
	var errOut bytes.Buffer
	_, err := Parse(args, &errOut)
	require.Error(t, err)
}

func TestParseInvalidWriteAllocateFails(t *testing.T) {
	args := scenarioArgs("trace.txt")
	for i, a := range args {
		if a == "--wr-alloc" {
			args[i+1] = "2"
		}
	}
	var errOut bytes.Buffer
	_, err := Parse(args, &errOut)
	require.Error(t, err)
}

func TestParseInconsistentSizingFails(t *testing.T) {
	args := []string{
		"trace.txt",
		"--mem-cyc", "100",
		"--bsize", "4",
		"--l1-size", "3", // smaller than assoc*block (2^0 * 2^4 needs size_log2 >= 4)
		"--l2-size", "8",
		"--l1-assoc", "0",
		"--l2-assoc", "1",
		"--l1-cyc", "1",
		"--l2-cyc", "5",
		"--wr-alloc", "1",
	}
	var errOut bytes.Buffer
	_, err := Parse(args, &errOut)
	require.Error(t, err)
}
