package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roads = `
nodes:
  - {name: A, x: 0, y: 0}
  - {name: B, x: 1, y: 0}
  - {name: C, x: 2, y: 0}
  - {name: D, x: 2, y: 1}
  - {name: E}
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: B, to: C, weight: 1}
  - {from: C, to: D, weight: 1}
  - {from: B, to: D, weight: 5}
`

func writeRoads(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(roads), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPath_YAML(t *testing.T) {
	stdout, stderr, err := run(t, "path", "-f", writeRoads(t), "--from", "A", "--to", "D")
	require.NoError(t, err)

	var out pathOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "A", out.From)
	assert.Equal(t, "D", out.To)
	assert.True(t, out.Found)
	assert.Equal(t, []string{"B", "C", "D"}, out.Path)
	assert.InDelta(t, 3.0, out.Cost, 1e-9)
	assert.Equal(t, 4, out.Passes)
	assert.Contains(t, stderr, "path query")
}

func TestPath_JSONMultipleTargets(t *testing.T) {
	stdout, _, err := run(t, "path", "-f", writeRoads(t), "--from", "A",
		"--to", "D", "--to", "E", "--to", "C", "-o", "json", "--heuristic", "euclid")
	require.NoError(t, err)

	var outs []pathOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &outs))
	require.Len(t, outs, 3)

	assert.Equal(t, []string{"B", "C", "D"}, outs[0].Path)
	assert.False(t, outs[1].Found)
	assert.Nil(t, outs[1].Path)
	assert.Equal(t, []string{"B", "C"}, outs[2].Path)
	assert.InDelta(t, 2.0, outs[2].Cost, 1e-9)
}

func TestPath_Errors(t *testing.T) {
	file := writeRoads(t)
	tests := []struct {
		name string
		args []string
	}{
		{"missing flags", []string{"path", "-f", file}},
		{"unknown start", []string{"path", "-f", file, "--from", "Z", "--to", "A"}},
		{"unknown target", []string{"path", "-f", file, "--from", "A", "--to", "Z"}},
		{"unknown heuristic", []string{"path", "-f", file, "--from", "A", "--to", "D", "--heuristic", "manhattan"}},
		{"unknown format", []string{"path", "-f", file, "--from", "A", "--to", "D", "-o", "xml"}},
		{"missing file", []string{"path", "-f", filepath.Join(t.TempDir(), "none.yaml"), "--from", "A", "--to", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestBench(t *testing.T) {
	stdout, _, err := run(t, "bench", "--graphs", "5", "--nodes", "40", "--p", "0.1", "--seed", "7")
	require.NoError(t, err)

	var out benchOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 5, out.Graphs)
	assert.Equal(t, 40, out.Nodes)
	assert.Equal(t, 0, out.Mismatches)
	assert.Equal(t, 5, out.Reachable+out.Unreachable)
	assert.NotEmpty(t, out.Elapsed)
}

func TestRunBench(t *testing.T) {
	flags := &benchFlags{graphs: 3, nodes: 1, p: 0.5, maxWeight: 1, seed: 1}
	out, err := runBench(context.Background(), zerolog.Nop(), flags)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Reachable, "a single node reaches itself")

	_, err = runBench(context.Background(), zerolog.Nop(), &benchFlags{nodes: 0})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runBench(ctx, zerolog.Nop(), &benchFlags{graphs: 1, nodes: 10, p: 0.5, maxWeight: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, "", map[string]int{"a": 1}))
	assert.Equal(t, "a: 1\n", buf.String())

	assert.Error(t, writeOutput(&buf, "toml", nil))
}
