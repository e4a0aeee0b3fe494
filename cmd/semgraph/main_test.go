package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semgraph/core"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SEMGRAPH_API_KEY", "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// hardwareGraph builds the table-backed demo graph into dir.
func hardwareGraph(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	_, err := run(t, "build", "--backend", "table",
		"--concepts", "CPU,processor,hardware,RAM,memory", "-o", path)
	require.NoError(t, err)

	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, version, v["version"])

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "semgraph version")
}

func TestBuildAndStats(t *testing.T) {
	path := hardwareGraph(t, "hw.json")

	out, err := run(t, "stats", path, "--json")
	require.NoError(t, err)
	var st statsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 5, st.Stats.NumNodes)
	assert.Equal(t, 10, st.Stats.NumEdges)
	assert.Equal(t, path, st.File)

	out, err = run(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:")
	assert.Contains(t, out, "graph statistics")
}

func TestBuild_YAMLOutput(t *testing.T) {
	path := hardwareGraph(t, "hw.yaml")
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := core.ReadYAML(f)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
}

func TestBuild_Stdout(t *testing.T) {
	out, err := run(t, "build", "--backend", "char", "--concepts", "abc,abd,xyz")
	require.NoError(t, err)
	g, err := core.ReadJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("abc", "abd"))
	assert.False(t, g.HasEdge("abc", "xyz"))
}

func TestBuild_ConceptsFile(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "concepts.txt")
	require.NoError(t, os.WriteFile(list, []byte("# hardware\nCPU\n\nprocessor\n"), 0o600))
	out, err := run(t, "build", "--backend", "table", "--concepts-file", list)
	require.NoError(t, err)
	g, err := core.ReadJSON(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"CPU", "processor"}, g.AllNodes())
}

func TestBuild_Errors(t *testing.T) {
	_, err := run(t, "build")
	assert.Error(t, err)

	_, err = run(t, "build", "--concepts", "a,b", "--backend", "psychic")
	assert.Error(t, err)

	_, err = run(t, "build", "--concepts", "a,b", "--threshold", "2")
	assert.Error(t, err)
}

func searchJSON(t *testing.T, args ...string) searchOutput {
	t.Helper()
	out, err := run(t, append([]string{"search", "--json"}, args...)...)
	require.NoError(t, err)
	var so searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &so))

	return so
}

func TestSearch_Algorithms(t *testing.T) {
	path := hardwareGraph(t, "hw.json")
	best := []string{"CPU", "processor", "hardware", "RAM", "memory"}

	for _, algo := range []string{algoDijkstra, algoAStar, algoFloyd} {
		so := searchJSON(t, path, "--from", "CPU", "--to", "memory", "--algo", algo)
		require.True(t, so.Found, algo)
		assert.Equal(t, best, so.Result.Path, algo)
		require.NotNil(t, so.Cost, algo)
	}

	so := searchJSON(t, path, "--from", "CPU", "--to", "memory", "--algo", algoBFS)
	require.True(t, so.Found)
	assert.Equal(t, []string{"CPU", "hardware", "RAM", "memory"}, so.Result.Path)

	so = searchJSON(t, path, "--from", "CPU", "--to", "memory", "--algo", algoDFS)
	require.True(t, so.Found)
	assert.Equal(t, "CPU", so.Result.Path[0])
	assert.Equal(t, "memory", so.Result.Path[len(so.Result.Path)-1])

	so = searchJSON(t, path, "--from", "CPU", "--to", "memory", "--algo", algoHybrid)
	require.True(t, so.Found)
	assert.Equal(t, "dijkstra", so.Strategy)

	so = searchJSON(t, path, "--from", "CPU", "--to", "memory", "--algo", algoHybrid, "--depth", "4")
	require.True(t, so.Found)
	assert.Equal(t, "bfs", so.Strategy)
	assert.Equal(t, 4, so.Result.PathLength)
}

func TestSearch_NoPath(t *testing.T) {
	path := hardwareGraph(t, "hw.json")
	so := searchJSON(t, path, "--from", "CPU", "--to", "memory", "--min-sim", "0.95")
	assert.False(t, so.Found)
	assert.Nil(t, so.Result)

	out, err := run(t, "search", path, "--from", "CPU", "--to", "nowhere")
	require.NoError(t, err)
	assert.Contains(t, out, "no path")
}

func TestSearch_Errors(t *testing.T) {
	path := hardwareGraph(t, "hw.json")

	_, err := run(t, "search", path, "--from", "CPU", "--to", "RAM", "--algo", "magic")
	assert.ErrorContains(t, err, "unknown algorithm")

	_, err = run(t, "search", path, "--from", "CPU")
	assert.Error(t, err)

	_, err = run(t, "search", filepath.Join(t.TempDir(), "missing.json"), "--from", "a", "--to", "b")
	assert.Error(t, err)

	cfgPath := filepath.Join(t.TempDir(), "semgraph.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("floyd_warshall_max_nodes: 2\n"), 0o600))
	_, err = run(t, "search", path, "--config", cfgPath, "--from", "CPU", "--to", "RAM", "--algo", "floyd")
	assert.ErrorContains(t, err, "too large")
}

func TestReadConcepts(t *testing.T) {
	got, err := readConcepts(strings.NewReader("a\n  b  \n#c\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestIsYAML(t *testing.T) {
	assert.True(t, isYAML("g.yaml"))
	assert.True(t, isYAML("G.YML"))
	assert.False(t, isYAML("g.json"))
	assert.False(t, isYAML("g"))
}
