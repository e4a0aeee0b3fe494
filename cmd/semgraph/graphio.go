package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/semgraph/core"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadGraph reads a graph record, YAML for .yaml/.yml and JSON otherwise.
func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph: %w", err)
	}
	defer f.Close()

	var g *core.Graph
	if isYAML(path) {
		g, err = core.ReadYAML(f)
	} else {
		g, err = core.ReadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// saveGraph writes g to path, or as JSON to stdout when path is "" or "-".
func saveGraph(g *core.Graph, path string, stdout io.Writer) (err error) {
	if path == "" || path == "-" {
		return g.WriteJSON(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if isYAML(path) {
		return g.WriteYAML(f)
	}
	return g.WriteJSON(f)
}

// readConcepts reads one label per line. Blank lines and lines starting
// with '#' are skipped.
func readConcepts(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
