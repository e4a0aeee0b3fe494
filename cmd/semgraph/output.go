package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/semgraph/core"
)

// Palette used when stdout is a terminal.
var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#6C7A89")
	colorWarn   = lipgloss.Color("#F4D03F")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleLabel = lipgloss.NewStyle().Foreground(colorMuted)
	styleNode  = lipgloss.NewStyle().Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
	styleBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// printer renders command results as JSON, styled text (terminals) or
// plain text (pipes and files).
type printer struct {
	w      io.Writer
	json   bool
	styled bool
}

func newPrinter(w io.Writer, jsonOut bool) *printer {
	return &printer{w: w, json: jsonOut, styled: !jsonOut && isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// JSON writes v indented.
func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Linef writes one formatted line.
func (p *printer) Linef(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func (p *printer) block(title string, rows [][2]string) error {
	var sb strings.Builder
	sb.WriteString(p.render(styleTitle, title))
	for _, r := range rows {
		sb.WriteByte('\n')
		sb.WriteString(p.render(styleLabel, fmt.Sprintf("%-17s", r[0]+":")))
		sb.WriteString(r[1])
	}
	out := sb.String()
	if p.styled {
		out = styleBox.Render(out)
	}
	_, err := fmt.Fprintln(p.w, out)
	return err
}

// statsOutput is the JSON shape of `stats` and `build`.
type statsOutput struct {
	File  string     `json:"file,omitempty"`
	Stats core.Stats `json:"stats"`
}

// Stats prints graph statistics.
func (p *printer) Stats(title, file string, s core.Stats) error {
	if p.json {
		return p.JSON(statsOutput{File: file, Stats: s})
	}
	rows := [][2]string{
		{"nodes", fmt.Sprint(s.NumNodes)},
		{"edges", fmt.Sprint(s.NumEdges)},
		{"average degree", fmt.Sprintf("%.3f", s.AverageDegree)},
		{"threshold", fmt.Sprintf("%.3f", s.Threshold)},
	}
	if file != "" {
		rows = append([][2]string{{"file", file}}, rows...)
	}
	return p.block(title, rows)
}

// searchOutput is the JSON shape of `search`.
type searchOutput struct {
	Algorithm string             `json:"algorithm"`
	Strategy  string             `json:"strategy,omitempty"`
	From      string             `json:"from"`
	To        string             `json:"to"`
	Found     bool               `json:"found"`
	Cost      *float64           `json:"cost,omitempty"`
	Result    *core.SearchResult `json:"result,omitempty"`
}

// Search prints a search outcome, found or not.
func (p *printer) Search(o searchOutput) error {
	if p.json {
		return p.JSON(o)
	}
	title := fmt.Sprintf("%s: %s → %s", o.Algorithm, o.From, o.To)
	if !o.Found {
		return p.Linef("%s  %s", p.render(styleTitle, title), p.render(styleWarn, "no path"))
	}

	nodes := make([]string, len(o.Result.Path))
	for i, n := range o.Result.Path {
		nodes[i] = p.render(styleNode, n)
	}
	rows := [][2]string{
		{"path", strings.Join(nodes, " → ")},
		{"path length", fmt.Sprint(o.Result.PathLength)},
		{"total similarity", fmt.Sprintf("%.4f", o.Result.TotalSimilarity)},
	}
	if o.Cost != nil {
		rows = append(rows, [2]string{"cost", fmt.Sprintf("%.4f", *o.Cost)})
	}
	rows = append(rows,
		[2]string{"nodes visited", fmt.Sprint(o.Result.NodesVisited)},
		[2]string{"nodes explored", fmt.Sprint(o.Result.NodesExplored)},
	)
	if o.Strategy != "" {
		rows = append(rows, [2]string{"strategy", o.Strategy})
	}

	return p.block(title, rows)
}
