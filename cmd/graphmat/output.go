// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/graphmat/matroid"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorTrue   = lipgloss.Color("#2CD7C7")
	colorFalse  = lipgloss.Color("#E74C3C")
)

// printer writes "key: value" lines, styled only on a terminal.
type printer struct {
	w     io.Writer
	color bool

	title lipgloss.Style
	key   lipgloss.Style
	yes   lipgloss.Style
	no    lipgloss.Style
}

func newPrinter(w io.Writer, noColor bool) *printer {
	return &printer{
		w:     w,
		color: !noColor && isTerminal(w),
		title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		key:   lipgloss.NewStyle().Foreground(colorMuted),
		yes:   lipgloss.NewStyle().Bold(true).Foreground(colorTrue),
		no:    lipgloss.NewStyle().Foreground(colorFalse),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

// heading prints a bold title line.
func (p *printer) heading(text string) {
	fmt.Fprintln(p.w, p.render(p.title, text))
}

// kv prints one "key: value" line.
func (p *printer) kv(key string, value any) {
	fmt.Fprintf(p.w, "%s: %v\n", p.render(p.key, key), value)
}

// flag prints a boolean result, coloured by its value.
func (p *printer) flag(key string, ok bool) {
	style := p.no
	if ok {
		style = p.yes
	}
	p.kv(key, p.render(style, fmt.Sprint(ok)))
}

// set prints a set of elements as {a, b, c}.
func (p *printer) set(key string, xs []string) {
	p.kv(key, formatSet(xs))
}

// model prints the summary and labelled edges of m.
func (p *printer) model(m *matroid.Matroid) {
	p.heading(m.String())
	edges, err := m.GroundsetToEdges(m.Groundset())
	if err != nil {
		return
	}
	for _, e := range edges {
		fmt.Fprintf(p.w, "  %s: %s-%s\n", e.ID, e.From, e.To)
	}
}

// mapping prints an element bijection sorted by source element.
func (p *printer) mapping(key string, phi map[string]string) {
	keys := make([]string, 0, len(phi))
	for k := range phi {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "→" + phi[k]
	}
	p.kv(key, formatSet(pairs))
}

func formatSet(xs []string) string {
	return "{" + strings.Join(xs, ", ") + "}"
}
