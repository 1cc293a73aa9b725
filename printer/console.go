package printer

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Label selects what is printed for a node.
type Label int

// Node labels. LabelKey is the default.
const (
	LabelKey Label = iota
	LabelRank
	LabelSize
)

// Config controls console output.
type Config struct {
	Label     Label          // what to print for a node
	ShowData  bool           // print value, rank, size and parent key in addition
	Plain     bool           // do not use colors
	LineWidth int            // clip lines longer than this; 0 means no clipping
	Context   *uax11.Context // context for display widths; nil means uax11.LatinContext
}

func (cfg *Config) normalized() Config {
	c := Config{Plain: true}
	if cfg != nil {
		c = *cfg
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.LineWidth < 0 {
		c.LineWidth = 0
	}
	return c
}

// ConfigFromTerminal creates a Config for stdout. If stdout is a terminal,
// its width is used as the line width; otherwise output is plain and lines
// are not clipped. The display width context is taken from the user
// environment.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil && w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 65
		}
	} else {
		config.Plain = true
	}
	tracer().Debugf("printer: setting line length to %d en", config.LineWidth)
	return config
}

// Colors used for nodes, by rank difference class.
var (
	balancedColor = color.New(color.FgBlue)            // (1,1)
	leaningColor  = color.New(color.FgGreen)           // (1,2) and (2,1)
	illegalColor  = color.New(color.FgRed, color.Bold) // anything else
)

var setupGraphemes sync.Once

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print draws the subtree at root onto w and returns its number of levels.
// A virtual root prints nothing and yields 0.
//
// If cfg is nil, a plain configuration without clipping is used.
func Print[V any](w io.Writer, root avl.Node[V], cfg *Config) int {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	c := cfg.normalized()
	p := &treePrinter{w: w, cfg: c}
	return printNode(p, root, "", rootBranch)
}

type treePrinter struct {
	w   io.Writer
	cfg Config
}

func printNode[V any](p *treePrinter, n avl.Node[V], prefix string, br branch) int {
	if !n.IsReal() {
		return 0
	}
	rd, ld := 0, 0
	if r := n.Right(); r.IsReal() {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printNode(p, r, prefix+t, rightBranch)
	}
	var line string
	switch br {
	case rootBranch:
		line = prefix + "|------+ "
	case leftBranch:
		line = prefix + "\\------+ "
	case rightBranch:
		line = prefix + "/------+ "
	}
	dl, dr := n.RankDiff()
	p.line(line, nodeLabel(n, p.cfg), dl, dr)
	if l := n.Left(); l.IsReal() {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printNode(p, l, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}

func nodeLabel[V any](n avl.Node[V], cfg Config) string {
	var s string
	switch cfg.Label {
	case LabelRank:
		s = fmt.Sprintf("%d", n.Rank())
	case LabelSize:
		s = fmt.Sprintf("%d", n.Size())
	default:
		s = fmt.Sprintf("%d", n.Key())
	}
	if cfg.ShowData {
		up := "-"
		if p := n.Parent(); p.IsReal() {
			up = fmt.Sprintf("%d", p.Key())
		}
		dl, dr := n.RankDiff()
		s += fmt.Sprintf(" → %v ^%s r=%d (%d,%d) s=%d", n.Value(), up, n.Rank(), dl, dr, n.Size())
	}
	return s
}

// line writes the branch drawing and the node label, clipping the label to
// the configured line width.
func (p *treePrinter) line(branch, label string, dl, dr int) {
	if p.cfg.LineWidth > 0 {
		room := p.cfg.LineWidth - p.width(branch)
		label = p.clip(label, room)
	}
	io.WriteString(p.w, branch)
	if c := nodeColor(dl, dr); c != nil && !p.cfg.Plain {
		c.Fprint(p.w, label)
	} else {
		io.WriteString(p.w, label)
	}
	io.WriteString(p.w, "\n")
}

func (p *treePrinter) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.cfg.Context)
}

// clip shortens s to at most room display positions, marking a cut with '…'.
func (p *treePrinter) clip(s string, room int) string {
	if room <= 0 {
		return ""
	}
	if p.width(s) <= room {
		return s
	}
	cut := 0
	for i := range s {
		if i > 0 && p.width(s[:i])+1 > room {
			break
		}
		cut = i
	}
	if cut == 0 {
		return "…"
	}
	return strings.TrimRight(s[:cut], " ") + "…"
}

func nodeColor(dl, dr int) *color.Color {
	switch {
	case dl == 1 && dr == 1:
		return balancedColor
	case (dl == 1 && dr == 2) || (dl == 2 && dr == 1):
		return leaningColor
	}
	return illegalColor
}
