// Text and JSON lines output shared by the aoc commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mesh-intelligence/aoc2023/internal/puzzle"
	"github.com/mesh-intelligence/aoc2023/pkg/types"
)

var (
	colorOK    = lipgloss.Color("#2CD7C7")
	colorWarn  = lipgloss.Color("#F4D03F")
	colorError = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#6C7A89")
)

// styles used on a terminal. Plain output uses zero-value styles.
type styles struct {
	day    lipgloss.Style
	answer lipgloss.Style
	muted  lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
}

func colorStyles() styles {
	return styles{
		day:    lipgloss.NewStyle().Bold(true),
		answer: lipgloss.NewStyle().Bold(true).Foreground(colorOK),
		muted:  lipgloss.NewStyle().Foreground(colorMuted),
		ok:     lipgloss.NewStyle().Foreground(colorOK),
		warn:   lipgloss.NewStyle().Foreground(colorWarn),
		fail:   lipgloss.NewStyle().Foreground(colorError),
	}
}

// printer writes command output either as aligned text or as JSON lines.
type printer struct {
	w        io.Writer
	jsonMode bool
	st       styles
	enc      *json.Encoder
}

func newPrinter(w io.Writer, jsonMode bool) *printer {
	p := &printer{w: w, jsonMode: jsonMode}
	if jsonMode {
		p.enc = json.NewEncoder(w)
	} else if isTerminal(w) {
		p.st = colorStyles()
	}
	return p
}

// isTerminal reports whether w is a character device. Buffers and pipes
// get plain text.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resultLine is the JSON form of a run result.
type resultLine struct {
	types.Result
	Verdict string `json:"verdict,omitempty"`
}

// result prints one run result with its verdict.
func (p *printer) result(r types.Result, v puzzle.Verdict) error {
	if p.jsonMode {
		line := resultLine{Result: r}
		if v != puzzle.Unknown {
			line.Verdict = v.String()
		}
		return p.enc.Encode(line)
	}
	head := p.st.day.Render(fmt.Sprintf("day %2d part %d", r.Day, r.Part))
	took := p.st.muted.Render(fmt.Sprintf("(%s)", roundDuration(r.Duration)))
	if r.Failed() {
		_, err := fmt.Fprintf(p.w, "%s  %s %s\n", head, p.st.fail.Render("error: "+r.Err), took)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s  %s %s%s\n", head, p.st.answer.Render(fmt.Sprint(r.Answer)), took, p.verdict(v))
	return err
}

func (p *printer) verdict(v puzzle.Verdict) string {
	switch v {
	case puzzle.Correct:
		return " " + p.st.ok.Render("correct")
	case puzzle.Wrong:
		return " " + p.st.fail.Render("WRONG")
	default:
		return ""
	}
}

// bench prints one benchmark line.
func (p *printer) bench(b puzzle.BenchResult) error {
	if p.jsonMode {
		return p.enc.Encode(b)
	}
	_, err := fmt.Fprintf(p.w, "%s  %12s/op %10d B/op %8d allocs/op %s\n",
		p.st.day.Render(fmt.Sprintf("day %2d part %d", b.Day, b.Part)),
		roundDuration(b.PerOp), b.BytesPerOp, b.AllocsPerOp,
		p.st.muted.Render(fmt.Sprintf("(%d runs)", b.Iterations)))
	return err
}

// dayLine is the JSON form of a list entry.
type dayLine struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Parts    []int  `json:"parts"`
	HasInput bool   `json:"has_input"`
}

func (p *printer) day(d puzzle.Day, hasInput bool) error {
	if p.jsonMode {
		return p.enc.Encode(dayLine{Day: d.Number, Title: d.Title, Parts: d.Parts(), HasInput: hasInput})
	}
	input := p.st.warn.Render("no input")
	if hasInput {
		input = p.st.ok.Render("input")
	}
	_, err := fmt.Fprintf(p.w, "%s  %-32s %d part(s)  %s\n",
		p.st.day.Render(fmt.Sprintf("day %2d", d.Number)), d.Title, len(d.Parts()), input)
	return err
}

// history prints a stored result with its start time.
func (p *printer) history(r types.Result) error {
	if p.jsonMode {
		return p.enc.Encode(r)
	}
	when := p.st.muted.Render(r.StartedAt.Local().Format(time.DateTime))
	if r.Failed() {
		_, err := fmt.Fprintf(p.w, "%s  day %2d part %d  %s\n", when, r.Day, r.Part, p.st.fail.Render("error: "+r.Err))
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s  day %2d part %d  %d (%s)\n", when, r.Day, r.Part, r.Answer, roundDuration(r.Duration))
	return err
}

// message prints a plain line; JSON mode suppresses it.
func (p *printer) message(format string, args ...any) {
	if p.jsonMode {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(time.Microsecond)
	default:
		return d
	}
}
