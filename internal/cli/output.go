package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// statusPrinter writes tagged status lines. Tags are colored only when the
// writer is a color-capable terminal.
type statusPrinter struct {
	w    io.Writer
	ok   lipgloss.Style
	miss lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	r := lipgloss.NewRenderer(w)
	return &statusPrinter{
		w:    w,
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		miss: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (p *statusPrinter) line(style lipgloss.Style, tag, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", style.Render(tag), fmt.Sprintf(format, args...))
}

func (p *statusPrinter) OK(format string, args ...any) {
	p.line(p.ok, "[ OK ]", format, args...)
}

func (p *statusPrinter) Miss(format string, args ...any) {
	p.line(p.miss, "[MISS]", format, args...)
}

func (p *statusPrinter) Fail(format string, args ...any) {
	p.line(p.fail, "[FAIL]", format, args...)
}

func (p *statusPrinter) Warn(format string, args ...any) {
	p.line(p.warn, "[WARN]", format, args...)
}

// Detail writes diagnostic text, typically captured program output.
func (p *statusPrinter) Detail(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(p.w, text)
	if text[len(text)-1] != '\n' {
		fmt.Fprintln(p.w)
	}
}
