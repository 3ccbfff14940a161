package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/giantswarm/loggrep/internal/filter"
)

var (
	podStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7AF"))
	containerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
)

// TerminalSink writes the report to a terminal, with styled headers to aid
// scanning. Title and filter summary are omitted: on a terminal the invocation
// itself already says what is being shown.
type TerminalSink struct {
	out io.Writer
}

// NewTerminalSink creates a sink writing to stdout.
func NewTerminalSink() *TerminalSink {
	return &TerminalSink{out: os.Stdout}
}

// NewTerminalSinkTo creates a sink writing to the given writer.
func NewTerminalSinkTo(out io.Writer) *TerminalSink {
	return &TerminalSink{out: out}
}

func (t *TerminalSink) WriteTitle(namespace string) {}

func (t *TerminalSink) WriteFilterSummary(spec filter.Spec) {}

func (t *TerminalSink) WritePodHeader(podName string) {
	fmt.Fprintln(t.out, podStyle.Render("Pod: "+podName))
}

func (t *TerminalSink) WriteContainerHeader(containerName string) {
	fmt.Fprintln(t.out, containerStyle.Render("Container: "+containerName))
}

func (t *TerminalSink) WriteBlock(text string, fenced bool) {
	if text == "" {
		return
	}
	fmt.Fprint(t.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(t.out)
	}
}

func (t *TerminalSink) WriteNoPatternNotice() {
	fmt.Fprintln(t.out, noticeStyle.Render("No search pattern set, showing full logs"))
}
