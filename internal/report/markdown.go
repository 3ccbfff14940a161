package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/giantswarm/loggrep/internal/filter"
)

// MarkdownSink writes the report to a flat Markdown file. The file is
// truncated once, at construction; every subsequent write appends. There is
// no random-access rewriting, so calls must arrive in traversal order.
type MarkdownSink struct {
	file      *os.File
	w         *bufio.Writer
	namespace string
	err       error
}

// NewMarkdownSink creates (or truncates) the report file at path.
func NewMarkdownSink(path string) (*MarkdownSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file %s: %w", path, err)
	}

	return &MarkdownSink{
		file: file,
		w:    bufio.NewWriter(file),
	}, nil
}

// Close flushes buffered output and closes the file. It returns the first
// error encountered during the run, if any.
func (m *MarkdownSink) Close() error {
	if err := m.w.Flush(); err != nil && m.err == nil {
		m.err = err
	}
	if err := m.file.Close(); err != nil && m.err == nil {
		m.err = err
	}
	return m.err
}

func (m *MarkdownSink) printf(format string, args ...interface{}) {
	if m.err != nil {
		return
	}
	if _, err := fmt.Fprintf(m.w, format, args...); err != nil {
		m.err = err
	}
}

func (m *MarkdownSink) WriteTitle(namespace string) {
	m.namespace = namespace
	m.printf("# Logs from Namespace: %s\n\n", namespace)
}

func (m *MarkdownSink) WriteFilterSummary(spec filter.Spec) {
	m.printf("## Search Pattern Used\n\n")
	if !spec.HasPattern() {
		m.printf("No pattern supplied; full logs are shown unfiltered.\n\n")
		return
	}
	m.printf("Pattern: `%s`\n", spec.Pattern)
	if spec.RawArgs != "" {
		m.printf("Extra search arguments: `%s`\n", spec.RawArgs)
	}
	m.printf("\n")
}

func (m *MarkdownSink) WritePodHeader(podName string) {
	m.printf("## Pod: %s in Namespace: %s\n\n", podName, m.namespace)
}

func (m *MarkdownSink) WriteContainerHeader(containerName string) {
	m.printf("### Container: %s\n\n", containerName)
}

func (m *MarkdownSink) WriteBlock(text string, fenced bool) {
	if fenced {
		m.printf("```\n")
	}
	m.printf("%s", text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		m.printf("\n")
	}
	if fenced {
		m.printf("```\n")
	}
	m.printf("\n")
}

func (m *MarkdownSink) WriteNoPatternNotice() {
	m.printf("No search pattern set, showing full logs.\n\n")
}
