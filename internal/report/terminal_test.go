package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giantswarm/loggrep/internal/filter"
)

func TestTerminalSink_Output(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSinkTo(&buf)

	sink.WriteTitle("demo")
	sink.WriteFilterSummary(filter.Spec{Pattern: "error"})
	sink.WritePodHeader("web-1")
	sink.WriteContainerHeader("app")
	sink.WriteBlock("an error occurred", true)
	sink.WriteNoPatternNotice()

	out := buf.String()

	// No title or filter summary on the terminal variant.
	assert.NotContains(t, out, "demo")
	assert.NotContains(t, out, "Search Pattern")

	assert.Contains(t, out, "Pod: web-1")
	assert.Contains(t, out, "Container: app")
	// Blocks are never fenced on the terminal.
	assert.NotContains(t, out, "```")
	assert.Contains(t, out, "an error occurred\n")
	assert.Contains(t, out, "No search pattern set, showing full logs")
}

func TestTerminalSink_EmptyBlockWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSinkTo(&buf)

	sink.WriteBlock("", true)
	assert.Empty(t, buf.String())
}

func TestMultiSink_FansOutInOrder(t *testing.T) {
	var first, second bytes.Buffer
	sinks := MultiSink{NewTerminalSinkTo(&first), NewTerminalSinkTo(&second)}

	sinks.WritePodHeader("web-1")
	sinks.WriteContainerHeader("app")
	sinks.WriteBlock("log line\n", false)

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), "Pod: web-1")
	assert.Contains(t, first.String(), "log line")
}
