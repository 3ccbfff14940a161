package report

import "github.com/giantswarm/loggrep/internal/filter"

// Sink receives the structured write calls of one inspection run.
// Calls arrive in strict pod-then-container traversal order and must be
// rendered in that order.
type Sink interface {
	// WriteTitle opens the report for a namespace. Called once, first.
	WriteTitle(namespace string)

	// WriteFilterSummary describes the active filter, or its absence.
	WriteFilterSummary(spec filter.Spec)

	// WritePodHeader starts a pod section.
	WritePodHeader(podName string)

	// WriteContainerHeader starts a container section within the current pod.
	WriteContainerHeader(containerName string)

	// WriteBlock emits log text. Filtered output is fenced; raw full-log
	// dumps are not.
	WriteBlock(text string, fenced bool)

	// WriteNoPatternNotice announces that full logs follow unfiltered.
	WriteNoPatternNotice()
}

// MultiSink fans every write out to each sink in order.
type MultiSink []Sink

func (m MultiSink) WriteTitle(namespace string) {
	for _, s := range m {
		s.WriteTitle(namespace)
	}
}

func (m MultiSink) WriteFilterSummary(spec filter.Spec) {
	for _, s := range m {
		s.WriteFilterSummary(spec)
	}
}

func (m MultiSink) WritePodHeader(podName string) {
	for _, s := range m {
		s.WritePodHeader(podName)
	}
}

func (m MultiSink) WriteContainerHeader(containerName string) {
	for _, s := range m {
		s.WriteContainerHeader(containerName)
	}
}

func (m MultiSink) WriteBlock(text string, fenced bool) {
	for _, s := range m {
		s.WriteBlock(text, fenced)
	}
}

func (m MultiSink) WriteNoPatternNotice() {
	for _, s := range m {
		s.WriteNoPatternNotice()
	}
}
