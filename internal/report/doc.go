// Package report renders pipeline output.
//
// A Sink accepts the structured write calls the orchestrator emits (title,
// filter summary, pod and container headers, log blocks) and renders them for
// one target. Two implementations exist: a terminal sink that styles headers
// for scanning, and a Markdown sink that produces a flat report file. A
// MultiSink fans the same calls out to several sinks in order.
//
// Sinks do not return errors from individual writes; the Markdown sink
// records the first write failure and surfaces it from Close, in the manner
// of bufio.Writer.
package report
