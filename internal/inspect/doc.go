// Package inspect contains the orchestrator that drives one log inspection
// run: enumerate pods, enumerate containers, fetch logs, filter, and emit to
// the report sink, strictly sequentially and in API order.
//
// External-call failures are contained per item: a pod whose containers
// cannot be listed, or a container whose logs cannot be fetched, is logged
// and skipped, and the run carries on. The run itself only fails on setup
// problems; downstream failures never change the process exit code.
package inspect
