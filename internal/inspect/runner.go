package inspect

import (
	"context"

	"github.com/giantswarm/loggrep/internal/filter"
	"github.com/giantswarm/loggrep/internal/k8s"
	"github.com/giantswarm/loggrep/internal/logging"
	"github.com/giantswarm/loggrep/internal/report"
)

// Runner drives one inspection run over a namespace. All fields are set once
// before Run and never mutated; the run is strictly sequential.
type Runner struct {
	Client k8s.Client
	Spec   filter.Spec
	Engine *filter.Engine
	Sink   report.Sink
	Logger k8s.Logger
}

// Run executes the pipeline for the namespace. Per-item external failures
// (container enumeration, log fetch) are logged and skipped. A failed pod
// enumeration ends the run early but is still not an error to the caller;
// the historical tool exited zero regardless of underlying call failures.
func (r *Runner) Run(ctx context.Context, namespace string) error {
	r.Sink.WriteTitle(namespace)
	r.Sink.WriteFilterSummary(r.Spec)

	for _, tok := range r.Engine.SkippedArgs() {
		r.warn("ignoring unsupported search argument", "arg", tok)
	}

	pods, err := r.Client.ListPods(ctx, namespace)
	if err != nil {
		r.warn("failed to enumerate pods", logging.Namespace(namespace), logging.SanitizedErr(err))
		return nil
	}

	for _, pod := range pods {
		r.Sink.WritePodHeader(pod)

		containers, err := r.Client.ListContainers(ctx, namespace, pod)
		if err != nil {
			r.warn("failed to enumerate containers",
				logging.Namespace(namespace), logging.Pod(pod), logging.SanitizedErr(err))
			continue
		}

		for _, container := range containers {
			r.Sink.WriteContainerHeader(container)

			if !r.Spec.HasPattern() {
				r.Sink.WriteNoPatternNotice()
			}

			logs, err := r.Client.GetLogs(ctx, namespace, pod, container)
			if err != nil {
				r.warn("failed to fetch logs",
					logging.Namespace(namespace), logging.Pod(pod), logging.Container(container), logging.SanitizedErr(err))
				continue
			}

			r.Sink.WriteBlock(r.Engine.Apply(logs), r.Spec.HasPattern())
		}
	}

	return nil
}

func (r *Runner) warn(msg string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Warn(msg, args...)
	}
}
