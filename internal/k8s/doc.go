// Package k8s provides the cluster-access layer for loggrep.
//
// This package defines the Client interface that abstracts the Kubernetes
// operations the log pipeline needs. The interface is deliberately narrow:
//
//   - PodLister: enumerate pods in a namespace and the containers of a pod
//   - LogFetcher: retrieve the complete current log text of one container
//
// All operations are single-cluster, synchronous calls against whatever
// context the kubeconfig (or the in-cluster service account) resolves to.
// Pod and container ordering is whatever the API server returns; the
// package never sorts or caches enumeration results.
//
// Example usage:
//
//	client, err := k8s.NewClient(&k8s.ClientConfig{KubeconfigPath: path})
//	if err != nil {
//		return err
//	}
//
//	pods, err := client.ListPods(ctx, "production")
//	if err != nil {
//		return err
//	}
//
//	logs, err := client.GetLogs(ctx, "production", pods[0], "app")
//	if err != nil {
//		return err
//	}
//
// The package focuses on interface definitions and types, with the concrete
// client-go implementation kept behind the interface to enable testing with
// fake clientsets.
package k8s
