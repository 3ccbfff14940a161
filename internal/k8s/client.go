package k8s

import (
	"context"
	"time"
)

// Client defines the interface for the Kubernetes operations loggrep needs.
// It is intentionally limited to pod enumeration and log retrieval; everything
// else (auth, transport, retries) is delegated to client-go and the kubeconfig.
type Client interface {
	// Pod Enumeration Operations
	PodLister

	// Log Retrieval Operations
	LogFetcher
}

// PodLister handles pod and container enumeration.
type PodLister interface {
	// ListPods returns the names of all pods in the namespace, in the order
	// the API server returns them.
	ListPods(ctx context.Context, namespace string) ([]string, error)

	// ListContainers returns the container names of a pod, in spec order.
	// The pod is fetched fresh on every call; nothing is cached.
	ListContainers(ctx context.Context, namespace, podName string) ([]string, error)
}

// LogFetcher handles log retrieval.
type LogFetcher interface {
	// GetLogs retrieves the complete current log text for a single container.
	// The result is the drained log stream, not a live follow.
	GetLogs(ctx context.Context, namespace, podName, containerName string) (string, error)
}

// ClientConfig holds configuration for the Kubernetes client.
type ClientConfig struct {
	// Kubeconfig settings
	KubeconfigPath string
	Context        string

	// Authentication mode
	InCluster bool // Use in-cluster service account authentication instead of kubeconfig

	// Performance settings
	QPSLimit   float32
	BurstLimit int
	Timeout    time.Duration

	// Debug settings
	DebugMode bool

	// Logging
	Logger Logger
}

// Logger interface for client logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
