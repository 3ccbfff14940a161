package k8s

import (
	"context"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PodLister implementation

// ListPods returns the names of all pods in the namespace.
// Ordering follows the API server's list response; no sorting is applied.
func (c *clusterClient) ListPods(ctx context.Context, namespace string) ([]string, error) {
	c.logOperation("list-pods", namespace, "")

	pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods in namespace %s: %w", namespace, err)
	}

	names := make([]string, 0, len(pods.Items))
	for _, pod := range pods.Items {
		names = append(names, pod.Name)
	}

	return names, nil
}

// ListContainers returns the container names of a pod in spec order.
// Init and ephemeral containers are excluded; their logs belong to startup
// and debug sessions, not the workload itself.
func (c *clusterClient) ListContainers(ctx context.Context, namespace, podName string) ([]string, error) {
	c.logOperation("list-containers", namespace, podName)

	pod, err := c.clientset.CoreV1().Pods(namespace).Get(ctx, podName, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("pod %s/%s not found: %w", namespace, podName, err)
	}

	names := make([]string, 0, len(pod.Spec.Containers))
	for _, container := range pod.Spec.Containers {
		names = append(names, container.Name)
	}

	return names, nil
}

// LogFetcher implementation

// GetLogs retrieves the complete current log text for a single container.
// The stream is drained fully before returning; callers get text or an error,
// never a partially consumed reader.
func (c *clusterClient) GetLogs(ctx context.Context, namespace, podName, containerName string) (string, error) {
	c.logOperation("get-logs", namespace, podName)

	logOpts := &corev1.PodLogOptions{
		Container: containerName,
	}

	req := c.clientset.CoreV1().Pods(namespace).GetLogs(podName, logOpts)

	stream, err := req.Stream(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get logs for pod %s/%s: %w", namespace, podName, err)
	}
	defer stream.Close()

	body, err := io.ReadAll(stream)
	if err != nil {
		return "", fmt.Errorf("failed to read logs for pod %s/%s: %w", namespace, podName, err)
	}

	return string(body), nil
}
