package k8s

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Validation(t *testing.T) {
	t.Run("nil config is rejected", func(t *testing.T) {
		_, err := NewClient(nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("in-cluster mode fails outside a cluster", func(t *testing.T) {
		// The service account files only exist inside a pod.
		_, err := NewClient(&ClientConfig{InCluster: true})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "in-cluster authentication not available")
	})

	t.Run("missing explicit kubeconfig is an error", func(t *testing.T) {
		_, err := NewClient(&ClientConfig{KubeconfigPath: "/nonexistent/kubeconfig"})
		assert.Error(t, err)
	})
}

func TestClientConfig_Defaults(t *testing.T) {
	config := &ClientConfig{KubeconfigPath: "/nonexistent/kubeconfig"}

	// NewClient fails on the kubeconfig, but defaults are applied first.
	_, err := NewClient(config)
	assert.Error(t, err)

	assert.Equal(t, float32(DefaultQPSLimit), config.QPSLimit)
	assert.Equal(t, DefaultBurstLimit, config.BurstLimit)
	assert.Equal(t, DefaultTimeout*time.Second, config.Timeout)
}
