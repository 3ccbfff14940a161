package k8s

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/giantswarm/loggrep/internal/logging"
)

// clusterClient implements the Client interface using client-go.
type clusterClient struct {
	// Configuration
	config *ClientConfig

	// Connection
	clientset kubernetes.Interface

	// Kubeconfig management
	kubeconfigData *clientcmdapi.Config
	currentContext string
}

// NewClient creates a new Kubernetes client with the given configuration.
func NewClient(config *ClientConfig) (*clusterClient, error) {
	if config == nil {
		return nil, fmt.Errorf("client configuration is required")
	}

	// Set defaults
	if config.QPSLimit == 0 {
		config.QPSLimit = DefaultQPSLimit
	}
	if config.BurstLimit == 0 {
		config.BurstLimit = DefaultBurstLimit
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout * time.Second
	}

	client := &clusterClient{
		config: config,
	}

	// Handle authentication mode
	if config.InCluster {
		// In-cluster mode: use service account authentication
		client.currentContext = InClusterContext

		if err := client.validateInClusterEnvironment(); err != nil {
			return nil, fmt.Errorf("in-cluster authentication not available: %w", err)
		}

		if config.Logger != nil {
			config.Logger.Info("Using in-cluster authentication")
		}
	} else {
		// Kubeconfig mode: load kubeconfig
		if err := client.loadKubeconfig(); err != nil {
			return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
		}

		// Set current context
		if config.Context != "" {
			client.currentContext = config.Context
		} else {
			client.currentContext = client.kubeconfigData.CurrentContext
		}

		// Validate current context exists
		if _, exists := client.kubeconfigData.Contexts[client.currentContext]; !exists && client.currentContext != "" {
			return nil, fmt.Errorf("context %q does not exist in kubeconfig", client.currentContext)
		}

		if config.Logger != nil {
			config.Logger.Info("Using kubeconfig authentication", "context", client.currentContext)
		}
	}

	restConfig, err := client.buildRestConfig()
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}
	client.clientset = clientset

	return client, nil
}

// newClientWithClientset creates a client around an existing clientset.
// Used by tests to inject a fake clientset.
func newClientWithClientset(config *ClientConfig, clientset kubernetes.Interface) *clusterClient {
	return &clusterClient{
		config:    config,
		clientset: clientset,
	}
}

// validateInClusterEnvironment checks if the required in-cluster authentication files are present.
func (c *clusterClient) validateInClusterEnvironment() error {
	if _, err := os.Stat(DefaultTokenPath); os.IsNotExist(err) {
		return fmt.Errorf("service account token not found at %s", DefaultTokenPath)
	}

	if _, err := os.Stat(DefaultCACertPath); os.IsNotExist(err) {
		return fmt.Errorf("service account CA certificate not found at %s", DefaultCACertPath)
	}

	if _, err := os.Stat(DefaultNamespacePath); os.IsNotExist(err) {
		return fmt.Errorf("service account namespace not found at %s", DefaultNamespacePath)
	}

	return nil
}

// loadKubeconfig loads the kubeconfig from the specified path or default locations.
func (c *clusterClient) loadKubeconfig() error {
	{
		kconf := os.Getenv("KUBECONFIG")
		if strings.HasPrefix(kconf, "~/") {
			uhd, _ := os.UserHomeDir()
			kconf = filepath.Join(uhd, kconf[2:])
		}

		if kconf != "" && c.config.KubeconfigPath == "" {
			c.config.KubeconfigPath = kconf
		}
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if c.config.KubeconfigPath != "" {
		loadingRules.ExplicitPath = c.config.KubeconfigPath
	}

	config := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{},
	)

	rawConfig, err := config.RawConfig()
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	c.kubeconfigData = &rawConfig

	return nil
}

// buildRestConfig creates a rest.Config for the resolved context.
func (c *clusterClient) buildRestConfig() (*rest.Config, error) {
	var restConfig *rest.Config
	var err error

	if c.config.InCluster {
		restConfig, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create in-cluster rest config: %w", err)
		}
	} else {
		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		if c.config.KubeconfigPath != "" {
			loadingRules.ExplicitPath = c.config.KubeconfigPath
		}

		contextConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			loadingRules,
			&clientcmd.ConfigOverrides{
				CurrentContext: c.currentContext,
			},
		)

		restConfig, err = contextConfig.ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create rest config for context %q: %w", c.currentContext, err)
		}
	}

	if c.config.DebugMode && c.config.Logger != nil {
		c.config.Logger.Debug("built REST config", logging.Host(restConfig.Host), "context", c.currentContext)
	}

	// Apply performance settings
	restConfig.QPS = c.config.QPSLimit
	restConfig.Burst = c.config.BurstLimit
	restConfig.Timeout = c.config.Timeout

	return restConfig, nil
}

// logOperation logs an operation for debugging purposes.
func (c *clusterClient) logOperation(operation, namespace, podName string) {
	if c.config.DebugMode && c.config.Logger != nil {
		c.config.Logger.Debug("executing operation",
			logging.Operation(operation),
			logging.Namespace(namespace),
			logging.Pod(podName),
		)
	}
}
