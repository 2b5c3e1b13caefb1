// File: internal/shutdown/manager.go
package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// CleanupResource represents a resource that needs cleanup during shutdown
type CleanupResource interface {
	Cleanup() error
	Description() string
}

// TempFileResource represents a temporary file created by a panel export
type TempFileResource struct {
	filePath    string
	description string
}

func (r *TempFileResource) Cleanup() error {
	if _, err := os.Stat(r.filePath); err == nil {
		if err := removeFileFunc(r.filePath); err != nil {
			return fmt.Errorf("failed to remove %s: %v", r.filePath, err)
		}
	}
	return nil
}

func (r *TempFileResource) Description() string {
	return r.description
}

// ClipboardResource handles clipboard cleanup
type ClipboardResource struct {
	description string
}

func (r *ClipboardResource) Cleanup() error {
	return clearClipboardFunc()
}

func (r *ClipboardResource) Description() string {
	return r.description
}

// Manager handles graceful shutdown and resource cleanup
type Manager struct {
	resources    []CleanupResource
	mu           sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
	isShutdown   bool
	signals      chan os.Signal
}

var (
	// Global instance
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global shutdown manager instance
func GetManager() *Manager {
	managerOnce.Do(func() {
		globalManager = newManager()
		initDefaultIntegration()
	})
	return globalManager
}

// newManager creates a new shutdown manager
func newManager() *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	manager := &Manager{
		resources: make([]CleanupResource, 0),
		ctx:       ctx,
		cancel:    cancel,
		signals:   make(chan os.Signal, 1),
	}

	signal.Notify(manager.signals,
		syscall.SIGINT,  // Ctrl+C
		syscall.SIGTERM, // Termination request
		syscall.SIGQUIT, // Quit request
	)

	go manager.signalHandler()

	return manager
}

// signalHandler handles incoming shutdown signals
func (m *Manager) signalHandler() {
	select {
	case sig := <-m.signals:
		fmt.Fprintf(os.Stderr, "\nReceived signal %v, shutting down...\n", sig)
		m.Shutdown()
	case <-m.ctx.Done():
		return
	}
}

// RegisterResource registers a cleanup resource. During shutdown the
// resource is cleaned immediately instead.
func (m *Manager) RegisterResource(resource CleanupResource) {
	if resource == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isShutdown {
		resource.Cleanup()
		return
	}

	m.resources = append(m.resources, resource)
}

// RegisterTempFile registers a temporary file for cleanup
func (m *Manager) RegisterTempFile(filePath string, description string) {
	if filePath == "" {
		return
	}
	m.RegisterResource(&TempFileResource{
		filePath:    filePath,
		description: description,
	})
}

// RegisterClipboard registers clipboard for cleanup
func (m *Manager) RegisterClipboard(description string) {
	m.RegisterResource(&ClipboardResource{
		description: description,
	})
}

// Shutdown performs graceful shutdown and cleanup of all resources
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		m.mu.Lock()
		m.isShutdown = true
		m.mu.Unlock()

		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()

		m.cleanupResources(cleanupCtx)

		m.cancel()
	})
}

// cleanupResources cleans up all registered resources. Resources are
// cleaned in reverse registration order: later registrations tend to
// depend on earlier ones.
func (m *Manager) cleanupResources(ctx context.Context) {
	m.mu.RLock()
	resources := make([]CleanupResource, len(m.resources))
	copy(resources, m.resources)
	m.mu.RUnlock()

	if len(resources) == 0 {
		return
	}

	for i := len(resources) - 1; i >= 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "Cleanup timeout reached, forcing exit")
			return
		default:
		}
		if err := resources[i].Cleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "Cleanup error for %s: %v\n", resources[i].Description(), err)
		}
	}

	m.mu.Lock()
	m.resources = m.resources[:0]
	m.mu.Unlock()
}

// ResourceCount returns the number of registered resources
func (m *Manager) ResourceCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.resources)
}

// IsShutdown returns true if shutdown has been initiated
func (m *Manager) IsShutdown() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isShutdown
}

// Context returns the shutdown context
func (m *Manager) Context() context.Context {
	return m.ctx
}

// --- Dependency Injection ---

// Injected functions keep this package free of imports on the clipboard
// and panel packages (they import shutdown, not the other way around).
var (
	removeFileFunc     func(string) error
	clearClipboardFunc func() error
)

// SetCleanupFunctions sets the injected cleanup functions.
func SetCleanupFunctions(
	removeFile func(string) error,
	clearClipboard func() error,
) {
	removeFileFunc = removeFile
	clearClipboardFunc = clearClipboard
}

// initDefaultIntegration installs fallbacks so cleanup never panics.
func initDefaultIntegration() {
	if removeFileFunc == nil {
		removeFileFunc = os.Remove
	}
	if clearClipboardFunc == nil {
		clearClipboardFunc = func() error { return nil }
	}
}
