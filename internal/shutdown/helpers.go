// File: internal/shutdown/helpers.go
package shutdown

// RegisterTempFileGlobal registers a temporary file for cleanup on the
// global manager.
func RegisterTempFileGlobal(filePath string, description string) {
	GetManager().RegisterTempFile(filePath, description)
}

// RegisterClipboardGlobal registers clipboard for cleanup on the global
// manager.
func RegisterClipboardGlobal(description string) {
	GetManager().RegisterClipboard(description)
}

// CreateTempFileWithAutoCleanup creates a temporary file through the
// injected constructor and registers it for cleanup.
func CreateTempFileWithAutoCleanup(pattern string, content []byte, description string, createTempFile func(string, []byte) (string, error)) (string, error) {
	filePath, err := createTempFile(pattern, content)
	if err != nil {
		return "", err
	}

	RegisterTempFileGlobal(filePath, description)
	return filePath, nil
}

// IsShuttingDown returns true if shutdown has been initiated
func IsShuttingDown() bool {
	return GetManager().IsShutdown()
}
