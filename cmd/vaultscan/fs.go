package main

import (
	"os"

	"github.com/wardenclyffe/vaultscan/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// createOutputFile creates (or truncates) the file at path for --output.
func createOutputFile(path string) (*os.File, error) {
	return cmdFS.Create(path)
}
