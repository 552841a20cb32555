package output

import (
	"io"
	"os"
)

// openOutputWriter returns a writer for the given path, or stdout when
// the path is empty. The returned file, if any, must be closed by the
// caller.
func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
