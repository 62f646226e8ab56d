// internal/inspect/writer.go
package inspect

import (
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
)

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// Marshal renders a view as JSON, optionally indented for human readers.
func Marshal(view any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}

// Writer emits views to a single output target.
type Writer struct {
	writer io.WriteCloser
	indent bool
}

// NewWriter opens the output target. An empty path or "stdout" selects
// standard output, which Close leaves open.
func NewWriter(outputPath string, indent bool) (*Writer, error) {
	if outputPath == "" || outputPath == "stdout" {
		return &Writer{writer: &nopWriteCloser{os.Stdout}, indent: indent}, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return &Writer{writer: f, indent: indent}, nil
}

// Write marshals one view followed by a newline.
func (w *Writer) Write(view any) error {
	data, err := Marshal(view, w.indent)
	if err != nil {
		return fmt.Errorf("failed to encode layout view: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write layout view: %w", err)
	}
	return nil
}

// Close finalizes the output and releases any underlying file handle.
func (w *Writer) Close() error {
	return w.writer.Close()
}
