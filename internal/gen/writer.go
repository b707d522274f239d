package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// PrintFiles writes all generated files to w, each preceded by a
// "// file: <name>" marker line when there is more than one.
func PrintFiles(w io.Writer, files []GeneratedFile) error {
	for i, file := range files {
		if len(files) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprintf(w, "// file: %s\n", file.Filename); err != nil {
				return err
			}
		}

		if _, err := w.Write(file.Content); err != nil {
			return fmt.Errorf("printing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
