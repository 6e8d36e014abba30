package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileToConvert represents a single resume file to process.
// OutputBase is the output path without extension; each enabled format
// appends its own.
type FileToConvert struct {
	InputPath  string
	OutputBase string
}

// discoverFiles finds all markdown files under the given inputs. Each
// input may be a file or a directory; directories are walked
// recursively for .md and .markdown files.
func discoverFiles(inputs []string, outputDir string) ([]FileToConvert, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var files []FileToConvert
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateMarkdownExtension(input); err != nil {
				return nil, err
			}
			files = append(files, FileToConvert{
				InputPath:  input,
				OutputBase: resolveOutputBase(input, outputDir, ""),
			})
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			if !isMarkdownFile(path) {
				return nil
			}
			files = append(files, FileToConvert{
				InputPath:  path,
				OutputBase: resolveOutputBase(path, outputDir, input),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found", ErrNoInput)
	}
	return files, nil
}

// resolveOutputBase determines the extensionless output path for a
// markdown file. With a directory input, the relative layout is
// preserved under the output directory.
func resolveOutputBase(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	// A single explicit output file: strip the format extension.
	if outExt := filepath.Ext(outputDir); outExt == ".html" || outExt == ".pdf" || outExt == ".docx" {
		return strings.TrimSuffix(outputDir, outExt)
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// isMarkdownFile checks for a .md or .markdown extension.
func isMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
