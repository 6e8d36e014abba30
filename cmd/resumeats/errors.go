package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input files")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("input must be a markdown file (.md or .markdown)")
	ErrInvalidWorkerCount = errors.New("worker count must be positive")
	ErrConfigNotFound     = errors.New("config file not found")
	ErrConfigParse        = errors.New("failed to parse config file")
)
