package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	resumeats "github.com/alnah/go-resumeats"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface the batch runner needs from the
// conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input resumeats.Input) (*resumeats.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*resumeats.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// ConversionResult holds the outcome of a single file conversion.
// FormatErrs records per-format failures; a file succeeds only when all
// enabled formats were written.
type ConversionResult struct {
	InputPath  string
	Outputs    []string
	Warnings   []string
	Err        error
	FormatErrs map[string]error
	Duration   time.Duration
}

func (r ConversionResult) failed() bool {
	return r.Err != nil || len(r.FormatErrs) > 0
}

// conversionParams holds the resolved settings shared by every file in
// a batch.
type conversionParams struct {
	formats []string
	timeout time.Duration
}

// run executes the convert command: parse flags, load config, discover
// files, convert in parallel, and report. Returns the process exit code.
func run(args []string, env *Environment) int {
	flags, inputs, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if len(inputs) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err := validateWorkers(flags.workers); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	rules := resolveRules(cfg, &flags.rules)
	output := resolveOutput(cfg, &flags.out)

	timeout := 30 * time.Second
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			fmt.Fprintf(env.Stderr, "invalid timeout %q\n", flags.timeout)
			return ExitUsage
		}
		timeout = d
	}

	opts := []resumeats.Option{
		resumeats.WithRules(rules),
		resumeats.WithOutput(output),
		resumeats.WithTimeout(timeout),
	}
	if flags.out.assetPath != "" {
		opts = append(opts, resumeats.WithAssetPath(flags.out.assetPath))
	}

	// Fail fast on bad settings before discovering files or launching
	// browsers: a throwaway converter runs the full validation path.
	probe, err := resumeats.NewConverter(opts...)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	_ = probe.Close()

	files, err := discoverFiles(inputs, flags.output)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	poolSize := resolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), poolSize)
	}

	pool := NewConverterPool(poolSize, opts...)
	defer pool.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	params := &conversionParams{
		formats: output.EnabledFormats,
		timeout: timeout,
	}

	results := convertBatch(ctx, pool, files, params)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single resume and writes every enabled format.
// Generated bytes pass an output quality check before reaching disk.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	fileCtx, cancel := context.WithTimeout(ctx, params.timeout)
	defer cancel()

	convResult, err := conv.Convert(fileCtx, resumeats.Input{Markdown: string(content)})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.Warnings = convResult.Warnings
	result.FormatErrs = convResult.Errors
	if result.FormatErrs == nil {
		result.FormatErrs = make(map[string]error)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputBase), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	for _, format := range enabledFormats(params.formats) {
		data := formatBytes(convResult, format)
		if data == nil {
			continue // failure already recorded in FormatErrs
		}
		if err := validateOutput(format, data); err != nil {
			result.FormatErrs[format] = err
			continue
		}
		outPath := f.OutputBase + "." + format
		// #nosec G306 -- resume outputs are meant to be readable
		if err := os.WriteFile(outPath, data, filePermissions); err != nil {
			result.FormatErrs[format] = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			continue
		}
		result.Outputs = append(result.Outputs, outPath)
	}

	result.Duration = time.Since(start)
	return result
}

// enabledFormats resolves the format list, defaulting to all three.
func enabledFormats(formats []string) []string {
	if len(formats) == 0 {
		return []string{resumeats.FormatHTML, resumeats.FormatPDF, resumeats.FormatDOCX}
	}
	return formats
}

// formatBytes returns the generated bytes for a format, nil when that
// format failed.
func formatBytes(r *resumeats.ConvertResult, format string) []byte {
	switch format {
	case resumeats.FormatHTML:
		return r.HTML
	case resumeats.FormatPDF:
		return r.PDF
	case resumeats.FormatDOCX:
		return r.DOCX
	}
	return nil
}

// validateOutput runs the per-format quality check.
func validateOutput(format string, data []byte) error {
	switch format {
	case resumeats.FormatHTML:
		return resumeats.ValidateHTML(data)
	case resumeats.FormatPDF:
		return resumeats.ValidatePDF(data)
	case resumeats.FormatDOCX:
		return resumeats.ValidateDOCX(data)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.failed() {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the exit code.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		for _, format := range sortedFormatErrs(r.FormatErrs) {
			fmt.Fprintf(env.Stderr, "FAILED %s [%s]: %v\n", r.InputPath, format, r.FormatErrs[format])
			if firstErr == nil {
				firstErr = r.FormatErrs[format]
			}
		}

		if quiet {
			continue
		}
		for _, warning := range r.Warnings {
			fmt.Fprintf(env.Stderr, "WARNING %s: %s\n", r.InputPath, warning)
		}
		for _, out := range r.Outputs {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, out, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "%s\n", out)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "Converted %d/%d file(s)\n", summary.Succeeded, len(results))
	}

	switch {
	case summary.Failed == 0:
		return ExitSuccess
	case summary.Succeeded > 0:
		return ExitPartial
	default:
		return exitCodeFor(firstErr)
	}
}

// sortedFormatErrs returns format keys in stable html, pdf, docx order.
func sortedFormatErrs(errs map[string]error) []string {
	var keys []string
	for _, format := range []string{resumeats.FormatHTML, resumeats.FormatPDF, resumeats.FormatDOCX} {
		if _, ok := errs[format]; ok {
			keys = append(keys, format)
		}
	}
	return keys
}
