package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonkmatsumo/resume-parser/internal/config"
	"github.com/jonkmatsumo/resume-parser/internal/ingestion"
	"github.com/jonkmatsumo/resume-parser/internal/observability"
	"github.com/jonkmatsumo/resume-parser/internal/parsing"
	"github.com/jonkmatsumo/resume-parser/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse decoded resume text into structured JSON",
	Long: "Parse one or more decoded resume files (.txt, .md, .html) into structured candidate-profile JSON with a confidence report. " +
		"With no arguments, reads text from stdin and writes JSON to stdout. Multiple files are parsed concurrently, each to <file>.parsed.json.",
	RunE: runParse,
}

var (
	parseOutputFile string
	parseConfigFile string
	parseValidate   bool
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (single input only; default stdout)")
	parseCmd.Flags().StringVar(&parseConfigFile, "config", "", "Path to JSON config file")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate emitted JSON against the resume schema")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print extracted fields and confidence to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(parseConfigFile)
	if err != nil {
		return err
	}
	observability.InitLogger(cfg.LogLevel, cfg.LogFormat)
	validate := parseValidate || cfg.ValidateOutput
	verbose := parseVerbose || cfg.Verbose

	switch {
	case len(args) == 0:
		return parseStdin(validate, verbose)
	case len(args) == 1:
		return parseFile(args[0], parseOutputFile, validate, verbose)
	default:
		if parseOutputFile != "" {
			return fmt.Errorf("--out cannot be combined with multiple input files")
		}
		return parseBatch(args, validate)
	}
}

func parseStdin(validate, verbose bool) error {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	output, err := parseText(ingestion.CleanText(string(raw)), validate, verbose)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(output)
	return err
}

func parseFile(path, outPath string, validate, verbose bool) error {
	text, err := ingestion.IngestFile(path)
	if err != nil {
		return err
	}

	output, err := parseText(text, validate, verbose)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(outPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// parseBatch parses many files concurrently. Each invocation owns its input
// and result, so parallelism needs no coordination beyond the error group.
func parseBatch(paths []string, validate bool) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		g.Go(func() error {
			out := outputPathFor(path)
			if err := parseFile(path, out, validate, false); err != nil {
				return err
			}
			log.Info().Str("input", path).Str("output", out).Msg("parsed")
			return nil
		})
	}
	return g.Wait()
}

func outputPathFor(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".parsed.json"
}

func parseText(text string, validate, verbose bool) ([]byte, error) {
	result, err := parsing.Parse(text)
	if err != nil {
		return nil, err
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintBasics(&result.Data.Basics)
		printer.PrintSections(result.Data)
		printer.PrintConfidence(&result.Confidence)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	output = append(output, '\n')

	if validate {
		dataJSON, err := json.Marshal(result.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal record for validation: %w", err)
		}
		if err := schemas.ValidateParsedResume(dataJSON); err != nil {
			return nil, err
		}
	}

	return output, nil
}
