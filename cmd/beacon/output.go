package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/beacon/internal/report"
)

// addOutputFlags registers the output format flags shared by the read-path
// commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to the specified file path (creates directories if needed)")
}

// resolveWriter builds the report writer selected by the output flags.
// The returned cleanup function closes the output file, if one was opened.
func resolveWriter(cmd *cobra.Command) (report.Writer, func(), error) {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, nil, err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, nil, err
	}
	if jsonOutput && markdownOutput {
		return nil, nil, fmt.Errorf("--json and --markdown are mutually exclusive")
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}

	output, cleanup, err := openOutput(outputPath)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case jsonOutput:
		return report.NewJSONWriter(output, report.WithPrettyPrint()), cleanup, nil
	case markdownOutput:
		return report.NewMarkdownWriter(output), cleanup, nil
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(getVerboseFlag(cmd))), cleanup, nil
	}
}

// openOutput opens the output destination: a file when path is non-empty,
// stdout otherwise.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
