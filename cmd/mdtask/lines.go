package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mdtask/internal/core"
)

func runLines(args []string) error {
	fs := flag.NewFlagSet("lines", flag.ContinueOnError)
	vault := fs.String("vault", ".", "vault root directory")
	format := fs.String("format", "text", "output format (json or text)")
	file := fs.String("file", "", "note path (vault-relative)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(filepath.Join(*vault, filepath.FromSlash(*file)))
	if err != nil {
		return err
	}
	lines := core.SplitLines(string(data))
	out := make([]lineOutput, len(lines))
	for i, line := range lines {
		info := core.Classify(line)
		out[i] = lineOutput{
			Index: i,
			Kind:  lineKind(info),
			Depth: info.Depth,
			Text:  core.DisplayText(info.Content),
		}
		if info.Task {
			out[i].State = string(info.Marker)
		}
	}
	if *format == "json" {
		return printLinesJSON(os.Stdout, out)
	}
	printLinesText(os.Stdout, out)
	return nil
}
