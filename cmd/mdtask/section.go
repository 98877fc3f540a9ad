package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mdtask/internal/core"
)

func runSection(args []string) error {
	fs := flag.NewFlagSet("section", flag.ContinueOnError)
	vault := fs.String("vault", ".", "vault root directory")
	format := fs.String("format", "text", "output format (json or text)")
	file := fs.String("file", "", "note path (vault-relative)")
	heading := fs.String("heading", "", "heading text, markers included (e.g. \"## Log\")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}
	if *heading == "" {
		return fmt.Errorf("--heading is required")
	}
	data, err := os.ReadFile(filepath.Join(*vault, filepath.FromSlash(*file)))
	if err != nil {
		return err
	}
	lines := core.SplitLines(string(data))
	sec := core.FindSection(lines, *heading)
	if sec == nil {
		return fmt.Errorf("heading not found: %s", *heading)
	}
	out := sectionOutput{
		File:          core.NormalizePath(*file),
		Heading:       *heading,
		Start:         sec.Start,
		End:           sec.End,
		InsertionLine: core.FindInsertionLine(lines, sec.Start, sec.End),
	}
	if *format == "json" {
		return printSectionJSON(os.Stdout, out)
	}
	printSectionText(os.Stdout, out)
	return nil
}
