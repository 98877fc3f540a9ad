package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"mdtask/internal/core"
)

func runBlock(args []string) error {
	fs := flag.NewFlagSet("block", flag.ContinueOnError)
	vault := fs.String("vault", ".", "vault root directory")
	format := fs.String("format", "text", "output format (json or text)")
	file := fs.String("file", "", "note path (vault-relative)")
	line := fs.Int("line", -1, "zero-based line number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}
	if *line < 0 {
		return fmt.Errorf("--line is required")
	}
	data, err := os.ReadFile(filepath.Join(*vault, filepath.FromSlash(*file)))
	if err != nil {
		return err
	}
	lines := core.SplitLines(string(data))
	if *line >= len(lines) {
		return fmt.Errorf("line %d out of range (%d lines)", *line, len(lines))
	}
	sec := core.EnclosingSection(lines, *line)
	root := core.FindRootAncestor(lines, *line, sec.Start)
	if root < 0 {
		return fmt.Errorf("line %d out of range (%d lines)", *line, len(lines))
	}
	block := core.CollectBlock(lines, root, sec.End)
	out := blockOutput{
		File:  core.NormalizePath(*file),
		Line:  *line,
		Root:  root,
		Block: block,
		Lines: lines[block.Start:block.End],
	}
	if *format == "json" {
		return printBlockJSON(os.Stdout, out)
	}
	printBlockText(os.Stdout, out)
	return nil
}
