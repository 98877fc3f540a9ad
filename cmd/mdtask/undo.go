package main

import (
	"flag"
	"os"

	"mdtask/internal/core"
)

func runUndo(args []string) error {
	fs := flag.NewFlagSet("undo", flag.ContinueOnError)
	vault := fs.String("vault", ".", "vault root directory")
	format := fs.String("format", "text", "output format (json or text)")
	id := fs.String("id", "", "move id to revert (default: latest)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	result, err := core.Undo(*vault, *id)
	if err != nil {
		return err
	}
	if *format == "json" {
		return printUndoJSON(os.Stdout, result)
	}
	printUndoText(os.Stdout, result)
	return nil
}
