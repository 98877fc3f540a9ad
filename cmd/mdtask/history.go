package main

import (
	"flag"
	"os"

	"mdtask/internal/core"
)

func runHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	vault := fs.String("vault", ".", "vault root directory")
	format := fs.String("format", "text", "output format (json or text)")
	file := fs.String("file", "", "restrict to one note (vault-relative)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}
	recs, err := core.History(*vault, *file)
	if err != nil {
		return err
	}
	if *format == "json" {
		return printHistoryJSON(os.Stdout, recs)
	}
	printHistoryText(os.Stdout, recs)
	return nil
}
