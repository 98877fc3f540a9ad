package main

import (
	"flag"
	"fmt"
	"os"

	"mdtask/internal/core"
)

func moveFlags(fs *flag.FlagSet) (vault, format, file *string, line *int, from, to *string) {
	vault = fs.String("vault", ".", "vault root directory")
	format = fs.String("format", "text", "output format (json or text)")
	file = fs.String("file", "", "note path (vault-relative)")
	line = fs.Int("line", -1, "zero-based line number of the task")
	from = fs.String("from", "", "source heading (default from mdtask.yaml)")
	to = fs.String("to", "", "destination heading (default from mdtask.yaml)")
	return
}

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	vault, format, file, line, from, to := moveFlags(fs)
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
	result, err := core.PlanTask(*vault, core.MoveTaskOptions{
		File:          *file,
		Line:          *line,
		SourceHeading: *from,
		DestHeading:   *to,
	})
	if err != nil {
		return err
	}
	if *format == "json" {
		return printMoveJSON(os.Stdout, result)
	}
	printMoveText(os.Stdout, result)
	return nil
}

func runMove(args []string) error {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	vault, format, file, line, from, to := moveFlags(fs)
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
	result, err := core.MoveTask(*vault, core.MoveTaskOptions{
		File:          *file,
		Line:          *line,
		SourceHeading: *from,
		DestHeading:   *to,
	})
	if err != nil {
		return err
	}
	if *format == "json" {
		return printMoveJSON(os.Stdout, result)
	}
	printMoveText(os.Stdout, result)
	return nil
}
