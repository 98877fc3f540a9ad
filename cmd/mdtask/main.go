package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "move":
		err = runMove(os.Args[2:])
	case "undo":
		err = runUndo(os.Args[2:])
	case "history":
		err = runHistory(os.Args[2:])
	case "block":
		err = runBlock(os.Args[2:])
	case "section":
		err = runSection(os.Args[2:])
	case "lines":
		err = runLines(os.Args[2:])
	case "--version":
		printVersion(os.Stdout)
		return
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion(w io.Writer) {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	fmt.Fprintf(w, "mdtask version %s\n", v)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: mdtask <command> [options]

Move Commands:
  plan     Compute the edit for moving a task block, without applying it
  move     Move a task block between sections and journal the edit
  undo     Revert a journaled move
  history  List journaled moves

Inspect Commands:
  block    Show the block that would move for a given line
  section  Locate a section and its insertion point
  lines    Classify every line of a note

Line numbers are zero-based. Run 'mdtask <command> --help' for
command-specific help. Use 'mdtask --version' for version information.
`)
}
