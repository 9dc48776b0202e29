package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/ogier/pflag"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "hide":
		err = HideCommand(args, os.Stdin, os.Stdout)
	case "seek":
		err = SeekCommand(args, os.Stdin, os.Stdout)
	case "checkdict":
		err = CheckDictCommand(args, os.Stdout)
	case "genconf":
		err = GenConfCommand(args, os.Stdout)
	default:
		help()
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(os.Args[1]+":", err)
	}
}

func fatal(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func help() {
	line := `Usage: wordveil <command> [arguments]

The following commands are supported:
	hide		turn a payload into cover text
	seek		recover the payload from cover text
	checkdict	load a dictionary and print its word counts
	genconf		write a default configuration file

Run 'wordveil <command> --help' for the arguments of a command.
Long options take their value after '=', as in --seed=42; short
options take it as the next argument, as in -s 42.
`
	fmt.Printf("%s", line)
}
