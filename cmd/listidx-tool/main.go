package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var (
	flags     *flag.FlagSet = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	Input     string
	Positions string
	Filler    string
	Indices   string
	Ordering  string
	Debug     bool
)

func init() {
	flags.Usage = func() {
		fmt.Printf(`Usage of %s:

Commands:
		vocab - assign dense ids to whitespace separated tokens
		postings - list the positions of every token
		dense - turn a JSON object of index to element into a JSON array
		remove - remove positions from a JSON array
		apply - apply JSON lines of put/remove operations to an indexed map
`, os.Args[0])
		flags.PrintDefaults()
	}
	flags.BoolVar(&Debug, "debug", false, "enable debug logging")
	flags.StringVar(&Input, "in", "", "read input from this file instead of stdin")
	flags.StringVar(&Positions, "positions", "list", "position collection for postings: list, set or sorted")
	flags.StringVar(&Filler, "filler", "", "filler for unassigned slots in dense output")
	flags.StringVar(&Indices, "indices", "", "comma separated positions to remove")
	flags.StringVar(&Ordering, "ordering", "none", "declared order of -indices: none, asc or desc")
}

func main() {
	flags.Parse(os.Args[1:])
	if len(flags.Args()) != 1 {
		fmt.Printf("error: expected command. got %v\n", flags.Args())
		flags.Usage()
		os.Exit(1)
	}

	if Debug {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	var cmdHandler func(io.Reader, io.Writer) error
	switch name := flags.Arg(0); name {
	case "vocab":
		cmdHandler = vocab
	case "postings":
		cmdHandler = func(r io.Reader, w io.Writer) error {
			return postings(r, w, Positions)
		}
	case "dense":
		cmdHandler = func(r io.Reader, w io.Writer) error {
			return denseArray(r, w, Filler)
		}
	case "remove":
		cmdHandler = func(r io.Reader, w io.Writer) error {
			return remove(r, w, Indices, Ordering)
		}
	case "apply":
		cmdHandler = apply
	default:
		fmt.Printf("error: unexpected command %s\n", name)
		flags.Usage()
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if Input != "" {
		f, err := os.Open(Input)
		if err != nil {
			fmt.Printf("error: could not open input %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := cmdHandler(in, os.Stdout); err != nil {
		slog.Debug("command failed", slog.String("command", flags.Arg(0)), slog.Any("error", err))
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
}
