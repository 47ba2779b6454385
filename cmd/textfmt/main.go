package main

import (
	"context"
	"os"

	"github.com/bjaus/textfmt/internal/cli"
)

func main() {
	streams := cli.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
	os.Exit(cli.Execute(context.Background(), streams, os.Args[1:]))
}
