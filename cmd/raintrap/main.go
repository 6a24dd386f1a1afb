package main

import (
	"context"
	"os"
)

func main() {
	// Standard streams and arguments are passed in so run can be tested in isolation.
	os.Exit(run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr))
}
