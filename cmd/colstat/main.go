package main

import (
	"fmt"
	"os"

	_ "github.com/brimdata/columnar/cmd/colstat/gen"
	_ "github.com/brimdata/columnar/cmd/colstat/load"
	"github.com/brimdata/columnar/cmd/colstat/root"
	_ "github.com/brimdata/columnar/cmd/colstat/verify"
)

func main() {
	if err := root.Colstat.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
