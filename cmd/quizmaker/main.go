package main

import (
	"flag"
	"os"

	"quizmaker/internal/cli"
)

func main() {
	// glog reads its settings from the global flag set; commands parse their own.
	_ = flag.CommandLine.Parse([]string{"-logtostderr"})
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
