package main

import "os"

// Set by release ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info := buildInfo{Version: version, Commit: commit, Date: date}
	if err := execute(info, os.Args[1:]); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
