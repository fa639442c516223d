package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	green         = color.New(color.FgHiGreen).SprintFunc()
	yellow        = color.New(color.FgHiYellow).SprintFunc()
	red           = color.New(color.FgHiRed).SprintFunc()
)

func printInfo(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(out, "%s %s\n", infoPrefix, fmt.Sprintf(format, args...))
}

func printSuccess(out io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(out, "%s %s\n", successPrefix, fmt.Sprintf(format, args...))
}

func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %s\n", errorPrefix, red(err.Error()))
}
