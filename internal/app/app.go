// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"biokit/internal/cli"
	"biokit/internal/output"
	"biokit/internal/record"
)

// Exit codes: 0 success (including downstream closing the pipe early),
// 1 data validation or parse failure, 2 usage error, 3 output write failure.
const (
	exitOK    = 0
	exitData  = 1
	exitUsage = 2
	exitWrite = 3
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	logger := log.New(stderr)
	logger.SetLevel(log.WarnLevel)
	logger.SetReportTimestamp(false)

	var debug bool
	root := cli.NewRoot()
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.PersistentPreRun = func(c *cobra.Command, args []string) {
		if debug {
			logger.SetLevel(log.DebugLevel)
		}
		logger.Debug("running subcommand", "command", c.Name(), "args", args)
	}

	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)
	root.SetContext(parent)

	err := root.Execute()

	if ferr := outw.Flush(); output.IsBrokenPipe(ferr) {
		return exitOK
	} else if ferr != nil {
		logger.Error(ferr.Error())
		return exitWrite
	}
	if err == nil {
		return exitOK
	}
	if output.IsBrokenPipe(err) {
		return exitOK
	}
	logger.Error(err.Error())
	if isDataError(err) {
		return exitData
	}
	return exitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// isDataError reports whether err belongs to the parse/validation taxonomy,
// as opposed to a usage mistake.
func isDataError(err error) bool {
	var (
		formatErr    *record.FormatError
		malformedErr *record.MalformedRecordError
		truncErr     *record.TruncatedInputError
		widthErr     *record.AlignmentWidthMismatchError
		emptyErr     *record.EmptyInputError
		symbolErr    *record.InvalidSymbolError
	)
	switch {
	case errors.As(err, &formatErr),
		errors.As(err, &malformedErr),
		errors.As(err, &truncErr),
		errors.As(err, &widthErr),
		errors.As(err, &emptyErr),
		errors.As(err, &symbolErr):
		return true
	}
	return false
}
