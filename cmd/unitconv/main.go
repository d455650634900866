// Command unitconv converts amounts between units of distance, mass,
// temperature and time.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rshade/unitconv/internal/cli"
	"github.com/rshade/unitconv/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if cli.IsUsageError(err) {
			_, _ = fmt.Fprintln(stderr, "Run 'unitconv categories' and 'unitconv units <category>' to see valid units.")
		}
	}
	return exitCode(err)
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
