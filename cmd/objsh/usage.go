package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  objsh [flags]                 start an interactive session")
	fmt.Fprintln(os.Stderr, "  objsh [flags] repl")
	fmt.Fprintln(os.Stderr, "  objsh [flags] run <file>")
	fmt.Fprintln(os.Stderr, "  objsh [flags] <file>")
	fmt.Fprintln(os.Stderr, "  objsh [flags] eval <program>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -h, --help             show this help")
	fmt.Fprintln(os.Stderr, "  -V, --version          print the version")
	fmt.Fprintln(os.Stderr, "  --log-level=<level>    debug|verbose|info|warning|error|critical|fatal")
	fmt.Fprintln(os.Stderr, "  --config=<path>        config file (default $OBJSH_CONFIG or $OBJSH_HOME/config.yml)")
}
