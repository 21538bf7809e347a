// Package cmd implements the tbc command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"tlog.app/go/tlog"

	"github.com/Vipaswi/Compiler/compiler"
)

// Execute runs the tbc CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "tbc",
		Usage:                  "A tiny BASIC dialect that compiles to C",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "debug",
				Usage: "Enable debug tracing topics (e.g. \"compile\")",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if topics := cmd.String("debug"); topics != "" {
				setDebugTopics(topics)
			}
			return ctx, nil
		},
		// Allow `tbc script.tiny` as shorthand for `tbc run script.tiny`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				arg := cmd.Args().First()
				if strings.HasSuffix(arg, ".tiny") || isScript(arg) {
					comp := &compiler.Compiler{}
					return comp.Run(arg, cmd.Args().Tail()...)
				}
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:            "run",
				Usage:           "Compile and run a .tiny file",
				ArgsUsage:       "<file.tiny> [args...]",
				SkipFlagParsing: true,
				Action:          runAction,
			},
			{
				Name:      "build",
				Usage:     "Compile a .tiny file to a native binary",
				ArgsUsage: "<file.tiny>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output binary name",
					},
				},
				Action: buildAction,
			},
			{
				Name:      "emit",
				Usage:     "Output the generated C source code",
				ArgsUsage: "<file.tiny>",
				Action:    emitAction,
			},
			{
				Name:      "check",
				Usage:     "Translate files and report diagnostics without building",
				ArgsUsage: "<file.tiny>...",
				Action:    checkAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tbc run <file.tiny> [args...]")
	}
	comp := &compiler.Compiler{}
	return comp.Run(cmd.Args().First(), cmd.Args().Tail()...)
}

func buildAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tbc build [-o output] <file.tiny>")
	}
	comp := &compiler.Compiler{}
	output := cmd.String("output")
	// Also check if -o was passed after the filename (urfave quirk)
	if output == "" {
		for i, arg := range os.Args {
			if (arg == "-o" || arg == "--output") && i+1 < len(os.Args) {
				output = os.Args[i+1]
			}
		}
	}
	return comp.Build(cmd.Args().First(), output)
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tbc emit <file.tiny>")
	}
	comp := &compiler.Compiler{}
	src, err := comp.Emit(cmd.Args().First())
	if err != nil {
		return err
	}
	fmt.Print(src)
	return nil
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tbc check <file.tiny>...")
	}

	useColor := term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == ""
	green, red, reset := "\033[32m", "\033[31m", "\033[0m"
	if !useColor {
		green, red, reset = "", "", ""
	}

	comp := &compiler.Compiler{}
	failed := 0
	for _, f := range cmd.Args().Slice() {
		if err := comp.Check(f); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%sFAIL%s %v\n", red, reset, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "%sOK%s   %s\n", green, reset, f)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, cmd.NArg())
	}
	return nil
}

// setDebugTopics enables tlog tracing for the given comma-separated topics.
func setDebugTopics(topics string) {
	tlog.SetVerbosity(topics)
}

// isScript checks if a file exists and looks like an executable script.
// Shebang lines start with #, which the scanner treats as a comment.
func isScript(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, 64)
	n, _ := f.Read(buf)
	return strings.HasPrefix(string(buf[:n]), "#!")
}
