// Package compiler orchestrates the full pipeline: read a .tiny script,
// translate it to C in a single pass, and optionally hand the result to
// the system C toolchain.
package compiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/Vipaswi/Compiler/emitter"
	"github.com/Vipaswi/Compiler/parser"
	"github.com/Vipaswi/Compiler/scanner"
)

// Compiler runs translations and native builds. The zero value is ready
// to use.
type Compiler struct {
	// CC is the C compiler to invoke for Build and Run. Defaults to the
	// TBC_CC environment variable, then "cc".
	CC string
}

// CompileResult holds the output of one translation.
type CompileResult struct {
	CSource    string
	SourceFile string
}

func (c *Compiler) cc() string {
	if c.CC != "" {
		return c.CC
	}
	if env := os.Getenv("TBC_CC"); env != "" {
		return env
	}
	return "cc"
}

// CompileSource translates tiny BASIC source into a complete C program.
// The name is used in diagnostics only.
func (c *Compiler) CompileSource(src, name string) (string, error) {
	em := emitter.New()

	p, err := parser.New(scanner.New(src), em)
	if err != nil {
		return "", errors.Wrap(err, "%v", name)
	}
	if err := p.Program(); err != nil {
		return "", errors.Wrap(err, "%v", name)
	}

	out := em.String()
	tlog.V("compile").Printw("translated", "name", name, "in_bytes", len(src), "out_bytes", len(out))
	return out, nil
}

// Compile reads a .tiny file and produces its C translation.
func (c *Compiler) Compile(filename string) (*CompileResult, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read source")
	}
	tlog.V("compile").Printw("read file", "size", len(src), "name", filename)

	out, err := c.CompileSource(string(src), filename)
	if err != nil {
		return nil, err
	}
	return &CompileResult{CSource: out, SourceFile: filename}, nil
}

// Emit translates a .tiny file and returns the generated C source.
func (c *Compiler) Emit(filename string) (string, error) {
	result, err := c.Compile(filename)
	if err != nil {
		return "", err
	}
	return result.CSource, nil
}

// Check translates a .tiny file and discards the output.
func (c *Compiler) Check(filename string) error {
	_, err := c.Compile(filename)
	return err
}

// Build translates a .tiny file and compiles it to a native binary. An
// empty output name defaults to the source basename without extension.
func (c *Compiler) Build(filename, output string) error {
	result, err := c.Compile(filename)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "tbc-*")
	if err != nil {
		return errors.Wrap(err, "creating temp dir")
	}
	defer os.RemoveAll(tmpDir)

	cFile := filepath.Join(tmpDir, "main.c")
	if err := os.WriteFile(cFile, []byte(result.CSource), 0644); err != nil {
		return errors.Wrap(err, "writing C source")
	}

	if output == "" {
		base := filepath.Base(filename)
		output = strings.TrimSuffix(base, filepath.Ext(base))
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return errors.Wrap(err, "resolving output path")
	}

	cmd := exec.Command(c.cc(), "-O2", "-o", absOutput, cFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "%v failed", c.cc())
	}

	tlog.V("compile").Printw("built binary", "output", absOutput, "cc", c.cc())
	return nil
}

// Run translates, builds, and executes a .tiny file, passing extraArgs to
// the compiled binary. The child's exit code is propagated.
func (c *Compiler) Run(filename string, extraArgs ...string) error {
	result, err := c.Compile(filename)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "tbc-*")
	if err != nil {
		return errors.Wrap(err, "creating temp dir")
	}
	defer os.RemoveAll(tmpDir)

	cFile := filepath.Join(tmpDir, "main.c")
	if err := os.WriteFile(cFile, []byte(result.CSource), 0644); err != nil {
		return errors.Wrap(err, "writing C source")
	}

	binFile := filepath.Join(tmpDir, "tbc_program")
	build := exec.Command(c.cc(), "-O2", "-o", binFile, cFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		return errors.Wrap(err, "compilation failed")
	}

	cmd := exec.Command(binFile, extraArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.RemoveAll(tmpDir)
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	return nil
}
