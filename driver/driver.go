// Package driver runs the compiler pipeline over source files and hands the
// result to an external toolchain.
package driver

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
	"golang.org/x/sync/errgroup"

	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/codegen"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/lexer"
	"github.com/pontaoski/chic/llvmgen"
	"github.com/pontaoski/chic/parser"
	"github.com/pontaoski/chic/typeenv"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/chic", "driver")

// Parse lexes and parses source with a fresh Env, returning both.
func Parse(source, filename string) ([]ast.Node, *typeenv.Env, error) {
	toks, err := lexer.Tokenize(source, filename)
	if err != nil {
		return nil, nil, err
	}
	plog.Debugf("%s: %d tokens", filename, len(toks))

	env := typeenv.New()
	nodes, err := parser.NewParser(env).Parse(toks)
	if err != nil {
		return nil, nil, err
	}
	plog.Debugf("%s: %d top level statements", filename, len(nodes))

	return nodes, env, nil
}

// Compile translates one source text into C or LLVM IR.
func Compile(source, filename string, target Target) (string, error) {
	nodes, env, err := Parse(source, filename)
	if err != nil {
		return "", err
	}

	var out string
	switch target {
	case TargetLLVM:
		out, err = llvmgen.Module(nodes, env)
	default:
		out, err = codegen.New().Program(nodes)
	}
	if err != nil {
		return "", err
	}
	plog.Debugf("%s: emitted %d bytes of %s", filename, len(out), target)

	return out, nil
}

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

type Builder struct {
	Config Config
	Runner Runner
	// Output names the binary when a single file is built. Empty means the
	// package name, then the file name without its extension.
	Output string
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func (b *Builder) output(path string, only bool) string {
	switch {
	case only && b.Output != "":
		return b.Output
	case only && b.Config.Package != "":
		return b.Config.Package
	}
	return stem(path)
}

func (b *Builder) build(ctx context.Context, path, output string) (err error) {
	target := b.Config.Target
	artifact := stem(path) + target.Ext()
	for _, generated := range []string{artifact, output} {
		if filepath.Clean(generated) == filepath.Clean(path) {
			return tracerr.Wrap(errors.CollaboratorError{Op: "write", Path: generated, Err: fmt.Errorf("would overwrite the source file")})
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return tracerr.Wrap(errors.CollaboratorError{Op: "read", Path: path, Err: err})
	}

	text, err := Compile(string(data), path, target)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(artifact, []byte(text), 0644); err != nil {
		return tracerr.Wrap(errors.CollaboratorError{Op: "write", Path: artifact, Err: err})
	}
	if !b.Config.Keep {
		defer func() {
			if rerr := os.Remove(artifact); rerr != nil && err == nil {
				err = tracerr.Wrap(errors.CollaboratorError{Op: "remove", Path: artifact, Err: rerr})
			}
		}()
	}

	compiler := b.Config.CompilerFor(target)
	args := append([]string{}, b.Config.Flags...)
	args = append(args, "-o", output, artifact)
	if target == TargetC {
		args = append(args, "-lm")
	}

	plog.Debugf("running %s %s", compiler, strings.Join(args, " "))
	if err := b.Runner.Run(ctx, compiler, args...); err != nil {
		plog.Errorf("%s failed on %s: %v", compiler, artifact, err)
		return tracerr.Wrap(errors.CollaboratorError{Op: compiler, Path: artifact, Err: err})
	}

	return nil
}

// Build compiles a single file into an executable.
func (b *Builder) Build(ctx context.Context, path string) error {
	return b.build(ctx, path, b.output(path, true))
}

// BuildAll compiles every file concurrently, each with its own Env. The
// first failure cancels the builds that have not finished.
func (b *Builder) BuildAll(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		path := path // per-iteration copy (go1.22 loop semantics on older toolchains)
		output := b.output(path, len(paths) == 1)
		g.Go(func() error {
			return b.build(ctx, path, output)
		})
	}

	return g.Wait()
}
