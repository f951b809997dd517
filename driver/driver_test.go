package driver

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/errors"
)

type call struct {
	name string
	args []string
	// artifact contents at the time the compiler ran
	text string
}

type fakeRunner struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := call{name: name, args: args}
	for _, arg := range args {
		if strings.HasSuffix(arg, ".c") || strings.HasSuffix(arg, ".ll") {
			data, err := ioutil.ReadFile(arg)
			if err != nil {
				return err
			}
			c.text = string(data)
		}
	}
	f.calls = append(f.calls, c)
	return f.err
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestCompile(t *testing.T) {
	out, err := Compile("i32 x = 5", "x.ch", TargetC)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "long x = 5;") {
		t.Fatalf("unexpected C output:\n%s", out)
	}

	out, err = Compile("i32 x = 5", "x.ch", TargetLLVM)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "define i32 @main()") {
		t.Fatalf("unexpected LLVM output:\n%s", out)
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"lex", "x = 1 $", func(err error) bool { _, ok := err.(errors.LexError); return ok }},
		{"segment", "end", func(err error) bool { _, ok := err.(errors.SegmentationError); return ok }},
		{"type", "y = 1", func(err error) bool { _, ok := err.(errors.TypeError); return ok }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Compile(c.input, "bad.ch", TargetC)
			if !c.check(tracerr.Unwrap(err)) {
				t.Fatalf("wrong error %T: %v", tracerr.Unwrap(err), err)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	dir, err := ioutil.TempDir("", "chic")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeSource(t, dir, "hello.ch", "print(\"hello\")")
	runner := &fakeRunner{}
	b := &Builder{
		Config: Config{Package: "hello", Target: TargetC, Flags: []string{"-O2"}},
		Runner: runner,
	}

	if err := b.Build(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("expected one compiler call, got %+v", runner.calls)
	}
	got := runner.calls[0]
	artifact := filepath.Join(dir, "hello.c")
	want := []string{"-O2", "-o", "hello", artifact, "-lm"}
	if got.name != "gcc" || repr.String(got.args) != repr.String(want) {
		t.Fatalf("got %s %s, want gcc %s", got.name, repr.String(got.args), repr.String(want))
	}
	if !strings.Contains(got.text, `printf("hello");`) {
		t.Fatalf("artifact did not hold the program:\n%s", got.text)
	}
	if exists(artifact) {
		t.Fatalf("%s should have been removed", artifact)
	}
}

func TestBuildKeepsArtifact(t *testing.T) {
	dir, err := ioutil.TempDir("", "chic")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeSource(t, dir, "prog.ch", "i32 x = 1")
	runner := &fakeRunner{}
	b := &Builder{
		Config: Config{Target: TargetLLVM, Keep: true},
		Runner: runner,
		Output: "out",
	}

	if err := b.Build(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	artifact := filepath.Join(dir, "prog.ll")
	if !exists(artifact) {
		t.Fatalf("%s should have been kept", artifact)
	}
	want := []string{"-o", "out", artifact}
	if runner.calls[0].name != "clang" || repr.String(runner.calls[0].args) != repr.String(want) {
		t.Fatalf("unexpected call %+v", runner.calls[0])
	}
}

func TestBuildCompilerFailure(t *testing.T) {
	dir, err := ioutil.TempDir("", "chic")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := writeSource(t, dir, "prog.ch", "i32 x = 1")
	b := &Builder{
		Config: DefaultConfig(""),
		Runner: &fakeRunner{err: fmt.Errorf("exit status 1")},
	}

	err = b.Build(context.Background(), path)
	if _, ok := tracerr.Unwrap(err).(errors.CollaboratorError); !ok {
		t.Fatalf("expected a CollaboratorError, got %T: %v", err, err)
	}
	if exists(filepath.Join(dir, "prog.c")) {
		t.Fatalf("artifact should be removed after a failed compile")
	}
}

func TestBuildRefusesToOverwriteSource(t *testing.T) {
	cases := []struct {
		name   string
		file   string
		target Target
	}{
		{"c source", "prog.c", TargetC},
		{"llvm source", "prog.ll", TargetLLVM},
		{"source without an extension", "prog", TargetC},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir, err := ioutil.TempDir("", "chic")
			if err != nil {
				t.Fatal(err)
			}
			defer os.RemoveAll(dir)

			src := "i32 x = 1"
			path := writeSource(t, dir, c.file, src)
			runner := &fakeRunner{}
			b := &Builder{Config: Config{Target: c.target}, Runner: runner}

			err = b.Build(context.Background(), path)
			if _, ok := tracerr.Unwrap(err).(errors.CollaboratorError); !ok {
				t.Fatalf("expected a CollaboratorError, got %T: %v", err, err)
			}
			if len(runner.calls) != 0 {
				t.Fatalf("the compiler should not run, got %+v", runner.calls)
			}
			data, err := ioutil.ReadFile(path)
			if err != nil {
				t.Fatalf("source was removed: %s", err)
			}
			if string(data) != src {
				t.Fatalf("source was overwritten with:\n%s", data)
			}
		})
	}
}

func TestBuildMissingFile(t *testing.T) {
	b := &Builder{Config: DefaultConfig(""), Runner: &fakeRunner{}}

	err := b.Build(context.Background(), filepath.Join(os.TempDir(), "does-not-exist.ch"))
	if _, ok := tracerr.Unwrap(err).(errors.CollaboratorError); !ok {
		t.Fatalf("expected a CollaboratorError, got %T: %v", err, err)
	}
}

func TestBuildAll(t *testing.T) {
	dir, err := ioutil.TempDir("", "chic")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	var paths []string
	for i := 0; i < 4; i++ {
		paths = append(paths, writeSource(t, dir, fmt.Sprintf("p%d.ch", i), fmt.Sprintf("i32 v%d = %d", i, i)))
	}

	runner := &fakeRunner{}
	b := &Builder{Config: Config{Package: "ignored", Target: TargetC}, Runner: runner}
	if err := b.BuildAll(context.Background(), paths); err != nil {
		t.Fatal(err)
	}

	if len(runner.calls) != len(paths) {
		t.Fatalf("expected %d calls, got %d", len(paths), len(runner.calls))
	}
	for _, c := range runner.calls {
		out := c.args[1]
		if !strings.HasPrefix(filepath.Base(out), "p") {
			t.Errorf("multi file builds name outputs after the source, got %s", out)
		}
		name := strings.TrimPrefix(filepath.Base(out), "p")
		if !strings.Contains(c.text, "long v"+name+" = "+name+";") {
			t.Errorf("%s compiled the wrong program:\n%s", out, c.text)
		}
	}
}

func TestBuildAllStopsOnError(t *testing.T) {
	dir, err := ioutil.TempDir("", "chic")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	good := writeSource(t, dir, "good.ch", "i32 x = 1")
	bad := writeSource(t, dir, "bad.ch", "x = 1")

	b := &Builder{Config: DefaultConfig(""), Runner: &fakeRunner{}}
	err = b.BuildAll(context.Background(), []string{good, bad})
	if err == nil {
		t.Fatalf("expected the bad file to fail the build")
	}
}
