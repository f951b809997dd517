package driver

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"github.com/pontaoski/chic/errors"
)

const ConfigFile = "chi.yaml"

type Target string

const (
	TargetC    Target = "c"
	TargetLLVM Target = "llvm"
)

// Ext is the file extension of the intermediate artifact for t.
func (t Target) Ext() string {
	if t == TargetLLVM {
		return ".ll"
	}
	return ".c"
}

func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetC, TargetLLVM:
		return Target(s), nil
	}
	return "", fmt.Errorf("unknown target %q, expected c or llvm", s)
}

// Config is the project file written by `chic init`.
type Config struct {
	Package  string   `yaml:"package"`
	Compiler string   `yaml:"compiler,omitempty"`
	Flags    []string `yaml:"flags,omitempty"`
	Target   Target   `yaml:"target"`
	Keep     bool     `yaml:"keep"`
}

func DefaultConfig(pkg string) Config {
	return Config{
		Package: pkg,
		Target:  TargetC,
	}
}

// CompilerFor returns the configured compiler, falling back to gcc for C and
// clang for LLVM IR.
func (c Config) CompilerFor(t Target) string {
	if c.Compiler != "" {
		return c.Compiler
	}
	if t == TargetLLVM {
		return "clang"
	}
	return "gcc"
}

// LoadConfig reads path. A missing file is not an error and yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		plog.Debugf("no %s, using defaults", path)
		return DefaultConfig(""), nil
	}
	if err != nil {
		return Config{}, tracerr.Wrap(errors.CollaboratorError{Op: "read", Path: path, Err: err})
	}

	conf := DefaultConfig("")
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, tracerr.Wrap(errors.CollaboratorError{Op: "parse", Path: path, Err: err})
	}
	if conf.Target == "" {
		conf.Target = TargetC
	}
	if _, err := ParseTarget(string(conf.Target)); err != nil {
		return Config{}, tracerr.Wrap(errors.CollaboratorError{Op: "parse", Path: path, Err: err})
	}

	return conf, nil
}

func WriteConfig(path string, conf Config) error {
	out, err := yaml.Marshal(conf)
	if err != nil {
		return tracerr.Wrap(err)
	}

	if err := ioutil.WriteFile(path, out, 0644); err != nil {
		return tracerr.Wrap(errors.CollaboratorError{Op: "write", Path: path, Err: err})
	}
	return nil
}
