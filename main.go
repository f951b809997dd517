package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/driver"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/lexer"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/chic", "main")

func readSource(c *cli.Context) (string, string, error) {
	file := c.Args().First()
	if file == "" {
		return "", "", fmt.Errorf("no source file provided")
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return "", "", tracerr.Wrap(errors.CollaboratorError{Op: "read", Path: file, Err: err})
	}
	return string(data), file, nil
}

// loadConfig reads chi.yaml and applies the flags given on the command line.
func loadConfig(c *cli.Context) (driver.Config, error) {
	conf, err := driver.LoadConfig(driver.ConfigFile)
	if err != nil {
		return conf, err
	}

	if c.IsSet("target") {
		conf.Target, err = driver.ParseTarget(c.String("target"))
		if err != nil {
			return conf, err
		}
	}
	if c.IsSet("compiler") {
		conf.Compiler = c.String("compiler")
	}
	if c.IsSet("keep") {
		conf.Keep = c.Bool("keep")
	}

	return conf, nil
}

var targetFlag = &cli.StringFlag{
	Name:  "target",
	Usage: "c or llvm",
	Value: string(driver.TargetC),
}

func main() {
	app := &cli.App{
		Name:  "chic",
		Usage: "compile chi source to C",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG, TRACE",
				Value: "WARNING",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := capnslog.ParseLevel(strings.ToUpper(c.String("log-level")))
			if err != nil {
				return err
			}
			capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, level >= capnslog.DEBUG))
			capnslog.SetGlobalLogLevel(level)
			return nil
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a chi.yaml project file",
				ArgsUsage: "<package>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return fmt.Errorf("no package name provided")
					}
					return driver.WriteConfig(driver.ConfigFile, driver.DefaultConfig(name))
				},
			},
			{
				Name:      "build",
				Usage:     "compile source files into executables",
				ArgsUsage: "<file>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "name of the executable when building one file",
					},
					targetFlag,
					&cli.BoolFlag{
						Name:  "keep",
						Usage: "keep the intermediate .c or .ll file",
					},
					&cli.StringFlag{
						Name:  "compiler",
						Usage: "external compiler to invoke",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("no source files provided")
					}
					conf, err := loadConfig(c)
					if err != nil {
						return err
					}

					b := &driver.Builder{
						Config: conf,
						Runner: driver.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
						Output: c.String("output"),
					}
					plog.Infof("building %d files for target %s", c.NArg(), conf.Target)
					return b.BuildAll(context.Background(), c.Args().Slice())
				},
			},
			{
				Name:      "emit",
				Usage:     "print the generated code for a file",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{targetFlag},
				Action: func(c *cli.Context) error {
					src, file, err := readSource(c)
					if err != nil {
						return err
					}
					conf, err := loadConfig(c)
					if err != nil {
						return err
					}

					out, err := driver.Compile(src, file, conf.Target)
					if err != nil {
						return err
					}
					fmt.Print(out)
					return nil
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the token stream of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, file, err := readSource(c)
					if err != nil {
						return err
					}
					toks, err := lexer.Tokenize(src, file)
					if err != nil {
						return err
					}
					repr.Println(toks)
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, file, err := readSource(c)
					if err != nil {
						return err
					}
					nodes, _, err := driver.Parse(src, file)
					if err != nil {
						return err
					}
					repr.Println(nodes)
					return nil
				},
			},
			{
				Name:      "typeinfo",
				Usage:     "print the functions and variables a file declares",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, file, err := readSource(c)
					if err != nil {
						return err
					}
					_, env, err := driver.Parse(src, file)
					if err != nil {
						return err
					}
					out, err := env.TypeInfo().Marshal()
					if err != nil {
						return tracerr.Wrap(err)
					}
					fmt.Print(string(out))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}
