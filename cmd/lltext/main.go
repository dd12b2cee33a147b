package main

import (
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"tlog.app/go/tlog"

	"github.com/kartiknair/lltext/pkg/ir"
)

func emit(m *ir.Module, w io.Writer) (int64, error) {
	n, err := m.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, "write module")
	}
	return n, nil
}

func emitFile(m *ir.Module, path string) (int64, error) {
	if path == "" || path == "-" {
		return emit(m, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "create output")
	}
	defer f.Close()

	n, err := emit(m, f)
	if err != nil {
		return n, errors.Wrapf(err, "emit %s", path)
	}
	return n, f.Close()
}

func main() {
	var (
		output  string
		dump    bool
		viaLLIR bool
	)

	app := &cli.App{
		Name:  "lltext",
		Usage: "Builds LLVM IR in memory and prints it as text.",
		Commands: []*cli.Command{
			{
				Name:  "example",
				Usage: "Emits a sample module.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "output",
						Aliases:     []string{"o"},
						Value:       "-",
						Usage:       "File to write the module to, - for stdout.",
						EnvVars:     []string{"LLTEXT_OUTPUT"},
						Destination: &output,
					},
					&cli.BoolFlag{
						Name:        "dump",
						Usage:       "Print the model tree instead of the IR text.",
						Destination: &dump,
					},
					&cli.BoolFlag{
						Name:        "llir",
						Usage:       "Build the module with llir and import it.",
						Destination: &viaLLIR,
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() > 0 {
						return errors.New("example takes no arguments")
					}

					m := sampleModule()
					if viaLLIR {
						var err error
						m, err = sampleLLIR()
						if err != nil {
							return err
						}
					}

					if dump {
						repr.Println(m)
						return nil
					}

					n, err := emitFile(m, output)
					if err != nil {
						return err
					}
					tlog.Printw("emitted module", "funcs", len(m.Funcs), "bytes", n, "output", output, "llir", viaLLIR)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		tlog.Printw("lltext failed", "err", err)
		os.Exit(1)
	}
}
