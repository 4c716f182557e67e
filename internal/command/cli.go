package command

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/maxmcd/calc/internal/calculator"
	"github.com/maxmcd/calc/internal/logger"
	"github.com/maxmcd/calc/internal/tracing"
	"github.com/maxmcd/calc/internal/tui"
	"github.com/mitchellh/go-wordwrap"
	"github.com/moby/term"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"
)

var (
	commandHelpTemplate = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}}{{if .VisibleFlags}} [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}{{if .Category}}

Category:
   {{.Category}}{{end}}{{if .Description}}

Description:
   {{.Description | nindent 3 | trim}}{{end}}{{if .VisibleFlags}}

Options:{{range .VisibleFlags}}
   {{.}}{{end}}{{end}}
`

	appHelpTemplate = `Usage: {{.Usage}}
	{{.Description | nindent 3 | trim}}
Commands:{{range .VisibleCategories}}{{if .Name}}
	{{.Name}}:{{range .VisibleCommands}}
	  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
	{{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{end}}{{end}}

Options:
	{{range $index, $option := .VisibleFlags}}{{if $index}}
	{{end}}{{$option}}{{end}}
`
)

var tracer trace.Tracer

func init() {
	tracer = tracing.Tracer("command")
}

func cliApp(stdout, stderr io.Writer) *cli.App {
	newCalcFromContext := func(c *cli.Context) (calc, error) {
		cc, err := newCalc(c.String("config"), stdout, stderr)
		if err != nil {
			return cc, err
		}
		if c.IsSet("precision") {
			cc.config.Display.Precision = c.Int("precision")
		}
		return cc, nil
	}
	app := &cli.App{
		Name:                  "calc",
		Usage:                 "calc [--version] [--help] [--config <file>] <command> [args]",
		Version:               "0.1.0",
		HideHelpCommand:       true,
		CustomAppHelpTemplate: appHelpTemplate,
		Writer:                stdout,
		ErrWriter:             stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a calc.toml config file, defaults to $CALC_CONFIG or ./calc.toml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "eval",
				Usage: "Evaluate an expression",
				UsageText: `calc eval [options] <expression>

Evaluates an infix expression of numbers and the operators + - × ÷ using the
usual precedence, × and ÷ before + and -, left to right otherwise. * and / are
accepted in place of × and ÷. Arguments are joined, so these are the same:

calc eval 3+4*2
calc eval 3 + 4 '*' 2
`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "rpn",
						Usage: "print the expression in postfix (reverse polish) order instead of evaluating it",
					},
					&cli.StringFlag{
						Name:  "remote",
						Usage: "evaluate with a calc server at this url instead of locally, eg: \"http://localhost:2727\"",
					},
					&cli.IntFlag{
						Name:  "precision",
						Usage: "round results to this many decimal places, overrides the config",
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() == 0 {
						return cli.ShowCommandHelp(c, "eval")
					}
					cc, err := newCalcFromContext(c)
					if err != nil {
						return err
					}
					return cc.eval(c.Context, c.Args().Slice(), evalOptions{
						rpn:    c.Bool("rpn"),
						remote: c.String("remote"),
					})
				},
			},
			{
				Name:  "keys",
				Usage: "Replay keystrokes through the calculator",
				UsageText: `calc keys [options] <key>...

Each argument is a single keystroke as it would be typed on the keypad: digits,
".", "+", "-", "×" or "*", "÷" or "/", "=" or "Enter", "AC" or "Escape" to
clear, and "Backspace". Unknown keys are ignored. Both displays are printed
once every key has been pressed.

calc keys 1 2 + 3 = '*' 2 =
`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "precision",
						Usage: "round results to this many decimal places, overrides the config",
					},
				},
				Action: func(c *cli.Context) error {
					cc, err := newCalcFromContext(c)
					if err != nil {
						return err
					}
					return cc.keys(c.Args().Slice())
				},
			},
			{
				Name:      "tui",
				Usage:     "Open the interactive calculator",
				UsageText: "calc tui",
				Action: func(c *cli.Context) error {
					if !term.IsTerminal(os.Stdin.Fd()) {
						return errors.New("calc tui needs an interactive terminal, try \"calc keys\"")
					}
					cc, err := newCalcFromContext(c)
					if err != nil {
						return err
					}
					state := calculator.New()
					state.Precision = cc.config.Display.Precision
					return tui.New(state, cc.config.Theme()).Start()
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the calculator over http",
				UsageText: `calc serve [options]

serve starts an http server with the endpoints:

POST /convert   {"expression": "3+4×2"} -> {"postfix": "3 4 2 × +"}
POST /evaluate  {"expression": "3+4×2"} -> {"result": "11"}
POST /keys      {"keys": ["3", "+", "4", "="]} -> {"expression": "3+4", "result": "7"}
GET  /healthz
`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "port",
						Usage: "the port that the server will listen on, defaults to the config value",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "the host that the server will listen on, defaults to the config value",
					},
				},
				Action: func(c *cli.Context) error {
					cc, err := newCalcFromContext(c)
					if err != nil {
						return err
					}
					if c.IsSet("host") {
						cc.config.Server.Host = c.String("host")
					}
					if c.IsSet("port") {
						cc.config.Server.Port = c.String("port")
					}
					return cc.serve(c.Context, cc.config.Addr())
				},
			},
			{
				Name:      "config",
				Usage:     "Print the config in use",
				UsageText: "calc config",
				Action: func(c *cli.Context) error {
					cc, err := newCalcFromContext(c)
					if err != nil {
						return err
					}
					cc.config.Render(stdout)
					return nil
				},
			},
		},
	}

	for _, c := range app.Commands {
		c.CustomHelpTemplate = commandHelpTemplate

		// Wrap the options help to 80 width. Requires knowledge of the longest
		// flag length. Assumes there are never aliases.
		longest := 0
		for _, flag := range c.Flags {
			for _, name := range flag.Names() {
				if len(name) > longest {
					longest = len(name)
				}
			}
		}
		for _, flag := range c.Flags {
			switch c := flag.(type) {
			case *cli.BoolFlag:
				c.Usage = formatFlag(c.Usage, longest)
			case *cli.StringFlag:
				c.Usage = formatFlag(c.Usage, longest)
			case *cli.IntFlag:
				c.Usage = formatFlag(c.Usage, longest)
			}
		}
	}
	return app
}

// RunCLI runs the cli with os.Args
func RunCLI() {
	if err := tracing.Setup(); err != nil {
		logger.Print(err)
		os.Exit(1)
	}
	defer tracing.Stop()

	// Patch cli lib to remove bool default
	oldFlagStringer := cli.FlagStringer
	cli.FlagStringer = func(f cli.Flag) string {
		return strings.TrimSuffix(oldFlagStringer(f), " (default: false)")
	}

	app := cliApp(os.Stdout, os.Stderr)
	log.SetOutput(ioutil.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		s := make(chan os.Signal, 5)
		count := 0
		signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
		for {
			<-s
			count++
			cancel()
			if count == 3 {
				fmt.Println("Three interrupt attempts, exiting immediately")
				os.Exit(1)
			}
		}
	}()
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Print(err)
		// Explicitly call stop since the Exit will not call the defer
		tracing.Stop()
		os.Exit(1)
	}
}

func formatFlag(usage string, longest int) string {
	return strings.ReplaceAll(
		wordwrap.WrapString(usage,
			uint(80-3-longest-3),
		), "\n", "\n\t")
}
