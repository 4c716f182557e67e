package command

import (
	"context"
	"strings"

	"github.com/maxmcd/calc/internal/calculator"
	"github.com/maxmcd/calc/internal/errs"
	"github.com/maxmcd/calc/internal/expr"
	"github.com/maxmcd/calc/internal/server"
	"github.com/maxmcd/calc/pkg/fxt"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// asciiOperators lets expressions be typed without the × and ÷ glyphs
var asciiOperators = strings.NewReplacer("*", expr.MultiplySymbol, "/", expr.DivideSymbol)

type evalOptions struct {
	rpn    bool
	remote string
}

func (c calc) eval(ctx context.Context, args []string, eo evalOptions) (err error) {
	ctx, span := tracer.Start(ctx, "calc eval")
	defer span.End()

	expression := asciiOperators.Replace(strings.Join(args, ""))
	span.SetAttributes(attribute.String("expression", expression))

	if eo.remote != "" {
		return c.evalRemote(ctx, expression, eo)
	}
	if eo.rpn {
		fxt.Fprintfln(c.stdout, "%s", expr.Convert(expression))
		return nil
	}
	value, err := expr.Eval(expression)
	if err != nil {
		return c.evalError(expression, err)
	}
	fxt.Fprintfln(c.stdout, "%s", expr.FormatResult(value, c.config.Display.Precision))
	return nil
}

func (c calc) evalRemote(ctx context.Context, expression string, eo evalOptions) (err error) {
	client := server.NewClient(eo.remote)
	var out string
	if eo.rpn {
		out, err = client.Convert(ctx, expression)
	} else {
		out, err = client.Evaluate(ctx, expression)
	}
	if err != nil {
		return c.evalError(expression, err)
	}
	fxt.Fprintfln(c.stdout, "%s", out)
	return nil
}

func (c calc) evalError(expression string, err error) error {
	if errors.Is(err, errs.ErrDivisionByZero) {
		fxt.Fprintfln(c.stderr, "%s", errs.DivisionByZeroMessage)
	}
	return errors.Wrapf(err, "evaluating %q", expression)
}

// keys replays keystrokes through a fresh calculator and prints both
// displays.
func (c calc) keys(args []string) error {
	state := calculator.New()
	state.Precision = c.config.Display.Precision
	err := state.Feed(args)
	expression, result := state.Display()
	fxt.Fprintfln(c.stdout, "expression: %s", expression)
	fxt.Fprintfln(c.stdout, "result: %s", result)
	if state.Notice != "" {
		fxt.Fprintfln(c.stderr, "%s", state.Notice)
	}
	return err
}
