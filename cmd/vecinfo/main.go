// Command vecinfo evaluates vector expressions and prints vector properties.
//
// Usage:
//
//	vecinfo [flags] <vector> [<op> <operand>]
//
// With a single vector it prints its dimension, magnitude and unit vector.
// With an operator it evaluates one binary expression. Operators are
// + - * / // ^ and their in-place forms += -= *= /= //= ^=. The operand
// is read as a vector when it contains a comma or brackets and as a
// scalar otherwise.
//
// Examples:
//
//	vecinfo "1, 2, 3"
//	vecinfo "(1, 2, 3)" ^ "(4, 5, 6)"
//	vecinfo "1, 2, 3" '*' "2, 2, 2"
//	vecinfo -round 2 "1, 2, 3" / 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vector/internal/numeric"
	"github.com/cwbudde/algo-vector/vector"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	precision   int
	maxElements int
	round       optionalInt
	verbose     bool
	logFormat   string
}

// optionalInt is an int flag that records whether it was set, so that
// negative values stay usable.
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("vecinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.precision, "precision", -1, "fractional digits when printing coordinates (-1 = shortest exact form)")
	fs.IntVar(&cfg.maxElements, "max-elements", 12, "largest dimension printed in full (0 = never abbreviate)")
	fs.Var(&cfg.round, "round", "round vector results to this many fractional digits")
	fs.BoolVar(&cfg.verbose, "v", false, "log evaluation steps")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vecinfo [flags] <vector> [<op> <operand>]\n\n")
		fmt.Fprintf(stderr, "Evaluates a vector expression or prints vector properties.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vecinfo \"1, 2, 3\"\n")
		fmt.Fprintf(stderr, "  vecinfo \"(1, 2, 3)\" ^ \"(4, 5, 6)\"\n")
		fmt.Fprintf(stderr, "  vecinfo -round 2 \"1, 2, 3\" / 7\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger, err := newLogger(stderr, cfg.logFormat, cfg.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if err := evaluate(fs.Args(), cfg, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func evaluate(args []string, cfg config, stdout io.Writer, logger *slog.Logger) error {
	switch len(args) {
	case 1:
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		logger.Debug("parsed vector", "dimension", v.Dimension())
		return printInfo(stdout, v, cfg)
	case 3:
		return printExpression(stdout, args, cfg, logger)
	default:
		return fmt.Errorf("expected <vector> or <vector> <op> <operand>, got %d arguments", len(args))
	}
}

func printInfo(w io.Writer, v *vector.Vector, cfg config) error {
	normalized := "undefined (zero magnitude)"
	if u, err := v.Normalized(); err == nil {
		normalized = formatVector(u, cfg)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Vector\t%s\n", formatVector(v, cfg))
	fmt.Fprintf(tw, "Dimension\t%d\n", v.Dimension())
	fmt.Fprintf(tw, "Magnitude\t%s\n", formatScalar(v.Magnitude(), cfg))
	fmt.Fprintf(tw, "Normalized\t%s\n", normalized)
	return tw.Flush()
}

func printExpression(w io.Writer, args []string, cfg config, logger *slog.Logger) error {
	lhs, err := vector.Parse(args[0])
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	op, inPlace, err := vector.ParseOp(args[1])
	if err != nil {
		return err
	}
	rhs, err := parseOperand(args[2])
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	logger.Debug("evaluating", "op", op.String(), "in_place", inPlace,
		"dimension", lhs.Dimension(), "operand", fmt.Sprintf("%T", rhs))

	var result vector.Operand
	if inPlace {
		if err := lhs.ApplyInPlace(op, rhs); err != nil {
			return err
		}
		result = lhs
	} else if result, err = lhs.Apply(op, rhs); err != nil {
		return err
	}

	switch r := result.(type) {
	case *vector.Vector:
		if cfg.round.set {
			r.Round(cfg.round.value)
		}
		logger.Debug("result", "kind", "vector", "dimension", r.Dimension())
		_, err = fmt.Fprintln(w, formatVector(r, cfg))
	case vector.Scalar:
		logger.Debug("result", "kind", "scalar")
		_, err = fmt.Fprintln(w, formatScalar(float64(r), cfg))
	}
	return err
}

func parseOperand(s string) (vector.Operand, error) {
	t := strings.TrimSpace(s)
	if strings.ContainsAny(t, ",([") || strings.HasPrefix(t, "Vector") {
		return vector.Parse(t)
	}
	k, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: scalar %q", vector.ErrParse, s)
	}
	return vector.Scalar(k), nil
}

func formatVector(v *vector.Vector, cfg config) string {
	return v.Format(vector.WithMaxElements(cfg.maxElements), vector.WithPrecision(cfg.precision))
}

func formatScalar(x float64, cfg config) string {
	if cfg.round.set {
		x = numeric.Round(x, cfg.round.value)
	}
	return vector.FormatScalar(x, vector.WithPrecision(cfg.precision))
}
