package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/internal/console"
)

// Value kinds accepted by the read command
var readKinds = []string{"int", "long", "double", "range", "date", "daterange", "options", "pattern"}

var (
	readPrompt      string
	readErrorPrompt string
	readMin         float64
	readMax         float64
	readFrom        string
	readTo          string
	readOptions     []string
	readPattern     string
)

var readCmd = &cobra.Command{
	Use:   "read <kind>",
	Short: "Read one validated value",
	Long: `Asks for a value until the input is valid and prints the accepted value.

Kinds:
  int        32-bit integer
  long       64-bit integer
  double     decimal number
  range      decimal number between --min and --max
  date       ISO date (yyyy-MM-dd)
  daterange  ISO date between --from and --to
  options    one of the --option values
  pattern    text matching the --pattern regular expression

Examples:
  termio read int --prompt "Age: "
  termio read range --min 5000 --max 30000
  termio read daterange --from 2000-01-01 --to 2005-12-31
  termio read options --option QA --option Audit`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: readKinds,
	RunE:      runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().StringVar(&readPrompt, "prompt", "Enter value: ", "prompt text")
	readCmd.Flags().StringVar(&readErrorPrompt, "error-prompt", "Wrong input", "prefix of rejection messages")
	readCmd.Flags().Float64Var(&readMin, "min", 0, "lower bound for range")
	readCmd.Flags().Float64Var(&readMax, "max", 0, "upper bound for range")
	readCmd.Flags().StringVar(&readFrom, "from", "", "first date for daterange")
	readCmd.Flags().StringVar(&readTo, "to", "", "last date for daterange")
	readCmd.Flags().StringSliceVar(&readOptions, "option", nil, "allowed value for options (repeatable)")
	readCmd.Flags().StringVar(&readPattern, "pattern", "", "regular expression for pattern")
}

func runRead(cmd *cobra.Command, args []string) error {
	kind := args[0]

	// check flags before touching the terminal
	parse, err := readParser(cmd, kind)
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	value, err := console.ReadValidatedContext(cmd.Context(), s.reader, readPrompt, readErrorPrompt, parse(s.reader.Messages()))
	if err == nil {
		err = s.reader.WriteLine(value)
	}
	return s.finish(err)
}

// readParser returns a parser factory for kind. Accepted values are
// rendered as the text printed on success.
func readParser(cmd *cobra.Command, kind string) (func(*console.Messages) console.ParseFunc[string], error) {
	switch kind {
	case "int":
		return constant(render(console.ParseInt, strconv.Itoa)), nil
	case "long":
		return constant(render(console.ParseLong, func(v int64) string { return strconv.FormatInt(v, 10) })), nil
	case "double":
		return constant(render(console.ParseDouble, formatFloat)), nil
	case "date":
		return constant(render(console.ParseISODate, timex.FormatISODate)), nil

	case "range":
		if !cmd.Flags().Changed("min") || !cmd.Flags().Changed("max") {
			return nil, usageError(kind, "--min and --max are required")
		}
		if readMin > readMax {
			return nil, usageError(kind, "--min is greater than --max")
		}
		return func(m *console.Messages) console.ParseFunc[string] {
			return render(m.NumberInRange(readMin, readMax), formatFloat)
		}, nil

	case "daterange":
		from, to, err := dateBounds()
		if err != nil {
			return nil, err
		}
		return func(m *console.Messages) console.ParseFunc[string] {
			return render(m.DateInRange(from, to), timex.FormatISODate)
		}, nil

	case "options":
		if len(readOptions) == 0 {
			return nil, usageError(kind, "at least one --option is required")
		}
		options := append([]string(nil), readOptions...)
		return func(m *console.Messages) console.ParseFunc[string] {
			return m.OneOf(options)
		}, nil

	case "pattern":
		if readPattern == "" {
			return nil, usageError(kind, "--pattern is required")
		}
		if _, err := regexp.Compile(readPattern); err != nil {
			return nil, mdwerror.Wrap(err, "invalid --pattern").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.read")
		}
		pattern := readPattern
		return func(m *console.Messages) console.ParseFunc[string] {
			return m.Matching(pattern)
		}, nil
	}

	return nil, usageError(kind, "unknown kind")
}

func dateBounds() (time.Time, time.Time, error) {
	if readFrom == "" || readTo == "" {
		return time.Time{}, time.Time{}, usageError("daterange", "--from and --to are required")
	}
	from, err := timex.ParseISODate(readFrom)
	if err != nil {
		return time.Time{}, time.Time{}, usageError("daterange", "--from: "+err.Error())
	}
	to, err := timex.ParseISODate(readTo)
	if err != nil {
		return time.Time{}, time.Time{}, usageError("daterange", "--to: "+err.Error())
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, usageError("daterange", "--from is after --to")
	}
	return from, to, nil
}

// render converts an accepted value to its printed form
func render[T any](parse console.ParseFunc[T], format func(T) string) console.ParseFunc[string] {
	return func(line string) console.Result[string] {
		res := parse(line)
		if !res.Ok() {
			return console.FromValidation("", res.Validation())
		}
		return console.Accept(format(res.Value()))
	}
}

func constant(p console.ParseFunc[string]) func(*console.Messages) console.ParseFunc[string] {
	return func(*console.Messages) console.ParseFunc[string] { return p }
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func usageError(kind, msg string) error {
	return mdwerror.New(fmt.Sprintf("read %s: %s", kind, msg)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmd.read")
}
