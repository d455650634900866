package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/logging"
	"github.com/rshade/unitconv/pkg/measure"
)

// ConvertParams holds the flags of the convert command.
// Exported for testing.
type ConvertParams struct {
	Category  string
	Precision int
	Output    string
}

// conversionOutput is the JSON shape of one conversion.
type conversionOutput struct {
	Amount    float64          `json:"amount"`
	Category  measure.Category `json:"category"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Value     float64          `json:"value"`
	Formatted string           `json:"formatted"`
}

// NewConvertCmd creates the "convert" command.
//
// The source unit decides the category unless --category is given; the
// destination must belong to the same category.
func NewConvertCmd() *cobra.Command {
	var params ConvertParams

	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between two units of the same category",
		Long: `Convert an amount from one unit to another and print the result using the
destination unit's full name.

Units may be given by name ("kilometers", "kilometer"), symbol ("km") or, for
temperatures, long name ("degrees Celsius"). Both units must belong to the same
category: distance, mass, temperature or time.`,
		Example: `  # Distance
  unitconv convert 1 km meters

  # Temperature with a fixed category
  unitconv convert 212 F C --category temperature

  # Six fraction digits, JSON output
  unitconv convert 1 mile km --precision 6 --output json

  # Negative amounts follow "--" so they are not read as flags
  unitconv convert -- -40 celsius fahrenheit`,
		Args: cobra.ExactArgs(3), //nolint:mnd // amount, from, to
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, params, args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVar(&params.Category, "category", "",
		"category of both units (distance, mass, temperature, time); inferred from <from> when empty")
	cmd.Flags().IntVar(&params.Precision, "precision", -1,
		"maximum fraction digits (-1 = use config output.precision)")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "",
		"output format: table, json, ndjson (default from config)")

	return cmd
}

// runConvert resolves the units, evaluates the conversion and renders it.
func runConvert(cmd *cobra.Command, params ConvertParams, amountArg, fromArg, toArg string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := ParseOutputFormat(params.Output)
	if err != nil {
		return err
	}

	amount, err := measure.ParseAmount(amountArg)
	if err != nil {
		return fmt.Errorf("parsing amount: %w", err)
	}

	precision := params.Precision
	if precision < 0 {
		precision = config.GetOutputPrecision()
	}
	formatter, err := measure.NewFormatter(measure.WithPrecision(precision))
	if err != nil {
		return err
	}

	session := measure.NewSession()
	session.SetFormatter(formatter)
	session.SetAmount(amount)
	if err = selectUnits(session, params.Category, fromArg, toArg); err != nil {
		return err
	}

	result, err := session.Result()
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	req := session.Request()
	log.Debug().
		Ctx(ctx).
		Str("operation", "convert").
		Str("category", req.Category.String()).
		Str("from", req.Source.ID).
		Str("to", req.Destination.ID).
		Float64("amount", req.Amount).
		Float64("value", result.Value).
		Msg("conversion evaluated")

	out := conversionOutput{
		Amount:    req.Amount,
		Category:  req.Category,
		From:      req.Source.ID,
		To:        req.Destination.ID,
		Value:     result.Value,
		Formatted: result.Formatted,
	}

	switch format {
	case OutputJSON:
		return writeJSON(cmd.OutOrStdout(), out)
	case OutputNDJSON:
		return writeNDJSON(cmd.OutOrStdout(), []conversionOutput{out})
	default:
		return renderConversion(cmd.OutOrStdout(), req, result)
	}
}

// selectUnits drives the session the way the conversion form does: pick the
// category (which resets both units), then the source and destination.
func selectUnits(s *measure.Session, categoryArg, fromArg, toArg string) error {
	var (
		from measure.Unit
		err  error
	)
	if categoryArg != "" {
		category, parseErr := measure.ParseCategory(categoryArg)
		if parseErr != nil {
			return parseErr
		}
		from, err = measure.LookupUnit(category, fromArg)
	} else {
		from, err = measure.FindUnit(fromArg)
	}
	if err != nil {
		return fmt.Errorf("source unit: %w", err)
	}

	to, err := measure.LookupUnit(from.Category, toArg)
	if err != nil {
		// A known unit of another category is a mismatch, not a typo.
		other, findErr := measure.FindUnit(toArg)
		if findErr != nil {
			return fmt.Errorf("destination unit: %w", err)
		}
		return &measure.IncompatibleUnitsError{From: from, To: other}
	}

	if err = s.SelectCategory(from.Category); err != nil {
		return err
	}
	if err = s.SetSource(from); err != nil {
		return err
	}
	return s.SetDestination(to)
}

// renderConversion prints the formatted result, styled on a terminal.
func renderConversion(w io.Writer, req measure.Request, result measure.Result) error {
	if !isWriterTerminal(w) {
		_, err := fmt.Fprintln(w, result.Formatted)
		return err
	}

	source := measure.FormatResult(req.Amount, req.Source)
	resultStyle := lipgloss.NewStyle().Bold(true).Foreground(resultColor())
	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor())
	_, err := fmt.Fprintf(w, "%s %s %s\n",
		mutedStyle.Render(source), mutedStyle.Render("="), resultStyle.Render(result.Formatted))
	return err
}

// IsUsageError reports whether err stems from bad input rather than a failure.
func IsUsageError(err error) bool {
	return errors.Is(err, measure.ErrIncompatibleUnits) ||
		errors.Is(err, measure.ErrUnknownUnit) ||
		errors.Is(err, measure.ErrUnknownCategory) ||
		errors.Is(err, measure.ErrInvalidAmount) ||
		errors.Is(err, measure.ErrInvalidPrecision)
}
