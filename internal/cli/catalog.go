package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/pkg/measure"
)

// categoryOutput is the JSON shape of one category.
type categoryOutput struct {
	Name     measure.Category `json:"name"`
	Display  string           `json:"display"`
	Units    []string         `json:"units"`
	BaseUnit string           `json:"base_unit"`
}

// unitOutput is the JSON shape of one unit.
type unitOutput struct {
	ID       string           `json:"id"`
	Symbol   string           `json:"symbol"`
	Display  string           `json:"display"`
	Singular string           `json:"singular"`
	Plural   string           `json:"plural"`
	Category measure.Category `json:"category"`
	Kind     string           `json:"kind"`
}

// baseUnits names the base unit each category converts through.
//
//nolint:gochecknoglobals // Fixed lookup table.
var baseUnits = map[measure.Category]measure.Unit{
	measure.Distance:    measure.Meters,
	measure.Mass:        measure.Grams,
	measure.Temperature: measure.Kelvin,
	measure.Time:        measure.Seconds,
}

// NewCategoriesCmd creates the "categories" command.
func NewCategoriesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List conversion categories",
		Example: `  unitconv categories
  unitconv categories --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}
			return renderCategories(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, ndjson (default from config)")
	return cmd
}

// NewUnitsCmd creates the "units" command.
func NewUnitsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "units [category]",
		Short: "List the units of a category in picker order",
		Long: `List the units of a category in the order a unit picker shows them.
Without an argument the category is taken from converter.default_category.`,
		Example: `  unitconv units distance
  unitconv units temperature --output ndjson`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}
			category := config.GetGlobalConfig().DefaultCategory()
			if len(args) == 1 {
				if category, err = measure.ParseCategory(args[0]); err != nil {
					return err
				}
			}
			return renderUnits(cmd.OutOrStdout(), category, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, ndjson (default from config)")
	return cmd
}

func buildCategoryOutputs() []categoryOutput {
	categories := measure.ListCategories()
	out := make([]categoryOutput, 0, len(categories))
	for _, c := range categories {
		units := measure.ListUnits(c)
		ids := make([]string, 0, len(units))
		for _, u := range units {
			ids = append(ids, u.ID)
		}
		out = append(out, categoryOutput{
			Name:     c,
			Display:  c.String(),
			Units:    ids,
			BaseUnit: baseUnits[c].ID,
		})
	}
	return out
}

func renderCategories(w io.Writer, format OutputFormat) error {
	items := buildCategoryOutputs()
	switch format {
	case OutputJSON:
		return writeJSON(w, items)
	case OutputNDJSON:
		return writeNDJSON(w, items)
	}

	header := []string{"CATEGORY", "UNITS", "BASE"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Display, strconv.Itoa(len(item.Units)), item.BaseUnit})
	}
	return renderRows(w, header, rows)
}

func buildUnitOutputs(c measure.Category) []unitOutput {
	units := measure.ListUnits(c)
	out := make([]unitOutput, 0, len(units))
	for _, u := range units {
		out = append(out, unitOutput{
			ID:       u.ID,
			Symbol:   u.Symbol,
			Display:  measure.DisplayName(u),
			Singular: u.Singular,
			Plural:   u.Plural,
			Category: u.Category,
			Kind:     u.Kind().String(),
		})
	}
	return out
}

func renderUnits(w io.Writer, c measure.Category, format OutputFormat) error {
	items := buildUnitOutputs(c)
	switch format {
	case OutputJSON:
		return writeJSON(w, items)
	case OutputNDJSON:
		return writeNDJSON(w, items)
	}

	header := []string{"UNIT", "ID", "SYMBOL", "KIND"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Display, item.ID, item.Symbol, item.Kind})
	}
	return renderRows(w, header, rows)
}

// renderRows prints a table: styled on a terminal, tab-aligned otherwise.
func renderRows(w io.Writer, header []string, rows [][]string) error {
	if isWriterTerminal(w) {
		return renderStyledRows(w, header, rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	writeTabRow(tw, header)
	for _, row := range rows {
		writeTabRow(tw, row)
	}
	return tw.Flush()
}

func writeTabRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, cell)
	}
	_, _ = fmt.Fprintln(w)
}
