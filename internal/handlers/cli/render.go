package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/yahtzee/internal/domain/game"
	"github.com/KirkDiggler/yahtzee/internal/domain/scoring"
)

// CategoryTitle renders a category as "Full House"
func CategoryTitle(c scoring.Category) string {
	return cases.Title(language.English).String(strings.ReplaceAll(c.String(), "_", " "))
}

// RenderScorecard writes the scorecard as an aligned two-column table
func RenderScorecard(w io.Writer, view *game.ScorecardView) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	for _, e := range view.Upper {
		fmt.Fprintf(tw, "%s\t%s\n", CategoryTitle(e.Category), cell(e))
	}
	fmt.Fprintf(tw, "Bonus\t%d\n", view.UpperBonus)
	fmt.Fprintf(tw, "Upper Total\t%d\n", view.UpperTotal)
	for _, e := range view.Lower {
		fmt.Fprintf(tw, "%s\t%s\n", CategoryTitle(e.Category), cell(e))
	}
	fmt.Fprintf(tw, "Lower Total\t%d\n", view.LowerTotal)
	fmt.Fprintf(tw, "Grand Total\t%d\n", view.GrandTotal)

	return tw.Flush()
}

func cell(e game.ScorecardEntry) string {
	if !e.Filled {
		return "-"
	}
	return strconv.Itoa(e.Score)
}

// FormatDice renders dice as "1, 2, 3, 4, 5"
func FormatDice(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// FormatResult announces the winner or every tied player, numbered from 1
func FormatResult(result *game.Result) string {
	if !result.Tie {
		return fmt.Sprintf("The winner is player %d with a score of %d", result.Winners[0]+1, result.TopScore)
	}

	names := make([]string, len(result.Winners))
	for i, idx := range result.Winners {
		names[i] = strconv.Itoa(idx + 1)
	}
	return fmt.Sprintf("It's a tie between players %s with a score of %d", strings.Join(names, ", "), result.TopScore)
}
