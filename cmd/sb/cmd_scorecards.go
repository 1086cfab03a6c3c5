package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// scorecardsCmd lists scorecards with their metrics
var scorecardsCmd = &cobra.Command{
	Use:   "scorecards",
	Short: "List scorecards and their metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		printScorecards(cmd.OutOrStdout())
		return nil
	},
}

func printScorecards(w io.Writer) {
	for _, sc := range model.Scorecards() {
		color.New(color.FgYellow).Fprintf(w, "\n%s (%s)\n", sc, sc.Key())

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "Metric"})
		table.SetAutoWrapText(false)
		for i, m := range model.Metrics(sc) {
			table.Append([]string{strconv.Itoa(i + 1), m})
		}
		table.Render()
	}

	fmt.Fprintf(w, "\nDimensions: %v (default %s)\n", model.Dimensions(), model.DefaultDimension)
}
