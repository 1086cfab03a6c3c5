package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/form"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// wizardCmd walks through the request one prompt at a time
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a request with step-by-step prompts",
	Long: `Prompt for each request field in turn and submit the result.

The scorecard is asked first because it decides which metrics are offered.`,
	RunE: runWizard,
}

// wizardAnswers collects huh-bound values before they reach the draft
type wizardAnswers struct {
	scorecard    string
	metrics      []string
	dimensions   []string
	email        string
	start        string
	end          string
	compare      bool
	compareStart string
	compareEnd   string
}

func runWizard(cmd *cobra.Command, args []string) error {
	a := wizardAnswers{
		dimensions: []string{model.DefaultDimension},
		email:      cfg.DefaultEmail,
	}
	layout := cfg.DateLayout

	if err := scorecardForm(&a).Run(); err != nil {
		return wizardAborted(cmd.OutOrStdout(), err)
	}
	sc, err := model.ParseScorecard(a.scorecard)
	if err != nil {
		return err
	}
	if err := detailsForm(&a, sc, layout).Run(); err != nil {
		return wizardAborted(cmd.OutOrStdout(), err)
	}
	if a.compare {
		if err := comparisonForm(&a, layout).Run(); err != nil {
			return wizardAborted(cmd.OutOrStdout(), err)
		}
	}

	d, err := a.draft(layout)
	if err != nil {
		return err
	}
	return deliver(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), d, false)
}

func wizardAborted(w io.Writer, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(w, "Cancelled.")
		return nil
	}
	return err
}

func scorecardForm(a *wizardAnswers) *huh.Form {
	options := make([]huh.Option[string], 0, len(model.Scorecards()))
	for _, sc := range model.Scorecards() {
		options = append(options, huh.NewOption(sc.String(), sc.Key()))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Scorecard Type").
				Options(options...).
				Value(&a.scorecard),
		),
	)
}

func detailsForm(a *wizardAnswers, sc model.Scorecard, layout string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select Metrics").
				Options(huh.NewOptions(model.Metrics(sc)...)...).
				Value(&a.metrics).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("select at least one metric")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Dimensions").
				Options(huh.NewOptions(model.Dimensions()...)...).
				Value(&a.dimensions),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&a.email).
				Validate(form.VEmail),
			huh.NewInput().
				Title("Start Date").
				Placeholder(layout).
				Value(&a.start).
				Validate(requiredDate(layout)),
			huh.NewInput().
				Title("End Date").
				Placeholder(layout).
				Value(&a.end).
				Validate(requiredDate(layout)),
			huh.NewConfirm().
				Title("Enable Date Comparison?").
				Value(&a.compare),
		),
	)
}

func comparisonForm(a *wizardAnswers, layout string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Compare Start Date").
				Placeholder(layout).
				Value(&a.compareStart).
				Validate(requiredDate(layout)),
			huh.NewInput().
				Title("Compare End Date").
				Placeholder(layout).
				Value(&a.compareEnd).
				Validate(requiredDate(layout)),
		),
	)
}

func requiredDate(layout string) func(string) error {
	valid := form.VDate(layout)
	return func(s string) error {
		if err := form.VRequired(s); err != nil {
			return err
		}
		return valid(s)
	}
}

// draft converts the answers through the same path as submit flags
func (a wizardAnswers) draft(layout string) (*form.Draft, error) {
	f := submitFlags{
		scorecard:  a.scorecard,
		metrics:    a.metrics,
		dimensions: a.dimensions,
		email:      a.email,
		start:      a.start,
		end:        a.end,
	}
	if a.compare {
		f.compareStart = a.compareStart
		f.compareEnd = a.compareEnd
	}
	d, err := buildDraft(f, layout)
	if err != nil {
		return nil, err
	}
	// A confirmed comparison stays enabled even if both dates came back blank.
	d.SetComparison(a.compare)
	return d, nil
}
