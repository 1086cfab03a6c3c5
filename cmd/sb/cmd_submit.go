package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/form"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/selection"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/submit"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// submitFlags mirrors the form fields for non-interactive use
type submitFlags struct {
	scorecard    string
	metrics      []string
	dimensions   []string
	email        string
	start        string
	end          string
	compareStart string
	compareEnd   string
	jsonOut      bool
}

var submitOpts submitFlags

// submitCmd submits a request built from flags
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an analysis request from flags",
	Long: `Build and submit an analysis request without the interactive form.

Example:
  sb submit --scorecard txn --metric APIPL_TXN_APP_SHARE \
    --email me@example.com --start 2024-01-01 --end 2024-01-31

Setting either --compare-start or --compare-end enables date comparison.`,
	RunE: runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVarP(&submitOpts.scorecard, "scorecard", "s", "", "Scorecard (txn, tpv or display name)")
	f.StringSliceVarP(&submitOpts.metrics, "metric", "m", nil, "Metric to analyze (repeatable)")
	f.StringSliceVarP(&submitOpts.dimensions, "dimension", "d", nil, "Dimension (repeatable, default Overall)")
	f.StringVarP(&submitOpts.email, "email", "e", "", "Delivery email (default from config)")
	f.StringVar(&submitOpts.start, "start", "", "Period start date")
	f.StringVar(&submitOpts.end, "end", "", "Period end date")
	f.StringVar(&submitOpts.compareStart, "compare-start", "", "Comparison period start date")
	f.StringVar(&submitOpts.compareEnd, "compare-end", "", "Comparison period end date")
	f.BoolVar(&submitOpts.jsonOut, "json", false, "Print the payload as JSON")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	flags := submitOpts
	if flags.email == "" {
		flags.email = cfg.DefaultEmail
	}

	d, err := buildDraft(flags, cfg.DateLayout)
	if err != nil {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return errReported
	}
	return deliver(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), d, flags.jsonOut)
}

// buildDraft maps flags onto a draft. Unknown scorecards, metrics,
// dimensions and unparsable dates are rejected here; missing values are
// left for the draft's own validation.
func buildDraft(f submitFlags, layout string) (*form.Draft, error) {
	sc, err := model.ParseScorecard(f.scorecard)
	if err != nil {
		return nil, err
	}

	d := form.New()
	d.SetScorecard(sc)

	if len(f.metrics) > 0 {
		if !sc.IsValid() {
			return nil, fmt.Errorf("--metric requires --scorecard")
		}
		options := d.MetricOptions()
		for _, m := range f.metrics {
			if !slices.Contains(options, m) {
				return nil, fmt.Errorf("metric %q is not part of %s", m, sc)
			}
		}
		d.SetMetrics(selection.Selection(f.metrics))
	}

	if len(f.dimensions) > 0 {
		options := model.Dimensions()
		for _, dim := range f.dimensions {
			if !slices.Contains(options, dim) {
				return nil, fmt.Errorf("unknown dimension %q", dim)
			}
		}
		d.SetDimensions(selection.Selection(f.dimensions))
	}

	d.SetEmail(f.email)

	dates := []struct {
		flag  string
		value string
		set   func(t time.Time)
	}{
		{"start", f.start, d.SetStart},
		{"end", f.end, d.SetEnd},
		{"compare-start", f.compareStart, d.SetCompareStart},
		{"compare-end", f.compareEnd, d.SetCompareEnd},
	}
	for _, dt := range dates {
		t, err := form.ParseDate(dt.value, layout)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", dt.flag, err)
		}
		dt.set(t)
	}

	d.SetComparison(f.compareStart != "" || f.compareEnd != "")
	return d, nil
}

// deliver assembles the draft, hands it to the submitter and prints the
// outcome. Validation failures print in red and return errReported.
func deliver(ctx context.Context, stdout, stderr io.Writer, d *form.Draft, jsonOut bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := d.Assemble(nil)
	if err != nil {
		logger.Debug("submit rejected", zap.Error(err))
		color.New(color.FgRed).Fprintln(stderr, err.Error())
		return errReported
	}

	sub := submit.NewAcknowledger(logger)
	defer sub.Close()

	receipt, err := sub.Submit(ctx, req)
	if err != nil {
		return fmt.Errorf("submit request: %w", err)
	}

	if jsonOut {
		payload, err := submit.PayloadJSON(req)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, payload)
		return nil
	}

	color.New(color.FgGreen).Fprintln(stdout, receipt.Message)
	summary, err := submit.RenderSummary(req, 80)
	if err != nil {
		summary = submit.Summary(req)
	}
	fmt.Fprintln(stdout, summary)
	return nil
}
