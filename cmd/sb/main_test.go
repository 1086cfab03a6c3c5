package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/config"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/form"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
	"github.com/Dicklesworthstone/scorecard_builder/pkg/selection"
)

func TestBuildDraft(t *testing.T) {
	f := submitFlags{
		scorecard: "txn",
		metrics:   []string{"APIPL_TXN_APP_SHARE", "PAY_TXN_APP_SHARE"},
		email:     "x@y.com",
		start:     "2024-01-01",
		end:       "2024-01-31",
	}
	d, err := buildDraft(f, model.DateLayout)
	if err != nil {
		t.Fatalf("buildDraft: %v", err)
	}

	if d.Scorecard() != model.ScorecardTXN {
		t.Errorf("scorecard = %v", d.Scorecard())
	}
	if diff := cmp.Diff(selection.Selection{"APIPL_TXN_APP_SHARE", "PAY_TXN_APP_SHARE"}, d.Metrics()); diff != "" {
		t.Errorf("metrics (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(selection.Selection{"Overall"}, d.Dimensions()); diff != "" {
		t.Errorf("dimensions default (-want +got):\n%s", diff)
	}
	if d.ComparisonEnabled() {
		t.Error("comparison enabled without compare flags")
	}
	if want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC); !d.Primary().End.Equal(want) {
		t.Errorf("end = %v", d.Primary().End)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBuildDraftErrors(t *testing.T) {
	tests := []struct {
		name string
		f    submitFlags
		want string
	}{
		{"unknown scorecard", submitFlags{scorecard: "gmv"}, "unknown scorecard"},
		{"metric without scorecard", submitFlags{metrics: []string{"PAY_TXN_APP_SHARE"}}, "requires --scorecard"},
		{"metric from other scorecard", submitFlags{scorecard: "tpv", metrics: []string{"PAY_TXN_APP_SHARE"}}, "not part of"},
		{"unknown dimension", submitFlags{dimensions: []string{"Region"}}, "unknown dimension"},
		{"bad date", submitFlags{start: "01/02/2024"}, "--start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildDraft(tt.f, model.DateLayout)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestBuildDraftComparison(t *testing.T) {
	// One compare flag is enough to enable comparison; validation then
	// reports the missing date.
	d, err := buildDraft(submitFlags{
		scorecard:    "tpv",
		metrics:      []string{"PAY_TPV_APP_SHARE"},
		email:        "a@b.com",
		start:        "2024-01-01",
		end:          "2024-01-31",
		compareStart: "2023-01-01",
	}, model.DateLayout)
	if err != nil {
		t.Fatalf("buildDraft: %v", err)
	}
	if !d.ComparisonEnabled() {
		t.Fatal("comparison not enabled")
	}
	if err := d.Validate(); !errors.Is(err, form.ErrMissingComparisonDates) {
		t.Errorf("Validate = %v, want ErrMissingComparisonDates", err)
	}
}

const quietConfig = "logging:\n  file: \"\"\n  level: info\n"

// execute runs the root command with an isolated config
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte(quietConfig), 0644); err != nil {
		t.Fatal(err)
	}
	return executeWithConfig(t, cfgFile, args...)
}

func executeWithConfig(t *testing.T, cfgFile string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	submitOpts = submitFlags{}
	forceInit = false
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSubmitCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "submit",
		"--scorecard", "txn",
		"--metric", "APIPL_TXN_APP_SHARE",
		"--email", "x@y.com",
		"--start", "2024-01-01",
		"--end", "2024-01-31",
		"--json",
	)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if payload["scorecard"] != "Topline TXN Scorecard" {
		t.Errorf("scorecard = %v", payload["scorecard"])
	}
	if payload["enable_comparison"] != false {
		t.Errorf("enable_comparison = %v", payload["enable_comparison"])
	}
	if _, ok := payload["compare_start"]; ok {
		t.Error("compare_start present without comparison")
	}
}

func TestSubmitCommandValidationFailure(t *testing.T) {
	_, stderr, err := execute(t, "submit",
		"--scorecard", "txn",
		"--metric", "APIPL_TXN_APP_SHARE",
		"--email", "a.com",
		"--start", "2024-01-01",
		"--end", "2024-01-31",
	)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "Please enter a valid email address") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestSubmitCommandAcknowledges(t *testing.T) {
	stdout, _, err := execute(t, "submit",
		"--scorecard", "tpv",
		"--metric", "PAY_TPV_APP_SHARE",
		"--email", "x@y.com",
		"--start", "2024-01-01",
		"--end", "2024-01-31",
	)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(stdout, "Analysis request submitted!") {
		t.Errorf("missing acknowledgement:\n%s", stdout)
	}
	if !strings.Contains(ansi.Strip(stdout), "PAY_TPV_APP_SHARE") {
		t.Errorf("summary missing metric:\n%s", stdout)
	}
}

func TestScorecardsCommand(t *testing.T) {
	stdout, _, err := execute(t, "scorecards")
	if err != nil {
		t.Fatalf("scorecards: %v", err)
	}
	for _, want := range []string{"Topline TXN Scorecard", "CQUIRING_SHOPPING3P_TXN_APP_SHARE", "STORES_TPV_APP_SHARE", "Sub_usecase"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWizardAnswersDraft(t *testing.T) {
	a := wizardAnswers{
		scorecard:  "txn",
		metrics:    []string{"EUC_TXN_APP_SHARE"},
		dimensions: []string{"Use_case"},
		email:      "x@y.com",
		start:      "2024-01-01",
		end:        "2024-01-31",
		compare:    true,
	}
	d, err := a.draft(model.DateLayout)
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if !d.ComparisonEnabled() {
		t.Fatal("confirmed comparison dropped")
	}
	if err := d.Validate(); !errors.Is(err, form.ErrMissingComparisonDates) {
		t.Errorf("Validate = %v, want ErrMissingComparisonDates", err)
	}
}

func TestRequiredDate(t *testing.T) {
	v := requiredDate(model.DateLayout)
	if v("") == nil {
		t.Error("blank date accepted")
	}
	if v("2024-02-30") == nil {
		t.Error("impossible date accepted")
	}
	if err := v("2024-02-29"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
}

func TestConfigInitRepairsBrokenFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("logging: [\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Other commands refuse to run on a broken file.
	if _, _, err := executeWithConfig(t, cfgFile, "scorecards"); err == nil {
		t.Fatal("scorecards ran with a malformed config")
	}

	stdout, _, err := executeWithConfig(t, cfgFile, "config", "init", "--force")
	if err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	if !strings.Contains(stdout, "Wrote "+cfgFile) {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := config.Load(cfgFile); err != nil {
		t.Errorf("rewritten config does not load: %v", err)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte(quietConfig), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := executeWithConfig(t, cfgFile, "config", "init"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v, want already exists", err)
	}
}

func TestWizardAborted(t *testing.T) {
	var out bytes.Buffer
	if err := wizardAborted(&out, huh.ErrUserAborted); err != nil {
		t.Errorf("abort returned %v", err)
	}
	if out.String() != "Cancelled.\n" {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	boom := errors.New("boom")
	if err := wizardAborted(&out, boom); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
