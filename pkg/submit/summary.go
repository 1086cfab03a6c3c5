package submit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
)

// Summary formats a request as Markdown for the acknowledgement notice
func Summary(req model.Request) string {
	var sb strings.Builder

	sb.WriteString("## Analysis Parameters\n\n")
	sb.WriteString(fmt.Sprintf("- **Scorecard:** %s\n", req.Scorecard))
	sb.WriteString(fmt.Sprintf("- **Metrics:** %s\n", codeList(req.Metrics)))
	sb.WriteString(fmt.Sprintf("- **Dimensions:** %s\n", codeList(req.Dimensions)))
	sb.WriteString(fmt.Sprintf("- **Primary period:** %s\n", req.Primary()))
	if period, ok := req.Comparison(); ok {
		sb.WriteString(fmt.Sprintf("- **Comparison period:** %s\n", period))
	} else {
		sb.WriteString("- **Comparison period:** disabled\n")
	}
	sb.WriteString(fmt.Sprintf("- **Deliver to:** `%s`\n", req.Email))
	sb.WriteString(fmt.Sprintf("\n_Request %s_\n", req.ID))

	return sb.String()
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

// SummaryStyle is the glamour style RenderSummary uses
const SummaryStyle = "dark"

// RenderSummary renders Summary as styled terminal text at the given width
func RenderSummary(req model.Request, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(SummaryStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(Summary(req))
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// PayloadJSON returns the indented wire form of a request
func PayloadJSON(req model.Request) (string, error) {
	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	return string(data), nil
}
