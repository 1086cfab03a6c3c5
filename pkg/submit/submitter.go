// Package submit is the boundary where an assembled request leaves the form.
package submit

import (
	"context"
	"time"

	"github.com/Dicklesworthstone/scorecard_builder/pkg/model"
)

// AcknowledgeMessage is shown after a request is accepted locally
const AcknowledgeMessage = "Analysis request submitted! (Backend integration needed)"

// Receipt is the outcome of a successful submission
type Receipt struct {
	RequestID   string
	SubmittedAt time.Time
	Message     string
}

// Submitter hands assembled requests to whatever delivers results
type Submitter interface {
	// Submit delivers one request. The request must already be validated.
	Submit(ctx context.Context, req model.Request) (Receipt, error)

	// Close releases any resources
	Close() error
}
