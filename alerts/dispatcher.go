package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"go-shorewatch/types"
)

// DefaultSubject is the NATS subject warnings are published on.
const DefaultSubject = "shorewatch.warnings"

// Dispatcher hands a warning to the external notification channel. Dispatch is
// at-most-once: a failure is returned to the caller but never retried here,
// and it must not block or roll back report persistence.
type Dispatcher interface {
	Dispatch(ctx context.Context, warning types.Warning) error
}

// NATSDispatcher publishes warnings as JSON onto a NATS subject.
type NATSDispatcher struct {
	conn    *nats.Conn
	subject string
}

func NewNATSDispatcher(conn *nats.Conn, subject string) *NATSDispatcher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSDispatcher{conn: conn, subject: subject}
}

func (d *NATSDispatcher) Dispatch(_ context.Context, warning types.Warning) error {
	data, err := json.Marshal(warning)
	if err != nil {
		return fmt.Errorf("marshal warning %s: %w", warning.ID, err)
	}
	if err := d.conn.Publish(d.subject, data); err != nil {
		return fmt.Errorf("publish warning %s: %w", warning.ID, err)
	}
	return nil
}

// LogDispatcher is the fallback channel when no broker is configured; it just
// writes the warning to the process log.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(_ context.Context, warning types.Warning) error {
	log.Printf("EARLY WARNING [%s/%s] report %s: %s", warning.Severity, warning.HazardType, warning.SourceReportID, warning.Message)
	return nil
}
