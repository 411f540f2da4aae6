// Package notify pushes scan alerts to operator channels. Monitor mode is
// the only producer: a scan's strong opportunities become one formatted
// message fanned out to every configured sender.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// Event classifies what an alert is about. The notify.events config list
// selects which events reach the channels.
type Event string

const (
	// EventOpportunity carries a scan's strong opportunities.
	EventOpportunity Event = "opportunity"
	// EventError reports a failed scan.
	EventError Event = "error"
)

// Sender delivers one rendered alert to a channel.
type Sender interface {
	Send(ctx context.Context, title, message string) error
	Name() string
}

// Notifier fans alerts out to the configured senders, filtered by event
// type. With no senders it is a no-op, so monitor mode runs unchanged
// without credentials.
type Notifier struct {
	senders []Sender
	allowed map[Event]bool
	logger  *slog.Logger
}

// NewNotifier creates a Notifier delivering to the given senders. Only the
// listed event types pass the filter; an empty list allows everything.
func NewNotifier(senders []Sender, events []string, logger *slog.Logger) *Notifier {
	allowed := make(map[Event]bool, len(events))
	for _, e := range events {
		allowed[Event(strings.TrimSpace(e))] = true
	}
	return &Notifier{
		senders: senders,
		allowed: allowed,
		logger:  logger.With(slog.String("component", "notifier")),
	}
}

// NotifyOpportunities renders the opportunities as one alert and dispatches
// it under EventOpportunity. The input is assumed sorted by profit; only the
// top entries are listed in the message body.
func (n *Notifier) NotifyOpportunities(ctx context.Context, opps []domain.Opportunity) error {
	title, message := FormatOpportunities(opps)
	return n.Notify(ctx, EventOpportunity, title, message)
}

// Notify dispatches an alert to every sender when the event passes the
// filter. One sender failing does not stop delivery to the rest; all
// failures come back joined.
func (n *Notifier) Notify(ctx context.Context, event Event, title, message string) error {
	if len(n.allowed) > 0 && !n.allowed[event] {
		n.logger.DebugContext(ctx, "event filtered out",
			slog.String("event", string(event)),
		)
		return nil
	}

	var errs []error
	for _, s := range n.senders {
		if err := s.Send(ctx, title, message); err != nil {
			n.logger.ErrorContext(ctx, "sender failed",
				slog.String("sender", s.Name()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		n.logger.DebugContext(ctx, "alert sent",
			slog.String("sender", s.Name()),
			slog.String("event", string(event)),
			slog.String("title", title),
		)
	}
	if len(errs) > 0 {
		return fmt.Errorf("notify: %w", errors.Join(errs...))
	}
	return nil
}
