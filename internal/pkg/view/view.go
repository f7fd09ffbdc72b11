package view

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"specs-nexus-web/internal/core/domain"
)

// PlaceholderImage is served from this app's own static tree and used
// whenever an entity has no image of its own.
const PlaceholderImage = "/static/images/placeholder.png"

// DescriptionLimit is the card preview cutoff.
const DescriptionLimit = 100

// Resolver renders entity fields that depend on the remote API origin.
type Resolver struct {
	apiOrigin string
}

// NewResolver creates a resolver for the given API origin.
func NewResolver(apiOrigin string) *Resolver {
	return &Resolver{apiOrigin: strings.TrimRight(apiOrigin, "/")}
}

// ImageURL resolves an entity image reference: a URL that already carries a
// scheme is used verbatim, a relative path is served from the API origin,
// and an absent image falls back to the placeholder asset.
func (r *Resolver) ImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return r.apiOrigin + raw
}

// Truncate shortens s to at most limit runes, appending an ellipsis when
// anything was cut. Strings within the limit come back unmodified.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// Progress is the rendered state of a membership payment progress bar.
type Progress struct {
	Percent int
	Color   string
	Display string
}

// Neutral grey for unknown states, green once payment is moving.
const (
	colorNeutral = "#ccc"
	colorActive  = "#28a745"
)

// ProgressFor maps a raw payment status to its progress bar: 0% for not
// paid, 50% for verifying, 100% for paid. Unrecognized statuses render a
// neutral empty bar.
func ProgressFor(status string) Progress {
	p := Progress{Percent: 0, Color: colorNeutral, Display: status}
	switch domain.ParsePaymentStatus(status) {
	case domain.PaymentVerifying:
		p.Percent = 50
		p.Color = colorActive
	case domain.PaymentPaid:
		p.Percent = 100
		p.Color = colorActive
	}
	return p
}

// Event filter names.
const (
	EventsAll        = "all"
	EventsUpcoming   = "upcoming"
	EventsRegistered = "registered"
)

// FilterEvents applies a stateless predicate over the last fetched list:
// "upcoming" keeps events dated strictly after now, "registered" keeps the
// caller's joined events, anything else returns the list unmodified.
func FilterEvents(events []domain.Event, filter string, now time.Time) []domain.Event {
	switch filter {
	case EventsUpcoming:
		out := make([]domain.Event, 0, len(events))
		for _, e := range events {
			if e.Upcoming(now) {
				out = append(out, e)
			}
		}
		return out
	case EventsRegistered:
		out := make([]domain.Event, 0, len(events))
		for _, e := range events {
			if e.IsParticipant {
				out = append(out, e)
			}
		}
		return out
	default:
		return events
	}
}

// Announcement filter names.
const (
	AnnouncementsAll      = "all"
	AnnouncementsRecent   = "recent"
	AnnouncementsFeatured = "featured"
)

// recentWindow bounds the "recent" announcement filter.
const recentWindow = 30 * 24 * time.Hour

// FilterAnnouncements applies a stateless predicate over the last fetched
// list: "recent" keeps announcements dated within the last thirty days,
// "featured" keeps flagged ones, anything else returns the list unmodified.
func FilterAnnouncements(announcements []domain.Announcement, filter string, now time.Time) []domain.Announcement {
	switch filter {
	case AnnouncementsRecent:
		cutoff := now.Add(-recentWindow)
		out := make([]domain.Announcement, 0, len(announcements))
		for _, a := range announcements {
			if a.Date != nil && a.Date.After(cutoff) {
				out = append(out, a)
			}
		}
		return out
	case AnnouncementsFeatured:
		out := make([]domain.Announcement, 0, len(announcements))
		for _, a := range announcements {
			if a.Featured {
				out = append(out, a)
			}
		}
		return out
	default:
		return announcements
	}
}

// FormatDate renders the long page-header date format.
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006 03:04 PM")
}

// FuncMap exposes the view helpers to templates.
func (r *Resolver) FuncMap() template.FuncMap {
	return template.FuncMap{
		"imageURL": r.ImageURL,
		"truncate": func(s string) string { return Truncate(s, DescriptionLimit) },
		"progress": ProgressFor,
		"money": func(amount *float64) string {
			if amount == nil {
				return ""
			}
			return fmt.Sprintf("PHP %.2f", *amount)
		},
		"amount": func(amount *float64) string {
			if amount == nil {
				return ""
			}
			return fmt.Sprintf("%.2f", *amount)
		},
		"fmtDate": func(t any) string {
			switch v := t.(type) {
			case time.Time:
				return FormatDate(v)
			case *time.Time:
				if v == nil {
					return ""
				}
				return FormatDate(*v)
			}
			return ""
		},
		"dtLocal": func(t any) string { return DateTimeValue(t) },
	}
}

// DateTimeValue renders a time as a datetime-local input value. Zero and
// nil times come back empty so the input stays blank.
func DateTimeValue(t any) string {
	const layout = "2006-01-02T15:04"
	switch v := t.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(layout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(layout)
	}
	return ""
}
