package view

import (
	"strings"
	"testing"
	"time"

	"specs-nexus-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	r := NewResolver("http://api.local:8000")

	assert.Equal(t, PlaceholderImage, r.ImageURL(""))
	assert.Equal(t, "https://cdn.example.com/x.png", r.ImageURL("https://cdn.example.com/x.png"))
	assert.Equal(t, "http://api.local:8000/static/events/1.png", r.ImageURL("static/events/1.png"))
	assert.Equal(t, "http://api.local:8000/static/events/1.png", r.ImageURL("/static/events/1.png"))
}

func TestTruncate(t *testing.T) {
	short := "a short description"
	assert.Equal(t, short, Truncate(short, DescriptionLimit))

	long := strings.Repeat("x", DescriptionLimit+20)
	got := Truncate(long, DescriptionLimit)
	assert.Equal(t, DescriptionLimit+3, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))

	// rune boundaries, not bytes
	runes := strings.Repeat("ñ", DescriptionLimit+1)
	assert.Equal(t, DescriptionLimit, len([]rune(Truncate(runes, DescriptionLimit)))-3)
}

func TestDateTimeValue(t *testing.T) {
	at := time.Date(2030, 5, 1, 10, 30, 0, 0, time.Local)

	assert.Equal(t, "2030-05-01T10:30", DateTimeValue(at))
	assert.Equal(t, "2030-05-01T10:30", DateTimeValue(&at))
	assert.Equal(t, "", DateTimeValue(time.Time{}))
	assert.Equal(t, "", DateTimeValue((*time.Time)(nil)))
	assert.Equal(t, "", DateTimeValue("not a time"))
}

func TestProgressFor(t *testing.T) {
	cases := []struct {
		status  string
		percent int
		color   string
	}{
		{"Not Paid", 0, "#ccc"},
		{"not paid", 0, "#ccc"},
		{"Verifying", 50, "#28a745"},
		{"  verifying  ", 50, "#28a745"},
		{"Paid", 100, "#28a745"},
		{"PAID", 100, "#28a745"},
		{"something else", 0, "#ccc"},
	}
	for _, tc := range cases {
		p := ProgressFor(tc.status)
		assert.Equal(t, tc.percent, p.Percent, "status %q", tc.status)
		assert.Equal(t, tc.color, p.Color, "status %q", tc.status)
		assert.Equal(t, tc.status, p.Display)
	}
}

func TestFilterEvents(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{ID: 1, Date: now.Add(24 * time.Hour)},
		{ID: 2, Date: now.Add(-24 * time.Hour), IsParticipant: true},
		{ID: 3, Date: now.Add(48 * time.Hour), IsParticipant: true},
	}

	all := FilterEvents(events, EventsAll, now)
	assert.Len(t, all, 3)

	upcoming := FilterEvents(events, EventsUpcoming, now)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, 1, upcoming[0].ID)
	assert.Equal(t, 3, upcoming[1].ID)

	registered := FilterEvents(events, EventsRegistered, now)
	assert.Len(t, registered, 2)
	assert.Equal(t, 2, registered[0].ID)

	// unknown filters fall back to the full list
	assert.Len(t, FilterEvents(events, "bogus", now), 3)
}

func TestFilterAnnouncements(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-5 * 24 * time.Hour)
	old := now.Add(-60 * 24 * time.Hour)
	announcements := []domain.Announcement{
		{ID: 1, Date: &recent},
		{ID: 2, Date: &old, Featured: true},
		{ID: 3}, // no date
	}

	assert.Len(t, FilterAnnouncements(announcements, AnnouncementsAll, now), 3)

	got := FilterAnnouncements(announcements, AnnouncementsRecent, now)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	featured := FilterAnnouncements(announcements, AnnouncementsFeatured, now)
	assert.Len(t, featured, 1)
	assert.Equal(t, 2, featured[0].ID)
}
