package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want PaymentStatus
	}{
		{"Not Paid", PaymentNotPaid},
		{"not paid", PaymentNotPaid},
		{"  NOT PAID ", PaymentNotPaid},
		{"Verifying", PaymentVerifying},
		{"verifying", PaymentVerifying},
		{"Paid", PaymentPaid},
		{"PAID", PaymentPaid},
		{"pending", PaymentUnknown},
		{"", PaymentUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePaymentStatus(tc.raw), "raw %q", tc.raw)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	m, ok := ParsePaymentMethod("gcash")
	assert.True(t, ok)
	assert.Equal(t, MethodGCash, m)

	m, ok = ParsePaymentMethod("PayMaya")
	assert.True(t, ok)
	assert.Equal(t, MethodPayMaya, m)

	_, ok = ParsePaymentMethod("cash")
	assert.False(t, ok)
	_, ok = ParsePaymentMethod("")
	assert.False(t, ok)
}

func TestOfficerIsAdmin(t *testing.T) {
	assert.True(t, Officer{Position: "admin"}.IsAdmin())
	assert.True(t, Officer{Position: "Admin"}.IsAdmin())
	assert.True(t, Officer{Position: "ADMIN"}.IsAdmin())
	assert.True(t, Officer{Position: " admin "}.IsAdmin())
	assert.False(t, Officer{Position: "president"}.IsAdmin())
	assert.False(t, Officer{}.IsAdmin())
}

func TestEventRegistrationStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	// no window at all stays open
	assert.Equal(t, RegistrationOpen, Event{}.RegistrationStatus(now))

	// only a future start
	assert.Equal(t, RegistrationNotStarted, Event{RegistrationStart: &after}.RegistrationStatus(now))

	// only a past end
	assert.Equal(t, RegistrationClosed, Event{RegistrationEnd: &before}.RegistrationStatus(now))

	// inside the window
	assert.Equal(t, RegistrationOpen, Event{
		RegistrationStart: &before,
		RegistrationEnd:   &after,
	}.RegistrationStatus(now))
}

func TestMembershipPaid(t *testing.T) {
	assert.True(t, Membership{PaymentStatus: "Paid"}.Paid())
	assert.True(t, Membership{PaymentStatus: "paid"}.Paid())
	assert.False(t, Membership{PaymentStatus: "Verifying"}.Paid())
	assert.False(t, Membership{PaymentStatus: "Not Paid"}.Paid())
	assert.False(t, Membership{}.Paid())
}

func TestAnnouncementBody(t *testing.T) {
	assert.Equal(t, "full text", Announcement{Description: "summary", Content: "full text"}.Body())
	assert.Equal(t, "summary", Announcement{Description: "summary"}.Body())
}
