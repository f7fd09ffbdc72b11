package domain

import "strings"

// PaymentStatus is the closed set of membership payment states. The remote
// API sends free-form strings ("Not Paid", "verifying", " PAID "); all
// comparisons go through ParsePaymentStatus so they stay exhaustive.
type PaymentStatus string

const (
	PaymentNotPaid   PaymentStatus = "Not Paid"
	PaymentVerifying PaymentStatus = "Verifying"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentUnknown   PaymentStatus = ""
)

// ParsePaymentStatus normalizes a raw status string. Case and surrounding
// whitespace are ignored; unrecognized values map to PaymentUnknown.
func ParsePaymentStatus(s string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not paid":
		return PaymentNotPaid
	case "verifying":
		return PaymentVerifying
	case "paid":
		return PaymentPaid
	default:
		return PaymentUnknown
	}
}

// RegistrationStatus is the state of an event's registration window.
type RegistrationStatus string

const (
	RegistrationOpen       RegistrationStatus = "open"
	RegistrationNotStarted RegistrationStatus = "not_started"
	RegistrationClosed     RegistrationStatus = "closed"
)

// PaymentMethod is the closed set of supported payment channels.
type PaymentMethod string

const (
	MethodGCash   PaymentMethod = "gcash"
	MethodPayMaya PaymentMethod = "paymaya"
)

// ParsePaymentMethod normalizes a raw payment method string. The second
// return is false for anything outside the closed set.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gcash":
		return MethodGCash, true
	case "paymaya":
		return MethodPayMaya, true
	default:
		return "", false
	}
}
