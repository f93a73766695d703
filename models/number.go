package models

import "time"

// Phone number statuses
const (
	NumberStatusAvailable = "available"
	NumberStatusAssigned  = "assigned"
	NumberStatusReserved  = "reserved"
	NumberStatusSuspended = "suspended"
	NumberStatusCancelled = "cancelled"
)

// PhoneNumber represents a telecom number resource assigned to a user
type PhoneNumber struct {
	Id                int
	UserId            int
	Number            string
	Country           string
	NumberType        string
	Status            string
	BillingDayOfMonth int
	LastBilledDate    *time.Time
	ReservedAt        *time.Time
}
