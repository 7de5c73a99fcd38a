package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// TrackingNumber derives the customer-facing tracking number from a record id.
// First 6 characters of the id string, stable for the lifetime of the parcel.
func TrackingNumber(id uuid.UUID) string {
	return id.String()[:6]
}

// WorkerDisplayID derives the worker display id: ABC- prefix + 6 chars of the id
func WorkerDisplayID(id uuid.UUID) string {
	return "ABC-" + id.String()[:6]
}

// AdminDisplayID derives the admin display id: 6 chars of the id
func AdminDisplayID(id uuid.UUID) string {
	return id.String()[:6]
}

// TrackingLink builds the public tracking URL sent out in notifications
func TrackingLink(baseURL, trackingNumber string) string {
	return strings.TrimRight(baseURL, "/") + "/track?parcel=" + trackingNumber
}
