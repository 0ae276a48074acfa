package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		status   string
		date     string
		expected string
	}{
		{"Cancelled stays cancelled regardless of date", "Cancelled", "2026-01-01", "Cancelled"},
		{"Cancelled stays cancelled even in the future", "Cancelled", "2026-12-31", "Cancelled"},
		{"Confirmed with past date reads Completed", "Confirmed", "2026-03-09", "Completed"},
		{"Confirmed today stays Confirmed", "Confirmed", "2026-03-10", "Confirmed"},
		{"Confirmed in the future stays Confirmed", "Confirmed", "2026-04-01", "Confirmed"},
		{"Unparseable date falls back to stored status", "Confirmed", "garbage", "Confirmed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appointment := &Appointment{Status: tc.status, Date: tc.date}
			assert.Equal(t, tc.expected, ClassifyStatus(appointment, now))
		})
	}
}
