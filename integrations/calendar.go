// Package integrations wraps the third-party side effects the agent can
// trigger. Payment and calendar are stubs; SMS talks to Twilio when
// credentials are configured.
package integrations

import (
	"time"
)

type Slot struct {
	StaffID   uint      `json:"staff_id"`
	StartTime time.Time `json:"start_time"`
}

// SearchAvailability returns fake availability slots for tomorrow.
func SearchAvailability(staffID uint) []Slot {
	if staffID == 0 {
		staffID = 1
	}
	base := time.Now().UTC().Truncate(time.Hour)

	var slots []Slot
	for offset := 9; offset < 15; offset += 2 {
		slots = append(slots, Slot{
			StaffID:   staffID,
			StartTime: base.Add(24*time.Hour + time.Duration(offset)*time.Hour),
		})
	}
	return slots
}

// BookAppointment mocks appointment creation for the tool registry.
func BookAppointment(clientID, serviceID, staffID uint) map[string]any {
	start := time.Now().UTC().Add(24 * time.Hour)
	return map[string]any{
		"appointment_id": 999,
		"client_id":      clientID,
		"service_id":     serviceID,
		"staff_id":       staffID,
		"start_time":     start.Format(time.RFC3339),
	}
}
