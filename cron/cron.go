package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
	"github.com/glowmedspa/medspa-backend/utils"
)

// StartReminderJobs initializes and starts the cron scheduler for appointment reminders
func StartReminderJobs(cfg config.Settings) {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", func() { sendAppointmentReminders(cfg) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for upcoming appointments, emails the
// client and records an automation event per reminder
func sendAppointmentReminders(cfg config.Settings) {
	var appointments []models.Appointment
	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Client").Preload("Service").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusScheduled, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Client.Email != nil {
			if err := sendReminderEmail(cfg, &appointment); err != nil {
				log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			} else {
				log.Printf("Sent reminder for appointment %d to %s", appointment.ID, *appointment.Client.Email)
			}
		}

		event := models.AutomationEvent{
			AccountID: appointment.AccountID,
			Name:      "appointment_reminder",
			Payload: models.JSONMap{
				"appointment_id": appointment.ID,
				"client_id":      appointment.ClientID,
				"start_time":     appointment.StartTime.Format(time.RFC3339),
			},
		}
		if err := db.DB.Create(&event).Error; err != nil {
			log.Printf("Failed to record reminder event for appointment %d: %v", appointment.ID, err)
		}
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(cfg config.Settings, appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>%s</p>
	`, appointment.Client.FirstName, appointment.Service.Name,
		appointment.StartTime.Format("2006-01-02 15:04:05"),
		appointment.EndTime.Format("2006-01-02 15:04:05"),
		appointment.Status, cfg.ProjectName)

	return utils.SendEmail(cfg, *appointment.Client.Email, subject, body)
}
