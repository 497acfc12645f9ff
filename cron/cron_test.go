package cron

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/db"
	"github.com/glowmedspa/medspa-backend/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.Account{},
		&models.Staff{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.Conversation{},
		&models.Message{},
		&models.AutomationEvent{},
	))
	db.DB = gdb
}

func TestSendAppointmentRemindersRecordsEvent(t *testing.T) {
	setupTestDB(t)

	account := models.Account{Name: "Glow MedSpa"}
	require.NoError(t, db.DB.Create(&account).Error)

	email := "grace@x.com"
	client := models.Client{AccountID: account.ID, Email: &email, FirstName: "Grace"}
	require.NoError(t, db.DB.Create(&client).Error)

	service := models.Service{AccountID: account.ID, Name: "Botox", DurationMinutes: 30}
	require.NoError(t, db.DB.Create(&service).Error)

	now := time.Now()
	upcoming := models.Appointment{
		AccountID: account.ID,
		ServiceID: service.ID,
		ClientID:  client.ID,
		StartTime: now.Add(60 * time.Minute),
		EndTime:   now.Add(90 * time.Minute),
	}
	require.NoError(t, db.DB.Create(&upcoming).Error)

	// outside the reminder window
	distant := models.Appointment{
		AccountID: account.ID,
		ServiceID: service.ID,
		ClientID:  client.ID,
		StartTime: now.Add(3 * time.Hour),
		EndTime:   now.Add(4 * time.Hour),
	}
	require.NoError(t, db.DB.Create(&distant).Error)

	// in the window but already canceled
	canceled := models.Appointment{
		AccountID: account.ID,
		ServiceID: service.ID,
		ClientID:  client.ID,
		StartTime: now.Add(60 * time.Minute),
		EndTime:   now.Add(90 * time.Minute),
		Status:    models.StatusCanceled,
	}
	require.NoError(t, db.DB.Create(&canceled).Error)

	// SMTP is unconfigured, so the email attempt fails and is logged; the
	// automation event must be recorded regardless
	sendAppointmentReminders(config.Settings{ProjectName: "MedSpa Agent"})

	var events []models.AutomationEvent
	require.NoError(t, db.DB.Find(&events).Error)
	require.Len(t, events, 1)

	event := events[0]
	assert.Equal(t, account.ID, event.AccountID)
	assert.Equal(t, "appointment_reminder", event.Name)
	assert.Equal(t, "pending", event.Status)
	assert.Equal(t, float64(upcoming.ID), event.Payload["appointment_id"])
	assert.Equal(t, float64(client.ID), event.Payload["client_id"])
}

func TestSendAppointmentRemindersEmptyWindow(t *testing.T) {
	setupTestDB(t)

	sendAppointmentReminders(config.Settings{ProjectName: "MedSpa Agent"})

	var count int64
	require.NoError(t, db.DB.Model(&models.AutomationEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}
