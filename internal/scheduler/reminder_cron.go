package cron

import (
	"context"

	"github.com/azhar2201/achievement-tracker/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartReminderCronJobs schedules the daily pending-review scan.
func StartReminderCronJobs(reminder *jobs.PendingReminder) {
	c := cron.New()

	// Review backlog reminder every morning
	c.AddFunc("0 8 * * *", func() {
		if err := reminder.RunDailyScan(context.Background()); err != nil {
			logrus.WithError(err).Error("Pending review scan failed")
		}
	})

	c.Start()
}
