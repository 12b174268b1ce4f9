package scheduler

import (
	"context"
	"fmt"

	"github.com/Dias221467/HealthHabit/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartReminderCronJobs runs the reminder scan on schedule. The caller stops
// the returned cron when shutting down.
func StartReminderCronJobs(notifier *jobs.ReminderNotifier, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if _, err := notifier.RunScan(context.Background()); err != nil {
			logrus.WithError(err).Error("Reminder scan failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}

	c.Start()
	logrus.WithField("schedule", schedule).Info("Reminder cron started")
	return c, nil
}
