package scheduler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/communityworks/volunteer-platform/internal/utils"
	"github.com/communityworks/volunteer-platform/pkg/mail"
)

const reminderBodyTemplate = `Dear %s,

Thank you for signing up as a volunteer with us! This is a friendly reminder about your upcoming task:

Task Title: %s
Date: %s
Location: %s
Description: %s

We appreciate your dedication and commitment to making a difference.

If you have any questions or need further assistance, feel free to contact us.

Thank you once again for your time and efforts.

Warm regards,
The Volunteer Platform Team`

// SweepReminders emails every volunteer whose task takes place tomorrow
// and whose reminder has not been sent. Each successful send is persisted
// immediately so a later failure in the same batch cannot cause an
// already-notified volunteer to be emailed again. A failed send is logged
// and skipped; the record stays eligible for the next pass.
func (s *Scheduler) SweepReminders(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tomorrow := utils.DateOnly(s.now()).AddDate(0, 0, 1)
	signups, err := s.signupRepo.ListDueForReminder(tomorrow)
	if err != nil {
		return 0, fmt.Errorf("reminder sweep: load signups: %w", err)
	}

	s.log.Info("reminder sweep started",
		zap.Time("event_date", tomorrow),
		zap.Int("due", len(signups)))

	sent := 0
	for i := range signups {
		signup := &signups[i]
		if signup.ReminderSent {
			continue
		}

		body := fmt.Sprintf(reminderBodyTemplate,
			signup.Volunteer.Name,
			signup.Task.Title,
			signup.Task.EventDate.Format("2006-01-02"),
			signup.Task.Location,
			signup.Task.Description,
		)
		subject := "Reminder: Upcoming Volunteer Task - " + signup.Task.Title

		err := s.mailer.Send(ctx, mail.Message{
			To:      signup.Volunteer.Email,
			Subject: subject,
			Body:    body,
		})
		if err != nil {
			s.log.Warn("reminder send failed",
				zap.Uint64("signup_id", signup.ID),
				zap.String("to", signup.Volunteer.Email),
				zap.Error(err))
			continue
		}

		signup.ReminderSent = true
		sentAt := s.now()
		signup.LastReminderSentAt = &sentAt
		if err := s.signupRepo.Update(signup); err != nil {
			s.log.Warn("reminder sweep: persist failed",
				zap.Uint64("signup_id", signup.ID),
				zap.Error(err))
			continue
		}

		s.log.Info("reminder sent", zap.Uint64("signup_id", signup.ID))
		sent++
	}

	return sent, nil
}
