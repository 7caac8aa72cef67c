package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-onboarding/internal/event"
	"go-onboarding/internal/feedback"
	"go-onboarding/internal/identity"
	"go-onboarding/internal/notification"

	"go.uber.org/zap"
)

const (
	dailySweepHour    = 7
	eventSoonInterval = 30 * time.Minute
	eventSoonHorizon  = 60 * time.Minute
	trialPeriodMonths = 3
	trialWarningDays  = 7
)

// Scheduler drives the time-based reminders: a daily sweep at 07:00 for
// feedback, trial-end and event-day notices, and a 30-minute sweep for
// events starting within the hour.
type Scheduler struct {
	users         identity.Repository
	feedback      feedback.Repository
	events        event.Repository
	notifications notification.Service
	clock         Clock
	logger        *zap.Logger

	stop chan struct{}
	wg   sync.WaitGroup
}

func New(
	users identity.Repository,
	fb feedback.Repository,
	events event.Repository,
	notifications notification.Service,
	clock Clock,
	logger ...*zap.Logger,
) *Scheduler {
	l := zap.L().Named("scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("scheduler")
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		users:         users,
		feedback:      fb,
		events:        events,
		notifications: notifications,
		clock:         clock,
		logger:        l,
		stop:          make(chan struct{}),
	}
}

// Start launches the sweep loops. A sweep error is logged and the loop keeps
// running; a single bad day never kills the scheduler.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(2)

	go func() {
		defer s.wg.Done()

		for {
			now := s.clock.Now()
			timer := time.NewTimer(nextDailyFire(now).Sub(now))

			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-s.stop:
				timer.Stop()
				return
			case <-timer.C:
				if err := s.RunDailySweep(ctx, s.clock.Now()); err != nil {
					s.logger.Error("daily sweep failed", zap.Error(err))
				}
			}
		}
	}()

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(eventSoonInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				return
			case <-ticker.C:
				if err := s.RunEventSoonSweep(ctx, s.clock.Now()); err != nil {
					s.logger.Error("event-soon sweep failed", zap.Error(err))
				}
			}
		}
	}()

	s.logger.Info("scheduler started",
		zap.Int("daily_sweep_hour", dailySweepHour),
		zap.Duration("event_soon_interval", eventSoonInterval))
}

func (s *Scheduler) Stop() {
	close(s.stop)
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

// RunDailySweep executes the 07:00 pass: feedback check-ins, trial-end
// warnings and event-day notices, each isolated so one failing leg does not
// starve the others.
func (s *Scheduler) RunDailySweep(ctx context.Context, now time.Time) error {
	s.logger.Info("daily sweep started", zap.Time("now", now))

	var firstErr error
	record := func(leg string, err error) {
		if err == nil {
			return
		}
		s.logger.Error("daily sweep leg failed", zap.String("leg", leg), zap.Error(err))
		if firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", leg, err)
		}
	}

	record("feedback", s.sweepFeedback(ctx, now))
	record("trial_end", s.sweepTrialEnd(ctx, now))
	record("event_day", s.sweepEventDay(ctx, now))

	return firstErr
}

// sweepFeedback notifies employees whose tenure is exactly 3, 6 or 12 whole
// calendar months and who have not yet submitted that check-in's form. The
// reminder repeats daily until the form lands; only the submission itself
// stops it.
func (s *Scheduler) sweepFeedback(ctx context.Context, now time.Time) error {
	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return err
	}

	for _, u := range employees {
		months := wholeMonthsSince(u.StartDate, now)
		t, ok := feedback.TypeForMonths(months)
		if !ok {
			continue
		}

		submitted, err := s.feedback.Exists(ctx, u.ID.String(), t)
		if err != nil {
			s.logger.Warn("feedback existence check failed",
				zap.String("user_id", u.ID.String()), zap.Error(err))
			continue
		}
		if submitted {
			continue
		}

		s.notify(ctx, u.ID.String(), notification.TypeFeedbackAvailable,
			fmt.Sprintf("%d-month feedback due", months),
			fmt.Sprintf("Your %d-month check-in form is ready. Please submit your feedback.", months),
			map[string]any{"feedbackType": string(t)})
	}
	return nil
}

// sweepTrialEnd warns HR and the direct supervisor exactly 7 days before an
// employee's trial period (start date plus 3 months) ends.
func (s *Scheduler) sweepTrialEnd(ctx context.Context, now time.Time) error {
	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return err
	}

	var hrUsers []identity.User
	for _, u := range employees {
		trialEnd := u.StartDate.AddDate(0, trialPeriodMonths, 0)
		if daysUntilCeil(now, trialEnd) != trialWarningDays {
			continue
		}

		if hrUsers == nil {
			hrUsers, err = s.users.ListByRole(ctx, "hr")
			if err != nil {
				return err
			}
		}

		meta := map[string]any{
			"userId":   u.ID.String(),
			"trialEnd": trialEnd.UTC().Format(time.RFC3339),
		}
		title := "Trial period ending soon"
		message := fmt.Sprintf("%s's trial period ends on %s.",
			u.FullName, trialEnd.Format("2006-01-02"))

		for _, hr := range hrUsers {
			s.notify(ctx, hr.ID.String(), notification.TypeProbationDeadline, title, message, meta)
		}
		if u.SupervisorID != nil {
			s.notify(ctx, u.SupervisorID.String(), notification.TypeProbationDeadline, title, message, meta)
		}
	}
	return nil
}

// sweepEventDay tells everyone about company events starting today.
func (s *Scheduler) sweepEventDay(ctx context.Context, now time.Time) error {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	events, err := s.events.ListStartingBetween(ctx, dayStart.Add(-time.Nanosecond), dayEnd)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		meta := map[string]any{"eventId": e.ID.String()}
		message := fmt.Sprintf("%s takes place today at %s.",
			e.Title, e.StartDate.Format("15:04"))
		for _, u := range users {
			s.notify(ctx, u.ID.String(), notification.TypeEvent,
				"Event today: "+e.Title, message, meta)
		}
	}
	return nil
}

// RunEventSoonSweep notifies everyone about events starting within the next
// hour. The window is half-open (now, now+60m], so an event is announced by
// exactly one sweep.
func (s *Scheduler) RunEventSoonSweep(ctx context.Context, now time.Time) error {
	events, err := s.events.ListStartingBetween(ctx, now, now.Add(eventSoonHorizon))
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, e := range events {
		minutes := int(e.StartDate.Sub(now).Minutes())
		meta := map[string]any{
			"eventId":           e.ID.String(),
			"minutesUntilStart": minutes,
		}
		message := fmt.Sprintf("%s starts in %d minutes.", e.Title, minutes)
		for _, u := range users {
			s.notify(ctx, u.ID.String(), notification.TypeReminder,
				"Starting soon: "+e.Title, message, meta)
		}
	}
	return nil
}

func (s *Scheduler) notify(ctx context.Context, userID string, t notification.Type, title, message string, meta map[string]any) {
	_, err := s.notifications.Notify(ctx, notification.CreateInput{
		UserID:   userID,
		Type:     t,
		Title:    title,
		Message:  message,
		Metadata: meta,
	})
	if err != nil {
		s.logger.Warn("scheduler notification failed",
			zap.String("user_id", userID),
			zap.String("type", string(t)),
			zap.Error(err))
	}
}

// nextDailyFire returns the next 07:00 strictly after now.
func nextDailyFire(now time.Time) time.Time {
	fire := time.Date(now.Year(), now.Month(), now.Day(), dailySweepHour, 0, 0, 0, now.Location())
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire
}

// wholeMonthsSince counts completed calendar months from start to now.
func wholeMonthsSince(start, now time.Time) int {
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if now.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// daysUntilCeil rounds partial days up, so "6 days and 2 hours away" counts
// as 7 days out.
func daysUntilCeil(now, target time.Time) int {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
