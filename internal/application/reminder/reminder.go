package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/mailer"
	"github.com/ehsworks/safety-go/pkg/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// sweepInterval is both the tick period and the look-ahead window, so
	// every work-end timestamp lands in exactly one sweep.
	sweepInterval = 4 * time.Minute
	batchSize     = 30
	batchPause    = 4 * time.Second
)

// Sweeper periodically finds approved work permits whose work window ends
// inside the next interval and mails the requester a closure reminder.
type Sweeper struct {
	repos *repository.Repos
	mail  mailer.Sender
}

func New(repos *repository.Repos, mail mailer.Sender) *Sweeper {
	return &Sweeper{repos: repos, mail: mail}
}

// Run blocks, sweeping once per interval until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	log.WithField("interval", sweepInterval).Info("closure reminder sweep started")
	for {
		select {
		case <-ctx.Done():
			log.Info("closure reminder sweep stopped")
			return
		case now := <-ticker.C:
			s.Sweep(ctx, now)
		}
	}
}

// Sweep runs one pass over the window [now, now+interval). Failures are
// logged per permit; a failed send leaves the row unmarked so the next
// eligible sweep retries it.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) {
	due, err := s.repos.Submission.DueReminders(now, now.Add(sweepInterval))
	if err != nil {
		log.WithError(err).Error("reminder sweep query failed")
		return
	}
	if len(due) == 0 {
		return
	}
	log.WithField("count", len(due)).Info("sending closure reminders")

	for start := 0; start < len(due); start += batchSize {
		if start > 0 {
			// spread batches out so the relay never sees a burst
			select {
			case <-ctx.Done():
				return
			case <-time.After(batchPause):
			}
		}

		end := start + batchSize
		if end > len(due) {
			end = len(due)
		}

		var g errgroup.Group
		for _, rec := range due[start:end] {
			rec := rec
			g.Go(func() error {
				if err := s.remind(rec); err != nil {
					log.WithFields(log.Fields{
						"submission_id": rec.ID,
						"requester":     rec.RequesterEmail,
					}).WithError(err).Error("closure reminder failed")
				}
				return nil
			})
		}
		g.Wait()
	}
}

func (s *Sweeper) remind(rec repository.ReminderRecord) error {
	facility, err := s.repos.Option.ResolveCascade(
		option.TypeZoneFacility, rec.ZoneFacility, option.TypeZone, rec.Zone)
	if err != nil || facility == "" {
		facility = rec.ZoneFacility
	}

	def := form.Definition{FormType: form.TypeWorkPermit}
	placeholders := map[string]string{
		"WorkPermitName": rec.Title,
		"RequestId":      def.DisplayID(rec.ID),
		"FacilityName":   facility,
		"DateTime":       utils.DisplayTime(rec.SubmittedDate),
		"Requester":      rec.RequesterName,
	}
	subject := fmt.Sprintf("Reminder: close work permit %s", def.DisplayID(rec.ID))

	if err := s.mail.SendTemplated(
		[]string{rec.RequesterEmail}, subject, "FM_CLOSER_REMINDER", placeholders, nil,
	); err != nil {
		return err
	}
	// mark only after the mail went out; a crash in between resends, which
	// beats silently never reminding
	return s.repos.Submission.MarkReminderSent(rec.ID)
}
