package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/internal/repository/mock"
	mailmock "github.com/ehsworks/safety-go/pkg/mailer/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func setupSweeperMocks(t *testing.T) (*Sweeper, *mock.MockSubmissionRepo, *mock.MockOptionRepo, *mailmock.MockSender) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSub := mock.NewMockSubmissionRepo(ctrl)
	mockOpt := mock.NewMockOptionRepo(ctrl)
	mail := mailmock.NewMockSender(ctrl)
	repos := &repository.Repos{
		Submission: mockSub,
		Option:     mockOpt,
	}
	return New(repos, mail), mockSub, mockOpt, mail
}

func dueRecord() repository.ReminderRecord {
	return repository.ReminderRecord{
		ID:             42,
		Title:          "Hot Work Permit",
		Zone:           "Z1",
		ZoneFacility:   "F1",
		SubmittedDate:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		RequesterName:  "Fran Miles",
		RequesterEmail: "fm@test.com",
	}
}

func TestSweep_SendsReminderAndMarksSent(t *testing.T) {
	sweeper, mockSub, mockOpt, mail := setupSweeperMocks(t)

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	mockSub.EXPECT().DueReminders(now, now.Add(sweepInterval)).
		Return([]repository.ReminderRecord{dueRecord()}, nil)
	mockOpt.EXPECT().ResolveCascade(option.TypeZoneFacility, "F1", option.TypeZone, "Z1").
		Return("Block A", nil)

	mail.EXPECT().SendTemplated(
		[]string{"fm@test.com"}, gomock.Any(), "FM_CLOSER_REMINDER", gomock.Any(), gomock.Nil(),
	).DoAndReturn(func(to []string, subject, tmpl string, placeholders map[string]string, cc []string) error {
		assert.Equal(t, "WP-42", placeholders["RequestId"])
		assert.Equal(t, "Block A", placeholders["FacilityName"])
		assert.Equal(t, "Fran Miles", placeholders["Requester"])
		return nil
	})
	mockSub.EXPECT().MarkReminderSent(int64(42)).Return(nil)

	sweeper.Sweep(context.Background(), now)
}

func TestSweep_SendFailureLeavesUnmarked(t *testing.T) {
	sweeper, mockSub, mockOpt, mail := setupSweeperMocks(t)

	now := time.Now()
	mockSub.EXPECT().DueReminders(now, now.Add(sweepInterval)).
		Return([]repository.ReminderRecord{dueRecord()}, nil)
	mockOpt.EXPECT().ResolveCascade(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", nil)
	mail.EXPECT().SendTemplated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("relay down"))

	// no MarkReminderSent expectation: the row must stay eligible
	sweeper.Sweep(context.Background(), now)
}

func TestSweep_EmptyWindow(t *testing.T) {
	sweeper, mockSub, _, _ := setupSweeperMocks(t)

	now := time.Now()
	mockSub.EXPECT().DueReminders(now, now.Add(sweepInterval)).Return(nil, nil)

	sweeper.Sweep(context.Background(), now)
}
