package application

import (
	"testing"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/internal/repository/mock"
	mailmock "github.com/ehsworks/safety-go/pkg/mailer/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupNotificationServiceMocks(t *testing.T, cfg NotifierConfig) (*NotificationService, *mock.MockUserRepo, *mock.MockOptionRepo, *mock.MockSecurityMailRepo, *mailmock.MockSender) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockOpt := mock.NewMockOptionRepo(ctrl)
	mockSec := mock.NewMockSecurityMailRepo(ctrl)
	mockSub := mock.NewMockSubmissionRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	mail := mailmock.NewMockSender(ctrl)
	repos := &repository.Repos{
		User:         mockUser,
		Option:       mockOpt,
		SecurityMail: mockSec,
		Submission:   mockSub,
		Form:         mockForm,
	}
	svc := NewNotificationService(repos, mail, cfg)
	return svc, mockUser, mockOpt, mockSec, mail
}

func notifySubmission() form.Submission {
	return form.Submission{
		ID:            42,
		FormID:        1,
		SubmittedBy:   10,
		SubmittedDate: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		Zone:          "Z1",
		ZoneFacility:  "F1",
	}
}

func expectPlaceholderLookups(mockUser *mock.MockUserRepo, mockOpt *mock.MockOptionRepo, actorID uint) {
	mockOpt.EXPECT().ResolveCascade(option.TypeZoneFacility, "F1", option.TypeZone, "Z1").Return("Block A", nil)
	mockUser.EXPECT().GetByID(actorID).Return(user.User{ID: actorID, Contact: "555-0101"}, nil)
}

// --------------------- Compute ---------------------
func TestCompute_Submitted_WorkPermit(t *testing.T) {
	cfg := NotifierConfig{DefaultSecurityEmail: "security@test.com", SecurityEmailEnabled: true}
	svc, mockUser, mockOpt, mockSec, _ := setupNotificationServiceMocks(t, cfg)

	expectPlaceholderLookups(mockUser, mockOpt, 10)
	mockUser.EXPECT().FirstActiveInZone(user.RoleAreaManager, "Z1").Return(user.User{Email: "am@test.com"}, nil)
	mockSec.EXPECT().GetForZoneFacility("Z1", "F1").Return("desk-z1@test.com", nil)

	email, err := svc.Compute(EventSubmitted, notifySubmission(), workPermitDef(), requester(), "")
	assert.NoError(t, err)
	assert.Equal(t, "L1_FM_to_AM", email.Template)
	assert.Equal(t, []string{"am@test.com"}, email.To)
	assert.Contains(t, email.Cc, "desk-z1@test.com")
	assert.Contains(t, email.Cc, "security@test.com")
	assert.Equal(t, "WP-42", email.Placeholders["RequestId"])
	assert.Equal(t, "Block A", email.Placeholders["FacilityName"])
	assert.Equal(t, "NA", email.Placeholders["Remarks"])
	// IST rendering of 12:30 UTC
	assert.Equal(t, "01-03-2026 06:00:pm", email.Placeholders["DateTime"])
}

func TestCompute_Submitted_Incident(t *testing.T) {
	svc, mockUser, mockOpt, _, _ := setupNotificationServiceMocks(t, NotifierConfig{})

	expectPlaceholderLookups(mockUser, mockOpt, 10)
	mockUser.EXPECT().ListActiveInZone(user.RoleEHSManager, "Z1").
		Return([]user.User{{Email: "ehs1@test.com"}, {Email: "ehs2@test.com"}}, nil)
	mockUser.EXPECT().FirstActiveInZone(user.RoleAreaManager, "Z1").Return(user.User{Email: "am@test.com"}, nil)

	email, err := svc.Compute(EventSubmitted, notifySubmission(), incidentDef(), requester(), "")
	assert.NoError(t, err)
	assert.Equal(t, "FM_to_EHS_Incident", email.Template)
	assert.Equal(t, []string{"ehs1@test.com", "ehs2@test.com"}, email.To)
	assert.Equal(t, []string{"am@test.com"}, email.Cc)
	assert.Equal(t, "Near Miss", email.Placeholders["IncidentName"])
}

func TestCompute_AMApproved_GoesToAllEhs(t *testing.T) {
	svc, mockUser, mockOpt, mockSec, _ := setupNotificationServiceMocks(t,
		NotifierConfig{SecurityEmailEnabled: true})

	actor := user.Context{ID: 20, Role: user.RoleAreaManager, Zone: "Z1"}
	expectPlaceholderLookups(mockUser, mockOpt, 20)
	mockUser.EXPECT().ListActiveByRole(user.RoleEHSManager).
		Return([]user.User{{Email: "ehs1@test.com"}}, nil)
	mockUser.EXPECT().ListActiveInZone(user.RoleAreaManager, "Z1").
		Return([]user.User{{Email: "am@test.com"}}, nil)
	mockSec.EXPECT().GetForZoneFacility("Z1", "F1").Return("", nil)

	email, err := svc.Compute(EventAMApproved, notifySubmission(), workPermitDef(), actor, "ok")
	assert.NoError(t, err)
	assert.Equal(t, "AM_to_EHS", email.Template)
	assert.Equal(t, []string{"ehs1@test.com"}, email.To)
	assert.Contains(t, email.Cc, "am@test.com")
	assert.Equal(t, "ok", email.Placeholders["Remarks"])
}

func TestCompute_AMRejected_CcIncludesEhs(t *testing.T) {
	svc, mockUser, mockOpt, _, _ := setupNotificationServiceMocks(t, NotifierConfig{})

	actor := user.Context{ID: 20, Role: user.RoleAreaManager, Zone: "Z1"}
	expectPlaceholderLookups(mockUser, mockOpt, 20)
	mockUser.EXPECT().GetByID(uint(10)).Return(user.User{ID: 10, Email: "fm@test.com"}, nil)
	mockUser.EXPECT().ListActiveInZone(user.RoleAreaManager, "Z1").
		Return([]user.User{{Email: "am@test.com"}}, nil)
	mockUser.EXPECT().ListActiveByRole(user.RoleEHSManager).
		Return([]user.User{{Email: "ehs1@test.com"}}, nil)

	email, err := svc.Compute(EventAMRejected, notifySubmission(), workPermitDef(), actor, "unsafe plan")
	assert.NoError(t, err)
	assert.Equal(t, "AM_REJECTED_to_FM", email.Template)
	assert.Equal(t, []string{"fm@test.com"}, email.To)
	assert.Contains(t, email.Cc, "ehs1@test.com")
}

func TestCompute_EhsApproved_GoesToSubmitter(t *testing.T) {
	svc, mockUser, mockOpt, _, _ := setupNotificationServiceMocks(t, NotifierConfig{})

	actor := user.Context{ID: 30, Role: user.RoleEHSManager, Zone: "Z1"}
	expectPlaceholderLookups(mockUser, mockOpt, 30)
	mockUser.EXPECT().GetByID(uint(10)).Return(user.User{ID: 10, Email: "fm@test.com"}, nil)
	mockUser.EXPECT().ListActiveInZone(user.RoleAreaManager, "Z1").
		Return([]user.User{{Email: "am@test.com"}}, nil)

	email, err := svc.Compute(EventEHSApproved, notifySubmission(), workPermitDef(), actor, "")
	assert.NoError(t, err)
	assert.Equal(t, "EHS_APPROVED_to_FM", email.Template)
	assert.Equal(t, []string{"fm@test.com"}, email.To)
}

func TestCompute_SecurityDisabled_NoSecurityCc(t *testing.T) {
	svc, mockUser, mockOpt, _, _ := setupNotificationServiceMocks(t,
		NotifierConfig{DefaultSecurityEmail: "security@test.com", SecurityEmailEnabled: false})

	expectPlaceholderLookups(mockUser, mockOpt, 10)
	mockUser.EXPECT().FirstActiveInZone(user.RoleAreaManager, "Z1").Return(user.User{Email: "am@test.com"}, nil)

	email, err := svc.Compute(EventSubmitted, notifySubmission(), workPermitDef(), requester(), "")
	assert.NoError(t, err)
	assert.NotContains(t, email.Cc, "security@test.com")
}

func TestCompute_DedupesCc(t *testing.T) {
	svc, mockUser, mockOpt, _, _ := setupNotificationServiceMocks(t, NotifierConfig{})

	actor := user.Context{ID: 20, Role: user.RoleAreaManager, Zone: "Z1"}
	expectPlaceholderLookups(mockUser, mockOpt, 20)
	mockUser.EXPECT().GetByID(uint(10)).Return(user.User{ID: 10, Email: "fm@test.com"}, nil)
	mockUser.EXPECT().ListActiveInZone(user.RoleAreaManager, "Z1").
		Return([]user.User{{Email: "shared@test.com"}}, nil)
	mockUser.EXPECT().ListActiveByRole(user.RoleEHSManager).
		Return([]user.User{{Email: "shared@test.com"}}, nil)

	email, err := svc.Compute(EventAMRejected, notifySubmission(), workPermitDef(), actor, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"shared@test.com"}, email.Cc)
}
