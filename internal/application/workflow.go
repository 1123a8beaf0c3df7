package application

import (
	"errors"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/docstore"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound       = errors.New("form definition not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAreaManagerMissing = errors.New("no active area manager registered for zone")
	ErrEhsManagerMissing  = errors.New("no active EHS manager registered for zone")
	ErrNotApplicable      = errors.New("operation not applicable for this form type")
	ErrTerminalState      = errors.New("submission is already closed or rejected")
)

// WorkflowService owns submission status, pending-role transitions and the
// workflow history log. Every mutation is one transaction; notifications go
// out after commit and never affect the caller.
type WorkflowService struct {
	repos    *repository.Repos
	notifier Notifier
}

func NewWorkflowService(repos *repository.Repos, notifier Notifier) *WorkflowService {
	return &WorkflowService{repos: repos, notifier: notifier}
}

// Submit validates the routing target for the form type, creates the
// submission with its attachments atomically, and fires the SUBMITTED
// notification.
func (s *WorkflowService) Submit(actor user.Context, input form.SubmitInput) (*form.Submission, error) {
	def, err := s.repos.Form.GetDefinition(input.FormID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}

	var pendingWith user.Role
	switch def.FormType {
	case form.TypeWorkPermit:
		if _, err := s.repos.User.FirstActiveInZone(user.RoleAreaManager, input.Zone); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAreaManagerMissing
			}
			return nil, err
		}
		pendingWith = user.RoleAreaManager
	case form.TypeIncident:
		if _, err := s.repos.User.FirstActiveInZone(user.RoleEHSManager, input.Zone); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEhsManagerMissing
			}
			return nil, err
		}
		pendingWith = user.RoleEHSManager
	default:
		return nil, ErrNotApplicable
	}

	sub := &form.Submission{
		FormID:               def.ID,
		SubmittedBy:          actor.ID,
		SubmittedDate:        time.Now().UTC(),
		FormData:             datatypes.JSON(input.FormData),
		Status:               form.StatusPending,
		PendingWith:          pendingWith,
		Zone:                 input.Zone,
		ZoneFacility:         input.ZoneFacility,
		FacilityZoneLocation: input.FacilityZoneLocation,
		Project:              input.Project,
	}

	err = s.repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.Create(sub); err != nil {
			return err
		}
		return createDocuments(tx, sub.ID, input.Files)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(EventSubmitted, sub.ID, actor, "")
	return sub, nil
}

// UpdateStatus applies the role-ordered transition table for work permits.
// Incidents have no post-submission status workflow.
func (s *WorkflowService) UpdateStatus(actor user.Context, id int64, input form.UpdateStatusInput) (*form.Submission, error) {
	sub, err := s.repos.Submission.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	def, err := s.repos.Form.GetDefinition(sub.FormID)
	if err != nil {
		return nil, err
	}
	if def.FormType != form.TypeWorkPermit {
		return nil, ErrNotApplicable
	}
	if sub.Status.Terminal() {
		return nil, ErrTerminalState
	}

	rejecting := input.Status == form.StatusRejected

	var event Event
	switch {
	case actor.Role == user.RoleAreaManager && !rejecting:
		// status stays as-is until the facility manager closes it; the
		// submission moves to the EHS tier.
		sub.PendingWith = user.RoleEHSManager
		event = EventAMApproved
	case actor.Role == user.RoleAreaManager:
		sub.Status = form.StatusRejected
		sub.PendingWith = user.RoleProjectManagerFacilityManager
		event = EventAMRejected
	case actor.Role.IsApprovalTier() && !rejecting:
		sub.Status = form.StatusApproved
		sub.PendingWith = user.RoleProjectManagerFacilityManager
		event = EventEHSApproved
	case actor.Role.IsApprovalTier():
		sub.Status = form.StatusRejected
		sub.PendingWith = user.RoleProjectManagerFacilityManager
		event = EventEHSRejected
	case actor.Role == user.RoleProjectManagerFacilityManager:
		// the requester drives its own submission; pending_with stays put.
		sub.Status = input.Status
		if input.Status == form.StatusClosed {
			event = EventFMClosed
		}
	default:
		return nil, ErrNotApplicable
	}

	now := time.Now().UTC()
	sub.UpdatedBy = &actor.ID
	sub.UpdatedDate = &now

	err = s.repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.Update(&sub); err != nil {
			return err
		}
		return tx.Submission.AppendHistory(&form.WorkflowHistory{
			FormSubmissionID: sub.ID,
			Status:           sub.Status,
			ActionBy:         actor.ID,
			ActionDate:       now,
			Remarks:          input.Remarks,
		})
	})
	if err != nil {
		return nil, err
	}

	if event != "" {
		s.notifier.Dispatch(event, sub.ID, actor, input.Remarks)
	}
	return &sub, nil
}

// UpdateForm replaces the payload and location fields and appends new
// documents without touching the workflow state.
func (s *WorkflowService) UpdateForm(actor user.Context, id int64, input form.UpdateFormInput) (*form.Submission, error) {
	sub, err := s.repos.Submission.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	if sub.Status.Terminal() {
		return nil, ErrTerminalState
	}

	if len(input.FormData) > 0 {
		sub.FormData = datatypes.JSON(input.FormData)
	}
	if input.Zone != "" {
		sub.Zone = input.Zone
	}
	if input.ZoneFacility != "" {
		sub.ZoneFacility = input.ZoneFacility
	}
	if input.FacilityZoneLocation != "" {
		sub.FacilityZoneLocation = input.FacilityZoneLocation
	}
	if input.Project != "" {
		sub.Project = input.Project
	}
	now := time.Now().UTC()
	sub.UpdatedBy = &actor.ID
	sub.UpdatedDate = &now

	err = s.repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.Update(&sub); err != nil {
			return err
		}
		return createDocuments(tx, sub.ID, input.Files)
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func createDocuments(tx *repository.Repos, submissionID int64, files []form.FileInput) error {
	for _, f := range files {
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		doc := &form.Document{
			FormSubmissionID: submissionID,
			FileName:         f.FileName,
			ContentType:      contentType,
			Content:          docstore.Encode(f.Content),
		}
		if err := tx.Document.Create(doc); err != nil {
			return err
		}
	}
	return nil
}
