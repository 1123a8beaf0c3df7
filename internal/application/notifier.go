package application

import (
	"errors"
	"fmt"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/mailer"
	"github.com/ehsworks/safety-go/pkg/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Event identifies a committed workflow transition for notification routing.
type Event string

const (
	EventSubmitted   Event = "SUBMITTED"
	EventAMApproved  Event = "AM_APPROVED"
	EventAMRejected  Event = "AM_REJECTED"
	EventEHSApproved Event = "EHS_APPROVED"
	EventEHSRejected Event = "EHS_REJECTED"
	EventFMClosed    Event = "FM_CLOSED"
)

// Notifier is the out-of-band notification boundary the workflow engine
// fires after a transition commits. Implementations must never block the
// caller or surface failures to it.
type Notifier interface {
	Dispatch(event Event, submissionID int64, actor user.Context, remarks string)
}

// Email is a fully computed notification, ready for the mail collaborator.
type Email struct {
	To           []string
	Cc           []string
	Subject      string
	Template     string
	Placeholders map[string]string
}

type NotifierConfig struct {
	DefaultSecurityEmail string
	SecurityEmailEnabled bool
}

type NotificationService struct {
	repos *repository.Repos
	mail  mailer.Sender
	cfg   NotifierConfig
}

func NewNotificationService(repos *repository.Repos, mail mailer.Sender, cfg NotifierConfig) *NotificationService {
	return &NotificationService{repos: repos, mail: mail, cfg: cfg}
}

// Dispatch sends the notification for one transition on its own goroutine.
// Every failure is logged and swallowed: the transition is already committed
// and must not be affected.
func (s *NotificationService) Dispatch(event Event, submissionID int64, actor user.Context, remarks string) {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.WithFields(log.Fields{
					"event":         event,
					"submission_id": submissionID,
				}).Errorf("notification panicked: %v", rec)
			}
		}()
		if err := s.notify(event, submissionID, actor, remarks); err != nil {
			log.WithFields(log.Fields{
				"event":         event,
				"submission_id": submissionID,
				"actor_id":      actor.ID,
			}).WithError(err).Error("failed to send notification")
		}
	}()
}

func (s *NotificationService) notify(event Event, submissionID int64, actor user.Context, remarks string) error {
	sub, err := s.repos.Submission.GetByID(submissionID)
	if err != nil {
		return err
	}
	def, err := s.repos.Form.GetDefinition(sub.FormID)
	if err != nil {
		return err
	}

	email, err := s.Compute(event, sub, def, actor, remarks)
	if err != nil {
		return err
	}
	if email == nil || len(email.To) == 0 {
		// no template or no recipients mapped for this transition
		return nil
	}
	return s.mail.SendTemplated(email.To, email.Subject, email.Template, email.Placeholders, email.Cc)
}

// Compute derives recipients, template and placeholders for one transition.
// A nil result means the transition has no mapped notification.
func (s *NotificationService) Compute(event Event, sub form.Submission, def form.Definition, actor user.Context, remarks string) (*Email, error) {
	email := &Email{Placeholders: s.placeholders(sub, def, actor, remarks)}

	switch event {
	case EventSubmitted:
		return s.computeSubmitted(email, sub, def)
	case EventAMApproved:
		email.Template = "AM_to_EHS"
		email.Subject = fmt.Sprintf("%s - Approved by Area Manager", def.Title)
		ehs, err := s.repos.User.ListActiveByRole(user.RoleEHSManager)
		if err != nil {
			return nil, err
		}
		email.To = emails(ehs)
	case EventFMClosed:
		email.Template = "FM_CLOSED_to_EHS"
		email.Subject = fmt.Sprintf("%s - Closed", def.Title)
		ehs, err := s.repos.User.ListActiveByRole(user.RoleEHSManager)
		if err != nil {
			return nil, err
		}
		email.To = emails(ehs)
	case EventAMRejected:
		email.Template = "AM_REJECTED_to_FM"
		email.Subject = fmt.Sprintf("%s - Rejected by Area Manager", def.Title)
		submitter, err := s.repos.User.GetByID(sub.SubmittedBy)
		if err != nil {
			return nil, err
		}
		email.To = []string{submitter.Email}
	case EventEHSApproved:
		email.Template = "EHS_APPROVED_to_FM"
		email.Subject = fmt.Sprintf("%s - Approved", def.Title)
		submitter, err := s.repos.User.GetByID(sub.SubmittedBy)
		if err != nil {
			return nil, err
		}
		email.To = []string{submitter.Email}
	case EventEHSRejected:
		email.Template = "EHS_REJECTED_to_FM"
		email.Subject = fmt.Sprintf("%s - Rejected", def.Title)
		submitter, err := s.repos.User.GetByID(sub.SubmittedBy)
		if err != nil {
			return nil, err
		}
		email.To = []string{submitter.Email}
	default:
		return nil, nil
	}

	cc, err := s.transitionCc(event, sub)
	if err != nil {
		return nil, err
	}
	email.Cc = cc
	return email, nil
}

// computeSubmitted routes the initial submission notification by form type.
func (s *NotificationService) computeSubmitted(email *Email, sub form.Submission, def form.Definition) (*Email, error) {
	switch def.FormType {
	case form.TypeWorkPermit:
		email.Template = "L1_FM_to_AM"
		email.Subject = fmt.Sprintf("Work Permit - %s", def.Title)

		am, err := s.repos.User.FirstActiveInZone(user.RoleAreaManager, sub.Zone)
		if err != nil {
			return nil, err
		}
		email.To = []string{am.Email}
		email.Cc = s.securityCc(sub)
		return email, nil

	case form.TypeIncident:
		email.Template = "FM_to_EHS_Incident"
		email.Subject = fmt.Sprintf("Incident reported - %s", def.Title)

		ehs, err := s.repos.User.ListActiveInZone(user.RoleEHSManager, sub.Zone)
		if err != nil {
			return nil, err
		}
		email.To = emails(ehs)
		am, err := s.repos.User.FirstActiveInZone(user.RoleAreaManager, sub.Zone)
		if err == nil {
			email.Cc = []string{am.Email}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return email, nil
	}
	return nil, fmt.Errorf("unknown form type %q", def.FormType)
}

// transitionCc builds the cc list shared by every post-submission event:
// the zone's area managers, the zone's security desk when enabled, and for
// area-manager rejections the EHS managers as well.
func (s *NotificationService) transitionCc(event Event, sub form.Submission) ([]string, error) {
	ams, err := s.repos.User.ListActiveInZone(user.RoleAreaManager, sub.Zone)
	if err != nil {
		return nil, err
	}
	cc := emails(ams)
	cc = append(cc, s.securityCc(sub)...)

	if event == EventAMRejected {
		ehs, err := s.repos.User.ListActiveByRole(user.RoleEHSManager)
		if err != nil {
			return nil, err
		}
		cc = append(cc, emails(ehs)...)
	}
	return dedupe(cc), nil
}

func (s *NotificationService) securityCc(sub form.Submission) []string {
	if !s.cfg.SecurityEmailEnabled {
		return nil
	}
	var cc []string
	secMail, err := s.repos.SecurityMail.GetForZoneFacility(sub.Zone, sub.ZoneFacility)
	if err != nil {
		log.WithError(err).WithField("zone", sub.Zone).Warn("security mail lookup failed")
	} else if secMail != "" {
		cc = append(cc, secMail)
	}
	if s.cfg.DefaultSecurityEmail != "" {
		cc = append(cc, s.cfg.DefaultSecurityEmail)
	}
	return cc
}

func (s *NotificationService) placeholders(sub form.Submission, def form.Definition, actor user.Context, remarks string) map[string]string {
	facility, err := s.repos.Option.ResolveCascade(
		option.TypeZoneFacility, sub.ZoneFacility, option.TypeZone, sub.Zone)
	if err != nil || facility == "" {
		facility = sub.ZoneFacility
	}
	if remarks == "" {
		remarks = "NA"
	}

	var contact string
	if actorRow, err := s.repos.User.GetByID(actor.ID); err == nil {
		contact = actorRow.Contact
	}

	nameKey := "WorkPermitName"
	if def.FormType == form.TypeIncident {
		nameKey = "IncidentName"
	}
	return map[string]string{
		nameKey:        def.Title,
		"RequestId":    def.DisplayID(sub.ID),
		"FacilityName": facility,
		"DateTime":     utils.DisplayTime(sub.SubmittedDate),
		"Requester":    actor.Name,
		"ActorEmail":   actor.Email,
		"ActorContact": contact,
		"Remarks":      remarks,
	}
}

func emails(users []user.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" {
			out = append(out, u.Email)
		}
	}
	return out
}

func dedupe(addrs []string) []string {
	seen := make(map[string]bool, len(addrs))
	out := addrs[:0]
	for _, a := range addrs {
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
