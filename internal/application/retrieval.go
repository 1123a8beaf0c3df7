package application

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/utils"
	"gorm.io/gorm"
)

// defaultInboxWindow bounds retrieval when the caller gives no range.
const defaultInboxWindow = 365 * 24 * time.Hour

// RetrievalService reconstructs per-user, per-role inbox views and
// single-submission details from the shared submissions table.
type RetrievalService struct {
	repos *repository.Repos
}

func NewRetrievalService(repos *repository.Repos) *RetrievalService {
	return &RetrievalService{repos: repos}
}

// GetInbox returns the submissions visible to the actor plus zero-filled
// status counts over that same filtered set.
func (s *RetrievalService) GetInbox(actor user.Context, formType form.Type, from, to *time.Time) (*form.Inbox, error) {
	filter := repository.InboxFilter{
		FormType: formType,
		Since:    time.Now().UTC().Add(-defaultInboxWindow),
		Until:    to,
	}
	if from != nil {
		filter.Since = *from
	}

	visible := true
	switch actor.Role {
	case user.RoleProjectManagerFacilityManager:
		// requesters only ever see their own submissions
		filter.SubmittedBy = &actor.ID
	case user.RoleAreaManager:
		if formType != form.TypeWorkPermit {
			visible = false
			break
		}
		zone := actor.Zone
		filter.Zone = &zone
	case user.RoleAdmin, user.RoleEHSManager:
		if formType == form.TypeWorkPermit {
			// items still held at the first approval gate are invisible
			// to this tier
			am := user.RoleAreaManager
			filter.NotPendingWith = &am
		}
	default:
		visible = false
	}

	var records []repository.InboxRecord
	if visible {
		var err error
		records, err = s.repos.Submission.ListInbox(filter)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.enrichRows(records)
	if err != nil {
		return nil, err
	}
	counts, err := s.statusCounts(formType, records)
	if err != nil {
		return nil, err
	}
	return &form.Inbox{Rows: rows, StatusCounts: counts}, nil
}

func (s *RetrievalService) enrichRows(records []repository.InboxRecord) ([]form.InboxRow, error) {
	rows := make([]form.InboxRow, 0, len(records))
	userNames := make(map[uint]string)

	for _, rec := range records {
		count, err := s.repos.Document.CountBySubmission(rec.ID)
		if err != nil {
			return nil, err
		}

		name, ok := userNames[rec.SubmittedBy]
		if !ok {
			if u, err := s.repos.User.GetByID(rec.SubmittedBy); err == nil {
				name = u.FullName()
			}
			userNames[rec.SubmittedBy] = name
		}

		status, zone, zoneFacility, location, err := s.locationLabels(
			string(rec.Status), rec.Zone, rec.ZoneFacility, rec.FacilityZoneLocation)
		if err != nil {
			return nil, err
		}

		def := form.Definition{FormType: rec.FormType}
		rows = append(rows, form.InboxRow{
			ID:                   rec.ID,
			RequestID:            def.DisplayID(rec.ID),
			FormID:               rec.FormID,
			FormTitle:            rec.Title,
			FormDesc:             rec.Desc,
			FormType:             rec.FormType,
			FormTypeKey:          rec.FormTypeKey,
			ShortDesc:            rec.ShortDesc,
			Status:               status,
			PendingWith:          form.KeyVal{Key: itoa(int(rec.PendingWith)), Value: rec.PendingWith.Name()},
			Zone:                 zone,
			ZoneFacility:         zoneFacility,
			FacilityZoneLocation: location,
			SubmittedBy:          form.KeyVal{Key: utoa(rec.SubmittedBy), Value: name},
			SubmittedDate:        rec.SubmittedDate,
			DocumentCount:        count,
		})
	}
	return rows, nil
}

func (s *RetrievalService) locationLabels(status, zone, zoneFacility, location string) (form.KeyVal, form.KeyVal, form.KeyVal, form.KeyVal, error) {
	statusLabel, err := s.repos.Option.Resolve(option.TypeFormStatus, status)
	if err != nil {
		return form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, err
	}
	if statusLabel == "" {
		statusLabel = form.Status(status).Name()
	}
	zoneLabel, err := s.repos.Option.Resolve(option.TypeZone, zone)
	if err != nil {
		return form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, err
	}
	// a facility label is only valid paired with its owning zone
	facilityLabel, err := s.repos.Option.ResolveCascade(option.TypeZoneFacility, zoneFacility, option.TypeZone, zone)
	if err != nil {
		return form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, err
	}
	locationLabel, err := s.repos.Option.Resolve(option.TypeFacilityZoneLocation, location)
	if err != nil {
		return form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, form.KeyVal{}, err
	}

	return form.KeyVal{Key: status, Value: statusLabel},
		form.KeyVal{Key: zone, Value: zoneLabel},
		form.KeyVal{Key: zoneFacility, Value: facilityLabel},
		form.KeyVal{Key: location, Value: locationLabel},
		nil
}

// statusCounts produces a stable, zero-filled dashboard shape: every known
// status (work permits) or incident sub-type, regardless of data sparsity.
func (s *RetrievalService) statusCounts(formType form.Type, records []repository.InboxRecord) ([]form.StatusCount, error) {
	switch formType {
	case form.TypeWorkPermit:
		entries, err := s.repos.Option.ListByType(option.TypeFormStatus)
		if err != nil {
			return nil, err
		}
		counts := make([]form.StatusCount, 0, len(entries))
		for _, e := range entries {
			var n int64
			for _, rec := range records {
				if string(rec.Status) == e.OptionKey {
					n++
				}
			}
			counts = append(counts, form.StatusCount{
				Key:      e.OptionKey,
				Label:    e.OptionValue,
				FormType: formType,
				Count:    n,
			})
		}
		return counts, nil

	case form.TypeIncident:
		defs, err := s.repos.Form.ListDefinitionsByType(form.TypeIncident)
		if err != nil {
			return nil, err
		}
		counts := make([]form.StatusCount, 0, len(defs))
		for _, def := range defs {
			var n int64
			for _, rec := range records {
				if rec.FormTypeKey == def.FormTypeKey {
					n++
				}
			}
			counts = append(counts, form.StatusCount{
				Key:      def.FormTypeKey,
				Label:    def.Title,
				FormType: formType,
				Count:    n,
			})
		}
		return counts, nil
	}
	return nil, ErrNotApplicable
}

// RequestDetail returns the full record, its ordered workflow history and
// document metadata without content.
func (s *RetrievalService) RequestDetail(id int64) (*form.Detail, error) {
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

	status, zone, zoneFacility, location, err := s.locationLabels(
		string(sub.Status), sub.Zone, sub.ZoneFacility, sub.FacilityZoneLocation)
	if err != nil {
		return nil, err
	}

	var submitterName string
	if u, err := s.repos.User.GetByID(sub.SubmittedBy); err == nil {
		submitterName = u.FullName()
	}

	historyRows, err := s.repos.Submission.ListHistory(id)
	if err != nil {
		return nil, err
	}
	history := make([]form.HistoryRow, 0, len(historyRows))
	// the submitter is usually the first history actor; reuse the lookup
	actorNames := map[uint]string{sub.SubmittedBy: submitterName}
	for _, h := range historyRows {
		label, err := s.repos.Option.Resolve(option.TypeFormStatus, string(h.Status))
		if err != nil {
			return nil, err
		}
		if label == "" {
			label = h.Status.Name()
		}
		name, ok := actorNames[h.ActionBy]
		if !ok {
			if u, err := s.repos.User.GetByID(h.ActionBy); err == nil {
				name = u.FullName()
			}
			actorNames[h.ActionBy] = name
		}
		history = append(history, form.HistoryRow{
			Status:     form.KeyVal{Key: string(h.Status), Value: label},
			ActionBy:   form.KeyVal{Key: utoa(h.ActionBy), Value: name},
			ActionDate: h.ActionDate,
			Remarks:    h.Remarks,
		})
	}

	docs, err := s.repos.Document.ListMetaBySubmission(id)
	if err != nil {
		return nil, err
	}
	meta := make([]form.DocumentMeta, 0, len(docs))
	for _, d := range docs {
		meta = append(meta, form.DocumentMeta{
			ID:          d.ID,
			FileName:    d.FileName,
			ContentType: d.ContentType,
		})
	}

	return &form.Detail{
		ID:                   sub.ID,
		RequestID:            def.DisplayID(sub.ID),
		FormID:               sub.FormID,
		FormTitle:            def.Title,
		FormDesc:             def.Description,
		FormType:             def.FormType,
		FormTypeKey:          def.FormTypeKey,
		FormData:             json.RawMessage(sub.FormData),
		Status:               status,
		PendingWith:          form.KeyVal{Key: itoa(int(sub.PendingWith)), Value: sub.PendingWith.Name()},
		Zone:                 zone,
		ZoneFacility:         zoneFacility,
		FacilityZoneLocation: location,
		Project:              sub.Project,
		SubmittedBy:          form.KeyVal{Key: utoa(sub.SubmittedBy), Value: submitterName},
		SubmittedDate:        sub.SubmittedDate,
		History:              history,
		Documents:            meta,
	}, nil
}

// FormSchema returns the form definition addressed by type and type key,
// together with the section/field/validation schema the front-end renders
// form_data from.
func (s *RetrievalService) FormSchema(formType form.Type, formTypeKey string) (*form.Schema, error) {
	def, err := s.repos.Form.GetDefinitionByTypeKey(formType, formTypeKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	sections, err := s.repos.Form.GetSchema(def.ID)
	if err != nil {
		return nil, err
	}
	return &form.Schema{Definition: def, Sections: sections}, nil
}

// Definitions lists the available form definitions of one type, for the
// front-end's form pickers.
func (s *RetrievalService) Definitions(formType form.Type) ([]form.Definition, error) {
	return s.repos.Form.ListDefinitionsByType(formType)
}

// SubmissionAllowed guards against re-opening a permit whose work window has
// already lapsed while an earlier submission is still in flight. Advisory
// only: it checks the latest matching submission, not all history.
func (s *RetrievalService) SubmissionAllowed(actor user.Context, formType form.Type, formTypeKey string) (bool, error) {
	if formType != form.TypeWorkPermit {
		return true, nil
	}

	sub, err := s.repos.Submission.LatestOwned(actor.ID, formType, formTypeKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if sub.Status.Terminal() {
		return true, nil
	}

	workEnd, ok := utils.ExtractWorkEnd(sub.FormData, utils.IST)
	if !ok {
		return true, nil
	}
	// a permit left open past its work window must be closed before a new
	// one can be raised; a still-open window does not block
	return !workEnd.Before(time.Now().In(utils.IST)), nil
}
