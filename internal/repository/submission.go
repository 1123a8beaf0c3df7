package repository

import (
	"time"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"gorm.io/gorm"
)

// InboxFilter is the already-authorized visibility window computed by the
// retrieval engine. Nil pointer fields mean "no constraint".
type InboxFilter struct {
	FormType       form.Type
	Since          time.Time
	Until          *time.Time
	SubmittedBy    *uint
	Zone           *string
	NotPendingWith *user.Role
}

// InboxRecord is one joined submission row; option labels and document
// counts are layered on by the service.
type InboxRecord struct {
	ID                   int64     `gorm:"column:id"`
	FormID               uint      `gorm:"column:form_id"`
	Title                string    `gorm:"column:title"`
	Desc                 string    `gorm:"column:desc"`
	FormType             form.Type `gorm:"column:form_type"`
	FormTypeKey          string    `gorm:"column:form_type_key"`
	ShortDesc            string    `gorm:"column:short_desc"`
	Status               form.Status
	PendingWith          user.Role `gorm:"column:pending_with"`
	Zone                 string
	ZoneFacility         string    `gorm:"column:zone_facility"`
	FacilityZoneLocation string    `gorm:"column:facility_zone_location"`
	SubmittedBy          uint      `gorm:"column:submitted_by"`
	SubmittedDate        time.Time `gorm:"column:submitted_date"`
}

// ReminderRecord is one permit whose approved work window is about to lapse.
type ReminderRecord struct {
	ID             int64     `gorm:"column:id"`
	Title          string    `gorm:"column:title"`
	Zone           string    `gorm:"column:zone"`
	ZoneFacility   string    `gorm:"column:zone_facility"`
	SubmittedDate  time.Time `gorm:"column:submitted_date"`
	RequesterName  string    `gorm:"column:requester_name"`
	RequesterEmail string    `gorm:"column:requester_email"`
}

type SubmissionRepo interface {
	Create(sub *form.Submission) error
	GetByID(id int64) (form.Submission, error)
	Update(sub *form.Submission) error
	AppendHistory(h *form.WorkflowHistory) error
	ListHistory(submissionID int64) ([]form.WorkflowHistory, error)
	ListInbox(filter InboxFilter) ([]InboxRecord, error)
	// LatestOwned returns the caller's most recent submission of the given
	// type (and type key, when non-empty), newest first.
	LatestOwned(userID uint, formType form.Type, formTypeKey string) (form.Submission, error)
	// DueReminders finds work permits in Approved/Work_in_progress whose
	// work-end timestamp falls inside [from, to) and which have not been
	// reminded yet.
	DueReminders(from, to time.Time) ([]ReminderRecord, error)
	MarkReminderSent(id int64) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}

func (r *DBSubmissionRepo) Create(sub *form.Submission) error {
	return r.db.Create(sub).Error
}

func (r *DBSubmissionRepo) GetByID(id int64) (form.Submission, error) {
	var sub form.Submission
	err := r.db.First(&sub, id).Error
	return sub, err
}

func (r *DBSubmissionRepo) Update(sub *form.Submission) error {
	return r.db.Save(sub).Error
}

func (r *DBSubmissionRepo) AppendHistory(h *form.WorkflowHistory) error {
	return r.db.Create(h).Error
}

func (r *DBSubmissionRepo) ListHistory(submissionID int64) ([]form.WorkflowHistory, error) {
	var rows []form.WorkflowHistory
	err := r.db.
		Where("form_submission_id = ?", submissionID).
		Order("action_date asc").
		Find(&rows).Error
	return rows, err
}

func (r *DBSubmissionRepo) ListInbox(filter InboxFilter) ([]InboxRecord, error) {
	query := r.db.Table("form_submissions f").
		Select(`f.id, f.form_id, f.status, f.pending_with, f.zone, f.zone_facility,
			f.facility_zone_location, f.submitted_date, f.submitted_by,
			fd.title, fd.desc, fd.form_type, fd.form_type_key,
			jsonb_extract_path_text(f.form_data, 'formDetails', 'work_description') AS short_desc`).
		Joins("INNER JOIN form_def fd ON f.form_id = fd.id").
		Where("fd.form_type = ?", filter.FormType).
		Where("f.submitted_date >= ?", filter.Since)

	if filter.Until != nil {
		query = query.Where("f.submitted_date <= ?", *filter.Until)
	}
	if filter.SubmittedBy != nil {
		query = query.Where("f.submitted_by = ?", *filter.SubmittedBy)
	}
	if filter.Zone != nil {
		query = query.Where("f.zone = ?", *filter.Zone)
	}
	if filter.NotPendingWith != nil {
		query = query.Where("f.pending_with <> ?", *filter.NotPendingWith)
	}

	var records []InboxRecord
	err := query.Order("f.submitted_date desc").Scan(&records).Error
	return records, err
}

func (r *DBSubmissionRepo) LatestOwned(userID uint, formType form.Type, formTypeKey string) (form.Submission, error) {
	query := r.db.Table("form_submissions").
		Select("form_submissions.*").
		Joins("INNER JOIN form_def fd ON form_submissions.form_id = fd.id").
		Where("form_submissions.submitted_by = ? AND fd.form_type = ?", userID, formType)
	if formTypeKey != "" {
		query = query.Where("fd.form_type_key = ?", formTypeKey)
	}

	var sub form.Submission
	err := query.Order("form_submissions.id desc").First(&sub).Error
	return sub, err
}

func (r *DBSubmissionRepo) DueReminders(from, to time.Time) ([]ReminderRecord, error) {
	var records []ReminderRecord
	err := r.db.Raw(`
		SELECT DISTINCT f.id, fd.title, f.zone, f.zone_facility, f.submitted_date,
			u.first_name || ' ' || u.last_name AS requester_name,
			u.email AS requester_email
		FROM form_submissions f
		INNER JOIN form_def fd ON f.form_id = fd.id
		INNER JOIN users u ON u.id = f.submitted_by
		WHERE fd.form_type = ?
		  AND f.status IN (?, ?)
		  AND f.reminder_sent = 0
		  AND (jsonb_extract_path_text(f.form_data, 'formDetails', 'datetime_of_work_to'))::timestamp
		      BETWEEN ? AND ?
		ORDER BY f.submitted_date`,
		form.TypeWorkPermit,
		form.StatusApproved, form.StatusWorkInProgress,
		from, to,
	).Scan(&records).Error
	return records, err
}

func (r *DBSubmissionRepo) MarkReminderSent(id int64) error {
	return r.db.Model(&form.Submission{}).
		Where("id = ?", id).
		UpdateColumn("reminder_sent", 1).Error
}
