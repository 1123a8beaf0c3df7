package form

import (
	"fmt"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/user"
	"gorm.io/datatypes"
)

// Type is the closed set of supported form kinds. Routing and visibility
// rules dispatch exhaustively over it; an unknown value is an error, not a
// fallthrough.
type Type string

const (
	TypeWorkPermit Type = "work_permit"
	TypeIncident   Type = "incident"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeWorkPermit, TypeIncident:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown form type %q", s)
}

// Status codes are stored as option keys so they resolve through the option
// table like every other coded field.
type Status string

const (
	StatusPending        Status = "0"
	StatusApproved       Status = "1"
	StatusWorkInProgress Status = "2"
	StatusClosed         Status = "3"
	StatusRejected       Status = "4"
)

func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusRejected
}

func (s Status) Name() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusWorkInProgress:
		return "Work in progress"
	case StatusClosed:
		return "Closed"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// Definition is immutable reference data describing one form.
type Definition struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"column:desc;type:text" json:"desc"`
	FormType    Type   `gorm:"column:form_type;size:30;not null" json:"form_type"`
	FormTypeKey string `gorm:"column:form_type_key;size:50" json:"form_type_key"`
}

func (Definition) TableName() string { return "form_def" }

// DisplayID renders the user-facing request id ("WP-12", "INC-7").
func (d Definition) DisplayID(submissionID int64) string {
	switch d.FormType {
	case TypeWorkPermit:
		return fmt.Sprintf("WP-%d", submissionID)
	case TypeIncident:
		return fmt.Sprintf("INC-%d", submissionID)
	}
	return fmt.Sprintf("%d", submissionID)
}

// Section, Field and Validation describe the schema the opaque form_data
// payload conforms to. The engine never interprets them; they are served to
// the front-end so it can render and validate a form.
type Section struct {
	ID        uint    `gorm:"primaryKey;column:id" json:"id"`
	FormID    uint    `gorm:"column:form_id;index;not null" json:"form_id"`
	Title     string  `gorm:"size:200;not null" json:"title"`
	SortOrder int     `gorm:"column:sort_order;default:0" json:"sort_order"`
	Fields    []Field `gorm:"foreignKey:SectionID" json:"fields"`
}

func (Section) TableName() string { return "form_sections" }

type Field struct {
	ID          uint           `gorm:"primaryKey;column:id" json:"id"`
	SectionID   uint           `gorm:"column:section_id;index;not null" json:"section_id"`
	FieldKey    string         `gorm:"column:field_key;size:100;not null" json:"field_key"`
	Label       string         `gorm:"size:200;not null" json:"label"`
	FieldType   string         `gorm:"column:field_type;size:50;not null" json:"field_type"`
	Options     datatypes.JSON `gorm:"column:options;type:jsonb" json:"options,omitempty"`
	SortOrder   int            `gorm:"column:sort_order;default:0" json:"sort_order"`
	Validations []Validation   `gorm:"foreignKey:FieldID" json:"validations"`
}

func (Field) TableName() string { return "form_fields" }

type Validation struct {
	ID      uint   `gorm:"primaryKey;column:id" json:"id"`
	FieldID uint   `gorm:"column:field_id;index;not null" json:"field_id"`
	Rule    string `gorm:"size:50;not null" json:"rule"`
	Value   string `gorm:"size:100" json:"value"`
	Message string `gorm:"size:300" json:"message"`
}

func (Validation) TableName() string { return "form_validations" }

type Submission struct {
	ID                   int64          `gorm:"primaryKey;column:id" json:"id"`
	FormID               uint           `gorm:"column:form_id;not null" json:"form_id"`
	SubmittedBy          uint           `gorm:"column:submitted_by;not null" json:"submitted_by"`
	SubmittedDate        time.Time      `gorm:"column:submitted_date;not null" json:"submitted_date"`
	FormData             datatypes.JSON `gorm:"column:form_data;type:jsonb" json:"form_data"`
	Status               Status         `gorm:"column:status;size:5;not null" json:"status"`
	PendingWith          user.Role      `gorm:"column:pending_with" json:"pending_with"`
	Zone                 string         `gorm:"column:zone;size:50" json:"zone"`
	ZoneFacility         string         `gorm:"column:zone_facility;size:50" json:"zone_facility"`
	FacilityZoneLocation string         `gorm:"column:facility_zone_location;size:50" json:"facility_zone_location"`
	Project              string         `gorm:"column:project;size:100" json:"project"`
	ReminderSent         int            `gorm:"column:reminder_sent;default:0" json:"-"`
	UpdatedBy            *uint          `gorm:"column:updated_by" json:"updated_by"`
	UpdatedDate          *time.Time     `gorm:"column:updated_date" json:"updated_date"`
}

func (Submission) TableName() string { return "form_submissions" }

// WorkflowHistory is the append-only transition log. One row per committed
// transition; rows are never updated or deleted.
type WorkflowHistory struct {
	ID               int64     `gorm:"primaryKey;column:id" json:"id"`
	FormSubmissionID int64     `gorm:"column:form_submission_id;index;not null" json:"form_submission_id"`
	Status           Status    `gorm:"column:status;size:5;not null" json:"status"`
	ActionBy         uint      `gorm:"column:action_by;not null" json:"action_by"`
	ActionDate       time.Time `gorm:"column:action_date;not null" json:"action_date"`
	Remarks          string    `gorm:"column:remarks;type:text" json:"remarks"`
}

func (WorkflowHistory) TableName() string { return "form_workflow_history" }

// Document holds one attachment. Content carries a 1-byte format header
// (see pkg/docstore) and is immutable once written.
type Document struct {
	ID               int64  `gorm:"primaryKey;column:id" json:"id"`
	FormSubmissionID int64  `gorm:"column:form_submission_id;index;not null" json:"form_submission_id"`
	FileName         string `gorm:"column:file_name;size:300;not null" json:"file_name"`
	ContentType      string `gorm:"column:content_type;size:120" json:"content_type"`
	Content          []byte `gorm:"column:content" json:"-"`
}

func (Document) TableName() string { return "form_documents" }

type SecurityMailConfig struct {
	ID             uint   `gorm:"primaryKey;column:id" json:"id"`
	ZoneID         string `gorm:"column:zone_id;size:50;not null" json:"zone_id"`
	ZoneFacilityID string `gorm:"column:zone_facility_id;size:50" json:"zone_facility_id"`
	SecurityEmail  string `gorm:"column:security_email;size:200" json:"security_email"`
	IsActive       bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (SecurityMailConfig) TableName() string { return "security_mail_config" }
