package form

import (
	"encoding/json"
	"time"
)

// FileInput is one uploaded attachment, already read off the wire.
type FileInput struct {
	FileName    string
	ContentType string
	Content     []byte
}

type SubmitInput struct {
	FormID               uint            `json:"form_id"`
	FormData             json.RawMessage `json:"form_data"`
	Zone                 string          `json:"zone"`
	ZoneFacility         string          `json:"zone_facility"`
	FacilityZoneLocation string          `json:"facility_zone_location"`
	Project              string          `json:"project"`
	Files                []FileInput     `json:"-"`
}

type UpdateStatusInput struct {
	Status  Status `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

type UpdateFormInput struct {
	FormData             json.RawMessage `json:"form_data"`
	Zone                 string          `json:"zone"`
	ZoneFacility         string          `json:"zone_facility"`
	FacilityZoneLocation string          `json:"facility_zone_location"`
	Project              string          `json:"project"`
	Files                []FileInput     `json:"-"`
}

// KeyVal pairs a coded value with its resolved display label.
type KeyVal struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type InboxRow struct {
	ID                   int64     `json:"id"`
	RequestID            string    `json:"request_id"`
	FormID               uint      `json:"form_id"`
	FormTitle            string    `json:"form_title"`
	FormDesc             string    `json:"form_desc"`
	FormType             Type      `json:"form_type"`
	FormTypeKey          string    `json:"form_type_key"`
	ShortDesc            string    `json:"short_desc"`
	Status               KeyVal    `json:"status"`
	PendingWith          KeyVal    `json:"pending_with"`
	Zone                 KeyVal    `json:"zone"`
	ZoneFacility         KeyVal    `json:"zone_facility"`
	FacilityZoneLocation KeyVal    `json:"facility_zone_location"`
	SubmittedBy          KeyVal    `json:"submitted_by"`
	SubmittedDate        time.Time `json:"submitted_date"`
	DocumentCount        int64     `json:"document_count"`
}

type StatusCount struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	FormType Type   `json:"form_type"`
	Count    int64  `json:"count"`
}

type Inbox struct {
	Rows         []InboxRow    `json:"rows"`
	StatusCounts []StatusCount `json:"status_counts"`
}

// Schema is one form definition with its full rendering schema.
type Schema struct {
	Definition
	Sections []Section `json:"sections"`
}

type HistoryRow struct {
	Status     KeyVal    `json:"status"`
	ActionBy   KeyVal    `json:"action_by"`
	ActionDate time.Time `json:"action_date"`
	Remarks    string    `json:"remarks"`
}

type DocumentMeta struct {
	ID          int64  `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type Detail struct {
	ID                   int64           `json:"id"`
	RequestID            string          `json:"request_id"`
	FormID               uint            `json:"form_id"`
	FormTitle            string          `json:"form_title"`
	FormDesc             string          `json:"form_desc"`
	FormType             Type            `json:"form_type"`
	FormTypeKey          string          `json:"form_type_key"`
	FormData             json.RawMessage `json:"form_data"`
	Status               KeyVal          `json:"status"`
	PendingWith          KeyVal          `json:"pending_with"`
	Zone                 KeyVal          `json:"zone"`
	ZoneFacility         KeyVal          `json:"zone_facility"`
	FacilityZoneLocation KeyVal          `json:"facility_zone_location"`
	Project              string          `json:"project"`
	SubmittedBy          KeyVal          `json:"submitted_by"`
	SubmittedDate        time.Time       `json:"submitted_date"`
	History              []HistoryRow    `json:"history"`
	Documents            []DocumentMeta  `json:"documents"`
}
