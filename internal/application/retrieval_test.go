package application

import (
	"testing"
	"time"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/domain/option"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupRetrievalServiceMocks(t *testing.T) (*RetrievalService, *mock.MockSubmissionRepo, *mock.MockFormRepo, *mock.MockDocumentRepo, *mock.MockOptionRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSub := mock.NewMockSubmissionRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	mockDoc := mock.NewMockDocumentRepo(ctrl)
	mockOpt := mock.NewMockOptionRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Submission: mockSub,
		Form:       mockForm,
		Document:   mockDoc,
		Option:     mockOpt,
		User:       mockUser,
	}
	return NewRetrievalService(repos), mockSub, mockForm, mockDoc, mockOpt, mockUser
}

func statusOptions() []option.Entry {
	return []option.Entry{
		{OptionType: option.TypeFormStatus, OptionKey: "0", OptionValue: "Pending"},
		{OptionType: option.TypeFormStatus, OptionKey: "1", OptionValue: "Approved"},
		{OptionType: option.TypeFormStatus, OptionKey: "2", OptionValue: "Work in progress"},
		{OptionType: option.TypeFormStatus, OptionKey: "3", OptionValue: "Closed"},
		{OptionType: option.TypeFormStatus, OptionKey: "4", OptionValue: "Rejected"},
	}
}

func sampleRecord() repository.InboxRecord {
	return repository.InboxRecord{
		ID:            42,
		FormID:        1,
		Title:         "Hot Work Permit",
		FormType:      form.TypeWorkPermit,
		FormTypeKey:   "hot_work",
		ShortDesc:     "welding",
		Status:        form.StatusPending,
		PendingWith:   user.RoleAreaManager,
		Zone:          "Z1",
		ZoneFacility:  "F1",
		SubmittedBy:   10,
		SubmittedDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func expectLabelLookups(mockOpt *mock.MockOptionRepo) {
	mockOpt.EXPECT().Resolve(option.TypeFormStatus, gomock.Any()).Return("Pending", nil).AnyTimes()
	mockOpt.EXPECT().Resolve(option.TypeZone, gomock.Any()).Return("North Campus", nil).AnyTimes()
	mockOpt.EXPECT().ResolveCascade(option.TypeZoneFacility, gomock.Any(), option.TypeZone, gomock.Any()).Return("Block A", nil).AnyTimes()
	mockOpt.EXPECT().Resolve(option.TypeFacilityZoneLocation, gomock.Any()).Return("", nil).AnyTimes()
}

// --------------------- GetInbox ---------------------
func TestGetInbox_RequesterSeesOwnRows(t *testing.T) {
	svc, mockSub, _, mockDoc, mockOpt, mockUser := setupRetrievalServiceMocks(t)

	var captured repository.InboxFilter
	mockSub.EXPECT().ListInbox(gomock.Any()).DoAndReturn(func(f repository.InboxFilter) ([]repository.InboxRecord, error) {
		captured = f
		return []repository.InboxRecord{sampleRecord()}, nil
	})
	mockDoc.EXPECT().CountBySubmission(int64(42)).Return(int64(2), nil)
	mockUser.EXPECT().GetByID(uint(10)).Return(user.User{ID: 10, FirstName: "Fran", LastName: "Miles"}, nil)
	expectLabelLookups(mockOpt)
	mockOpt.EXPECT().ListByType(option.TypeFormStatus).Return(statusOptions(), nil)

	inbox, err := svc.GetInbox(requester(), form.TypeWorkPermit, nil, nil)
	assert.NoError(t, err)
	if assert.NotNil(t, captured.SubmittedBy) {
		assert.Equal(t, uint(10), *captured.SubmittedBy)
	}
	assert.Nil(t, captured.Zone)
	assert.Nil(t, captured.NotPendingWith)

	if assert.Len(t, inbox.Rows, 1) {
		row := inbox.Rows[0]
		assert.Equal(t, "WP-42", row.RequestID)
		assert.Equal(t, "welding", row.ShortDesc)
		assert.Equal(t, int64(2), row.DocumentCount)
		assert.Equal(t, "Fran Miles", row.SubmittedBy.Value)
		assert.Equal(t, "North Campus", row.Zone.Value)
	}
}

func TestGetInbox_StatusCountsZeroFilled(t *testing.T) {
	svc, mockSub, _, mockDoc, mockOpt, mockUser := setupRetrievalServiceMocks(t)

	mockSub.EXPECT().ListInbox(gomock.Any()).Return([]repository.InboxRecord{sampleRecord()}, nil)
	mockDoc.EXPECT().CountBySubmission(gomock.Any()).Return(int64(0), nil).AnyTimes()
	mockUser.EXPECT().GetByID(gomock.Any()).Return(user.User{}, nil).AnyTimes()
	expectLabelLookups(mockOpt)
	mockOpt.EXPECT().ListByType(option.TypeFormStatus).Return(statusOptions(), nil)

	inbox, err := svc.GetInbox(requester(), form.TypeWorkPermit, nil, nil)
	assert.NoError(t, err)

	// every known status appears even when no rows carry it
	assert.Len(t, inbox.StatusCounts, 5)
	counts := make(map[string]int64)
	for _, c := range inbox.StatusCounts {
		counts[c.Key] = c.Count
	}
	assert.Equal(t, int64(1), counts["0"])
	assert.Equal(t, int64(0), counts["3"])
}

func TestGetInbox_AreaManagerScopedToZone(t *testing.T) {
	svc, mockSub, _, _, mockOpt, _ := setupRetrievalServiceMocks(t)

	var captured repository.InboxFilter
	mockSub.EXPECT().ListInbox(gomock.Any()).DoAndReturn(func(f repository.InboxFilter) ([]repository.InboxRecord, error) {
		captured = f
		return nil, nil
	})
	mockOpt.EXPECT().ListByType(option.TypeFormStatus).Return(statusOptions(), nil)

	actor := user.Context{ID: 20, Role: user.RoleAreaManager, Zone: "Z1"}
	inbox, err := svc.GetInbox(actor, form.TypeWorkPermit, nil, nil)
	assert.NoError(t, err)
	if assert.NotNil(t, captured.Zone) {
		assert.Equal(t, "Z1", *captured.Zone)
	}
	assert.Empty(t, inbox.Rows)
}

func TestGetInbox_AreaManagerIncidentsHidden(t *testing.T) {
	svc, _, mockForm, _, _, _ := setupRetrievalServiceMocks(t)

	// no ListInbox expectation: incidents never reach the query for this role
	mockForm.EXPECT().ListDefinitionsByType(form.TypeIncident).Return([]form.Definition{incidentDef()}, nil)

	actor := user.Context{ID: 20, Role: user.RoleAreaManager, Zone: "Z1"}
	inbox, err := svc.GetInbox(actor, form.TypeIncident, nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, inbox.Rows)
	if assert.Len(t, inbox.StatusCounts, 1) {
		assert.Equal(t, int64(0), inbox.StatusCounts[0].Count)
	}
}

func TestGetInbox_EhsExcludesFirstGatePermits(t *testing.T) {
	svc, mockSub, _, _, mockOpt, _ := setupRetrievalServiceMocks(t)

	var captured repository.InboxFilter
	mockSub.EXPECT().ListInbox(gomock.Any()).DoAndReturn(func(f repository.InboxFilter) ([]repository.InboxRecord, error) {
		captured = f
		return nil, nil
	})
	mockOpt.EXPECT().ListByType(option.TypeFormStatus).Return(statusOptions(), nil)

	actor := user.Context{ID: 30, Role: user.RoleEHSManager}
	_, err := svc.GetInbox(actor, form.TypeWorkPermit, nil, nil)
	assert.NoError(t, err)
	if assert.NotNil(t, captured.NotPendingWith) {
		assert.Equal(t, user.RoleAreaManager, *captured.NotPendingWith)
	}
}

func TestGetInbox_EhsSeesAllIncidents(t *testing.T) {
	svc, mockSub, mockForm, _, _, _ := setupRetrievalServiceMocks(t)

	var captured repository.InboxFilter
	mockSub.EXPECT().ListInbox(gomock.Any()).DoAndReturn(func(f repository.InboxFilter) ([]repository.InboxRecord, error) {
		captured = f
		return nil, nil
	})
	mockForm.EXPECT().ListDefinitionsByType(form.TypeIncident).Return([]form.Definition{incidentDef()}, nil)

	actor := user.Context{ID: 30, Role: user.RoleEHSManager}
	_, err := svc.GetInbox(actor, form.TypeIncident, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, captured.NotPendingWith)
	assert.Nil(t, captured.SubmittedBy)
	assert.Nil(t, captured.Zone)
}

// --------------------- RequestDetail ---------------------
func TestRequestDetail_AssemblesHistoryAndDocuments(t *testing.T) {
	svc, mockSub, mockForm, mockDoc, mockOpt, mockUser := setupRetrievalServiceMocks(t)

	sub := pendingSubmission()
	sub.ZoneFacility = "F1"
	sub.FormData = datatypes.JSON(`{"formDetails":{"work_description":"welding"}}`)
	mockSub.EXPECT().GetByID(int64(42)).Return(sub, nil)
	mockForm.EXPECT().GetDefinition(uint(1)).Return(workPermitDef(), nil)
	expectLabelLookups(mockOpt)
	mockUser.EXPECT().GetByID(uint(10)).Return(user.User{ID: 10, FirstName: "Fran", LastName: "Miles"}, nil)

	mockSub.EXPECT().ListHistory(int64(42)).Return([]form.WorkflowHistory{
		{Status: form.StatusPending, ActionBy: 10, ActionDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}, nil)
	mockDoc.EXPECT().ListMetaBySubmission(int64(42)).Return([]form.Document{
		{ID: 5, FileName: "permit.pdf", ContentType: "application/pdf"},
	}, nil)

	detail, err := svc.RequestDetail(42)
	assert.NoError(t, err)
	assert.Equal(t, "WP-42", detail.RequestID)
	if assert.Len(t, detail.History, 1) {
		assert.Equal(t, "Fran Miles", detail.History[0].ActionBy.Value)
	}
	if assert.Len(t, detail.Documents, 1) {
		assert.Equal(t, "permit.pdf", detail.Documents[0].FileName)
	}
}

func TestRequestDetail_NotFound(t *testing.T) {
	svc, mockSub, _, _, _, _ := setupRetrievalServiceMocks(t)

	mockSub.EXPECT().GetByID(int64(7)).Return(form.Submission{}, gorm.ErrRecordNotFound)

	_, err := svc.RequestDetail(7)
	assert.Equal(t, ErrSubmissionNotFound, err)
}

// --------------------- FormSchema ---------------------
func TestFormSchema_ReturnsOrderedSections(t *testing.T) {
	svc, _, mockForm, _, _, _ := setupRetrievalServiceMocks(t)

	mockForm.EXPECT().GetDefinitionByTypeKey(form.TypeWorkPermit, "hot_work").
		Return(workPermitDef(), nil)
	mockForm.EXPECT().GetSchema(uint(1)).Return([]form.Section{
		{ID: 1, FormID: 1, Title: "Work details", SortOrder: 1, Fields: []form.Field{
			{ID: 1, SectionID: 1, FieldKey: "work_description", Label: "Work description", FieldType: "textarea",
				Validations: []form.Validation{{Rule: "required", Message: "describe the work"}}},
		}},
		{ID: 2, FormID: 1, Title: "Schedule", SortOrder: 2},
	}, nil)

	schema, err := svc.FormSchema(form.TypeWorkPermit, "hot_work")
	assert.NoError(t, err)
	assert.Equal(t, "Hot Work Permit", schema.Title)
	if assert.Len(t, schema.Sections, 2) {
		assert.Equal(t, "Work details", schema.Sections[0].Title)
		if assert.Len(t, schema.Sections[0].Fields, 1) {
			assert.Equal(t, "required", schema.Sections[0].Fields[0].Validations[0].Rule)
		}
	}
}

func TestFormSchema_UnknownForm(t *testing.T) {
	svc, _, mockForm, _, _, _ := setupRetrievalServiceMocks(t)

	mockForm.EXPECT().GetDefinitionByTypeKey(form.TypeWorkPermit, "cold_work").
		Return(form.Definition{}, gorm.ErrRecordNotFound)

	_, err := svc.FormSchema(form.TypeWorkPermit, "cold_work")
	assert.Equal(t, ErrFormNotFound, err)
}

// --------------------- SubmissionAllowed ---------------------
func TestSubmissionAllowed_NoPriorSubmission(t *testing.T) {
	svc, mockSub, _, _, _, _ := setupRetrievalServiceMocks(t)

	mockSub.EXPECT().LatestOwned(uint(10), form.TypeWorkPermit, "hot_work").
		Return(form.Submission{}, gorm.ErrRecordNotFound)

	allowed, err := svc.SubmissionAllowed(requester(), form.TypeWorkPermit, "hot_work")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestSubmissionAllowed_TerminalPrior(t *testing.T) {
	svc, mockSub, _, _, _, _ := setupRetrievalServiceMocks(t)

	sub := pendingSubmission()
	sub.Status = form.StatusClosed
	mockSub.EXPECT().LatestOwned(uint(10), form.TypeWorkPermit, "hot_work").Return(sub, nil)

	allowed, err := svc.SubmissionAllowed(requester(), form.TypeWorkPermit, "hot_work")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestSubmissionAllowed_OpenWindowDoesNotBlock(t *testing.T) {
	svc, mockSub, _, _, _, _ := setupRetrievalServiceMocks(t)

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02T15:04:05")
	sub := pendingSubmission()
	sub.Status = form.StatusApproved
	sub.FormData = datatypes.JSON(`{"formDetails":{"datetime_of_work_to":"` + future + `"}}`)
	mockSub.EXPECT().LatestOwned(uint(10), form.TypeWorkPermit, "hot_work").Return(sub, nil)

	allowed, err := svc.SubmissionAllowed(requester(), form.TypeWorkPermit, "hot_work")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestSubmissionAllowed_LapsedUnclosedBlocks(t *testing.T) {
	svc, mockSub, _, _, _, _ := setupRetrievalServiceMocks(t)

	// the earlier permit overran its window without being closed; a new one
	// must wait until it is
	sub := pendingSubmission()
	sub.Status = form.StatusApproved
	sub.FormData = datatypes.JSON(`{"formDetails":{"datetime_of_work_to":"2020-01-01T08:00:00"}}`)
	mockSub.EXPECT().LatestOwned(uint(10), form.TypeWorkPermit, "hot_work").Return(sub, nil)

	allowed, err := svc.SubmissionAllowed(requester(), form.TypeWorkPermit, "hot_work")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestSubmissionAllowed_IncidentAlwaysAllowed(t *testing.T) {
	svc, _, _, _, _, _ := setupRetrievalServiceMocks(t)

	allowed, err := svc.SubmissionAllowed(requester(), form.TypeIncident, "near_miss")
	assert.NoError(t, err)
	assert.True(t, allowed)
}
