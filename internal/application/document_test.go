package application

import (
	"testing"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/internal/repository/mock"
	"github.com/ehsworks/safety-go/pkg/docstore"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupDocumentServiceMocks(t *testing.T) (*DocumentService, *mock.MockDocumentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDoc := mock.NewMockDocumentRepo(ctrl)
	repos := &repository.Repos{Document: mockDoc}
	return NewDocumentService(repos), mockDoc
}

func TestDocumentGet_DecodesStoredContent(t *testing.T) {
	svc, mockDoc := setupDocumentServiceMocks(t)

	original := []byte("permit scan bytes")
	mockDoc.EXPECT().GetByID(int64(5)).Return(form.Document{
		ID:          5,
		FileName:    "permit.pdf",
		ContentType: "application/pdf",
		Content:     docstore.Encode(original),
	}, nil)

	doc, content, err := svc.Get(5)
	assert.NoError(t, err)
	assert.Equal(t, "permit.pdf", doc.FileName)
	assert.Equal(t, original, content)
}

func TestDocumentGet_NotFound(t *testing.T) {
	svc, mockDoc := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetByID(int64(9)).Return(form.Document{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Get(9)
	assert.Equal(t, ErrDocumentNotFound, err)
}
