package application

import (
	"errors"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/pkg/docstore"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentService serves stored attachments, transparently decoding the
// compressed at-rest representation.
type DocumentService struct {
	repos *repository.Repos
}

func NewDocumentService(repos *repository.Repos) *DocumentService {
	return &DocumentService{repos: repos}
}

// Get returns the document metadata and its original content bytes.
func (s *DocumentService) Get(id int64) (form.Document, []byte, error) {
	doc, err := s.repos.Document.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return form.Document{}, nil, ErrDocumentNotFound
	}
	if err != nil {
		return form.Document{}, nil, err
	}
	content, err := docstore.Decode(doc.Content)
	if err != nil {
		return form.Document{}, nil, err
	}
	return doc, content, nil
}
