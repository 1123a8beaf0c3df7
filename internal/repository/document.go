package repository

import (
	"github.com/ehsworks/safety-go/internal/domain/form"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(doc *form.Document) error
	GetByID(id int64) (form.Document, error)
	// ListMetaBySubmission returns documents without their content bytes.
	ListMetaBySubmission(submissionID int64) ([]form.Document, error)
	CountBySubmission(submissionID int64) (int64, error)
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{db: db}
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	return &DBDocumentRepo{db: tx}
}

func (r *DBDocumentRepo) Create(doc *form.Document) error {
	return r.db.Create(doc).Error
}

func (r *DBDocumentRepo) GetByID(id int64) (form.Document, error) {
	var doc form.Document
	err := r.db.First(&doc, id).Error
	return doc, err
}

func (r *DBDocumentRepo) ListMetaBySubmission(submissionID int64) ([]form.Document, error) {
	var docs []form.Document
	err := r.db.
		Select("id", "form_submission_id", "file_name", "content_type").
		Where("form_submission_id = ?", submissionID).
		Order("id").
		Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) CountBySubmission(submissionID int64) (int64, error) {
	var count int64
	err := r.db.Model(&form.Document{}).
		Where("form_submission_id = ?", submissionID).
		Count(&count).Error
	return count, err
}
