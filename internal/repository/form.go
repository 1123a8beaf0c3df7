package repository

import (
	"github.com/ehsworks/safety-go/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	GetDefinition(id uint) (form.Definition, error)
	GetDefinitionByTypeKey(formType form.Type, key string) (form.Definition, error)
	ListDefinitionsByType(formType form.Type) ([]form.Definition, error)
	// GetSchema returns the ordered sections with their fields and
	// validation rules for one form definition.
	GetSchema(formID uint) ([]form.Section, error)
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) GetDefinition(id uint) (form.Definition, error) {
	var def form.Definition
	err := r.db.First(&def, id).Error
	return def, err
}

func (r *DBFormRepo) GetDefinitionByTypeKey(formType form.Type, key string) (form.Definition, error) {
	var def form.Definition
	err := r.db.
		Where("form_type = ? AND form_type_key = ?", formType, key).
		First(&def).Error
	return def, err
}

func (r *DBFormRepo) ListDefinitionsByType(formType form.Type) ([]form.Definition, error) {
	var defs []form.Definition
	err := r.db.Where("form_type = ?", formType).Order("id").Find(&defs).Error
	return defs, err
}

func (r *DBFormRepo) GetSchema(formID uint) ([]form.Section, error) {
	var sections []form.Section
	err := r.db.
		Where("form_id = ?", formID).
		Order("sort_order").
		Preload("Fields", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Fields.Validations").
		Find(&sections).Error
	return sections, err
}
