package repository

import (
	"errors"

	"github.com/ehsworks/safety-go/internal/domain/option"
	"gorm.io/gorm"
)

type OptionRepo interface {
	// Resolve maps a coded value to its display label; missing keys resolve
	// to the empty string, not an error.
	Resolve(optionType, key string) (string, error)
	// ResolveCascade additionally requires the entry to be valid under the
	// given parent key (e.g. a facility under its owning zone).
	ResolveCascade(optionType, key, cascadeType, cascadeKey string) (string, error)
	List(optionType, cascadeType, cascadeKey string) ([]option.Entry, error)
	ListByType(optionType string) ([]option.Entry, error)
	ListAll() ([]option.Entry, error)
	WithTx(tx *gorm.DB) OptionRepo
}

type DBOptionRepo struct {
	db *gorm.DB
}

func NewOptionRepo(db *gorm.DB) *DBOptionRepo {
	return &DBOptionRepo{db: db}
}

func (r *DBOptionRepo) WithTx(tx *gorm.DB) OptionRepo {
	return &DBOptionRepo{db: tx}
}

func (r *DBOptionRepo) Resolve(optionType, key string) (string, error) {
	var entry option.Entry
	err := r.db.
		Where("option_type = ? AND option_key = ? AND is_active = ?", optionType, key, true).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.OptionValue, nil
}

func (r *DBOptionRepo) ResolveCascade(optionType, key, cascadeType, cascadeKey string) (string, error) {
	var entry option.Entry
	err := r.db.
		Where("option_type = ? AND option_key = ? AND is_active = ?", optionType, key, true).
		Where("cascade_type = ? AND cascade_key = ?", cascadeType, cascadeKey).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.OptionValue, nil
}

func (r *DBOptionRepo) List(optionType, cascadeType, cascadeKey string) ([]option.Entry, error) {
	query := r.db.Where("option_type = ? AND is_active = ?", optionType, true)
	if cascadeType != "" && cascadeKey != "" {
		query = query.Where("cascade_type = ? AND cascade_key = ?", cascadeType, cascadeKey)
	}
	var entries []option.Entry
	err := query.Find(&entries).Error
	return entries, err
}

func (r *DBOptionRepo) ListByType(optionType string) ([]option.Entry, error) {
	return r.List(optionType, "", "")
}

func (r *DBOptionRepo) ListAll() ([]option.Entry, error) {
	var entries []option.Entry
	err := r.db.Where("is_active = ?", true).Find(&entries).Error
	return entries, err
}
