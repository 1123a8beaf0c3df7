package repository

import (
	"errors"

	"github.com/ehsworks/safety-go/internal/domain/form"
	"gorm.io/gorm"
)

type SecurityMailRepo interface {
	// GetForZoneFacility returns the configured security email for the
	// location, or the empty string when none is configured.
	GetForZoneFacility(zone, zoneFacility string) (string, error)
	WithTx(tx *gorm.DB) SecurityMailRepo
}

type DBSecurityMailRepo struct {
	db *gorm.DB
}

func NewSecurityMailRepo(db *gorm.DB) *DBSecurityMailRepo {
	return &DBSecurityMailRepo{db: db}
}

func (r *DBSecurityMailRepo) WithTx(tx *gorm.DB) SecurityMailRepo {
	return &DBSecurityMailRepo{db: tx}
}

func (r *DBSecurityMailRepo) GetForZoneFacility(zone, zoneFacility string) (string, error) {
	var cfg form.SecurityMailConfig
	err := r.db.
		Where("zone_id = ? AND zone_facility_id = ? AND is_active = ?", zone, zoneFacility, true).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return cfg.SecurityEmail, nil
}
