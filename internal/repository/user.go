package repository

import (
	"github.com/ehsworks/safety-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetByID(id uint) (user.User, error)
	GetByEmail(email string) (user.User, error)
	List(filter user.Filter) ([]user.User, error)
	Create(u *user.User) error
	Save(u *user.User) error
	FirstActiveInZone(role user.Role, zone string) (user.User, error)
	ListActiveInZone(role user.Role, zone string) ([]user.User, error)
	ListActiveByRole(role user.Role) ([]user.User, error)
	ListRoles() ([]user.RoleEntry, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) List(filter user.Filter) ([]user.User, error) {
	q := r.db.Order("id")
	if filter.RoleID != nil {
		q = q.Where("role_id = ?", *filter.RoleID)
	}
	if filter.Zone != nil {
		q = q.Where("zone = ?", *filter.Zone)
	}
	if filter.ActiveStatus != nil {
		q = q.Where("active_status = ?", *filter.ActiveStatus)
	}
	var users []user.User
	err := q.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) FirstActiveInZone(role user.Role, zone string) (user.User, error) {
	var u user.User
	err := r.db.
		Where("role_id = ? AND zone = ? AND active_status = ?", role, zone, user.StatusActive).
		Order("id").
		First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListActiveInZone(role user.Role, zone string) ([]user.User, error) {
	var users []user.User
	err := r.db.
		Where("role_id = ? AND zone = ? AND active_status = ?", role, zone, user.StatusActive).
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListActiveByRole(role user.Role) ([]user.User, error) {
	var users []user.User
	err := r.db.
		Where("role_id = ? AND active_status = ?", role, user.StatusActive).
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListRoles() ([]user.RoleEntry, error) {
	var roles []user.RoleEntry
	err := r.db.Where("is_active = ?", true).Find(&roles).Error
	return roles, err
}
