package user

import "time"

type Role int

const (
	RoleAdmin                         Role = 1
	RoleProjectManagerFacilityManager Role = 2
	RoleAreaManager                   Role = 3
	RoleEHSManager                    Role = 4
)

func (r Role) Name() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleProjectManagerFacilityManager:
		return "Project Manager / Facility Manager"
	case RoleAreaManager:
		return "Area Manager"
	case RoleEHSManager:
		return "EHS Manager"
	}
	return "Unknown"
}

// IsApprovalTier reports whether the role sits above the requester tier.
func (r Role) IsApprovalTier() bool {
	return r == RoleAdmin || r == RoleEHSManager
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManagerFacilityManager, RoleAreaManager, RoleEHSManager:
		return true
	}
	return false
}

type Status int

const (
	StatusDeactivated Status = 0
	StatusActive      Status = 1
	StatusBlocked     Status = 2
)

func (s Status) Valid() bool {
	switch s {
	case StatusDeactivated, StatusActive, StatusBlocked:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey;column:id"`
	FirstName    string    `gorm:"size:100" json:"first_name"`
	LastName     string    `gorm:"size:100" json:"last_name"`
	Email        string    `gorm:"size:200;not null;unique" json:"email"`
	Contact      string    `gorm:"size:30" json:"contact"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	RoleID       Role      `gorm:"column:role_id;not null" json:"role_id"`
	Zone         string    `gorm:"size:50" json:"zone"`
	ActiveStatus Status    `gorm:"column:active_status;default:1" json:"active_status"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type RoleEntry struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (RoleEntry) TableName() string { return "roles" }

// Context is the authenticated caller's identity, resolved once by the JWT
// middleware and passed explicitly into every service call.
type Context struct {
	ID    uint
	Role  Role
	Zone  string
	Email string
	Name  string
}
