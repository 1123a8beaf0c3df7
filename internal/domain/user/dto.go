package user

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Filter narrows an administrative user listing. Nil fields are unset.
type Filter struct {
	RoleID       *Role
	Zone         *string
	ActiveStatus *Status
}

type CreateInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Contact   string `json:"contact"`
	Password  string `json:"password" binding:"required,min=8"`
	RoleID    Role   `json:"role_id" binding:"required"`
	Zone      string `json:"zone"`
}

// UpdateInput carries partial edits; nil fields keep the stored value.
type UpdateInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Contact   *string `json:"contact"`
	RoleID    *Role   `json:"role_id"`
	Zone      *string `json:"zone"`
}

type StatusInput struct {
	ActiveStatus *Status `json:"active_status" binding:"required"`
}
