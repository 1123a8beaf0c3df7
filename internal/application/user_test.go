package application

import (
	"testing"
	"time"

	"github.com/ehsworks/safety-go/internal/api/middleware"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/internal/repository"
	"github.com/ehsworks/safety-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

func stubToken(t *testing.T) {
	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGen })
}

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)
	stubToken(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{
		ID:           10,
		FirstName:    "Fran",
		Email:        "fm@test.com",
		Password:     string(hashed),
		RoleID:       user.RoleProjectManagerFacilityManager,
		Zone:         "Z1",
		ActiveStatus: user.StatusActive,
	}
	mockUser.EXPECT().GetByEmail("fm@test.com").Return(usr, nil)

	u, token, err := svc.Login(user.LoginInput{Email: "fm@test.com", Password: "123456"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, uint(10), u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 10, Email: "fm@test.com", Password: string(hashed), ActiveStatus: user.StatusActive}
	mockUser.EXPECT().GetByEmail("fm@test.com").Return(usr, nil)

	_, _, err := svc.Login(user.LoginInput{Email: "fm@test.com", Password: "nope"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("ghost@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(user.LoginInput{Email: "ghost@test.com", Password: "123456"})
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 10, Email: "fm@test.com", Password: string(hashed), ActiveStatus: user.StatusBlocked}
	mockUser.EXPECT().GetByEmail("fm@test.com").Return(usr, nil)

	_, _, err := svc.Login(user.LoginInput{Email: "fm@test.com", Password: "123456"})
	assert.Equal(t, ErrUserInactive, err)
}

func TestCreateUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("am@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 21
		return nil
	})

	usr, err := svc.CreateUser(user.CreateInput{
		FirstName: "Asha",
		LastName:  "Mehta",
		Email:     "am@test.com",
		Password:  "longenough",
		RoleID:    user.RoleAreaManager,
		Zone:      "Z1",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(21), usr.ID)
	assert.Equal(t, user.StatusActive, usr.ActiveStatus)
	// the stored password is a hash, never the plaintext
	assert.NotEqual(t, "longenough", usr.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte("longenough")))
}

func TestCreateUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByEmail("fm@test.com").Return(user.User{ID: 10}, nil)

	_, err := svc.CreateUser(user.CreateInput{
		FirstName: "Fran",
		Email:     "fm@test.com",
		Password:  "longenough",
		RoleID:    user.RoleProjectManagerFacilityManager,
	})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestCreateUser_UnknownRole(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.CreateUser(user.CreateInput{
		FirstName: "Fran",
		Email:     "fm@test.com",
		Password:  "longenough",
		RoleID:    user.Role(9),
	})
	assert.Equal(t, ErrUnknownRole, err)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	stored := user.User{
		ID:        21,
		FirstName: "Asha",
		LastName:  "Mehta",
		Email:     "am@test.com",
		RoleID:    user.RoleAreaManager,
		Zone:      "Z1",
	}
	mockUser.EXPECT().GetByID(uint(21)).Return(stored, nil)

	var saved user.User
	mockUser.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *user.User) error {
		saved = *u
		return nil
	})

	zone := "Z2"
	role := user.RoleEHSManager
	usr, err := svc.UpdateUser(21, user.UpdateInput{Zone: &zone, RoleID: &role})
	assert.NoError(t, err)
	assert.Equal(t, "Z2", usr.Zone)
	assert.Equal(t, user.RoleEHSManager, usr.RoleID)
	// untouched fields keep their stored values
	assert.Equal(t, "Asha", saved.FirstName)
	assert.Equal(t, "am@test.com", saved.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

	name := "Ghost"
	_, err := svc.UpdateUser(99, user.UpdateInput{FirstName: &name})
	assert.Equal(t, ErrUserNotFound, err)
}

func TestSetUserStatus_Deactivates(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(21)).Return(user.User{ID: 21, ActiveStatus: user.StatusActive}, nil)
	mockUser.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.StatusDeactivated, u.ActiveStatus)
		return nil
	})

	usr, err := svc.SetUserStatus(21, user.StatusDeactivated)
	assert.NoError(t, err)
	assert.Equal(t, user.StatusDeactivated, usr.ActiveStatus)
}

func TestSetUserStatus_UnknownStatus(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	_, err := svc.SetUserStatus(21, user.Status(7))
	assert.Equal(t, ErrUnknownStatus, err)
}

func TestListUsers_PassesFilter(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	role := user.RoleAreaManager
	filter := user.Filter{RoleID: &role}
	mockUser.EXPECT().List(filter).Return([]user.User{{ID: 20, RoleID: role}}, nil)

	users, err := svc.ListUsers(filter)
	assert.NoError(t, err)
	if assert.Len(t, users, 1) {
		assert.Equal(t, user.RoleAreaManager, users[0].RoleID)
	}
}
