package user

import (
	"Bowl-Builder-Backend/domain"
	"Bowl-Builder-Backend/entities"
	"context"
	"errors"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateToken(userID string) string {
	return "token-" + userID
}

func (f *fakeJWTService) ValidateToken(_ string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(_ string) (string, error) {
	return "", domain.ErrTokenInvalid
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	if HashPassword("secret!") != HashPassword("secret!") {
		t.Error("HashPassword() is not deterministic")
	}
	if !CheckPassword("secret!", HashPassword("secret!")) {
		t.Error("CheckPassword() rejects the matching password")
	}
	if CheckPassword("wrong!", HashPassword("secret!")) {
		t.Error("CheckPassword() accepts a mismatched password")
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     domain.RegisterRequest
		wantErr error
	}{
		{
			name:    "username with spaces",
			req:     domain.RegisterRequest{Username: "bowl fan", Password: "secret!", Name: "Bowl Fan"},
			wantErr: domain.ErrInvalidUsername,
		},
		{
			name:    "username with symbols",
			req:     domain.RegisterRequest{Username: "bowl@fan", Password: "secret!", Name: "Bowl Fan"},
			wantErr: domain.ErrInvalidUsername,
		},
		{
			name:    "blank display name",
			req:     domain.RegisterRequest{Username: "bowlfan", Password: "secret!", Name: "   "},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "short password",
			req:     domain.RegisterRequest{Username: "bowlfan", Password: "ab!", Name: "Bowl Fan"},
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name:    "password without special character",
			req:     domain.RegisterRequest{Username: "bowlfan", Password: "abcdef", Name: "Bowl Fan"},
			wantErr: domain.ErrPasswordNoSpecial,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := NewUserService(newFakeUserRepository(), &fakeJWTService{})
			_, err := service.Register(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})
	req := domain.RegisterRequest{Username: "bowlfan", Password: "secret!", Name: "Bowl Fan"}

	if _, err := service.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := service.Register(context.Background(), req); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("second Register() error = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "bowlfan",
		Password: "secret!",
		Name:     "  Bowl Fan  ",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if registered.Token == "" {
		t.Error("Register() returned an empty token")
	}
	if registered.User.Name != "Bowl Fan" {
		t.Errorf("registered name = %q, want trimmed %q", registered.User.Name, "Bowl Fan")
	}
	if repo.users["bowlfan"].PasswordHash == "secret!" {
		t.Error("password stored in plain text")
	}

	loggedIn, err := service.Login(context.Background(), domain.LoginRequest{Username: "bowlfan", Password: "secret!"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Errorf("login user = %s, want %s", loggedIn.User.ID, registered.User.ID)
	}

	_, err = service.Login(context.Background(), domain.LoginRequest{Username: "bowlfan", Password: "wrong!"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password error = %v, want ErrInvalidCredentials", err)
	}
	_, err = service.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "secret!"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("Login() with unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestMe(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "bowlfan",
		Password: "secret!",
		Name:     "Bowl Fan",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	me, err := service.Me(context.Background(), registered.User.ID)
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if me.Username != "bowlfan" {
		t.Errorf("Me() username = %q, want %q", me.Username, "bowlfan")
	}

	if _, err := service.Me(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Me() with unknown id error = %v, want ErrUserNotFound", err)
	}
}
