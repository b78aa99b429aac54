package service

import (
	"context"
	"testing"
	"time"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest(repo *fakeUserRepo) IAuthService {
	return NewAuthService(&fakeFactory{repo: repo}, nil, nil, noopLogger{})
}

func existingUser(username, email, password string, role entity.UserRole) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Courses:      []string{"Algorithms"},
		Contact:      []string{"@" + username},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthServiceForTest(repo)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		Role:     "mentor",
		Courses:  []string{"Algorithms", "Databases"},
		Contact:  "@alice, alice@telegram",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "mentor", res.Role)
	assert.NotEqual(t, uuid.Nil, res.Id)

	stored, err := repo.FindOne(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
	assert.Equal(t, []string{"@alice", "alice@telegram"}, stored.Contact)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(existingUser("alice", "alice@example.com", "pw", entity.UserRoleMentor))
	svc := newAuthServiceForTest(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "someone-else",
		Email:    "alice@example.com",
		Password: "pw",
		Role:     "student",
		Courses:  []string{"Algorithms"},
		Contact:  "@someone",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "Email is already registered")

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, count, "failed registration must not persist")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo(existingUser("alice", "alice@example.com", "pw", entity.UserRoleMentor))
	svc := newAuthServiceForTest(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "pw",
		Role:     "student",
		Courses:  []string{"Algorithms"},
		Contact:  "@other",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "Username is already taken")

	count, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, count)
}

func TestLoginSuccess(t *testing.T) {
	user := existingUser("bob", "bob@example.com", "hunter2", entity.UserRoleStudent)
	svc := newAuthServiceForTest(newFakeUserRepo(user))

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "bob",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.UserID)
	assert.Equal(t, "bob", res.Username)
	assert.Equal(t, "student", res.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	user := existingUser("bob", "bob@example.com", "hunter2", entity.UserRoleStudent)
	svc := newAuthServiceForTest(newFakeUserRepo(user))

	cases := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown username", username: "nobody", password: "hunter2"},
		{name: "wrong password", username: "bob", password: "hunter3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{
				Username: tc.username,
				Password: tc.password,
			})
			require.Error(t, err)
			assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
			// Same message either way; no account enumeration.
			assert.Contains(t, err.Error(), "Invalid credentials")
		})
	}
}
