package service

import (
	"context"
	"strings"
	"sync"

	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/repository/contract"
	"mentorlink-be/internal/repository/specification"
	"mentorlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeUserRepo interprets the query specifications in memory so service tests
// run without a database.
type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	return &fakeUserRepo{users: users}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperror.Conflict("Email is already registered")
		}
		if u.Username == user.Username {
			return apperror.Conflict("Username is already taken")
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.users[:0]
	for _, u := range f.users {
		if u.Id != id {
			out = append(out, u)
		}
	}
	f.users = out
	return nil
}

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if matchesAll(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, u := range f.users {
		if matchesAll(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := f.FindAll(ctx, specs...)
	return int64(len(found)), err
}

func matchesAll(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		if !matches(u, s) {
			return false
		}
	}
	return true
}

func matches(u *entity.User, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return u.Id == s.ID
	case specification.ByUsername:
		return u.Username == s.Username
	case specification.ByEmail:
		return u.Email == s.Email
	case specification.ByRole:
		return u.Role == s.Role
	case specification.CoursesOverlap:
		for _, mine := range u.Courses {
			for _, theirs := range s.Courses {
				if mine == theirs {
					return true
				}
			}
		}
		return false
	case specification.UsernameContains:
		return strings.Contains(strings.ToLower(u.Username), strings.ToLower(s.Query))
	case specification.CourseContains:
		for _, c := range u.Courses {
			if strings.Contains(strings.ToLower(c), strings.ToLower(s.Query)) {
				return true
			}
		}
		return false
	case specification.OrderBy:
		return true
	default:
		return true
	}
}

// fakeUow hands out the shared fake repo; transactions are no-ops.
type fakeUow struct {
	repo *fakeUserRepo
}

func (f *fakeUow) Begin(ctx context.Context) error         { return nil }
func (f *fakeUow) Commit() error                           { return nil }
func (f *fakeUow) Rollback() error                         { return nil }
func (f *fakeUow) UserRepository() contract.UserRepository { return f.repo }

type fakeFactory struct {
	repo *fakeUserRepo
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{repo: f.repo}
}

// noopLogger satisfies logger.ILogger in tests.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
