package service

import (
	"context"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/repository/specification"
	"mentorlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

// GetProfile fetches fresh user data by the session's identity reference,
// so the response never serves stale attributes.
func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return &dto.ProfileResponse{
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Courses:  user.Courses,
		Contact:  user.Contact,
	}, nil
}
