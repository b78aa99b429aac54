package service

import (
	"context"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/repository/specification"
	"mentorlink-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMatchService interface {
	FindMentors(ctx context.Context, requesterId uuid.UUID) ([]dto.MatchedUser, error)
	FindStudents(ctx context.Context, courses []string) ([]dto.MatchedUser, error)
	SearchMentors(ctx context.Context, query string) ([]dto.MatchedUser, error)
}

type matchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMatchService(uowFactory unitofwork.RepositoryFactory) IMatchService {
	return &matchService{
		uowFactory: uowFactory,
	}
}

// FindMentors looks up mentors sharing at least one course with the
// requesting student. The requester's courses are re-read from the store, not
// taken from the session.
func (s *matchService) FindMentors(ctx context.Context, requesterId uuid.UUID) ([]dto.MatchedUser, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requester, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: requesterId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if requester == nil {
		return nil, apperror.Auth("Authentication required for students")
	}
	if requester.Role != entity.UserRoleStudent {
		return nil, apperror.Auth("Authentication required for students")
	}

	if len(requester.Courses) == 0 {
		return nil, apperror.Validation("Your selected courses are empty. Please update your profile.")
	}

	mentors, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: entity.UserRoleMentor},
		specification.CoursesOverlap{Courses: requester.Courses},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(mentors) == 0 {
		return nil, apperror.NotFound("No mentors found for your selected courses.")
	}

	return toMatchedUsers(mentors), nil
}

// FindStudents is the mentor-side search over an explicit course list.
func (s *matchService) FindStudents(ctx context.Context, courses []string) ([]dto.MatchedUser, error) {
	if len(courses) == 0 {
		return nil, apperror.Validation("Courses array is required and must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	students, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: entity.UserRoleStudent},
		specification.CoursesOverlap{Courses: courses},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(students) == 0 {
		return nil, apperror.NotFound("No students found for the provided courses")
	}

	return toMatchedUsers(students), nil
}

// SearchMentors tries a username substring match first; only when that yields
// nothing does it fall back to a course substring match. The two result sets
// are never combined.
func (s *matchService) SearchMentors(ctx context.Context, query string) ([]dto.MatchedUser, error) {
	if query == "" {
		return nil, apperror.Validation("Search query is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	mentors, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: entity.UserRoleMentor},
		specification.UsernameContains{Query: query},
	)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(mentors) == 0 {
		mentors, err = uow.UserRepository().FindAll(ctx,
			specification.ByRole{Role: entity.UserRoleMentor},
			specification.CourseContains{Query: query},
		)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	if len(mentors) == 0 {
		return nil, apperror.NotFound("No mentors found matching your search")
	}

	return toMatchedUsers(mentors), nil
}

// toMatchedUsers strips the password hash; counterpart records never carry it.
func toMatchedUsers(users []*entity.User) []dto.MatchedUser {
	out := make([]dto.MatchedUser, len(users))
	for i, u := range users {
		out[i] = dto.MatchedUser{
			Username: u.Username,
			Email:    u.Email,
			Role:     string(u.Role),
			Courses:  u.Courses,
			Contact:  u.Contact,
		}
	}
	return out
}
