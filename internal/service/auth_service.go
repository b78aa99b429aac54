package service

import (
	"context"
	"strings"
	"time"

	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/entity"
	"mentorlink-be/internal/pkg/apperror"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/pkg/mailer"
	"mentorlink-be/internal/repository/specification"
	"mentorlink-be/internal/repository/unitofwork"
	"mentorlink-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	publisher    IPublisherService
	logger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisher IPublisherService,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		emailService: emailService,
		publisher:    publisher,
		logger:       log,
	}
}

// Register runs the linear flow: required fields, email uniqueness, username
// uniqueness, hash, persist. Each failed step returns immediately; the unique
// indexes backstop the pre-checks, so two racing registrations cannot both
// land.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email is already registered")
	}

	existing, err = uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRole(req.Role),
		Courses:      req.Courses,
		Contact:      splitContact(req.Contact),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if apperror.IsKind(err, apperror.KindConflict) {
			return nil, err
		}
		return nil, apperror.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal(err)
	}

	go func() {
		if s.emailService == nil {
			return
		}
		if mailErr := s.emailService.SendWelcome(user.Email, user.Username, string(user.Role)); mailErr != nil {
			s.logger.Warn("auth", "welcome mail failed", map[string]interface{}{
				"email": user.Email,
				"error": mailErr.Error(),
			})
		}
	}()

	s.audit(ctx, events.TypeUserRegistered, user)

	return &dto.RegisterResponse{
		Id:       user.Id,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

// Login answers the same "invalid credentials" for an unknown username and a
// wrong password; no enumeration signal.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Auth("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Auth("Invalid credentials")
	}

	s.audit(ctx, events.TypeUserLogin, user)

	return &dto.LoginResult{
		UserID:   user.Id,
		Username: user.Username,
		Role:     string(user.Role),
	}, nil
}

func (s *authService) audit(ctx context.Context, eventType string, user *entity.User) {
	if s.publisher == nil {
		return
	}
	event := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"user_id":  user.Id,
			"username": user.Username,
			"role":     string(user.Role),
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("auth", "audit publish failed", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func splitContact(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
