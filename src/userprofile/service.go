package userprofile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"investments-api/src/database"
	"investments-api/src/model"

	"gorm.io/datatypes"
)

var (
	ErrNotFound       = errors.New("user profile not found")
	ErrDuplicateTaxID = errors.New("a user profile with this cpf already exists")
	ErrInvalidData    = errors.New("dados must be well-formed JSON")
)

type UserProfileRequest struct {
	Email       *string         `json:"email" binding:"omitempty,email,max=255"`
	Cpf         string          `json:"cpf" binding:"required,len=11,numeric"`
	Data        json.RawMessage `json:"dados" swaggertype:"object"`
	DisplayName string          `json:"nome" binding:"max=255"`
}

type Service struct {
	Repo Repository
	Now  func() time.Time
}

func NewService(repo Repository, options ...func(s *Service)) *Service {
	s := &Service{
		Repo: repo,
		Now:  func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Service) CreateProfile(ctx context.Context, req UserProfileRequest) (*model.UserProfile, error) {
	data, err := normalizeData(req.Data)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	profile := &model.UserProfile{
		Email:       normalizeEmail(req.Email),
		Cpf:         req.Cpf,
		Data:        data,
		DisplayName: req.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, profile); err != nil {
		return nil, translate(err)
	}
	return profile, nil
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*model.UserProfile, error) {
	profile, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return profile, nil
}

func (s *Service) ListProfiles(ctx context.Context, limit, offset int) ([]model.UserProfile, error) {
	profiles, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return nil, translate(err)
	}
	if profiles == nil {
		profiles = []model.UserProfile{}
	}
	return profiles, nil
}

// UpdateProfile replaces the mutable fields and stamps UpdatedAt; CreatedAt
// is never rewritten.
func (s *Service) UpdateProfile(ctx context.Context, id int64, req UserProfileRequest) (*model.UserProfile, error) {
	data, err := normalizeData(req.Data)
	if err != nil {
		return nil, err
	}

	profile, err := s.Repo.GetById(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	profile.Email = normalizeEmail(req.Email)
	profile.Cpf = req.Cpf
	profile.Data = data
	profile.DisplayName = req.DisplayName
	profile.UpdatedAt = s.Now()

	if err := s.Repo.Update(ctx, profile); err != nil {
		return nil, translate(err)
	}
	return profile, nil
}

func (s *Service) DeleteProfile(ctx context.Context, id int64) error {
	return translate(s.Repo.Delete(ctx, id))
}

func normalizeData(raw json.RawMessage) (datatypes.JSON, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, ErrInvalidData
	}
	return datatypes.JSON(trimmed), nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, database.ErrDuplicateKey):
		return ErrDuplicateTaxID
	default:
		return fmt.Errorf("user profile storage: %w", err)
	}
}
