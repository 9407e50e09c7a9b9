package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"duty-portal-backend/internal/database/models"
	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/logger"
	"duty-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"max=100" example:"alpha-shift"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// UpdateTeamRequest represents a partial update; absent fields are left untouched.
// An explicit null description clears the stored one.
type UpdateTeamRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,max=100"`
	Description OptionalString `json:"description,omitempty" swaggertype:"string"`
	IsActive    *bool          `json:"isActive,omitempty"`
}

// IsEmpty reports whether the patch carries no fields
func (r *UpdateTeamRequest) IsEmpty() bool {
	return r == nil || (r.Name == nil && !r.Description.Set && r.IsActive == nil)
}

// OptionalString tells an absent JSON field apart from an explicit null
type OptionalString struct {
	Value *string
	Set   bool
}

// NewOptionalString returns a present value; nil means an explicit null
func NewOptionalString(value *string) OptionalString {
	return OptionalString{Value: value, Set: true}
}

// UnmarshalJSON is only invoked when the key is present, null included
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.Value = &value
	return nil
}

// MarshalJSON renders the value, or null when unset
func (o OptionalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// Create creates a new team with a unique name
func (s *TeamService) Create(req *CreateTeamRequest) (*models.Team, error) {
	if req == nil || req.Name == "" {
		return nil, apperrors.ErrTeamNameRequired
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(req.Name); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := s.repo.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{"team_id": team.ID, "name": team.Name}).Info("team created")
	return team, nil
}

// FindAll returns all teams, newest first
func (s *TeamService) FindAll() ([]models.Team, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	if teams == nil {
		teams = []models.Team{}
	}
	return teams, nil
}

// FindOne retrieves a team by ID
func (s *TeamService) FindOne(id int64) (*models.Team, error) {
	if !validTeamID(id) {
		return nil, apperrors.ErrInvalidTeamID
	}

	team, err := s.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTeamNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return team, nil
}

// Update merges the provided fields into an existing team
func (s *TeamService) Update(id int64, req *UpdateTeamRequest) (*models.Team, error) {
	if !validTeamID(id) {
		return nil, apperrors.ErrInvalidTeamID
	}
	if req.IsEmpty() {
		return nil, apperrors.ErrEmptyTeamUpdate
	}
	if req.Name != nil && *req.Name == "" {
		return nil, apperrors.ErrTeamNameRequired
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if req.Description.Value != nil {
		if err := s.validator.Var(*req.Description.Value, "max=500"); err != nil {
			return nil, apperrors.NewValidationError("description", fmt.Sprintf("validation failed: %s", err.Error()))
		}
	}

	team, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != team.Name {
		if err := s.ensureNameAvailable(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description.Set {
		team.Description = req.Description.Value
	}
	if req.IsActive != nil {
		team.IsActive = *req.IsActive
	}

	if err := s.repo.Update(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	logger.New().WithField("team_id", team.ID).Info("team updated")
	return team, nil
}

// Remove deletes a team by ID
func (s *TeamService) Remove(id int64) error {
	if !validTeamID(id) {
		return apperrors.ErrInvalidTeamID
	}

	if _, err := s.FindOne(id); err != nil {
		return err
	}

	affected, err := s.repo.Delete(uint(id))
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if affected == 0 {
		return apperrors.NewTeamNotFoundError(id)
	}

	logger.New().WithField("team_id", id).Info("team deleted")
	return nil
}

func (s *TeamService) ensureNameAvailable(name string) error {
	existing, err := s.repo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return apperrors.ErrTeamExists
	}
	return nil
}

func (s *TeamService) validate(req interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", fmt.Sprintf("validation failed: %s", err.Error()))
	}
	return nil
}

// validTeamID rejects absent, zero and negative ids
func validTeamID(id int64) bool {
	return id > 0
}
