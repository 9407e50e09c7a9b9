package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"duty-portal-backend/internal/config"
	"duty-portal-backend/internal/database"
	apperrors "duty-portal-backend/internal/errors"
	"duty-portal-backend/internal/repository"
	"duty-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures as they appear in the YAML files
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type NotificationData struct {
	RecipientServiceNumber string `yaml:"recipient_service_number"`
	Message                string `yaml:"message"`
	IncidentNumber         string `yaml:"incident_number,omitempty"`
	ActorName              string `yaml:"actor_name,omitempty"`
	ActorServiceNumber     string `yaml:"actor_service_number,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type NotificationsFile struct {
	Notifications []NotificationData `yaml:"notifications"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	notifications, err := loadNotifications(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}

	teamService := service.NewTeamService(repository.NewTeamRepository(db), validator.New())
	notificationService := service.NewNotificationService(repository.NewNotificationRepository(db))

	teamsCreated := 0
	for _, teamData := range teams {
		created, err := createTeam(teamService, teamData)
		if err != nil {
			return err
		}
		if created {
			teamsCreated++
		}
	}
	log.Printf("Teams: %d created, %d already present", teamsCreated, len(teams)-teamsCreated)

	for _, notificationData := range notifications {
		if _, err := notificationService.Create(notificationRequest(notificationData)); err != nil {
			return fmt.Errorf("failed to create notification for %s: %w", notificationData.RecipientServiceNumber, err)
		}
	}
	log.Printf("Notifications: %d created", len(notifications))

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData
	err := walkYAML(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allTeams = append(allTeams, file.Teams...)
		return nil
	})
	return allTeams, err
}

func loadNotifications(dataDir string) ([]NotificationData, error) {
	var allNotifications []NotificationData
	err := walkYAML(dataDir, "notifications", func(data []byte) error {
		var file NotificationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allNotifications = append(allNotifications, file.Notifications...)
		return nil
	})
	return allNotifications, err
}

// walkYAML feeds every .yaml file under dataDir whose path contains kind to decode
func walkYAML(dataDir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// createTeam returns false when a team with the same name already exists
func createTeam(teamService service.TeamServiceInterface, teamData TeamData) (bool, error) {
	req := &service.CreateTeamRequest{
		Name:     teamData.Name,
		IsActive: &teamData.IsActive,
	}
	if teamData.Description != "" {
		req.Description = &teamData.Description
	}

	if _, err := teamService.Create(req); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create team %q: %w", teamData.Name, err)
	}
	return true, nil
}

func notificationRequest(data NotificationData) *service.CreateNotificationRequest {
	req := &service.CreateNotificationRequest{
		RecipientServiceNumber: data.RecipientServiceNumber,
		Message:                data.Message,
	}
	if data.IncidentNumber != "" {
		req.IncidentNumber = &data.IncidentNumber
	}
	if data.ActorName != "" {
		req.ActorName = &data.ActorName
	}
	if data.ActorServiceNumber != "" {
		req.ActorServiceNumber = &data.ActorServiceNumber
	}
	return req
}
