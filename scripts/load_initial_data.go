package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pharmatrack-backend/internal/config"
	"pharmatrack-backend/internal/database"
	"pharmatrack-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CategoryData struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
}

type UserData struct {
	Email         string `yaml:"email"`
	Password      string `yaml:"password"`
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	AlertsEnabled *bool  `yaml:"alerts_enabled,omitempty"`
	Operator      bool   `yaml:"operator"`
}

type DrugData struct {
	Name         string `yaml:"name"`
	OwnerEmail   string `yaml:"owner_email"`
	CategoryName string `yaml:"category_name"`
	ExpiresAt    string `yaml:"expires_at"`
	Description  string `yaml:"description,omitempty"`
}

// File structures
type CategoriesFile struct {
	Categories []CategoryData `yaml:"categories"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type DrugsFile struct {
	Drugs []DrugData `yaml:"drugs"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL noise while the not-found lookups below run
	opts := &database.Options{
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
	categories, err := loadCategories(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	drugs, err := loadDrugs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load drugs: %w", err)
	}

	// Make sure the fixed category set exists even with no data files present
	categories = withDefaultCategories(categories)

	categoryMap := make(map[string]*models.Category)
	categoryCreated := 0
	for _, categoryData := range categories {
		category, created, err := createCategory(db, categoryData)
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", categoryData.Name, err)
		}
		categoryMap[strings.ToUpper(categoryData.Name)] = category
		if created {
			categoryCreated++
		}
	}
	log.Printf("Categories: %d created, %d total", categoryCreated, len(categories))

	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[strings.ToLower(userData.Email)] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	drugCreated := 0
	for _, drugData := range drugs {
		_, created, err := createDrug(db, drugData, userMap, categoryMap)
		if err != nil {
			log.Printf("Warning: failed to create drug %s: %v", drugData.Name, err)
			continue
		}
		if created {
			drugCreated++
		}
	}
	log.Printf("Drugs: %d created, %d total", drugCreated, len(drugs))

	return nil
}

// withDefaultCategories appends any of the fixed category names missing
// from the YAML data.
func withDefaultCategories(categories []CategoryData) []CategoryData {
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		seen[strings.ToUpper(c.Name)] = true
	}
	for _, name := range models.DefaultCategoryNames {
		if !seen[name] {
			title := strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
			categories = append(categories, CategoryData{Name: name, Title: title})
		}
	}
	return categories
}

func loadCategories(dataDir string) ([]CategoryData, error) {
	var allCategories []CategoryData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "categories") {
			var file CategoriesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCategories = append(allCategories, file.Categories...)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}

	return allCategories, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}

	return allUsers, err
}

func loadDrugs(dataDir string) ([]DrugData, error) {
	var allDrugs []DrugData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "drugs") {
			var file DrugsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDrugs = append(allDrugs, file.Drugs...)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}

	return allDrugs, err
}

func createCategory(db *gorm.DB, categoryData CategoryData) (*models.Category, bool, error) {
	name := strings.ToUpper(strings.TrimSpace(categoryData.Name))

	var category models.Category
	if err := db.Where("name = ?", name).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			title := categoryData.Title
			if title == "" {
				title = strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
			}

			category = models.Category{
				Name:  name,
				Title: title,
			}

			if err := db.Create(&category).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create category: %w", err)
			}
			return &category, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query category: %w", err)
		}
	}

	return &category, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			password := userData.Password
			if password == "" {
				password = "changeme"
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			alertsEnabled := true
			if userData.AlertsEnabled != nil {
				alertsEnabled = *userData.AlertsEnabled
			}

			user = models.User{
				Email:         email,
				PasswordHash:  string(hash),
				FirstName:     userData.FirstName,
				LastName:      userData.LastName,
				AlertsEnabled: alertsEnabled,
				Operator:      userData.Operator,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createDrug(db *gorm.DB, drugData DrugData, userMap map[string]*models.User, categoryMap map[string]*models.Category) (*models.Drug, bool, error) {
	owner := userMap[strings.ToLower(drugData.OwnerEmail)]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for drug %s", drugData.OwnerEmail, drugData.Name)
	}

	category := categoryMap[strings.ToUpper(drugData.CategoryName)]
	if category == nil {
		return nil, false, fmt.Errorf("category %s not found for drug %s", drugData.CategoryName, drugData.Name)
	}

	expiresAt, err := time.Parse("2006-01-02", drugData.ExpiresAt)
	if err != nil {
		return nil, false, fmt.Errorf("invalid expires_at for drug %s: %w", drugData.Name, err)
	}

	var drug models.Drug
	if err := db.Where("name = ? AND owner_id = ?", drugData.Name, owner.ID).First(&drug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			drug = models.Drug{
				OwnerID:     owner.ID,
				Name:        drugData.Name,
				CategoryID:  category.ID,
				ExpiresAt:   expiresAt,
				Description: drugData.Description,
			}

			if err := db.Create(&drug).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create drug: %w", err)
			}
			return &drug, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query drug: %w", err)
		}
	}

	return &drug, false, nil // created = false (existing)
}
