package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/models"
)

type customFoodRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null"`
	NameKey   string    `gorm:"index;not null"`
	Calories  float64   `gorm:"not null"`
	Protein   float64   `gorm:"not null;default:0"`
	Carbs     float64   `gorm:"not null;default:0"`
	Fats      float64   `gorm:"not null;default:0"`
	Fiber     float64   `gorm:"not null;default:0"`
	Serving   string    `gorm:"size:64"`
	Category  string    `gorm:"size:64"`
	CreatedAt time.Time `gorm:"not null"`
}

func (customFoodRow) TableName() string { return "custom_foods" }

func (r customFoodRow) toModel() models.CustomFood {
	return models.CustomFood{
		ID:        r.ID,
		Name:      r.Name,
		Calories:  r.Calories,
		Protein:   r.Protein,
		Carbs:     r.Carbs,
		Fats:      r.Fats,
		Fiber:     r.Fiber,
		Serving:   r.Serving,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}

// GormFoodStore keeps user-submitted foods in a relational database (postgres or sqlite)
type GormFoodStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// OpenGormFoodStore connects with the given driver ("postgres" or "sqlite") and migrates the schema
func OpenGormFoodStore(driver, dsn string, log *logger.Logger) (*GormFoodStore, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported food store driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s food store: %w", driver, err)
	}
	return NewGormFoodStore(db, log)
}

// NewGormFoodStore wraps an existing connection and migrates the schema
func NewGormFoodStore(db *gorm.DB, log *logger.Logger) (*GormFoodStore, error) {
	if err := db.AutoMigrate(&customFoodRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate custom_foods: %w", err)
	}
	return &GormFoodStore{db: db, log: log}, nil
}

func (s *GormFoodStore) Create(ctx context.Context, food *models.CustomFood) error {
	if err := ValidateCustomFood(food); err != nil {
		return err
	}
	row := customFoodRow{
		ID:        uuid.NewString(),
		Name:      food.Name,
		NameKey:   NameKey(food.Name),
		Calories:  food.Calories,
		Protein:   food.Protein,
		Carbs:     food.Carbs,
		Fats:      food.Fats,
		Fiber:     food.Fiber,
		Serving:   food.Serving,
		Category:  food.Category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert custom food: %w", err)
	}
	food.ID = row.ID
	food.CreatedAt = row.CreatedAt
	s.log.Info("custom food stored", "id", row.ID, "name", row.Name)
	return nil
}

func (s *GormFoodStore) Get(ctx context.Context, id string) (*models.CustomFood, error) {
	var row customFoodRow
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load custom food: %w", err)
	}
	food := row.toModel()
	return &food, nil
}

func (s *GormFoodStore) Search(ctx context.Context, query string, limit int) ([]models.CustomFood, error) {
	key := NameKey(query)
	if key == "" {
		return nil, nil
	}

	var rows []customFoodRow
	err := s.db.WithContext(ctx).
		Where("name_key LIKE ? ESCAPE '\\'", "%"+escapeLike(key)+"%").
		Order("LENGTH(name_key) ASC").
		Order("created_at ASC").
		Limit(clampLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search custom foods: %w", err)
	}

	foods := make([]models.CustomFood, 0, len(rows))
	for _, r := range rows {
		foods = append(foods, r.toModel())
	}
	return foods, nil
}

func (s *GormFoodStore) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func (s *GormFoodStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
