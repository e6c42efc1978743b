package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.TaskRepository())
	assert.NotNil(t, uow.ConversationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Task Repository", func(t *testing.T) {
		count, err := uow.TaskRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Task count: %d", count)
	})

	t.Run("Check Memory Item Repository", func(t *testing.T) {
		count, err := uow.MemoryItemRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("MemoryItem count: %d", count)
	})

	t.Run("Task Round Trip", func(t *testing.T) {
		ctx := context.Background()
		due := time.Now().AddDate(0, 0, 1)
		task := &entity.Task{
			Title:     "integration-" + uuid.NewString(),
			Priority:  constant.TaskPriorityHigh,
			Status:    constant.TaskStatusPending,
			DueDate:   &due,
			CreatedAt: time.Now(),
		}

		err := uow.TaskRepository().Create(ctx, task)
		assert.NoError(t, err)
		assert.NotZero(t, task.Id)

		found, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: task.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, task.Title, found.Title)
		}

		err = uow.TaskRepository().Delete(ctx, task.Id)
		assert.NoError(t, err)
	})

	t.Run("Preference Upsert", func(t *testing.T) {
		ctx := context.Background()
		key := "integration-pref-" + uuid.NewString()

		err := uow.PreferenceRepository().Upsert(ctx, &entity.Preference{
			Key: key, Value: "first", Category: "test",
		})
		assert.NoError(t, err)

		err = uow.PreferenceRepository().Upsert(ctx, &entity.Preference{
			Key: key, Value: "second", Category: "test",
		})
		assert.NoError(t, err)

		found, err := uow.PreferenceRepository().FindOne(ctx, specification.Filter("key", key))
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "second", found.Value)
		}
	})
}
