package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lollyshoppe/internal/model"
)

// newTestDB opens a throwaway in-memory database with the production schema.
// Each call gets its own named memory DB so parallel tests cannot collide;
// cache=shared keeps the pool's connections on the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Milestone{},
		&model.Deliverable{},
		&model.Invoice{},
	))
	return db
}

func seedClient(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	client := &model.User{
		SubjectID: "auth0|" + uuid.NewString(),
		Email:     "client@example.com",
		Role:      model.RoleClient,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), client))
	return client
}
