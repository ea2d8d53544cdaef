//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// SeedUser inserts a user with unique credentials.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	u := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		DisplayName:  "User " + suffix,
		PasswordHash: "not-a-real-hash",
		Role:         domain.UserRoleUser,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, display_name, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.Email, u.DisplayName, u.PasswordHash, string(u.Role), u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return u
}

// SeedEvent inserts a logged event for userID.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, text string, minutes int, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO logged_events (user_id, action_text, minutes_added, occurred_at) VALUES ($1, $2, $3, $4)`,
		userID, text, minutes, at.UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: seed event: %v", err)
	}
}
