package auth

import (
	"context"
	"testing"

	"github.com/utsav-fest/utsav-api/internal/config"
	"github.com/utsav-fest/utsav-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.AutoMigrate(&models.User{})
	return db
}

func TestAuthorize(t *testing.T) {
	db := setupDB(t)

	user := models.User{GoogleID: "g-123", Name: "Test User", Email: "test@example.com"}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	token, err := handler.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	t.Run("ValidCookie", func(t *testing.T) {
		got, err := handler.Authorize(context.Background(), "auth_token="+token)
		if err != nil {
			t.Fatalf("Authorize returned error: %v", err)
		}
		if got != user.ID {
			t.Errorf("expected user id %d, got %d", user.ID, got)
		}
	})

	t.Run("OtherCookiesPresent", func(t *testing.T) {
		cookie := "theme=dark; auth_token=" + token + "; lang=en"
		if _, err := handler.Authorize(context.Background(), cookie); err != nil {
			t.Fatalf("Authorize with extra cookies returned error: %v", err)
		}
	})

	t.Run("MissingCookie", func(t *testing.T) {
		if _, err := handler.Authorize(context.Background(), ""); err == nil {
			t.Fatal("expected error for missing cookie, got nil")
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		if _, err := handler.Authorize(context.Background(), "auth_token=not-a-jwt"); err == nil {
			t.Fatal("expected error for garbage token, got nil")
		}
	})
}

func TestAuthorizeAdmin(t *testing.T) {
	db := setupDB(t)

	admin := models.User{GoogleID: "g-admin", Email: "organizer@fest.edu"}
	visitor := models.User{GoogleID: "g-visitor", Email: "someone@example.com"}
	db.Create(&admin)
	db.Create(&visitor)

	cfg := &config.Config{JWTSecret: "test-secret", AdminEmails: []string{"organizer@fest.edu"}}
	handler := NewAuthHandler(cfg, db)

	adminToken, _ := handler.GenerateToken(admin.ID)
	visitorToken, _ := handler.GenerateToken(visitor.ID)

	if _, err := handler.AuthorizeAdmin(context.Background(), "auth_token="+adminToken); err != nil {
		t.Fatalf("admin should be authorized: %v", err)
	}
	if _, err := handler.AuthorizeAdmin(context.Background(), "auth_token="+visitorToken); err == nil {
		t.Fatal("visitor should not pass the organizer gate")
	}
}

func TestHandleMe(t *testing.T) {
	db := setupDB(t)

	user := models.User{
		GoogleID: "g-456",
		Name:     "testuser",
		Email:    "me@example.com",
		Avatar:   "avatar_url",
	}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("Authenticated", func(t *testing.T) {
		token, _ := handler.GenerateToken(user.ID)
		input := &MeInput{AuthInput: AuthInput{Cookie: "auth_token=" + token}}
		resp, err := handler.HandleMe(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}

		if resp.Body.Name != user.Name {
			t.Errorf("expected name %s, got %s", user.Name, resp.Body.Name)
		}
		if resp.Body.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, resp.Body.Email)
		}
		if resp.Body.Admin {
			t.Error("expected non-admin user")
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		input := &MeInput{}
		if _, err := handler.HandleMe(context.Background(), input); err == nil {
			t.Fatal("expected error for unauthenticated request, got nil")
		}
	})
}
