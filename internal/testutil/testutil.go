package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/modernointeriors/modernointeriors-sub000/internal/middleware"
	"github.com/modernointeriors/modernointeriors-sub000/internal/model/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const JWTSecret = "moderno-interiors-jwt-secret-2025"

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadEnv loads .env from the project root
func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB opens an isolated in-memory sqlite database and migrates
// all tables. Each test gets its own database, dropped when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Client{},
		&entity.Transaction{},
		&entity.Deal{},
		&entity.Interaction{},
		&entity.Inquiry{},
		&entity.Project{},
		&entity.Article{},
		&entity.SiteContent{},
		&entity.Partner{},
		&entity.FAQ{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// AuthGroup creates an API group with JWT auth middleware for testing.
// Revocation checks are skipped (nil redis client).
func AuthGroup(r *gin.Engine, path string) *gin.RouterGroup {
	return r.Group(path, middleware.JWTAuth(JWTSecret, nil))
}

// GenerateTestToken creates a valid JWT token for testing
func GenerateTestToken(userID, name, email, role string, permissions []string) string {
	if permissions == nil {
		permissions = []string{}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"uid":   userID,
		"name":  name,
		"email": email,
		"role":  role,
		"perms": permissions,
		"iss":   "moderno-interiors",
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
		"jti":   fmt.Sprintf("test-jti-%d", now.UnixNano()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// DefaultTestToken returns a token for a default admin test user
func DefaultTestToken() string {
	return GenerateTestToken(
		"test-user-001",
		"Test Admin",
		"admin@test.com",
		entity.RoleAdmin,
		entity.PermissionStrings(entity.RoleAdmin),
	)
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a handler.Response-like map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedTestClient creates a test client in the database
func SeedTestClient(t *testing.T, db *gorm.DB, id, firstName, lastName, email string) *entity.Client {
	t.Helper()
	client := &entity.Client{
		ID:             id,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Stage:          entity.ClientStageLead,
		Status:         entity.ClientStatusActive,
		Tier:           entity.TierSilver,
		WarrantyStatus: entity.WarrantyNone,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("Failed to seed test client: %v", err)
	}
	return client
}

// SeedTestTransaction creates a test transaction in the database
func SeedTestTransaction(t *testing.T, db *gorm.DB, id, clientID string, amount string, txType, status string) *entity.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("Invalid test amount %q: %v", amount, err)
	}
	tx := &entity.Transaction{
		ID:          id,
		ClientID:    clientID,
		Amount:      amt,
		Type:        txType,
		Status:      status,
		Title:       "Test transaction " + id,
		PaymentDate: entity.Date{Time: time.Now()},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("Failed to seed test transaction: %v", err)
	}
	return tx
}

// SeedTestUser creates a test user in the database
func SeedTestUser(t *testing.T, db *gorm.DB, id, username, role string) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:           id,
		Username:     username,
		Name:         "User " + id,
		Email:        username + "@test.com",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0c1w1VgJ9m0uS0dR0dK5a5u5a5u",
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed test user: %v", err)
	}
	return user
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
