package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorlink-be/internal/bootstrap"
	"mentorlink-be/internal/config"
	"mentorlink-be/internal/model"
	"mentorlink-be/internal/server"
	"mentorlink-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestMentoringFlow exercises the full register/login/match path against a
// real database. Set DB_CONNECTION_STRING (or provide ../../.env) to run.
func TestMentoringFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("no ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set; skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("failed to connect to DB: %v", err)
	}
	require.NoError(t, db.AutoMigrate(&model.User{}))

	container := bootstrap.NewContainer(db, cfg)
	app := server.New(cfg, container).GetApp()

	suffix := uuid.NewString()[:8]
	mentorName := "it_mentor_" + suffix
	studentName := "it_student_" + suffix
	defer cleanupUsers(db, mentorName, studentName, "other_"+suffix)

	// 1. Register a mentor teaching Databases.
	resp := postJSON(t, app, "/register", nil, map[string]interface{}{
		"username": mentorName,
		"email":    mentorName + "@example.com",
		"password": "pw12345",
		"role":     "mentor",
		"courses":  []string{"Databases", "Compilers"},
		"contact":  "@" + mentorName,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// 2. Register a student sharing one course.
	resp = postJSON(t, app, "/register", nil, map[string]interface{}{
		"username": studentName,
		"email":    studentName + "@example.com",
		"password": "pw12345",
		"role":     "student",
		"courses":  []string{"Databases"},
		"contact":  "@" + studentName,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// 3. Duplicate email is rejected.
	resp = postJSON(t, app, "/register", nil, map[string]interface{}{
		"username": "other_" + suffix,
		"email":    mentorName + "@example.com",
		"password": "pw12345",
		"role":     "mentor",
		"courses":  []string{"Databases"},
		"contact":  "@other",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// 4. Wrong password is rejected.
	resp = postJSON(t, app, "/login", nil, map[string]interface{}{
		"username": studentName,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// 5. Login as the student; grab the session cookie.
	resp = postJSON(t, app, "/login", nil, map[string]interface{}{
		"username": studentName,
		"password": "pw12345",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginBody struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginBody))
	assert.True(t, loginBody.Success)
	assert.Equal(t, "student", loginBody.Role)

	cookie := sessionCookie(resp, cfg.Session.CookieName)
	require.NotNil(t, cookie, "login must carry the session cookie")

	// 6. Matching without a session is rejected.
	resp = postJSON(t, app, "/findmentors", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// 7. The logged-in student finds the seeded mentor.
	resp = postJSON(t, app, "/findmentors", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var matchBody struct {
		Success bool `json:"success"`
		Mentors []struct {
			Username string   `json:"username"`
			Courses  []string `json:"courses"`
		} `json:"mentors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&matchBody))
	assert.True(t, matchBody.Success)

	found := false
	for _, m := range matchBody.Mentors {
		if m.Username == mentorName {
			found = true
		}
	}
	assert.True(t, found, "seeded mentor must appear in the match result")

	// 8. Profile reflects the session identity.
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.AddCookie(cookie)
	profileResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, profileResp.StatusCode)

	var profileBody struct {
		Success bool   `json:"success"`
		Name    string `json:"name"`
		Role    string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(profileResp.Body).Decode(&profileBody))
	assert.Equal(t, studentName, profileBody.Name)
	assert.Equal(t, "student", profileBody.Role)

	// 9. Logout redirects and kills the session.
	logoutReq := httptest.NewRequest(http.MethodGet, "/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutResp, err := app.Test(logoutReq, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, logoutResp.StatusCode)

	resp = postJSON(t, app, "/findmentors", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func postJSON(t *testing.T, app *fiber.App, path string, cookie *http.Cookie, payload interface{}) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	} else {
		body.WriteString("{}")
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func cleanupUsers(db *gorm.DB, usernames ...string) {
	db.Where("username IN ?", usernames).Delete(&model.User{})
}
