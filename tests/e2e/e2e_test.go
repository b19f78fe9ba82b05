package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"garagehub/internal/database"
	"garagehub/internal/domain"
	"garagehub/internal/geocode"
	"garagehub/internal/middleware"
	"garagehub/internal/modules/auth"
	"garagehub/internal/modules/forum"
	"garagehub/internal/modules/garage"
	"garagehub/internal/modules/part"
	"garagehub/internal/modules/review"
	jwtsvc "garagehub/internal/pkg/jwt"
	"garagehub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mapGeocoder resolves by exact query match, everything else is (0, 0).
type mapGeocoder struct {
	points map[string]geocode.Point
}

func (m *mapGeocoder) Geocode(_ context.Context, address string) geocode.Point {
	return m.points[address]
}

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "Failed to migrate schema")

	userRepo := repository.NewUserRepository(db)
	garageRepo := repository.NewGarageRepository(db)
	partRepo := repository.NewPartRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	forumRepo := repository.NewForumRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	geocoder := &mapGeocoder{points: map[string]geocode.Point{
		"Champ de Mars, Paris":      {Lon: 2.2945, Lat: 48.8584},
		"12 Workshop Lane, Nairobi": {Lon: 36.8219, Lat: -1.2921},
	}}

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	garageHandler := garage.NewHandler(garage.NewService(garageRepo, geocoder))
	partHandler := part.NewHandler(partRepo)
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, garageRepo))

	hub := forum.NewHub()
	t.Cleanup(hub.Close)
	forumHandler := forum.NewHandler(forum.NewService(forumRepo, hub), hub)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	partHandler.RegisterRoutes(v1)

	optional := v1.Group("")
	optional.Use(middleware.OptionalJWTAuth(j))
	{
		garageHandler.RegisterRoutes(optional, nil)
		reviewHandler.RegisterRoutes(optional, nil)
		forumHandler.RegisterRoutes(optional, nil)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))
	{
		authHandler.RegisterProtectedRoutes(protected)
		garageHandler.RegisterRoutes(nil, protected)
		reviewHandler.RegisterRoutes(nil, protected)
		forumHandler.RegisterRoutes(nil, protected)
	}

	return &E2ETestSuite{router: r, db: db, jwt: j}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Body: %s", w.Body.String())
	return &resp
}

func (s *E2ETestSuite) register(t *testing.T, username, userType string) string {
	body := map[string]interface{}{
		"username":  username,
		"email":     username + "@test.com",
		"password":  "Password123!",
		"user_type": userType,
	}
	w := s.makeRequest("POST", "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, "Body: %s", w.Body.String())

	resp := parseResponse(t, w)
	require.True(t, resp.Success)
	return resp.Data["token"].(string)
}

// staffToken creates a staff user directly and signs a token for it.
func (s *E2ETestSuite) staffToken(t *testing.T) string {
	u := &domain.User{Username: "moderator", Email: "moderator@test.com", PasswordHash: "x", IsStaff: true}
	require.NoError(t, s.db.Create(u).Error)

	token, err := s.jwt.GenerateToken(u.ID, u.Username, true)
	require.NoError(t, err)
	return token
}

func parisGarageBody() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Tower Auto Works",
		"description":  "Full service shop",
		"address":      "Champ de Mars",
		"city":         "Paris",
		"country":      "France",
		"phone_number": "+33100000000",
		"email":        "shop@towerauto.test",
		"services": []map[string]string{
			{"service": "Oil Change", "price": "49.99"},
		},
	}
}

func (s *E2ETestSuite) createGarage(t *testing.T, token string, body map[string]interface{}) int64 {
	w := s.makeRequest("POST", "/api/v1/garages", body, token)
	require.Equal(t, http.StatusCreated, w.Code, "Body: %s", w.Body.String())

	resp := parseResponse(t, w)
	require.True(t, resp.Success)
	g := resp.Data["garage"].(map[string]interface{})
	return int64(g["id"].(float64))
}

func (s *E2ETestSuite) verifyGarage(t *testing.T, id int64) {
	require.NoError(t, s.db.Model(&domain.Garage{}).Where("id = ?", id).Update("is_verified", true).Error)
}

func TestFlow_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("POST /auth/register", func(t *testing.T) {
		token := suite.register(t, "alice", "car_owner")
		assert.NotEmpty(t, token)
	})

	t.Run("POST /auth/register duplicate email", func(t *testing.T) {
		body := map[string]interface{}{
			"username": "alice2",
			"email":    "alice@test.com",
			"password": "Password123!",
		}
		w := suite.makeRequest("POST", "/api/v1/auth/register", body, "")
		assert.Equal(t, http.StatusConflict, w.Code)

		resp := parseResponse(t, w)
		assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
	})

	t.Run("POST /auth/register missing fields", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{"email": "x@test.com"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		require.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		details := resp.Error.Details.(map[string]interface{})
		require.Contains(t, details, "username")
		assert.Equal(t, "This field is required.", details["username"].([]interface{})[0])
	})

	t.Run("POST /auth/login", func(t *testing.T) {
		body := map[string]interface{}{"email": "alice@test.com", "password": "Password123!"}
		w := suite.makeRequest("POST", "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("POST /auth/login wrong password", func(t *testing.T) {
		body := map[string]interface{}{"email": "alice@test.com", "password": "nope-nope"}
		w := suite.makeRequest("POST", "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /users/me", func(t *testing.T) {
		body := map[string]interface{}{"email": "alice@test.com", "password": "Password123!"}
		w := suite.makeRequest("POST", "/api/v1/auth/login", body, "")
		token := parseResponse(t, w).Data["token"].(string)

		w = suite.makeRequest("GET", "/api/v1/users/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		user := resp.Data["user"].(map[string]interface{})
		assert.Equal(t, "alice@test.com", user["email"])
	})

	t.Run("GET /users/me without token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/users/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFlow_GarageLifecycle(t *testing.T) {
	suite := setupTestSuite(t)
	ownerToken := suite.register(t, "owner", "garage_admin")

	t.Run("POST /garages without token", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/garages", parisGarageBody(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /garages missing name", func(t *testing.T) {
		body := parisGarageBody()
		delete(body, "name")
		w := suite.makeRequest("POST", "/api/v1/garages", body, ownerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		require.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		details := resp.Error.Details.(map[string]interface{})
		require.Contains(t, details, "name")
		assert.Equal(t, "This field is required.", details["name"].([]interface{})[0])
	})

	t.Run("POST /garages bad service price", func(t *testing.T) {
		body := parisGarageBody()
		body["services"] = []map[string]string{{"service": "Oil Change", "price": "cheap"}}
		w := suite.makeRequest("POST", "/api/v1/garages", body, ownerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		require.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		details := resp.Error.Details.(map[string]interface{})
		assert.Equal(t, "A valid number is required.", details["services"].([]interface{})[0])
	})

	t.Run("POST /garages duplicate service", func(t *testing.T) {
		body := parisGarageBody()
		body["services"] = []map[string]string{
			{"service": "Oil Change", "price": "49.99"},
			{"service": "Oil Change", "price": "59.99"},
		}
		w := suite.makeRequest("POST", "/api/v1/garages", body, ownerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := parseResponse(t, w)
		require.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		details := resp.Error.Details.(map[string]interface{})
		assert.Equal(t, "Duplicate service for this garage.", details["services"].([]interface{})[0])
	})

	var garageID int64
	t.Run("POST /garages", func(t *testing.T) {
		garageID = suite.createGarage(t, ownerToken, parisGarageBody())

		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		g := parseResponse(t, w).Data["garage"].(map[string]interface{})
		assert.Equal(t, "Tower Auto Works", g["name"])
		assert.Equal(t, false, g["is_verified"])

		loc := g["location"].(map[string]interface{})
		assert.InDelta(t, 2.2945, loc["lon"].(float64), 0.0001)
		assert.InDelta(t, 48.8584, loc["lat"].(float64), 0.0001)

		services := g["services_offered"].([]interface{})
		require.Len(t, services, 1)
		entry := services[0].(map[string]interface{})
		assert.Equal(t, "Oil Change", entry["service_name"])
		assert.Equal(t, "49.99", entry["price"])
	})

	t.Run("unverified garage hidden from public", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = suite.makeRequest("GET", "/api/v1/garages", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, parseResponse(t, w).Data["garages"].([]interface{}))
	})

	t.Run("staff sees unverified garages", func(t *testing.T) {
		staff := suite.staffToken(t)

		w := suite.makeRequest("GET", "/api/v1/garages", nil, staff)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseResponse(t, w).Data["garages"].([]interface{}), 1)

		w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, staff)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /users/me/garages", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/users/me/garages", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseResponse(t, w).Data["garages"].([]interface{}), 1)
	})

	t.Run("PUT /garages/:id replaces services", func(t *testing.T) {
		body := map[string]interface{}{
			"services": []map[string]string{
				{"service": "Brake Repair", "price": "120"},
				{"service": "Tire Rotation", "price": "25"},
			},
		}
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/garages/%d", garageID), body, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		g := parseResponse(t, w).Data["garage"].(map[string]interface{})
		services := g["services_offered"].([]interface{})
		assert.Len(t, services, 2)
	})

	t.Run("PUT /garages/:id by non-owner", func(t *testing.T) {
		intruder := suite.register(t, "intruder", "car_owner")
		body := map[string]interface{}{"name": "Hijacked"}

		// The garage is still unverified, so for anyone but the owner it
		// does not exist; writes answer like reads do.
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/garages/%d", garageID), body, intruder)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, intruder)
		assert.Equal(t, http.StatusNotFound, w.Code)

		suite.verifyGarage(t, garageID)

		w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/garages/%d", garageID), body, intruder)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, intruder)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("DELETE /garages/:id", func(t *testing.T) {
		w := suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, ownerToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, ownerToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlow_ProximitySearch(t *testing.T) {
	suite := setupTestSuite(t)
	ownerToken := suite.register(t, "owner", "garage_admin")

	parisID := suite.createGarage(t, ownerToken, parisGarageBody())

	nairobi := parisGarageBody()
	nairobi["name"] = "Nairobi Motors"
	nairobi["address"] = "12 Workshop Lane"
	nairobi["city"] = "Nairobi"
	nairobi["country"] = "Kenya"
	nairobiID := suite.createGarage(t, ownerToken, nairobi)

	suite.verifyGarage(t, parisID)
	suite.verifyGarage(t, nairobiID)

	t.Run("GET /garages?lat&lon sorts by distance", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/garages?lat=48.86&lon=2.35", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		garages := parseResponse(t, w).Data["garages"].([]interface{})
		require.Len(t, garages, 2)

		first := garages[0].(map[string]interface{})
		second := garages[1].(map[string]interface{})
		assert.Equal(t, "Tower Auto Works", first["name"])
		require.NotNil(t, first["distance_km"])
		require.NotNil(t, second["distance_km"])
		assert.Less(t, first["distance_km"].(float64), second["distance_km"].(float64))
		assert.Less(t, first["distance_km"].(float64), 10.0)
	})

	t.Run("malformed coordinates skip the sort", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/garages?lat=abc&lon=2.35", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		garages := parseResponse(t, w).Data["garages"].([]interface{})
		require.Len(t, garages, 2)
		for _, raw := range garages {
			assert.Nil(t, raw.(map[string]interface{})["distance_km"])
		}
	})

	t.Run("GET /garages?city filters case-insensitively", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/garages?city=nairobi", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		garages := parseResponse(t, w).Data["garages"].([]interface{})
		require.Len(t, garages, 1)
		assert.Equal(t, "Nairobi Motors", garages[0].(map[string]interface{})["name"])
	})
}

func TestFlow_Reviews(t *testing.T) {
	suite := setupTestSuite(t)
	ownerToken := suite.register(t, "owner", "garage_admin")
	reviewerToken := suite.register(t, "carol", "car_owner")

	garageID := suite.createGarage(t, ownerToken, parisGarageBody())
	suite.verifyGarage(t, garageID)

	reviewsPath := fmt.Sprintf("/api/v1/garages/%d/reviews", garageID)

	t.Run("POST review without token", func(t *testing.T) {
		body := map[string]interface{}{"rating": 5, "comment": "Great"}
		w := suite.makeRequest("POST", reviewsPath, body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST review", func(t *testing.T) {
		body := map[string]interface{}{"rating": 5, "comment": "Fast and fair"}
		w := suite.makeRequest("POST", reviewsPath, body, reviewerToken)
		require.Equal(t, http.StatusCreated, w.Code, "Body: %s", w.Body.String())

		rv := parseResponse(t, w).Data["review"].(map[string]interface{})
		assert.Equal(t, float64(5), rv["rating"])
		assert.Equal(t, "carol", rv["user"].(map[string]interface{})["username"])
	})

	t.Run("POST review twice is a conflict", func(t *testing.T) {
		body := map[string]interface{}{"rating": 1, "comment": "Changed my mind"}
		w := suite.makeRequest("POST", reviewsPath, body, reviewerToken)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "CONFLICT", parseResponse(t, w).Error.Code)
	})

	t.Run("POST review out-of-range rating", func(t *testing.T) {
		body := map[string]interface{}{"rating": 9, "comment": "Too good"}
		w := suite.makeRequest("POST", reviewsPath, body, reviewerToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET reviews is public", func(t *testing.T) {
		w := suite.makeRequest("GET", reviewsPath, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseResponse(t, w).Data["reviews"].([]interface{}), 1)
	})

	t.Run("average rating shows on the garage", func(t *testing.T) {
		other := suite.register(t, "dave", "car_owner")
		body := map[string]interface{}{"rating": 4, "comment": "Decent"}
		w := suite.makeRequest("POST", reviewsPath, body, other)
		require.Equal(t, http.StatusCreated, w.Code)

		w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/garages/%d", garageID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		g := parseResponse(t, w).Data["garage"].(map[string]interface{})
		assert.Equal(t, 4.5, g["average_rating"].(float64))
	})
}

func TestFlow_Forum(t *testing.T) {
	suite := setupTestSuite(t)
	aliceToken := suite.register(t, "alice", "car_owner")
	bobToken := suite.register(t, "bob", "car_owner")

	var threadID int64
	t.Run("POST /forum/threads", func(t *testing.T) {
		body := map[string]interface{}{"title": "Best oil for old diesels?"}
		w := suite.makeRequest("POST", "/api/v1/forum/threads", body, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, "Body: %s", w.Body.String())

		th := parseResponse(t, w).Data["thread"].(map[string]interface{})
		threadID = int64(th["id"].(float64))
	})

	t.Run("POST thread without token", func(t *testing.T) {
		body := map[string]interface{}{"title": "Anonymous thread"}
		w := suite.makeRequest("POST", "/api/v1/forum/threads", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /forum/threads/:id/posts", func(t *testing.T) {
		body := map[string]interface{}{"content": "Every 100k km for that engine."}
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/forum/threads/%d/posts", threadID), body, bobToken)
		require.Equal(t, http.StatusCreated, w.Code, "Body: %s", w.Body.String())
	})

	t.Run("GET /forum/threads is public", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/forum/threads", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, parseResponse(t, w).Data["threads"].([]interface{}), 1)
	})

	t.Run("GET /forum/threads/:id includes posts", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/forum/threads/%d", threadID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		th := parseResponse(t, w).Data["thread"].(map[string]interface{})
		posts := th["posts"].([]interface{})
		require.Len(t, posts, 1)
		post := posts[0].(map[string]interface{})
		assert.Equal(t, "bob", post["author"].(map[string]interface{})["username"])
	})

	t.Run("only the author edits the thread", func(t *testing.T) {
		body := map[string]interface{}{"title": "Hijacked"}
		w := suite.makeRequest("PUT", fmt.Sprintf("/api/v1/forum/threads/%d", threadID), body, bobToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		body = map[string]interface{}{"title": "Best oil for old diesels? (solved)"}
		w = suite.makeRequest("PUT", fmt.Sprintf("/api/v1/forum/threads/%d", threadID), body, aliceToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DELETE /forum/threads/:id", func(t *testing.T) {
		w := suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/forum/threads/%d", threadID), nil, bobToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = suite.makeRequest("DELETE", fmt.Sprintf("/api/v1/forum/threads/%d", threadID), nil, aliceToken)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/forum/threads/%d", threadID), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlow_PartsCatalog(t *testing.T) {
	suite := setupTestSuite(t)
	ownerToken := suite.register(t, "owner", "garage_admin")

	garageID := suite.createGarage(t, ownerToken, parisGarageBody())
	suite.verifyGarage(t, garageID)

	category := &domain.PartCategory{Name: "Engine Parts", Slug: "engine-parts"}
	require.NoError(t, suite.db.Create(category).Error)

	available := &domain.Part{
		SellerGarageID: garageID,
		CategoryID:     &category.ID,
		Name:           "Oil Filter",
		Price:          9.99,
		Stock:          12,
		IsAvailable:    true,
	}
	require.NoError(t, suite.db.Create(available).Error)

	hidden := &domain.Part{
		SellerGarageID: garageID,
		Name:           "Discontinued Belt",
		Price:          4.50,
	}
	require.NoError(t, suite.db.Create(hidden).Error)
	// The column defaults to true, so the flag has to be flipped explicitly.
	require.NoError(t, suite.db.Model(&domain.Part{}).Where("id = ?", hidden.ID).Update("is_available", false).Error)

	t.Run("GET /parts lists only available parts", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/parts", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		parts := parseResponse(t, w).Data["parts"].([]interface{})
		require.Len(t, parts, 1)

		p := parts[0].(map[string]interface{})
		assert.Equal(t, "Oil Filter", p["name"])
		assert.Equal(t, "9.99", p["price"])
		assert.Equal(t, "Engine Parts", p["category"])
		assert.Equal(t, "Tower Auto Works", p["seller_garage"])
	})

	t.Run("GET /parts/:id", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/parts/%d", available.ID), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /parts/:id for unavailable part", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/parts/%d", hidden.ID), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
