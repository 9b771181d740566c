package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"users-api/internal/adapter/db/gormrepo"
	"users-api/internal/adapter/gin/handler"
	"users-api/internal/usecase/user"
	"users-api/pkg/logger"
)

// UserAPITestSuite drives the full router against a real SQLite database.
type UserAPITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router http.Handler
}

func (s *UserAPITestSuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "users.db")
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(5)

	s.Require().NoError(db.AutoMigrate(&gormrepo.UserSchema{}))

	log := zaptest.NewLogger(s.T())
	uc := user.New(gormrepo.NewUserRepo(db, log), log)

	s.db = db
	s.router = SetupRouter(handler.NewUserHandler(uc, log), nil, "users-api", log)
}

func (s *UserAPITestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *UserAPITestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *UserAPITestSuite) listUsers() []handler.UserResponse {
	w := s.do("GET", "/users", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var users []handler.UserResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &users))
	return users
}

func (s *UserAPITestSuite) TestListUsers_EmptyTable() {
	w := s.do("GET", "/users", "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("[]", w.Body.String())
	s.NotEmpty(w.Header().Get(logger.RequestIDHeader))
}

func (s *UserAPITestSuite) TestCreateThenList() {
	w := s.do("POST", "/users", `{"name":"Ann","email":"ann@x.com"}`)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"message":"User created successfully"}`, w.Body.String())

	users := s.listUsers()
	s.Require().Len(users, 1)
	s.Equal("Ann", users[0].Name)
	s.Equal("ann@x.com", users[0].Email)
	s.Positive(users[0].ID)
}

func (s *UserAPITestSuite) TestCreate_MissingFieldNeverInserts() {
	for _, body := range []string{
		`{"email":"ann@x.com"}`,
		`{"name":"Ann"}`,
		`{}`,
		`not json`,
		`{"NAME":"Ann","Email":"ann@x.com"}`,
		`{"NAME":"Ann","EMAIL":"ann@x.com"}`,
	} {
		w := s.do("POST", "/users", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
	}

	s.Empty(s.listUsers())
}

func (s *UserAPITestSuite) TestCreate_IDsAreNeverReused() {
	seen := map[uint64]bool{}
	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"name":"user%d","email":"user%d@x.com"}`, i, i)
		s.Require().Equal(http.StatusOK, s.do("POST", "/users", body).Code)
	}

	for _, u := range s.listUsers() {
		s.False(seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
	s.Len(seen, 3)
}

func (s *UserAPITestSuite) TestConcurrentCreates() {
	const workers = 5

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			body, _ := json.Marshal(map[string]string{
				"name":  fmt.Sprintf("worker-%d", i),
				"email": fmt.Sprintf("worker-%d@x.com", i),
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			s.router.ServeHTTP(w, req)

			var res handler.ResultResponse
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("worker %d: %s", i, res.Message)
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	ids := map[uint64]string{}
	for _, u := range s.listUsers() {
		ids[u.ID] = u.Email
	}
	s.Len(ids, workers)
}

func (s *UserAPITestSuite) TestSeveredDatabase() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	w := s.do("GET", "/users", "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("[]", w.Body.String())

	w = s.do("POST", "/users", `{"name":"Ann","email":"ann@x.com"}`)
	s.Equal(http.StatusOK, w.Code)

	var res handler.ResultResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	s.False(res.Success)
	s.True(strings.HasPrefix(res.Message, "Failed to create user: "), res.Message)
}

func (s *UserAPITestSuite) TestHealth() {
	w := s.do("GET", "/health", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"healthy","service":"users-api"}`, w.Body.String())
}

func TestUserAPITestSuite(t *testing.T) {
	suite.Run(t, new(UserAPITestSuite))
}
