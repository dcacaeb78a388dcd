package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"fakejournal-reader/helper"
	"fakejournal-reader/models"
	"fakejournal-reader/repositories"
	"fakejournal-reader/services"
)

// Stub identity collaborator: two known api keys, everything else is an
// unknown key.
var stubUsers = map[string]models.User{
	"key-7": {UserID: 7, UserName: "alice"},
	"key-8": {UserID: 8, UserName: "bob"},
}

type ArticleHandlerTestSuite struct {
	suite.Suite
	db         *gorm.DB
	authServer *httptest.Server
	router     *gin.Engine
}

func (suite *ArticleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	suite.Require().NoError(err)
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.Require().NoError(db.AutoMigrate(
		&models.Article{},
		&models.ArticleData{},
		&models.ArticleSection{},
	))
	suite.db = db

	suite.authServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var props map[string]string
		if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode("BAD_REQUEST")
			return
		}
		user, ok := stubUsers[props["apiKey"]]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode("API_KEY_NONEXISTENT")
			return
		}
		json.NewEncoder(w).Encode(user)
	}))

	logger := zap.NewNop().Sugar()

	articleRepo := repositories.NewArticleRepository(db)
	dataRepo := repositories.NewArticleDataRepository(db)
	sectionRepo := repositories.NewArticleSectionRepository(db)

	authService := services.NewAuthService(services.AuthServiceConfig{BaseURL: suite.authServer.URL}, logger)
	articleService := services.NewArticleService(db, articleRepo, dataRepo, sectionRepo, logger)

	httpHelper := helper.NewHTTPHelper(logger)
	articleHandler := NewArticleHandler(articleService, authService, httpHelper)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		httpHelper.SendAppError(c, models.ErrNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		httpHelper.SendAppError(c, models.ErrMethodNotAllowed)
	})

	public := router.Group("/public")
	{
		public.POST("/article/new", articleHandler.ArticleNew)
		public.POST("/article_data/new", articleHandler.ArticleDataNew)
		public.POST("/article_section/new", articleHandler.ArticleSectionNew)
		public.POST("/article/view", articleHandler.ArticleView)
		public.POST("/article_data/view", articleHandler.ArticleDataView)
		public.POST("/article_section/view", articleHandler.ArticleSectionView)
		public.POST("/article_data/view_public", articleHandler.ArticleDataViewPublic)
		public.POST("/article_section/view_public", articleHandler.ArticleSectionViewPublic)
	}
	suite.router = router
}

func (suite *ArticleHandlerTestSuite) TearDownTest() {
	suite.authServer.Close()
}

func (suite *ArticleHandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ArticleHandlerTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *ArticleHandlerTestSuite) TestEndToEndScenario() {
	// User 7 creates an article with its first revision.
	w := suite.postJSON("/public/article/new", gin.H{
		"title":            "T",
		"durationEstimate": 5,
		"apiKey":           "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var articleData models.ArticleDataResponse
	suite.decode(w, &articleData)
	suite.Equal("T", articleData.Title)
	suite.EqualValues(5, articleData.DurationEstimate)
	suite.True(articleData.Active)
	suite.EqualValues(7, articleData.Article.CreatorUserID)

	// User 7 attaches a section.
	w = suite.postJSON("/public/article_section/new", gin.H{
		"articleId":   articleData.Article.ArticleID,
		"position":    0,
		"sectionText": "body",
		"active":      true,
		"apiKey":      "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// A different user cannot extend it, and cannot tell it exists.
	w = suite.postJSON("/public/article_data/new", gin.H{
		"articleId":        articleData.Article.ArticleID,
		"title":            "hijack",
		"durationEstimate": 5,
		"active":           true,
		"apiKey":           "key-8",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`"ARTICLE_NONEXISTENT"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestDecodeError() {
	req := httptest.NewRequest(http.MethodPost, "/public/article/new", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`"DECODE_ERROR"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestUnauthorized() {
	w := suite.postJSON("/public/article/view", gin.H{
		"apiKey": "no-such-key",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`"UNAUTHORIZED"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestNoRoute() {
	w := suite.postJSON("/public/nope", gin.H{})
	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`"NOT_FOUND"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestNoMethod() {
	req := httptest.NewRequest(http.MethodGet, "/public/article/new", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusMethodNotAllowed, w.Code)
	suite.JSONEq(`"METHOD_NOT_ALLOWED"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestInvalidDuration() {
	w := suite.postJSON("/public/article/new", gin.H{
		"title":            "T",
		"durationEstimate": 0,
		"apiKey":           "key-7",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`"INVALID_DURATION"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestInvalidPosition() {
	w := suite.postJSON("/public/article/new", gin.H{
		"title":            "T",
		"durationEstimate": 5,
		"apiKey":           "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	var articleData models.ArticleDataResponse
	suite.decode(w, &articleData)

	w = suite.postJSON("/public/article_section/new", gin.H{
		"articleId": articleData.Article.ArticleID,
		"position":  -1,
		"apiKey":    "key-7",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`"INVALID_POSITION"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestArticleDataNewAcceptsZeroFields() {
	w := suite.postJSON("/public/article/new", gin.H{
		"title":            "T",
		"durationEstimate": 5,
		"apiKey":           "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	var articleData models.ArticleDataResponse
	suite.decode(w, &articleData)

	// An empty title is valid content, not a malformed request.
	w = suite.postJSON("/public/article_data/new", gin.H{
		"articleId":        articleData.Article.ArticleID,
		"title":            "",
		"durationEstimate": 5,
		"active":           true,
		"apiKey":           "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var revision models.ArticleDataResponse
	suite.decode(w, &revision)
	suite.Equal("", revision.Title)

	// articleId 0 is an ordinary lookup miss, not a decode failure.
	w = suite.postJSON("/public/article_data/new", gin.H{
		"articleId":        0,
		"title":            "T",
		"durationEstimate": 5,
		"active":           true,
		"apiKey":           "key-7",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`"ARTICLE_NONEXISTENT"`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestViewOwnershipScoping() {
	w := suite.postJSON("/public/article/new", gin.H{
		"title":            "mine",
		"durationEstimate": 5,
		"apiKey":           "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.postJSON("/public/article/view", gin.H{
		"apiKey": "key-8",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *ArticleHandlerTestSuite) TestPublicViewNeedsNoKey() {
	w := suite.postJSON("/public/article/new", gin.H{
		"title":            "live",
		"durationEstimate": 5,
		"apiKey":           "key-7",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.postJSON("/public/article_data/view_public", gin.H{})
	suite.Require().Equal(http.StatusOK, w.Code)

	var rows []models.ArticleDataResponse
	suite.decode(w, &rows)
	suite.Require().Len(rows, 1)
	suite.Equal("live", rows[0].Title)
	suite.True(rows[0].Active)
}

func TestArticleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleHandlerTestSuite))
}
