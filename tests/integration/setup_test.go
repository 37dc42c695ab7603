package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stockfolio/internal/handlers"
	"stockfolio/internal/logger"
	"stockfolio/internal/middleware"
	"stockfolio/internal/models"
	"stockfolio/internal/services"
	"stockfolio/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Instrument{},
		&models.Goal{},
		&models.TradeLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	instrumentService := services.NewInstrumentService(db)
	goalService := services.NewGoalService(db)
	tradeService := services.NewTradeService(db)

	// Handlers
	instrumentHandler := handlers.NewInstrumentHandler(instrumentService)
	goalHandler := handlers.NewGoalHandler(goalService)
	tradeHandler := handlers.NewTradeHandler(tradeService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	instruments := router.Group("/instruments")
	instruments.GET("", instrumentHandler.ListInstruments)
	instruments.POST("", instrumentHandler.CreateInstrument)
	instruments.GET("/:id", instrumentHandler.GetInstrument)
	instruments.PUT("/:id", instrumentHandler.UpdateInstrument)
	instruments.DELETE("/:id", instrumentHandler.DeleteInstrument)
	instruments.POST("/:id/buy", tradeHandler.Buy)
	instruments.POST("/:id/sell", tradeHandler.Sell)

	goals := router.Group("/goals")
	goals.GET("", goalHandler.ListGoals)
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	router.GET("/trade-log", tradeHandler.ListTradeLog)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createInstrument creates an instrument through the API and returns its ID.
func (app *testApp) createInstrument(t *testing.T, symbol, name, instrumentType string, price float64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"symbol":%q,"name":%q,"type":%q,"current_price":%v}`, symbol, name, instrumentType, price)
	rec := app.request("POST", "/instruments", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create instrument failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	instrument := result["instrument"].(map[string]interface{})
	return instrument["id"].(float64)
}

// createGoal creates a goal through the API and returns its ID.
func (app *testApp) createGoal(t *testing.T, name string, target float64) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"target_amount":%v}`, name, target)
	rec := app.request("POST", "/goals", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create goal failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	goal := result["goal"].(map[string]interface{})
	return goal["id"].(float64)
}
