package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "stockfolio/internal/errors"
	"stockfolio/internal/models"
	"stockfolio/internal/pagination"
	"stockfolio/internal/services"
	"stockfolio/internal/validator"
)

// --- mock instrument service ---

type mockInstrumentService struct {
	createInstrumentFn  func(symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error)
	listInstrumentsFn   func(page pagination.PageRequest) (*pagination.PageResponse[models.Instrument], error)
	getInstrumentByIDFn func(id uint) (*models.Instrument, error)
	updateInstrumentFn  func(id uint, symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error)
	deleteInstrumentFn  func(id uint, cascade bool) error
}

func (m *mockInstrumentService) CreateInstrument(symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error) {
	if m.createInstrumentFn != nil {
		return m.createInstrumentFn(symbol, name, instrumentType, price)
	}
	return &models.Instrument{}, nil
}

func (m *mockInstrumentService) ListInstruments(page pagination.PageRequest) (*pagination.PageResponse[models.Instrument], error) {
	if m.listInstrumentsFn != nil {
		return m.listInstrumentsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Instrument{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockInstrumentService) GetInstrumentByID(id uint) (*models.Instrument, error) {
	if m.getInstrumentByIDFn != nil {
		return m.getInstrumentByIDFn(id)
	}
	return &models.Instrument{}, nil
}

func (m *mockInstrumentService) UpdateInstrument(id uint, symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error) {
	if m.updateInstrumentFn != nil {
		return m.updateInstrumentFn(id, symbol, name, instrumentType, price)
	}
	return &models.Instrument{}, nil
}

func (m *mockInstrumentService) DeleteInstrument(id uint, cascade bool) error {
	if m.deleteInstrumentFn != nil {
		return m.deleteInstrumentFn(id, cascade)
	}
	return nil
}

var _ services.InstrumentServicer = (*mockInstrumentService)(nil)

var errDatabaseDown = errors.New("dial tcp 127.0.0.1:5432: connection refused")

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupInstrumentRouter(handler *InstrumentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/instruments", handler.ListInstruments)
	r.POST("/instruments", handler.CreateInstrument)
	r.GET("/instruments/:id", handler.GetInstrument)
	r.PUT("/instruments/:id", handler.UpdateInstrument)
	r.DELETE("/instruments/:id", handler.DeleteInstrument)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestInstrumentHandler_CreateInstrument(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockInstrumentService{
			createInstrumentFn: func(symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error) {
				return &models.Instrument{
					ID:           1,
					Symbol:       symbol,
					Name:         name,
					Type:         instrumentType,
					CurrentPrice: price,
				}, nil
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "POST", "/instruments",
			`{"symbol":"XYZ","name":"XYZ Corp","type":"STOCK","current_price":100.00}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		instrument := result["instrument"].(map[string]interface{})
		if instrument["symbol"] != "XYZ" {
			t.Errorf("expected XYZ, got %v", instrument["symbol"])
		}
		if instrument["current_price"] != 100.0 {
			t.Errorf("expected numeric price 100, got %v", instrument["current_price"])
		}
	})

	t.Run("returns 400 on missing symbol", func(t *testing.T) {
		r := setupInstrumentRouter(NewInstrumentHandler(&mockInstrumentService{}))

		rec := doRequest(r, "POST", "/instruments",
			`{"name":"XYZ Corp","type":"STOCK","current_price":100.00}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupInstrumentRouter(NewInstrumentHandler(&mockInstrumentService{}))

		rec := doRequest(r, "POST", "/instruments",
			`{"symbol":"XYZ","name":"XYZ Corp","type":"BOND","current_price":100.00}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on non-positive price", func(t *testing.T) {
		r := setupInstrumentRouter(NewInstrumentHandler(&mockInstrumentService{}))

		rec := doRequest(r, "POST", "/instruments",
			`{"symbol":"XYZ","name":"XYZ Corp","type":"STOCK","current_price":-1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on duplicate symbol", func(t *testing.T) {
		svc := &mockInstrumentService{
			createInstrumentFn: func(_, _ string, _ models.InstrumentType, _ decimal.Decimal) (*models.Instrument, error) {
				return nil, apperrors.ErrDuplicateSymbol
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "POST", "/instruments",
			`{"symbol":"XYZ","name":"XYZ Corp","type":"STOCK","current_price":100.00}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_SYMBOL")
	})
}

func TestInstrumentHandler_GetInstrument(t *testing.T) {
	t.Run("returns 200 with instrument", func(t *testing.T) {
		svc := &mockInstrumentService{
			getInstrumentByIDFn: func(id uint) (*models.Instrument, error) {
				return &models.Instrument{ID: id, Symbol: "XYZ", Type: models.InstrumentTypeStock}, nil
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "GET", "/instruments/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when absent", func(t *testing.T) {
		svc := &mockInstrumentService{
			getInstrumentByIDFn: func(uint) (*models.Instrument, error) {
				return nil, apperrors.ErrInstrumentNotFound
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "GET", "/instruments/99999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSTRUMENT_NOT_FOUND")
	})

	t.Run("returns 400 on non-numeric id", func(t *testing.T) {
		r := setupInstrumentRouter(NewInstrumentHandler(&mockInstrumentService{}))

		rec := doRequest(r, "GET", "/instruments/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestInstrumentHandler_UpdateInstrument(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockInstrumentService{
			updateInstrumentFn: func(id uint, symbol, name string, instrumentType models.InstrumentType, price decimal.Decimal) (*models.Instrument, error) {
				return &models.Instrument{ID: id, Symbol: symbol, Name: name, Type: instrumentType, CurrentPrice: price}, nil
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "PUT", "/instruments/1",
			`{"symbol":"GLD","name":"Gold","type":"GOLD","current_price":55.25}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		r := setupInstrumentRouter(NewInstrumentHandler(&mockInstrumentService{}))

		rec := doRequest(r, "PUT", "/instruments/1", `{"symbol":"GLD"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestInstrumentHandler_DeleteInstrument(t *testing.T) {
	t.Run("passes cascade=true to the service", func(t *testing.T) {
		var gotCascade bool
		svc := &mockInstrumentService{
			deleteInstrumentFn: func(_ uint, cascade bool) error {
				gotCascade = cascade
				return nil
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "DELETE", "/instruments/1?cascade=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotCascade {
			t.Error("expected cascade flag to reach the service")
		}
	})

	t.Run("defaults cascade to false", func(t *testing.T) {
		var gotCascade bool
		svc := &mockInstrumentService{
			deleteInstrumentFn: func(_ uint, cascade bool) error {
				gotCascade = cascade
				return nil
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "DELETE", "/instruments/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotCascade {
			t.Error("expected cascade to default to false")
		}
	})

	t.Run("returns 400 when blocked by trade history", func(t *testing.T) {
		svc := &mockInstrumentService{
			deleteInstrumentFn: func(uint, bool) error {
				return apperrors.ErrInstrumentHasTrades
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "DELETE", "/instruments/1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSTRUMENT_HAS_TRADES")
	})

	t.Run("returns 400 on invalid cascade flag", func(t *testing.T) {
		r := setupInstrumentRouter(NewInstrumentHandler(&mockInstrumentService{}))

		rec := doRequest(r, "DELETE", "/instruments/1?cascade=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestInstrumentHandler_ListInstruments(t *testing.T) {
	t.Run("returns 500 with underlying message on store failure", func(t *testing.T) {
		svc := &mockInstrumentService{
			listInstrumentsFn: func(pagination.PageRequest) (*pagination.PageResponse[models.Instrument], error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, errDatabaseDown)
			},
		}
		r := setupInstrumentRouter(NewInstrumentHandler(svc))

		rec := doRequest(r, "GET", "/instruments", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		errObj := result["error"].(map[string]interface{})
		if errObj["message"] != errDatabaseDown.Error() {
			t.Errorf("expected underlying message surfaced, got %v", errObj["message"])
		}
	})
}
