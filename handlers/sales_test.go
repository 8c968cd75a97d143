package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	salesRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/services/permission"
	"github.com/Martial4034/gigi-sales-leaderboard/services/sales"
)

// scriptedSalesService returns a fixed error from every mutation.
type scriptedSalesService struct {
	err error
}

func (s *scriptedSalesService) UpdateSale(ctx context.Context, callerEmail, vendorID string, req models.UpdateSaleRequest) error {
	return s.err
}

func (s *scriptedSalesService) DeleteSale(ctx context.Context, callerEmail, vendorID string, req models.DeleteSaleRequest) error {
	return s.err
}

func (s *scriptedSalesService) VendorSales(ctx context.Context, vendorID, challenge string) ([]models.SaleRecord, models.VendorTotals, error) {
	return nil, models.VendorTotals{}, s.err
}

func (s *scriptedSalesService) AvailableChallenges(ctx context.Context) ([]string, error) {
	return nil, s.err
}

func newUpdateRequest(t *testing.T) *http.Request {
	t.Helper()
	body, err := json.Marshal(models.UpdateSaleRequest{
		Challenge: "challenge1",
		Timestamp: models.SaleTimestamp{Seconds: 1720180380, Nanoseconds: 123},
		Updates:   models.SaleUpdates{},
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/vendeur/v2/update-sale", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performUpdate(t *testing.T, svcErr error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewSalesHandler(&scriptedSalesService{err: svcErr})
	router := gin.New()
	router.POST("/api/vendeur/:id/update-sale", h.UpdateSaleHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUpdateRequest(t))
	return w
}

func TestUpdateSaleHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"validation", sales.ValidationError{Field: "BotMode", Reason: "must be FU or OCC"}, http.StatusBadRequest},
		{"unauthenticated", permission.ErrUnauthenticated, http.StatusUnauthorized},
		{"caller unrecognized", permission.ErrCallerUnrecognized, http.StatusForbidden},
		{"forbidden", permission.ErrForbidden, http.StatusForbidden},
		{"mapping unavailable", permission.ErrMappingUnavailable, http.StatusNotFound},
		{"vendor unknown", permission.ErrTargetVendorUnknown, http.StatusNotFound},
		{"record not found", salesRepo.ErrRecordNotFound, http.StatusNotFound},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performUpdate(t, tc.err)
			assert.Equal(t, tc.status, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.err == nil {
				assert.Equal(t, true, body["success"])
				assert.NotEmpty(t, body["message"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestUpdateSaleHandler_MalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSalesHandler(&scriptedSalesService{})
	router := gin.New()
	router.POST("/api/vendeur/:id/update-sale", h.UpdateSaleHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/vendeur/v2/update-sale", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSaleHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSalesHandler(&scriptedSalesService{})
	router := gin.New()
	router.DELETE("/api/vendeur/:id/delete-sale", h.DeleteSaleHandler)

	body, err := json.Marshal(models.DeleteSaleRequest{
		Challenge: "challenge1",
		Timestamp: models.SaleTimestamp{Seconds: 1720180380, Nanoseconds: 123},
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodDelete, "/api/vendeur/v2/delete-sale", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vente supprimée avec succès")
}
