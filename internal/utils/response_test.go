package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"unistay/internal/apperrors"

	"github.com/gin-gonic/gin"
)

func TestServiceErrorResponseStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", fmt.Errorf("room: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"conflict", fmt.Errorf("duplicate: %w", apperrors.ErrConflict), http.StatusConflict},
		{"validation", fmt.Errorf("bad rating: %w", apperrors.ErrValidation), http.StatusBadRequest},
		{"driver unavailable", fmt.Errorf("busy: %w", apperrors.ErrDriverUnavailable), http.StatusBadRequest},
		{"ride full", fmt.Errorf("full: %w", apperrors.ErrRideFull), http.StatusBadRequest},
		{"already joined", fmt.Errorf("dup join: %w", apperrors.ErrAlreadyJoined), http.StatusBadRequest},
		{"external service", fmt.Errorf("maps: %w", apperrors.ErrExternalService), http.StatusInternalServerError},
		{"config", fmt.Errorf("no key: %w", apperrors.ErrConfig), http.StatusInternalServerError},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ServiceErrorResponse(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestPaginationParamClamping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantOrder    string
	}{
		{"defaults", "", 1, DefaultPageSize, "desc"},
		{"negative page", "page=-3", 1, DefaultPageSize, "desc"},
		{"oversized page size", "page_size=5000", 1, MaxPageSize, "desc"},
		{"zero page size", "page_size=0", 1, MinPageSize, "desc"},
		{"bad order falls back", "order=sideways", 1, DefaultPageSize, "desc"},
		{"explicit asc", "page=2&page_size=10&order=asc", 2, 10, "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			params := GetPaginationParams(c)
			if params.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", params.Page, tt.wantPage)
			}
			if params.PageSize != tt.wantPageSize {
				t.Errorf("page size = %d, want %d", params.PageSize, tt.wantPageSize)
			}
			if params.Order != tt.wantOrder {
				t.Errorf("order = %q, want %q", params.Order, tt.wantOrder)
			}
		})
	}
}
