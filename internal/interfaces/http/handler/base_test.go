package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karobar/backoffice/internal/domain/shared"
	"github.com/karobar/backoffice/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleErrorMapsDomainCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        shared.NewNotFoundError("Client", 42),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "validation",
			err:        shared.NewValidationError("month must be between 1 and 12"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION",
		},
		{
			name:       "business rule",
			err:        shared.NewBusinessRuleError("staff member is not paid per work"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "BUSINESS_RULE",
		},
		{
			name:       "data integrity",
			err:        shared.NewDataIntegrityError("row violates storage invariant"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATA_INTEGRITY",
		},
		{
			name:       "unknown error stays opaque",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h BaseHandler
			r := gin.New()
			r.GET("/boom", func(c *gin.Context) {
				h.HandleError(c, tt.err)
			})

			w := performRequest(r, http.MethodGet, "/boom")
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleErrorLeavesInternalMessageOpaque(t *testing.T) {
	var h BaseHandler
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		h.HandleError(c, errors.New("password=hunter2 dial failed"))
	})

	w := performRequest(r, http.MethodGet, "/boom")

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "hunter2")
}

func TestParseIDParam(t *testing.T) {
	var h BaseHandler
	r := gin.New()
	r.GET("/things/:id", func(c *gin.Context) {
		id, err := parseIDParam(c)
		if err != nil {
			h.BadRequest(c, err.Error())
			return
		}
		h.Success(c, gin.H{"id": id})
	})

	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodGet, "/things/7").Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/things/abc").Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/things/0").Code)
	assert.Equal(t, http.StatusBadRequest, performRequest(r, http.MethodGet, "/things/-3").Code)
}

func TestSuccessEnvelope(t *testing.T) {
	var h BaseHandler
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) {
		h.Success(c, gin.H{"value": 1})
	})

	w := performRequest(r, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}
