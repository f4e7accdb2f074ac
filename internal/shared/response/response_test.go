package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nonprofit-cms-backend/internal/shared/response"
)

func record(write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestOKEnvelope(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		response.OK(c, gin.H{"id": "42"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "pagination")
}

func TestPaginatedEnvelope(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		response.Paginated(c, []string{"a", "b"}, 2, &response.Pagination{
			Current: 2, Pages: 3, Total: 25, HasNext: true, HasPrev: true,
		})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])

	pg, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pg["current"])
	assert.Equal(t, float64(3), pg["pages"])
	assert.Equal(t, float64(25), pg["total"])
	assert.Equal(t, true, pg["hasNext"])
	assert.Equal(t, true, pg["hasPrev"])
}

func TestValidationFailedEnvelope(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		response.ValidationFailed(c, "Validation failed", []string{"topic: topic is required"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "topic: topic is required", errs[0])
}

func TestErrorEnvelopeCarriesMessage(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		response.NotFound(c, "Content not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Content not found", body["message"])
	assert.Equal(t, "Content not found", body["error"])
}
