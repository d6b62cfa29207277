package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmlab/suppository-service/internal/domain/dto"
	"github.com/pharmlab/suppository-service/internal/i18n"
)

func testContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := testContext(`{}`)
	c.Set("request_id", "req-42")

	NewResponseBuilder(c).SuccessOK(map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-42", resp.RequestID)
	assert.NotZero(t, resp.Timestamp)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "world", data["hello"])
}

func TestResponseBuilder_Error(t *testing.T) {
	t.Run("translated message", func(t *testing.T) {
		c, w := testContext(`{}`)

		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_request", resp.Error)
		assert.Equal(t, "Invalid request body", resp.Message)
	})

	t.Run("custom message", func(t *testing.T) {
		c, w := testContext(`{}`)

		NewResponseBuilder(c).ErrorWithMessage(http.StatusUnauthorized, "nope", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unauthorized", resp.Error)
		assert.Equal(t, "nope", resp.Message)
	})
}

func TestRequestBuilder_Bind(t *testing.T) {
	c, _ := testContext(`{"text": "N=1"}`)

	var req dto.ParseFormulationRequest
	require.NoError(t, NewRequestBuilder(c).Bind(&req))
	assert.Equal(t, "N=1", req.Text)
}

func TestBuildRequestAndValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		c, _ := testContext(`{"count": 1, "blank_weight_g": 2.0, "base_density": 1.0}`)

		req, err := BuildRequestAndValidate[dto.CalculateBaseRequest](c)
		require.NoError(t, err)
		assert.Equal(t, 1, req.Count)
	})

	t.Run("validation failure surfaces", func(t *testing.T) {
		c, _ := testContext(`{"count": 1, "blank_weight_g": 2.0}`)

		_, err := BuildRequestAndValidate[dto.CalculateBaseRequest](c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_density")
	})
}

func TestUnmarshalHelpers(t *testing.T) {
	payload := `{"text": "N=1", "include_steps": true}`

	fromReader, err := UnmarshalFromReader[dto.ParseFormulationRequest](strings.NewReader(payload))
	require.NoError(t, err)
	assert.True(t, fromReader.IncludeSteps)

	fromBytes, err := UnmarshalFromBytes[dto.ParseFormulationRequest]([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "N=1", fromBytes.Text)

	_, err = UnmarshalFromBytes[dto.ParseFormulationRequest]([]byte(`{`))
	assert.Error(t, err)
}
