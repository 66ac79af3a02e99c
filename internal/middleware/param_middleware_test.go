package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	var captured uuid.UUID
	router.GET("/quizzes/:quizID", ExtractUUIDParam("quizID", "quizID"), func(c *gin.Context) {
		id, ok := GetUUID(c, "quizID")
		require.True(t, ok)
		captured = id
		c.Status(http.StatusOK)
	})

	id := uuid.New()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/quizzes/"+id.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, captured)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/quizzes/not-a-uuid", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/submissions/:submissionID", ExtractUintParam("submissionID", "submissionID"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetUint("submissionID")})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())

	for _, bad := range []string{"0", "-3", "abc"} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}
