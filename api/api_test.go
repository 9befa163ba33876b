package api

import (
	"fmt"
	"net/http/httptest"
	"taxharvest/internal/domain"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func Test_isNoDataErr(t *testing.T) {
	require.True(t, isNoDataErr(domain.ErrNoPositions))
	require.True(t, isNoDataErr(domain.ErrNoTransactions))
	require.True(t, isNoDataErr(domain.ErrNoHoldings))
	require.True(t, isNoDataErr(fmt.Errorf("wrapped: %w", domain.ErrNoHoldings)))
	require.False(t, isNoDataErr(fmt.Errorf("db unavailable")))
}

func Test_returnServiceErrorJson(t *testing.T) {
	gin.SetMode(gin.TestMode)

	statusFor := func(err error) int {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/", nil)
		returnServiceErrorJson(err, c)
		return w.Code
	}

	require.Equal(t, 404, statusFor(domain.ErrNoTransactions))
	require.Equal(t, 400, statusFor(fmt.Errorf("invalid tax year 9999: %w", domain.ErrInvalidArguments)))
	require.Equal(t, 500, statusFor(fmt.Errorf("db unavailable")))
}
