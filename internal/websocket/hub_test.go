package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *gws.Conn {
	t.Helper()
	conn, resp, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_DeliversOnlyToSubscribedEmployee(t *testing.T) {
	hub, url := startHub(t)
	alice, bob := uuid.NewString(), uuid.NewString()

	aliceConn := dial(t, url+"?employee_id="+alice)
	bobConn := dial(t, url+"?employee_id="+bob)
	allConn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 10*time.Millisecond)

	hub.PublishTaxSummary(alice, service.TaxSummaryResponse{
		EmployeeID:    alice,
		FinancialYear: "2025-26",
		Comparison:    service.TaxComparisonResponse{Recommended: "NEW"},
	})

	for _, conn := range []*gws.Conn{aliceConn, allConn} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Type          string                     `json:"type"`
			EmployeeID    string                     `json:"employee_id"`
			FinancialYear string                     `json:"financial_year"`
			Data          service.TaxSummaryResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageTypeTaxSummary, msg.Type)
		assert.Equal(t, alice, msg.EmployeeID)
		assert.Equal(t, "2025-26", msg.FinancialYear)
		assert.Equal(t, "NEW", msg.Data.Comparison.Recommended)
	}

	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := bobConn.ReadMessage()
	assert.Error(t, err)
}

func TestServeWs_RejectsMalformedEmployeeID(t *testing.T) {
	_, url := startHub(t)

	_, resp, err := gws.DefaultDialer.Dial(url+"?employee_id=42", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, url := startHub(t)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}
