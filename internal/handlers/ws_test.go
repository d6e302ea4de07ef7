package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/atahmasb/trivia-api/internal/models"
	"github.com/atahmasb/trivia-api/internal/ws"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedEvent struct {
	Type string          `json:"type"`
	Data models.Question `json:"data"`
}

func subscribe(t *testing.T, api *testAPI, srv *httptest.Server, category uint) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/questions?category=" + strconv.Itoa(int(category))
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return api.deps.Hub.Subscribers(category) == 1
	}, 2*time.Second, 10*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) feedEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev feedEvent
	require.NoError(t, json.Unmarshal(raw, &ev))
	return ev
}

func TestQuestionFeed(t *testing.T) {
	api := setupAPI(t, nil)
	srv := httptest.NewServer(api.router)
	defer srv.Close()

	science := subscribe(t, api, srv, 1)
	everything := subscribe(t, api, srv, ws.AllCategories)

	resp, err := http.Post(srv.URL+"/questions", "application/json",
		strings.NewReader(`{"question":"What is H2O?","answer":"Water","category":1,"difficulty":1}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, conn := range []*websocket.Conn{science, everything} {
		ev := readEvent(t, conn)
		assert.Equal(t, ws.EventQuestionCreated, ev.Type)
		assert.Equal(t, "What is H2O?", ev.Data.Question)
		assert.EqualValues(t, 1, ev.Data.Category)
	}

	var created models.Question
	require.NoError(t, api.db.First(&created).Error)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/questions/"+strconv.Itoa(int(created.ID)), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ev := readEvent(t, everything)
	assert.Equal(t, ws.EventQuestionDeleted, ev.Type)
	assert.Equal(t, created.ID, ev.Data.ID)
}

func TestQuestionFeedBadCategory(t *testing.T) {
	api := setupAPI(t, nil)
	w := api.do(t, http.MethodGet, "/ws/questions?category=x", nil)
	assertError(t, w, http.StatusBadRequest, "bad request")
}
