package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fixwire/fixterm/dma"
	"github.com/fixwire/fixterm/fix"
	"github.com/fixwire/fixterm/run"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestHandler() (*Handler, *gin.Engine, chan *run.Submission, chan *run.Event) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	submissions := make(chan *run.Submission, 16)
	events := make(chan *run.Event, 16)
	sender := run.NewSender(fix.NewSession("CLIENT1", "SERVER1"), dma.NewClient(), nil, submissions, events)
	h := &Handler{
		address:     "127.0.0.1:9876",
		submissions: submissions,
		sender:      sender,
	}
	h.Bind(router)
	return h, router, submissions, events
}

func TestPostOrder(t *testing.T) {

	_, router, submissions, _ := newTestHandler()

	body := `{
		"side":"BUY",
		"symbol":"AAPL",
		"quantity":"100",
		"price":"150.00"
	}
	`
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, basePath, strings.NewReader(body))
	assert.Nil(t, err)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Result().StatusCode)

	response := struct {
		ClOrdID string `json:"clOrdID"`
	}{}
	err = json.Unmarshal([]byte(w.Body.String()), &response)
	assert.Nil(t, err)
	assert.NotEqual(t, "", response.ClOrdID)

	submission := <-submissions
	assert.Equal(t, "127.0.0.1:9876", submission.Address)
	assert.Equal(t, response.ClOrdID, submission.Ticket.ClOrdID)
	assert.Equal(t, "AAPL", submission.Ticket.Symbol)

}

func TestPostOrderRejections(t *testing.T) {

	_, router, submissions, _ := newTestHandler()

	for _, body := range []string{
		`not json`,
		`{"side":"HOLD","symbol":"AAPL","quantity":"100","price":"150.00"}`,
		`{"side":"BUY","symbol":"AAPL","quantity":"ten","price":"150.00"}`,
		`{"side":"BUY","symbol":"AAPL","quantity":"100","price":"x"}`,
		`{"side":"BUY","symbol":"","quantity":"100","price":"150.00"}`,
		`{"side":"BUY","symbol":"AAPL","quantity":"-1","price":"150.00"}`,
	} {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodPost, basePath, strings.NewReader(body))
		assert.Nil(t, err)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	}
	assert.Equal(t, 0, len(submissions))

}

func TestPostReset(t *testing.T) {

	_, router, _, events := newTestHandler()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, resetPath, nil)
	assert.Nil(t, err)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Result().StatusCode)

	event := <-events
	assert.Equal(t, run.KindInfo, event.Kind)

}
