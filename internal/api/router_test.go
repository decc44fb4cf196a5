package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turnos/queue-service/internal/api/handler/turn"
	"turnos/queue-service/internal/api/middleware"
	"turnos/queue-service/internal/config"
	"turnos/queue-service/internal/constant"
	"turnos/queue-service/internal/domain"
	"turnos/queue-service/internal/queue"
	"turnos/queue-service/internal/repository"
	turnService "turnos/queue-service/internal/service/turn"
	"turnos/queue-service/internal/worker"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type serveNextBody struct {
	Message string        `json:"message"`
	Turn    *domain.Turn  `json:"turn"`
	Pending []domain.Turn `json:"pending"`
}

func newTestServer(t *testing.T, rl *middleware.RateLimitMiddleware) http.Handler {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := turnService.NewTurnService(
		queue.NewStore(),
		worker.NopPublisher{},
		repository.NewMemoryStatsRepository(),
		logger,
	)

	server := New(config.TestEnv, logger)
	server.SetupAPIRoutes(turn.New(svc), rl)
	return server.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeTurn(t *testing.T, w *httptest.ResponseRecorder) domain.Turn {
	t.Helper()

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created domain.Turn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func submit(t *testing.T, h http.Handler, name, procedure, priority string) domain.Turn {
	t.Helper()

	return decodeTurn(t, do(t, h, http.MethodPost, "/turnos", map[string]string{
		"name":      name,
		"procedure": procedure,
		"priority":  priority,
	}))
}

func listPending(t *testing.T, h http.Handler, path string) []domain.Turn {
	t.Helper()

	w := do(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pending []domain.Turn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	return pending
}

func serveNext(t *testing.T, h http.Handler) serveNextBody {
	t.Helper()

	w := do(t, h, http.MethodGet, "/turnos/siguiente", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body serveNextBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmit_CreatesTurn(t *testing.T) {
	h := newTestServer(t, nil)

	created := submit(t, h, "Ana", "dni", "urgent")
	require.EqualValues(t, 1, created.ID)
	require.Equal(t, "Ana", created.Name)
	require.Equal(t, domain.PriorityUrgent, created.Priority)
	require.False(t, created.SubmittedAt.IsZero())

	other := submit(t, h, "Bea", "dni", "whatever")
	require.EqualValues(t, 2, other.ID)
	require.Equal(t, domain.PriorityNormal, other.Priority)
}

func TestSubmit_MissingPriorityIsNormal(t *testing.T) {
	h := newTestServer(t, nil)

	created := decodeTurn(t, do(t, h, http.MethodPost, "/turnos", `{"name":"Ana","procedure":"dni"}`))
	require.Equal(t, domain.PriorityNormal, created.Priority)
}

func TestSubmit_NonStringPriorityIsNormal(t *testing.T) {
	h := newTestServer(t, nil)

	for _, raw := range []string{`1`, `true`, `null`, `{"level":"urgent"}`, `["urgent"]`} {
		t.Run(raw, func(t *testing.T) {
			body := `{"name":"Ana","procedure":"dni","priority":` + raw + `}`
			created := decodeTurn(t, do(t, h, http.MethodPost, "/turnos", body))
			require.Equal(t, domain.PriorityNormal, created.Priority)
		})
	}

	require.Len(t, listPending(t, h, "/turnos"), 5)
}

func TestSubmit_Rejections(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"procedure":"dni"}`},
		{"blank procedure", `{"name":"Ana","procedure":"  "}`},
		{"malformed json", `{"name":`},
		{"non-string name", `{"name":1,"procedure":"dni"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/turnos", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotEmpty(t, body["error"])
		})
	}

	w := do(t, h, http.MethodGet, "/turnos", nil)
	require.Equal(t, "[]", w.Body.String(), "rejected submissions must not be queued")
}

func TestServeNext_EmptyQueue(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(t, h, http.MethodGet, "/turnos/siguiente", nil)
	require.Equal(t, http.StatusOK, w.Code)

	want := `{"message":"` + constant.NoTurnsMessage + `","turn":null,"pending":[]}`
	require.Equal(t, want, w.Body.String())
}

func TestServeNext_RecentUrgentJumpsLine(t *testing.T) {
	h := newTestServer(t, nil)

	submit(t, h, "A1", "x", "normal")
	submit(t, h, "A2", "x", "normal")
	submit(t, h, "A3", "x", "normal")
	submit(t, h, "D", "w", "urgent")

	body := serveNext(t, h)
	require.Equal(t, constant.ServeMessage, body.Message)
	require.NotNil(t, body.Turn)
	require.Equal(t, "D", body.Turn.Name)
	require.Len(t, body.Pending, 3)
	require.Equal(t, "A1", body.Pending[0].Name)
	require.Equal(t, "A3", body.Pending[2].Name)
}

func TestServeNext_CalmQueueIsFIFO(t *testing.T) {
	h := newTestServer(t, nil)

	submit(t, h, "A", "x", "normal")
	submit(t, h, "B", "y", "normal")
	submit(t, h, "C", "z", "normal")

	body := serveNext(t, h)
	require.NotNil(t, body.Turn)
	require.Equal(t, "A", body.Turn.Name)

	pending := listPending(t, h, "/turnos")
	require.Len(t, pending, 2)
	require.Equal(t, "B", pending[0].Name)
	require.Equal(t, "C", pending[1].Name)
}

func TestListPending_Paging(t *testing.T) {
	h := newTestServer(t, nil)
	for _, n := range []string{"a", "b", "c"} {
		submit(t, h, n, "x", "normal")
	}

	pending := listPending(t, h, "/turnos?page=2&page_size=2")
	require.Len(t, pending, 1)
	require.Equal(t, "c", pending[0].Name)
}

func TestListPending_PageOutOfRange(t *testing.T) {
	h := newTestServer(t, nil)
	submit(t, h, "a", "x", "normal")

	for _, path := range []string{
		"/turnos?page=4611686018427387904&page_size=4",
		"/turnos?page=2&page_size=9223372036854775807",
		"/turnos?page=99999999999999999999999&page_size=1",
	} {
		w := do(t, h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
	}

	require.Empty(t, listPending(t, h, "/turnos?page=4611686018427387904&page_size=4"))
	require.Empty(t, listPending(t, h, "/turnos?page=2&page_size=9223372036854775807"))
	// unparsable page falls back to the first one
	require.Len(t, listPending(t, h, "/turnos?page=99999999999999999999999&page_size=1"), 1)
}

func TestStats_CountsSubmittedAndServed(t *testing.T) {
	h := newTestServer(t, nil)
	submit(t, h, "a", "x", "urgent")
	submit(t, h, "b", "x", "normal")
	serveNext(t, h)

	w := do(t, h, http.MethodGet, "/turnos/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data    domain.QueueStats `json:"data"`
		Pending int               `json:"pending"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.EqualValues(t, 2, body.Data.Submitted.Total())
	require.EqualValues(t, 1, body.Data.Served.Urgent)
	require.Equal(t, 1, body.Pending)
}

func TestSubmit_RateLimited(t *testing.T) {
	h := newTestServer(t, middleware.NewRateLimitMiddleware(0.01, 1, time.Minute))

	submit(t, h, "a", "x", "normal")

	w := do(t, h, http.MethodPost, "/turnos", `{"name":"b","procedure":"x"}`)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// reads are never limited
	require.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/turnos", nil).Code)
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)

	w := do(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
