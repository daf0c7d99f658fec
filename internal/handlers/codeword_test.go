package handlers

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/codeword/internal/repository"
)

type memoryStore struct {
	mu   sync.Mutex
	rows []*repository.Codeword
}

func (s *memoryStore) CreateCodeword(
	ctx context.Context, params repository.CreateCodewordParams,
) (*repository.Codeword, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := sha256.Sum256(params.Source)
	for _, row := range s.rows {
		if bytes.Equal(row.SourceSha256, sum[:]) &&
			row.Seed == int64(params.Seed) && row.HideChance == params.HideChance &&
			row.Title == params.Codeword.Title {
			return row, nil
		}
	}
	state, err := repository.EncodeState(params.Codeword)
	if err != nil {
		return nil, err
	}
	row := &repository.Codeword{
		CodewordId:   int64(len(s.rows) + 1),
		Title:        params.Codeword.Title,
		SourceSha256: sum[:],
		Seed:         int64(params.Seed),
		HideChance:   params.HideChance,
		Width:        int32(params.Codeword.Width),
		Height:       int32(params.Codeword.Height),
		State:        state,
		CreatedAt:    pgtype.Timestamptz{Time: time.UnixMilli(1700000000000), Valid: true},
	}
	s.rows = append(s.rows, row)
	return row, nil
}

func (s *memoryStore) FetchCodeword(ctx context.Context, codewordId int64) (*repository.Codeword, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if codewordId < 1 || codewordId > int64(len(s.rows)) {
		return nil, repository.ErrNotFound
	}
	return s.rows[codewordId-1], nil
}

// saveFile writes a square grid in the Qxw record format; '#' is a blocked
// square.
func saveFile(title string, rows ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#QXW2v6 http://www.quinapalus.com\nGP 0 %d %d 0 0 0\n", len(rows[0]), len(rows))
	fmt.Fprintf(&b, "TTL\n+%s\n", title)
	for y, row := range rows {
		for x, c := range row {
			blocked := 0
			if c == '#' {
				blocked = 1
			}
			fmt.Fprintf(&b, "SQ %d %d 0 0 %d\n", x, y, blocked)
		}
	}
	for y, row := range rows {
		for x, c := range row {
			if c != '#' {
				fmt.Fprintf(&b, "SQCT %d %d 0 \"%c\"\n", x, y, c)
			}
		}
	}
	b.WriteString("END\n")
	return b.String()
}

var pets = saveFile("Pets", "CAT", "A#O", "BOW")

func newTestServer() (http.Handler, *memoryStore) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := &memoryStore{}
	h := NewCodewordHandler(log, store, 0.5)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/codeword", h.Create)
	mux.HandleFunc("GET /v1/codeword/{id}", h.Fetch)
	mux.HandleFunc("GET /v1/codeword/{id}/html", h.FetchHTML)
	mux.HandleFunc("GET /v1/status", Status)
	return mux, store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func decodeDTO(t *testing.T, rec *httptest.ResponseRecorder) CodewordDTO {
	t.Helper()
	var dto CodewordDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto), rec.Body.String())
	return dto
}

func TestCreateCodeword(t *testing.T) {
	h, _ := newTestServer()

	rec := do(t, h, http.MethodPost, "/v1/codeword?seed=7", pets)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	dto := decodeDTO(t, rec)
	assert.Equal(t, "1", dto.CodewordId)
	assert.Equal(t, "Pets", dto.Title)
	assert.Equal(t, "7", dto.Seed)
	assert.Equal(t, 0.5, dto.HideChance)
	assert.Equal(t, 3, dto.Width)
	assert.Equal(t, []string{"BOW", "CAB", "CAT", "TOW"}, dto.Solution)
	assert.Len(t, dto.Words, 4)
	assert.Len(t, dto.Codex, 26)
	assert.NotEmpty(t, dto.Reveal)
	assert.Equal(t, int64(1700000000000), dto.CreatedAt)
}

func TestCreateCodewordIsReproducible(t *testing.T) {
	h, store := newTestServer()

	first := decodeDTO(t, do(t, h, http.MethodPost, "/v1/codeword?seed=11&hide_chance=1", pets))
	second := decodeDTO(t, do(t, h, http.MethodPost, "/v1/codeword?seed=11&hide_chance=1", pets))

	assert.Equal(t, first, second)
	assert.Len(t, store.rows, 1)
}

func TestCreateCodewordTitleIsPartOfKey(t *testing.T) {
	h, store := newTestServer()

	first := decodeDTO(t, do(t, h, http.MethodPost, "/v1/codeword?seed=1&title=A", pets))
	second := decodeDTO(t, do(t, h, http.MethodPost, "/v1/codeword?seed=1&title=B", pets))

	assert.Equal(t, "A", first.Title)
	assert.Equal(t, "B", second.Title)
	assert.NotEqual(t, first.CodewordId, second.CodewordId)
	assert.Len(t, store.rows, 2)

	for _, created := range []CodewordDTO{first, second} {
		rec := do(t, h, http.MethodGet, "/v1/codeword/"+created.CodewordId, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decodeDTO(t, rec))
	}
}

func TestCreateCodewordEchoesStoredRow(t *testing.T) {
	h, store := newTestServer()
	do(t, h, http.MethodPost, "/v1/codeword?seed=1&title=A", pets)

	// a stored row for the same key wins over the freshly derived puzzle
	stored, err := store.rows[0].DecodeState()
	require.NoError(t, err)
	stored.HiddenLetters = "STORED"
	store.rows[0].State, err = repository.EncodeState(stored)
	require.NoError(t, err)

	rec := do(t, h, http.MethodPost, "/v1/codeword?seed=1&title=A", pets)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "STORED", decodeDTO(t, rec).HiddenLetters)
}

func TestCreateCodewordOptions(t *testing.T) {
	h, _ := newTestServer()

	rec := do(t, h, http.MethodPost, "/v1/codeword?title=Animals&hide_chance=0&unknown=1", pets)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	dto := decodeDTO(t, rec)
	assert.Equal(t, "Animals", dto.Title)
	assert.Equal(t, 0.0, dto.HideChance)
	assert.NotEmpty(t, dto.Seed)
}

func TestCreateCodewordErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"bad seed", "/v1/codeword?seed=minus", pets, http.StatusBadRequest},
		{"malformed record", "/v1/codeword", "SQCT 0 0 0 \"A\"\n", http.StatusBadRequest},
		{"oversized grid", "/v1/codeword", "GP 0 2000000000 2000000000 0 0 0\n", http.StatusBadRequest},
		{"no geometry", "/v1/codeword", "TTL\n+Empty\n", http.StatusUnprocessableEntity},
		{"no open squares", "/v1/codeword", saveFile("Dark", "##"), http.StatusUnprocessableEntity},
		{"hide chance out of range", "/v1/codeword?hide_chance=2", pets, http.StatusUnprocessableEntity},
		{"too large", "/v1/codeword", pets + strings.Repeat("#", maxSaveFileSize), http.StatusRequestEntityTooLarge},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, store := newTestServer()
			rec := do(t, h, http.MethodPost, test.target, test.body)
			assert.Equal(t, test.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
			assert.Empty(t, store.rows)
		})
	}
}

func TestFetchCodeword(t *testing.T) {
	h, _ := newTestServer()
	created := decodeDTO(t, do(t, h, http.MethodPost, "/v1/codeword?seed=3", pets))

	rec := do(t, h, http.MethodGet, "/v1/codeword/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeDTO(t, rec))

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/codeword/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/codeword/abc", "").Code)
}

func TestFetchCodewordHTML(t *testing.T) {
	h, _ := newTestServer()
	do(t, h, http.MethodPost, "/v1/codeword?seed=3", pets)

	rec := do(t, h, http.MethodGet, "/v1/codeword/1/html", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<h1 class="title">Pets</h1>`)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/codeword/9/html", "").Code)
}

func TestStatus(t *testing.T) {
	h, _ := newTestServer()
	rec := do(t, h, http.MethodGet, "/v1/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
