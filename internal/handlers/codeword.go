package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/codeword/internal/codeword"
	"github.com/vancomm/codeword/internal/qxw"
	"github.com/vancomm/codeword/internal/render"
	"github.com/vancomm/codeword/internal/repository"
)

const maxSaveFileSize = 1 << 20

type Store interface {
	CreateCodeword(ctx context.Context, params repository.CreateCodewordParams) (*repository.Codeword, error)
	FetchCodeword(ctx context.Context, codewordId int64) (*repository.Codeword, error)
}

type CodewordHandler struct {
	log        *logrus.Logger
	store      Store
	hideChance float64
}

func NewCodewordHandler(log *logrus.Logger, store Store, hideChance float64) *CodewordHandler {
	return &CodewordHandler{
		log:        log,
		store:      store,
		hideChance: hideChance,
	}
}

func (h CodewordHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateCodewordDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	opts := codeword.DefaultOptions()
	opts.Title = dto.Title
	opts.HideChance = h.hideChance
	if dto.HideChance != nil {
		opts.HideChance = *dto.HideChance
	}
	seed := codeword.RandomSeed()
	if dto.Seed != nil {
		seed = *dto.Seed
	}

	source, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSaveFileSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendErrorOrLog(w, h.log, http.StatusRequestEntityTooLarge, err)
			return
		}
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	puzzle, err := qxw.Parse(bytes.NewReader(source))
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	cw, err := codeword.Derive(puzzle, opts, codeword.NewRand(seed))
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusUnprocessableEntity, err)
		return
	}

	row, err := h.store.CreateCodeword(r.Context(), repository.CreateCodewordParams{
		Source:     source,
		Seed:       seed,
		HideChance: opts.HideChance,
		Codeword:   cw,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to store codeword")
		return
	}

	stored, err := row.DecodeState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid codeword.state")
		return
	}

	h.log.WithFields(logrus.Fields{
		"codeword_id": row.CodewordId,
		"seed":        seed,
		"puzzle":      puzzle.String(),
	}).Debug("created codeword")

	sendJSONOrLog(w, h.log, http.StatusCreated, NewCodewordDTO(row, stored))
}

func (h CodewordHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	row, cw, ok := h.fetch(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.log, http.StatusOK, NewCodewordDTO(row, cw))
}

func (h CodewordHandler) FetchHTML(w http.ResponseWriter, r *http.Request) {
	_, cw, ok := h.fetch(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.HTML(&buf, cw); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to render codeword")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// fetch loads the codeword named by the id path value, writing the error
// response itself when it cannot.
func (h CodewordHandler) fetch(
	w http.ResponseWriter, r *http.Request,
) (*repository.Codeword, *codeword.Codeword, bool) {
	codewordId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid codeword id"))
		return nil, nil, false
	}

	row, err := h.store.FetchCodeword(r.Context(), codewordId)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch codeword from db")
		return nil, nil, false
	}

	cw, err := row.DecodeState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid codeword.state")
		return nil, nil, false
	}
	return row, cw, true
}
