package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/codeword/internal/codeword"
	"github.com/vancomm/codeword/internal/repository"
)

type CreateCodewordDTO struct {
	Title      string   `schema:"title"`
	HideChance *float64 `schema:"hide_chance"`
	Seed       *uint64  `schema:"seed"`
}

func ParseCreateCodewordDTO(src map[string][]string) (CreateCodewordDTO, error) {
	var dto CreateCodewordDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type CodewordDTO struct {
	CodewordId    string                    `json:"codeword_id"`
	Title         string                    `json:"title"`
	Seed          string                    `json:"seed"`
	HideChance    float64                   `json:"hide_chance"`
	Width         int                       `json:"width"`
	Height        int                       `json:"height"`
	Cells         [][]codeword.Cell         `json:"cells"`
	Reveal        []codeword.RevealedSquare `json:"reveal"`
	Codex         map[string]int            `json:"codex"`
	Words         []string                  `json:"words"`
	Solution      []string                  `json:"solution"`
	HiddenLetters string                    `json:"hidden_letters"`
	CreatedAt     int64                     `json:"created_at"`
}

func NewCodewordDTO(row *repository.Codeword, cw *codeword.Codeword) *CodewordDTO {
	codex := make(map[string]int, len(cw.Codex))
	for letter, code := range cw.Codex {
		codex[string(letter)] = code
	}
	return &CodewordDTO{
		CodewordId:    strconv.FormatInt(row.CodewordId, 10),
		Title:         cw.Title,
		Seed:          strconv.FormatUint(uint64(row.Seed), 10),
		HideChance:    row.HideChance,
		Width:         cw.Width,
		Height:        cw.Height,
		Cells:         cw.Cells,
		Reveal:        cw.Reveal,
		Codex:         codex,
		Words:         cw.MaskedWords,
		Solution:      cw.Words,
		HiddenLetters: cw.HiddenLetters,
		CreatedAt:     row.CreatedAt.Time.UnixMilli(),
	}
}
