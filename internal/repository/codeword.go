package repository

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/vancomm/codeword/internal/codeword"
)

var ErrNotFound = errors.New("codeword not found")

type Codeword struct {
	CodewordId   int64              `db:"codeword_id"`
	Title        string             `db:"title"`
	SourceSha256 []byte             `db:"source_sha256"`
	Seed         int64              `db:"seed"`
	HideChance   float64            `db:"hide_chance"`
	Width        int32              `db:"width"`
	Height       int32              `db:"height"`
	State        []byte             `db:"state"`
	CreatedAt    pgtype.Timestamptz `db:"created_at"`
}

func EncodeState(cw *codeword.Codeword) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cw); err != nil {
		return nil, fmt.Errorf("unable to encode codeword: %w", err)
	}
	return buf.Bytes(), nil
}

func (c Codeword) DecodeState() (*codeword.Codeword, error) {
	var cw codeword.Codeword
	if err := gob.NewDecoder(bytes.NewReader(c.State)).Decode(&cw); err != nil {
		return nil, fmt.Errorf("unable to decode codeword %d: %w", c.CodewordId, err)
	}
	return &cw, nil
}

type CreateCodewordParams struct {
	Source     []byte // the save file the puzzle was derived from
	Seed       uint64
	HideChance float64
	Codeword   *codeword.Codeword
}

func (p CreateCodewordParams) NamedArgs() (pgx.NamedArgs, error) {
	state, err := EncodeState(p.Codeword)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(p.Source)
	return pgx.NamedArgs{
		"title":         p.Codeword.Title,
		"source_sha256": sum[:],
		"seed":          int64(p.Seed),
		"hide_chance":   p.HideChance,
		"width":         p.Codeword.Width,
		"height":        p.Codeword.Height,
		"state":         state,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// CreateCodeword stores a derived puzzle. Deriving the same save file with the
// same seed, hide chance and title always yields the same puzzle, so a
// conflicting insert returns the stored row instead.
func (q *Queries) CreateCodeword(
	ctx context.Context, params CreateCodewordParams,
) (*Codeword, error) {
	args, err := params.NamedArgs()
	if err != nil {
		return nil, err
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO codeword (
			title, source_sha256, seed, hide_chance, width, height, state
		)
		VALUES (
			@title, @source_sha256, @seed, @hide_chance, @width, @height, @state
		)
		RETURNING *;`,
		args,
	)
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Codeword])
	if isUniqueViolation(err) {
		return q.fetchByKey(ctx, args)
	}
	return row, err
}

func (q *Queries) fetchByKey(ctx context.Context, args pgx.NamedArgs) (*Codeword, error) {
	rows, _ := q.db.Query(
		ctx,
		`SELECT * FROM codeword
		WHERE source_sha256 = @source_sha256
			AND seed = @seed
			AND hide_chance = @hide_chance
			AND title = @title`,
		args,
	)
	return collectOne(rows)
}

func (q *Queries) FetchCodeword(ctx context.Context, codewordId int64) (*Codeword, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM codeword WHERE codeword_id = $1", codewordId,
	)
	return collectOne(rows)
}

func collectOne(rows pgx.Rows) (*Codeword, error) {
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Codeword])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}
