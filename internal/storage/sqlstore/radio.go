package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"displaybot/internal/domain"
)

// RadioStore owns the singleton radio-state record.
type RadioStore struct {
	db *sqlx.DB
}

func NewRadioStore(db *sqlx.DB) *RadioStore {
	return &RadioStore{db: db}
}

// Ensure creates the radio-state record if it does not exist yet.
func (s *RadioStore) Ensure(ctx context.Context) error {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO records (type)
		SELECT ? WHERE NOT EXISTS (SELECT 1 FROM records WHERE type = ?)`)

	_, err := exec.ExecContext(ctx, query, domain.RecordRadio, domain.RecordRadio)
	return err
}

func (s *RadioStore) Get(ctx context.Context) (*domain.RadioState, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		SELECT station_playing, station_title, station_title_sent
		FROM records
		WHERE type = ?`)

	var state domain.RadioState
	err := sqlx.GetContext(ctx, exec, &state, query, domain.RecordRadio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// SetStationPlaying records the tuned station. Switching to a different
// station drops the titles observed on the previous one.
func (s *RadioStore) SetStationPlaying(ctx context.Context, name string) error {
	return s.set(ctx, `
		station_title = CASE WHEN station_playing = ? THEN station_title ELSE '' END,
		station_title_sent = CASE WHEN station_playing = ? THEN station_title_sent ELSE '' END,
		station_playing = ?`, name, name, name)
}

func (s *RadioStore) SetTitle(ctx context.Context, title string) error {
	return s.set(ctx, `station_title = ?`, title)
}

func (s *RadioStore) SetTitleSent(ctx context.Context, title string) error {
	return s.set(ctx, `station_title_sent = ?`, title)
}

// ClearTuning turns the radio off and forgets every title seen so far.
func (s *RadioStore) ClearTuning(ctx context.Context) error {
	return s.set(ctx, `station_playing = ?, station_title = ?, station_title_sent = ?`, "", "", "")
}

// ResetTitles drops the observed and announced titles.
func (s *RadioStore) ResetTitles(ctx context.Context) error {
	return s.set(ctx, `station_title = ?, station_title_sent = ?`, "", "")
}

func (s *RadioStore) set(ctx context.Context, assignments string, args ...interface{}) error {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`UPDATE records SET ` + assignments + ` WHERE type = ?`)

	res, err := exec.ExecContext(ctx, query, append(args, domain.RecordRadio)...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
