package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"displaybot/internal/domain"
)

type StationStore struct {
	db *sqlx.DB
}

func NewStationStore(db *sqlx.DB) *StationStore {
	return &StationStore{db: db}
}

// Seed inserts every station whose name is not stored yet and returns how
// many were added. Existing stations keep their URL.
func (s *StationStore) Seed(ctx context.Context, stations []domain.Station) (int, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO records (type, name, url)
		SELECT ?, ?, ? WHERE NOT EXISTS (
			SELECT 1 FROM records WHERE type = ? AND name = ?
		)`)

	added := 0
	for _, st := range stations {
		res, err := exec.ExecContext(ctx, query,
			domain.RecordStation, st.Name, st.URL,
			domain.RecordStation, st.Name,
		)
		if err != nil {
			return added, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return added, err
		}
		added += int(n)
	}
	return added, nil
}

// Upsert stores the station, replacing the URL of an existing one.
func (s *StationStore) Upsert(ctx context.Context, station domain.Station) error {
	exec := GetExecutor(ctx, s.db)

	update := exec.Rebind(`UPDATE records SET url = ? WHERE type = ? AND name = ?`)
	res, err := exec.ExecContext(ctx, update, station.URL, domain.RecordStation, station.Name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil || n > 0 {
		return err
	}

	insert := exec.Rebind(`INSERT INTO records (type, name, url) VALUES (?, ?, ?)`)
	_, err = exec.ExecContext(ctx, insert, domain.RecordStation, station.Name, station.URL)
	return err
}

func (s *StationStore) Get(ctx context.Context, name string) (*domain.Station, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT name, url FROM records WHERE type = ? AND name = ?`)

	var station domain.Station
	err := sqlx.GetContext(ctx, exec, &station, query, domain.RecordStation, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &station, nil
}

// List returns all stations ordered by name.
func (s *StationStore) List(ctx context.Context) ([]domain.Station, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT name, url FROM records WHERE type = ? ORDER BY name`)

	var stations []domain.Station
	err := sqlx.SelectContext(ctx, exec, &stations, query, domain.RecordStation)
	return stations, err
}
