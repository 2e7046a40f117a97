package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"displaybot/internal/domain"
)

const clipColumns = `id, url, filename, author, created_at, incoming`

type ClipStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewClipStore(db *sqlx.DB) *ClipStore {
	return &ClipStore{db: db, tx: NewTransactionManager(db)}
}

// Insert stores a new clip and returns its id. A clip whose filename is
// already taken yields domain.ErrDuplicate.
func (s *ClipStore) Insert(ctx context.Context, clip *domain.Clip) (int64, error) {
	if clip.Created.IsZero() {
		clip.Created = time.Now()
	}
	clip.Created = clip.Created.UTC().Truncate(time.Microsecond)

	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`
		INSERT INTO records (type, url, filename, author, incoming, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		domain.RecordClip,
		clip.URL,
		clip.Filename,
		clip.Author,
		clip.Incoming,
		clip.Created,
	).Scan(&id)
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("filename %s: %w", clip.Filename, domain.ErrDuplicate)
	}
	if err != nil {
		return 0, err
	}

	clip.ID = id
	return id, nil
}

func (s *ClipStore) ExistsByURL(ctx context.Context, url string) (bool, error) {
	return s.exists(ctx, "url", url)
}

func (s *ClipStore) ExistsByFilename(ctx context.Context, filename string) (bool, error) {
	return s.exists(ctx, "filename", filename)
}

func (s *ClipStore) exists(ctx context.Context, column, value string) (bool, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT COUNT(*) FROM records WHERE type = ? AND ` + column + ` = ?`)

	var count int
	if err := sqlx.GetContext(ctx, exec, &count, query, domain.RecordClip, value); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ClipStore) Get(ctx context.Context, id int64) (*domain.Clip, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT ` + clipColumns + ` FROM records WHERE type = ? AND id = ?`)

	var clip domain.Clip
	err := sqlx.GetContext(ctx, exec, &clip, query, domain.RecordClip, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &clip, nil
}

func (s *ClipStore) Count(ctx context.Context) (int, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT COUNT(*) FROM records WHERE type = ?`)

	var count int
	err := sqlx.GetContext(ctx, exec, &count, query, domain.RecordClip)
	return count, err
}

// TakeIncoming returns the oldest clip still flagged incoming and clears its
// flag in the same transaction. domain.ErrNotFound means nothing is shortlisted.
func (s *ClipStore) TakeIncoming(ctx context.Context) (*domain.Clip, error) {
	var clip domain.Clip

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		query := exec.Rebind(`
			SELECT ` + clipColumns + ` FROM records
			WHERE type = ? AND incoming = ?
			ORDER BY created_at, id
			LIMIT 1`)
		if err := sqlx.GetContext(txCtx, exec, &clip, query, domain.RecordClip, true); err != nil {
			return err
		}

		update := exec.Rebind(`UPDATE records SET incoming = ? WHERE id = ?`)
		_, err := exec.ExecContext(txCtx, update, false, clip.ID)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	clip.Incoming = false
	return &clip, nil
}

// Random picks a clip uniformly at random.
func (s *ClipStore) Random(ctx context.Context) (*domain.Clip, error) {
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`SELECT ` + clipColumns + ` FROM records WHERE type = ? ORDER BY RANDOM() LIMIT 1`)

	var clip domain.Clip
	err := sqlx.GetContext(ctx, exec, &clip, query, domain.RecordClip)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &clip, nil
}
