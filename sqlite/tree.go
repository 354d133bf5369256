package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lawchat"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lawchat.TreeStore = (*TreeStore)(nil)

// Snapshot describes the stored corpus.
type Snapshot struct {
	ID           string
	Fingerprint  string
	ArticleCount int
	SavedAt      time.Time
}

// TreeStore implements lawchat.TreeStore using SQLite. Only one corpus is
// stored at a time; saving replaces the previous snapshot.
type TreeStore struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewTreeStore creates a new TreeStore.
func NewTreeStore(db *DB) *TreeStore {
	return &TreeStore{db: db, Now: time.Now}
}

// SaveTree replaces the stored corpus with tree in a single transaction.
// Parts and chapters that hold no articles are not stored.
func (s *TreeStore) SaveTree(ctx context.Context, tree *lawchat.DocumentTree) error {
	if tree == nil {
		return lawchat.Errorf(lawchat.EINVALID, "document tree required")
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM parts`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return err
	}

	digest := xxhash.New()
	count := 0
	for pi, p := range tree.Parts {
		res, err := tx.ExecContext(ctx, `INSERT INTO parts (position, title) VALUES (?, ?)`, pi, p.Title)
		if err != nil {
			return fmt.Errorf("failed to insert part %q: %w", p.Title, err)
		}
		partID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for ci, c := range p.Chapters {
			res, err := tx.ExecContext(ctx, `INSERT INTO chapters (part_id, position, title) VALUES (?, ?, ?)`, partID, ci, c.Title)
			if err != nil {
				return fmt.Errorf("failed to insert chapter %q: %w", c.Title, err)
			}
			chapterID, err := res.LastInsertId()
			if err != nil {
				return err
			}

			for ai, a := range c.Articles {
				hash := hashContent(a.Title + "\x00" + a.Body)
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO articles (number, chapter_id, position, title, body, content_hash)
					VALUES (?, ?, ?, ?, ?, ?)
				`, a.Number, chapterID, ai, a.Title, a.Body, hash); err != nil {
					return fmt.Errorf("failed to insert article %d: %w", a.Number, err)
				}
				_, _ = digest.WriteString(strconv.Itoa(a.Number) + ":" + hash + "\x00")
				count++
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, fingerprint, article_count, saved_at)
		VALUES (?, ?, ?, ?)
	`, uuid.New().String(), fmt.Sprintf("%016x", digest.Sum64()), count, s.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}

	return tx.Commit()
}

// LoadTree returns the stored corpus in canonical order.
func (s *TreeStore) LoadTree(ctx context.Context) (*lawchat.DocumentTree, error) {
	if _, err := s.Snapshot(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, c.id, c.title, a.number, a.title, a.body
		FROM articles a
		JOIN chapters c ON c.id = a.chapter_id
		JOIN parts p ON p.id = c.part_id
		ORDER BY p.position, c.position, a.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tree := &lawchat.DocumentTree{}
	lastPart, lastChapter := int64(-1), int64(-1)
	for rows.Next() {
		var partID, chapterID int64
		var partTitle, chapterTitle string
		var a lawchat.Article
		if err := rows.Scan(&partID, &partTitle, &chapterID, &chapterTitle, &a.Number, &a.Title, &a.Body); err != nil {
			return nil, err
		}

		if partID != lastPart {
			tree.Parts = append(tree.Parts, lawchat.Part{Title: partTitle})
			lastPart, lastChapter = partID, -1
		}
		part := &tree.Parts[len(tree.Parts)-1]
		if chapterID != lastChapter {
			part.Chapters = append(part.Chapters, lawchat.Chapter{Title: chapterTitle})
			lastChapter = chapterID
		}
		chapter := &part.Chapters[len(part.Chapters)-1]
		chapter.Articles = append(chapter.Articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tree, nil
}

// Snapshot returns metadata about the stored corpus.
// Returns ENOTFOUND if no corpus has been saved.
func (s *TreeStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	var savedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, article_count, saved_at FROM snapshots LIMIT 1
	`).Scan(&snap.ID, &snap.Fingerprint, &snap.ArticleCount, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lawchat.Errorf(lawchat.ENOTFOUND, "no corpus saved")
	}
	if err != nil {
		return nil, err
	}

	snap.SavedAt, err = parseRFC3339(savedAt, "saved_at")
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
