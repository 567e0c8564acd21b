package out

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"hazepito/internal/modules/catalog/domain"
	"hazepito/internal/platform/clock"
	apperrors "hazepito/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteContentStore keeps a content pack in a single sqlite file. It is a
// content source for the viewer and the target of `hazepito export`.
type SQLiteContentStore struct {
	path  string
	clock clock.Clock
}

func NewSQLiteContentStore(dbPath string, clk clock.Clock) *SQLiteContentStore {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &SQLiteContentStore{path: dbPath, clock: clk}
}

func (s *SQLiteContentStore) Name() string { return "db:" + filepath.Base(s.path) }

const contentSchema = `
CREATE TABLE IF NOT EXISTS meta (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS topic_groups (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  label TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS topics (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  group_id TEXT NOT NULL REFERENCES topic_groups(id),
  label TEXT NOT NULL,
  subtitle TEXT NOT NULL,
  default_subtab TEXT NOT NULL,
  intro TEXT NOT NULL,
  search_query TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS subtabs (
  topic_id TEXT NOT NULL REFERENCES topics(id),
  id TEXT NOT NULL,
  position INTEGER NOT NULL,
  label TEXT NOT NULL,
  width INTEGER NOT NULL,
  height INTEGER NOT NULL,
  art TEXT NOT NULL,
  PRIMARY KEY (topic_id, id)
);
CREATE TABLE IF NOT EXISTS shapes (
  topic_id TEXT NOT NULL,
  subtab_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  hotspot TEXT NOT NULL,
  label TEXT NOT NULL,
  x INTEGER NOT NULL,
  y INTEGER NOT NULL,
  w INTEGER NOT NULL,
  h INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
  topic_id TEXT NOT NULL,
  subtab_id TEXT NOT NULL,
  id TEXT NOT NULL,
  title TEXT NOT NULL,
  accent TEXT NOT NULL,
  body TEXT NOT NULL,
  PRIMARY KEY (topic_id, subtab_id, id)
);
CREATE TABLE IF NOT EXISTS photos (
  topic_id TEXT NOT NULL,
  position INTEGER NOT NULL,
  url TEXT NOT NULL,
  caption TEXT NOT NULL
);
`

var contentTables = []string{"meta", "topic_groups", "topics", "subtabs", "shapes", "records", "photos"}

func (s *SQLiteContentStore) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, contentSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create content tables: %w", err)
	}
	return db, nil
}

// openReadOnly opens an existing content db without touching its schema.
func (s *SQLiteContentStore) openReadOnly(ctx context.Context) (*sql.DB, error) {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return nil, fmt.Errorf("content db: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("content db: %w", err)
	}
	dsn := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := checkSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("content db %s: %w", filepath.Base(abs), err)
	}
	return db, nil
}

func checkSchema(ctx context.Context, db *sql.DB) error {
	present := map[string]bool{}
	err := queryRows(ctx, db, "tables", `SELECT name FROM sqlite_master WHERE type = 'table'`, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		present[name] = true
		return nil
	})
	if err != nil {
		return err
	}
	for _, table := range contentTables {
		if !present[table] {
			return fmt.Errorf("%w: missing table %s", apperrors.ErrInvalidInput, table)
		}
	}
	return nil
}

// queryRows runs query and hands every row to scan.
func queryRows(ctx context.Context, db *sql.DB, what, query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan %s: %w", what, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", what, err)
	}
	return nil
}

// ─── write ───

func (s *SQLiteContentStore) Write(ctx context.Context, pack domain.Pack) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"photos", "records", "shapes", "subtabs", "topics", "topic_groups", "meta"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	meta := map[string]string{
		"schema_version": strconv.Itoa(domain.SchemaVersion),
		"default_topic":  pack.DefaultTopic,
		"exported_at":    s.clock.Now().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("insert meta %s: %w", k, err)
		}
	}
	for i, g := range pack.Groups {
		if _, err := tx.ExecContext(ctx, `INSERT INTO topic_groups (id, position, label) VALUES (?, ?, ?)`, g.ID, i, g.Label); err != nil {
			return fmt.Errorf("insert group %s: %w", g.ID, err)
		}
	}
	for i, t := range pack.Topics {
		if err := insertTopic(ctx, tx, i, t); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

func insertTopic(ctx context.Context, tx *sql.Tx, position int, t domain.Topic) error {
	const topicStmt = `
INSERT INTO topics (id, position, group_id, label, subtitle, default_subtab, intro, search_query)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, topicStmt, t.ID, position, t.Group, t.Label, t.Subtitle, t.DefaultSubTab, t.Intro, t.SearchQuery); err != nil {
		return fmt.Errorf("insert topic %s: %w", t.ID, err)
	}
	for i, p := range t.Photos {
		if _, err := tx.ExecContext(ctx, `INSERT INTO photos (topic_id, position, url, caption) VALUES (?, ?, ?, ?)`, t.ID, i, p.URL, p.Caption); err != nil {
			return fmt.Errorf("insert photo for %s: %w", t.ID, err)
		}
	}
	for i, sub := range t.SubTabs {
		const subStmt = `
INSERT INTO subtabs (topic_id, id, position, label, width, height, art)
VALUES (?, ?, ?, ?, ?, ?, ?)`
		art := strings.Join(sub.Diagram.Art, "\n")
		if _, err := tx.ExecContext(ctx, subStmt, t.ID, sub.ID, i, sub.Label, sub.Diagram.Width, sub.Diagram.Height, art); err != nil {
			return fmt.Errorf("insert sub-tab %s/%s: %w", t.ID, sub.ID, err)
		}
		for j, sh := range sub.Diagram.Shapes {
			const shapeStmt = `
INSERT INTO shapes (topic_id, subtab_id, position, hotspot, label, x, y, w, h)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
			if _, err := tx.ExecContext(ctx, shapeStmt, t.ID, sub.ID, j, sh.Hotspot, sh.Label, sh.X, sh.Y, sh.W, sh.H); err != nil {
				return fmt.Errorf("insert shape %s/%s/%s: %w", t.ID, sub.ID, sh.Hotspot, err)
			}
		}
		for _, r := range sub.Records {
			const recordStmt = `
INSERT INTO records (topic_id, subtab_id, id, title, accent, body)
VALUES (?, ?, ?, ?, ?, ?)`
			if _, err := tx.ExecContext(ctx, recordStmt, t.ID, sub.ID, r.ID, r.Title, r.Accent, r.Body); err != nil {
				return fmt.Errorf("insert record %s/%s/%s: %w", t.ID, sub.ID, r.ID, err)
			}
		}
	}
	return nil
}

// ─── read ───

func (s *SQLiteContentStore) Load(ctx context.Context) (domain.Pack, error) {
	db, err := s.openReadOnly(ctx)
	if err != nil {
		return domain.Pack{}, err
	}
	defer db.Close()

	pack := domain.Pack{}
	var version string
	row := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`)
	if err := row.Scan(&version); err != nil && err != sql.ErrNoRows {
		return domain.Pack{}, fmt.Errorf("read schema version: %w", err)
	}
	if version != "" && version != strconv.Itoa(domain.SchemaVersion) {
		return domain.Pack{}, fmt.Errorf("unsupported schema_version %s", version)
	}
	row = db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'default_topic'`)
	if err := row.Scan(&pack.DefaultTopic); err != nil && err != sql.ErrNoRows {
		return domain.Pack{}, fmt.Errorf("read default topic: %w", err)
	}

	err = queryRows(ctx, db, "groups", `SELECT id, label FROM topic_groups ORDER BY position`, func(rows *sql.Rows) error {
		g := domain.TopicGroup{}
		if err := rows.Scan(&g.ID, &g.Label); err != nil {
			return err
		}
		pack.Groups = append(pack.Groups, g)
		return nil
	})
	if err != nil {
		return domain.Pack{}, err
	}

	err = queryRows(ctx, db, "topics", `
SELECT id, group_id, label, subtitle, default_subtab, intro, search_query
FROM topics ORDER BY position`, func(rows *sql.Rows) error {
		t := domain.Topic{Source: s.Name()}
		if err := rows.Scan(&t.ID, &t.Group, &t.Label, &t.Subtitle, &t.DefaultSubTab, &t.Intro, &t.SearchQuery); err != nil {
			return err
		}
		pack.Topics = append(pack.Topics, t)
		return nil
	})
	if err != nil {
		return domain.Pack{}, err
	}

	for i := range pack.Topics {
		if err := loadTopicParts(ctx, db, &pack.Topics[i]); err != nil {
			return domain.Pack{}, err
		}
	}
	return pack, nil
}

func loadTopicParts(ctx context.Context, db *sql.DB, t *domain.Topic) error {
	err := queryRows(ctx, db, "photos of "+t.ID, `SELECT url, caption FROM photos WHERE topic_id = ? ORDER BY position`, func(rows *sql.Rows) error {
		p := domain.Photo{}
		if err := rows.Scan(&p.URL, &p.Caption); err != nil {
			return err
		}
		t.Photos = append(t.Photos, p)
		return nil
	}, t.ID)
	if err != nil {
		return err
	}

	err = queryRows(ctx, db, "sub-tabs of "+t.ID, `
SELECT id, label, width, height, art FROM subtabs WHERE topic_id = ? ORDER BY position`, func(rows *sql.Rows) error {
		sub := domain.SubTab{Records: map[string]domain.HotspotRecord{}}
		var art string
		if err := rows.Scan(&sub.ID, &sub.Label, &sub.Diagram.Width, &sub.Diagram.Height, &art); err != nil {
			return err
		}
		sub.Diagram.Art = splitArt(art)
		t.SubTabs = append(t.SubTabs, sub)
		return nil
	}, t.ID)
	if err != nil {
		return err
	}

	for i := range t.SubTabs {
		sub := &t.SubTabs[i]
		err := queryRows(ctx, db, "shapes of "+t.ID+"/"+sub.ID, `
SELECT hotspot, label, x, y, w, h FROM shapes WHERE topic_id = ? AND subtab_id = ? ORDER BY position`, func(rows *sql.Rows) error {
			sh := domain.Shape{}
			if err := rows.Scan(&sh.Hotspot, &sh.Label, &sh.X, &sh.Y, &sh.W, &sh.H); err != nil {
				return err
			}
			sub.Diagram.Shapes = append(sub.Diagram.Shapes, sh)
			return nil
		}, t.ID, sub.ID)
		if err != nil {
			return err
		}

		err = queryRows(ctx, db, "records of "+t.ID+"/"+sub.ID, `
SELECT id, title, accent, body FROM records WHERE topic_id = ? AND subtab_id = ?`, func(rows *sql.Rows) error {
			r := domain.HotspotRecord{}
			if err := rows.Scan(&r.ID, &r.Title, &r.Accent, &r.Body); err != nil {
				return err
			}
			sub.Records[r.ID] = r
			return nil
		}, t.ID, sub.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
