package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/shellsense/internal/domain"
	"github.com/doeshing/shellsense/internal/pkg/filesystem"
	"github.com/doeshing/shellsense/internal/ports"
)

// SQLiteStore persists resolution audit records in a SQLite database at
// ~/.shellsense/history/history.db. Records are append-only; nothing in
// the pipeline ever rewrites one.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates or opens the audit database at path. An empty
// path means the default location.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".shellsense", "history", "history.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS resolutions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		request TEXT,
		enhanced_request TEXT,
		command TEXT,
		model TEXT,
		outcome TEXT,
		tier TEXT,
		allowed INTEGER,
		matched_patterns TEXT,
		rounds_used INTEGER,
		low_confidence INTEGER
	);`)
	return err
}

// Save implements ports.HistoryRepository.
func (s *SQLiteStore) Save(rec domain.ResolutionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	patterns, err := json.Marshal(rec.MatchedPatterns)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO resolutions
		(timestamp, request, enhanced_request, command, model, outcome, tier, allowed, matched_patterns, rounds_used, low_confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Format(time.RFC3339),
		rec.Request,
		rec.EnhancedRequest,
		rec.Command,
		rec.Model,
		rec.Outcome,
		string(rec.Tier),
		boolToInt(rec.Allowed),
		string(patterns),
		rec.RoundsUsed,
		boolToInt(rec.LowConfidence),
	)
	return err
}

// Recent returns the newest records, most recent first.
func (s *SQLiteStore) Recent(limit int) ([]domain.ResolutionRecord, error) {
	return s.query("", limit)
}

// Search returns records whose request or command contains term.
func (s *SQLiteStore) Search(term string, limit int) ([]domain.ResolutionRecord, error) {
	return s.query(term, limit)
}

func (s *SQLiteStore) query(search string, limit int) ([]domain.ResolutionRecord, error) {
	builder := strings.Builder{}
	builder.WriteString(`SELECT timestamp, request, enhanced_request, command, model, outcome, tier, allowed, matched_patterns, rounds_used, low_confidence FROM resolutions`)
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE request LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC, id DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ResolutionRecord
	for rows.Next() {
		var rec domain.ResolutionRecord
		var ts, tier, patterns string
		var allowed, lowConfidence int
		if err := rows.Scan(&ts, &rec.Request, &rec.EnhancedRequest, &rec.Command, &rec.Model,
			&rec.Outcome, &tier, &allowed, &patterns, &rec.RoundsUsed, &lowConfidence); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Tier = domain.RiskTier(tier)
		rec.Allowed = allowed == 1
		rec.LowConfidence = lowConfidence == 1
		if patterns != "" {
			if err := json.Unmarshal([]byte(patterns), &rec.MatchedPatterns); err != nil {
				return nil, fmt.Errorf("record at %s: %w", ts, err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
