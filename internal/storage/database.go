package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLite 위에 JSON 문서를 저장하는 대체 저장소.
// MongoDB에 연결할 수 없을 때 사용한다.
type SQLiteStore struct {
	db  *sql.DB
	log *zap.Logger
}

func OpenSQLite(ctx context.Context, dsn string, log *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}
	// 공유 메모리 DB가 연결 종료와 함께 사라지지 않도록 단일 연결 유지
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping sqlite: %w", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" TEXT PRIMARY KEY,
			"email" TEXT NOT NULL UNIQUE,
			"body" TEXT NOT NULL
	);`
	createDocumentsTable := `
	CREATE TABLE IF NOT EXISTS documents (
			"id" TEXT PRIMARY KEY,
			"collection" TEXT NOT NULL,
			"date" DATETIME,
			"body" TEXT NOT NULL
	);`
	createDocumentsIndex := `CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, date)`

	for _, stmt := range []string{createUsersTable, createDocumentsTable, createDocumentsIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: init sqlite schema: %w", err)
		}
	}
	log.Info("sqlite document store ready", zap.String("dsn", dsn))
	return &SQLiteStore{db: db, log: log}, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.db.Close()
}

// 연결 종료, 파일 열기 실패, I/O 오류는 저장소 장애로 본다
func sqliteUnavailable(err error) bool {
	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), "database is closed") {
		return true
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_NOTADB:
			return true
		}
	}
	return false
}
