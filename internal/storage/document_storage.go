package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/models"

	"github.com/google/uuid"
)

const sortableTime = "2006-01-02T15:04:05.000000000Z"

func (s *SQLiteStore) InsertDocument(ctx context.Context, collection string, doc any) error {
	return s.insert(ctx, s.db, collection, doc)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStore) insert(ctx context.Context, ex execer, collection string, doc any) error {
	body, date, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	_, err = ex.ExecContext(ctx,
		"INSERT INTO documents(id, collection, date, body) VALUES(?, ?, ?, ?)",
		uuid.NewString(), collection, date, body)
	if err != nil {
		return fmt.Errorf("storage: insert into %s: %w", collection, err)
	}
	return nil
}

// date(또는 updated_at) 필드를 정렬용 컬럼으로 추출
func encodeDocument(doc any) (string, string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", "", fmt.Errorf("storage: encode document: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", "", fmt.Errorf("storage: document must be an object: %w", err)
	}
	date, _ := fields["date"].(string)
	if date == "" {
		date, _ = fields["updated_at"].(string)
	}
	t, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		t = time.Now()
	}
	// 고정 폭 포맷이어야 문자열 정렬이 시간 순서와 일치
	return string(raw), t.UTC().Format(sortableTime), nil
}

func (s *SQLiteStore) CountRoleQuestions(ctx context.Context, role string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE collection = ? AND json_extract(body, '$.role') = ?",
		CollRoleQuestions, role).Scan(&n)
	return n, err
}

func (s *SQLiteStore) RoleQuestionExists(ctx context.Context, role, question string) (bool, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE collection = ? AND json_extract(body, '$.role') = ? AND json_extract(body, '$.question') = ?",
		CollRoleQuestions, role, question).Scan(&n)
	return n > 0, err
}

func (s *SQLiteStore) InsertRoleQuestion(ctx context.Context, q models.RoleQuestion) error {
	return s.insert(ctx, s.db, CollRoleQuestions, q)
}

func (s *SQLiteStore) SampleRoleQuestions(ctx context.Context, role string, exclude []string, n int) ([]models.RoleQuestion, error) {
	query := "SELECT body FROM documents WHERE collection = ? AND json_extract(body, '$.role') = ?"
	args := []any{CollRoleQuestions, role}
	if len(exclude) > 0 {
		query += " AND json_extract(body, '$.question') NOT IN (?" + strings.Repeat(", ?", len(exclude)-1) + ")"
		for _, e := range exclude {
			args = append(args, e)
		}
	}
	query += " ORDER BY RANDOM() LIMIT ?"
	args = append(args, n)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: sample role questions: %w", err)
	}
	defer rows.Close()

	var out []models.RoleQuestion
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var q models.RoleQuestion
		if err := json.Unmarshal([]byte(body), &q); err != nil {
			return nil, fmt.Errorf("storage: decode role question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CountSmartQuestions(ctx context.Context, role, difficulty string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE collection = ? AND json_extract(body, '$.role') = ? AND json_extract(body, '$.difficulty') = ?",
		CollSmartQuestions, role, difficulty).Scan(&n)
	return n, err
}

func (s *SQLiteStore) UpsertSmartQuestion(ctx context.Context, q models.SmartQuestion) (bool, error) {
	return s.upsert(ctx, CollSmartQuestions, q,
		"json_extract(body, '$.question') = ?", q.Question)
}

func (s *SQLiteStore) SampleSmartQuestion(ctx context.Context, role, difficulty string) (*models.SmartQuestion, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? AND json_extract(body, '$.role') = ? AND json_extract(body, '$.difficulty') = ? ORDER BY RANDOM() LIMIT 1",
		CollSmartQuestions, role, difficulty).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var q models.SmartQuestion
	if err := json.Unmarshal([]byte(body), &q); err != nil {
		return nil, fmt.Errorf("storage: decode smart question: %w", err)
	}
	return &q, nil
}

func (s *SQLiteStore) UpsertSkillGap(ctx context.Context, rec models.SkillGapRecord) error {
	_, err := s.upsert(ctx, CollSkillGaps, rec,
		"json_extract(body, '$.email') = ? AND json_extract(body, '$.role') = ?", rec.Email, rec.Role)
	return err
}

func (s *SQLiteStore) LatestSkillGap(ctx context.Context, email string) (*models.SkillGapRecord, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? AND json_extract(body, '$.email') = ? ORDER BY date DESC LIMIT 1",
		CollSkillGaps, email).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var rec models.SkillGapRecord
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("storage: decode skill gap: %w", err)
	}
	return &rec, nil
}

func (s *SQLiteStore) DeleteSkillGaps(ctx context.Context, email string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND json_extract(body, '$.email') = ?",
		CollSkillGaps, email)
	if err != nil {
		return 0, fmt.Errorf("storage: delete skill gaps: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLiteStore) InsertInterview(ctx context.Context, rec models.InterviewRecord) error {
	return s.insert(ctx, s.db, CollInterviews, rec)
}

// where 조건에 맞는 문서가 있으면 교체, 없으면 삽입. 삽입 여부 반환
func (s *SQLiteStore) upsert(ctx context.Context, collection string, doc any, where string, args ...any) (bool, error) {
	body, date, err := encodeDocument(doc)
	if err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM documents WHERE collection = ? AND "+where+" LIMIT 1",
		append([]any{collection}, args...)...).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := s.insert(ctx, tx, collection, doc); err != nil {
			return false, err
		}
		return true, tx.Commit()
	case err != nil:
		return false, fmt.Errorf("storage: upsert lookup in %s: %w", collection, err)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE documents SET body = ?, date = ? WHERE id = ?", body, date, id); err != nil {
		return false, fmt.Errorf("storage: upsert update in %s: %w", collection, err)
	}
	return false, tx.Commit()
}

func (s *SQLiteStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT collection FROM documents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var users int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		return nil, err
	}
	if users > 0 {
		names = append(names, CollUsers)
	}
	sort.Strings(names)
	return names, nil
}

func (s *SQLiteStore) LatestDocuments(ctx context.Context, collection string, limit int) ([]map[string]any, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if collection == CollUsers {
		rows, err = s.db.QueryContext(ctx, "SELECT id, body FROM users ORDER BY json_extract(body, '$.created_at') DESC LIMIT ?", limit)
	} else {
		rows, err = s.db.QueryContext(ctx, "SELECT id, body FROM documents WHERE collection = ? ORDER BY date DESC LIMIT ?", collection, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: latest documents: %w", err)
	}
	defer rows.Close()

	docs := []map[string]any{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		doc := map[string]any{}
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("storage: decode document: %w", err)
		}
		delete(doc, "id")
		delete(doc, "password")
		doc["_id"] = id
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
