/**
* Name: 			session.go
* Description: 		아바타 면접 세션 관리
* Workflow: 		Start 시 토큰 발급 -> Answer마다 세션 잠금 후 채점/진행 -> 마지막 답변에서 1회 저장 후 제거
*					만료 세션은 cron으로 주기적 정리
 */

package interview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/metrics"
	"github.com/depu2006/CareerGenomeai/internal/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ErrNotStarted = errors.New("interview not started")

const SweepSchedule = "@every 5m"

type Recorder interface {
	InsertInterview(ctx context.Context, rec models.InterviewRecord) error
}

type session struct {
	mu       sync.Mutex
	role     string
	email    string
	index    int
	scores   []int
	lastSeen time.Time
	closed   bool
}

type Started struct {
	Question  string `json:"question"`
	Role      string `json:"role"`
	SessionID string `json:"sessionId"`
}

type Answered struct {
	Score        int     `json:"score"`
	NextQuestion *string `json:"nextQuestion"`
	Finished     bool    `json:"finished"`
	TotalScore   int     `json:"totalScore"`
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	store    Recorder
	log      *zap.Logger
	now      func() time.Time
}

func NewManager(store Recorder, ttl time.Duration, log *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		ttl:      ttl,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// Start opens a new session. email may be empty for anonymous takers.
func (m *Manager) Start(role, email string) Started {
	key := ResolveRole(role)
	qs, _ := Questions(key)
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = &session{role: key, email: email, lastSeen: m.now()}
	n := len(m.sessions)
	m.mu.Unlock()
	metrics.ActiveInterviewSessions.Set(float64(n))

	m.log.Info("interview started", zap.String("session", id), zap.String("role", key))
	return Started{Question: qs[0].Text, Role: key, SessionID: id}
}

// Answer scores the current question and advances the session.
func (m *Manager) Answer(ctx context.Context, id, answer string) (Answered, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return Answered{}, ErrNotStarted
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// 다른 요청이 먼저 끝냈거나 만료 정리됨
	if s.closed || m.expired(s) {
		m.remove(id)
		return Answered{}, ErrNotStarted
	}

	qs, _ := Questions(s.role)
	score := Score(qs[s.index].Keywords, answer)
	s.scores = append(s.scores, score)
	s.index++
	s.lastSeen = m.now()

	res := Answered{Score: score, TotalScore: sum(s.scores)}
	if s.index < len(qs) {
		next := qs[s.index].Text
		res.NextQuestion = &next
		return res, nil
	}

	res.Finished = true
	s.closed = true
	m.remove(id)

	rec := models.InterviewRecord{
		Role:       s.role,
		Scores:     append([]int(nil), s.scores...),
		TotalScore: res.TotalScore,
		Email:      s.email,
		Date:       m.now().UTC(),
	}
	if err := m.store.InsertInterview(ctx, rec); err != nil {
		m.log.Error("failed to save interview", zap.String("session", id), zap.Error(err))
	} else {
		m.log.Info("interview finished", zap.String("session", id), zap.String("role", s.role), zap.Int("total", res.TotalScore))
	}
	return res, nil
}

// Sweep drops sessions idle longer than the TTL and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if !s.mu.TryLock() {
			continue
		}
		if m.expired(s) {
			s.closed = true
			delete(m.sessions, id)
			removed++
		}
		s.mu.Unlock()
	}
	n := len(m.sessions)
	m.mu.Unlock()

	metrics.ActiveInterviewSessions.Set(float64(n))
	if removed > 0 {
		m.log.Info("expired interview sessions swept", zap.Int("removed", removed), zap.Int("active", n))
	}
	return removed
}

func (m *Manager) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc(SweepSchedule, func() { m.Sweep() })
	return err
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) expired(s *session) bool {
	return m.ttl > 0 && m.now().Sub(s.lastSeen) > m.ttl
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()
	metrics.ActiveInterviewSessions.Set(float64(n))
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
