/**
* Name: 			interview_session.go
* Description: 		WebSocket 아바타 면접 세션 진행
* Workflow: 		읽기 펌프 / 쓰기 펌프 / 진행 고루틴 3개, 하나라도 끝나면 context 취소로 전체 종료
*					바이너리 답변은 STT, 문제 음성은 TTS (음성 기능 활성 시)
 */
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/depu2006/CareerGenomeai/internal/interview"
	"github.com/depu2006/CareerGenomeai/internal/llm"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type wsFrame struct {
	messageType int
	data        []byte
}

// 서버 -> 클라이언트 텍스트 프레임
type wsEvent struct {
	Type       string              `json:"type"`
	Started    *interview.Started  `json:"start,omitempty"`
	Result     *interview.Answered `json:"result,omitempty"`
	Transcript string              `json:"transcript,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func (h *Handler) manageInterviewSession(parentCtx context.Context, conn *websocket.Conn, email, role string) {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(3)

	clientChan := make(chan wsFrame, 16)
	serverChan := make(chan wsFrame, 16)

	// Client -> Server, 읽기 전담
	go func() {
		defer wg.Done()
		defer cancel()
		h.clientReadPump(ctx, conn, email, clientChan)
	}()

	// Server -> Client, 쓰기 전담
	go func() {
		defer wg.Done()
		defer cancel()
		h.clientWritePump(ctx, conn, email, serverChan)
	}()

	// 채점 / STT / TTS. 종료 시 serverChan을 닫으면 쓰기 펌프가 close 프레임을 보내고 취소
	go func() {
		defer wg.Done()
		h.orchestrateInterview(ctx, email, role, clientChan, serverChan)
	}()

	wg.Wait()
	h.Log.Info("interview websocket closed", zap.String("email", email))
}

func (h *Handler) clientReadPump(ctx context.Context, conn *websocket.Conn, email string, clientChan chan<- wsFrame) {
	defer close(clientChan)
	// 쓰기 펌프가 끝나면 블로킹된 ReadMessage를 깨운다
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				h.Log.Debug("websocket read ended", zap.String("email", email), zap.Error(err))
			}
			return
		}
		select {
		case clientChan <- wsFrame{messageType: messageType, data: message}:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) clientWritePump(ctx context.Context, conn *websocket.Conn, email string, serverChan <-chan wsFrame) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-serverChan:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "interview finished"))
				return
			}
			if err := conn.WriteMessage(frame.messageType, frame.data); err != nil {
				h.Log.Debug("websocket write failed", zap.String("email", email), zap.Error(err))
				return
			}
		}
	}
}

func (h *Handler) orchestrateInterview(ctx context.Context, email, role string, clientChan <-chan wsFrame, serverChan chan<- wsFrame) {
	defer close(serverChan)

	send := func(ev wsEvent) bool {
		data, _ := json.Marshal(ev)
		select {
		case serverChan <- wsFrame{messageType: websocket.TextMessage, data: data}:
			return true
		case <-ctx.Done():
			return false
		}
	}
	speak := func(text string) bool {
		if h.TTS == nil || text == "" {
			return true
		}
		audio, err := h.TTS.Synthesize(ctx, text)
		if err != nil {
			h.Log.Warn("tts failed", zap.Error(err))
			return true
		}
		select {
		case serverChan <- wsFrame{messageType: websocket.BinaryMessage, data: audio}:
			return true
		case <-ctx.Done():
			return false
		}
	}

	started := h.Avatar.Start(role, email)
	if !send(wsEvent{Type: "question", Started: &started}) || !speak(started.Question) {
		return
	}

	for {
		var frame wsFrame
		var ok bool
		select {
		case <-ctx.Done():
			return
		case frame, ok = <-clientChan:
			if !ok {
				return
			}
		}

		answer, transcript, err := h.answerText(ctx, frame)
		if err != nil {
			if !send(wsEvent{Type: "error", Error: err.Error()}) {
				return
			}
			continue
		}

		res, err := h.Avatar.Answer(ctx, started.SessionID, answer)
		if err != nil {
			send(wsEvent{Type: "error", Error: "Interview not started"})
			return
		}
		if !send(wsEvent{Type: "result", Result: &res, Transcript: transcript}) {
			return
		}
		if res.Finished {
			return
		}
		if !speak(*res.NextQuestion) {
			return
		}
	}
}

var errSpeechDisabled = errors.New("speech services are disabled")

// 텍스트 프레임은 원문 또는 {"answer": ...}, 바이너리 프레임은 STT 변환
func (h *Handler) answerText(ctx context.Context, frame wsFrame) (answer, transcript string, err error) {
	if frame.messageType == websocket.BinaryMessage {
		if h.STT == nil {
			return "", "", errSpeechDisabled
		}
		text, err := h.STT.Transcribe(ctx, frame.data)
		if err != nil {
			if errors.Is(err, llm.ErrNoSpeech) {
				return "", "", errors.New("no speech detected")
			}
			h.Log.Warn("stt failed", zap.Error(err))
			return "", "", errors.New("transcription failed")
		}
		return text, text, nil
	}

	raw := strings.TrimSpace(string(frame.data))
	var msg struct {
		Answer *string `json:"answer"`
	}
	if strings.HasPrefix(raw, "{") && json.Unmarshal([]byte(raw), &msg) == nil && msg.Answer != nil {
		return *msg.Answer, "", nil
	}
	return raw, "", nil
}
