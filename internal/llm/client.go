/**
* Name: 			client.go
* Description: 		로컬 텍스트 생성 서버(Ollama 호환) 클라이언트
* Workflow: 		prompt + 옵션 전송, response 필드 반환. 재시도 없음, 호출부가 폴백 처리
 */

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/metrics"

	"go.uber.org/zap"
)

var (
	ErrUnavailable   = errors.New("llm: generation service unreachable")
	ErrBadStatus     = errors.New("llm: unexpected status")
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Generator is the prompt -> text contract used by every feature.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// 호출 지점별 생성 옵션
type Options struct {
	Model       string
	JSON        bool
	Temperature *float64
	NumPredict  int
	Timeout     time.Duration
	// metrics label
	Site string
}

func Temperature(v float64) *float64 { return &v }

type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	Stream  bool             `json:"stream"`
	Format  string           `json:"format,omitempty"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature *float64 `json:"temperature,omitempty"`
	NumPredict  int      `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	text, err := c.generate(ctx, prompt, opts)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		c.log.Warn("generation failed", zap.String("site", opts.Site), zap.String("model", opts.Model), zap.Error(err))
	}
	metrics.LLMCalls.WithLabelValues(opts.Site, outcome).Inc()
	return text, err
}

func (c *Client) generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	body := generateRequest{Model: opts.Model, Prompt: prompt}
	if opts.JSON {
		body.Format = "json"
	}
	if opts.Temperature != nil || opts.NumPredict > 0 {
		body.Options = &generateOptions{Temperature: opts.Temperature, NumPredict: opts.NumPredict}
	}
	reqBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
