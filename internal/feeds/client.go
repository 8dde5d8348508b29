/**
* Name: 			client.go
* Description: 		외부 공개 API 호출 (퀴즈, 뉴스 RSS, 채용 공고, 위키백과)
* Workflow: 		호출별 타임아웃, 실패 시 에러 반환 (폴백은 호출부에서)
 */

package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTriviaURL = "https://opentdb.com/api.php?amount=1&category=18&type=multiple"
	DefaultNewsURL   = "https://news.google.com/rss/search?q=layoffs+tech+when:7d&hl=en-US&gl=US&ceid=US:en"
	DefaultJobsURL   = "https://remotive.com/api/remote-jobs?category=software-dev&limit=50"
	DefaultWikiURL   = "https://en.wikipedia.org/w/api.php"

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	wikiUserAgent    = "RoadmapGenerator/1.0"
)

// 테스트에서 httptest 주소로 교체
type Endpoints struct {
	Trivia string
	News   string
	Jobs   string
	Wiki   string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Trivia: DefaultTriviaURL,
		News:   DefaultNewsURL,
		Jobs:   DefaultJobsURL,
		Wiki:   DefaultWikiURL,
	}
}

type Client struct {
	http *http.Client
	urls Endpoints
	log  *zap.Logger
}

func NewClient(urls Endpoints, log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: 20 * time.Second},
		urls: urls,
		log:  log,
	}
}

func (c *Client) getJSON(ctx context.Context, url, userAgent string, timeout time.Duration, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feeds: %s returned %s", req.URL.Host, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
