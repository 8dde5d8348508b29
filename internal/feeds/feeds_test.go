package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const rssBody = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>news</title>
<item><title>Acme cuts 200 jobs</title><link>https://example.com/a</link><pubDate>Mon, 06 Jan 2025 10:00:00 GMT</pubDate></item>
<item><title>Globex trims staff</title><link>https://example.com/b</link><pubDate>Tue, 07 Jan 2025 10:00:00 GMT</pubDate></item>
<item><title>Initech layoffs</title><link>https://example.com/c</link><pubDate>Wed, 08 Jan 2025 10:00:00 GMT</pubDate></item>
</channel></rss>`

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(Endpoints{
		Trivia: srv.URL + "/trivia",
		News:   srv.URL + "/rss",
		Jobs:   srv.URL + "/jobs",
		Wiki:   srv.URL + "/w/api.php",
	}, zap.NewNop())
}

func TestTriviaUnescapesAndIncludesAnswer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/trivia", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response_code":0,"results":[{"question":"What does &quot;CPU&quot; stand for?","correct_answer":"Central Processing Unit","incorrect_answers":["Central Process Unit","Computer Personal Unit","Central Processor Unit"]}]}`))
	})
	c := newTestClient(t, mux)

	q, err := c.Trivia(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `What does "CPU" stand for?`, q.Question)
	assert.Equal(t, "Central Processing Unit", q.Answer)
	assert.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, q.Answer)
}

func TestTriviaNonZeroResponseCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/trivia", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response_code":1,"results":[]}`))
	})
	_, err := newTestClient(t, mux).Trivia(context.Background())
	assert.ErrorIs(t, err, ErrNoTrivia)
}

func TestLayoffNewsLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rss", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssBody))
	})
	items, err := newTestClient(t, mux).LayoffNews(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Acme cuts 200 jobs", items[0].Title)
	assert.Equal(t, "https://example.com/a", items[0].Link)
	assert.NotEmpty(t, items[0].Published)
}

func TestRemoteJobsSendsBrowserAgent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.UserAgent(), "Mozilla/5.0")
		_, _ = w.Write([]byte(`{"jobs":[{"title":"Go dev","company_name":"Acme","url":"https://acme.dev/1","description":"Go and Docker"}]}`))
	})
	jobs, err := newTestClient(t, mux).RemoteJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].CompanyName)
}

func TestWikiSearchAndSections(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wikiUserAgent, r.UserAgent())
		switch r.URL.Query().Get("action") {
		case "query":
			if r.URL.Query().Get("srsearch") == "nothing programming" {
				_, _ = w.Write([]byte(`{"query":{"search":[]}}`))
				return
			}
			_, _ = w.Write([]byte(`{"query":{"search":[{"title":"Go (programming language)"}]}}`))
		case "parse":
			assert.Equal(t, "Go (programming language)", r.URL.Query().Get("page"))
			_, _ = w.Write([]byte(`{"parse":{"sections":[{"line":"History"},{"line":"Design"}]}}`))
		}
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	title, err := c.SearchPage(ctx, "go programming")
	require.NoError(t, err)
	assert.Equal(t, "Go (programming language)", title)

	sections, err := c.Sections(ctx, title)
	require.NoError(t, err)
	assert.Equal(t, []Section{{Line: "History"}, {Line: "Design"}}, sections)

	_, err = c.SearchPage(ctx, "nothing programming")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}
