package feeds

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
)

type NewsItem struct {
	Title     string
	Link      string
	Published string
}

// LayoffNews returns up to limit entries from the layoff news RSS search.
func (c *Client) LayoffNews(ctx context.Context, limit int) ([]NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = c.http
	feed, err := parser.ParseURLWithContext(c.urls.News, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]NewsItem, 0, limit)
	for _, entry := range feed.Items {
		if len(items) == limit {
			break
		}
		items = append(items, NewsItem{Title: entry.Title, Link: entry.Link, Published: entry.Published})
	}
	return items, nil
}
