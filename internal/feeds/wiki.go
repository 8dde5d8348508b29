package feeds

import (
	"context"
	"errors"
	"net/url"
	"time"
)

var ErrTopicNotFound = errors.New("feeds: no encyclopedia page for topic")

type Section struct {
	Line string `json:"line"`
}

// SearchPage returns the title of the first search hit for query.
func (c *Client) SearchPage(ctx context.Context, query string) (string, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"format":   {"json"},
	}
	var body struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := c.getJSON(ctx, c.urls.Wiki+"?"+params.Encode(), wikiUserAgent, 15*time.Second, &body); err != nil {
		return "", err
	}
	if len(body.Query.Search) == 0 {
		return "", ErrTopicNotFound
	}
	return body.Query.Search[0].Title, nil
}

// Sections lists a page's table-of-contents headings in order.
func (c *Client) Sections(ctx context.Context, page string) ([]Section, error) {
	params := url.Values{
		"action": {"parse"},
		"page":   {page},
		"format": {"json"},
		"prop":   {"sections"},
	}
	var body struct {
		Parse struct {
			Sections []Section `json:"sections"`
		} `json:"parse"`
	}
	if err := c.getJSON(ctx, c.urls.Wiki+"?"+params.Encode(), wikiUserAgent, 15*time.Second, &body); err != nil {
		return nil, err
	}
	return body.Parse.Sections, nil
}
