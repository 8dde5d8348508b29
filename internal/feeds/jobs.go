package feeds

import (
	"context"
	"time"
)

type Job struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// RemoteJobs lists recent remote software-development postings.
func (c *Client) RemoteJobs(ctx context.Context) ([]Job, error) {
	var body struct {
		Jobs []Job `json:"jobs"`
	}
	if err := c.getJSON(ctx, c.urls.Jobs, browserUserAgent, 10*time.Second, &body); err != nil {
		return nil, err
	}
	return body.Jobs, nil
}
