package shocks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/cache"
	"github.com/depu2006/CareerGenomeai/internal/feeds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	news    []feeds.NewsItem
	jobs    []feeds.Job
	newsErr error
	jobsErr error
	calls   atomic.Int32
}

func (f *fakeSource) LayoffNews(context.Context, int) ([]feeds.NewsItem, error) {
	f.calls.Add(1)
	return f.news, f.newsErr
}

func (f *fakeSource) RemoteJobs(context.Context) ([]feeds.Job, error) {
	return f.jobs, f.jobsErr
}

func sampleJobs() []feeds.Job {
	return []feeds.Job{
		{CompanyName: "Acme", URL: "https://acme/1", Description: "React and Docker and AWS"},
		{CompanyName: "Acme", URL: "https://acme/2", Description: "React, docker"},
		{CompanyName: "Globex", URL: "https://globex/1", Description: "react with docker"},
		{CompanyName: "Initech", URL: "https://initech/1", Description: "Python"},
	}
}

func TestJobAlerts(t *testing.T) {
	alerts := JobAlerts(sampleJobs())
	require.Len(t, alerts, 4)

	assert.Equal(t, "Emerging Skill", alerts[0].Type)
	assert.Equal(t, " React appears in 3 recent job listings", alerts[0].Message)
	assert.Equal(t, "https://remotive.com/remote-jobs/software-dev?search=React", alerts[0].URL)
	assert.Equal(t, " Docker appears in 3 recent job listings", alerts[1].Message)

	assert.Equal(t, "Hiring Surge", alerts[2].Type)
	assert.Equal(t, " Acme is hiring (2 open roles)", alerts[2].Message)
	assert.Equal(t, "https://acme/1", alerts[2].URL)

	assert.Equal(t, "Hiring Trend", alerts[3].Type)
	assert.Equal(t, 4, *alerts[3].Count)
}

func TestJobAlertsEmpty(t *testing.T) {
	alerts := JobAlerts(nil)
	require.Len(t, alerts, 1)
	assert.Equal(t, " Analyzed 0 recent remote software jobs for trends", alerts[0].Message)
}

func TestAlertsMergesAndCaches(t *testing.T) {
	src := &fakeSource{
		news: []feeds.NewsItem{{Title: "Acme cuts 200", Link: "https://news/1", Published: "Mon"}},
		jobs: sampleJobs(),
	}
	svc := NewService(src, cache.New(nil, time.Minute, zap.NewNop()), zap.NewNop())

	alerts := svc.Alerts(context.Background())
	require.Len(t, alerts, 5)
	assert.Equal(t, "Layoff Shock", alerts[0].Type)
	assert.Equal(t, " Acme cuts 200", alerts[0].Message)

	again := svc.Alerts(context.Background())
	assert.Equal(t, alerts, again)
	assert.EqualValues(t, 1, src.calls.Load())
}

func TestAlertsToleratesFeedFailure(t *testing.T) {
	src := &fakeSource{newsErr: errors.New("rss down"), jobs: sampleJobs()}
	alerts := NewService(src, nil, zap.NewNop()).Alerts(context.Background())
	require.Len(t, alerts, 4)
	assert.Equal(t, "Emerging Skill", alerts[0].Type)

	src = &fakeSource{newsErr: errors.New("rss down"), jobsErr: errors.New("jobs down")}
	assert.Empty(t, NewService(src, nil, zap.NewNop()).Alerts(context.Background()))
}

func TestAlertsDoesNotCachePartialResult(t *testing.T) {
	src := &fakeSource{newsErr: errors.New("rss down"), jobs: sampleJobs()}
	svc := NewService(src, cache.New(nil, CacheTTL, zap.NewNop()), zap.NewNop())

	require.Len(t, svc.Alerts(context.Background()), 4)

	// 뉴스 피드가 복구되면 바로 반영
	src.newsErr = nil
	src.news = []feeds.NewsItem{{Title: "BigCo cuts 500 jobs", Link: "https://news/1"}}
	alerts := svc.Alerts(context.Background())
	require.Len(t, alerts, 5)
	assert.Equal(t, "Layoff Shock", alerts[0].Type)
	assert.EqualValues(t, 2, src.calls.Load())

	require.Len(t, svc.Alerts(context.Background()), 5)
	assert.EqualValues(t, 2, src.calls.Load())
}
