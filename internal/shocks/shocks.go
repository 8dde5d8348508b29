/**
* Name: 			shocks.go
* Description: 		커리어 쇼크 알림 (해고 뉴스 + 채용 동향)
* Workflow: 		두 피드 병렬 조회, 실패한 피드는 빈 목록, 병합 결과 캐시
 */

package shocks

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/cache"
	"github.com/depu2006/CareerGenomeai/internal/feeds"
	"github.com/depu2006/CareerGenomeai/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	newsLimit       = 10
	surgeCompanies  = 5
	emergingMinimum = 2
	surgeMinimum    = 1

	// CacheTTL is how long merged alerts are reused.
	CacheTTL = 15 * time.Minute
)

var trackedSkills = []string{"React", "Python", "GenAI", "AWS", "Docker", "Node.js", "AI", "Kubernetes"}

var cacheKey = cache.Key("shocks", "alerts", "v1")

type Source interface {
	LayoffNews(ctx context.Context, limit int) ([]feeds.NewsItem, error)
	RemoteJobs(ctx context.Context) ([]feeds.Job, error)
}

type Service struct {
	src   Source
	cache *cache.Cache
	log   *zap.Logger
}

// c may be nil to disable caching.
func NewService(src Source, c *cache.Cache, log *zap.Logger) *Service {
	return &Service{src: src, cache: c, log: log}
}

func (s *Service) Alerts(ctx context.Context) []models.Alert {
	if s.cache != nil {
		if cached, ok := cache.GetJSON[[]models.Alert](ctx, s.cache, cacheKey); ok {
			return cached
		}
	}

	var layoffs, hiring []models.Alert
	var newsFailed, jobsFailed bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		news, err := s.src.LayoffNews(gctx, newsLimit)
		if err != nil {
			s.log.Warn("layoff news unavailable", zap.Error(err))
			newsFailed = true
			return nil
		}
		layoffs = LayoffAlerts(news)
		return nil
	})
	g.Go(func() error {
		jobs, err := s.src.RemoteJobs(gctx)
		if err != nil {
			s.log.Warn("job feed unavailable", zap.Error(err))
			jobsFailed = true
			return nil
		}
		hiring = JobAlerts(jobs)
		return nil
	})
	_ = g.Wait()

	alerts := append(append([]models.Alert{}, layoffs...), hiring...)
	// 한쪽이라도 실패한 부분 결과는 캐시하지 않음
	if s.cache != nil && !newsFailed && !jobsFailed && len(alerts) > 0 {
		cache.SetJSON(ctx, s.cache, cacheKey, alerts)
	}
	return alerts
}

func LayoffAlerts(items []feeds.NewsItem) []models.Alert {
	alerts := make([]models.Alert, 0, len(items))
	for _, it := range items {
		alerts = append(alerts, models.Alert{
			Type:    "Layoff Shock",
			Message: " " + it.Title,
			URL:     it.Link,
			Date:    it.Published,
		})
	}
	return alerts
}

func count(n int) *int { return &n }

// JobAlerts derives emerging-skill, hiring-surge and overall-trend alerts from a job sample.
func JobAlerts(jobs []feeds.Job) []models.Alert {
	skillCounts := make(map[string]int, len(trackedSkills))
	hiring := map[string]int{}
	companyURL := map[string]string{}
	var companies []string

	for _, job := range jobs {
		desc := strings.ToLower(job.Description)
		for _, skill := range trackedSkills {
			if strings.Contains(desc, strings.ToLower(skill)) {
				skillCounts[skill]++
			}
		}
		if job.CompanyName == "" {
			continue
		}
		if _, ok := hiring[job.CompanyName]; !ok {
			companies = append(companies, job.CompanyName)
			companyURL[job.CompanyName] = job.URL
		}
		hiring[job.CompanyName]++
	}

	alerts := []models.Alert{}
	for _, skill := range trackedSkills {
		if n := skillCounts[skill]; n > emergingMinimum {
			alerts = append(alerts, models.Alert{
				Type:    "Emerging Skill",
				Message: fmt.Sprintf(" %s appears in %d recent job listings", skill, n),
				Count:   count(n),
				URL:     "https://remotive.com/remote-jobs/software-dev?search=" + url.QueryEscape(skill),
			})
		}
	}

	// 동률이면 처음 등장한 순서 유지
	sort.SliceStable(companies, func(i, j int) bool { return hiring[companies[i]] > hiring[companies[j]] })
	if len(companies) > surgeCompanies {
		companies = companies[:surgeCompanies]
	}
	for _, c := range companies {
		if n := hiring[c]; n > surgeMinimum {
			alerts = append(alerts, models.Alert{
				Type:    "Hiring Surge",
				Message: fmt.Sprintf(" %s is hiring (%d open roles)", c, n),
				Count:   count(n),
				URL:     companyURL[c],
			})
		}
	}

	return append(alerts, models.Alert{
		Type:    "Hiring Trend",
		Message: fmt.Sprintf(" Analyzed %d recent remote software jobs for trends", len(jobs)),
		Count:   count(len(jobs)),
	})
}
