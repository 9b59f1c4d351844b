package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/DennisSalmazs/project-service/internal/projects/domain"
)

// ProjectLister is the storage slice the warmer needs.
type ProjectLister interface {
	FindAll(ctx context.Context) ([]domain.Project, error)
}

// CountsFetcher pulls task counts; a cached gateway makes each fetch
// also warm the cache.
type CountsFetcher interface {
	Counts(ctx context.Context, projectCode string) (domain.TaskCounts, error)
}

// Scheduler periodically warms the task-count cache for every live
// project so manager listings rarely pay the remote round-trip.
type Scheduler struct {
	lister  ProjectLister
	fetcher CountsFetcher
	spec    string
}

func NewScheduler(lister ProjectLister, fetcher CountsFetcher, spec string) *Scheduler {
	if spec == "" {
		spec = "@every 5m"
	}
	return &Scheduler{lister: lister, fetcher: fetcher, spec: spec}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New()

	_, err := c.AddFunc(s.spec, s.refreshCounts)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Printf("Cron scheduler started (refreshing task counts %s)", s.spec)
	c.Start()
}

func (s *Scheduler) refreshCounts() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	projects, err := s.lister.FindAll(ctx)
	if err != nil {
		log.Printf("Counts refresh failed to list projects: %v", err)
		return
	}

	var warmed, failed int
	for _, p := range projects {
		if p.Deleted {
			continue
		}
		if _, err := s.fetcher.Counts(ctx, p.Code); err != nil {
			failed++
			continue
		}
		warmed++
	}

	log.Printf("Counts refresh done: warmed=%d failed=%d", warmed, failed)
}
