package revalidate

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	partnerdomain "github.com/procoat-sa/site-backend/internal/partners/domain"
	projectdomain "github.com/procoat-sa/site-backend/internal/projects/domain"
)

const warmTimeout = 10 * time.Second

type ProjectLister interface {
	List(ctx context.Context) ([]projectdomain.Project, error)
}

type PartnerLister interface {
	List(ctx context.Context) ([]partnerdomain.Partner, error)
}

// Warmer re-primes the public page payload cache on a schedule, so pages
// dropped by an invalidation are rebuilt ahead of traffic instead of on the
// first visitor.
type Warmer struct {
	client   *redis.Client
	projects ProjectLister
	partners PartnerLister
	cron     *cron.Cron
}

func NewWarmer(client *redis.Client, projects ProjectLister, partners PartnerLister) *Warmer {
	return &Warmer{
		client:   client,
		projects: projects,
		partners: partners,
		cron:     cron.New(),
	}
}

// Start registers the warm job with the given cron spec and starts the scheduler.
func (w *Warmer) Start(schedule string) error {
	if _, err := w.cron.AddFunc(schedule, w.Warm); err != nil {
		return err
	}

	log.Printf("Cache warmer started (schedule %q)", schedule)
	w.cron.Start()
	return nil
}

func (w *Warmer) Stop() {
	w.cron.Stop()
}

// Warm refreshes the cached payloads for the projects page and the landing
// page partner strip.
func (w *Warmer) Warm() {
	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	if projects, err := w.projects.List(ctx); err != nil {
		log.Printf("cache warm: list projects failed: %v", err)
	} else {
		w.store(ctx, "/projects", projects)
	}

	if partners, err := w.partners.List(ctx); err != nil {
		log.Printf("cache warm: list partners failed: %v", err)
	} else {
		w.store(ctx, "/", partners)
	}
}

func (w *Warmer) store(ctx context.Context, path string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("cache warm: marshal %s failed: %v", path, err)
		return
	}
	if err := w.client.Set(ctx, PageKey(path), data, 0).Err(); err != nil {
		log.Printf("cache warm: store %s failed: %v", path, err)
	}
}
