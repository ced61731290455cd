package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gomarket/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// RatingSweepService periodically recomputes every active product's stored
// average rating from the ratings table. The stored value can drift after an
// admin soft-deletes a product's reviews, so a nightly sweep brings it back
// in line.
type RatingSweepService struct {
	productRepo repositories.ProductRepository
	reviewRepo  repositories.ReviewRepository
	cron        *cron.Cron
}

// NewRatingSweepService creates a new rating sweep service
func NewRatingSweepService(
	productRepo repositories.ProductRepository,
	reviewRepo repositories.ReviewRepository,
) *RatingSweepService {
	return &RatingSweepService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		cron:        cron.New(),
	}
}

// sweepSchedule runs the sweep at 03:00 every day
const sweepSchedule = "0 3 * * *"

// Start schedules the nightly sweep
func (s *RatingSweepService) Start() error {
	if _, err := s.cron.AddFunc(sweepSchedule, func() {
		s.SweepOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule rating sweep: %w", err)
	}

	s.cron.Start()
	log.Println("🚀 Rating sweep scheduled (03:00 daily)")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *RatingSweepService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Rating sweep stopped")
}

// SweepOnce recomputes stored averages for all active products
func (s *RatingSweepService) SweepOnce(ctx context.Context) {
	start := time.Now()

	ids, err := s.productRepo.ListActiveIDs(ctx)
	if err != nil {
		log.Printf("❌ Rating sweep query error: %v", err)
		return
	}

	updated := 0
	for _, id := range ids {
		average, err := s.reviewRepo.AverageGrade(ctx, id)
		if err != nil {
			log.Printf("❌ Rating sweep average error (product %d): %v", id, err)
			continue
		}
		if err := s.productRepo.UpdateRating(ctx, id, average); err != nil {
			log.Printf("❌ Rating sweep update error (product %d): %v", id, err)
			continue
		}
		updated++
	}

	log.Printf("✅ Rating sweep completed: %d products in %s", updated, time.Since(start).Round(time.Millisecond))
}
