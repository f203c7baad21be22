package supplierfeed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"storehub/internal/api/models"

	"gorm.io/gorm"
)

// SyncService pulls supplier feeds and reconciles them against the
// product catalogue.
type SyncService struct {
	client      *FeedClient
	db          *gorm.DB
	workerCount int
}

// SyncConfig holds configuration for the sync service
type SyncConfig struct {
	WorkerCount int
	FeedRPS     float64
}

// NewSyncService creates a new sync service instance
func NewSyncService(config SyncConfig, db *gorm.DB) *SyncService {
	workerCount := config.WorkerCount
	if workerCount == 0 {
		workerCount = 4
	}
	rps := config.FeedRPS
	if rps == 0 {
		rps = 2
	}

	return &SyncService{
		client:      NewFeedClient(rps),
		db:          db,
		workerCount: workerCount,
	}
}

// SyncState records the outcome of the last sync per supplier
type SyncState struct {
	ID            int64  `gorm:"primaryKey"`
	SupplierID    int64  `gorm:"uniqueIndex;not null"`
	Status        string `gorm:"not null"`
	LastRunAt     *time.Time
	LastSuccessAt *time.Time
	ErrorMessage  string
	UpdatedAt     time.Time
}

// TableName specifies the table name for SyncState
func (SyncState) TableName() string {
	return "supplier_sync_state"
}

// SyncAll fetches every active supplier feed through the worker pool
// and waits for completion.
func (s *SyncService) SyncAll(ctx context.Context) error {
	if err := s.db.AutoMigrate(&SyncState{}); err != nil {
		return fmt.Errorf("failed to migrate sync state: %w", err)
	}

	var suppliers []models.Supplier
	err := s.db.Where("active = ? AND feed_url IS NOT NULL", true).Find(&suppliers).Error
	if err != nil {
		return fmt.Errorf("failed to list suppliers: %w", err)
	}
	if len(suppliers) == 0 {
		log.Println("[SupplierSync] No suppliers with feeds configured")
		return nil
	}

	pool := NewWorkerPool(s.workerCount)
	pool.Start()

	for _, supplier := range suppliers {
		sup := supplier
		pool.Submit(func(taskCtx context.Context) error {
			return s.syncSupplier(taskCtx, &sup)
		})
	}

	pool.Wait()
	return nil
}

// syncSupplier fetches one feed and applies it to the catalogue
func (s *SyncService) syncSupplier(ctx context.Context, supplier *models.Supplier) error {
	log.Printf("[SupplierSync] Syncing supplier %d (%s)", supplier.ID, supplier.Name)
	s.updateSyncState(supplier.ID, "running", nil)

	feed, err := s.client.Fetch(ctx, *supplier.FeedURL)
	if err != nil {
		s.updateSyncState(supplier.ID, "failed", err)
		return fmt.Errorf("supplier %d: %w", supplier.ID, err)
	}

	var applied int
	for _, item := range feed.Items {
		if item.SKU == "" || item.Name == "" {
			continue
		}
		if err := s.applyItem(supplier, &item); err != nil {
			log.Printf("[SupplierSync] Supplier %d item %s: %v", supplier.ID, item.SKU, err)
			continue
		}
		applied++
	}

	s.updateSyncState(supplier.ID, "completed", nil)
	log.Printf("[SupplierSync] Supplier %d done, %d/%d items applied",
		supplier.ID, applied, len(feed.Items))
	return nil
}

// applyItem upserts one feed line. New SKUs create products, known
// SKUs get price updates and a delivery movement for the stock delta.
func (s *SyncService) applyItem(supplier *models.Supplier, item *FeedItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.Where("slug = ?", item.SKU).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sku := item.SKU
			product = models.Product{
				Slug:       &sku,
				Name:       item.Name,
				PriceCents: item.PriceCents,
				StockQty:   item.StockQty,
				SupplierID: &supplier.ID,
				Active:     true,
			}
			if item.Description != "" {
				product.Description = &item.Description
			}
			if item.ImageURL != "" {
				product.ImageURL = &item.ImageURL
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			if item.StockQty > 0 {
				return tx.Create(&models.StockMovement{
					ProductID:  product.ID,
					SupplierID: &supplier.ID,
					Delta:      item.StockQty,
					Reason:     "delivery",
				}).Error
			}
			return nil
		}
		if err != nil {
			return err
		}

		delta := item.StockQty - product.StockQty
		updates := map[string]interface{}{
			"price_cents": item.PriceCents,
			"stock_qty":   item.StockQty,
		}
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return err
		}

		if delta != 0 {
			return tx.Create(&models.StockMovement{
				ProductID:  product.ID,
				SupplierID: &supplier.ID,
				Delta:      delta,
				Reason:     "delivery",
			}).Error
		}
		return nil
	})
}

// updateSyncState upserts the sync state row for a supplier
func (s *SyncService) updateSyncState(supplierID int64, status string, syncErr error) {
	now := time.Now()
	state := SyncState{
		SupplierID: supplierID,
		Status:     status,
		LastRunAt:  &now,
	}
	if status == "completed" {
		state.LastSuccessAt = &now
	}
	if syncErr != nil {
		state.ErrorMessage = syncErr.Error()
	}

	update := map[string]interface{}{
		"status":      status,
		"last_run_at": now,
	}
	if status == "completed" {
		update["last_success_at"] = now
		update["error_message"] = ""
	}
	if syncErr != nil {
		update["error_message"] = syncErr.Error()
	}

	res := s.db.Model(&SyncState{}).Where("supplier_id = ?", supplierID).Updates(update)
	if res.Error == nil && res.RowsAffected == 0 {
		s.db.Create(&state)
	}
}
