package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"laptop-service-center/models"
)

// ComplaintStore keeps complaint records keyed by row id
type ComplaintStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewComplaintStore(db *gorm.DB) *ComplaintStore {
	return &ComplaintStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy of the store that stamps new rows using now
func (s *ComplaintStore) WithClock(now func() time.Time) *ComplaintStore {
	return &ComplaintStore{db: s.db, now: now}
}

// Create inserts one complaint as Pending and returns its row id.
// Status and CreatedAt on the argument are ignored.
func (s *ComplaintStore) Create(ctx context.Context, c *models.Complaint) (uint, error) {
	record := *c
	record.ID = 0
	record.Status = models.StatusPending
	record.CreatedAt = s.now()

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, storageError("create complaint", err)
	}
	return record.ID, nil
}

func (s *ComplaintStore) Get(ctx context.Context, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.db.WithContext(ctx).First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageError("get complaint", err)
	}
	return &complaint, nil
}

// ListAll returns every complaint, newest first, ties broken by id descending
func (s *ComplaintStore) ListAll(ctx context.Context) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, storageError("list complaints", err)
	}
	return complaints, nil
}

// UpdateStatus changes the status column of one row and nothing else
func (s *ComplaintStore) UpdateStatus(ctx context.Context, id uint, status models.ComplaintStatus) error {
	db := s.db.WithContext(ctx)
	result := db.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return storageError("update complaint status", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when the value is unchanged
	var count int64
	if err := db.Model(&models.Complaint{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return storageError("update complaint status", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the number of complaints in each status
func (s *ComplaintStore) CountByStatus(ctx context.Context) (map[models.ComplaintStatus]int64, error) {
	var rows []struct {
		Status models.ComplaintStatus
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError("count complaints", err)
	}

	counts := make(map[models.ComplaintStatus]int64, len(models.ComplaintStatuses))
	for _, status := range models.ComplaintStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ListOpenCreatedBefore returns complaints created before cutoff that are not Completed, oldest first
func (s *ComplaintStore) ListOpenCreatedBefore(ctx context.Context, cutoff time.Time) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.WithContext(ctx).
		Where("status <> ? AND created_at < ?", models.StatusCompleted, cutoff).
		Order("created_at ASC").
		Order("id ASC").
		Find(&complaints).Error
	if err != nil {
		return nil, storageError("list open complaints", err)
	}
	return complaints, nil
}
