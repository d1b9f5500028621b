package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/elverra/zenika-api/internal/models"
)

// MemoryProjectRepository keeps projects in memory behind a mutex.
// Data does not survive a restart; the GORM implementation is the
// durable alternative behind the same interface.
type MemoryProjectRepository struct {
	mu     sync.RWMutex
	nextID uint
	rows   map[uint]models.Project
}

// NewMemoryProjectRepository creates an empty in-memory repository.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{
		nextID: 1,
		rows:   make(map[uint]models.Project),
	}
}

// GetByID looks a project up by id.
func (r *MemoryProjectRepository) GetByID(id uint) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

// Create inserts a project and assigns its id.
func (r *MemoryProjectRepository) Create(p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	p.ID = r.nextID
	r.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.rows[p.ID] = *p
	return nil
}

// Update saves a project already present in the store.
func (r *MemoryProjectRepository) Update(p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[p.ID]; !ok {
		return nil
	}
	p.UpdatedAt = time.Now()
	r.rows[p.ID] = *p
	return nil
}

// List returns projects matching the filter, newest first.
func (r *MemoryProjectRepository) List(filter ProjectListFilter) ([]models.Project, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Project, 0, len(r.rows))
	for _, p := range r.rows {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if filter.PageSize > 0 {
		page, pageSize := normalizePage(filter.Page, filter.PageSize)
		start := (page - 1) * pageSize
		if start >= len(matched) {
			return []models.Project{}, total, nil
		}
		end := start + pageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}
