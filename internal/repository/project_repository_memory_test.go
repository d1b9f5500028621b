package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/elverra/zenika-api/internal/models"
)

func TestMemoryProjectRepositoryCRUD(t *testing.T) {
	repo := NewMemoryProjectRepository()

	p := &models.Project{Title: "Village well", Category: "water", Status: models.ProjectActive}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("id not assigned")
	}

	found, err := repo.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if found == nil || found.Title != "Village well" {
		t.Fatalf("unexpected project: %+v", found)
	}

	// The returned row is a copy; mutating it must not leak into the
	// store.
	found.Title = "mutated"
	again, _ := repo.GetByID(p.ID)
	if again.Title != "Village well" {
		t.Fatalf("store mutated through returned copy")
	}

	found.Title = "Village well and pump"
	if err := repo.Update(found); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	updated, _ := repo.GetByID(p.ID)
	if updated.Title != "Village well and pump" {
		t.Fatalf("update not applied: %s", updated.Title)
	}

	missing, err := repo.GetByID(9999)
	if err != nil || missing != nil {
		t.Fatalf("expected nil,nil for missing project, got: %+v %v", missing, err)
	}
}

func TestMemoryProjectRepositoryListFilters(t *testing.T) {
	repo := NewMemoryProjectRepository()

	for i := 0; i < 5; i++ {
		status := models.ProjectActive
		if i%2 == 1 {
			status = models.ProjectPendingReview
		}
		if err := repo.Create(&models.Project{
			Title:    fmt.Sprintf("Project %d", i),
			Category: "education",
			Status:   status,
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	rows, total, err := repo.List(ProjectListFilter{Status: models.ProjectActive})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("status filter broken: total=%d", total)
	}

	rows, total, err = repo.List(ProjectListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(rows) != 2 {
		t.Fatalf("pagination broken: total=%d page=%d", total, len(rows))
	}
}

func TestMemoryProjectRepositoryConcurrentSubmissions(t *testing.T) {
	repo := NewMemoryProjectRepository()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_ = repo.Create(&models.Project{Title: fmt.Sprintf("P%d", n)})
		}(i)
	}
	wg.Wait()

	_, total, err := repo.List(ProjectListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != writers {
		t.Fatalf("lost writes under concurrency: %d", total)
	}

	seen := map[uint]bool{}
	rows, _, _ := repo.List(ProjectListFilter{})
	for _, p := range rows {
		if seen[p.ID] {
			t.Fatalf("duplicate id assigned: %d", p.ID)
		}
		seen[p.ID] = true
	}
}
