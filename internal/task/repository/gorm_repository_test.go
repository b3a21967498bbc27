package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmanager-api/internal/task/domain"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, repo TaskRepository, task *domain.Task) *domain.Task {
	t.Helper()
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return task
}

func newTask(userID, title string, due time.Time, priority domain.Priority, status domain.Status) *domain.Task {
	return &domain.Task{
		UserID:   userID,
		Title:    title,
		DueDate:  due,
		Priority: priority,
		Status:   status,
	}
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestRepository_FindByUser_OwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)
	due := time.Now().Add(24 * time.Hour)

	mustCreate(t, repo, newTask("alice", "mine", due, domain.PriorityMedium, domain.StatusPending))
	mustCreate(t, repo, newTask("bob", "not mine", due, domain.PriorityMedium, domain.StatusPending))

	tasks, err := repo.FindByUser("alice", ListFilter{})
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "mine" {
		t.Fatalf("expected only alice's task, got %v", titles(tasks))
	}
}

func TestRepository_FindByUser_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)
	due := time.Now().Add(24 * time.Hour)

	mustCreate(t, repo, newTask("alice", "pending high", due, domain.PriorityHigh, domain.StatusPending))
	done := mustCreate(t, repo, newTask("alice", "completed low", due, domain.PriorityLow, domain.StatusCompleted))
	now := time.Now()
	done.CompletedAt = &now
	if err := repo.Update(done); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	status := domain.StatusCompleted
	tasks, err := repo.FindByUser("alice", ListFilter{Status: &status})
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "completed low" {
		t.Fatalf("status filter returned %v", titles(tasks))
	}

	priority := domain.PriorityHigh
	tasks, err = repo.FindByUser("alice", ListFilter{Priority: &priority})
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "pending high" {
		t.Fatalf("priority filter returned %v", titles(tasks))
	}
}

func TestRepository_FindByUser_DueDayFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)

	onDay := time.Date(2030, 1, 1, 15, 30, 0, 0, time.UTC)
	otherDay := time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC)

	mustCreate(t, repo, newTask("alice", "new year", onDay, domain.PriorityMedium, domain.StatusPending))
	mustCreate(t, repo, newTask("alice", "day after", otherDay, domain.PriorityMedium, domain.StatusPending))

	day := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks, err := repo.FindByUser("alice", ListFilter{DueDay: &day})
	if err != nil {
		t.Fatalf("FindByUser() error = %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "new year" {
		t.Fatalf("due-day filter returned %v", titles(tasks))
	}
}

func TestRepository_FindByUser_Sorting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)
	base := time.Now().Add(24 * time.Hour)

	mustCreate(t, repo, newTask("alice", "medium soon", base, domain.PriorityMedium, domain.StatusPending))
	mustCreate(t, repo, newTask("alice", "low later", base.Add(48*time.Hour), domain.PriorityLow, domain.StatusPending))
	mustCreate(t, repo, newTask("alice", "high middle", base.Add(24*time.Hour), domain.PriorityHigh, domain.StatusPending))

	tests := []struct {
		name   string
		sortBy string
		want   []string
	}{
		{
			name:   "due date ascending",
			sortBy: SortByDueDate,
			want:   []string{"medium soon", "high middle", "low later"},
		},
		{
			name:   "priority rank order",
			sortBy: SortByPriority,
			want:   []string{"high middle", "medium soon", "low later"},
		},
		{
			name:   "default is due date descending",
			sortBy: "",
			want:   []string{"low later", "high middle", "medium soon"},
		},
		{
			name:   "unknown key falls back to default",
			sortBy: "title",
			want:   []string{"low later", "high middle", "medium soon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := repo.FindByUser("alice", ListFilter{SortBy: tt.sortBy})
			if err != nil {
				t.Fatalf("FindByUser() error = %v", err)
			}
			got := titles(tasks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTaskRepository(db)

	task := mustCreate(t, repo, newTask("alice", "short lived", time.Now().Add(time.Hour), domain.PriorityMedium, domain.StatusPending))

	if err := repo.Delete(task.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	found, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found != nil {
		t.Fatalf("expected task to be gone, got %+v", found)
	}
}
