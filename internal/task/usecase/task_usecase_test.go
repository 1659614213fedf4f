package usecase

import (
	"sort"
	"strings"
	"testing"
	"time"

	"taskdeck-backend/internal/task/domain"
	"taskdeck-backend/internal/task/repository"
	"taskdeck-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

// fakeTaskRepo mirrors the real repository's query semantics: conjunctive
// owner/status/search restriction, newest first.
type fakeTaskRepo struct {
	tasks map[string]*domain.Task
	now   time.Time // advances on every write so ordering is deterministic
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}, now: time.Now()}
}

func (f *fakeTaskRepo) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeTaskRepo) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = f.tick()
	task.UpdatedAt = task.CreatedAt
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskRepo) FindByID(id string) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (f *fakeTaskRepo) FindByOwner(ownerID string, filter repository.Filter) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range f.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(task.Title), needle) &&
				!strings.Contains(strings.ToLower(task.Description), needle) {
				continue
			}
		}
		copied := *task
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTaskRepo) Update(task *domain.Task) error {
	task.UpdatedAt = f.tick()
	copied := *task
	f.tasks[task.ID] = &copied
	return nil
}

func (f *fakeTaskRepo) Delete(id string) error {
	delete(f.tasks, id)
	return nil
}

func newTestUsecase() (TaskUsecase, *fakeTaskRepo) {
	repo := newFakeTaskRepo()
	return NewTaskUsecase(repo), repo
}

func kindOf(t *testing.T, err error) apperror.Kind {
	t.Helper()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Kind
}

func fieldsOf(t *testing.T, err error) []apperror.FieldError {
	t.Helper()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Fields
}

func mustCreate(t *testing.T, uc TaskUsecase, ownerID string, req CreateTaskRequest) *domain.Task {
	t.Helper()
	task, err := uc.CreateTask(ownerID, req)
	require.NoError(t, err)
	return task
}

// --- create ---

func TestCreateTaskDefaults(t *testing.T) {
	uc, _ := newTestUsecase()

	task := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "Write spec"})
	assert.Equal(t, "ann", task.OwnerID)
	assert.Equal(t, domain.StatusNotStarted, task.Status)
	assert.Nil(t, task.DueDate)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateTaskDueDate(t *testing.T) {
	uc, _ := newTestUsecase()

	due := "2026-09-15T10:00:00Z"
	task := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "a", DueDate: &due})
	require.NotNil(t, task.DueDate)
	assert.Equal(t, 2026, task.DueDate.Year())

	dateOnly := "2026-09-15"
	task = mustCreate(t, uc, "ann", CreateTaskRequest{Title: "b", DueDate: &dateOnly})
	require.NotNil(t, task.DueDate)
}

func TestCreateTaskValidation(t *testing.T) {
	badDate := "next tuesday"
	tests := []struct {
		name      string
		req       CreateTaskRequest
		wantField string
	}{
		{"missing title", CreateTaskRequest{}, "title"},
		{"blank title", CreateTaskRequest{Title: "   "}, "title"},
		{"title too long", CreateTaskRequest{Title: strings.Repeat("a", 201)}, "title"},
		{"description too long", CreateTaskRequest{Title: "t", Description: strings.Repeat("a", 1001)}, "description"},
		{"unknown status", CreateTaskRequest{Title: "t", Status: "done"}, "status"},
		{"unparseable due date", CreateTaskRequest{Title: "t", DueDate: &badDate}, "due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUsecase()
			_, err := uc.CreateTask("ann", tt.req)
			assert.Equal(t, apperror.KindValidation, kindOf(t, err))
			require.NotEmpty(t, fieldsOf(t, err))
			assert.Equal(t, tt.wantField, fieldsOf(t, err)[0].Field)
			assert.Empty(t, repo.tasks)
		})
	}
}

func TestCreateTaskBoundaryLengths(t *testing.T) {
	uc, _ := newTestUsecase()

	task := mustCreate(t, uc, "ann", CreateTaskRequest{
		Title:       strings.Repeat("a", 200),
		Description: strings.Repeat("b", 1000),
	})
	assert.Len(t, task.Title, 200)
}

// --- list & filters ---

func seedMixedTasks(t *testing.T, uc TaskUsecase) {
	t.Helper()
	done := string(domain.StatusCompleted)
	inProgress := string(domain.StatusInProgress)

	mustCreate(t, uc, "ann", CreateTaskRequest{Title: "Write spec", Description: "draft the foo chapter"})
	mustCreate(t, uc, "ann", CreateTaskRequest{Title: "Review Foo PR", Status: inProgress})
	mustCreate(t, uc, "ann", CreateTaskRequest{Title: "Ship release", Status: done})
	mustCreate(t, uc, "bob", CreateTaskRequest{Title: "foo for bob", Status: done})
}

func TestListTasksScopedToOwner(t *testing.T) {
	uc, _ := newTestUsecase()
	seedMixedTasks(t, uc)

	tasks, err := uc.ListTasks("ann", ListTasksQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, "ann", task.OwnerID)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	uc, _ := newTestUsecase()
	seedMixedTasks(t, uc)

	tasks, err := uc.ListTasks("ann", ListTasksQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Ship release", tasks[0].Title)
	assert.Equal(t, "Write spec", tasks[2].Title)
}

func TestListTasksStatusFilter(t *testing.T) {
	uc, _ := newTestUsecase()
	seedMixedTasks(t, uc)

	tasks, err := uc.ListTasks("ann", ListTasksQuery{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ship release", tasks[0].Title)
}

func TestListTasksSearchFilter(t *testing.T) {
	uc, _ := newTestUsecase()
	seedMixedTasks(t, uc)

	// Case-insensitive, matches title or description.
	tasks, err := uc.ListTasks("ann", ListTasksQuery{Search: "FOO"})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

func TestListTasksFiltersCompose(t *testing.T) {
	uc, _ := newTestUsecase()
	seedMixedTasks(t, uc)

	tasks, err := uc.ListTasks("ann", ListTasksQuery{Search: "foo", Status: "in-progress"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Review Foo PR", tasks[0].Title)
}

func TestListTasksInvalidStatusIsRejected(t *testing.T) {
	uc, _ := newTestUsecase()
	seedMixedTasks(t, uc)

	_, err := uc.ListTasks("ann", ListTasksQuery{Status: "done"})
	assert.Equal(t, apperror.KindValidation, kindOf(t, err))
	assert.Equal(t, "invalid status", fieldsOf(t, err)[0].Message)
}

func TestListTasksEmptyIsNotNil(t *testing.T) {
	uc, _ := newTestUsecase()

	tasks, err := uc.ListTasks("nobody", ListTasksQuery{})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

// --- get / read-write asymmetry ---

func TestGetTaskByID(t *testing.T) {
	uc, _ := newTestUsecase()
	created := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "mine"})

	task, err := uc.GetTaskByID("ann", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, task.ID)

	_, err = uc.GetTaskByID("ann", "missing")
	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
}

func TestReadWriteAsymmetry(t *testing.T) {
	uc, _ := newTestUsecase()
	foreign := mustCreate(t, uc, "bob", CreateTaskRequest{Title: "bob's task"})

	// Reads hide foreign tasks entirely.
	_, err := uc.GetTaskByID("ann", foreign.ID)
	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))

	// Writes against an existing foreign task are forbidden, not hidden.
	title := "hijack"
	_, err = uc.UpdateTask("ann", foreign.ID, UpdateTaskRequest{Title: &title})
	assert.Equal(t, apperror.KindAuthorization, kindOf(t, err))

	err = uc.DeleteTask("ann", foreign.ID)
	assert.Equal(t, apperror.KindAuthorization, kindOf(t, err))

	// The owner still sees an untouched task.
	task, err := uc.GetTaskByID("bob", foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob's task", task.Title)
}

// --- update ---

func TestUpdateTaskPartial(t *testing.T) {
	uc, _ := newTestUsecase()
	created := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "before", Description: "keep me"})

	status := "completed"
	updated, err := uc.UpdateTask("ann", created.ID, UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, "before", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateTaskClearsDueDate(t *testing.T) {
	uc, _ := newTestUsecase()
	due := "2026-09-15"
	created := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "t", DueDate: &due})
	require.NotNil(t, created.DueDate)

	empty := ""
	updated, err := uc.UpdateTask("ann", created.ID, UpdateTaskRequest{DueDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
}

func TestUpdateTaskValidation(t *testing.T) {
	uc, repo := newTestUsecase()
	created := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "before"})

	badStatus := "done"
	_, err := uc.UpdateTask("ann", created.ID, UpdateTaskRequest{Status: &badStatus})
	assert.Equal(t, apperror.KindValidation, kindOf(t, err))

	blank := " "
	_, err = uc.UpdateTask("ann", created.ID, UpdateTaskRequest{Title: &blank})
	assert.Equal(t, apperror.KindValidation, kindOf(t, err))

	// Failed updates leave the record untouched.
	stored := repo.tasks[created.ID]
	assert.Equal(t, "before", stored.Title)
	assert.Equal(t, domain.StatusNotStarted, stored.Status)
}

func TestUpdateTaskMissing(t *testing.T) {
	uc, _ := newTestUsecase()

	title := "x"
	_, err := uc.UpdateTask("ann", "missing", UpdateTaskRequest{Title: &title})
	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
}

// --- delete ---

func TestDeleteTaskIsIdempotentViaNotFound(t *testing.T) {
	uc, _ := newTestUsecase()
	created := mustCreate(t, uc, "ann", CreateTaskRequest{Title: "t"})

	require.NoError(t, uc.DeleteTask("ann", created.ID))

	err := uc.DeleteTask("ann", created.ID)
	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))

	_, err = uc.GetTaskByID("ann", created.ID)
	assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
}
