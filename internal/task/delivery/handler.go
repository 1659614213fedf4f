package delivery

import (
	"taskdeck-backend/internal/task/usecase"
	"taskdeck-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns all tasks for the authenticated user
// GET /tasks?search=&status=
func (h *TaskHandler) GetTasks(c *gin.Context) {
	ownerID := c.GetString("userID")

	query := usecase.ListTasksQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	tasks, err := h.taskUsecase.ListTasks(ownerID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, tasks)
}

// GetTaskByID returns a specific task
// GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	ownerID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTaskByID(ownerID, taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, task)
}

// CreateTask creates a new task owned by the authenticated user
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID := c.GetString("userID")

	var req usecase.CreateTaskRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.taskUsecase.CreateTask(ownerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, task)
}

// UpdateTask updates an existing task
// PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID := c.GetString("userID")
	taskID := c.Param("id")

	var req usecase.UpdateTaskRequest
	if err := response.Bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	task, err := h.taskUsecase.UpdateTask(ownerID, taskID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, task)
}

// DeleteTask deletes a task
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(ownerID, taskID); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "task deleted")
}
