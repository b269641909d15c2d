package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/features/task/service"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{
		service: service,
	}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup, admin *gin.RouterGroup) {
	router.GET("/tasks", h.listActive)

	tasks := admin.Group("/tasks")
	{
		tasks.GET("", h.listAll)
		tasks.POST("", h.create)
		tasks.PUT("/:id", h.update)
		tasks.DELETE("/:id", h.delete)
	}
}

// @Summary List active tasks
// @Description Tasks currently offered to users. Inactive tasks are hidden but stay resolvable for historical completions.
// @Tags tasks
// @Produce json
// @Security TelegramInitData
// @Success 200 {array} models.Task
// @Router /tasks [get]
func (h *TaskHandler) listActive(c *gin.Context) {
	tasks, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary List all tasks (admin)
// @Tags admin
// @Produce json
// @Security TelegramInitData
// @Success 200 {array} models.Task
// @Router /admin/tasks [get]
func (h *TaskHandler) listAll(c *gin.Context) {
	tasks, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary Create task (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param task body service.CreateTaskInput true "Task definition"
// @Success 201 {object} models.Task
// @Failure 400 {object} map[string]string "Invalid definition"
// @Failure 409 {object} map[string]string "Task id already exists"
// @Router /admin/tasks [post]
func (h *TaskHandler) create(c *gin.Context) {
	var input service.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// @Summary Update task (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security TelegramInitData
// @Param id path string true "Task ID"
// @Param task body service.CreateTaskInput true "Task definition"
// @Success 200 {object} models.Task
// @Failure 404 {object} map[string]string "Task not found"
// @Router /admin/tasks/{id} [put]
func (h *TaskHandler) update(c *gin.Context) {
	var input service.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// @Summary Delete task (admin)
// @Tags admin
// @Security TelegramInitData
// @Param id path string true "Task ID"
// @Success 204 "Task deleted"
// @Failure 404 {object} map[string]string "Task not found"
// @Router /admin/tasks/{id} [delete]
func (h *TaskHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
