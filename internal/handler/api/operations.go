package api

import (
	"context"
	"net/http"

	reqdto "hotel-core/internal/handler/dto/request"
	resdto "hotel-core/internal/handler/dto/response"
	"hotel-core/internal/handler/httperr"
	"hotel-core/internal/usecase/commands"
	"hotel-core/internal/usecase/queries"
	"hotel-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PolicyHandler struct {
	cmds commands.PolicyCommands
	q    queries.PolicyQueries
}

func NewPolicyHandler(cmds commands.PolicyCommands, q queries.PolicyQueries) *PolicyHandler {
	return &PolicyHandler{cmds: cmds, q: q}
}

// @Summary List cancellation policies
// @Tags cancellation-policies
// @Produce json
// @Security BearerAuth
// @Param active_only query bool false "Only active policies"
// @Success 200 {array} resdto.PolicyResponse
// @Router /cancellation-policies [get]
func (h *PolicyHandler) List(c *gin.Context) {
	var query reqdto.ListPoliciesQuery
	if !bindQuery(c, &query) {
		return
	}
	items, err := h.q.List(c.Request.Context(), query.ActiveOnly)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPolicyList(items))
}

// @Summary Create cancellation policy
// @Tags cancellation-policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePolicyRequest true "Create policy request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cancellation-policies [post]
func (h *PolicyHandler) Create(c *gin.Context) {
	var req reqdto.CreatePolicyRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

type HousekeepingHandler struct {
	cmds commands.HousekeepingCommands
	q    queries.HousekeepingQueries
}

func NewHousekeepingHandler(cmds commands.HousekeepingCommands, q queries.HousekeepingQueries) *HousekeepingHandler {
	return &HousekeepingHandler{cmds: cmds, q: q}
}

// @Summary List housekeeping tasks
// @Tags housekeeping
// @Produce json
// @Security BearerAuth
// @Param status query string false "Task status"
// @Param room_id query string false "Room ID"
// @Param assigned_to query string false "Assignee user ID"
// @Param scheduled_date query string false "Scheduled date (YYYY-MM-DD)"
// @Param limit query int false "Max rows (max 200)"
// @Success 200 {array} resdto.TaskResponse
// @Router /housekeeping/tasks [get]
func (h *HousekeepingHandler) List(c *gin.Context) {
	var query reqdto.ListTasksQuery
	if !bindQuery(c, &query) {
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}
	items, err := h.q.List(c.Request.Context(), filter, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTaskList(items))
}

// @Summary Assign task
// @Tags housekeeping
// @Accept json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.AssignTaskRequest true "Assignee"
// @Success 204 "No Content"
// @Router /housekeeping/tasks/{id}/assign [post]
func (h *HousekeepingHandler) Assign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.AssignTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Assign(c.Request.Context(), id, req.AssigneeID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Start task
// @Tags housekeeping
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Router /housekeeping/tasks/{id}/start [post]
func (h *HousekeepingHandler) Start(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Start(c.Request.Context(), id, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete task
// @Tags housekeeping
// @Accept json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.TaskNotesRequest false "Notes"
// @Success 204 "No Content"
// @Router /housekeeping/tasks/{id}/complete [post]
func (h *HousekeepingHandler) Complete(c *gin.Context) {
	h.withNotes(c, h.cmds.Complete)
}

// @Summary Verify task
// @Description Verifying a checkout cleaning makes the room available again.
// @Tags housekeeping
// @Accept json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.TaskNotesRequest false "Notes"
// @Success 204 "No Content"
// @Router /housekeeping/tasks/{id}/verify [post]
func (h *HousekeepingHandler) Verify(c *gin.Context) {
	h.withNotes(c, h.cmds.Verify)
}

// @Summary Fail task
// @Tags housekeeping
// @Accept json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body reqdto.TaskNotesRequest false "Notes"
// @Success 204 "No Content"
// @Router /housekeeping/tasks/{id}/fail [post]
func (h *HousekeepingHandler) Fail(c *gin.Context) {
	h.withNotes(c, func(ctx context.Context, id uuid.UUID, notes string, _ shared.Actor) error {
		return h.cmds.Fail(ctx, id, notes)
	})
}

func (h *HousekeepingHandler) withNotes(c *gin.Context, apply func(ctx context.Context, id uuid.UUID, notes string, actor shared.Actor) error) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.TaskNotesRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	if err := apply(c.Request.Context(), id, req.Notes, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Set room maintenance status
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.MaintenanceStatusRequest true "New status"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{id}/maintenance-status [put]
func (h *RoomHandler) SetMaintenanceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.MaintenanceStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		httperr.BadRequest(c, err, err.Error())
		return
	}
	if err := h.cmds.SetMaintenanceStatus(c.Request.Context(), id, status); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.Get(c)
}
