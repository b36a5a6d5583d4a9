package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"schooljournal/models"
)

// ScheduleHandler lists and creates schedule entries
type ScheduleHandler struct {
	schedule ScheduleStore
}

func NewScheduleHandler(schedule ScheduleStore) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// List returns the schedule of the class given by the required classId
// query parameter, ordered by day of week, then start time
func (h *ScheduleHandler) List(c *gin.Context) {
	classID, err := strconv.Atoi(c.Query("classId"))
	if err != nil {
		badRequest(c, "classId required")
		return
	}

	entries, err := h.schedule.ListByClass(c.Request.Context(), classID)
	if err != nil {
		storeError(c, "schedule list", err)
		return
	}
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// Create inserts a schedule entry. The room defaults to an empty string.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "classId, subjectId, dayOfWeek, timeStart and timeEnd required")
		return
	}

	id, err := h.schedule.Create(c.Request.Context(), req)
	if err != nil {
		storeError(c, "schedule create", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": msgScheduleCreated})
}
