package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"inbox-triage/internal/calendar"
	"inbox-triage/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from pasted emails
// @Description Segments the pasted text into emails and extracts actionable tasks, ranked by priority, due date and title.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Raw email text and extraction options"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request - empty input"
// @Failure     409 {object} response.Resp "Conflict - an extraction is already running"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extraction/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Calendar godoc
// @Summary     Project tasks onto a work-week calendar
// @Description Buckets tasks by exact due date onto a Monday-to-Friday grid for the requested month. Year and month default to the current month when omitted.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body calendarReq true "Tasks and the month to project onto"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/extraction/calendar [POST]
func (h *handler) Calendar(c *gin.Context) {
	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now().UTC()
	year, month := req.Year, time.Month(req.Month)
	if year == 0 {
		year = now.Year()
	}
	if req.Month == 0 {
		month = now.Month()
	}

	projected := calendar.Project(req.toTasks(), year, month, now)

	response.OK(c, newCalendarResp(projected))
}
