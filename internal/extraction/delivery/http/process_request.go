package http

import (
	"github.com/gin-gonic/gin"
)

// processExtractReq binds and validates the extract request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCalendarReq binds and validates the calendar projection request body.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
