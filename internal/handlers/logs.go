package handlers

import (
	"net/http"

	"github.com/jensfenty/Exercise-Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Get exercise log
// @Description  Returns the user's entries ascending by date. from/to are inclusive calendar-date bounds (YYYY-MM-DD); either, both, or neither may be given. An unparsable bound yields an empty log, not an error. limit caps the number of entries; non-numeric or non-positive values apply no cap.
// @Tags         exercises
// @Produce      json
// @Param        id     path    string  true   "User id"
// @Param        from   query   string  false  "Start of range (YYYY-MM-DD)"  example(2023-01-01)
// @Param        to     query   string  false  "End of range (YYYY-MM-DD)"    example(2023-01-31)
// @Param        limit  query   string  false  "Max entries returned"         example(10)
// @Success      200    {object}  service.UserLog
// @Failure      500    {object}  map[string]string
// @Router       /api/users/{id}/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	log, err := h.services.Logs.Get(c.Request.Context(), c.Param("id"), service.LogParams{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		h.respondServiceError(c, "logs_get_failed", err,
			"user_id", c.Param("id"), "from", c.Query("from"), "to", c.Query("to"))
		return
	}
	c.JSON(http.StatusOK, log)
}
