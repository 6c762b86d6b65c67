package handlers

import (
	"net/http"
	"strings"

	"github.com/jensfenty/Exercise-Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// flexValue binds a JSON string or number, and plain text from form bodies.
// HTML form posts send duration as a string while JSON clients send a number;
// both must be accepted.
type flexValue string

func (v *flexValue) UnmarshalJSON(b []byte) error {
	*v = flexValue(strings.Trim(string(b), `"`))
	return nil
}

// Request DTO for entry creation; accepts JSON and form-encoded bodies.
type addExerciseRequest struct {
	Description string    `json:"description" form:"description"`
	Duration    flexValue `json:"duration" form:"duration"`
	Date        string    `json:"date" form:"date"`
}

// AddExerciseRequest is an exported model for Swagger docs of the addExercise payload.
type AddExerciseRequest struct {
	Description string `json:"description" example:"run"`
	// Duration in minutes; a quoted string is accepted too
	Duration int `json:"duration" example:"30"`
	// Optional; YYYY-MM-DD. Defaults to today.
	Date string `json:"date,omitempty" example:"2023-05-10"`
}

// @Summary      Add exercise entry
// @Description  Records an entry for the user. Validation and not-found failures return status 200 with an error payload.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id    path   string             true  "User id"
// @Param        body  body   AddExerciseRequest true  "Entry payload"
// @Success      200   {object}  service.EntryDetail
// @Failure      500   {object}  map[string]string
// @Router       /api/users/{id}/exercises [post]
func (h *Handler) addExercise(c *gin.Context) {
	var req addExerciseRequest
	_ = c.ShouldBind(&req)

	entry, err := h.services.Exercises.Add(c.Request.Context(), c.Param("id"), service.NewEntryParams{
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		h.respondServiceError(c, "exercise_add_failed", err, "user_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, entry)
}
