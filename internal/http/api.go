package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	exercises service.ExerciseService
	indexFile string
	logger    *logrus.Logger
}

func NewHandler(users service.UserService, exercises service.ExerciseService, indexFile string, logger *logrus.Logger) *Handler {
	return &Handler{
		users:     users,
		exercises: exercises,
		indexFile: indexFile,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogMiddleware(h.logger))

	router.StaticFile("/", h.indexFile)

	api := router.Group("/api")
	{
		api.POST("/users", h.createUser)
		api.GET("/users", h.listUsers)
		api.POST("/users/:_id/exercises", h.logExercise)
		api.GET("/users/:_id/logs", h.exerciseLog)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusAccepted, gin.H{"ok": "ok"})
		})
	}
}

type createUserRequest struct {
	Username string `form:"username" json:"username"`
}

// flexString decodes either a JSON string or a JSON number, so a numeric
// duration in a JSON body survives binding the same way "30" does in a form.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())
	return nil
}

type logExerciseRequest struct {
	Description string     `form:"description" json:"description"`
	Duration    flexString `form:"duration" json:"duration"`
	Date        string     `form:"date" json:"date"`
}

type userResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

type exerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	// ID carries the owning user's id, not the exercise's. Existing
	// consumers rely on it; see DESIGN.md.
	ID string `json:"_id"`
}

type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"_id"`
	Log      []logEntryResponse `json:"log"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	// Bodies may be form- or JSON-encoded; a malformed body is the same as
	// an absent username.
	_ = c.ShouldBind(&req)

	user, err := h.users.Create(c.Request.Context(), req.Username)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) logExercise(c *gin.Context) {
	var req logExerciseRequest
	_ = c.ShouldBind(&req)

	result, err := h.exercises.Log(c.Request.Context(), c.Param("_id"), service.LogExerciseInput{
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, exerciseResponse{
		Username:    result.User.Username,
		Description: result.Exercise.Description,
		Duration:    result.Exercise.Duration,
		Date:        result.Exercise.DateString(),
		ID:          result.User.ID.Hex(),
	})
}

func (h *Handler) exerciseLog(c *gin.Context) {
	result, err := h.exercises.History(c.Request.Context(), c.Param("_id"), service.HistoryQuery{
		From:  c.Query("from"),
		To:    c.Query("to"),
		Limit: c.Query("limit"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	log := make([]logEntryResponse, len(result.Exercises))
	for i, ex := range result.Exercises {
		log[i] = logEntryResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.DateString(),
		}
	}

	c.JSON(http.StatusOK, logResponse{
		Username: result.User.Username,
		Count:    len(log),
		ID:       result.User.ID.Hex(),
		Log:      log,
	})
}

// writeError maps service errors onto the two response shapes of the API:
// validation failures surface their reason with a 400, everything else is
// a generic 500 with the fault kept server-side.
func (h *Handler) writeError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}

	h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

func userToResponse(user domain.User) userResponse {
	return userResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}
