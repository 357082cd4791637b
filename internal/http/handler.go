package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "repairdesk.com/repairdesk/internal/data_models"
	apperrors "repairdesk.com/repairdesk/internal/errors"
	middleware "repairdesk.com/repairdesk/internal/http/middlewares"
	"repairdesk.com/repairdesk/internal/http/validators"
	"repairdesk.com/repairdesk/internal/services"
	"repairdesk.com/repairdesk/internal/sessions"
)

type Handler struct {
	jobService     *services.JobService
	clientService  *services.ClientService
	userService    *services.UserService
	authService    *services.AuthService
	messageService *services.MessageService
}

func NewHandler(
	jobService *services.JobService,
	clientService *services.ClientService,
	userService *services.UserService,
	authService *services.AuthService,
	messageService *services.MessageService,
) *Handler {
	return &Handler{
		jobService:     jobService,
		clientService:  clientService,
		userService:    userService,
		authService:    authService,
		messageService: messageService,
	}
}

// httpError maps domain exceptions onto their status code and everything
// else onto a generic 500 with the given message.
func httpError(err error, fallback string) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}

func (h *Handler) CreateJob(c echo.Context) error {
	var req dto.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if _, err := h.jobService.CreateJob(c.Request().Context(), req); err != nil {
		return httpError(err, "failed to create job")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) GetListJobs(c echo.Context) error {
	var req dto.ListJobsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	jobs, err := h.jobService.ListJobs(c.Request().Context(), req.Type)
	if err != nil {
		return httpError(err, "failed to list jobs")
	}

	return c.JSON(http.StatusOK, echo.Map{"jobs": jobs})
}

func (h *Handler) EditJobInfo(c echo.Context) error {
	var req dto.EditJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.jobService.EditJob(c.Request().Context(), req); err != nil {
		return httpError(err, "failed to edit job")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) CreateClient(c echo.Context) error {
	var req dto.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateClientRequest(&req); err != nil {
		return err
	}

	if _, err := h.clientService.CreateClient(c.Request().Context(), req); err != nil {
		return httpError(err, "failed to create client")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) GetClients(c echo.Context) error {
	clients, err := h.clientService.ListClients(c.Request().Context())
	if err != nil {
		return httpError(err, "failed to list clients")
	}

	return c.JSON(http.StatusOK, echo.Map{"clients": clients})
}

func (h *Handler) DeleteClient(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.clientService.DeleteClient(c.Request().Context(), id); err != nil {
		return httpError(err, "failed to delete client")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return err
	}

	if _, err := h.userService.CreateUser(c.Request().Context(), req); err != nil {
		return httpError(err, "failed to create user")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) GetUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err, "failed to list users")
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *Handler) EditUser(c echo.Context) error {
	var req dto.EditUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.userService.EditUser(c.Request().Context(), req); err != nil {
		return httpError(err, "failed to edit user")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return httpError(err, "failed to delete user")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) SendMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSendMessageRequest(&req); err != nil {
		return err
	}

	msg, err := h.messageService.SendMessage(c.Request().Context(), req)
	if err != nil {
		return httpError(err, "failed to send message")
	}

	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) LoadWebSocketMessages(c echo.Context) error {
	var req dto.LoadMessagesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	messages, err := h.messageService.LoadConversation(c.Request().Context(), req)
	if err != nil {
		return httpError(err, "failed to load messages")
	}

	return c.JSON(http.StatusOK, echo.Map{"messages": messages})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return httpError(err, "failed to log in")
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	token, ok := c.Get(middleware.SessionTokenKey).(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return httpError(err, "failed to log out")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) Me(c echo.Context) error {
	user, ok := c.Get(middleware.SessionUserKey).(*sessions.SessionUser)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}

	return c.JSON(http.StatusOK, user)
}

func parseIDParam(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
