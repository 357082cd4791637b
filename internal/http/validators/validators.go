package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "repairdesk.com/repairdesk/internal/data_models"
)

func ValidateCreateClientRequest(r *dto.CreateClientRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	if r.UserName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userName is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Login == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "login is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateSendMessageRequest(r *dto.SendMessageRequest) error {
	if r.FromUserID == 0 || r.ToUserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "fromUserId and toUserId are required")
	}
	if r.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "body is required")
	}
	return nil
}
