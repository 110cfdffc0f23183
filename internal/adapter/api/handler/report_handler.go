package handler

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/usecase"
	"protegeo/pkg/errors"
	"protegeo/pkg/response"
	"protegeo/pkg/utils"
)

type ReportHandler struct {
	reportUseCase *usecase.ReportUseCase
}

func NewReportHandler(reportUseCase *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

type createReportRequest struct {
	Title       string   `json:"title" validate:"required,min=5,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=700"`
	Category    string   `json:"category" validate:"required,min=2,max=50"`
	Photos      []string `json:"photos" validate:"omitempty,max=5,dive,url"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (h *ReportHandler) CreateReport(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.reportUseCase.CreateReport(c.Request().Context(), userID, usecase.CreateReportInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Photos:      req.Photos,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, report)
}

func (h *ReportHandler) GetReport(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	report, err := h.reportUseCase.GetReport(c.Request().Context(), reportID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}

func (h *ReportHandler) ListReports(c echo.Context) error {
	status := c.QueryParam("status")
	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reportUseCase.ListReports(
		c.Request().Context(),
		status,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func (h *ReportHandler) ListMyReports(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	reports, total, err := h.reportUseCase.ListMyReports(
		c.Request().Context(),
		userID,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reports, total, pagination.Page, pagination.PageSize)
}

func (h *ReportHandler) ApproveResolution(c echo.Context) error {
	userID := c.Get("uid").(string)
	reportID := c.Param("id")
	if reportID == "" {
		return response.Error(c, errors.BadRequest("Report ID is required", nil))
	}

	report, err := h.reportUseCase.ApproveResolution(c.Request().Context(), reportID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, report)
}
