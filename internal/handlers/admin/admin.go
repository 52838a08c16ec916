package admin

import (
	"context"
	"net/http"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/dto"
	"github.com/hopeworks/fundtrack/pkg/utils"
)

type Service interface {
	Stats(ctx context.Context) (*domain.Stats, error)
	SchemePerformance(ctx context.Context) ([]domain.SchemePerformance, error)
	DonorPerformance(ctx context.Context) ([]domain.DonorPerformance, error)
	RecentActivity(ctx context.Context, n int) ([]domain.ActivityEntry, error)
}

const recentActivityLimit = 10

type AdminHandler struct {
	reportService Service
}

func New(reportService Service) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
	}
}

// Report godoc
//
//	@Summary		Admin dashboard report
//	@Description	Totals, per-scheme and per-donor performance, and the ten latest donations
//	@Tags			Admin
//	@Produce		json
//	@Param			X-User-ID	header	string	true	"Session user id"
//	@Success		200	{object}	dto.AdminReportResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/report [get]
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Stats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	schemeRows, err := h.reportService.SchemePerformance(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	donorRows, err := h.reportService.DonorPerformance(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	activity, err := h.reportService.RecentActivity(r.Context(), recentActivityLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AdminReportResponseDTO{
		Stats: dto.StatsDTO{
			TotalRaised:    stats.TotalRaised,
			TotalUsers:     stats.TotalUsers,
			TotalDonations: stats.TotalDonations,
		},
		SchemePerformance: make([]dto.SchemePerformanceDTO, 0, len(schemeRows)),
		DonorPerformance:  make([]dto.DonorPerformanceDTO, 0, len(donorRows)),
		RecentActivity:    dto.NewActivityDTOs(activity),
	}
	for _, row := range schemeRows {
		response.SchemePerformance = append(response.SchemePerformance, dto.SchemePerformanceDTO{
			ID:          row.SchemeID,
			Title:       row.Title,
			TotalRaised: row.TotalRaised,
			DonorCount:  row.DonorCount,
			Progress:    row.Progress,
		})
	}
	for _, row := range donorRows {
		response.DonorPerformance = append(response.DonorPerformance, dto.DonorPerformanceDTO{
			ID:            row.UserID,
			Name:          row.Name,
			Email:         row.Email,
			TotalDonated:  row.TotalDonated,
			DonationCount: row.DonationCount,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
