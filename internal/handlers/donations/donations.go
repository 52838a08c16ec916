package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/dto"
	"github.com/hopeworks/fundtrack/internal/service/schemeservice"
	"github.com/hopeworks/fundtrack/pkg/auth"
	"github.com/hopeworks/fundtrack/pkg/utils"
	"github.com/hopeworks/fundtrack/pkg/validate"
)

type Service interface {
	Add(ctx context.Context, userID, schemeID string, amount float64, message string) (*domain.Donation, error)
	Summary(ctx context.Context, userID string) (*domain.DonorSummary, error)
}

// SchemeService is used to reject donations to unknown schemes before the
// store records them; the store itself does not check references.
type SchemeService interface {
	Get(ctx context.Context, id string) (*domain.Scheme, error)
}

type DonationHandler struct {
	donationService Service
	schemeService   SchemeService
}

func New(donationService Service, schemeService SchemeService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		schemeService:   schemeService,
	}
}

// Add godoc
//
//	@Summary		Record a donation
//	@Description	Record a contribution from the session user to a scheme
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddDonationRequestDTO	true	"Donation request body"
//	@Param			X-User-ID	header	string	true	"Session user id"
//	@Success		201	{object}	dto.DonationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Unknown scheme"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations [post]
func (h *DonationHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AddDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.schemeService.Get(r.Context(), req.SchemeID); err != nil {
		if errors.Is(err, schemeservice.ErrSchemeNotFound) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown scheme")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	donation, err := h.donationService.Add(r.Context(), user.ID, req.SchemeID, req.Amount, req.Message)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDonationDTO(donation))
}

// Mine godoc
//
//	@Summary		Donor dashboard
//	@Description	The session user's donations with derived totals
//	@Tags			Donations
//	@Produce		json
//	@Param			X-User-ID	header	string	true	"Session user id"
//	@Success		200	{object}	dto.DonorSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/donations/mine [get]
func (h *DonationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.donationService.Summary(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.DonorSummaryResponseDTO{
		Donations:        make([]dto.DonationResponseDTO, 0, len(summary.Donations)),
		TotalDonated:     summary.TotalDonated,
		SchemesSupported: summary.SchemesSupported,
		Latest:           dto.NewActivityDTOs(summary.Latest),
	}
	for i := range summary.Donations {
		response.Donations = append(response.Donations, dto.NewDonationDTO(&summary.Donations[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
