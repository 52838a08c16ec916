package schemes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/dto"
	"github.com/hopeworks/fundtrack/internal/service/schemeservice"
	"github.com/hopeworks/fundtrack/pkg/utils"
	"github.com/hopeworks/fundtrack/pkg/validate"
)

type Service interface {
	List(ctx context.Context, search, category, sortKey string) ([]domain.Scheme, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*domain.Scheme, error)
	Create(ctx context.Context, title, description string, target float64, category, imageURL string, endDate time.Time) (*domain.Scheme, error)
}

// DonationService supplies the donation-derived parts of a scheme detail.
type DonationService interface {
	Highest(ctx context.Context, schemeID string) (*domain.Donation, error)
	SchemeActivity(ctx context.Context, schemeID string, n int) ([]domain.ActivityEntry, error)
}

const detailActivityLimit = 5

type SchemeHandler struct {
	schemeService   Service
	donationService DonationService
}

func New(schemeService Service, donationService DonationService) *SchemeHandler {
	return &SchemeHandler{
		schemeService:   schemeService,
		donationService: donationService,
	}
}

// List godoc
//
//	@Summary		List schemes
//	@Description	Browse schemes with optional search, category filter and sort order
//	@Tags			Schemes
//	@Produce		json
//	@Param			search		query	string	false	"Substring matched against title and description"
//	@Param			category	query	string	false	"Exact category, or All"
//	@Param			sort		query	string	false	"One of: progress, newest, ending-soon, amount-high, amount-low"	default(progress)
//	@Success		200	{array}		dto.SchemeResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes [get]
func (h *SchemeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	schemes, err := h.schemeService.List(r.Context(), q.Get("search"), q.Get("category"), q.Get("sort"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.SchemeResponseDTO, 0, len(schemes))
	for i := range schemes {
		response = append(response, dto.NewSchemeDTO(&schemes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Categories godoc
//
//	@Summary	List scheme categories
//	@Tags		Schemes
//	@Produce	json
//	@Success	200	{array}		string
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/schemes/categories [get]
func (h *SchemeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.schemeService.Categories(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// Get godoc
//
//	@Summary		Get scheme details
//	@Description	One scheme with its highest donation and latest five donations
//	@Tags			Schemes
//	@Produce		json
//	@Param			id	path		string	true	"Scheme ID"
//	@Success		200	{object}	dto.SchemeDetailResponseDTO
//	@Failure		404	{object}	utils.Response	"Scheme not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes/{id} [get]
func (h *SchemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	scheme, err := h.schemeService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, schemeservice.ErrSchemeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Scheme not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	highest, err := h.donationService.Highest(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	recent, err := h.donationService.SchemeActivity(r.Context(), id, detailActivityLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.SchemeDetailResponseDTO{
		SchemeResponseDTO: dto.NewSchemeDTO(scheme),
		RecentDonations:   dto.NewActivityDTOs(recent),
	}
	if highest != nil {
		for _, entry := range recent {
			if entry.DonationID == highest.ID {
				top := dto.NewActivityDTO(entry)
				response.HighestDonation = &top
				break
			}
		}
		if response.HighestDonation == nil {
			// highest donation is older than the recent window; resolve it alone
			all, err := h.donationService.SchemeActivity(r.Context(), id, 0)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			for _, entry := range all {
				if entry.DonationID == highest.ID {
					top := dto.NewActivityDTO(entry)
					response.HighestDonation = &top
					break
				}
			}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Create a scheme
//	@Description	Admin-only creation of a new fundraising scheme
//	@Tags			Schemes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateSchemeRequestDTO	true	"Scheme to create"
//	@Param			X-User-ID	header	string	true	"Session user id"
//	@Success		201	{object}	dto.SchemeResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/schemes [post]
func (h *SchemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSchemeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid end date")
		return
	}

	scheme, err := h.schemeService.Create(r.Context(), req.Title, req.Description, req.TargetAmount, req.Category, req.ImageURL, endDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSchemeDTO(scheme))
}
