package dto

import (
	"time"

	"github.com/hopeworks/fundtrack/internal/domain"
)

func NewUserDTO(user *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func NewSchemeDTO(scheme *domain.Scheme) SchemeResponseDTO {
	return SchemeResponseDTO{
		ID:            scheme.ID,
		Title:         scheme.Title,
		Description:   scheme.Description,
		TargetAmount:  scheme.TargetAmount,
		CurrentAmount: scheme.CurrentAmount,
		Category:      scheme.Category,
		ImageURL:      scheme.ImageURL,
		EndDate:       scheme.EndDate.Format(time.RFC3339),
		CreatedAt:     scheme.CreatedAt.Format(time.RFC3339),
		Progress:      scheme.Progress(),
	}
}

func NewDonationDTO(donation *domain.Donation) DonationResponseDTO {
	return DonationResponseDTO{
		ID:       donation.ID,
		UserID:   donation.UserID,
		SchemeID: donation.SchemeID,
		Amount:   donation.Amount,
		Date:     donation.Date.Format(time.RFC3339),
		Message:  donation.Message,
	}
}

func NewActivityDTO(entry domain.ActivityEntry) ActivityDTO {
	return ActivityDTO{
		DonationID:  entry.DonationID,
		UserName:    entry.UserName,
		SchemeTitle: entry.SchemeTitle,
		Amount:      entry.Amount,
		Date:        entry.Date.Format(time.RFC3339),
		Message:     entry.Message,
	}
}

func NewActivityDTOs(entries []domain.ActivityEntry) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewActivityDTO(entry))
	}
	return out
}
