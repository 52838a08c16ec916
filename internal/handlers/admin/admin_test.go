package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/dto"
	"github.com/hopeworks/fundtrack/pkg/utils"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestReportHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Stats(gomock.Any()).Return(&domain.Stats{
		TotalRaised:    225,
		TotalUsers:     2,
		TotalDonations: 2,
	}, nil)
	service.EXPECT().SchemePerformance(gomock.Any()).Return([]domain.SchemePerformance{
		{SchemeID: "1", Title: "Clean Water Initiative", TotalRaised: 150, DonorCount: 1, Progress: 57},
		{SchemeID: "2", Title: "Education for All", TotalRaised: 75, DonorCount: 1, Progress: 56},
	}, nil)
	service.EXPECT().DonorPerformance(gomock.Any()).Return([]domain.DonorPerformance{
		{UserID: "1", Name: "Jane Smith", Email: "jane@example.com", TotalDonated: 225, DonationCount: 2},
		{UserID: "2", Name: "Admin User", Email: "admin@example.com"},
	}, nil)
	service.EXPECT().RecentActivity(gomock.Any(), 10).Return([]domain.ActivityEntry{
		{DonationID: "d2", UserName: "Jane Smith", SchemeTitle: "Education for All", Amount: 75, Date: time.Now()},
		{DonationID: "d1", UserName: "Jane Smith", SchemeTitle: "Clean Water Initiative", Amount: 150, Date: time.Now().AddDate(0, 0, -5)},
	}, nil)

	req := httptest.NewRequest("GET", "/api/admin/report", nil)
	rr := httptest.NewRecorder()

	handler.Report(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.AdminReportResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 225.0, resp.Stats.TotalRaised)
	assert.Equal(t, 2, resp.Stats.TotalUsers)
	require.Len(t, resp.SchemePerformance, 2)
	assert.Equal(t, "Clean Water Initiative", resp.SchemePerformance[0].Title)
	assert.Equal(t, 150.0, resp.SchemePerformance[0].TotalRaised)
	require.Len(t, resp.DonorPerformance, 2)
	assert.Equal(t, "Jane Smith", resp.DonorPerformance[0].Name)
	require.Len(t, resp.RecentActivity, 2)
	assert.Equal(t, "d2", resp.RecentActivity[0].DonationID)
}

func TestReportHandlerEmptyStore(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Stats(gomock.Any()).Return(&domain.Stats{}, nil)
	service.EXPECT().SchemePerformance(gomock.Any()).Return([]domain.SchemePerformance{}, nil)
	service.EXPECT().DonorPerformance(gomock.Any()).Return([]domain.DonorPerformance{}, nil)
	service.EXPECT().RecentActivity(gomock.Any(), 10).Return([]domain.ActivityEntry{}, nil)

	req := httptest.NewRequest("GET", "/api/admin/report", nil)
	rr := httptest.NewRecorder()

	handler.Report(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.AdminReportResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Zero(t, resp.Stats.TotalRaised)
	assert.Empty(t, resp.SchemePerformance)
	assert.Empty(t, resp.DonorPerformance)
	assert.Empty(t, resp.RecentActivity)
}

func TestReportHandlerServiceError(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("read failed"))

	req := httptest.NewRequest("GET", "/api/admin/report", nil)
	rr := httptest.NewRecorder()

	handler.Report(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Internal server error", resp.Message)
}
