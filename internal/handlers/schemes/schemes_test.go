package schemes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/dto"
	"github.com/hopeworks/fundtrack/internal/service/schemeservice"
	"github.com/hopeworks/fundtrack/pkg/utils"
)

func NewMock(t *testing.T) (*SchemeHandler, *MockService, *MockDonationService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	donations := NewMockDonationService(ctrl)
	handler := New(service, donations)
	defer ctrl.Finish()
	return handler, service, donations
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	schemes := []domain.Scheme{
		{ID: "1", Title: "Clean Water Initiative", TargetAmount: 50000, CurrentAmount: 28500, Category: "Environment"},
		{ID: "2", Title: "Education for All", TargetAmount: 75000, CurrentAmount: 42000, Category: "Education"},
	}
	service.EXPECT().
		List(gomock.Any(), "water", "Environment", "newest").
		Return(schemes, nil)

	req := httptest.NewRequest("GET", "/api/schemes?search=water&category=Environment&sort=newest", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.SchemeResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Clean Water Initiative", resp[0].Title)
	assert.InDelta(t, 57.0, resp[0].Progress, 1e-9)
	assert.InDelta(t, 56.0, resp[1].Progress, 1e-9)
}

func TestListHandlerEmpty(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().
		List(gomock.Any(), "", "", "").
		Return([]domain.Scheme{}, nil)

	req := httptest.NewRequest("GET", "/api/schemes", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// empty list serializes as [], never null
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestCategoriesHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().
		Categories(gomock.Any()).
		Return([]string{"All", "Environment", "Education"}, nil)

	req := httptest.NewRequest("GET", "/api/schemes/categories", nil)
	rr := httptest.NewRecorder()

	handler.Categories(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []string{"All", "Environment", "Education"}, resp)
}

func TestGetHandler(t *testing.T) {
	handler, service, donations := NewMock(t)

	scheme := &domain.Scheme{
		ID: "1", Title: "Clean Water Initiative",
		TargetAmount: 50000, CurrentAmount: 28500, Category: "Environment",
	}
	recent := []domain.ActivityEntry{
		{DonationID: "d2", UserName: "Jane Smith", SchemeTitle: "Clean Water Initiative", Amount: 200, Date: time.Now()},
		{DonationID: "d1", UserName: "Admin User", SchemeTitle: "Clean Water Initiative", Amount: 150, Date: time.Now().Add(-time.Hour)},
	}

	service.EXPECT().Get(gomock.Any(), "1").Return(scheme, nil)
	donations.EXPECT().Highest(gomock.Any(), "1").Return(&domain.Donation{ID: "d2", Amount: 200}, nil)
	donations.EXPECT().SchemeActivity(gomock.Any(), "1", 5).Return(recent, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/schemes/1", nil), "id", "1")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.SchemeDetailResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Clean Water Initiative", resp.Title)
	require.Len(t, resp.RecentDonations, 2)
	require.NotNil(t, resp.HighestDonation)
	assert.Equal(t, "d2", resp.HighestDonation.DonationID)
	assert.Equal(t, 200.0, resp.HighestDonation.Amount)
}

func TestGetHandlerHighestOutsideRecentWindow(t *testing.T) {
	handler, service, donations := NewMock(t)

	scheme := &domain.Scheme{ID: "1", Title: "Clean Water Initiative", TargetAmount: 50000}
	recent := []domain.ActivityEntry{
		{DonationID: "d9", UserName: "Jane Smith", Amount: 20, Date: time.Now()},
	}
	all := append([]domain.ActivityEntry{}, recent...)
	all = append(all, domain.ActivityEntry{DonationID: "old", UserName: "Admin User", Amount: 900, Date: time.Now().AddDate(0, -1, 0)})

	service.EXPECT().Get(gomock.Any(), "1").Return(scheme, nil)
	donations.EXPECT().Highest(gomock.Any(), "1").Return(&domain.Donation{ID: "old", Amount: 900}, nil)
	donations.EXPECT().SchemeActivity(gomock.Any(), "1", 5).Return(recent, nil)
	donations.EXPECT().SchemeActivity(gomock.Any(), "1", 0).Return(all, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/schemes/1", nil), "id", "1")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.SchemeDetailResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.HighestDonation)
	assert.Equal(t, "old", resp.HighestDonation.DonationID)
}

func TestGetHandlerNoDonations(t *testing.T) {
	handler, service, donations := NewMock(t)

	scheme := &domain.Scheme{ID: "3", Title: "Tech Skills Training", TargetAmount: 60000}

	service.EXPECT().Get(gomock.Any(), "3").Return(scheme, nil)
	donations.EXPECT().Highest(gomock.Any(), "3").Return(nil, nil)
	donations.EXPECT().SchemeActivity(gomock.Any(), "3", 5).Return([]domain.ActivityEntry{}, nil)

	req := withURLParam(httptest.NewRequest("GET", "/api/schemes/3", nil), "id", "3")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.SchemeDetailResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Nil(t, resp.HighestDonation)
	assert.Empty(t, resp.RecentDonations)
}

func TestGetHandlerNotFound(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().Get(gomock.Any(), "nope").Return(nil, schemeservice.ErrSchemeNotFound)

	req := withURLParam(httptest.NewRequest("GET", "/api/schemes/nope", nil), "id", "nope")
	rr := httptest.NewRecorder()

	handler.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Scheme not found", resp.Message)
}

func TestCreateHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"title":"River Cleanup","description":"Restore the riverbank","targetAmount":30000,"category":"Environment","endDate":"2026-12-31"}`,
			prepareMock: func() {
				end := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
				service.EXPECT().
					Create(gomock.Any(), "River Cleanup", "Restore the riverbank", 30000.0, "Environment", "", end).
					Return(&domain.Scheme{
						ID:           "9",
						Title:        "River Cleanup",
						Description:  "Restore the riverbank",
						TargetAmount: 30000,
						Category:     "Environment",
						EndDate:      end,
						CreatedAt:    time.Now(),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Missing target amount",
			body:         `{"title":"River Cleanup","description":"Restore the riverbank","category":"Environment","endDate":"2026-12-31"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/schemes", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
