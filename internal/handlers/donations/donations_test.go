package donations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/hopeworks/fundtrack/internal/domain"
	"github.com/hopeworks/fundtrack/internal/dto"
	"github.com/hopeworks/fundtrack/internal/service/schemeservice"
	"github.com/hopeworks/fundtrack/pkg/auth"
	"github.com/hopeworks/fundtrack/pkg/utils"
)

func NewMock(t *testing.T) (*DonationHandler, *MockService, *MockSchemeService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	schemes := NewMockSchemeService(ctrl)
	handler := New(service, schemes)
	defer ctrl.Finish()
	return handler, service, schemes
}

func withSessionUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserKey, user))
}

func TestAddHandler(t *testing.T) {
	handler, service, schemes := NewMock(t)

	jane := &domain.User{ID: "1", Name: "Jane Smith", Email: "jane@example.com"}

	tests := []struct {
		name          string
		body          string
		user          *domain.User
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful donation",
			body: `{"schemeId":"1","amount":100,"message":"Keep going"}`,
			user: jane,
			prepareMock: func() {
				schemes.EXPECT().Get(gomock.Any(), "1").Return(&domain.Scheme{ID: "1"}, nil)
				service.EXPECT().
					Add(gomock.Any(), "1", "1", 100.0, "Keep going").
					Return(&domain.Donation{
						ID:       "d1",
						UserID:   "1",
						SchemeID: "1",
						Amount:   100,
						Date:     time.Now(),
						Message:  "Keep going",
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "No session user",
			body:          `{"schemeId":"1","amount":100}`,
			user:          nil,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			user:          jane,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Zero amount rejected",
			body:         `{"schemeId":"1","amount":0}`,
			user:         jane,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative amount rejected",
			body:         `{"schemeId":"1","amount":-5}`,
			user:         jane,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown scheme",
			body: `{"schemeId":"404","amount":100}`,
			user: jane,
			prepareMock: func() {
				schemes.EXPECT().Get(gomock.Any(), "404").Return(nil, schemeservice.ErrSchemeNotFound)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Unknown scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/donations", bytes.NewReader([]byte(tt.body)))
			if tt.user != nil {
				req = withSessionUser(req, tt.user)
			}
			rr := httptest.NewRecorder()

			handler.Add(rr, req)

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

func TestMineHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	jane := &domain.User{ID: "1", Name: "Jane Smith", Email: "jane@example.com"}
	summary := &domain.DonorSummary{
		Donations: []domain.Donation{
			{ID: "d1", UserID: "1", SchemeID: "1", Amount: 150, Date: time.Now().AddDate(0, 0, -5)},
			{ID: "d2", UserID: "1", SchemeID: "2", Amount: 75, Date: time.Now()},
		},
		TotalDonated:     225,
		SchemesSupported: 2,
		Latest: []domain.ActivityEntry{
			{DonationID: "d2", UserName: "Jane Smith", SchemeTitle: "Education for All", Amount: 75, Date: time.Now()},
			{DonationID: "d1", UserName: "Jane Smith", SchemeTitle: "Clean Water Initiative", Amount: 150, Date: time.Now().AddDate(0, 0, -5)},
		},
	}
	service.EXPECT().Summary(gomock.Any(), "1").Return(summary, nil)

	req := withSessionUser(httptest.NewRequest("GET", "/api/donations/mine", nil), jane)
	rr := httptest.NewRecorder()

	handler.Mine(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.DonorSummaryResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 225.0, resp.TotalDonated)
	assert.Equal(t, 2, resp.SchemesSupported)
	require.Len(t, resp.Donations, 2)
	require.Len(t, resp.Latest, 2)
	assert.Equal(t, "Education for All", resp.Latest[0].SchemeTitle)
}

func TestMineHandlerNoSession(t *testing.T) {
	handler, _, _ := NewMock(t)

	req := httptest.NewRequest("GET", "/api/donations/mine", nil)
	rr := httptest.NewRecorder()

	handler.Mine(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMineHandlerEmptyHistory(t *testing.T) {
	handler, service, _ := NewMock(t)

	admin := &domain.User{ID: "2", Name: "Admin User", Email: "admin@example.com"}
	service.EXPECT().Summary(gomock.Any(), "2").Return(&domain.DonorSummary{
		Donations: []domain.Donation{},
		Latest:    []domain.ActivityEntry{},
	}, nil)

	req := withSessionUser(httptest.NewRequest("GET", "/api/donations/mine", nil), admin)
	rr := httptest.NewRecorder()

	handler.Mine(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.DonorSummaryResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Zero(t, resp.TotalDonated)
	assert.Empty(t, resp.Donations)
}
