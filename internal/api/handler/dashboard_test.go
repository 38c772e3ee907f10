package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	summary := &domain.DashboardSummary{
		TotalPremium: 3100,
		Goal:         39500,
		PctToGoal:    3100.0 / 39500.0,
		MonthStart:   "2024-03-01",
		DaysInMonth:  31,
		DaysElapsed:  10,
	}

	mockReporter.EXPECT().GetDashboardSummary().Return(summary, nil)
	mockReporter.EXPECT().GetAgentSummary().Return([]domain.AgentSummary{
		{Agent: "Agent 1", Quotes: 5, Sales: 2, TotalPremium: 3100},
	}, nil)
	mockReporter.EXPECT().GetCategorySummary().Return([]domain.CategorySummary{
		{Category: "Auto", TotalPremium: 3100},
	}, nil)
	mockReporter.EXPECT().GetLeadSourceSummary().Return([]domain.LeadSourceSummary{}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	recorder := httptest.NewRecorder()

	GetDashboard(mockReporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response DashboardResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, summary, response.Summary)
	require.Len(t, response.Agents, 1)
	assert.Equal(t, "Agent 1", response.Agents[0].Agent)
	assert.Empty(t, response.LeadSources)
}

func TestGetDashboardErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().GetDashboardSummary().Return(nil, errors.New("banco indisponível"))

	request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	recorder := httptest.NewRecorder()

	GetDashboard(mockReporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
}
