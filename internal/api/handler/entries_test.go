package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corretorahub/sales-dashboard-api/internal/domain"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/importing"
	importingmocks "github.com/corretorahub/sales-dashboard-api/internal/usecases/importing/mocks"
	"github.com/corretorahub/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
)

func TestListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leadSource := "Referral"
	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().ListAgentNames().Return([]string{"Agent 1", "Agent 2"}, nil)
	mockReporter.EXPECT().ListCategoryNames().Return([]string{"Auto", "Home"}, nil)
	mockReporter.EXPECT().ListLeadSourceNames().Return([]string{"Referral"}, nil)
	mockReporter.EXPECT().ListRecentEntries(0).Return([]domain.EntryView{
		{
			ID:         1,
			EntryDate:  "2024-03-01",
			Agent:      "Agent 1",
			Category:   "Auto",
			Quotes:     5,
			Sales:      2,
			Premium:    1200.50,
			LeadSource: &leadSource,
		},
	}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/entries", nil)
	recorder := httptest.NewRecorder()

	ListEntries(mockReporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response EntriesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, []string{"Agent 1", "Agent 2"}, response.Agents)
	require.Len(t, response.Entries, 1)
	assert.Equal(t, "Agent 1", response.Entries[0].Agent)
}

func TestListEntriesComLimite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().ListAgentNames().Return([]string{}, nil)
	mockReporter.EXPECT().ListCategoryNames().Return([]string{}, nil)
	mockReporter.EXPECT().ListLeadSourceNames().Return([]string{}, nil)
	mockReporter.EXPECT().ListRecentEntries(10).Return([]domain.EntryView{}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/entries?limit=10", nil)
	recorder := httptest.NewRecorder()

	ListEntries(mockReporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestListEntriesLimiteInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	request := httptest.NewRequest(http.MethodGet, "/v1/entries?limit=muitos", nil)
	recorder := httptest.NewRecorder()

	ListEntries(mockReporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}

func TestSubmitEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporter := importingmocks.NewMockImporter(ctrl)
	mockImporter.EXPECT().
		SubmitEntry(gomock.Any(), domain.EntrySubmission{
			EntryDate:      "2024-03-01",
			AgentName:      "Agent 1",
			CategoryName:   "Auto",
			Quotes:         "5",
			Sales:          "2",
			Premium:        "1200.50",
			LeadSourceName: "Referral",
		}).
		Return(&domain.Entry{ID: 1, EntryDate: "2024-03-01", Quotes: 5, Sales: 2, Premium: 1200.50}, nil)

	body := `{
		"entry_date": "2024-03-01",
		"agent_name": "Agent 1",
		"category_name": "Auto",
		"quotes": "5",
		"sales": "2",
		"premium": "1200.50",
		"lead_source_name": "Referral"
	}`
	request := httptest.NewRequest(http.MethodPost, "/v1/entries", strings.NewReader(body))
	recorder := httptest.NewRecorder()

	SubmitEntry(mockImporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var entry domain.Entry
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entry))
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, 1200.50, entry.Premium)
}

func TestSubmitEntryHandlerErros(t *testing.T) {
	testCases := []struct {
		name         string
		serviceErr   error
		expectedCode string
		expectedHTTP int
	}{
		{
			name:         "campo obrigatório ausente",
			serviceErr:   &importing.ValidationError{Err: importing.ErrAgentNameRequired, Field: "agent_name"},
			expectedCode: apiErrors.ErrMissingRequiredData,
			expectedHTTP: http.StatusBadRequest,
		},
		{
			name:         "formato inválido",
			serviceErr:   &importing.ValidationError{Err: importing.ErrInvalidPremium, Field: "premium"},
			expectedCode: apiErrors.ErrInvalidFormat,
			expectedHTTP: http.StatusBadRequest,
		},
		{
			name:         "falha de banco",
			serviceErr:   importing.ErrDatabaseOperation,
			expectedCode: apiErrors.ErrDatabaseOperation,
			expectedHTTP: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockImporter := importingmocks.NewMockImporter(ctrl)
			mockImporter.EXPECT().
				SubmitEntry(gomock.Any(), gomock.Any()).
				Return(nil, tc.serviceErr)

			body := `{"entry_date": "2024-03-01"}`
			request := httptest.NewRequest(http.MethodPost, "/v1/entries", strings.NewReader(body))
			recorder := httptest.NewRecorder()

			SubmitEntry(mockImporter).ServeHTTP(recorder, request)

			assert.Equal(t, tc.expectedHTTP, recorder.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
			assert.Equal(t, tc.expectedCode, apiErr.Code)
		})
	}
}

func TestSubmitEntryHandlerCorpoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporter := importingmocks.NewMockImporter(ctrl)

	request := httptest.NewRequest(http.MethodPost, "/v1/entries", strings.NewReader("{isso não é json"))
	recorder := httptest.NewRecorder()

	SubmitEntry(mockImporter).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}
