package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corretorahub/sales-dashboard-api/internal/usecases/settings"
	settingsmocks "github.com/corretorahub/sales-dashboard-api/internal/usecases/settings/mocks"
	"github.com/corretorahub/sales-dashboard-api/pkg/apiErrors"
)

func TestGetGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockManager := settingsmocks.NewMockGoalManager(ctrl)
	mockManager.EXPECT().GetGoal().Return(39500.0, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/settings/goal", nil)
	recorder := httptest.NewRecorder()

	GetGoal(mockManager).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response GoalResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 39500.0, response.Goal)
}

func TestUpdateGoalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockManager := settingsmocks.NewMockGoalManager(ctrl)
	mockManager.EXPECT().UpdateGoal("42000").Return(nil)

	request := httptest.NewRequest(http.MethodPut, "/v1/settings/goal", strings.NewReader(`{"goal": "42000"}`))
	recorder := httptest.NewRecorder()

	UpdateGoal(mockManager).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.Bytes())
}

func TestUpdateGoalHandlerMetaInvalida(t *testing.T) {
	testCases := []struct {
		name       string
		serviceErr error
	}{
		{name: "não numérica", serviceErr: settings.ErrInvalidGoal},
		{name: "negativa", serviceErr: settings.ErrNegativeGoal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockManager := settingsmocks.NewMockGoalManager(ctrl)
			mockManager.EXPECT().UpdateGoal(gomock.Any()).Return(tc.serviceErr)

			request := httptest.NewRequest(http.MethodPut, "/v1/settings/goal", strings.NewReader(`{"goal": "x"}`))
			recorder := httptest.NewRecorder()

			UpdateGoal(mockManager).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
			assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
		})
	}
}

func TestUpdateGoalHandlerCorpoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockManager := settingsmocks.NewMockGoalManager(ctrl)

	request := httptest.NewRequest(http.MethodPut, "/v1/settings/goal", strings.NewReader("não é json"))
	recorder := httptest.NewRecorder()

	UpdateGoal(mockManager).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
