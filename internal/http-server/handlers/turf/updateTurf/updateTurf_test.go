package updateTurf

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"turfBooker/internal/http-server/handlers/turf/updateTurf/mocks"
	"turfBooker/internal/lib/logger/handlers/slogdiscard"
	"turfBooker/internal/models"
	"turfBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const turfID = "6f1c1b8e-8d7a-4c1e-9a53-0f2f8f0e6b11"

const validBody = `{"name":"Green Field","address":"MG Road","open_at":"06:00","close_at":"01:00","days_open":[6,7]}`

func expectedTurf() models.Turf {
	return models.Turf{
		ID:       turfID,
		Name:     "Green Field",
		Address:  "MG Road",
		OpenAt:   "06:00",
		CloseAt:  "01:00",
		DaysOpen: []int{6, 7},
	}
}

func TestUpdateTurfHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TurfUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.TurfUpdater) {
				updated := expectedTurf()
				updated.OwnerID = "owner-1"
				m.On("UpdateTurf", mock.Anything, expectedTurf()).Return(&updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","turf":{"id":"` + turfID + `","name":"Green Field","address":"MG Road",
				"open_at":"06:00","close_at":"01:00","days_open":[6,7],"owner_id":"owner-1"}}`,
		},
		{
			name:           "Missing close time",
			requestBody:    `{"name":"Green Field","address":"MG Road","open_at":"06:00"}`,
			mockSetup:      func(m *mocks.TurfUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field CloseAt is a required field"}`,
		},
		{
			name:           "Same open and close",
			requestBody:    `{"name":"Green Field","address":"MG Road","open_at":"09:00","close_at":"09:00"}`,
			mockSetup:      func(m *mocks.TurfUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"opening and closing times must differ"}`,
		},
		{
			name:        "Not found",
			requestBody: validBody,
			mockSetup: func(m *mocks.TurfUpdater) {
				m.On("UpdateTurf", mock.Anything, expectedTurf()).Return(nil, storage.ErrTurfNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"turf not found"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.TurfUpdater) {
				m.On("UpdateTurf", mock.Anything, expectedTurf()).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update turf"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewTurfUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/turfs/{turfID}", New(logger, updater))

			req, err := http.NewRequest(http.MethodPut, "/turfs/"+turfID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
