package createTurf

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"turfBooker/internal/http-server/handlers/turf/createTurf/mocks"
	"turfBooker/internal/lib/logger/handlers/slogdiscard"
	"turfBooker/internal/models"
	"turfBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const turfID = "6f1c1b8e-8d7a-4c1e-9a53-0f2f8f0e6b11"

func TestCreateTurfHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	withID := func(turf models.Turf) models.Turf {
		turf.ID = turfID
		return turf
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TurfCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Defaults applied",
			requestBody: `{"name":"Green Field","owner_id":"owner-1"}`,
			mockSetup: func(m *mocks.TurfCreator) {
				want := models.Turf{
					Name:     "Green Field",
					Address:  DefaultAddress,
					OpenAt:   "08:00",
					CloseAt:  "00:00",
					DaysOpen: []int{1, 2, 3, 4, 5, 6, 7},
					OwnerID:  "owner-1",
				}
				m.On("SaveTurf", mock.Anything, want).Return(withID(want), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","turf":{
				"id":"` + turfID + `","name":"Green Field","address":"Default Address",
				"open_at":"08:00","close_at":"00:00","days_open":[1,2,3,4,5,6,7],"owner_id":"owner-1"}}`,
		},
		{
			name: "Explicit schedule",
			requestBody: `{"name":"Night Arena","address":"Ring Road","open_at":"18:00",
				"close_at":"02:00","days_open":[5,6],"owner_id":"owner-2"}`,
			mockSetup: func(m *mocks.TurfCreator) {
				want := models.Turf{
					Name:     "Night Arena",
					Address:  "Ring Road",
					OpenAt:   "18:00",
					CloseAt:  "02:00",
					DaysOpen: []int{5, 6},
					OwnerID:  "owner-2",
				}
				m.On("SaveTurf", mock.Anything, want).Return(withID(want), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","turf":{
				"id":"` + turfID + `","name":"Night Arena","address":"Ring Road",
				"open_at":"18:00","close_at":"02:00","days_open":[5,6],"owner_id":"owner-2"}}`,
		},
		{
			name:           "Missing owner",
			requestBody:    `{"name":"Green Field"}`,
			mockSetup:      func(m *mocks.TurfCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field OwnerID is a required field"}`,
		},
		{
			name:           "Weekday out of range",
			requestBody:    `{"name":"Green Field","owner_id":"owner-1","days_open":[0]}`,
			mockSetup:      func(m *mocks.TurfCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field DaysOpen[0] is not valid"}`,
		},
		{
			name:           "Same open and close",
			requestBody:    `{"name":"Green Field","owner_id":"owner-1","open_at":"10:00","close_at":"10:00"}`,
			mockSetup:      func(m *mocks.TurfCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"opening and closing times must differ"}`,
		},
		{
			name:           "Malformed hours",
			requestBody:    `{"name":"Green Field","owner_id":"owner-1","open_at":"8am"}`,
			mockSetup:      func(m *mocks.TurfCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field OpenAt must match the 15:04 format"}`,
		},
		{
			name:        "Owner already has a turf",
			requestBody: `{"name":"Green Field","owner_id":"owner-1"}`,
			mockSetup: func(m *mocks.TurfCreator) {
				m.On("SaveTurf", mock.Anything, mock.AnythingOfType("models.Turf")).Return(models.Turf{}, storage.ErrTurfExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"owner already has a turf"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"name":"Green Field","owner_id":"owner-1"}`,
			mockSetup: func(m *mocks.TurfCreator) {
				m.On("SaveTurf", mock.Anything, mock.AnythingOfType("models.Turf")).Return(models.Turf{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create turf"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewTurfCreator(t)
			tc.mockSetup(creator)

			req, err := http.NewRequest(http.MethodPost, "/turfs", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			New(logger, creator).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
