package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/liftlog/backend/internal/auth"
	"github.com/liftlog/backend/internal/middleware"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		mockUserID         int
		mockErr            error
		expectedStatusCode int
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/a/login",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "StandardsPublicWithoutToken",
			path:               "/gymstats/standards",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "NotAllowedPathWithoutToken",
			path:               "/gymstats/sets",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/gymstats/sets",
			method:             "GET",
			token:              "valid-token",
			mockUserID:         42,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "InvalidToken",
			path:               "/gymstats/sets",
			method:             "GET",
			token:              "invalid-token",
			mockErr:            auth.ErrNotLoggedIn,
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Options",
			path:               "/gymstats/sets",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			require.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-LIFT-TOKEN", tc.token)
				mockLoginChecker.EXPECT().
					GetLoggedUserID(gomock.Any(), tc.token).
					Return(tc.mockUserID, tc.mockErr)
			}

			var gotUserID int
			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = auth.UserIDFromContext(r.Context())
			})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			if tc.mockUserID > 0 {
				assert.Equal(t, tc.mockUserID, gotUserID)
			}
		})
	}
}
