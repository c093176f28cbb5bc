package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eaglebank/transactions/shared/errs"
	"github.com/gin-gonic/gin"
)

func newErrorTestRouter(err error, exposeInternal bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(exposeInternal))
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func doFail(t *testing.T, router *gin.Engine) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		exposeInternal  bool
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "invalid request",
			err:             errs.NewInvalidRequest("Tax category is not informed"),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "INVALID_REQUEST",
			expectedMessage: "Tax category is not informed",
		},
		{
			name:            "not found",
			err:             errs.NewNotFound("Tax is not found"),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    "NOT_FOUND",
			expectedMessage: "Tax is not found",
		},
		{
			name:            "internal failure hidden by default",
			err:             errs.NewInternal(errors.New("pq: connection refused")),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "INTERNAL_FAILURE",
			expectedMessage: "Internal server error",
		},
		{
			name:            "internal failure exposed when configured",
			err:             errs.NewInternal(errors.New("pq: connection refused")),
			exposeInternal:  true,
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "INTERNAL_FAILURE",
			expectedMessage: "pq: connection refused",
		},
		{
			name:            "foreign error treated as internal",
			err:             errors.New("unexpected"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "INTERNAL_FAILURE",
			expectedMessage: "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doFail(t, newErrorTestRouter(tt.err, tt.exposeInternal))
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d", tt.expectedStatus, w.Code)
			}
			if body.Code != tt.expectedCode || body.Message != tt.expectedMessage {
				t.Errorf("unexpected body %+v", body)
			}
			if w.Header().Get(RequestIDHeader) == "" {
				t.Errorf("expected request id header")
			}
		})
	}
}
