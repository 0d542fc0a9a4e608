package httpx

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevahub/volunteer-api/internal/adapters/token"
	"github.com/sevahub/volunteer-api/internal/data"
	"github.com/sevahub/volunteer-api/internal/domain/model"
	"github.com/sevahub/volunteer-api/internal/mocks"
	"github.com/sevahub/volunteer-api/internal/service"
)

func newApplicantHandlers(t *testing.T) (*ApplicantHandlers, *mocks.MockApplicantRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockApplicantRepository(ctrl)
	svc := service.NewApplicantService(service.ApplicantServiceOptions{Applicants: repo})
	return &ApplicantHandlers{Svc: svc}, repo
}

func applicantPayload() map[string]any {
	return map[string]any{
		"name":         "Jordan Rivera",
		"email":        "jordan@example.com",
		"phone":        "555-010-5555",
		"interest":     string(model.InterestChildWelfare),
		"availability": "Weekend mornings, flexible",
	}
}

func TestApplicantHandlers_Create(t *testing.T) {
	h, repo := newApplicantHandlers(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&model.Applicant{
		ID:       "a-1",
		Name:     "Jordan Rivera",
		Email:    "jordan@example.com",
		Interest: model.InterestChildWelfare,
	}, nil)

	w := DoJSON(t, http.HandlerFunc(h.Create), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/applicants",
		Body:   applicantPayload(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message   string          `json:"message"`
		Applicant model.Applicant `json:"applicant"`
	}
	DecodeBody(t, w, &body)
	assert.Equal(t, "Application submitted successfully", body.Message)
	assert.Equal(t, "a-1", body.Applicant.ID)
}

func TestApplicantHandlers_Create_ValidationError(t *testing.T) {
	h, _ := newApplicantHandlers(t)

	payload := applicantPayload()
	payload["interest"] = "Underwater Basket Weaving"

	w := DoJSON(t, http.HandlerFunc(h.Create), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/applicants",
		Body:   payload,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	DecodeBody(t, w, &body)
	assert.Equal(t, "validation_failed", body["error"])
}

func TestApplicantHandlers_Create_Duplicate(t *testing.T) {
	h, repo := newApplicantHandlers(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, data.ErrApplicantEmailExists)

	w := DoJSON(t, http.HandlerFunc(h.Create), JSONRequest{
		Method: http.MethodPost,
		Path:   "/api/applicants",
		Body:   applicantPayload(),
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	DecodeBody(t, w, &body)
	assert.Equal(t, "duplicate_application", body["error"])
}

func TestApplicantHandlers_List(t *testing.T) {
	h, repo := newApplicantHandlers(t)

	wantOpts := model.ApplicantsListOptions{Limit: 20, Offset: 0}
	repo.EXPECT().List(gomock.Any(), wantOpts).Return([]*model.Applicant{{ID: "a-1"}}, nil)
	repo.EXPECT().Count(gomock.Any(), wantOpts).Return(1, nil)

	w := DoJSON(t, http.HandlerFunc(h.List), JSONRequest{
		Method: http.MethodGet,
		Path:   "/api/applicants",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Applicants []model.Applicant `json:"applicants"`
		Total      int               `json:"total"`
		Limit      int               `json:"limit"`
		Offset     int               `json:"offset"`
	}
	DecodeBody(t, w, &body)
	assert.Len(t, body.Applicants, 1)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, 20, body.Limit)
}

func TestApplicantHandlers_List_InvalidInterestFilter(t *testing.T) {
	h, _ := newApplicantHandlers(t)

	w := DoJSON(t, http.HandlerFunc(h.List), JSONRequest{
		Method: http.MethodGet,
		Path:   "/api/applicants?interest=Skydiving",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	DecodeBody(t, w, &body)
	assert.Equal(t, "invalid_filter", body["error"])
}

func TestApplicantHandlers_Get_NotFound(t *testing.T) {
	authSvc, store := newTestAuthService(t, 24*time.Hour)
	created, err := store.Create(t.Context(), "admin@example.com", "s3cret-passw0rd")
	require.NoError(t, err)

	codec, err := token.NewCodec(token.Config{Secret: []byte(testJWTSecret), TTL: 24 * time.Hour})
	require.NoError(t, err)
	tok, err := codec.Issue(created.Sanitized(), time.Now())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockApplicantRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrApplicantNotFound)
	applicantSvc := service.NewApplicantService(service.ApplicantServiceOptions{Applicants: repo})

	router := NewRouter(RouterServices{
		Auth:       authSvc,
		Applicants: applicantSvc,
		Cookies:    CookieSettings{TTL: 24 * time.Hour},
	})

	w := DoJSON(t, router, JSONRequest{
		Method: http.MethodGet,
		Path:   "/api/applicants/missing",
		Cookie: &http.Cookie{Name: SessionCookieName, Value: tok},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	DecodeBody(t, w, &body)
	assert.Equal(t, "not_found", body["error"])
}
