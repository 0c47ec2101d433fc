package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"botic/internal/models/request_models"
	"botic/internal/models/response_models"
	"botic/internal/services"
	"botic/pkg/middleware"
	"botic/pkg/utils"
)

// Service stubs: embed the interface for the methods a test never hits,
// override the rest with function fields.

type stubPlanService struct {
	services.PlanServiceInterface
	create func(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
	get    func(ctx context.Context, id uint) (*response_models.PlanResponse, error)
}

func (s *stubPlanService) Create(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	return s.create(ctx, req)
}

func (s *stubPlanService) GetByID(ctx context.Context, id uint) (*response_models.PlanResponse, error) {
	return s.get(ctx, id)
}

type stubAppService struct {
	services.AppServiceInterface
	create func(ctx context.Context, callerID uint, req request_models.CreateAppRequest) (*response_models.AppResponse, error)
	del    func(ctx context.Context, id uint) error
}

func (s *stubAppService) Create(ctx context.Context, callerID uint, req request_models.CreateAppRequest) (*response_models.AppResponse, error) {
	return s.create(ctx, callerID, req)
}

func (s *stubAppService) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}

type stubSubscriptionService struct {
	services.SubscriptionServiceInterface
	create func(ctx context.Context, callerID uint, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	patch  func(ctx context.Context, id uint, req request_models.PatchSubscriptionRequest) (*response_models.SubscriptionResponse, error)
}

func (s *stubSubscriptionService) Create(ctx context.Context, callerID uint, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	return s.create(ctx, callerID, req)
}

func (s *stubSubscriptionService) Patch(ctx context.Context, id uint, req request_models.PatchSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	return s.patch(ctx, id, req)
}

func testRouter(plan services.PlanServiceInterface, app services.AppServiceInterface, sub services.SubscriptionServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.UseJSONFieldNames()

	r := gin.New()
	v1 := r.Group("/api/v1")

	planController := NewPlanController(plan)
	v1.GET("/plan/:id", planController.Get)
	v1.POST("/plan", planController.Create)

	appController := NewAppController(app)
	apps := v1.Group("/app", middleware.JWTAuthMiddleware())
	apps.POST("", appController.Create)
	apps.DELETE("/:id", appController.Delete)

	subController := NewSubscriptionController(sub)
	subs := v1.Group("/subscription", middleware.JWTAuthMiddleware())
	subs.POST("", subController.Create)
	subs.PATCH("/:id", subController.Patch)

	return r
}

func doJSON(r *gin.Engine, method, path, token string, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreatePlanReturns201(t *testing.T) {
	plan := &stubPlanService{
		create: func(_ context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
			require.Equal(t, "Pro", req.Name)
			return &response_models.PlanResponse{ID: 1, Name: req.Name, Description: req.Description, Price: "25.00"}, nil
		},
	}
	r := testRouter(plan, nil, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/plan", "",
		`{"name":"Pro","description":"Pro Plan","price":"25.00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := envelope(t, w)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "25.00", data["price"])
}

func TestCreatePlanMissingFields(t *testing.T) {
	r := testRouter(&stubPlanService{}, nil, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/plan", "", `{"description":"no name"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := envelope(t, w)
	errs := body["errors"].(map[string]interface{})
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "price")
}

func TestGetPlanNotFound(t *testing.T) {
	plan := &stubPlanService{
		get: func(_ context.Context, id uint) (*response_models.PlanResponse, error) {
			return nil, utils.ErrPlanNotFound
		},
	}
	r := testRouter(plan, nil, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/plan/999", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlanNonNumericID(t *testing.T) {
	r := testRouter(&stubPlanService{}, nil, nil)

	w := doJSON(r, http.MethodGet, "/api/v1/plan/abc", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAppRequiresAuth(t *testing.T) {
	r := testRouter(nil, &stubAppService{}, nil)

	w := doJSON(r, http.MethodPost, "/api/v1/app", "",
		`{"name":"botic test","type":"Web","framework":"Django"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAppForcesCallerAsOwner(t *testing.T) {
	app := &stubAppService{
		create: func(_ context.Context, callerID uint, req request_models.CreateAppRequest) (*response_models.AppResponse, error) {
			require.Equal(t, uint(42), callerID)
			return &response_models.AppResponse{ID: 1, Name: req.Name, Type: req.Type, Framework: req.Framework, User: callerID}, nil
		},
	}
	r := testRouter(nil, app, nil)

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	// A user key in the payload is ignored outright.
	w := doJSON(r, http.MethodPost, "/api/v1/app", token,
		`{"name":"botic test","description":"botic test app","type":"Web","framework":"Django","domain_name":"botic.text","screenshot":null,"user":999}`)
	require.Equal(t, http.StatusCreated, w.Code)

	body := envelope(t, w)
	data := body["data"].(map[string]interface{})
	require.Equal(t, float64(42), data["user"])
	require.Nil(t, data["subscription"])
}

func TestCreateAppRejectsBadChoices(t *testing.T) {
	r := testRouter(nil, &stubAppService{}, nil)

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/v1/app", token,
		`{"name":"botic test","type":"Desktop","framework":"Django"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := envelope(t, w)
	errs := body["errors"].(map[string]interface{})
	require.Contains(t, errs, "type")

	w = doJSON(r, http.MethodPost, "/api/v1/app", token,
		`{"name":"botic test","type":"Web","framework":"Rails"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body = envelope(t, w)
	errs = body["errors"].(map[string]interface{})
	require.Contains(t, errs, "framework")
}

func TestCreateAppRejectsBadScreenshotURL(t *testing.T) {
	r := testRouter(nil, &stubAppService{}, nil)

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/v1/app", token,
		`{"name":"botic test","type":"Web","framework":"Django","screenshot":"not a url"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := envelope(t, w)
	errs := body["errors"].(map[string]interface{})
	require.Contains(t, errs, "screenshot")
}

func TestDeleteAppReturns204(t *testing.T) {
	app := &stubAppService{
		del: func(_ context.Context, id uint) error {
			require.Equal(t, uint(7), id)
			return nil
		},
	}
	r := testRouter(nil, app, nil)

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	w := doJSON(r, http.MethodDelete, "/api/v1/app/7", token, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.Bytes())
}

func TestCreateSubscriptionDuplicatePlan(t *testing.T) {
	sub := &stubSubscriptionService{
		create: func(_ context.Context, callerID uint, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
			return nil, utils.ErrPlanAlreadySubscribed
		},
	}
	r := testRouter(nil, nil, sub)

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/v1/subscription", token,
		`{"plan":1,"active":true}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := envelope(t, w)
	errs := body["errors"].(map[string]interface{})
	msgs := errs["plan"].([]interface{})
	require.Contains(t, msgs, "this plan already has a subscription")
}

func TestCreateSubscriptionRequiresActive(t *testing.T) {
	r := testRouter(nil, nil, &stubSubscriptionService{})

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/v1/subscription", token, `{"plan":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := envelope(t, w)
	errs := body["errors"].(map[string]interface{})
	require.Contains(t, errs, "active")
}

func TestPatchSubscriptionIgnoresUserKey(t *testing.T) {
	sub := &stubSubscriptionService{
		patch: func(_ context.Context, id uint, req request_models.PatchSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
			require.Equal(t, uint(3), id)
			require.Nil(t, req.Plan)
			require.NotNil(t, req.Active)
			return &response_models.SubscriptionResponse{ID: id, User: 42, Plan: 1, Active: *req.Active}, nil
		},
	}
	r := testRouter(nil, nil, sub)

	token, err := utils.CreateToken(42)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPatch, "/api/v1/subscription/3", token,
		`{"active":false,"user":999}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := envelope(t, w)
	data := body["data"].(map[string]interface{})
	require.Equal(t, float64(42), data["user"])
}
