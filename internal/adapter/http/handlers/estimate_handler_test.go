package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"construction_backoffice/internal/adapter/http/handlers/mocks"
	"construction_backoffice/internal/domain/entities"
	"construction_backoffice/internal/domain/workflow"
	"construction_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_id":"PROJ-202503-001","estimated_amount":45000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), "pm@example.com").
			Return(entities.Estimate{}, usecase.ErrProjectNotFound)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_id":"PROJ-202503-099","estimated_amount":45000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserHeader, "pm@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), "pm@example.com").
			Return(entities.Estimate{
				EstimateID:      "EST-PROJ-202503-001-1",
				ProjectID:       "PROJ-202503-001",
				EstimatedAmount: 45000,
				Status:          entities.EstimateStatusDraft,
				IsActive:        true,
				VersionNumber:   1,
			}, nil)

		r := gin.New()
		r.POST("/v1/estimates", h.CreateEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"project_id":"PROJ-202503-001","estimated_amount":45000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserHeader, "pm@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["estimate_id"] != "EST-PROJ-202503-001-1" || body["status"] != "DRAFT" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["approved_date"]; ok {
			t.Fatalf("approved_date should be omitted for unapproved estimates: %v", body)
		}
	})
}

func TestEstimateHandler_UpdateEstimateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "EST-PROJ-202503-001-1", "APPROVED", "pm@example.com").
			Return(usecase.EstimateStatusChange{}, &workflow.InvalidTransitionError{
				Kind: workflow.KindEstimate, EntityID: "EST-PROJ-202503-001-1", From: "DRAFT", To: "APPROVED",
			})

		r := gin.New()
		r.PATCH("/v1/estimates/:estimate_id/status", h.UpdateEstimateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/estimates/EST-PROJ-202503-001-1/status", bytes.NewBufferString(`{"status":"APPROVED"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(UserHeader, "pm@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})
}

func TestEstimateHandler_ApproveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cascade applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().ApproveWithSync(gomock.Any(), "EST-PROJ-202503-001-1", "pm@example.com").
			Return(usecase.ApproveResult{
				Estimate: entities.Estimate{
					EstimateID: "EST-PROJ-202503-001-1",
					ProjectID:  "PROJ-202503-001",
					Status:     entities.EstimateStatusApproved,
				},
				PreviousEstimateStatus: entities.EstimateStatusPending,
				Project: entities.Project{
					ProjectID: "PROJ-202503-001",
					Status:    entities.ProjectStatusApproved,
				},
				PreviousProjectStatus: entities.ProjectStatusPending,
				CascadeApplied:        true,
			}, nil)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/approve", h.ApproveEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/EST-PROJ-202503-001-1/approve", nil)
		req.Header.Set(UserHeader, "pm@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Estimate struct {
				Status string `json:"status"`
			} `json:"estimate"`
			PreviousEstimateStatus string `json:"previous_estimate_status"`
			ProjectSync            struct {
				Applied bool `json:"applied"`
				Project *struct {
					Status string `json:"status"`
				} `json:"project"`
				PreviousProjectStatus string `json:"previous_project_status"`
				Error                 string `json:"error"`
			} `json:"project_sync"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Estimate.Status != "APPROVED" || body.PreviousEstimateStatus != "PENDING" {
			t.Fatalf("unexpected estimate section: %+v", body)
		}
		if !body.ProjectSync.Applied || body.ProjectSync.Project == nil || body.ProjectSync.Project.Status != "APPROVED" {
			t.Fatalf("unexpected project_sync section: %+v", body.ProjectSync)
		}
		if body.ProjectSync.PreviousProjectStatus != "PENDING" || body.ProjectSync.Error != "" {
			t.Fatalf("unexpected project_sync section: %+v", body.ProjectSync)
		}
	})

	t.Run("cascade failure still returns ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().ApproveWithSync(gomock.Any(), "EST-PROJ-202503-001-1", "pm@example.com").
			Return(usecase.ApproveResult{
				Estimate: entities.Estimate{
					EstimateID: "EST-PROJ-202503-001-1",
					ProjectID:  "PROJ-202503-001",
					Status:     entities.EstimateStatusApproved,
				},
				PreviousEstimateStatus: entities.EstimateStatusPending,
				PreviousProjectStatus:  entities.ProjectStatusCancelled,
				CascadeApplied:         false,
				CascadeError:           errors.New("project PROJ-202503-001 is CANCELLED"),
			}, nil)

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/approve", h.ApproveEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/EST-PROJ-202503-001-1/approve", nil)
		req.Header.Set(UserHeader, "pm@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			ProjectSync struct {
				Applied bool            `json:"applied"`
				Project json.RawMessage `json:"project"`
				Error   string          `json:"error"`
			} `json:"project_sync"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.ProjectSync.Applied || body.ProjectSync.Project != nil {
			t.Fatalf("cascade should not report a project: %+v", body.ProjectSync)
		}
		if body.ProjectSync.Error == "" {
			t.Fatalf("expected cascade error in response: %s", w.Body.String())
		}
	})

	t.Run("estimate rejection is an error status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().ApproveWithSync(gomock.Any(), "EST-PROJ-202503-001-1", "pm@example.com").
			Return(usecase.ApproveResult{}, &workflow.InvalidTransitionError{
				Kind: workflow.KindEstimate, EntityID: "EST-PROJ-202503-001-1", From: "CANCELLED", To: "APPROVED",
			})

		r := gin.New()
		r.POST("/v1/estimates/:estimate_id/approve", h.ApproveEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/EST-PROJ-202503-001-1/approve", nil)
		req.Header.Set(UserHeader, "pm@example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetPreviousVersion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no previous version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		uc.EXPECT().PreviousVersion(gomock.Any(), "EST-PROJ-202503-001-1").
			Return(entities.Estimate{}, usecase.ErrEstimateHasNoPrevious)

		r := gin.New()
		r.GET("/v1/estimates/:estimate_id/previous", h.GetPreviousVersion)

		req := httptest.NewRequest(http.MethodGet, "/v1/estimates/EST-PROJ-202503-001-1/previous", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "NO_PREVIOUS_VERSION" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})
}
