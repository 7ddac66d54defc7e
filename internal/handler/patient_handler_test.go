package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"HealthRiskPredictor/internal/auth"
	"HealthRiskPredictor/internal/config"
	"HealthRiskPredictor/internal/middleware"
	"HealthRiskPredictor/internal/models"
	"HealthRiskPredictor/internal/storage"

	"github.com/gin-gonic/gin"
)

// 실제 sqlite 스토어와 실제 토큰 발급기로 전체 라우트를 구성함
func newTestServer(t *testing.T) (*gin.Engine, *auth.Issuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(filepath.Join(t.TempDir(), "patients.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		JWTSecret:   "test_secret",
		TokenTTL:    time.Hour,
		APIUsername: "admin",
		APIPassword: "admin123",
	}
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.APIUsername, cfg.TokenTTL)
	authHandler, err := NewAuthHandler(cfg, issuer)
	if err != nil {
		t.Fatalf("NewAuthHandler: %v", err)
	}
	patientHandler := NewPatientHandler(store)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", patientHandler.Health)
	router.POST("/predict-risk", patientHandler.PredictRisk)
	router.POST("/patients", patientHandler.SavePatient)
	router.POST("/token", authHandler.Token)
	protected := router.Group("/").Use(middleware.AuthMiddleware(issuer))
	{
		protected.GET("/patients", patientHandler.ListPatients)
		protected.PUT("/patients/:id", patientHandler.UpdatePatient)
		protected.DELETE("/patients/:id", patientHandler.DeletePatient)
	}
	return router, issuer
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearerToken(t *testing.T, issuer *auth.Issuer) string {
	t.Helper()
	tok, err := issuer.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return tok
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(router, http.MethodGet, "/", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "running") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestPredictRisk(t *testing.T) {
	router, _ := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLevel  string
	}{
		{
			"high via genetic rule",
			`{"age":65,"smoking_history":"current smoker","pollution_level":"high","genetic_risk":"positive"}`,
			http.StatusOK, "High",
		},
		{
			"low",
			`{"age":40,"smoking_history":"never smoked","pollution_level":"low","genetic_risk":"negative"}`,
			http.StatusOK, "Low",
		},
		{
			"medium former smoker",
			`{"age":30,"smoking_history":"former smoker","pollution_level":"medium","genetic_risk":"negative"}`,
			http.StatusOK, "Medium",
		},
		{
			"invalid enum",
			`{"age":40,"smoking_history":"vaping","pollution_level":"low","genetic_risk":"negative"}`,
			http.StatusBadRequest, "",
		},
		{
			"non-integer age",
			`{"age":"forty","smoking_history":"never smoked","pollution_level":"low","genetic_risk":"negative"}`,
			http.StatusBadRequest, "",
		},
		{
			"negative age",
			`{"age":-3,"smoking_history":"never smoked","pollution_level":"low","genetic_risk":"negative"}`,
			http.StatusBadRequest, "",
		},
		{
			"malformed json",
			`{"age":`,
			http.StatusBadRequest, "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/predict-risk", tt.body, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantLevel == "" {
				return
			}
			var got models.RiskAssessment
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("risk_level = %q, want %q", got.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestSaveAndListPatients(t *testing.T) {
	router, issuer := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/patients",
		`{"age":65,"smoking_history":"current smoker","pollution_level":"high","genetic_risk":"positive"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d (body: %s)", w.Code, w.Body.String())
	}
	var saved SavedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saved.ID <= 0 {
		t.Fatalf("saved.ID = %d", saved.ID)
	}

	// 목록 조회는 토큰 없이 불가
	if w := doJSON(router, http.MethodGet, "/patients", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list status = %d", w.Code)
	}

	w = doJSON(router, http.MethodGet, "/patients", "", bearerToken(t, issuer))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d (body: %s)", w.Code, w.Body.String())
	}
	var records []models.PatientRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d", len(records))
	}
	// 저장 시점에 분류가 수행되어 함께 저장됨
	if records[0].ID != saved.ID || records[0].RiskLevel != "High" || records[0].Recommendation != "Schedule early diagnostic tests." {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestUpdatePatientRecomputes(t *testing.T) {
	router, issuer := newTestServer(t)
	token := bearerToken(t, issuer)

	w := doJSON(router, http.MethodPost, "/patients",
		`{"age":65,"smoking_history":"current smoker","pollution_level":"high","genetic_risk":"positive"}`, "")
	var saved SavedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	idPath := "/patients/" + strconv.FormatInt(saved.ID, 10)
	w = doJSON(router, http.MethodPut, idPath,
		`{"age":30,"smoking_history":"never smoked","pollution_level":"low","genetic_risk":"negative"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body: %s)", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/patients", "", token)
	var records []models.PatientRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d", len(records))
	}
	// 이전 평가가 남아있으면 안 됨
	if records[0].Age != 30 || records[0].RiskLevel != "Low" {
		t.Errorf("assessment not recomputed: %+v", records[0])
	}
}

func TestUpdatePatientErrors(t *testing.T) {
	router, issuer := newTestServer(t)
	token := bearerToken(t, issuer)
	body := `{"age":30,"smoking_history":"never smoked","pollution_level":"low","genetic_risk":"negative"}`

	if w := doJSON(router, http.MethodPut, "/patients/9999", body, token); w.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d", w.Code)
	}
	if w := doJSON(router, http.MethodPut, "/patients/abc", body, token); w.Code != http.StatusBadRequest {
		t.Errorf("non-integer id status = %d", w.Code)
	}
	if w := doJSON(router, http.MethodPut, "/patients/1", body, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d", w.Code)
	}
}

func TestDeletePatient(t *testing.T) {
	router, issuer := newTestServer(t)
	token := bearerToken(t, issuer)

	w := doJSON(router, http.MethodPost, "/patients",
		`{"age":40,"smoking_history":"never smoked","pollution_level":"low","genetic_risk":"negative"}`, "")
	var saved SavedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	idPath := "/patients/" + strconv.FormatInt(saved.ID, 10)

	if w := doJSON(router, http.MethodDelete, idPath, "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated delete status = %d", w.Code)
	}
	if w := doJSON(router, http.MethodDelete, idPath, "", token); w.Code != http.StatusOK {
		t.Errorf("delete status = %d (body: %s)", w.Code, w.Body.String())
	}
	// 삭제 후 재삭제는 404
	if w := doJSON(router, http.MethodDelete, idPath, "", token); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}

	w = doJSON(router, http.MethodGet, "/patients", "", token)
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("list after delete = %s, want []", body)
	}
}
