/**
* Name: 			patient_handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러
* Workflow: 		위험도 예측, 환자 레코드 CRUD
 */
package handler

import (
	"log"
	"net/http"
	"strconv"

	"HealthRiskPredictor/internal/apperr"
	"HealthRiskPredictor/internal/models"
	"HealthRiskPredictor/internal/risk"
	"HealthRiskPredictor/internal/storage"

	"github.com/gin-gonic/gin"
)

type SuccessResponse struct {
	Message string `json:"message" example:"Patient saved successfully"`
}
type SavedResponse struct {
	Message string `json:"message" example:"Patient saved successfully"`
	ID      int64  `json:"id" example:"1"`
}
type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

type PatientHandler struct {
	store *storage.PatientStore
}

func NewPatientHandler(store *storage.PatientStore) *PatientHandler {
	return &PatientHandler{store: store}
}

// 요청 바디를 RiskInput으로 읽고 허용값 검증까지 끝냄
func bindRiskInput(c *gin.Context) (models.RiskInput, error) {
	var in models.RiskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		return in, apperr.Wrap(apperr.Validation, "invalid request body", err)
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

// 에러 종류별 상태 코드 변환은 전부 여기를 거침
func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v (request_id=%s)", c.Request.Method, c.Request.URL.Path, err, c.GetString("request_id"))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// Health godoc
// @Summary      서버 상태 확인
// @Description  서버가 살아있는지 확인합니다.
// @Tags         Health
// @Produce      json
// @Success      200 {object} handler.SuccessResponse
// @Router       / [get]
func (h *PatientHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Health Risk Predictor API is running"})
}

// PredictRisk godoc
// @Summary      위험도 예측
// @Description  네 가지 입력으로 폐암 위험도와 권고사항을 계산합니다. 저장하지 않습니다.
// @Tags         Risk
// @Accept       json
// @Produce      json
// @Param        request body models.RiskInput true "예측 입력값"
// @Success      200 {object} models.RiskAssessment
// @Failure      400 {object} handler.ErrorResponse "입력값 검증 실패"
// @Router       /predict-risk [post]
func (h *PatientHandler) PredictRisk(c *gin.Context) {
	in, err := bindRiskInput(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, risk.Assess(in))
}

// SavePatient godoc
// @Summary      환자 평가 저장
// @Description  입력값으로 위험도를 계산하고 입력값과 결과를 함께 저장합니다.
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Param        request body models.RiskInput true "예측 입력값"
// @Success      200 {object} handler.SavedResponse
// @Failure      400 {object} handler.ErrorResponse "입력값 검증 실패"
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /patients [post]
func (h *PatientHandler) SavePatient(c *gin.Context) {
	in, err := bindRiskInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := h.store.CreatePatient(in, risk.Assess(in))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SavedResponse{Message: "Patient saved successfully", ID: id})
}

// ListPatients godoc
// @Summary      환자 목록 조회
// @Description  저장된 모든 환자 레코드를 반환합니다. (JWT 필요)
// @Tags         Patients (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.PatientRecord
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패"
// @Router       /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	records, err := h.store.ListPatients()
	if err != nil {
		respondError(c, err)
		return
	}
	if records == nil {
		records = []models.PatientRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// UpdatePatient godoc
// @Summary      환자 레코드 수정
// @Description  새 입력값으로 위험도를 다시 계산해 레코드를 덮어씁니다. (JWT 필요)
// @Tags         Patients (Protected)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int              true "환자 레코드 ID"
// @Param        request body models.RiskInput true "새 입력값"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse "입력값 검증 실패"
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      404 {object} handler.ErrorResponse "해당 ID의 레코드 없음"
// @Router       /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperr.Errorf(apperr.Validation, "invalid patient id %q", c.Param("id")))
		return
	}

	in, err := bindRiskInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	// 수정 시에는 반드시 새 입력값으로 평가를 다시 계산함
	if err := h.store.UpdatePatient(id, in, risk.Assess(in)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Patient updated successfully"})
}

// DeletePatient godoc
// @Summary      환자 레코드 삭제
// @Description  해당 ID의 레코드를 삭제합니다. (JWT 필요)
// @Tags         Patients (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "환자 레코드 ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      404 {object} handler.ErrorResponse "해당 ID의 레코드 없음"
// @Router       /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperr.Errorf(apperr.Validation, "invalid patient id %q", c.Param("id")))
		return
	}

	if err := h.store.DeletePatient(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Patient deleted successfully"})
}
