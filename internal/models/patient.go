package models

import "HealthRiskPredictor/internal/apperr"

// 입력 필드의 허용값 (분류기 규칙과 동일한 문자열을 사용해야 함)
const (
	SmokingNever   = "never smoked"
	SmokingFormer  = "former smoker"
	SmokingCurrent = "current smoker"

	PollutionLow    = "low"
	PollutionMedium = "medium"
	PollutionHigh   = "high"

	GeneticPositive = "positive"
	GeneticNegative = "negative"
)

// 위험도 평가 결과값
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// 위험도 예측 요청 바디
type RiskInput struct {
	Age            int    `json:"age" example:"65"`
	SmokingHistory string `json:"smoking_history" example:"current smoker"`
	PollutionLevel string `json:"pollution_level" example:"high"`
	GeneticRisk    string `json:"genetic_risk" example:"positive"`
}

// 분류기 호출 전에 반드시 통과해야 하는 검증.
// 허용값 밖의 입력은 Validation 에러로 거부됨
func (in RiskInput) Validate() error {
	if in.Age < 0 {
		return apperr.Errorf(apperr.Validation, "age must be a non-negative integer, got %d", in.Age)
	}
	switch in.SmokingHistory {
	case SmokingNever, SmokingFormer, SmokingCurrent:
	default:
		return apperr.Errorf(apperr.Validation, "invalid smoking_history %q", in.SmokingHistory)
	}
	switch in.PollutionLevel {
	case PollutionLow, PollutionMedium, PollutionHigh:
	default:
		return apperr.Errorf(apperr.Validation, "invalid pollution_level %q", in.PollutionLevel)
	}
	switch in.GeneticRisk {
	case GeneticPositive, GeneticNegative:
	default:
		return apperr.Errorf(apperr.Validation, "invalid genetic_risk %q", in.GeneticRisk)
	}
	return nil
}

// 위험도 예측 응답 바디
type RiskAssessment struct {
	RiskLevel      string `json:"risk_level" example:"High"`
	Recommendation string `json:"recommendation" example:"Schedule early diagnostic tests."`
}

// patients 테이블의 한 행. 입력값과 평가 결과가 함께 저장됨
type PatientRecord struct {
	ID             int64  `json:"id"`
	Age            int    `json:"age"`
	SmokingHistory string `json:"smoking_history"`
	PollutionLevel string `json:"pollution_level"`
	GeneticRisk    string `json:"genetic_risk"`
	RiskLevel      string `json:"risk_level"`
	Recommendation string `json:"recommendation"`
}
