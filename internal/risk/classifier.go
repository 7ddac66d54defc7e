/* 폐암 위험도 분류기. 규칙 순서가 결과를 결정하므로 순서 변경 금지 */

package risk

import "HealthRiskPredictor/internal/models"

const (
	recommendHigh = "Schedule early diagnostic tests."
	recommendMed  = "Recommend periodic check-ups."
	recommendLow  = "Maintain healthy habits and regular checkups."
)

// Predict는 네 가지 입력으로 (위험도, 권고사항)을 계산함.
// 순수 함수이며 실패하지 않음. 입력 검증은 호출 전에 끝나 있어야 함.
// 규칙이 겹치는 경우 먼저 맞는 규칙이 이김 (예: 유전 위험 양성 + 고령 +
// 높은 오염도는 1번 규칙으로 High)
func Predict(age int, smokingHistory, pollutionLevel, geneticRisk string) (string, string) {
	switch {
	case geneticRisk == models.GeneticPositive && (age > 50 || smokingHistory == models.SmokingCurrent):
		return models.RiskHigh, recommendHigh
	case pollutionLevel == models.PollutionHigh && (smokingHistory == models.SmokingCurrent || age > 60):
		return models.RiskHigh, recommendHigh
	case smokingHistory == models.SmokingFormer && (pollutionLevel == models.PollutionMedium || pollutionLevel == models.PollutionHigh):
		return models.RiskMedium, recommendMed
	case age > 55 && pollutionLevel == models.PollutionMedium:
		return models.RiskMedium, recommendMed
	default:
		return models.RiskLow, recommendLow
	}
}

// Assess는 Predict 결과를 응답 모델로 감싸는 헬퍼
func Assess(in models.RiskInput) models.RiskAssessment {
	level, recommendation := Predict(in.Age, in.SmokingHistory, in.PollutionLevel, in.GeneticRisk)
	return models.RiskAssessment{RiskLevel: level, Recommendation: recommendation}
}
