package storage

import (
	"database/sql"
	"errors"

	"HealthRiskPredictor/internal/apperr"
	"HealthRiskPredictor/internal/models"
)

// update/delete 대상 id가 없을 때 반환되는 에러. 핸들러 경계에서 404로 변환됨
var ErrPatientNotFound = apperr.New(apperr.NotFound, "patient not found")

// CreatePatient는 입력값과 평가 결과를 한 행으로 저장하고 새 id를 돌려줌
func (s *PatientStore) CreatePatient(in models.RiskInput, assessment models.RiskAssessment) (int64, error) {
	stmt, err := s.db.Prepare(`INSERT INTO patients(age, smoking_history, pollution_level, genetic_risk, risk_level, recommendation) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.Exec(in.Age, in.SmokingHistory, in.PollutionLevel, in.GeneticRisk, assessment.RiskLevel, assessment.Recommendation)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListPatients는 저장된 순서(id 순)로 전체 레코드를 돌려줌
func (s *PatientStore) ListPatients() ([]models.PatientRecord, error) {
	query := `
		SELECT id, age, smoking_history, pollution_level, genetic_risk, risk_level, recommendation
		FROM patients
		ORDER BY id
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PatientRecord
	for rows.Next() {
		var r models.PatientRecord
		if err := rows.Scan(&r.ID, &r.Age, &r.SmokingHistory, &r.PollutionLevel, &r.GeneticRisk, &r.RiskLevel, &r.Recommendation); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *PatientStore) GetPatientByID(id int64) (models.PatientRecord, error) {
	var r models.PatientRecord
	row := s.db.QueryRow(`SELECT id, age, smoking_history, pollution_level, genetic_risk, risk_level, recommendation FROM patients WHERE id = ?`, id)
	if err := row.Scan(&r.ID, &r.Age, &r.SmokingHistory, &r.PollutionLevel, &r.GeneticRisk, &r.RiskLevel, &r.Recommendation); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, ErrPatientNotFound
		}
		return r, err
	}
	return r, nil
}

// UpdatePatient는 입력값과 함께 재계산된 평가 결과를 덮어씀.
// 호출자는 반드시 새 입력값으로 다시 분류한 assessment를 넘겨야 함
func (s *PatientStore) UpdatePatient(id int64, in models.RiskInput, assessment models.RiskAssessment) error {
	result, err := s.db.Exec(`UPDATE patients SET age = ?, smoking_history = ?, pollution_level = ?, genetic_risk = ?, risk_level = ?, recommendation = ? WHERE id = ?`,
		in.Age, in.SmokingHistory, in.PollutionLevel, in.GeneticRisk, assessment.RiskLevel, assessment.Recommendation, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (s *PatientStore) DeletePatient(id int64) error {
	result, err := s.db.Exec(`DELETE FROM patients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}
