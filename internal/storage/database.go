package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// PatientStore는 patients 테이블에 대한 CRUD를 담당함.
// *sql.DB가 커넥션 풀이므로 각 요청은 풀에서 커넥션을 빌려 쓰고 반납함
type PatientStore struct {
	db *sql.DB
}

// Open은 DB 파일을 열고 테이블이 없으면 생성함
func Open(path string) (*PatientStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open: failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("storage.Open: failed to connect to database: %w", err)
	}

	createPatientsTable := `
	CREATE TABLE IF NOT EXISTS patients (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"age" INTEGER NOT NULL,
			"smoking_history" TEXT NOT NULL,
			"pollution_level" TEXT NOT NULL,
			"genetic_risk" TEXT NOT NULL,
			"risk_level" TEXT NOT NULL,
			"recommendation" TEXT NOT NULL
	);`

	if _, err := db.Exec(createPatientsTable); err != nil {
		return nil, fmt.Errorf("storage.Open: failed to create patients table: %w", err)
	}
	return &PatientStore{db: db}, nil
}

func (s *PatientStore) Close() error {
	return s.db.Close()
}
