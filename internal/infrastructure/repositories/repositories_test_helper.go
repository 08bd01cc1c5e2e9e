package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createSubmissionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE submissions (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		city TEXT NOT NULL,
		education TEXT,
		education_grade TEXT,
		grade_type TEXT,
		has_language_test TEXT,
		language_test TEXT,
		ielts_score TEXT,
		has_work_experience TEXT,
		work_experience_years TEXT,
		financial_capacity TEXT,
		preferred_intake TEXT,
		preferred_province TEXT,
		otp_code TEXT,
		otp_verified INTEGER NOT NULL DEFAULT 0,
		eligibility_score INTEGER,
		status TEXT NOT NULL DEFAULT 'pending',
		submitted_at DATETIME NOT NULL
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	);`)
}
