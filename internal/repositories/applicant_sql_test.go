package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hirestack/recruitdesk/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func applicantRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "status", "applied_at", "job_title"}).
		AddRow(int64(1), "John Doe", "john@example.com", "interview", time.Now(), "Backend Engineer")
}

func TestListComposesConjunctiveFilterSQL(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicantRepository(db)

	exp := 3.0
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	filter := ApplicantFilter{
		Search:        "john",
		JobID:         "backend-1",
		Status:        "Interview",
		Skills:        []string{"Go"},
		MinExperience: &exp,
		Companies:     []string{"Acme"},
		Domains:       []string{"fintech"},
		DateFrom:      &from,
		DateTo:        &to,
		AssignedTo:    FilterUnassigned,
	}

	predicates := `applicants\.workspace_id = .+` +
		`applicants\.name ILIKE .+ OR applicants\.email ILIKE .+` +
		`applicants\.job_id = .+` +
		`applicants\.status = .+` +
		`applicants\.skills && .+` +
		`applicants\.total_experience_years >= .+` +
		`applicants\.previous_companies_names && .+` +
		`applicants\.domains_worked && .+` +
		`applicants\.applied_at >= .+` +
		`applicants\.applied_at <= .+` +
		`applicants\.assigned_to IS NULL`

	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants" LEFT JOIN jobs ON jobs\.job_id = applicants\.job_id WHERE ` + predicates).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT applicants\.\*, jobs\.title AS job_title FROM "applicants" LEFT JOIN jobs ON jobs\.job_id = applicants\.job_id WHERE ` + predicates + `.+ORDER BY applicants\.applied_at DESC`).
		WillReturnRows(applicantRows())

	applicants, count, err := repo.List(uuid.New(), filter, Page{Number: 1, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, applicants, 1)
	assert.Equal(t, "John Doe", applicants[0].Name)
	assert.Equal(t, "Backend Engineer", applicants[0].JobTitle)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReturnsPageAndCountTogether(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicantRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(45)))
	mock.ExpectQuery(`SELECT applicants\.\*, jobs\.title AS job_title FROM "applicants".+ORDER BY applicants\.applied_at DESC`).
		WillReturnRows(applicantRows())

	_, count, err := repo.List(uuid.New(), ApplicantFilter{}, Page{Number: 3, Size: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(45), count)
	assert.Equal(t, 3, TotalPages(count, 20))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByStatusBindsStatusAndRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicantRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants".+applicants\.status = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))
	mock.ExpectQuery(`SELECT applicants\.\*, jobs\.title AS job_title FROM "applicants".+applicants\.status = .+ORDER BY applicants\.applied_at DESC LIMIT`).
		WithArgs(sqlmock.AnyArg(), "new", 10, 10).
		WillReturnRows(applicantRows())

	_, count, err := repo.ListByStatus(uuid.New(), models.StatusNew, Page{Number: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicantRepository(db)

	mock.ExpectExec(`UPDATE "applicants" SET .+ WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(7, models.StatusOffer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewApplicantRepository(db)

	mock.ExpectExec(`UPDATE "applicants" SET .+ WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(7, models.StatusOffer)
	assert.EqualError(t, err, "applicant not found")
}

func TestFieldSuggestionsRejectsUnknownColumn(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewApplicantRepository(db)

	_, err := repo.FieldSuggestions(uuid.New(), "password_hash", "x")
	assert.Error(t, err)
}
