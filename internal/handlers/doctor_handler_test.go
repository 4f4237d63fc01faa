package handlers

import (
	"database/sql/driver"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func doctorRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	h := NewDoctorHandler(db, newTestDispatcher(t))

	r := newRouter()
	r.GET("/doctors", h.List)
	r.PUT("/doctor/:id", h.Update)
	return r, mock
}

func doctorRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "first_name", "last_name", "specialty", "center_id", "work_days",
	})
}

// bcryptOf casa con cualquier hash bcrypt del texto plano dado.
type bcryptOf struct {
	plain string
}

func (b bcryptOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(b.plain)) == nil
}

func TestListDoctors(t *testing.T) {
	r, mock := doctorRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "doctors"`).
		WillReturnRows(doctorRows().
			AddRow(1, "laura@clinic.example", "hash", "Laura", "Iriarte", "cardiología", 2, "L,M,X").
			AddRow(2, "mikel@clinic.example", "hash", "Mikel", "Oteiza", "", nil, ""))

	w := doJSON(r, http.MethodGet, "/doctors", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "laura@clinic.example")
	assert.Contains(t, w.Body.String(), "mikel@clinic.example")
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestUpdateDoctor_PartialFields(t *testing.T) {
	r, mock := doctorRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "doctors" WHERE id =`).
		WillReturnRows(doctorRows().
			AddRow(1, "laura@clinic.example", "hash", "Laura", "Iriarte", "cardiología", nil, "L,M"))
	mock.ExpectExec(`UPDATE "doctors" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPut, "/doctor/1", gin.H{
		"work_days": "L,M,X,J",
		"center_id": 3,
	})

	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	// solo cambian work_days y center_id; el resto queda como estaba
	assert.Equal(t, "L,M,X,J", body["work_days"])
	assert.Equal(t, float64(3), body["center_id"])
	assert.Equal(t, "laura@clinic.example", body["email"])
	assert.Equal(t, "Laura", body["first_name"])
	assert.Equal(t, "Iriarte", body["last_name"])
	assert.Equal(t, "cardiología", body["specialty"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDoctor_RehashesPassword(t *testing.T) {
	r, mock := doctorRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "doctors" WHERE id =`).
		WillReturnRows(doctorRows().
			AddRow(1, "laura@clinic.example", "hash-viejo", "Laura", "Iriarte", "", nil, ""))
	mock.ExpectExec(`UPDATE "doctors" SET`).
		WithArgs(
			sqlmock.AnyArg(),                 // email
			bcryptOf{plain: "secreto-nuevo"}, // password_hash
			sqlmock.AnyArg(),                 // first_name
			sqlmock.AnyArg(),                 // last_name
			sqlmock.AnyArg(),                 // specialty
			sqlmock.AnyArg(),                 // center_id
			sqlmock.AnyArg(),                 // work_days
			sqlmock.AnyArg(),                 // created_at
			sqlmock.AnyArg(),                 // updated_at
			sqlmock.AnyArg(),                 // id
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPut, "/doctor/1", gin.H{"password": "secreto-nuevo"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secreto-nuevo")
	assert.NotContains(t, w.Body.String(), "password_hash")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDoctor_NotFound(t *testing.T) {
	r, mock := doctorRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "doctors" WHERE id =`).
		WillReturnRows(doctorRows())

	w := doJSON(r, http.MethodPut, "/doctor/99", gin.H{"work_days": "V"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "doctor_not_found")
}
