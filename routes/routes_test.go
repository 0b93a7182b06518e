package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"MediBook/config/authorization"
	"MediBook/config/jwt"
	"MediBook/controllers"
	"MediBook/repository/memory"
	"MediBook/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T, legacyOpen bool) *testServer {
	issuer := jwt.NewIssuer("routes-test-secret", 8*time.Hour)
	ctl := &controllers.Controller{
		Auth:          services.NewAuthService(memory.NewAccounts(), issuer, bcrypt.MinCost),
		Doctors:       services.NewDoctorService(memory.NewDoctors(), nil),
		Bookings:      services.NewBookingService(memory.NewBookings(), memory.NewCounters(), nil),
		Prescriptions: services.NewPrescriptionService(memory.NewPrescriptions()),
	}
	r := gin.New()
	Routes(r, ctl, authorization.NewGuards(authorization.JWTAuth(issuer), legacyOpen))
	return &testServer{t: t, engine: r}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, map[string]interface{}, []interface{}) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var obj map[string]interface{}
	var arr []interface{}
	if bytes.HasPrefix(bytes.TrimSpace(w.Body.Bytes()), []byte("[")) {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &arr))
	} else if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &obj))
	}
	return w.Code, obj, arr
}

// login registers the account and returns a session token for it.
func (s *testServer) login(name, email, role string) string {
	code, body, _ := s.do(http.MethodPost, "/api/register", "", map[string]interface{}{
		"name": name, "email": email, "password": "pw123", "role": role,
	})
	require.Equal(s.t, http.StatusOK, code, body)
	code, body, _ = s.do(http.MethodPost, "/api/login", "", map[string]interface{}{"email": email, "password": "pw123"})
	require.Equal(s.t, http.StatusOK, code, body)
	return body["token"].(string)
}

func booking(patientEmail string) map[string]interface{} {
	return map[string]interface{}{
		"patientId": "P-1", "patientName": "Alice", "patientAge": "34",
		"patientAddress": "12 Lake Road", "patientMobile": "9000000001", "patientEmail": patientEmail,
		"doctorId": "D1", "doctorEmail": "rao@x.com", "doctorName": "Anita Rao",
		"specialist": "General", "date": "2024-06-01", "time": "10:30",
	}
}

func TestScenario_RegisterLoginBook(t *testing.T) {
	s := newTestServer(t, false)

	code, body, _ := s.do(http.MethodPost, "/api/register", "", map[string]interface{}{"name": "Alice", "email": "a@x.com", "password": "pw123"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Registered successfully", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/login", "", map[string]interface{}{"email": "a@x.com", "password": "pw123"})
	require.Equal(t, http.StatusOK, code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "Alice", user["name"])
	token := body["token"].(string)

	code, body, _ = s.do(http.MethodPost, "/api/login", "", map[string]interface{}{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/bookings", token, booking("a@x.com"))
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["tokenNumber"])
	assert.Equal(t, "Pending", body["booking"].(map[string]interface{})["status"])
}

func TestRegister_DuplicateAndMissing(t *testing.T) {
	s := newTestServer(t, false)
	s.login("Alice", "a@x.com", "")

	code, body, _ := s.do(http.MethodPost, "/api/register", "", map[string]interface{}{"name": "A", "email": "a@x.com", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already exists", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/register", "", map[string]interface{}{"email": "b@x.com"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing fields: name, password", body["message"])
}

func TestNonStringPasswords(t *testing.T) {
	s := newTestServer(t, false)

	code, body, _ := s.do(http.MethodPost, "/api/register", "", map[string]interface{}{
		"name": "Alice", "email": "a@x.com", "password": 12345,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid request body", body["message"])

	s.login("Bob", "b@x.com", "")
	for _, pw := range []interface{}{12345, "", nil, true} {
		code, body, _ = s.do(http.MethodPost, "/api/login", "", map[string]interface{}{"email": "b@x.com", "password": pw})
		assert.Equal(t, http.StatusUnauthorized, code, pw)
		assert.Equal(t, "Invalid credentials", body["message"])
	}
}

func TestCreateBooking_ServerAssignsStatusAndToken(t *testing.T) {
	s := newTestServer(t, false)
	user := s.login("Alice", "a@x.com", "user")

	b := booking("a@x.com")
	b["status"] = "Approved"
	b["doctorStatus"] = "Reviewed"
	b["tokenNumber"] = 99
	b["patientAge"] = 34
	code, body, _ := s.do(http.MethodPost, "/api/bookings", user, b)
	require.Equal(t, http.StatusCreated, code, body)
	created := body["booking"].(map[string]interface{})
	assert.Equal(t, "Pending", created["status"])
	assert.Equal(t, "Not Reviewed", created["doctorStatus"])
	assert.Equal(t, "34", created["patientAge"])
	assert.Equal(t, float64(1), body["tokenNumber"])

	delete(b, "date")
	code, body, _ = s.do(http.MethodPost, "/api/bookings", user, b)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Missing fields: date", body["message"])
}

func TestCreate_FieldDecodeErrors(t *testing.T) {
	s := newTestServer(t, false)
	admin := s.login("Root", "root@x.com", "admin")
	doctor := s.login("Rao", "rao@x.com", "doctor")

	code, body, _ := s.do(http.MethodPost, "/api/doctors", admin, map[string]interface{}{"doctorId": "D1", "dateOfBirth": "01/02/1980"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid date, expected YYYY-MM-DD or RFC3339", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/doctors", admin, map[string]interface{}{"doctorName": "No Id"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "doctorId is required", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/prescriptions", doctor, map[string]interface{}{
		"doctorEmail": "rao@x.com", "patientEmail": "a@x.com", "patientAge": "old",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid number", body["message"])
}

func TestAuthGates(t *testing.T) {
	s := newTestServer(t, false)
	user := s.login("Alice", "a@x.com", "user")
	doctor := s.login("Rao", "rao@x.com", "doctor")

	code, body, _ := s.do(http.MethodGet, "/api/doctors", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "No token, authorization denied", body["message"])

	code, body, _ = s.do(http.MethodGet, "/api/doctors", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Token is not valid", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/doctors", user, map[string]interface{}{"doctorId": "D1"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Forbidden", body["message"])

	code, _, _ = s.do(http.MethodPost, "/api/bookings", doctor, booking("a@x.com"))
	assert.Equal(t, http.StatusForbidden, code)
}

func TestClosedMode_GapRoutes(t *testing.T) {
	s := newTestServer(t, false)
	user := s.login("Alice", "a@x.com", "user")
	doctor := s.login("Rao", "rao@x.com", "doctor")
	id := primitive.NewObjectID().Hex()

	gated := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/doctor/appointments?doctorEmail=rao@x.com"},
		{http.MethodPut, "/api/doctor/appointments/" + id + "/status"},
		{http.MethodDelete, "/api/doctor/appointments/" + id},
		{http.MethodGet, "/api/patients"},
		{http.MethodDelete, "/api/patients/" + id},
		{http.MethodPost, "/api/prescriptions"},
		{http.MethodGet, "/api/prescriptions/doctor"},
		{http.MethodPut, "/api/prescriptions/" + id},
		{http.MethodDelete, "/api/prescriptions/" + id},
	}
	for _, tc := range gated {
		code, _, _ := s.do(tc.method, tc.path, "", map[string]interface{}{})
		assert.Equal(t, http.StatusUnauthorized, code, "%s %s without token", tc.method, tc.path)
		code, _, _ = s.do(tc.method, tc.path, user, map[string]interface{}{})
		assert.Equal(t, http.StatusForbidden, code, "%s %s as user", tc.method, tc.path)
		code, _, _ = s.do(tc.method, tc.path, doctor, map[string]interface{}{})
		assert.NotContains(t, []int{http.StatusUnauthorized, http.StatusForbidden}, code, "%s %s as doctor", tc.method, tc.path)
	}

	for _, path := range []string{"/api/bookings", "/api/prescriptions/patient?patientEmail=a@x.com"} {
		code, _, _ := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, code, path)
		code, _, _ = s.do(http.MethodGet, path, user, nil)
		assert.Equal(t, http.StatusOK, code, path)
	}
}

func TestLegacyMode_GapRoutesOpen(t *testing.T) {
	s := newTestServer(t, true)
	user := s.login("Alice", "a@x.com", "user")
	_, created, _ := s.do(http.MethodPost, "/api/bookings", user, booking("a@x.com"))
	id := created["booking"].(map[string]interface{})["_id"].(string)

	code, _, list := s.do(http.MethodGet, "/api/doctor/appointments?doctorEmail=rao@x.com", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, body, _ := s.do(http.MethodPut, "/api/doctor/appointments/"+id+"/status", "", map[string]interface{}{"doctorStatus": "Reviewed"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Reviewed", body["doctorStatus"])

	code, body, _ = s.do(http.MethodDelete, "/api/patients/"+id, "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Record deleted successfully", body["message"])

	code, _, _ = s.do(http.MethodPost, "/api/doctors", "", map[string]interface{}{"doctorId": "D1"})
	assert.Equal(t, http.StatusUnauthorized, code, "non-legacy routes stay protected")
}

func TestDoctorRoutes(t *testing.T) {
	s := newTestServer(t, false)
	admin := s.login("Root", "root@x.com", "admin")
	user := s.login("Alice", "a@x.com", "user")

	code, doc, _ := s.do(http.MethodPost, "/api/doctors", admin, map[string]interface{}{
		"doctorId": "D1", "doctorName": "Anita Rao", "doctorFrom": "Hyderabad", "language": "Telugu",
	})
	require.Equal(t, http.StatusOK, code, doc)
	id := doc["_id"].(string)

	code, _, list := s.do(http.MethodGet, "/api/doctors?name=RAO&doctorfrom=hyd", user, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, _, list = s.do(http.MethodGet, "/api/doctors?language=.*", user, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)

	code, body, _ := s.do(http.MethodGet, "/api/doctors/appointments/"+id, user, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "D1", body["doctorId"])

	code, body, _ = s.do(http.MethodGet, "/api/doctors/not-an-id", user, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid id", body["message"])

	code, body, _ = s.do(http.MethodGet, "/api/doctors/"+primitive.NewObjectID().Hex(), user, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Doctor not found", body["message"])

	code, body, _ = s.do(http.MethodPut, "/api/doctors/"+id, admin, map[string]interface{}{"specialist": "Cardiology"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cardiology", body["specialist"])

	code, body, _ = s.do(http.MethodDelete, "/api/doctors/"+id, admin, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Doctor deleted", body["message"])
}

func TestBookingUpdateAndDelete(t *testing.T) {
	s := newTestServer(t, false)
	user := s.login("Alice", "a@x.com", "user")
	doctor := s.login("Rao", "rao@x.com", "doctor")
	admin := s.login("Root", "root@x.com", "admin")

	_, created, _ := s.do(http.MethodPost, "/api/bookings", user, booking("a@x.com"))
	id := created["booking"].(map[string]interface{})["_id"].(string)

	code, body, _ := s.do(http.MethodPut, "/api/bookings/"+id, doctor, map[string]interface{}{"status": "Finished"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid status", body["message"])

	code, body, _ = s.do(http.MethodPut, "/api/bookings/"+id, doctor, map[string]interface{}{"status": "Approved"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Approved", body["status"])
	assert.Equal(t, float64(1), body["tokenNumber"])

	code, _, _ = s.do(http.MethodPut, "/api/bookings/"+id, doctor, map[string]interface{}{"tokenNumber": 9})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _, _ = s.do(http.MethodDelete, "/api/bookings/"+id, doctor, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body, _ = s.do(http.MethodDelete, "/api/bookings/"+id, admin, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Booking deleted", body["message"])

	code, _, _ = s.do(http.MethodDelete, "/api/bookings/"+id, admin, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestConcurrentBookingsOverHTTP(t *testing.T) {
	s := newTestServer(t, false)
	user := s.login("Alice", "a@x.com", "user")
	const n = 50

	var wg sync.WaitGroup
	tokens := make(chan float64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			_ = json.NewEncoder(&buf).Encode(booking("a@x.com"))
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", &buf)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+user)
			w := httptest.NewRecorder()
			s.engine.ServeHTTP(w, req)
			var body map[string]interface{}
			if assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body)) && assert.Equal(t, http.StatusCreated, w.Code) {
				tokens <- body["tokenNumber"].(float64)
			}
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[int]bool, n)
	for tok := range tokens {
		assert.False(t, seen[int(tok)], "token %v assigned twice", tok)
		seen[int(tok)] = true
	}
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "token %d missing", i)
	}
}

func TestPrescriptionRoutes(t *testing.T) {
	s := newTestServer(t, false)
	doctor := s.login("Rao", "rao@x.com", "doctor")
	user := s.login("Alice", "a@x.com", "user")

	code, created, _ := s.do(http.MethodPost, "/api/prescriptions", doctor, map[string]interface{}{
		"doctorEmail": "rao@x.com", "patientEmail": "a@x.com", "patientAge": 34, "diagnosis": "flu",
	})
	require.Equal(t, http.StatusCreated, code, created)

	code, body, _ := s.do(http.MethodGet, "/api/prescriptions/patient", user, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "patientEmail is required", body["message"])

	code, _, list := s.do(http.MethodGet, "/api/prescriptions/patient?patientEmail=a@x.com", user, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, body, _ = s.do(http.MethodPut, "/api/prescriptions/"+created["_id"].(string), doctor, map[string]interface{}{"notes": "rest"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "rest", body["notes"])

	code, body, _ = s.do(http.MethodDelete, "/api/prescriptions/"+primitive.NewObjectID().Hex(), doctor, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Prescription not found", body["message"])
}

func TestInvalidBodyAndHealth(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, w.Body.String())

	code, body, _ := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
