package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal/internal/handlers"
	"github.com/harentsoaR/doctors-portal/internal/models"
	"github.com/harentsoaR/doctors-portal/internal/repository/memory"
	"github.com/harentsoaR/doctors-portal/internal/services"
	"github.com/harentsoaR/doctors-portal/internal/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const secret = "route-secret"

type stubProcessor struct {
	lastAmount int64
}

func (p *stubProcessor) CreatePaymentIntent(_ context.Context, amount int64, _ string) (string, error) {
	p.lastAmount = amount
	return "pi_test_secret", nil
}

type testServer struct {
	router    *gin.Engine
	store     *memory.Store
	processor *stubProcessor
	admin     models.User
	user      models.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	store.AddOption(models.AppointmentOption{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}, Price: 99})
	store.AddOption(models.AppointmentOption{Name: "Whitening", Slots: []string{"1pm"}, Price: 400})

	ts := &testServer{store: store, processor: &stubProcessor{}}
	ts.admin = models.User{Name: "Root", Email: "admin@x.com", Role: models.RoleAdmin}
	ts.user = models.User{Name: "Ann", Email: "a@x.com"}
	for _, u := range []*models.User{&ts.admin, &ts.user} {
		res, err := store.Users().Insert(context.Background(), u)
		if err != nil {
			t.Fatalf("seed user: %v", err)
		}
		u.ID = res.InsertedID.(primitive.ObjectID)
	}

	gate := services.NewAccessGate(store.Users(), secret, time.Hour)
	availability := services.NewAvailabilityService(store.Options(), store.Bookings(), nil, log)
	payments := services.NewPaymentService(ts.processor, store.Payments(), store.Bookings(), log)
	h := handlers.NewHandler(gate, availability, payments, store.Options(), store.Bookings(), store.Users(), store.Doctors(), log)

	ts.router = gin.New()
	RegisterRoutes(ts.router, h)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, secret, time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "doctors server running" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestAppointmentOptionsScenario(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/bookings", `{"treatment":"Cleaning","appointDate":"2024-01-01","selectedSlot":"9am","email":"a@x.com","patient":"Ann"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/appointmentOptions?date=2024-01-01", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var opts []models.AppointmentOption
	decode(t, rec, &opts)
	if len(opts) != 2 || opts[0].Name != "Cleaning" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if strings.Join(opts[0].Slots, ",") != "10am,11am" {
		t.Fatalf("expected 10am,11am got %v", opts[0].Slots)
	}

	rec = ts.do(t, http.MethodGet, "/appointmentOptions", "", "")
	decode(t, rec, &opts)
	if len(opts[0].Slots) != 3 {
		t.Fatalf("expected unfiltered slots without a date, got %v", opts[0].Slots)
	}
}

func TestDuplicateBookingScenario(t *testing.T) {
	ts := newTestServer(t)
	body := `{"treatment":"Cleaning","appointDate":"2024-01-01","email":"a@x.com","selectedSlot":"10am"}`

	var first, second models.BookingResult
	decode(t, ts.do(t, http.MethodPost, "/bookings", body, ""), &first)
	rec := ts.do(t, http.MethodPost, "/bookings", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected soft failure with 200, got %d", rec.Code)
	}
	decode(t, rec, &second)

	if !first.Acknowledged {
		t.Fatalf("first booking should be acknowledged: %+v", first)
	}
	if second.Acknowledged || second.Message != "you already have a booking on 2024-01-01" {
		t.Fatalf("unexpected second result %+v", second)
	}
	if n := len(ts.store.AllBookings()); n != 1 {
		t.Fatalf("expected one stored booking, got %d", n)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/bookings", `{"treatment":"Cleaning"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decode(t, rec, &body)
	if body.Fields["Email"] == "" || body.Fields["AppointDate"] == "" {
		t.Fatalf("expected field errors, got %v", body.Fields)
	}
}

func TestBookingsRequiresMatchingIdentity(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPost, "/bookings", `{"treatment":"Cleaning","appointDate":"2024-01-01","email":"a@x.com","selectedSlot":"10am"}`, "")

	if rec := ts.do(t, http.MethodGet, "/bookings?email=a@x.com", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("missing header: expected 404, got %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodGet, "/bookings?email=a@x.com", "", "garbage"); rec.Code != http.StatusForbidden {
		t.Fatalf("bad token: expected 403, got %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodGet, "/bookings?email=a@x.com", "", tokenFor(t, "b@x.com")); rec.Code != http.StatusForbidden {
		t.Fatalf("other identity: expected 403, got %d", rec.Code)
	}

	rec := ts.do(t, http.MethodGet, "/bookings?email=a@x.com", "", tokenFor(t, "a@x.com"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var bookings []models.Booking
	decode(t, rec, &bookings)
	if len(bookings) != 1 || bookings[0].SelectedSlot != "10am" {
		t.Fatalf("unexpected bookings %+v", bookings)
	}
}

func TestJWTIssuance(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/jwt?email=ghost@x.com", "", "")
	var out map[string]string
	decode(t, rec, &out)
	if rec.Code != http.StatusForbidden || out["accesstoken"] != "" {
		t.Fatalf("unknown user: expected 403 with empty token, got %d %v", rec.Code, out)
	}

	rec = ts.do(t, http.MethodGet, "/jwt?email=a@x.com", "", "")
	decode(t, rec, &out)
	if rec.Code != http.StatusOK || out["accesstoken"] == "" {
		t.Fatalf("expected token, got %d %v", rec.Code, out)
	}
	if rec := ts.do(t, http.MethodGet, "/bookings?email=a@x.com", "", out["accesstoken"]); rec.Code != http.StatusOK {
		t.Fatalf("issued token should authenticate, got %d", rec.Code)
	}
}

func TestDoctorRoutesRequireAdmin(t *testing.T) {
	ts := newTestServer(t)
	doctor := `{"name":"Dr. Who","specialty":"Cleaning","email":"who@x.com"}`

	if rec := ts.do(t, http.MethodPost, "/doctors", doctor, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("no token: expected 404, got %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodPost, "/doctors", doctor, tokenFor(t, ts.user.Email)); rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodGet, "/doctors", "", tokenFor(t, "ghost@x.com")); rec.Code != http.StatusForbidden {
		t.Fatalf("unregistered: expected 403, got %d", rec.Code)
	}

	adminToken := tokenFor(t, ts.admin.Email)
	rec := ts.do(t, http.MethodPost, "/doctors", doctor, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin create: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var created models.WriteResult
	decode(t, rec, &created)
	id, _ := created.InsertedID.(string)
	if !created.Acknowledged || id == "" {
		t.Fatalf("unexpected insert result %+v", created)
	}

	rec = ts.do(t, http.MethodGet, "/doctors", "", adminToken)
	var doctors []models.Doctor
	decode(t, rec, &doctors)
	if len(doctors) != 1 || doctors[0].Name != "Dr. Who" {
		t.Fatalf("unexpected doctors %+v", doctors)
	}

	rec = ts.do(t, http.MethodDelete, "/doctors/"+id, "", adminToken)
	var deleted models.WriteResult
	decode(t, rec, &deleted)
	if rec.Code != http.StatusOK || deleted.DeletedCount != 1 {
		t.Fatalf("unexpected delete %d %+v", rec.Code, deleted)
	}

	if rec := ts.do(t, http.MethodDelete, "/doctors/not-an-id", "", adminToken); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: expected 400, got %d", rec.Code)
	}
}

func TestMakeAdmin(t *testing.T) {
	ts := newTestServer(t)
	path := "/users/admin/" + ts.user.ID.Hex()

	if rec := ts.do(t, http.MethodPut, path, "", tokenFor(t, ts.user.Email)); rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin promote: expected 403, got %d", rec.Code)
	}

	rec := ts.do(t, http.MethodGet, "/users/admin/"+ts.user.Email, "", "")
	var check map[string]bool
	decode(t, rec, &check)
	if check["isAdmin"] {
		t.Fatalf("user should not be admin yet")
	}

	if rec := ts.do(t, http.MethodPut, path, "", tokenFor(t, ts.admin.Email)); rec.Code != http.StatusOK {
		t.Fatalf("admin promote: expected 200, got %d", rec.Code)
	}
	decode(t, ts.do(t, http.MethodGet, "/users/admin/"+ts.user.Email, "", ""), &check)
	if !check["isAdmin"] {
		t.Fatalf("user should be admin now")
	}
	decode(t, ts.do(t, http.MethodGet, "/users/admin/ghost@x.com", "", ""), &check)
	if check["isAdmin"] {
		t.Fatalf("unknown email must not be admin")
	}
}

func TestCreateUserCannotSelfElevate(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/users", `{"name":"Eve","email":"eve@x.com","role":"admin"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var check map[string]bool
	decode(t, ts.do(t, http.MethodGet, "/users/admin/eve@x.com", "", ""), &check)
	if check["isAdmin"] {
		t.Fatalf("role must not be settable on sign-up")
	}

	var users []models.User
	decode(t, ts.do(t, http.MethodGet, "/users", "", ""), &users)
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
}

func TestPaymentFlow(t *testing.T) {
	ts := newTestServer(t)
	var booked models.BookingResult
	decode(t, ts.do(t, http.MethodPost, "/bookings", `{"treatment":"Cleaning","appointDate":"2024-01-01","email":"a@x.com","selectedSlot":"9am","price":99}`, ""), &booked)
	bookingID, _ := booked.InsertedID.(string)
	if bookingID == "" {
		t.Fatalf("expected inserted id, got %+v", booked)
	}

	rec := ts.do(t, http.MethodPost, "/create-payment-intent", `{"price":99.5}`, "")
	var intent map[string]string
	decode(t, rec, &intent)
	if rec.Code != http.StatusOK || intent["clientSecret"] != "pi_test_secret" {
		t.Fatalf("unexpected intent %d %v", rec.Code, intent)
	}
	if ts.processor.lastAmount != 9950 {
		t.Fatalf("expected 9950 cents, got %d", ts.processor.lastAmount)
	}
	if rec := ts.do(t, http.MethodPost, "/create-payment-intent", `{"price":0}`, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("zero price: expected 400, got %d", rec.Code)
	}

	rec = ts.do(t, http.MethodPost, "/payments", `{"bookingId":"`+bookingID+`","transactionId":"T","price":99,"email":"a@x.com"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = ts.do(t, http.MethodGet, "/payment/"+bookingID, "", "")
	var booking models.Booking
	decode(t, rec, &booking)
	if !booking.Paid || booking.TransactionID != "T" {
		t.Fatalf("expected paid booking, got %+v", booking)
	}

	if rec := ts.do(t, http.MethodGet, "/payment/ffffffffffffffffffffffff", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown booking: expected 404, got %d", rec.Code)
	}
	if rec := ts.do(t, http.MethodPost, "/payments", `{"bookingId":"bad","transactionId":"T"}`, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid booking id: expected 400, got %d", rec.Code)
	}
}

func TestSpecialties(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/appointspecialty", "", "")
	var specialties []map[string]interface{}
	decode(t, rec, &specialties)
	if len(specialties) != 2 || specialties[0]["name"] != "Cleaning" {
		t.Fatalf("unexpected specialties %v", specialties)
	}
	if _, hasSlots := specialties[0]["slots"]; hasSlots {
		t.Fatalf("projection must only carry name and id")
	}
}
