package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "repairdesk.com/repairdesk/internal/configs"
	"repairdesk.com/repairdesk/internal/constants"
	repository "repairdesk.com/repairdesk/internal/repositories"
	"repairdesk.com/repairdesk/internal/services"
	"repairdesk.com/repairdesk/internal/sessions"
)

func setupTestServer(t *testing.T) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)
	store := sessions.NewMemoryStore(3600)

	handler := NewHandler(
		services.NewJobService(jobRepo),
		services.NewClientService(repository.NewClientRepository(db), jobRepo, false),
		services.NewUserService(userRepo, jobRepo, false),
		services.NewAuthService(userRepo, store),
		services.NewMessageService(repository.NewMessageRepository(db)),
	)

	e := echo.New()
	Register(e, handler, store, 1000)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not a JSON object: %v (%s)", err, rec.Body.String())
		}
	}

	return rec.Code, decoded
}

func listJobs(t *testing.T, e *echo.Echo, filter string) []map[string]interface{} {
	t.Helper()

	code, body := doJSON(t, e, http.MethodPost, "/api/getListJobs", `{"type":`+filter+`}`)
	if code != http.StatusOK {
		t.Fatalf("getListJobs returned %d", code)
	}

	raw, ok := body["jobs"].([]interface{})
	if !ok {
		t.Fatalf("expected a jobs array, got %v", body)
	}

	jobs := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		jobs = append(jobs, r.(map[string]interface{}))
	}
	return jobs
}

func findByNotes(jobs []map[string]interface{}, notes string) map[string]interface{} {
	for _, j := range jobs {
		if j["NOTES"] == notes {
			return j
		}
	}
	return nil
}

func createFixtures(t *testing.T, e *echo.Echo) {
	t.Helper()

	code, _ := doJSON(t, e, http.MethodPost, "/api/createUser",
		`{"userName":"tech","name":"Tech","email":"tech@example.com","password":"secret","role":2}`)
	if code != http.StatusOK {
		t.Fatalf("createUser returned %d", code)
	}

	code, _ = doJSON(t, e, http.MethodPost, "/api/createClient",
		`{"name":"Acme","address":"1 Road","postCode":"1234-567","email":"acme@example.com","nif":"123456789"}`)
	if code != http.StatusOK {
		t.Fatalf("createClient returned %d", code)
	}
}

func TestAPI_JobLifecycle(t *testing.T) {
	e := setupTestServer(t)
	createFixtures(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/createJob",
		`{"userId":1,"userIdClient":1,"equipmentType":1,"equipmentBrand":1,"equipmentProcedure":1,"notes":"lifecycle job","status":1,"priority":1}`)
	if code != http.StatusOK {
		t.Fatalf("createJob returned %d", code)
	}

	jobs := listJobs(t, e, `"ALL"`)
	job := findByNotes(jobs, "lifecycle job")
	if job == nil {
		t.Fatal("created job missing from ALL listing")
	}

	for _, key := range []string{
		"JOB_ID", "CLIENT_NAME", "STATUS_PROGRESS_CODE",
		"STATUS_PROGRESS_DESCRIPTION", "PRIORITY_DESCRIPTION", "NOTES",
	} {
		if _, ok := job[key]; !ok {
			t.Errorf("listing row is missing %s", key)
		}
	}
	if job["STATUS_PROGRESS_CODE"] != "1" {
		t.Errorf("expected status code \"1\", got %v", job["STATUS_PROGRESS_CODE"])
	}
	if job["CLIENT_NAME"] != "Acme" {
		t.Errorf("expected client name joined in, got %v", job["CLIENT_NAME"])
	}

	jobID := strconv.Itoa(int(job["JOB_ID"].(float64)))

	code, _ = doJSON(t, e, http.MethodPut, "/api/editJobInfo",
		`{"id":`+jobID+`,"status":`+strconv.Itoa(constants.StatusCompleted)+`}`)
	if code != http.StatusOK {
		t.Fatalf("editJobInfo returned %d", code)
	}

	if findByNotes(listJobs(t, e, `"ALL"`), "lifecycle job") != nil {
		t.Error("completed job still in ALL listing")
	}
	if findByNotes(listJobs(t, e, `"4"`), "lifecycle job") == nil {
		t.Error("completed job missing from status-4 listing")
	}
}

func TestAPI_FilterAcceptsStringAndNumber(t *testing.T) {
	e := setupTestServer(t)
	createFixtures(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/createJob",
		`{"userId":1,"userIdClient":1,"equipmentType":1,"equipmentBrand":1,"equipmentProcedure":1,"notes":"filter probe","status":2,"priority":1}`)
	if code != http.StatusOK {
		t.Fatalf("createJob returned %d", code)
	}

	asNumber := listJobs(t, e, `2`)
	asString := listJobs(t, e, `"2"`)

	if findByNotes(asNumber, "filter probe") == nil {
		t.Error("numeric filter missed the job")
	}
	if findByNotes(asString, "filter probe") == nil {
		t.Error("string filter missed the job")
	}
}

func TestAPI_ClientRoundTrip(t *testing.T) {
	e := setupTestServer(t)

	code, _ := doJSON(t, e, http.MethodPost, "/api/createClient",
		`{"name":"Cliente Teste","address":"Rua de Teste, 123","postCode":"1234-567","email":"cliente.teste@example.com","nif":"123456789"}`)
	if code != http.StatusOK {
		t.Fatalf("createClient returned %d", code)
	}

	code, body := doJSON(t, e, http.MethodGet, "/api/getClients", "")
	if code != http.StatusOK {
		t.Fatalf("getClients returned %d", code)
	}

	clients := body["clients"].([]interface{})
	var clientID string
	for _, raw := range clients {
		c := raw.(map[string]interface{})
		if c["name"] == "Cliente Teste" && c["nif"] == "123456789" {
			clientID = strconv.Itoa(int(c["id"].(float64)))
		}
	}
	if clientID == "" {
		t.Fatal("created client missing from listing")
	}

	code, _ = doJSON(t, e, http.MethodDelete, "/api/deleteClient/"+clientID, "")
	if code != http.StatusOK {
		t.Fatalf("deleteClient returned %d", code)
	}

	_, body = doJSON(t, e, http.MethodGet, "/api/getClients", "")
	for _, raw := range body["clients"].([]interface{}) {
		c := raw.(map[string]interface{})
		if strconv.Itoa(int(c["id"].(float64))) == clientID {
			t.Error("deleted client still in listing")
		}
	}

	// Idempotent: the id is gone, the delete still reports success.
	code, _ = doJSON(t, e, http.MethodDelete, "/api/deleteClient/"+clientID, "")
	if code != http.StatusOK {
		t.Errorf("repeated deleteClient returned %d", code)
	}
}

func TestAPI_EditUser(t *testing.T) {
	e := setupTestServer(t)
	createFixtures(t, e)

	code, body := doJSON(t, e, http.MethodPut, "/api/editUser",
		`{"id":1,"name":"Renamed","role":1}`)
	if code != http.StatusOK {
		t.Fatalf("editUser returned %d", code)
	}
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body)
	}

	code, body = doJSON(t, e, http.MethodGet, "/api/getUsers", "")
	if code != http.StatusOK {
		t.Fatalf("getUsers returned %d", code)
	}

	users := body["users"].([]interface{})
	user := users[0].(map[string]interface{})
	if user["name"] != "Renamed" {
		t.Errorf("expected updated name, got %v", user["name"])
	}
	if user["email"] != "tech@example.com" {
		t.Errorf("partial edit changed email: %v", user["email"])
	}
	if user["roleDescription"] != "Administrator" {
		t.Errorf("expected role description joined in, got %v", user["roleDescription"])
	}
}

func TestAPI_LoginLogoutMe(t *testing.T) {
	e := setupTestServer(t)
	createFixtures(t, e)

	code, _ := doJSON(t, e, http.MethodPost, "/api/login", `{"login":"tech","password":"wrong"}`)
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", code)
	}

	code, body := doJSON(t, e, http.MethodPost, "/api/login", `{"login":"tech","password":"secret"}`)
	if code != http.StatusOK {
		t.Fatalf("login returned %d", code)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a session token")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me returned %d", rec.Code)
	}
	var me map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &me)
	if me["userName"] != "tech" {
		t.Errorf("me resolved wrong user: %v", me["userName"])
	}

	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout returned %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestAPI_Messages(t *testing.T) {
	e := setupTestServer(t)

	code, _ := doJSON(t, e, http.MethodPost, "/api/sendMessage",
		`{"fromUserId":1,"toUserId":2,"body":"ping"}`)
	if code != http.StatusOK {
		t.Fatalf("sendMessage returned %d", code)
	}

	code, body := doJSON(t, e, http.MethodPost, "/api/loadWebSocketMessages",
		`{"userId":2,"otherUserId":1}`)
	if code != http.StatusOK {
		t.Fatalf("loadWebSocketMessages returned %d", code)
	}

	messages := body["messages"].([]interface{})
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	msg := messages[0].(map[string]interface{})
	if msg["body"] != "ping" {
		t.Errorf("unexpected body %v", msg["body"])
	}
	if msg["seen"] != true {
		t.Error("loaded message should be marked seen")
	}
}
