// internal/api/api_test.go
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/xmdragon/linode-manager/internal/auth"
	"github.com/xmdragon/linode-manager/internal/config"
	"github.com/xmdragon/linode-manager/internal/linode"
	"github.com/xmdragon/linode-manager/internal/models"
)

// envelope mirrors models.APIResponse with a raw data payload for
// per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// GatewaySuite runs the HTTP surface end-to-end against a fake provider.
type GatewaySuite struct {
	suite.Suite

	router   *gin.Engine
	store    *auth.MemoryStore
	provider *httptest.Server

	// providerDown forces every provider response to 503 when set
	providerDown bool
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewaySuite))
}

func (s *GatewaySuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	config.AppConfig = config.Config{
		APIPort:            "0",
		GinMode:            "test",
		LogLevel:           "error",
		AppEnv:             "production",
		JWTSecret:          "gateway-suite-secret",
		JWTExpirationHours: 24 * time.Hour,
	}

	s.providerDown = false
	s.provider = httptest.NewServer(s.fakeProvider())

	s.store = auth.NewMemoryStore()
	client := linode.NewClient(s.provider.URL, "provider-token", 5*time.Second)

	s.router = gin.New()
	SetupRoutes(s.router, NewHandler(s.store, client))
}

func (s *GatewaySuite) TearDownTest() {
	s.provider.Close()
}

// fakeProvider serves the subset of the Linode API the gateway calls.
func (s *GatewaySuite) fakeProvider() http.Handler {
	list := func(w http.ResponseWriter, items interface{}) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": items})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /linode/instances", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.Instance{
			{ID: 100, Label: "web-1", Status: "running", Region: "us-east"},
			{ID: 101, Label: "db-1", Status: "offline", Region: "ap-south"},
		})
	})
	mux.HandleFunc("POST /linode/instances", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateInstanceRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(models.Instance{ID: 102, Label: req.Label, Status: "provisioning", Region: req.Region})
	})
	mux.HandleFunc("GET /linode/instances/100", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Instance{ID: 100, Label: "web-1", Status: "running"})
	})
	mux.HandleFunc("DELETE /linode/instances/100", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	for _, action := range []string{"reboot", "boot", "shutdown"} {
		mux.HandleFunc("POST /linode/instances/100/"+action, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
	}
	mux.HandleFunc("GET /linode/instances/100/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	})
	mux.HandleFunc("GET /regions", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.Region{
			{ID: "zz-lost", Label: "Lost Region", Country: "zz"},
			{ID: "ap-south", Label: "Singapore, SG", Country: "sg"},
			{ID: "us-east", Label: "Newark, NJ", Country: "us"},
		})
	})
	mux.HandleFunc("GET /images", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.Image{
			{ID: "linode/ubuntu24.04", Label: "Ubuntu 24.04 LTS", IsPublic: true, Status: "available"},
			{ID: "linode/old", Label: "Old", IsPublic: true, Deprecated: true},
			{ID: "private/1", Label: "Snapshot", IsPublic: false},
		})
	})
	mux.HandleFunc("GET /linode/types", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.InstanceType{{ID: "g6-nanode-1", Label: "Nanode 1GB"}})
	})
	mux.HandleFunc("GET /profile/sshkeys", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.SSHKey{{ID: 1, Label: "laptop"}})
	})
	mux.HandleFunc("GET /linode/stackscripts", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.StackScript{{ID: 1, Label: "bootstrap", IsPublic: true}})
	})
	mux.HandleFunc("GET /linode/backups", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.Backup{})
	})
	mux.HandleFunc("GET /networking/firewalls", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.Firewall{{ID: 5, Label: "default", Status: "enabled"}})
	})
	mux.HandleFunc("GET /account/users", func(w http.ResponseWriter, r *http.Request) {
		list(w, []models.AccountUser{{ID: 1, Username: "owner"}})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.providerDown {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"errors": [{"reason": "provider unavailable"}]}`))
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// --- Request helpers ---

func (s *GatewaySuite) perform(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)

	var resp envelope
	if recorder.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &resp),
			"response body was not valid JSON: %s", recorder.Body.String())
	}
	return recorder, resp
}

// login authenticates and returns the session token, asserting success.
func (s *GatewaySuite) login(username, password string) string {
	recorder, resp := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	s.Require().Equal(http.StatusOK, recorder.Code, "login failed: %s", recorder.Body.String())
	s.Require().True(resp.Success)

	var data models.LoginResponse
	s.Require().NoError(json.Unmarshal(resp.Data, &data))
	s.Require().NotEmpty(data.Token)
	return data.Token
}

// --- Auth tests ---

func (s *GatewaySuite) TestLoginReturnsTokenAndUserView() {
	recorder, resp := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "password",
	})
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.True(resp.Success)

	var data models.LoginResponse
	s.Require().NoError(json.Unmarshal(resp.Data, &data))
	s.Equal("admin", data.User.Username)
	s.Equal("admin", data.User.Role)
	s.Equal("1", data.User.ID)

	claims, err := auth.ValidateJWT(data.Token)
	s.Require().NoError(err)
	s.Equal("1", claims.UserID)
	s.Equal("admin", claims.Username)
	s.Equal("admin", claims.Role)
}

func (s *GatewaySuite) TestLoginFailureIsUniform() {
	wrongPass, wrongPassResp := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "not-the-password",
	})
	unknownUser, unknownUserResp := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "ghost",
		"password": "password",
	})

	s.Equal(http.StatusUnauthorized, wrongPass.Code)
	s.Equal(http.StatusUnauthorized, unknownUser.Code)
	s.False(wrongPassResp.Success)
	s.False(unknownUserResp.Success)
	// No user-enumeration signal: identical message either way
	s.Equal(wrongPassResp.Message, unknownUserResp.Message)
}

func (s *GatewaySuite) TestLoginMissingFields() {
	recorder, resp := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.False(resp.Success)
}

func (s *GatewaySuite) TestMeReturnsTokenIdentity() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/auth/me", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var view models.UserView
	s.Require().NoError(json.Unmarshal(resp.Data, &view))
	s.Equal("admin", view.Username)
	s.Equal("1", view.ID)
}

func (s *GatewaySuite) TestProtectedRouteWithoutToken() {
	recorder, resp := s.perform(http.MethodGet, "/servers", "", nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)
	s.False(resp.Success)
}

func (s *GatewaySuite) TestProtectedRouteWithBadToken() {
	recorder, resp := s.perform(http.MethodGet, "/servers", "definitely-not-a-jwt", nil)
	s.Equal(http.StatusForbidden, recorder.Code)
	s.False(resp.Success)
}

func (s *GatewaySuite) TestProtectedRouteWithExpiredToken() {
	account, found := s.store.FindByID("1")
	s.Require().True(found)

	config.AppConfig.JWTExpirationHours = -time.Hour
	expired, err := auth.GenerateJWT(account)
	s.Require().NoError(err)
	config.AppConfig.JWTExpirationHours = 24 * time.Hour

	recorder, _ := s.perform(http.MethodGet, "/servers", expired, nil)
	s.Equal(http.StatusForbidden, recorder.Code)
}

// --- Profile update tests ---

func (s *GatewaySuite) TestUpdateProfileWrongCurrentPassword() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodPut, "/auth/update-profile", token, map[string]string{
		"username":        "newadmin",
		"currentPassword": "wrong",
		"newPassword":     "longenough",
	})
	s.Equal(http.StatusUnauthorized, recorder.Code)
	s.False(resp.Success)

	// Nothing may have been mutated
	s.login("admin", "password")
	_, found := s.store.FindByUsername("newadmin")
	s.False(found)
}

func (s *GatewaySuite) TestUpdateProfilePasswordOnly() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodPut, "/auth/update-profile", token, map[string]string{
		"currentPassword": "password",
		"newPassword":     "swordfish-9",
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var data models.UpdateProfileResponse
	s.Require().NoError(json.Unmarshal(resp.Data, &data))
	s.False(data.NeedRelogin, "password-only change must not require relogin")
	s.Equal("admin", data.User.Username)

	s.login("admin", "swordfish-9")
	failed, _ := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "password",
	})
	s.Equal(http.StatusUnauthorized, failed.Code)
}

func (s *GatewaySuite) TestUpdateProfileUsernameChange() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodPut, "/auth/update-profile", token, map[string]string{
		"username":        "operator",
		"currentPassword": "password",
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var data models.UpdateProfileResponse
	s.Require().NoError(json.Unmarshal(resp.Data, &data))
	s.True(data.NeedRelogin, "username change makes previously issued tokens stale")
	s.Equal("operator", data.User.Username)

	s.login("operator", "password")
	failed, _ := s.perform(http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "password",
	})
	s.Equal(http.StatusUnauthorized, failed.Code)
}

func (s *GatewaySuite) TestUpdateProfileShortPassword() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodPut, "/auth/update-profile", token, map[string]string{
		"currentPassword": "password",
		"newPassword":     "tiny",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.False(resp.Success)

	// Password unchanged
	s.login("admin", "password")
}

func (s *GatewaySuite) TestUpdateProfileUsernameCollision() {
	hash, err := auth.HashPassword("password-two")
	s.Require().NoError(err)

	// Swap in a store with a second live account to collide against
	store := &stubStore{accounts: []models.UserAccount{
		{ID: "1", Username: "admin", PasswordHash: mustHash(s, "password"), Role: "admin"},
		{ID: "2", Username: "backup-admin", PasswordHash: hash, Role: "admin"},
	}}
	client := linode.NewClient(s.provider.URL, "provider-token", 5*time.Second)
	s.router = gin.New()
	SetupRoutes(s.router, NewHandler(store, client))

	token := s.login("admin", "password")
	recorder, resp := s.perform(http.MethodPut, "/auth/update-profile", token, map[string]string{
		"username":        "backup-admin",
		"currentPassword": "password",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.False(resp.Success)

	// Account untouched
	account, found := store.FindByID("1")
	s.Require().True(found)
	s.Equal("admin", account.Username)
}

// --- Provider surface tests ---

func (s *GatewaySuite) TestListServers() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/servers", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.True(resp.Success)

	var instances []models.Instance
	s.Require().NoError(json.Unmarshal(resp.Data, &instances))
	s.Len(instances, 2)
	s.Equal("web-1", instances[0].Label)
}

func (s *GatewaySuite) TestGetServerDetail() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/servers/100", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var instance models.Instance
	s.Require().NoError(json.Unmarshal(resp.Data, &instance))
	s.Equal(100, instance.ID)
}

func (s *GatewaySuite) TestGetServerInvalidID() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/servers/notanumber", token, nil)
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.False(resp.Success)
}

func (s *GatewaySuite) TestCreateServer() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodPost, "/servers", token, map[string]interface{}{
		"label":  "new-box",
		"region": "us-east",
		"type":   "g6-nanode-1",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	var instance models.Instance
	s.Require().NoError(json.Unmarshal(resp.Data, &instance))
	s.Equal("new-box", instance.Label)
	s.Equal("provisioning", instance.Status)
}

func (s *GatewaySuite) TestCreateServerValidation() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodPost, "/servers", token, map[string]interface{}{
		"label": "missing-region-and-type",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
	s.False(resp.Success)
}

func (s *GatewaySuite) TestLifecycleActions() {
	token := s.login("admin", "password")

	for _, action := range []string{"reboot", "boot", "shutdown"} {
		recorder, resp := s.perform(http.MethodPost, fmt.Sprintf("/servers/100/%s", action), token, nil)
		s.Equal(http.StatusOK, recorder.Code, "action %s", action)
		s.True(resp.Success, "action %s", action)
	}

	recorder, resp := s.perform(http.MethodDelete, "/servers/100", token, nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.True(resp.Success)
}

func (s *GatewaySuite) TestServerMetrics() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/servers/100/metrics", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var metrics models.MetricsSnapshot
	s.Require().NoError(json.Unmarshal(resp.Data, &metrics))
	s.Len(metrics.CPU.History, 24)
	s.Len(metrics.Network.History, 30)
}

func (s *GatewaySuite) TestServerNetwork() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/servers/100/network", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var info models.NetworkInfo
	s.Require().NoError(json.Unmarshal(resp.Data, &info))
	s.Len(info.DNSResolvers, 10)
	s.Len(info.History, 30)
}

func (s *GatewaySuite) TestCatalogListings() {
	token := s.login("admin", "password")

	recorder, resp := s.perform(http.MethodGet, "/servers/regions", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	var regions []models.Region
	s.Require().NoError(json.Unmarshal(resp.Data, &regions))
	s.Require().Len(regions, 3)
	s.Equal("us-east", regions[0].ID)
	s.Equal("ap-south", regions[1].ID)
	s.Equal("zz-lost", regions[2].ID, "unmapped countries sort last")

	recorder, resp = s.perform(http.MethodGet, "/servers/images", token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	var images []models.Image
	s.Require().NoError(json.Unmarshal(resp.Data, &images))
	s.Require().Len(images, 1)
	s.Equal("linode/ubuntu24.04", images[0].ID)

	for _, path := range []string{"/servers/types", "/servers/sshkeys", "/servers/stackscripts", "/servers/backups", "/servers/firewalls", "/servers/users"} {
		recorder, resp = s.perform(http.MethodGet, path, token, nil)
		s.Equal(http.StatusOK, recorder.Code, "path %s", path)
		s.True(resp.Success, "path %s", path)
	}
}

func (s *GatewaySuite) TestUpstreamFailurePassesMessageThrough() {
	token := s.login("admin", "password")
	s.providerDown = true

	recorder, resp := s.perform(http.MethodGet, "/servers", token, nil)
	s.Equal(http.StatusInternalServerError, recorder.Code)
	s.False(resp.Success)
	s.Equal("provider unavailable", resp.Error, "upstream message must reach the operator")
}

func (s *GatewaySuite) TestHealth() {
	recorder, _ := s.perform(http.MethodGet, "/health", "", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var health models.HealthResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &health))
	s.Equal("ok", health.Status)
	s.GreaterOrEqual(health.Uptime, 0.0)
	s.NotEmpty(health.Timestamp)
}

func (s *GatewaySuite) TestUnknownRoute() {
	recorder, resp := s.perform(http.MethodGet, "/nonexistent", "", nil)
	s.Equal(http.StatusNotFound, recorder.Code)
	s.False(resp.Success)
}

func (s *GatewaySuite) TestRequestIDHeader() {
	recorder, _ := s.perform(http.MethodGet, "/health", "", nil)
	s.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

// --- Test doubles ---

func mustHash(s *GatewaySuite, password string) string {
	hash, err := auth.HashPassword(password)
	s.Require().NoError(err)
	return hash
}

// stubStore is a fixed-content UserStore for collision scenarios.
type stubStore struct {
	accounts []models.UserAccount
}

func (st *stubStore) FindByUsername(username string) (*models.UserAccount, bool) {
	for i := range st.accounts {
		if st.accounts[i].Username == username {
			account := st.accounts[i]
			return &account, true
		}
	}
	return nil, false
}

func (st *stubStore) FindByID(id string) (*models.UserAccount, bool) {
	for i := range st.accounts {
		if st.accounts[i].ID == id {
			account := st.accounts[i]
			return &account, true
		}
	}
	return nil, false
}

func (st *stubStore) Update(account *models.UserAccount) error {
	for i := range st.accounts {
		if st.accounts[i].ID == account.ID {
			st.accounts[i] = *account
			return nil
		}
	}
	return fmt.Errorf("user %q not found", account.ID)
}
