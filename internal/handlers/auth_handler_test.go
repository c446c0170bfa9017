package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/arogyahub/docbook/internal/audit"
	"github.com/arogyahub/docbook/internal/config"
	account "github.com/arogyahub/docbook/internal/domain/account"
	"github.com/arogyahub/docbook/internal/models"
)

type fakeAccountRepo struct {
	accounts map[string]*models.Account
	profiles []*models.DoctorProfile
	creates  int
	nextID   uint
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*models.Account{}, nextID: 1}
}

func (f *fakeAccountRepo) GetAccountByUsername(_ context.Context, username string) (*models.Account, error) {
	acc, ok := f.accounts[username]
	if !ok {
		return nil, account.ErrNotFound
	}
	return acc, nil
}

func (f *fakeAccountRepo) CountByUsernameOrEmail(_ context.Context, username, email string) (int64, error) {
	var count int64
	for _, acc := range f.accounts {
		if acc.Username == username || acc.Email == email {
			count++
		}
	}
	return count, nil
}

func (f *fakeAccountRepo) CreateAccountWithProfile(_ context.Context, acc *models.Account, profile *models.DoctorProfile) error {
	f.creates++
	acc.ID = f.nextID
	f.nextID++
	f.accounts[acc.Username] = acc
	if profile != nil {
		profile.AccountID = acc.ID
		f.profiles = append(f.profiles, profile)
	}
	return nil
}

type fakeAuditRecorder struct {
	events []audit.Event
}

func (f *fakeAuditRecorder) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

func authTestRouter(repo account.Repository) (*gin.Engine, *fakeAuditRecorder) {
	gin.SetMode(gin.TestMode)

	rec := &fakeAuditRecorder{}
	h := NewAuthHandler(repo, &config.Config{JWTSecret: "s"}, nil, rec)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, rec
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registrationBody() gin.H {
	return gin.H{
		"username":         "pt_y",
		"email":            "pt_y@example.com",
		"password":         "longenough",
		"confirm_password": "longenough",
		"full_name":        "Pat Yadav",
		"role":             models.RolePatient,
	}
}

func seedAccount(f *fakeAccountRepo, username, email, password string) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	f.accounts[username] = &models.Account{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RolePatient,
	}
	f.nextID++
}

func TestRegisterCreatesPatientAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	r, rec := authTestRouter(repo)

	w := postJSON(r, "/api/auth/register", registrationBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	acc, ok := repo.accounts["pt_y"]
	if !ok {
		t.Fatal("account was not stored")
	}
	if acc.PasswordHash == "longenough" {
		t.Error("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("longenough")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if len(repo.profiles) != 0 {
		t.Errorf("patient registration created %d doctor profiles", len(repo.profiles))
	}

	if len(rec.events) != 1 || rec.events[0].Action != audit.ActionAccountRegistered {
		t.Errorf("audit events = %+v, want one %s", rec.events, audit.ActionAccountRegistered)
	}
}

func TestRegisterDuplicateChangesNoStoredState(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "pt_y", "pt_y@example.com", "longenough")
	r, rec := authTestRouter(repo)

	cases := []struct {
		name     string
		username string
		email    string
	}{
		{"same username", "pt_y", "other@example.com"},
		{"same email", "someone_else", "pt_y@example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := registrationBody()
			body["username"] = tc.username
			body["email"] = tc.email

			w := postJSON(r, "/api/auth/register", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if !bytes.Contains(w.Body.Bytes(), []byte("account_already_exists")) {
				t.Errorf("body = %s, want account_already_exists", w.Body.String())
			}
		})
	}

	if repo.creates != 0 {
		t.Errorf("duplicate attempts reached the store %d times", repo.creates)
	}
	if len(repo.accounts) != 1 {
		t.Errorf("stored accounts = %d, want 1", len(repo.accounts))
	}
	if len(rec.events) != 0 {
		t.Errorf("duplicate attempts emitted %d audit events", len(rec.events))
	}
}

func TestLoginFailureHidesWhichCredentialWasWrong(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "pt_y", "pt_y@example.com", "longenough")
	r, _ := authTestRouter(repo)

	unknownUser := postJSON(r, "/api/auth/login", gin.H{
		"username": "no_such_user",
		"password": "longenough",
	})
	wrongPassword := postJSON(r, "/api/auth/login", gin.H{
		"username": "pt_y",
		"password": "not-the-password",
	})

	if unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: status = %d", unknownUser.Code)
	}
	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d", wrongPassword.Code)
	}
	if unknownUser.Body.String() != wrongPassword.Body.String() {
		t.Errorf("responses differ:\nunknown user:  %s\nwrong password: %s",
			unknownUser.Body.String(), wrongPassword.Body.String())
	}
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "pt_y", "pt_y@example.com", "longenough")
	r, _ := authTestRouter(repo)

	w := postJSON(r, "/api/auth/login", gin.H{
		"username": "pt_y",
		"password": "longenough",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" {
		t.Error("response carries no token")
	}
}
