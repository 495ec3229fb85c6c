package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/expense-tracker-api/internal/core/domain"
	"github.com/fintrack/expense-tracker-api/internal/core/ports"
	"github.com/fintrack/expense-tracker-api/internal/core/validation"
)

type stubAccountRepo struct {
	users map[uuid.UUID]*domain.User
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{users: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAccountRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAccountRepo) UsernameExists(_ context.Context, username string, exclude uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if u.Username == username && u.ID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAccountRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.Username == user.Username && u.ID != user.ID {
			return domain.ErrUsernameTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func newAccountService(repo *stubAccountRepo) *AccountService {
	tokens := NewTokenService("secret", time.Hour, 24*time.Hour, newMemoryBlacklist())
	return NewAccountService(repo, tokens, zerolog.Nop())
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Doe",
		Password:  "tr0ub4dor&3",
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	res, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if res.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", res.Email)
	}

	stored, err := repo.FindByID(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "tr0ub4dor&3" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("tr0ub4dor&3")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !stored.IsActive {
		t.Fatalf("new accounts must be active")
	}
}

func TestAccountService_Signup_NormalizesEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	in := validSignup()
	in.Email = "  ALICE@Example.COM "
	res, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if res.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", res.Email)
	}
}

func TestAccountService_Signup_AccumulatesFieldErrors(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "not-an-email",
		Username: "bad name!",
		Password: "short",
	})
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"email", "username", "first_name", "last_name", "password"} {
		if !fe.Has(field) {
			t.Fatalf("expected error on %q, got %v", field, fe)
		}
	}
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	in := validSignup()
	in.Username = "alice2"
	_, err := svc.Signup(context.Background(), in)
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if got := fe["email"]; len(got) != 1 || got[0] != "A user with this email already exists." {
		t.Fatalf("unexpected email errors: %v", got)
	}
	if fe.Has("username") {
		t.Fatalf("username should not be flagged: %v", fe)
	}
}

func TestAccountService_Signup_DuplicateUsername(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	in := validSignup()
	in.Email = "other@example.com"
	_, err := svc.Signup(context.Background(), in)
	var fe validation.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if got := fe["username"]; len(got) != 1 || got[0] != "A user with this username already exists." {
		t.Fatalf("unexpected username errors: %v", got)
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "alice@example.com", "tr0ub4dor&3")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, res.ID)
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("expected a token pair, got %+v", res.Tokens)
	}
}

func TestAccountService_Login_CaseInsensitiveEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)
	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "ALICE@EXAMPLE.COM", "tr0ub4dor&3"); err != nil {
		t.Fatalf("login with upper-cased email failed: %v", err)
	}
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)
	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "alice@example.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "wrong")

	if wrongPassword != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestAccountService_Login_DisabledAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	repo.users[created.ID].IsActive = false

	if _, err := svc.Login(context.Background(), "alice@example.com", "tr0ub4dor&3"); err != domain.ErrAccountDisabled {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAccountService_Logout_RevokesToken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	res, err := svc.Login(context.Background(), "alice@example.com", "tr0ub4dor&3")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), created.ID, res.Tokens.RefreshToken); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if err := svc.Logout(context.Background(), created.ID, res.Tokens.RefreshToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("second logout with same token: expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAccountService_Logout_ForeignTokenRejectedWithoutRevoking(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	owner, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	other := validSignup()
	other.Email = "bob@example.com"
	other.Username = "bob"
	attacker, err := svc.Signup(context.Background(), other)
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "alice@example.com", "tr0ub4dor&3")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), attacker.ID, res.Tokens.RefreshToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	// The rejected attempt must not have blacklisted the owner's token.
	if err := svc.Logout(context.Background(), owner.ID, res.Tokens.RefreshToken); err != nil {
		t.Fatalf("owner's token unusable after foreign logout attempt: %v", err)
	}
}

func TestAccountService_Refresh_RotatesAndRevokesOld(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	res, err := svc.Login(context.Background(), "alice@example.com", "tr0ub4dor&3")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if pair.RefreshToken == res.Tokens.RefreshToken {
		t.Fatalf("refresh must rotate the token")
	}

	if _, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("old token after rotation: expected ErrInvalidToken, got %v", err)
	}
	// New token still works and belongs to the same user.
	if err := svc.Logout(context.Background(), created.ID, pair.RefreshToken); err != nil {
		t.Fatalf("rotated token unusable: %v", err)
	}
}

func TestAccountService_GetProfile_OwnerOnly(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), created.ID, created.ID)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if profile.Username != "alice" || profile.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.GetProfile(context.Background(), uuid.New(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("foreign profile read: expected ErrUserNotFound, got %v", err)
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	in := ports.UpdateProfileInput{FirstName: "Alicia", LastName: "Doe", Username: "alicia"}
	if err := svc.UpdateProfile(context.Background(), created.ID, created.ID, in); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), created.ID, created.ID)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if profile.FirstName != "Alicia" || profile.Username != "alicia" {
		t.Fatalf("update not applied: %+v", profile)
	}
	if profile.Email != "alice@example.com" {
		t.Fatalf("email must not change on profile update: %s", profile.Email)
	}
}

func TestAccountService_UpdateProfile_ForeignTarget(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	in := ports.UpdateProfileInput{FirstName: "X", LastName: "Y", Username: "z"}
	if err := svc.UpdateProfile(context.Background(), uuid.New(), created.ID, in); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAccountService_UpdateProfile_UsernameTaken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	first, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	other := validSignup()
	other.Email = "bob@example.com"
	other.Username = "bob"
	if _, err := svc.Signup(context.Background(), other); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	in := ports.UpdateProfileInput{FirstName: "Alice", LastName: "Doe", Username: "bob"}
	err = svc.UpdateProfile(context.Background(), first.ID, first.ID, in)
	var fe validation.FieldErrors
	if !errors.As(err, &fe) || !fe.Has("username") {
		t.Fatalf("expected username FieldErrors, got %v", err)
	}
}

func TestAccountService_UpdateProfile_KeepingOwnUsername(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Re-submitting the current username must not trip the uniqueness check.
	in := ports.UpdateProfileInput{FirstName: "Alice", LastName: "Doe", Username: "alice"}
	if err := svc.UpdateProfile(context.Background(), created.ID, created.ID, in); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
}
