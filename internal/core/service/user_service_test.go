package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
	"github.com/nine-chairs/myflix-api/internal/core/ports"
)

func seedUser(repo *stubUserRepo, username string, favorites ...string) {
	now := time.Now().UTC()
	repo.users[username] = &domain.User{
		Username:       username,
		PasswordHash:   "$2a$10$fakefakefakefakefakefake",
		Email:          username + "@example.com",
		FavoriteMovies: append([]string{}, favorites...),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newUserSvc(repo *stubUserRepo) *UserService {
	return NewUserService(repo, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Favorites
// ---------------------------------------------------------------------------

func TestUserService_AddThenListFavorites(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	svc := newUserSvc(repo)

	updated, err := svc.AddFavorite(context.Background(), "alice", "alice", "movie42")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !reflect.DeepEqual(updated.FavoriteMovies, []string{"movie42"}) {
		t.Fatalf("unexpected favorites: %v", updated.FavoriteMovies)
	}

	favorites, err := svc.ListFavorites(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(favorites, []string{"movie42"}) {
		t.Fatalf("unexpected favorites: %v", favorites)
	}
}

func TestUserService_AddFavorite_DuplicatesAllowed(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice", "movie42")
	svc := newUserSvc(repo)

	updated, err := svc.AddFavorite(context.Background(), "alice", "alice", "movie42")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !reflect.DeepEqual(updated.FavoriteMovies, []string{"movie42", "movie42"}) {
		t.Fatalf("expected duplicate entry, got %v", updated.FavoriteMovies)
	}
}

func TestUserService_RemoveFavorite_RemovesAllOccurrences(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice", "movie42", "movie7", "movie42")
	svc := newUserSvc(repo)

	updated, err := svc.RemoveFavorite(context.Background(), "alice", "alice", "movie42")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !reflect.DeepEqual(updated.FavoriteMovies, []string{"movie7"}) {
		t.Fatalf("unexpected favorites: %v", updated.FavoriteMovies)
	}
}

func TestUserService_RemoveFavorite_AbsentIsNoop(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice", "movie7")
	svc := newUserSvc(repo)

	updated, err := svc.RemoveFavorite(context.Background(), "alice", "alice", "movie42")
	if err != nil {
		t.Fatalf("remove of absent id must be a no-op, got %v", err)
	}
	if !reflect.DeepEqual(updated.FavoriteMovies, []string{"movie7"}) {
		t.Fatalf("sequence changed: %v", updated.FavoriteMovies)
	}
}

func TestUserService_Favorites_OwnershipEnforced(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	seedUser(repo, "bob")
	svc := newUserSvc(repo)

	if _, err := svc.AddFavorite(context.Background(), "alice", "bob", "movie42"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.RemoveFavorite(context.Background(), "alice", "bob", "movie42"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Target list must be untouched.
	favorites, err := svc.ListFavorites(context.Background(), "bob")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("bob's favorites were mutated: %v", favorites)
	}
}

func TestUserService_ListFavorites_UnknownUser(t *testing.T) {
	svc := newUserSvc(newStubUserRepo())

	if _, err := svc.ListFavorites(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Profile update / delete
// ---------------------------------------------------------------------------

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	svc := newUserSvc(repo)

	password := "NewSecret1"
	updated, err := svc.Update(context.Background(), "alice", "alice", ports.UpdateUserInput{Password: &password})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == password {
		t.Fatalf("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)) != nil {
		t.Fatalf("stored hash does not match new password")
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	svc := newUserSvc(repo)

	email := "new@example.com"
	updated, err := svc.Update(context.Background(), "alice", "alice", ports.UpdateUserInput{Email: &email})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != email {
		t.Fatalf("email not updated: %s", updated.Email)
	}
	if updated.Username != "alice" {
		t.Fatalf("username changed unexpectedly: %s", updated.Username)
	}
}

func TestUserService_Update_CrossUserForbidden(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	seedUser(repo, "bob")
	svc := newUserSvc(repo)

	email := "hacked@example.com"
	if _, err := svc.Update(context.Background(), "alice", "bob", ports.UpdateUserInput{Email: &email}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	svc := newUserSvc(repo)

	if err := svc.Delete(context.Background(), "alice", "alice"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "alice", "alice"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_Delete_CrossUserForbidden(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "alice")
	seedUser(repo, "bob")
	svc := newUserSvc(repo)

	if err := svc.Delete(context.Background(), "alice", "bob"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.users["bob"]; !ok {
		t.Fatalf("bob was deleted")
	}
}

// ---------------------------------------------------------------------------
// End-to-end account lifecycle against shared stub store
// ---------------------------------------------------------------------------

func TestAccountLifecycle(t *testing.T) {
	repo := newStubUserRepo()
	auth := newAuthSvc(repo)
	users := newUserSvc(repo)
	ctx := context.Background()

	if _, err := auth.Register(ctx, ports.RegisterInput{Username: "alice", Password: "Secret123", Email: "alice@example.com"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, _, err := auth.Login(ctx, "alice", "Secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	principal, err := auth.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	favorites, err := users.ListFavorites(ctx, principal.Username)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected empty favorites, got %v", favorites)
	}

	if _, err := users.AddFavorite(ctx, principal.Username, "alice", "movie42"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	favorites, _ = users.ListFavorites(ctx, "alice")
	if !reflect.DeepEqual(favorites, []string{"movie42"}) {
		t.Fatalf("expected [movie42], got %v", favorites)
	}

	if _, err := users.RemoveFavorite(ctx, principal.Username, "alice", "movie42"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	favorites, _ = users.ListFavorites(ctx, "alice")
	if len(favorites) != 0 {
		t.Fatalf("expected empty favorites, got %v", favorites)
	}
}
