package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/flowgate/flowgate/internal/user"
)

// fakeRepository is an in-memory Repository for service and handler tests.
type fakeRepository struct {
	users     []user.User
	hashes    map[string]string
	listErr   error
	getErr    error
	updateErr error
}

func newFakeRepository(users ...user.User) *fakeRepository {
	return &fakeRepository{users: users, hashes: map[string]string{}}
}

func (f *fakeRepository) List(_ context.Context) ([]user.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeRepository) GetRef(ctx context.Context, email string) (*user.Ref, error) {
	u, err := f.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &user.Ref{ID: u.ID, Email: u.Email}, nil
}

func (f *fakeRepository) UpdatePassword(_ context.Context, email, passwordHash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.hashes[email] = passwordHash
	return nil
}

func testUser(id, email string) user.User {
	now := time.Now().UTC()
	return user.User{
		ID:        id,
		Email:     email,
		Role:      "global:member",
		RoleSlug:  "member",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

const testBcryptCost = bcrypt.MinCost

func TestChangePassword_HashVerifiesAgainstPlaintext(t *testing.T) {
	repo := newFakeRepository(testUser("u1", "a@b.com"))
	svc := user.NewService(repo, testBcryptCost)

	ref, err := svc.ChangePassword(context.Background(), "a@b.com", "longenough123")

	require.NoError(t, err)
	assert.Equal(t, "u1", ref.ID)
	assert.Equal(t, "a@b.com", ref.Email)

	stored := repo.hashes["a@b.com"]
	require.NotEmpty(t, stored)
	assert.NotEqual(t, "longenough123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("longenough123")))
}

func TestChangePassword_SaltsEachCall(t *testing.T) {
	repo := newFakeRepository(testUser("u1", "a@b.com"))
	svc := user.NewService(repo, testBcryptCost)

	_, err := svc.ChangePassword(context.Background(), "a@b.com", "samepassword")
	require.NoError(t, err)
	first := repo.hashes["a@b.com"]

	_, err = svc.ChangePassword(context.Background(), "a@b.com", "samepassword")
	require.NoError(t, err)
	second := repo.hashes["a@b.com"]

	assert.NotEqual(t, first, second)
}

func TestChangePassword_UnknownEmail(t *testing.T) {
	repo := newFakeRepository(testUser("u1", "a@b.com"))
	svc := user.NewService(repo, testBcryptCost)

	ref, err := svc.ChangePassword(context.Background(), "nobody@b.com", "longenough123")

	assert.Nil(t, ref)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, repo.hashes)
}

func TestChangePassword_UpdateFailure(t *testing.T) {
	repo := newFakeRepository(testUser("u1", "a@b.com"))
	repo.updateErr = errors.New("connection reset")
	svc := user.NewService(repo, testBcryptCost)

	ref, err := svc.ChangePassword(context.Background(), "a@b.com", "longenough123")

	assert.Nil(t, ref)
	assert.Error(t, err)
}

func TestList_PassesThrough(t *testing.T) {
	repo := newFakeRepository(testUser("u1", "a@b.com"), testUser("u2", "c@d.com"))
	svc := user.NewService(repo, testBcryptCost)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGetByEmail_PassesThrough(t *testing.T) {
	repo := newFakeRepository(testUser("u1", "a@b.com"))
	svc := user.NewService(repo, testBcryptCost)

	u, err := svc.GetByEmail(context.Background(), "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = svc.GetByEmail(context.Background(), "A@B.COM")
	assert.ErrorIs(t, err, user.ErrUserNotFound, "email matching is case-sensitive")
}
