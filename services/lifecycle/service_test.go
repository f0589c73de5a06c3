package lifecycle

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/internal/enum"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/models"
	"github.com/sendbun/SimpleInbox/services/identity"
)

type fakeProvider struct {
	mu sync.Mutex

	domains       []models.Domain
	domainsErr    error
	createErr     error
	createStatus  bool
	createdEmails []string
	deletedIDs    []string
	nextID        int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		domains:      []models.Domain{{ID: 1, Name: "sendbun.com"}},
		createStatus: true,
		nextID:       100,
	}
}

func (f *fakeProvider) ListDomains(ctx context.Context) ([]models.Domain, error) {
	if f.domainsErr != nil {
		return nil, f.domainsErr
	}
	return f.domains, nil
}

func (f *fakeProvider) CreateAccount(ctx context.Context, email, password string) (*dto.CreateAccountResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	f.createdEmails = append(f.createdEmails, email)
	return &dto.CreateAccountResponse{
		Status:   f.createStatus,
		ID:       dto.StringID(strconv.Itoa(f.nextID)),
		Email:    email,
		DomainID: "1",
	}, nil
}

func (f *fakeProvider) DeleteAccount(ctx context.Context, accountID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedIDs = append(f.deletedIDs, accountID)
	return nil
}

func (f *fakeProvider) ListMessages(ctx context.Context, accountID string, page int, folder string) (*dto.MessagesResponse, error) {
	return &dto.MessagesResponse{Status: true}, nil
}

func (f *fakeProvider) GetMessage(ctx context.Context, accountID, messageID string) (json.RawMessage, error) {
	return nil, nil
}

func (f *fakeProvider) DeleteMessage(ctx context.Context, accountID, messageID string) error {
	return nil
}

type memoryRepo struct {
	mu    sync.Mutex
	store map[enum.AccountScope]*models.SiteEmailData
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{store: map[enum.AccountScope]*models.SiteEmailData{}}
}

func (m *memoryRepo) Save(ctx context.Context, scope enum.AccountScope, data *models.SiteEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *data
	m.store[scope] = &clone
	return nil
}

func (m *memoryRepo) Load(ctx context.Context, scope enum.AccountScope) (*models.SiteEmailData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.store[scope]; ok {
		clone := *data
		return &clone, nil
	}
	return nil, nil
}

func (m *memoryRepo) Clear(ctx context.Context, scope enum.AccountScope) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, scope)
	return nil
}

func newTestLifecycle(provider *fakeProvider, repo *memoryRepo, now time.Time) *lifecycleService {
	log := logger.NewAppLogger(&logger.Config{DevMode: true})
	log.InitLogger()

	svc := NewLifecycleService(provider, repo, identity.NewGeneratorWithSource(rand.NewSource(1)), log).(*lifecycleService)
	svc.nowFunc = func() time.Time { return now }
	svc.rnd = rand.New(rand.NewSource(1))
	return svc
}

func TestBootstrap_MintsAndReuses(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	first, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.False(t, first.Degraded)
	require.Nil(t, first.ExpiresAt)
	require.Contains(t, first.Email, "@sendbun.com")

	second, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.Equal(t, first.Email, second.Email)
	require.Len(t, provider.createdEmails, 1)
}

func TestBootstrap_RegularExpiresAfter24h(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	first, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return now.Add(23 * time.Hour) }
	same, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.Equal(t, first.Email, same.Email)

	svc.nowFunc = func() time.Time { return now.Add(25 * time.Hour) }
	replaced, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.NotEqual(t, first.Email, replaced.Email)
}

func TestBootstrap_FiveMinuteTTLBoundary(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	first, err := svc.Bootstrap(context.Background(), enum.ScopeFiveMinute, false)
	require.NoError(t, err)
	require.True(t, first.FiveMinute)
	require.NotNil(t, first.ExpiresAt)
	require.Equal(t, now.Add(5*time.Minute), *first.ExpiresAt)

	svc.nowFunc = func() time.Time { return now.Add(299 * time.Second) }
	same, err := svc.Bootstrap(context.Background(), enum.ScopeFiveMinute, false)
	require.NoError(t, err)
	require.Equal(t, first.Email, same.Email)

	svc.nowFunc = func() time.Time { return now.Add(301 * time.Second) }
	replaced, err := svc.Bootstrap(context.Background(), enum.ScopeFiveMinute, false)
	require.NoError(t, err)
	require.NotEqual(t, first.Email, replaced.Email)
}

func TestBootstrap_DegradedWhenProviderDown(t *testing.T) {
	provider := newFakeProvider()
	provider.domainsErr = errors.New("network down")
	provider.createErr = errors.New("network down")
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	account, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.True(t, account.Degraded)
	require.Equal(t, models.DegradedDomainID, account.DomainID)

	// fallback domains keep the address plausible
	require.Regexp(t, `@(sendbun\.com|mailbun\.cc|tempmail\.org)$`, account.Email)
}

func TestBootstrap_DegradedWhenProviderRejects(t *testing.T) {
	provider := newFakeProvider()
	provider.createStatus = false
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	account, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.True(t, account.Degraded)
}

func TestRotate_DeletesPreviousAccount(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	first, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)

	replaced, err := svc.Rotate(context.Background(), enum.ScopeRegular)
	require.NoError(t, err)
	require.NotEqual(t, first.Email, replaced.Email)
	require.Equal(t, []string{first.ID}, provider.deletedIDs)

	current, err := svc.CurrentAccount(context.Background(), enum.ScopeRegular)
	require.NoError(t, err)
	require.Equal(t, replaced.Email, current.Email)
}

func TestRotate_SkipsDeleteForDegraded(t *testing.T) {
	provider := newFakeProvider()
	provider.createErr = errors.New("down")
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	_, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)

	provider.createErr = nil
	_, err = svc.Rotate(context.Background(), enum.ScopeRegular)
	require.NoError(t, err)
	require.Empty(t, provider.deletedIDs)
}

func TestCleanup_RemovesExpiredFiveMinuteAccount(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	account, err := svc.Bootstrap(context.Background(), enum.ScopeFiveMinute, false)
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return now.Add(10 * time.Minute) }
	require.NoError(t, svc.Cleanup(context.Background()))

	require.Equal(t, []string{account.ID}, provider.deletedIDs)
	current, err := svc.CurrentAccount(context.Background(), enum.ScopeFiveMinute)
	require.NoError(t, err)
	require.Nil(t, current)
}

func TestCleanup_LeavesLiveAccountsAlone(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	account, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)

	svc.nowFunc = func() time.Time { return now.Add(time.Hour) }
	require.NoError(t, svc.Cleanup(context.Background()))

	require.Empty(t, provider.deletedIDs)
	current, err := svc.CurrentAccount(context.Background(), enum.ScopeRegular)
	require.NoError(t, err)
	require.Equal(t, account.Email, current.Email)
}

type fixedIdentity struct{}

func (fixedIdentity) LocalPart(style enum.IdentityStyle) string { return "john42" }
func (fixedIdentity) Password() string                          { return "Abcdef12!xyz" }

func TestBootstrap_AddressComposition(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)
	svc.identity = fixedIdentity{}

	account, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	require.Equal(t, "john42@sendbun.com", account.Email)
}

func TestScopesAreIndependent(t *testing.T) {
	provider := newFakeProvider()
	repo := newMemoryRepo()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycle(provider, repo, now)

	regular, err := svc.Bootstrap(context.Background(), enum.ScopeRegular, false)
	require.NoError(t, err)
	fiveMin, err := svc.Bootstrap(context.Background(), enum.ScopeFiveMinute, false)
	require.NoError(t, err)

	require.NotEqual(t, regular.Email, fiveMin.Email)
	require.False(t, regular.FiveMinute)
	require.True(t, fiveMin.FiveMinute)
}
