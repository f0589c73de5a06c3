package lifecycle

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	tracingLog "github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/enum"
	er "github.com/sendbun/SimpleInbox/internal/errors"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/models"
	"github.com/sendbun/SimpleInbox/internal/tracing"
	"github.com/sendbun/SimpleInbox/internal/utils"
)

const (
	regularAccountMaxAge = 24 * time.Hour
	fiveMinuteTTL        = 5 * time.Minute
)

// lifecycleService owns account minting and expiry for both scopes. All
// mutations of a scope run under that scope's mutex so concurrent bootstraps
// cannot mint two accounts for the same scope.
type lifecycleService struct {
	provider interfaces.ProviderClient
	repo     interfaces.MailboxStateRepository
	identity interfaces.IdentityGenerator
	log      logger.Logger

	nowFunc func() time.Time
	rnd     *rand.Rand

	locks map[enum.AccountScope]*sync.Mutex
}

func NewLifecycleService(provider interfaces.ProviderClient, repo interfaces.MailboxStateRepository, identity interfaces.IdentityGenerator, log logger.Logger) interfaces.LifecycleService {
	return &lifecycleService{
		provider: provider,
		repo:     repo,
		identity: identity,
		log:      log,
		nowFunc:  time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		locks: map[enum.AccountScope]*sync.Mutex{
			enum.ScopeRegular:    {},
			enum.ScopeFiveMinute: {},
		},
	}
}

func (s *lifecycleService) Bootstrap(ctx context.Context, scope enum.AccountScope, forceNew bool) (*models.EmailAccount, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LifecycleService.Bootstrap")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagScope(span, scope.String())

	if forceNew {
		return s.Rotate(ctx, scope)
	}

	s.locks[scope].Lock()
	defer s.locks[scope].Unlock()

	now := s.nowFunc()

	state, err := s.repo.Load(ctx, scope)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	if state != nil && state.CurrentAccount != nil && s.accountStillValid(state.CurrentAccount, scope, now) {
		span.LogFields(tracingLog.String("result", "reused"))
		return state.CurrentAccount, nil
	}

	account, domains := s.mintAccount(ctx, span, scope, now)
	s.persist(ctx, span, scope, domains, account, now)
	return account, nil
}

func (s *lifecycleService) Rotate(ctx context.Context, scope enum.AccountScope) (*models.EmailAccount, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LifecycleService.Rotate")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagScope(span, scope.String())

	s.locks[scope].Lock()
	defer s.locks[scope].Unlock()

	now := s.nowFunc()

	state, err := s.repo.Load(ctx, scope)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	var previous *models.EmailAccount
	if state != nil {
		previous = state.CurrentAccount
	}

	account, domains := s.mintAccount(ctx, span, scope, now)
	s.persist(ctx, span, scope, domains, account, now)

	// Old mailbox is deleted only after its replacement is safely stored, so
	// a failure mid-rotation never leaves the scope without an account.
	if previous != nil && !previous.Degraded {
		if err := s.provider.DeleteAccount(ctx, previous.ID); err != nil {
			tracing.TraceErr(span, err)
			s.log.Warnf("failed to delete rotated account %s: %v", previous.ID, err)
		}
	}

	return account, nil
}

func (s *lifecycleService) Cleanup(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LifecycleService.Cleanup")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	for _, scope := range []enum.AccountScope{enum.ScopeRegular, enum.ScopeFiveMinute} {
		if err := s.cleanupScope(ctx, scope); err != nil {
			tracing.TraceErr(span, err)
			return err
		}
	}
	return nil
}

func (s *lifecycleService) cleanupScope(ctx context.Context, scope enum.AccountScope) error {
	s.locks[scope].Lock()
	defer s.locks[scope].Unlock()

	now := s.nowFunc()

	state, err := s.repo.Load(ctx, scope)
	if err != nil {
		return err
	}
	if state == nil || state.CurrentAccount == nil {
		return nil
	}
	if s.accountStillValid(state.CurrentAccount, scope, now) {
		return nil
	}

	expired := state.CurrentAccount
	s.log.Infof("expiring account %s in scope %s", expired.Email, scope)

	if !expired.Degraded {
		if err := s.provider.DeleteAccount(ctx, expired.ID); err != nil {
			s.log.Warnf("failed to delete expired account %s: %v", expired.ID, err)
		}
	}

	state.CurrentAccount = nil
	state.LastUpdated = now
	return s.repo.Save(ctx, scope, state)
}

func (s *lifecycleService) CurrentAccount(ctx context.Context, scope enum.AccountScope) (*models.EmailAccount, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "LifecycleService.CurrentAccount")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagScope(span, scope.String())

	state, err := s.repo.Load(ctx, scope)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if state == nil {
		return nil, nil
	}
	return state.CurrentAccount, nil
}

// accountStillValid applies the scope's liveness rule: five-minute accounts
// live until their expiry timestamp, regular accounts until their age reaches
// the 24h limit.
func (s *lifecycleService) accountStillValid(account *models.EmailAccount, scope enum.AccountScope, now time.Time) bool {
	if scope == enum.ScopeFiveMinute {
		return !account.IsExpired(now)
	}
	return now.Sub(account.CreatedAt) < regularAccountMaxAge
}

// mintAccount always succeeds. When the provider cannot create the mailbox
// it synthesizes a degraded local account so the UI keeps working.
func (s *lifecycleService) mintAccount(ctx context.Context, span opentracing.Span, scope enum.AccountScope, now time.Time) (*models.EmailAccount, []models.Domain) {
	domains := s.resolveDomains(ctx, span)

	domain := domains[s.rnd.Intn(len(domains))]
	localPart := s.identity.LocalPart(enum.IdentityHumanLike)
	email := localPart + "@" + domain.Name
	password := s.identity.Password()

	resp, err := s.provider.CreateAccount(ctx, email, password)
	if err != nil || resp == nil || !resp.Status {
		if err != nil {
			tracing.TraceErr(span, err)
			s.log.Warnf("provider account creation failed for %s: %v", email, err)
		} else {
			s.log.Warnf("provider rejected account %s: %s", email, resp.Message)
		}
		return s.degradedAccount(email, password, scope, now), domains
	}

	account := &models.EmailAccount{
		ID:         resp.ID.String(),
		Email:      utils.FirstNonEmpty(resp.Email, email),
		Password:   password,
		CreatedAt:  now,
		DomainID:   resp.DomainID.String(),
		FiveMinute: scope == enum.ScopeFiveMinute,
	}
	if scope == enum.ScopeFiveMinute {
		account.ExpiresAt = utils.TimePtr(now.Add(fiveMinuteTTL))
	}
	span.LogFields(tracingLog.String("result.email", account.Email))
	return account, domains
}

func (s *lifecycleService) degradedAccount(email, password string, scope enum.AccountScope, now time.Time) *models.EmailAccount {
	account := &models.EmailAccount{
		ID:         fmt.Sprintf("%d", now.UnixMilli()),
		Email:      email,
		Password:   password,
		CreatedAt:  now,
		DomainID:   models.DegradedDomainID,
		FiveMinute: scope == enum.ScopeFiveMinute,
		Degraded:   true,
	}
	if scope == enum.ScopeFiveMinute {
		account.ExpiresAt = utils.TimePtr(now.Add(fiveMinuteTTL))
	}
	return account
}

func (s *lifecycleService) resolveDomains(ctx context.Context, span opentracing.Span) []models.Domain {
	domains, err := s.provider.ListDomains(ctx)
	if err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "domain listing failed, using fallback"))
		s.log.Warnf("domain listing failed, using fallback domains: %v", err)
		return models.FallbackDomains()
	}
	if len(domains) == 0 {
		tracing.TraceErr(span, er.ErrNoDomainsAvailable)
		return models.FallbackDomains()
	}
	return domains
}

func (s *lifecycleService) persist(ctx context.Context, span opentracing.Span, scope enum.AccountScope, domains []models.Domain, account *models.EmailAccount, now time.Time) {
	state := &models.SiteEmailData{
		Domains:        domains,
		CurrentAccount: account,
		LastUpdated:    now,
	}
	if err := s.repo.Save(ctx, scope, state); err != nil {
		// The minted account is still usable for this session even if the
		// write failed; the next bootstrap will mint again.
		tracing.TraceErr(span, err)
		s.log.Errorf("failed to persist account %s: %v", account.Email, err)
	}
}
