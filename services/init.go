package services

import (
	"github.com/sendbun/SimpleInbox/config"
	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/repository"
	"github.com/sendbun/SimpleInbox/services/identity"
	"github.com/sendbun/SimpleInbox/services/inbox"
	"github.com/sendbun/SimpleInbox/services/lifecycle"
	"github.com/sendbun/SimpleInbox/services/sendbun"
)

type Services struct {
	ProviderClient    interfaces.ProviderClient
	IdentityGenerator interfaces.IdentityGenerator
	LifecycleService  interfaces.LifecycleService
	InboxService      interfaces.InboxService
}

func InitServices(cfg *config.Config, repositories *repository.Repositories, log logger.Logger) *Services {
	services := &Services{}

	services.ProviderClient = sendbun.NewSendbunService(cfg.ProviderConfig, log)
	services.IdentityGenerator = identity.NewGenerator()
	services.LifecycleService = lifecycle.NewLifecycleService(services.ProviderClient, repositories.MailboxStateRepository, services.IdentityGenerator, log)
	services.InboxService = inbox.NewInboxService(services.ProviderClient, log)

	return services
}
