package cmd

import (
	"exchange/internal/adapters/out/postgres"
	"exchange/internal/adapters/out/postgres/profilerepo"
	"exchange/internal/core/application/usecases/commands"
	"exchange/internal/core/application/usecases/queries"
	"exchange/internal/core/domain/services"
	"exchange/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB             *gorm.DB
	uowFactory         postgres.GormUnitOfWorkFactory
	identity           *profilerepo.GormIdentityProvider
	reactivationPolicy commands.ReactivationPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	policy := commands.ReactivationPolicyOwnerOnly
	if config.ReactivationPolicy == "owner_or_admin" {
		policy = commands.ReactivationPolicyOwnerOrAdmin
	}

	return CompositionRoot{
		gormDB:             gormDB,
		uowFactory:         *postgres.NewGormUnitOfWorkFactory(gormDB),
		identity:           profilerepo.NewGormIdentityProvider(gormDB),
		reactivationPolicy: policy,
	}
}

func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identity
}

func (c *CompositionRoot) CreateCreateBatchCommandHandler() commands.CreateBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestExchangeCommandHandler() commands.RequestExchangeCommandHandler {
	var f commands.ExchangeUoWFactory = FuncExchangeUoWFactory(func() commands.ExchangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestExchangeCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptExchangeCommandHandler() commands.AcceptExchangeCommandHandler {
	var f commands.ExchangeUoWFactory = FuncExchangeUoWFactory(func() commands.ExchangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptExchangeCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectExchangeCommandHandler() commands.RejectExchangeCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectExchangeCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelExchangeCommandHandler() commands.CancelExchangeCommandHandler {
	var f commands.ExchangeUoWFactory = FuncExchangeUoWFactory(func() commands.ExchangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelExchangeCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteExchangeCommandHandler() commands.CompleteExchangeCommandHandler {
	var f commands.ExchangeUoWFactory = FuncExchangeUoWFactory(func() commands.ExchangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteExchangeCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f, services.NewRatingEligibility())
}

func (c *CompositionRoot) CreateReportRatingCommandHandler() commands.ReportRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateOverrideStatusCommandHandler() commands.OverrideStatusCommandHandler {
	var f commands.OverrideUoWFactory = FuncOverrideUoWFactory(func() commands.OverrideUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateReactivateBatchCommandHandler() commands.ReactivateBatchCommandHandler {
	var f commands.BatchUoWFactory = FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReactivateBatchCommandHandler(f, c.reactivationPolicy)
}

func (c *CompositionRoot) CreateExpireStaleRequestsCommandHandler() commands.ExpireStaleRequestsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleRequestsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableBatchesQueryHandler() queries.GetAvailableBatchesQueryHandler {
	return queries.NewGetAvailableBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForActorQueryHandler() queries.GetOrdersForActorQueryHandler {
	return queries.NewGetOrdersForActorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActorRatingQueryHandler() queries.GetActorRatingQueryHandler {
	return queries.NewGetActorRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncExchangeUoWFactory func() commands.ExchangeUoW

func (f FuncExchangeUoWFactory) Create() commands.ExchangeUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncOverrideUoWFactory func() commands.OverrideUoW

func (f FuncOverrideUoWFactory) Create() commands.OverrideUoW {
	return f()
}
