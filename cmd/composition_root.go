package cmd

import (
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/adapters/out/postgres/directory"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/commands"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceOrderCommandHandler(
		f,
		directory.NewGormClientDirectory(c.gormDB),
		directory.NewGormCrewDirectory(c.gormDB),
		directory.NewGormMaterialCatalog(c.gormDB),
	)
}

func (c *CompositionRoot) CreateUpdateServiceOrderCommandHandler() commands.UpdateServiceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateServiceOrderCommandHandler(
		f,
		directory.NewGormCrewDirectory(c.gormDB),
	)
}

func (c *CompositionRoot) CreateStartServiceOrderCommandHandler() commands.StartServiceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteServiceOrderCommandHandler() commands.CompleteServiceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelServiceOrderCommandHandler() commands.CancelServiceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateChecklistCommandHandler() commands.UpdateChecklistCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateChecklistCommandHandler(f)
}

func (c *CompositionRoot) CreateGetServiceOrderQueryHandler() queries.GetServiceOrderQueryHandler {
	return queries.NewGetServiceOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockMaterialsQueryHandler() queries.GetLowStockMaterialsQueryHandler {
	return queries.NewGetLowStockMaterialsQueryHandler(c.gormDB)
}

// CreateServiceOrderRepository returns a repository bound to the base
// connection, outside any transaction. Used by read-only background jobs.
func (c *CompositionRoot) CreateServiceOrderRepository() ports.ServiceOrderRepository {
	return c.uowFactory.Create().ServiceOrderRepository()
}

func (c *CompositionRoot) CreateGetCrewAvailabilityQueryHandler() queries.GetCrewAvailabilityQueryHandler {
	return queries.NewGetCrewAvailabilityQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
