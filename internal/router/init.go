package router

import (
	"github.com/oksasatya/go-course-marketplace/internal/container"
	"github.com/oksasatya/go-course-marketplace/internal/domain/entity"
	handlers "github.com/oksasatya/go-course-marketplace/internal/interface/http"
	"github.com/oksasatya/go-course-marketplace/internal/router/modules"
)

// InitModules builds the handlers from c and adds every feature module to r.
func InitModules(r *Registry, c *container.Container) {
	purchases := handlers.NewPurchaseHandler(c.Ledger, c.Logger)
	courses := handlers.NewCourseHandler(c.Catalog, c.Media, c.Logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(
		handlers.NewAccountHandler(c.Accounts, entity.DomainUser, c.Logger),
		purchases,
		c.Tokens,
	))
	r.Add(modules.NewAdminModule(
		handlers.NewAccountHandler(c.Accounts, entity.DomainAdmin, c.Logger),
		courses,
		c.Tokens,
	))
	r.Add(modules.NewCourseModule(courses, purchases, c.Tokens))
	if c.Config.Env == "development" {
		r.Add(modules.NewDebugModule())
	}
}
