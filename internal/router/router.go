package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sushinaruto/backend/internal/contact"
	"github.com/sushinaruto/backend/internal/dashboard"
	"github.com/sushinaruto/backend/internal/logger"
	"github.com/sushinaruto/backend/internal/menu"
	"github.com/sushinaruto/backend/internal/middleware"
	"github.com/sushinaruto/backend/internal/order"
	"github.com/sushinaruto/backend/internal/reservation"
	"github.com/sushinaruto/backend/internal/user"
)

func NewRouter(
	userH *user.Handler,
	orderH *order.Handler,
	menuH *menu.Handler,
	reservationH *reservation.Handler,
	contactH *contact.Handler,
	dashboardH *dashboard.Handler,
	jwtSecret []byte,
	userRepo middleware.UserRepository,
) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.WithLogging)
	r.Use(chiMiddleware.Recoverer)

	r.Use(middleware.GzipHandler)

	// Public storefront.
	r.Get("/api/home", menuH.Home)
	r.Get("/api/menu", menuH.Menu)
	r.Get("/api/menu/search", menuH.Search)
	r.Post("/api/contact", contactH.Submit)
	r.Post("/api/reservations", reservationH.Create)
	r.Post("/api/order/submit", orderH.Submit)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", userH.Signup)
		r.Post("/login", userH.Login)
	})

	// Customer area.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(jwtSecret, userRepo))

		r.Get("/api/order/history", orderH.History)
		r.Get("/api/order/track", orderH.LiveTrack)
		r.Get("/api/order/{id}", orderH.Detail)
		r.Post("/api/order/{id}/action", orderH.CustomerAction)
	})

	// Staff back-office.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(jwtSecret, userRepo))
		r.Use(middleware.RequireStaff)

		r.Route("/api/order/admin", func(r chi.Router) {
			r.Get("/live", orderH.LiveBoard)
			r.Get("/food-table", orderH.FoodTable)
			r.Get("/history", orderH.ManageHistory)
			r.Post("/action", orderH.StaffAction)
			r.Post("/action/{id}", orderH.StaffAction)
			r.Post("/{id}/status", orderH.SetStatus)
			r.Delete("/{id}", orderH.Delete)
		})

		r.Route("/api/staff", func(r chi.Router) {
			r.Route("/menu", func(r chi.Router) {
				r.Get("/categories", menuH.ListCategories)
				r.Post("/categories", menuH.CreateCategory)
				r.Put("/categories/{id}", menuH.RenameCategory)
				r.Delete("/categories/{id}", menuH.DeleteCategory)

				r.Get("/items", menuH.ListItems)
				r.Post("/items", menuH.CreateItem)
				r.Get("/items/{id}", menuH.GetItem)
				r.Put("/items/{id}", menuH.UpdateItem)
				r.Delete("/items/{id}", menuH.DeleteItem)

				r.Get("/specials", menuH.ListSpecials)
				r.Post("/specials", menuH.CreateSpecial)
				r.Put("/specials/{id}", menuH.UpdateSpecial)
				r.Delete("/specials/{id}", menuH.DeleteSpecial)
			})

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/", reservationH.List)
				r.Get("/{id}", reservationH.Get)
				r.Post("/{id}/status", reservationH.UpdateStatus)
				r.Post("/{id}/email/{mailType}", reservationH.SendEmail)
				r.Delete("/{id}", reservationH.Delete)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", contactH.List)
				r.Get("/{id}", contactH.Get)
				r.Delete("/{id}", contactH.Delete)
			})
		})
	})

	// Management dashboard.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(jwtSecret, userRepo))
		r.Use(middleware.RequireManagement)

		r.Get("/api/management/dashboard", dashboardH.Metrics)
		r.Get("/api/management/dashboard/data", dashboardH.Data)
	})

	return r
}
