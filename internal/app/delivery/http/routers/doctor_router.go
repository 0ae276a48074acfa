package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", doctorController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{doctorID}", doctorController.Delete)
}
