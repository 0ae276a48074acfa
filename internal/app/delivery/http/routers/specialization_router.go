package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSpecializationRoutes(router chi.Router, specializationController *controllers.SpecializationController) {
	router.Get("/", specializationController.FindAll)
}
