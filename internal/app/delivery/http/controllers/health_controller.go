package controllers

import (
	"medibook-service/internal/pkg/constvars"
	"net/http"

	"github.com/goccy/go-json"
)

type HealthController struct {
	ServiceName string
}

func NewHealthController(serviceName string) *HealthController {
	return &HealthController{ServiceName: serviceName}
}

// Check is the liveness probe. It bypasses the usual response envelope so
// that monitors get the flat shape they expect.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(constvars.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": ctrl.ServiceName,
	})
}
