package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"

	msgRunning = "Hospital API is running!"
)

// HealthResponse describes model availability and the capacity policy in force.
type HealthResponse struct {
	Status            string `json:"status" example:"ok"`
	ModelAvailable    bool   `json:"model_available" example:"true"`
	ModelSource       string `json:"model_source,omitempty" example:"artifacts/hospital_bed_model.json"`
	ModelVersion      string `json:"model_version,omitempty" example:"occupancy-additive-2024.06"`
	TotalBeds         int    `json:"total_beds" example:"150"`
	CriticalThreshold int    `json:"critical_threshold" example:"15"`
	HorizonDays       int    `json:"horizon_days" example:"7"`
}

// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": msgRunning})
}

// @Summary      Health check
// @Description  Reports whether the forecasting model loaded at startup. Always 200; "degraded" means every forecast will fail.
// @Tags         system
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	info := h.services.ModelInfo()
	policy := h.services.Policy()
	status := statusOK
	if !info.Available {
		status = statusDegraded
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:            status,
		ModelAvailable:    info.Available,
		ModelSource:       info.Source,
		ModelVersion:      info.Version,
		TotalBeds:         policy.Capacity.TotalBeds,
		CriticalThreshold: policy.Capacity.CriticalThreshold,
		HorizonDays:       policy.HorizonDays,
	})
}
