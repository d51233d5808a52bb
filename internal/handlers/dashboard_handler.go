package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kassa/internal/services"
)

// DashboardHandler handles spending summary requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard builds the spending summary for the requested period.
// Without query parameters it covers all time; ?year= narrows to a year
// and ?year=&month= to a calendar month.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	window, err := parseWindow(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.dashboardService.BuildDashboard(userID, window)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": view})
}
