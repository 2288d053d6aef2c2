package routing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	metadataController "github.com/lloydmeta/raftmeta/internal/api/controllers/metadata"
	"github.com/lloydmeta/raftmeta/internal/api/models/metadata"
)

var metadataPath = "/metadata"

type MetadataRoutesHandler struct {
	Controller metadataController.Controller
}

func (h *MetadataRoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET(metadataPath, h.get)
	routerGroup.PUT(metadataPath, h.set)
}

// @Summary Get the replica metadata
// @ID get-metadata
// @Tags metadata
// @Description Returns the authoritative metadata record for the data directory
// @Produce  json
// @Success 200 {object} metadata.Record
// @Failure 500 {object} common.Body "Corrupt data directory"
// @Router /metadata [get]
func (h *MetadataRoutesHandler) get(c *gin.Context) {
	record, apiErr := h.Controller.Get()
	if apiErr != nil {
		HandleApiErr(c, apiErr)
	} else {
		c.JSON(http.StatusOK, record)
	}
}

// @Summary Force-set the persisted term and vote
// @ID set-metadata
// @Tags metadata
// @Description Overwrites the persisted term and vote; the version is bumped server-side
// @Accept  json
// @Produce  json
// @Param   newState body metadata.NewState true "The request body"
// @Success 200 {object} metadata.Record
// @Failure 400 {object} common.Body "Invalid JSON"
// @Router /metadata [put]
func (h *MetadataRoutesHandler) set(c *gin.Context) {
	var newState metadata.NewState
	if err := c.ShouldBindJSON(&newState); err != nil {
		HandleJsonSerdesErr(c, err)
		return
	}
	record, apiErr := h.Controller.Set(&newState)
	if apiErr != nil {
		HandleApiErr(c, apiErr)
	} else {
		c.JSON(http.StatusOK, record)
	}
}
