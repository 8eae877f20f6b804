package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/server"
	"github.com/homehero/homehero-server/internal/service"
)

// ServiceHandler serves the service catalog routes.
type ServiceHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewServiceHandler(s *server.Server, catalog *service.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

func (h *ServiceHandler) ListServices(c echo.Context, req *ListServicesRequest) ([]model.Service, error) {
	return h.catalog.List(c.Request().Context(), req.Params())
}

func (h *ServiceHandler) GetService(c echo.Context, req *ServiceIDRequest) (*model.Service, error) {
	return h.catalog.Get(c.Request().Context(), req.ID)
}

func (h *ServiceHandler) CreateService(c echo.Context, req *CreateServiceRequest) (*model.Service, error) {
	svc := req.Service()
	if caller := callerFrom(c, "", ""); caller.UID != "" {
		svc.UID = &caller.UID
	}
	return h.catalog.Create(c.Request().Context(), svc)
}

func (h *ServiceHandler) UpdateService(c echo.Context, req *UpdateServiceRequest) (*model.Service, error) {
	return h.catalog.Update(c.Request().Context(), req.ID, req.Update(), callerFrom(c, req.UID, req.UserEmail))
}

func (h *ServiceHandler) DeleteService(c echo.Context, req *DeleteServiceRequest) (*model.Ack, error) {
	return h.catalog.Delete(c.Request().Context(), req.ID, callerFrom(c, req.UID, req.UserEmail))
}

func (h *ServiceHandler) MyServices(c echo.Context, req *MyServicesRequest) ([]model.Service, error) {
	return h.catalog.ListByOwner(c.Request().Context(), callerFrom(c, req.UID, "").UID)
}
