package catalog

import (
	"net/http"

	"github.com/BenlahcenSoufiane/AzurHotel/infras/otel"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/model/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/catalog/service"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/constant"
	gDto "github.com/BenlahcenSoufiane/AzurHotel/shared/dto"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/validator"
	"github.com/BenlahcenSoufiane/AzurHotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamSearch = "search"

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/room-types", func(r chi.Router) {
		r.Get("/", handler.GetAllRoomTypes)
		r.Get("/{id}", handler.GetRoomType)
		r.Post("/", handler.CreateRoomType)
		r.Put("/{id}", handler.UpdateRoomType)
		r.Delete("/{id}", handler.DeleteRoomType)
	})

	r.Route("/spa-services", func(r chi.Router) {
		r.Get("/", handler.GetAllSpaServices)
		r.Get("/{id}", handler.GetSpaService)
		r.Post("/", handler.CreateSpaService)
		r.Put("/{id}", handler.UpdateSpaService)
		r.Delete("/{id}", handler.DeleteSpaService)
	})

	r.Route("/menus", func(r chi.Router) {
		r.Get("/", handler.GetAllRestaurantMenus)
		r.Get("/{id}", handler.GetRestaurantMenu)
		r.Post("/", handler.CreateRestaurantMenu)
		r.Put("/{id}", handler.UpdateRestaurantMenu)
		r.Delete("/{id}", handler.DeleteRestaurantMenu)
	})
}

// searchFilter matches the entity name against the optional search query
// parameter.
func searchFilter(r *http.Request, field, table string) gDto.FilterGroup {
	search := r.URL.Query().Get(requestParamSearch)
	if search == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    search,
				Operator: gDto.FilterOperatorLike,
				Table:    table,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// CreateRoomType adds a bookable room category
// @Summary Create a room type
// @Description Create a new room type with pricing and amenities.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Message "Room type created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateRoomType(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Room type created successfully")
}

// GetAllRoomTypes lists room categories
// @Summary List room types
// @Description List room types with pagination and optional name search.
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Name search"
// @Success 200 {object} dto.GetRoomTypesResponse
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetAllRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRoomTypes")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetAllRoomTypes(ctx, params, searchFilter(r, model.FieldRoomTypeName, model.RoomTypeTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomType fetches one room category
// @Summary Get a room type
// @Tags Catalog
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} dto.RoomTypeResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomType")
	defer scope.End()

	res, err := handler.service.GetRoomType(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoomType modifies a room category
// @Summary Update a room type
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message "Room type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	req := dto.UpdateRoomTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRoomType(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType removes a room category
// @Summary Delete a room type
// @Tags Catalog
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Message "Room type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	if err := handler.service.DeleteRoomType(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room type deleted successfully")
}

// CreateSpaService adds a spa treatment
// @Summary Create a spa service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateSpaServiceRequest true "Create Spa Service Request"
// @Success 201 {object} response.Message "Spa service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spa-services [post]
// @Security BearerAuth
func (handler *Handler) CreateSpaService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpaService")
	defer scope.End()

	req := dto.CreateSpaServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateSpaService(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create spa service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Spa service created successfully")
}

// GetAllSpaServices lists spa treatments
// @Summary List spa services
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Name search"
// @Success 200 {object} dto.GetSpaServicesResponse
// @Failure 500 {object} response.Error
// @Router /v1/spa-services [get]
func (handler *Handler) GetAllSpaServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllSpaServices")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetAllSpaServices(ctx, params, searchFilter(r, model.FieldSpaServiceName, model.SpaServiceTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSpaService fetches one spa treatment
// @Summary Get a spa service
// @Tags Catalog
// @Produce json
// @Param id path string true "Spa Service ID"
// @Success 200 {object} dto.SpaServiceResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spa-services/{id} [get]
func (handler *Handler) GetSpaService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpaService")
	defer scope.End()

	res, err := handler.service.GetSpaService(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get spa service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateSpaService modifies a spa treatment
// @Summary Update a spa service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Spa Service ID"
// @Param request body dto.UpdateSpaServiceRequest true "Update Spa Service Request"
// @Success 200 {object} response.Message "Spa service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spa-services/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSpaService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSpaService")
	defer scope.End()

	req := dto.UpdateSpaServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSpaService(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update spa service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Spa service updated successfully")
}

// DeleteSpaService removes a spa treatment
// @Summary Delete a spa service
// @Tags Catalog
// @Produce json
// @Param id path string true "Spa Service ID"
// @Success 200 {object} response.Message "Spa service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/spa-services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSpaService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpaService")
	defer scope.End()

	if err := handler.service.DeleteSpaService(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete spa service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Spa service deleted successfully")
}

// CreateRestaurantMenu adds a menu item
// @Summary Create a menu item
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantMenuRequest true "Create Menu Request"
// @Success 201 {object} response.Message "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menus [post]
// @Security BearerAuth
func (handler *Handler) CreateRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurantMenu")
	defer scope.End()

	req := dto.CreateRestaurantMenuRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateRestaurantMenu(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Menu item created successfully")
}

// GetAllRestaurantMenus lists menu items
// @Summary List menu items
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Name search"
// @Success 200 {object} dto.GetRestaurantMenusResponse
// @Failure 500 {object} response.Error
// @Router /v1/menus [get]
func (handler *Handler) GetAllRestaurantMenus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRestaurantMenus")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetAllRestaurantMenus(ctx, params, searchFilter(r, model.FieldRestaurantMenuName, model.RestaurantMenuTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRestaurantMenu fetches one menu item
// @Summary Get a menu item
// @Tags Catalog
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} dto.RestaurantMenuResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menus/{id} [get]
func (handler *Handler) GetRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantMenu")
	defer scope.End()

	res, err := handler.service.GetRestaurantMenu(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRestaurantMenu modifies a menu item
// @Summary Update a menu item
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Menu ID"
// @Param request body dto.UpdateRestaurantMenuRequest true "Update Menu Request"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menus/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRestaurantMenu")
	defer scope.End()

	req := dto.UpdateRestaurantMenuRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateRestaurantMenu(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// DeleteRestaurantMenu removes a menu item
// @Summary Delete a menu item
// @Tags Catalog
// @Produce json
// @Param id path string true "Menu ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menus/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRestaurantMenu")
	defer scope.End()

	if err := handler.service.DeleteRestaurantMenu(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
