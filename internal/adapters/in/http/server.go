// Package http exposes the application's commands and queries over a REST
// surface. Handlers translate wire requests into commands and queries,
// delegate to the application layer, and map the error taxonomy onto HTTP
// status codes. Authentication lives in the middleware; handlers only ever
// see a resolved actor.
package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/actor"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	registerConsumerHandler  commands.RegisterConsumerCommandHandler
	registerUserHandler      commands.RegisterUserCommandHandler
	createRestaurantHandler  commands.CreateRestaurantCommandHandler
	addProductHandler        commands.AddProductCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	listConsumerOrdersHandler   queries.ListConsumerOrdersQueryHandler
	listRestaurantOrdersHandler queries.ListRestaurantOrdersQueryHandler
	calculateDeliveryTaxHandler queries.CalculateDeliveryTaxQueryHandler
	listProductsHandler         queries.ListProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	registerConsumerHandler commands.RegisterConsumerCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listConsumerOrdersHandler queries.ListConsumerOrdersQueryHandler,
	listRestaurantOrdersHandler queries.ListRestaurantOrdersQueryHandler,
	calculateDeliveryTaxHandler queries.CalculateDeliveryTaxQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		registerConsumerHandler:     registerConsumerHandler,
		registerUserHandler:         registerUserHandler,
		createRestaurantHandler:     createRestaurantHandler,
		addProductHandler:           addProductHandler,
		getOrderHandler:             getOrderHandler,
		listConsumerOrdersHandler:   listConsumerOrdersHandler,
		listRestaurantOrdersHandler: listRestaurantOrdersHandler,
		calculateDeliveryTaxHandler: calculateDeliveryTaxHandler,
		listProductsHandler:         listProductsHandler,
	}
}

// RegisterRoutes mounts the API. Registration and tax quoting are public;
// everything touching orders or catalog management requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.POST("/consumers", s.RegisterConsumer)
	api.GET("/restaurants/:restaurantId/delivery-tax", s.CalculateDeliveryTax)
	api.GET("/restaurants/:restaurantId/products", s.ListProducts)

	secured := api.Group("", auth)
	secured.POST("/orders", s.CreateOrder)
	secured.GET("/orders/:orderId", s.GetOrder)
	secured.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	secured.POST("/orders/:orderId/cancel", s.CancelOrder)
	secured.GET("/consumers/:consumerId/orders", s.ListConsumerOrders)
	secured.GET("/restaurants/:restaurantId/orders", s.ListRestaurantOrders)
	secured.POST("/restaurants", s.CreateRestaurant)
	secured.POST("/restaurants/:restaurantId/products", s.AddProduct)
}

// NewOrderLine is one requested line of a new order.
type NewOrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// NewOrderRequest is the wire shape of an order creation request.
type NewOrderRequest struct {
	ConsumerID   string         `json:"consumerId"`
	RestaurantID string         `json:"restaurantId"`
	Lines        []NewOrderLine `json:"lines"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	consumerID, err := kernel.UUIDFromString(request.ConsumerID)
	if err != nil {
		return writeError(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(request.Lines))
	for _, line := range request.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, commands.OrderLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorFromContext(ctx), consumerID, restaurantID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderJSON(response))
}

// UpdateStatusRequest is the wire shape of a status change request.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - moves
// an order along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an
// order through the same lifecycle rules as any other status change.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListConsumerOrders handles GET /api/v1/consumers/{consumerId}/orders.
func (s *Server) ListConsumerOrders(ctx echo.Context) error {
	consumerID, err := kernel.UUIDFromString(ctx.Param("consumerId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListConsumerOrdersQuery(consumerID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	responses, err := s.listConsumerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderListJSON(responses))
}

// ListRestaurantOrders handles GET /api/v1/restaurants/{restaurantId}/orders.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListRestaurantOrdersQuery(restaurantID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	responses, err := s.listRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderListJSON(responses))
}

// CalculateDeliveryTax handles GET /api/v1/restaurants/{restaurantId}/delivery-tax.
// The destination CEP comes in the "cep" query parameter.
func (s *Server) CalculateDeliveryTax(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCalculateDeliveryTaxQuery(restaurantID, ctx.QueryParam("cep"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.calculateDeliveryTaxHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"zone":        response.Zone,
		"deliveryTax": response.DeliveryTax.String(),
	})
}

// ListProducts handles GET /api/v1/restaurants/{restaurantId}/products.
// The catalog is public; no token is required to browse it.
func (s *Server) ListProducts(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListProductsQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	responses, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newProductListJSON(responses))
}

// NewConsumerRequest is the wire shape of a consumer registration.
type NewConsumerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RegisterConsumer handles POST /api/v1/consumers - registers a consumer profile.
func (s *Server) RegisterConsumer(ctx echo.Context) error {
	var request NewConsumerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	consumerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterConsumerCommand(consumerID,
		request.Name, request.Email, request.Phone, request.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerConsumerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"consumerId": consumerID.String()})
}

// NewUserRequest is the wire shape of an account registration.
type NewUserRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
	ConsumerID   *string `json:"consumerId,omitempty"`
	RestaurantID *string `json:"restaurantId,omitempty"`
}

// RegisterUser handles POST /api/v1/users - registers a login account.
// Self-registration covers CUSTOMER and RESTAURANT roles only.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request NewUserRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	role, err := actor.RoleFromString(request.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	consumerID, err := optionalUUID(request.ConsumerID)
	if err != nil {
		return writeError(ctx, err)
	}
	restaurantID, err := optionalUUID(request.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, request.Email, request.Password,
		role, consumerID, restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"userId": userID.String()})
}

// NewRestaurantRequest is the wire shape of a restaurant creation request.
type NewRestaurantRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	DeliveryTax string `json:"deliveryTax"`
}

// CreateRestaurant handles POST /api/v1/restaurants - registers a restaurant.
// Only administrators may create restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var request NewRestaurantRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryTax, err := kernel.NewMoneyFromString(request.DeliveryTax)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, actorFromContext(ctx),
		request.Name, request.Category, request.Address, request.Phone, deliveryTax)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"restaurantId": restaurantID.String()})
}

// NewProductRequest is the wire shape of a catalog product creation request.
type NewProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// AddProduct handles POST /api/v1/restaurants/{restaurantId}/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	var request NewProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return writeError(ctx, err)
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(productID, restaurantID, actorFromContext(ctx),
		request.Name, request.Description, request.Category, price)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"productId": productID.String()})
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
