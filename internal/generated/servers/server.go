// Package servers holds the HTTP API types, the ServerInterface implemented by
// the http adapter, and the echo wrappers that bind path and body parameters.
// It follows the layout oapi-codegen emits for echo servers and is maintained by
// hand alongside api/openapi.yaml.
package servers

import (
	"fmt"
	"net/http"

	"orderdelivery/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Defines values for NewOrderDeliveryType.
const (
	Standard NewOrderDeliveryType = "standard"
	Urgent   NewOrderDeliveryType = "urgent"
)

// Amount Exact decimal amount. Requests accept a decimal string or a JSON number; responses use strings.
type Amount = decimal.Decimal

// Client defines model for Client.
type Client struct {
	Address  string             `json:"address"`
	Email    *string            `json:"email,omitempty"`
	FullName string             `json:"fullName"`
	Id       openapi_types.UUID `json:"id"`
	Phone    *string            `json:"phone,omitempty"`
	TaxId    string             `json:"taxId"`
}

// ClientProfile defines model for ClientProfile.
type ClientProfile struct {
	Address  string  `json:"address"`
	Email    *string `json:"email,omitempty"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
	TaxId    string  `json:"taxId"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	Breakdown    PriceBreakdown      `json:"breakdown"`
	ClientId     *openapi_types.UUID `json:"clientId,omitempty"`
	DeliveryType *string             `json:"deliveryType,omitempty"`
	Id           openapi_types.UUID  `json:"id"`
	OrderDate    *openapi_types.Date `json:"orderDate,omitempty"`
	OrderId      openapi_types.UUID  `json:"orderId"`
	Status       string              `json:"status"`
}

// DeliverySummary defines model for DeliverySummary.
type DeliverySummary struct {
	// FinalTotal Exact decimal amount encoded as a string.
	FinalTotal Amount             `json:"finalTotal"`
	Id         openapi_types.UUID `json:"id"`
	Status     string             `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code    int32   `json:"code"`
	Kind    *string `json:"kind,omitempty"`
	Message string  `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ClientId     openapi_types.UUID   `json:"clientId"`
	Date         openapi_types.Date   `json:"date"`
	DeliveryType NewOrderDeliveryType `json:"deliveryType"`

	// DistanceKm Exact decimal amount encoded as a string.
	DistanceKm Amount `json:"distanceKm"`

	// RatePerKg Exact decimal amount encoded as a string.
	RatePerKg Amount `json:"ratePerKg"`

	// RatePerKm Exact decimal amount encoded as a string.
	RatePerKm Amount `json:"ratePerKm"`

	// WeightKg Exact decimal amount encoded as a string.
	WeightKg Amount `json:"weightKg"`
}

// NewOrderDeliveryType defines model for NewOrder.DeliveryType.
type NewOrderDeliveryType string

// Order defines model for Order.
type Order struct {
	ClientId     openapi_types.UUID `json:"clientId"`
	Date         openapi_types.Date `json:"date"`
	Delivery     *DeliverySummary   `json:"delivery,omitempty"`
	DeliveryType string             `json:"deliveryType"`

	// DistanceKm Exact decimal amount encoded as a string.
	DistanceKm Amount             `json:"distanceKm"`
	Id         openapi_types.UUID `json:"id"`

	// RatePerKg Exact decimal amount encoded as a string.
	RatePerKg Amount `json:"ratePerKg"`

	// RatePerKm Exact decimal amount encoded as a string.
	RatePerKm Amount `json:"ratePerKm"`

	// WeightKg Exact decimal amount encoded as a string.
	WeightKg Amount `json:"weightKg"`
}

// PlacedOrder defines model for PlacedOrder.
type PlacedOrder struct {
	Breakdown PriceBreakdown `json:"breakdown"`
	Delivery  Delivery       `json:"delivery"`
	Order     Order          `json:"order"`
}

// PriceBreakdown defines model for PriceBreakdown.
type PriceBreakdown struct {
	// Discount Exact decimal amount encoded as a string.
	Discount Amount `json:"discount"`

	// DistanceCost Exact decimal amount encoded as a string.
	DistanceCost Amount `json:"distanceCost"`

	// ExtraFee Exact decimal amount encoded as a string.
	ExtraFee Amount `json:"extraFee"`

	// FinalTotal Exact decimal amount encoded as a string.
	FinalTotal Amount `json:"finalTotal"`

	// Surcharge Exact decimal amount encoded as a string.
	Surcharge Amount `json:"surcharge"`

	// WeightCost Exact decimal amount encoded as a string.
	WeightCost Amount `json:"weightCost"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ClientId defines model for ClientId.
type ClientId = openapi_types.UUID

// DeliveryId defines model for DeliveryId.
type DeliveryId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// RegisterClientJSONRequestBody defines body for RegisterClient for application/json ContentType.
type RegisterClientJSONRequestBody = ClientProfile

// UpdateClientJSONRequestBody defines body for UpdateClient for application/json ContentType.
type UpdateClientJSONRequestBody = ClientProfile

// SetDeliveryStatusJSONRequestBody defines body for SetDeliveryStatus for application/json ContentType.
type SetDeliveryStatusJSONRequestBody = StatusUpdate

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List clients
	// (GET /clients)
	ListClients(ctx echo.Context) error
	// Register a client
	// (POST /clients)
	RegisterClient(ctx echo.Context) error
	// Delete a client without orders
	// (DELETE /clients/{clientId})
	DeleteClient(ctx echo.Context, clientId ClientId) error
	// Get a client
	// (GET /clients/{clientId})
	GetClient(ctx echo.Context, clientId ClientId) error
	// Update a client
	// (PUT /clients/{clientId})
	UpdateClient(ctx echo.Context, clientId ClientId) error
	// List all deliveries
	// (GET /deliveries)
	ListDeliveries(ctx echo.Context) error
	// Get a delivery
	// (GET /deliveries/{deliveryId})
	GetDelivery(ctx echo.Context, deliveryId DeliveryId) error
	// Set the status of a delivery
	// (PUT /deliveries/{deliveryId}/status)
	SetDeliveryStatus(ctx echo.Context, deliveryId DeliveryId) error
	// Place an order and price its delivery
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// Get an order with its delivery summary
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListClients converts echo context to params.
func (w *ServerInterfaceWrapper) ListClients(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListClients(ctx)
	return err
}

// RegisterClient converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterClient(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterClient(ctx)
	return err
}

// DeleteClient converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteClient(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "clientId" -------------
	var clientId ClientId

	err = runtime.BindStyledParameterWithOptions("simple", "clientId", ctx.Param("clientId"), &clientId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteClient(ctx, clientId)
	return err
}

// GetClient converts echo context to params.
func (w *ServerInterfaceWrapper) GetClient(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "clientId" -------------
	var clientId ClientId

	err = runtime.BindStyledParameterWithOptions("simple", "clientId", ctx.Param("clientId"), &clientId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetClient(ctx, clientId)
	return err
}

// UpdateClient converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateClient(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "clientId" -------------
	var clientId ClientId

	err = runtime.BindStyledParameterWithOptions("simple", "clientId", ctx.Param("clientId"), &clientId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter clientId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateClient(ctx, clientId)
	return err
}

// ListDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListDeliveries(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDeliveries(ctx)
	return err
}

// GetDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDelivery(ctx, deliveryId)
	return err
}

// SetDeliveryStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetDeliveryStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "deliveryId" -------------
	var deliveryId DeliveryId

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetDeliveryStatus(ctx, deliveryId)
	return err
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PlaceOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/clients", wrapper.ListClients)
	router.POST(baseURL+"/clients", wrapper.RegisterClient)
	router.DELETE(baseURL+"/clients/:clientId", wrapper.DeleteClient)
	router.GET(baseURL+"/clients/:clientId", wrapper.GetClient)
	router.PUT(baseURL+"/clients/:clientId", wrapper.UpdateClient)
	router.GET(baseURL+"/deliveries", wrapper.ListDeliveries)
	router.GET(baseURL+"/deliveries/:deliveryId", wrapper.GetDelivery)
	router.PUT(baseURL+"/deliveries/:deliveryId/status", wrapper.SetDeliveryStatus)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)

}

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. The external references of Swagger specification are resolved.
// The logic of resolving external references is tightly connected to "import-mapping" feature.
// Externally referenced files must be embedded in the corresponding golang packages.
// Urls can be supported but this task was out of the scope.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	swagger, err = loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return
	}
	return
}
