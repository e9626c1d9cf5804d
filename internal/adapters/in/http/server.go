package http

import (
	"errors"
	"fmt"
	"net/http"

	"smartpack/internal/core/application/usecases/commands"
	"smartpack/internal/core/application/usecases/queries"
	"smartpack/internal/core/domain/model/customer"
	"smartpack/internal/core/domain/model/parcel"
	"smartpack/internal/generated/servers"
	"smartpack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	updateCustomerHandler commands.UpdateCustomerCommandHandler
	deleteCustomerHandler commands.DeleteCustomerCommandHandler
	createParcelHandler   commands.CreateParcelCommandHandler
	updateParcelHandler   commands.UpdateParcelCommandHandler
	deleteParcelHandler   commands.DeleteParcelCommandHandler

	// Query handlers
	getAllCustomersHandler    queries.GetAllCustomersQueryHandler
	getCustomerHandler        queries.GetCustomerQueryHandler
	getCustomerParcelsHandler queries.GetCustomerParcelsQueryHandler
	getAllParcelsHandler      queries.GetAllParcelsQueryHandler
	getParcelHandler          queries.GetParcelQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getCustomerParcelsHandler queries.GetCustomerParcelsQueryHandler,
	getAllParcelsHandler queries.GetAllParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:     createCustomerHandler,
		updateCustomerHandler:     updateCustomerHandler,
		deleteCustomerHandler:     deleteCustomerHandler,
		createParcelHandler:       createParcelHandler,
		updateParcelHandler:       updateParcelHandler,
		deleteParcelHandler:       deleteParcelHandler,
		getAllCustomersHandler:    getAllCustomersHandler,
		getCustomerHandler:        getCustomerHandler,
		getCustomerParcelsHandler: getCustomerParcelsHandler,
		getAllParcelsHandler:      getAllParcelsHandler,
		getParcelHandler:          getParcelHandler,
	}
}

// GetCustomers handles GET /customer - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = customerReadModelToWire(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /customer - registers a new customer.
// The supplied identity is ignored; the store assigns one.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCustomerCommand(
		body.Name, optionalString(body.PhoneNumber), body.Email,
		body.City, body.ZipCode, body.Address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: validationMessage("Customer", err),
		})
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create customer",
		})
	}

	return ctx.JSON(http.StatusOK, customerToWire(created))
}

// GetCustomerById handles GET /customer/{id} - retrieves one customer.
func (s *Server) GetCustomerById(ctx echo.Context, id int64) error {
	query := queries.NewGetCustomerQuery(id)

	c, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customer",
		})
	}

	return ctx.JSON(http.StatusOK, customerReadModelToWire(c))
}

// UpdateCustomer handles PUT /customer/{id} - overwrites a customer.
// The identity in the body is replaced by the path identity.
func (s *Server) UpdateCustomer(ctx echo.Context, id int64) error {
	var body servers.UpdateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		id, body.Name, optionalString(body.PhoneNumber), body.Email,
		body.City, body.ZipCode, body.Address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: validationMessage("Customer", err),
		})
	}

	updated, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update customer",
		})
	}

	return ctx.JSON(http.StatusOK, customerToWire(updated))
}

// DeleteCustomer handles DELETE /customer/{id} - removes a customer together
// with its parcels.
func (s *Server) DeleteCustomer(ctx echo.Context, id int64) error {
	cmd := commands.NewDeleteCustomerCommand(id)

	if err := s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete customer",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerParcels handles GET /customer/{id}/parcel - retrieves one
// customer's parcels.
func (s *Server) GetCustomerParcels(ctx echo.Context, id int64) error {
	query := queries.NewGetCustomerParcelsQuery(id)

	parcels, err := s.getCustomerParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve parcels",
		})
	}

	response := make([]servers.Parcel, len(parcels))
	for i, p := range parcels {
		response[i] = parcelReadModelToWire(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcels handles GET /parcel - retrieves all parcels.
func (s *Server) GetParcels(ctx echo.Context) error {
	query := queries.NewGetAllParcelsQuery()

	parcels, err := s.getAllParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve parcels",
		})
	}

	response := make([]servers.Parcel, len(parcels))
	for i, p := range parcels {
		response[i] = parcelReadModelToWire(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateParcel handles POST /parcel - registers a new parcel. The supplied
// identity is ignored and the parcel is stored with status NEW once the
// supplied status passed validation.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.CreateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateParcelCommand(
		body.CustomerId, body.RecipientName, optionalString(body.RecipientPhoneNumber),
		body.RecipientEmail, body.RecipientCity, body.RecipientZipCode,
		body.RecipientAddress, body.CashOnDelivery,
		string(body.ParcelSize), string(body.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: validationMessage("Parcel", err),
		})
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create parcel",
		})
	}

	return ctx.JSON(http.StatusOK, parcelToWire(created))
}

// GetParcelById handles GET /parcel/{id} - retrieves one parcel.
func (s *Server) GetParcelById(ctx echo.Context, id int64) error {
	query := queries.NewGetParcelQuery(id)

	p, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve parcel",
		})
	}

	return ctx.JSON(http.StatusOK, parcelReadModelToWire(p))
}

// UpdateParcel handles PUT /parcel/{id} - overwrites a parcel. The identity
// in the body is replaced by the path identity and the validated status is
// stored verbatim.
func (s *Server) UpdateParcel(ctx echo.Context, id int64) error {
	var body servers.UpdateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateParcelCommand(
		id, body.CustomerId, body.RecipientName, optionalString(body.RecipientPhoneNumber),
		body.RecipientEmail, body.RecipientCity, body.RecipientZipCode,
		body.RecipientAddress, body.CashOnDelivery,
		string(body.ParcelSize), string(body.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: validationMessage("Parcel", err),
		})
	}

	updated, err := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update parcel",
		})
	}

	return ctx.JSON(http.StatusOK, parcelToWire(updated))
}

// DeleteParcel handles DELETE /parcel/{id} - removes a parcel.
func (s *Server) DeleteParcel(ctx echo.Context, id int64) error {
	cmd := commands.NewDeleteParcelCommand(id)

	if err := s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Parcel not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete parcel",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// validationMessage builds the wire-level validation failure message.
// The count is the number of independently violated field rules.
func validationMessage(entity string, err error) string {
	return fmt.Sprintf("Validation failed for %s. Error count: %d", entity, errorCount(err))
}

// errorCount counts the leaves of a joined validation error.
func errorCount(err error) int {
	if err == nil {
		return 0
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return 1
	}

	count := 0
	for _, e := range joined.Unwrap() {
		count += errorCount(e)
	}
	return count
}

// optionalString maps an absent wire field to the empty string.
func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optionalWireString maps an empty domain string to an absent wire field.
func optionalWireString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func customerToWire(c *customer.Customer) servers.Customer {
	id := c.ID()
	return servers.Customer{
		Id:          &id,
		Name:        c.Name(),
		PhoneNumber: optionalWireString(c.PhoneNumber()),
		Email:       c.Email(),
		City:        c.City(),
		ZipCode:     c.ZipCode(),
		Address:     c.Address(),
	}
}

func customerReadModelToWire(c queries.CustomerReadModel) servers.Customer {
	id := c.ID
	return servers.Customer{
		Id:          &id,
		Name:        c.Name,
		PhoneNumber: optionalWireString(c.PhoneNumber),
		Email:       c.Email,
		City:        c.City,
		ZipCode:     c.ZipCode,
		Address:     c.Address,
	}
}

func parcelToWire(p *parcel.Parcel) servers.Parcel {
	id := p.ID()
	return servers.Parcel{
		Id:                   &id,
		CustomerId:           p.CustomerID(),
		RecipientName:        p.RecipientName(),
		RecipientPhoneNumber: optionalWireString(p.RecipientPhoneNumber()),
		RecipientEmail:       p.RecipientEmail(),
		RecipientCity:        p.RecipientCity(),
		RecipientZipCode:     p.RecipientZipCode(),
		RecipientAddress:     p.RecipientAddress(),
		CashOnDelivery:       p.CashOnDelivery(),
		ParcelSize:           servers.ParcelParcelSize(p.Size().String()),
		Status:               servers.ParcelStatus(p.Status().String()),
	}
}

func parcelReadModelToWire(p queries.ParcelReadModel) servers.Parcel {
	id := p.ID
	return servers.Parcel{
		Id:                   &id,
		CustomerId:           p.CustomerID,
		RecipientName:        p.RecipientName,
		RecipientPhoneNumber: optionalWireString(p.RecipientPhoneNumber),
		RecipientEmail:       p.RecipientEmail,
		RecipientCity:        p.RecipientCity,
		RecipientZipCode:     p.RecipientZipCode,
		RecipientAddress:     p.RecipientAddress,
		CashOnDelivery:       p.CashOnDelivery,
		ParcelSize:           servers.ParcelParcelSize(p.ParcelSize),
		Status:               servers.ParcelStatus(p.Status),
	}
}
