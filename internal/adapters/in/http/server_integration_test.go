package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartpack/cmd"
	httpadapter "smartpack/internal/adapters/in/http"
	"smartpack/internal/adapters/out/postgres/customerrepo"
	"smartpack/internal/adapters/out/postgres/parcelrepo"
	"smartpack/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ServerIntegrationTestSuite drives the full HTTP surface against a real
// database: echo routing, request binding, use case execution, and the
// store, exactly as wired in production.
type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	echo      *echo.Echo
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)

	app := cmd.NewCompositionRoot(cmd.Config{}, db)
	server := httpadapter.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateUpdateCustomerCommandHandler(),
		app.CreateDeleteCustomerCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateUpdateParcelCommandHandler(),
		app.CreateDeleteParcelCommandHandler(),
		app.CreateGetAllCustomersQueryHandler(),
		app.CreateGetCustomerQueryHandler(),
		app.CreateGetCustomerParcelsQueryHandler(),
		app.CreateGetAllParcelsQueryHandler(),
		app.CreateGetParcelQueryHandler(),
	)

	e := echo.New()
	servers.RegisterHandlers(e, server)
	suite.echo = e
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcel, customer").Error
	suite.Require().NoError(err)
}

func (suite *ServerIntegrationTestSuite) TestCustomerLifecycle() {
	// Register with a valid Budapest zip.
	rec := suite.doJSON(http.MethodPost, "/customer", suite.customerBody("Nagy Tibor", 1023))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var created servers.Customer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	suite.Require().NotNil(created.Id)
	suite.Positive(*created.Id)
	suite.Equal("Nagy Tibor", created.Name)
	suite.Equal(1023, created.ZipCode)

	// Read it back.
	rec = suite.doJSON(http.MethodGet, fmt.Sprintf("/customer/%d", *created.Id), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var fetched servers.Customer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fetched))
	suite.Equal(*created.Id, *fetched.Id)
	suite.Equal("Budapest", fetched.City)

	// Overwrite the city.
	update := suite.customerBody("Nagy Tibor", 6720)
	update.City = "Szeged"
	rec = suite.doJSON(http.MethodPut, fmt.Sprintf("/customer/%d", *created.Id), update)
	suite.Require().Equal(http.StatusOK, rec.Code)

	rec = suite.doJSON(http.MethodGet, fmt.Sprintf("/customer/%d", *created.Id), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fetched))
	suite.Equal("Szeged", fetched.City)
	suite.Equal(6720, fetched.ZipCode)

	// Remove it.
	rec = suite.doJSON(http.MethodDelete, fmt.Sprintf("/customer/%d", *created.Id), nil)
	suite.Equal(http.StatusNoContent, rec.Code)
	suite.Empty(rec.Body.Bytes())

	rec = suite.doJSON(http.MethodGet, fmt.Sprintf("/customer/%d", *created.Id), nil)
	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.assertErrorBody(rec, http.StatusNotFound, "Customer not found")
}

func (suite *ServerIntegrationTestSuite) TestCreateCustomer_InvalidZip_ReportsSingleViolation() {
	rec := suite.doJSON(http.MethodPost, "/customer", suite.customerBody("Nagy Tibor", 10230))

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	suite.assertErrorBody(rec, http.StatusBadRequest, "Validation failed for Customer. Error count: 1")
}

func (suite *ServerIntegrationTestSuite) TestCreateCustomer_ManyViolations_CountsEach() {
	body := servers.Customer{
		Name:    "Anna",
		Email:   "not-an-email",
		City:    "B",
		ZipCode: 10,
		Address: "x",
	}

	rec := suite.doJSON(http.MethodPost, "/customer", body)

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	suite.assertErrorBody(rec, http.StatusBadRequest, "Validation failed for Customer. Error count: 5")
}

func (suite *ServerIntegrationTestSuite) TestParcelRegistry() {
	first := suite.createCustomer("Nagy Tibor", "nagy.tibor@example.com")
	second := suite.createCustomer("Kiss Ilona", "kiss.ilona@example.com")

	// Submitted status is validated but creation always stores NEW.
	firstParcel := suite.createParcel(first, "Szabo Gabor", "S", "DELIVERED")
	suite.Equal(servers.NEW, firstParcel.Status)

	secondParcel := suite.createParcel(first, "Toth Eszter", "M", "NEW")
	thirdParcel := suite.createParcel(second, "Horvath Anna", "XL", "NEW")

	// Full listing in insertion order.
	rec := suite.doJSON(http.MethodGet, "/parcel", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var all []servers.Parcel
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &all))
	suite.Require().Len(all, 3)
	suite.Equal(*firstParcel.Id, *all[0].Id)
	suite.Equal(*secondParcel.Id, *all[1].Id)
	suite.Equal(*thirdParcel.Id, *all[2].Id)

	// Per-customer listing.
	rec = suite.doJSON(http.MethodGet, fmt.Sprintf("/customer/%d/parcel", first), nil)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var owned []servers.Parcel
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &owned))
	suite.Require().Len(owned, 2)
	suite.Equal("Szabo Gabor", owned[0].RecipientName)
	suite.Equal("Toth Eszter", owned[1].RecipientName)

	// Updates store the validated status verbatim.
	update := suite.parcelBody(first, "Szabo Gabor", "S", "DELIVERED")
	rec = suite.doJSON(http.MethodPut, fmt.Sprintf("/parcel/%d", *firstParcel.Id), update)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var updated servers.Parcel
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	suite.Equal(servers.DELIVERED, updated.Status)

	// Removing the customer removes only its parcels.
	rec = suite.doJSON(http.MethodDelete, fmt.Sprintf("/customer/%d", first), nil)
	suite.Require().Equal(http.StatusNoContent, rec.Code)

	rec = suite.doJSON(http.MethodGet, "/parcel", nil)
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &all))
	suite.Require().Len(all, 1)
	suite.Equal(*thirdParcel.Id, *all[0].Id)

	rec = suite.doJSON(http.MethodGet, fmt.Sprintf("/parcel/%d", *firstParcel.Id), nil)
	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.assertErrorBody(rec, http.StatusNotFound, "Parcel not found")
}

func (suite *ServerIntegrationTestSuite) TestCreateParcel_InvalidFields_ReportsViolationCount() {
	owner := suite.createCustomer("Nagy Tibor", "nagy.tibor@example.com")

	body := suite.parcelBody(owner, "Kiss Ilona", "S", "NEW")
	body.ParcelSize = "XS"
	body.CashOnDelivery = 150001

	rec := suite.doJSON(http.MethodPost, "/parcel", body)

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	suite.assertErrorBody(rec, http.StatusBadRequest, "Validation failed for Parcel. Error count: 2")
}

func (suite *ServerIntegrationTestSuite) TestCreateParcel_DanglingCustomer_FailsAtStore() {
	rec := suite.doJSON(http.MethodPost, "/parcel", suite.parcelBody(9999, "Kiss Ilona", "S", "NEW"))

	suite.Require().Equal(http.StatusInternalServerError, rec.Code)
	suite.assertErrorBody(rec, http.StatusInternalServerError, "Failed to create parcel")
}

func (suite *ServerIntegrationTestSuite) TestGetCustomerParcels_MissingCustomer_ReturnsNotFound() {
	rec := suite.doJSON(http.MethodGet, "/customer/9999/parcel", nil)

	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.assertErrorBody(rec, http.StatusNotFound, "Customer not found")
}

func (suite *ServerIntegrationTestSuite) TestDeleteParcel_MissingParcel_ReturnsNotFound() {
	rec := suite.doJSON(http.MethodDelete, "/parcel/9999", nil)

	suite.Require().Equal(http.StatusNotFound, rec.Code)
	suite.assertErrorBody(rec, http.StatusNotFound, "Parcel not found")
}

func (suite *ServerIntegrationTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerIntegrationTestSuite) assertErrorBody(rec *httptest.ResponseRecorder, code int, message string) {
	var errBody servers.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errBody))
	suite.Equal(code, errBody.Code)
	suite.Equal(message, errBody.Message)
}

func (suite *ServerIntegrationTestSuite) customerBody(name string, zipCode int) servers.Customer {
	phone := "+36201234567"
	return servers.Customer{
		Name:        name,
		PhoneNumber: &phone,
		Email:       "nagy.tibor@example.com",
		City:        "Budapest",
		ZipCode:     zipCode,
		Address:     "Bem rakpart 16-19.",
	}
}

func (suite *ServerIntegrationTestSuite) parcelBody(
	customerID int64, recipientName string, size servers.ParcelParcelSize, status servers.ParcelStatus,
) servers.Parcel {
	phone := "+36301234567"
	return servers.Parcel{
		CustomerId:           customerID,
		RecipientName:        recipientName,
		RecipientPhoneNumber: &phone,
		RecipientEmail:       "recipient@example.com",
		RecipientCity:        "Debrecen",
		RecipientZipCode:     4024,
		RecipientAddress:     "Piac utca 20.",
		CashOnDelivery:       2500,
		ParcelSize:           size,
		Status:               status,
	}
}

func (suite *ServerIntegrationTestSuite) createCustomer(name, email string) int64 {
	body := suite.customerBody(name, 1023)
	body.Email = email

	rec := suite.doJSON(http.MethodPost, "/customer", body)
	suite.Require().Equal(http.StatusOK, rec.Code)

	var created servers.Customer
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	suite.Require().NotNil(created.Id)
	return *created.Id
}

func (suite *ServerIntegrationTestSuite) createParcel(
	customerID int64, recipientName string, size servers.ParcelParcelSize, status servers.ParcelStatus,
) servers.Parcel {
	rec := suite.doJSON(http.MethodPost, "/parcel", suite.parcelBody(customerID, recipientName, size, status))
	suite.Require().Equal(http.StatusOK, rec.Code)

	var created servers.Parcel
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	suite.Require().NotNil(created.Id)
	return created
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}
