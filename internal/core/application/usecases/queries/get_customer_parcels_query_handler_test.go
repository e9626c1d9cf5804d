package queries_test

import (
	"context"
	"testing"
	"time"

	"smartpack/internal/adapters/out/postgres/customerrepo"
	"smartpack/internal/adapters/out/postgres/parcelrepo"
	"smartpack/internal/core/application/usecases/queries"
	"smartpack/internal/core/domain/model/customer"
	"smartpack/internal/core/domain/model/parcel"
	"smartpack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerParcelsQueryHandler
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetCustomerParcelsQueryHandler(db)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customer CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnedParcelsInInsertionOrder() {
	first := suite.saveCustomer("Nagy Tibor", "nagy.tibor@example.com")
	second := suite.saveCustomer("Kiss Ilona", "kiss.ilona@example.com")

	firstParcels := suite.saveParcels(
		suite.newParcel(first.ID(), "Szabo Gabor", "S", "NEW"),
		suite.newParcel(first.ID(), "Toth Eszter", "L", "DELIVERED"),
	)
	suite.saveParcels(suite.newParcel(second.ID(), "Horvath Anna", "M", "NEW"))

	query := queries.NewGetCustomerParcelsQuery(first.ID())

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	for i, p := range firstParcels {
		suite.Equal(p.ID(), result[i].ID)
		suite.Equal(first.ID(), result[i].CustomerID)
		suite.Equal(p.RecipientName(), result[i].RecipientName)
		suite.Equal(p.Size().String(), result[i].ParcelSize)
		suite.Equal(p.Status().String(), result[i].Status)
	}
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_CustomerWithoutParcels_ReturnsEmptySlice() {
	owner := suite.saveCustomer("Nagy Tibor", "nagy.tibor@example.com")

	query := queries.NewGetCustomerParcelsQuery(owner.ID())

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_MissingCustomer_ReturnsNotFound() {
	query := queries.NewGetCustomerParcelsQuery(9999)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerParcelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerParcelsQuery constructor")
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) saveCustomer(name, email string) *customer.Customer {
	c, err := customer.New(name, "+36201234567", email, "Budapest", 1023, "Bem rakpart 16-19.")
	suite.Require().NoError(err)

	repo := customerrepo.NewGormCustomerRepository(suite.db, &mockAggregateTracker{})
	persisted, err := repo.Add(context.Background(), c)
	suite.Require().NoError(err)
	return persisted
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) newParcel(
	customerID int64, recipientName, sizeTag, statusTag string,
) *parcel.Parcel {
	p, err := parcel.New(
		customerID,
		recipientName,
		"+36301234567",
		"recipient@example.com",
		"Debrecen",
		4024,
		"Piac utca 20.",
		2500,
		sizeTag,
		statusTag,
	)
	suite.Require().NoError(err)
	return p
}

func (suite *GetCustomerParcelsQueryHandlerTestSuite) saveParcels(parcels ...*parcel.Parcel) []*parcel.Parcel {
	repo := parcelrepo.NewGormParcelRepository(suite.db, &mockAggregateTracker{})
	saved := make([]*parcel.Parcel, 0, len(parcels))
	for _, p := range parcels {
		persisted, err := repo.Add(context.Background(), p)
		suite.Require().NoError(err)
		saved = append(saved, persisted)
	}
	return saved
}

func TestGetCustomerParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerParcelsQueryHandlerTestSuite))
}
