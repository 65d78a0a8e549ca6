package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdelivery/internal/adapters/out/postgres/clientrepo"
	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/adapters/out/postgres/pgtest"
	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *pgtest.MockAggregateTracker
	client     *client.Client
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(pgtest.MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)

	tracker := new(pgtest.MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.client = pgtest.NewClient()
	suite.Require().NoError(clientrepo.NewGormClientRepository(suite.database.DB, tracker).Add(context.Background(), suite.client))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := suite.T().Context()
	testOrder := pgtest.NewOrder(suite.client.ID())
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)

	suite.Require().NoError(err)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Rejected() {
	err := suite.repository.Add(suite.T().Context(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownClient_ReturnsConflict() {
	testOrder := pgtest.NewOrder(kernel.NewUUID())

	err := suite.repository.Add(suite.T().Context(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsExactValues() {
	ctx := suite.T().Context()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	testOrder, err := order.NewOrder(kernel.NewUUID(), order.Details{
		ClientID:     suite.client.ID(),
		Date:         time.Date(2024, time.February, 29, 18, 45, 0, 0, time.UTC),
		DeliveryType: order.Urgent,
		DistanceKm:   decimal.RequireFromString("123.456"),
		WeightKg:     decimal.RequireFromString("50.001"),
		RatePerKm:    decimal.RequireFromString("0.75"),
		RatePerKg:    decimal.RequireFromString("1.1"),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	stored, err := suite.repository.Get(ctx, testOrder.ID())

	suite.Require().NoError(err)
	suite.True(stored.IsEqual(testOrder))
	suite.True(stored.ClientID().IsEqual(suite.client.ID()))
	suite.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), stored.Date().UTC())
	suite.Equal(order.Urgent, stored.DeliveryType())
	suite.Equal("123.456", stored.DistanceKm().String())
	suite.Equal("50.001", stored.WeightKg().String())
	suite.Equal("0.75", stored.RatePerKm().String())
	suite.Equal("1.1", stored.RatePerKg().String())
	suite.Empty(stored.DomainEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidID() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
