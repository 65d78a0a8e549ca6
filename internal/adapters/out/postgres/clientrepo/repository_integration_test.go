package clientrepo_test

import (
	"context"
	"testing"

	"orderdelivery/internal/adapters/out/postgres/clientrepo"
	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/adapters/out/postgres/pgtest"
	"orderdelivery/internal/core/domain/model/client"
	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *clientrepo.GormClientRepository
	tracker    *pgtest.MockAggregateTracker
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *ClientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(pgtest.MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = clientrepo.NewGormClientRepository(suite.database.DB, suite.tracker)
}

func (suite *ClientRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := suite.T().Context()
	c := pgtest.NewClient()

	suite.Require().NoError(suite.repository.Add(ctx, c))

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.FullName(), stored.FullName())
	suite.Equal(c.TaxID(), stored.TaxID())
	suite.Equal(c.Phone(), stored.Phone())
	suite.Equal(c.Email(), stored.Email())
	suite.Equal(c.Address(), stored.Address())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", c.ID(), c)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestExists() {
	ctx := suite.T().Context()
	c := pgtest.NewClient()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	exists, err := suite.repository.Exists(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestAdd_DuplicateTaxID_ReturnsConflict() {
	ctx := suite.T().Context()
	first := pgtest.NewClient()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := client.NewClient(kernel.NewUUID(), client.Profile{
		FullName: "Someone Else",
		TaxID:    first.TaxID(),
		Address:  "Rua B, 2",
	})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestExistsByTaxID_ExcludesSelf() {
	ctx := suite.T().Context()
	c := pgtest.NewClient()
	suite.Require().NoError(suite.repository.Add(ctx, c))
	id := c.ID()

	taken, err := suite.repository.ExistsByTaxID(ctx, c.TaxID(), nil)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repository.ExistsByTaxID(ctx, c.TaxID(), &id)
	suite.Require().NoError(err)
	suite.False(taken)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := suite.T().Context()
	c := pgtest.NewClient()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.Update(client.Profile{
		FullName: "Renamed",
		TaxID:    c.TaxID(),
		Address:  "Rua Nova, 99",
	}))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Renamed", stored.FullName())
	suite.Equal("Rua Nova, 99", stored.Address())
	suite.Empty(stored.Email())
}

func (suite *ClientRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(suite.T().Context(), pgtest.NewClient())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestDelete() {
	ctx := suite.T().Context()
	c := pgtest.NewClient()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(suite.repository.Delete(ctx, c.ID()))

	_, err := suite.repository.Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ClientRepositoryIntegrationTestSuite) TestDelete_WithOrders_ReturnsConflict() {
	ctx := suite.T().Context()
	c := pgtest.NewClient()
	suite.Require().NoError(suite.repository.Add(ctx, c))
	orders := orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
	suite.Require().NoError(orders.Add(ctx, pgtest.NewOrder(c.ID())))

	err := suite.repository.Delete(ctx, c.ID())

	suite.Require().ErrorIs(err, errs.ErrConflict)
	exists, existsErr := suite.repository.Exists(ctx, c.ID())
	suite.Require().NoError(existsErr)
	suite.True(exists)
}

func TestClientRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ClientRepositoryIntegrationTestSuite))
}
