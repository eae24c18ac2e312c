//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"treesync/internal/handler/api"
	"treesync/internal/pkg/errs"
	"treesync/internal/usecase/commands"
	"treesync/internal/usecase/queries"
	commandsmock "treesync/tests/mock/commands"
	queriesmock "treesync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SyncHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSyncCommands
	mockQueries  *queriesmock.MockOrderQueries
}

func (s *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSyncCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)

	syncHandler := api.NewSyncHandler(s.mockCommands)
	orderHandler := api.NewOrderHandler(s.mockQueries)

	s.router.POST("/accounts/:id/sync", syncHandler.Run)
	s.router.POST("/accounts/:id/discover", syncHandler.Discover)
	s.router.GET("/accounts/:id/orders", orderHandler.ListByAccount)
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

func (s *SyncHandlerTestSuite) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SyncHandlerTestSuite) TestRun() {
	accountID := uuid.New()

	s.Run("returns counters on success", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), accountID).
			Return(commands.SyncResult{Fetched: 12, Upserted: 10, Deleted: 2, Pages: 3, SubWindows: 8}, nil)

		w := s.do(http.MethodPost, "/accounts/"+accountID.String()+"/sync")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"fetched":12`)
		s.Contains(w.Body.String(), `"deleted":2`)
	})

	s.Run("rejects malformed account id", func() {
		w := s.do(http.MethodPost, "/accounts/not-a-uuid/sync")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("maps unknown account to 404", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), accountID).
			Return(commands.SyncResult{}, errs.ErrAccountNotFound)

		w := s.do(http.MethodPost, "/accounts/"+accountID.String()+"/sync")
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("maps open breaker to 503", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), accountID).
			Return(commands.SyncResult{}, errs.ErrCircuitOpen)

		w := s.do(http.MethodPost, "/accounts/"+accountID.String()+"/sync")
		s.Equal(http.StatusServiceUnavailable, w.Code)
	})

	s.Run("maps aborted run to 502 with partial counters", func() {
		s.mockCommands.EXPECT().Run(gomock.Any(), accountID).
			Return(commands.SyncResult{Pages: 4, SubWindows: 2},
				errs.Mark(errs.ErrUpstreamTimeout, errs.ErrReconciliationPartial))

		w := s.do(http.MethodPost, "/accounts/"+accountID.String()+"/sync")
		s.Equal(http.StatusBadGateway, w.Code)
		s.Contains(w.Body.String(), `"pages":4`)
	})
}

func (s *SyncHandlerTestSuite) TestDiscover() {
	accountID := uuid.New()

	s.Run("returns ranked candidates", func() {
		s.mockCommands.EXPECT().DiscoverCatalogTarget(gomock.Any(), accountID).
			Return(commands.DiscoveryResult{
				Best: commands.DiscoveryCandidate{ProductID: "p-1", Name: "Click a Tree", Match: commands.MatchExact},
				Candidates: []commands.DiscoveryCandidate{
					{ProductID: "p-1", Name: "Click a Tree", Match: commands.MatchExact},
				},
			}, nil)

		w := s.do(http.MethodPost, "/accounts/"+accountID.String()+"/discover")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"product_id":"p-1"`)
		s.Contains(w.Body.String(), `"match":"exact"`)
	})

	s.Run("maps empty catalog to 404", func() {
		s.mockCommands.EXPECT().DiscoverCatalogTarget(gomock.Any(), accountID).
			Return(commands.DiscoveryResult{}, errs.ErrCatalogTargetNotFound)

		w := s.do(http.MethodPost, "/accounts/"+accountID.String()+"/discover")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *SyncHandlerTestSuite) TestListOrders() {
	accountID := uuid.New()

	s.Run("returns lines with totals", func() {
		s.mockQueries.EXPECT().ListByAccount(gomock.Any(), accountID).
			Return(&queries.AccountOrdersView{
				AccountID:  accountID,
				Lines:      []queries.OrderLineView{{ExternalID: "l-1", Quantity: 3, Amount: 17.70, Currency: "EUR"}},
				TotalTrees: 3,
			}, nil)

		w := s.do(http.MethodGet, "/accounts/"+accountID.String()+"/orders")
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"total_trees":3`)
		s.Contains(w.Body.String(), `"external_id":"l-1"`)
	})

	s.Run("maps unknown account to 404", func() {
		s.mockQueries.EXPECT().ListByAccount(gomock.Any(), accountID).
			Return(nil, errs.ErrAccountNotFound)

		w := s.do(http.MethodGet, "/accounts/"+accountID.String()+"/orders")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
