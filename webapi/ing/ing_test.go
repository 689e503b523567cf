package ing

import (
	"net/http"
	"testing"

	"github.com/amirasaad/paygate/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type IngHandlersTestSuite struct {
	suite.Suite
	gw  *testutils.FakeGateway
	app *fiber.App
}

func (s *IngHandlersTestSuite) SetupTest() {
	s.gw = testutils.NewFakeGateway(s.T(), http.StatusAccepted, "application/json", `{"status":"pending"}`)
	deps := testutils.NewDeps(s.T(), s.gw.URL)
	s.app = fiber.New()
	Routes(s.app, deps.Ing, deps.Logger)
}

func (s *IngHandlersTestSuite) TestCreateTransaction_DefaultAction() {
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/api/ing/ing/transactions", testutils.TransactionJSON)
	body := testutils.ReadBody(s.T(), resp)

	s.Equal(http.StatusAccepted, resp.StatusCode)
	s.JSONEq(`{"status":"pending"}`, body)

	requests := s.gw.Requests()
	s.Require().Len(requests, 1)
	s.Equal("/M2/transaction", requests[0].Path)
	s.Equal("Bearer ing-token", requests[0].Authorization)
}

func (s *IngHandlersTestSuite) TestCreateTransaction_CustomAction() {
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/api/ing/ing/transactions/payment", testutils.TransactionJSON)
	_ = testutils.ReadBody(s.T(), resp)

	s.Equal(http.StatusAccepted, resp.StatusCode)
	requests := s.gw.Requests()
	s.Require().Len(requests, 1)
	s.Equal(http.MethodPost, requests[0].Method)
	s.Equal("/M2/payment", requests[0].Path)
}

func (s *IngHandlersTestSuite) TestCreateTransaction_InvalidBody() {
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/api/ing/ing/transactions", `not json`)
	_ = testutils.ReadBody(s.T(), resp)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Empty(s.gw.Requests())
}

func (s *IngHandlersTestSuite) TestTransactionStatus() {
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodGet,
		"/api/ing/ing/transactions/status?url="+s.gw.URL+"/M2/transaction/t9", "")
	body := testutils.ReadBody(s.T(), resp)

	s.Equal(http.StatusAccepted, resp.StatusCode)
	s.JSONEq(`{"status":"pending"}`, body)
	requests := s.gw.Requests()
	s.Require().Len(requests, 1)
	s.Equal(http.MethodGet, requests[0].Method)
	s.Equal("/M2/transaction/t9", requests[0].Path)
}

func (s *IngHandlersTestSuite) TestRefund() {
	refund := `{"url":"` + s.gw.URL + `/M2/transaction/t9/refund","serviceId":"svc2","amount":250}`
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/api/ing/ing/refunds", refund)
	_ = testutils.ReadBody(s.T(), resp)

	s.Equal(http.StatusAccepted, resp.StatusCode)
	requests := s.gw.Requests()
	s.Require().Len(requests, 1)
	s.JSONEq(`{"type":"refund","serviceId":"svc2","amount":250}`, requests[0].Body)
}

func (s *IngHandlersTestSuite) TestRefund_NegativeAmount() {
	refund := `{"url":"` + s.gw.URL + `/refund","serviceId":"svc2","amount":-5}`
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/api/ing/ing/refunds", refund)
	_ = testutils.ReadBody(s.T(), resp)

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Empty(s.gw.Requests())
}

func TestIngHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(IngHandlersTestSuite))
}

func TestRoutes_UnknownPaymentMethod(t *testing.T) {
	gw := testutils.NewFakeGateway(t, http.StatusOK, "", "")
	deps := testutils.NewDeps(t, gw.URL)
	app := fiber.New()
	Routes(app, deps.Ing, nil)

	resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/api/ing/nope/transactions/status?url="+gw.URL, "")
	body := testutils.ReadBody(t, resp)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "payment method configuration not found")
}
