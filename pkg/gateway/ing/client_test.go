package ing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/paygate/pkg/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validTransaction() TransactionModel {
	return TransactionModel{
		Type:             "sale",
		ServiceID:        "svc1",
		Amount:           2500,
		Currency:         "PLN",
		OrderID:          "000777",
		SuccessReturnURL: "https://shop.example/success",
		FailureReturnURL: "https://shop.example/failure",
		Customer: Customer{
			FirstName: "Anna",
			LastName:  "Nowak",
			Email:     "anna@example.com",
		},
	}
}

type ClientTestSuite struct {
	suite.Suite
	srv      *httptest.Server
	status   int
	body     string
	method   string
	path     string
	header   http.Header
	received string
	calls    int
}

func (s *ClientTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.body = `{}`
	s.calls = 0
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		s.calls++
		s.method = r.Method
		s.path = r.URL.Path
		s.header = r.Header.Clone()
		s.received = string(b)
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ClientTestSuite) client(token string) *Client {
	return NewClient(gateway.NewJSONParamsProvider(), s.srv.Client(), token, s.srv.URL+"/M1", WithLogger(discardLogger()))
}

func (s *ClientTestSuite) TestCreateTransaction() {
	model := validTransaction()

	resp, err := s.client("tok").CreateTransaction(context.Background(), model, ActionTransaction)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	expected, _ := json.Marshal(model)
	s.Equal(1, s.calls)
	s.Equal(http.MethodPost, s.method)
	s.Equal("/M1/transaction", s.path)
	s.Equal(string(expected), s.received)
	s.Equal("Bearer tok", s.header.Get("Authorization"))
}

func (s *ClientTestSuite) TestCreateTransaction_CustomAction() {
	resp, err := s.client("tok").CreateTransaction(context.Background(), validTransaction(), "/payment/link")
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal("/M1/payment/link", s.path)
}

func (s *ClientTestSuite) TestCreateTransaction_WithoutToken() {
	resp, err := s.client("").CreateTransaction(context.Background(), validTransaction(), ActionTransaction)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Empty(s.header.Get("Authorization"))
}

func (s *ClientTestSuite) TestCreateTransaction_MissingAction() {
	for _, action := range []string{"", "/", "//"} {
		_, err := s.client("tok").CreateTransaction(context.Background(), validTransaction(), action)
		s.ErrorIs(err, gateway.ErrInvalidInput, "action %q", action)
	}
	s.Equal(0, s.calls)
}

func (s *ClientTestSuite) TestCreateTransaction_ErrorStatusPassesThrough() {
	s.status = http.StatusBadRequest
	s.body = `{"error":"invalid"}`

	resp, err := s.client("tok").CreateTransaction(context.Background(), validTransaction(), ActionTransaction)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *ClientTestSuite) TestGetTransactionData() {
	resp, err := s.client("tok").GetTransactionData(context.Background(), s.srv.URL+"/M1/transaction/tx-9")
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.MethodGet, s.method)
	s.Equal("/M1/transaction/tx-9", s.path)
	s.Empty(s.received)
}

func (s *ClientTestSuite) TestRefundTransaction() {
	resp, err := s.client("tok").RefundTransaction(context.Background(), s.srv.URL+"/M1/transaction/tx-9/refund", "svc1", 500)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.MethodPost, s.method)
	s.JSONEq(`{"type":"refund","serviceId":"svc1","amount":500}`, s.received)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestClient_TransportErrorIsBadRequest(t *testing.T) {
	cause := errors.New("tls: handshake failure")
	httpClient := new(MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(nil, cause)
	client := NewClient(gateway.NewJSONParamsProvider(), httpClient, "tok", "https://gw.example/M1", WithLogger(discardLogger()))

	_, err := client.CreateTransaction(context.Background(), validTransaction(), ActionTransaction)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, gateway.ErrBadRequest)
	assert.NotErrorIs(t, err, errors.New("imoje bad request"))

	_, err = client.GetTransactionData(context.Background(), "https://gw.example/M1/transaction/1")
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = client.RefundTransaction(context.Background(), "https://gw.example/M1/transaction/1/refund", "svc1", 1)
	assert.ErrorIs(t, err, ErrBadRequest)

	httpClient.AssertNumberOfCalls(t, "Do", 3)
}

func TestClient_InvalidModel(t *testing.T) {
	httpClient := new(MockHTTPClient)
	client := NewClient(gateway.NewJSONParamsProvider(), httpClient, "tok", "https://gw.example/M1", WithLogger(discardLogger()))
	model := validTransaction()
	model.Amount = -10

	_, err := client.CreateTransaction(context.Background(), model, ActionTransaction)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)
	httpClient.AssertNotCalled(t, "Do", mock.Anything)
}
