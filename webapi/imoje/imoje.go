// Package imoje exposes the Imoje client operations over HTTP.
package imoje

import (
	"log/slog"
	"strconv"

	imojegw "github.com/amirasaad/paygate/pkg/gateway/imoje"
	"github.com/amirasaad/paygate/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// ShopInfoResponse is the payload of the shop info endpoint. Available is
// set only when a currency is requested.
type ShopInfoResponse struct {
	Service   *imojegw.ServiceModel   `json:"service"`
	Available []imojegw.PaymentMethod `json:"availablePaymentMethods,omitempty"`
}

// Routes registers the Imoje endpoints under /api/imoje/:code, where code
// selects the payment method configuration.
func Routes(app *fiber.App, provider *imojegw.ClientProvider, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	group := app.Group("/api/imoje/:code")
	group.Post("/transactions", CreateTransaction(provider, logger))
	group.Get("/transactions/status", TransactionStatus(provider, logger))
	group.Post("/refunds", Refund(provider, logger))
	group.Get("/services/:serviceId", ShopInfo(provider, logger))
}

// CreateTransaction relays a new transaction to the gateway.
func CreateTransaction(provider *imojegw.ClientProvider, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[imojegw.TransactionModel](c)
		if input == nil {
			return err // error response already written
		}
		client, err := provider.GetClient(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment method unavailable", err)
		}
		resp, err := client.CreateTransaction(c.UserContext(), *input)
		if err != nil {
			logger.Error("Imoje transaction failed", "code", c.Params("code"), "error", err)
			return common.ProblemDetailsJSON(c, "Transaction failed", err)
		}
		return common.RelayResponse(c, resp)
	}
}

// TransactionStatus relays the transaction behind the url query parameter.
func TransactionStatus(provider *imojegw.ClientProvider, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		client, err := provider.GetClient(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment method unavailable", err)
		}
		resp, err := client.GetTransactionData(c.UserContext(), c.Query("url"))
		if err != nil {
			logger.Error("Imoje status lookup failed", "code", c.Params("code"), "error", err)
			return common.ProblemDetailsJSON(c, "Status lookup failed", err)
		}
		return common.RelayResponse(c, resp)
	}
}

// Refund relays a refund to the URL given in the body.
func Refund(provider *imojegw.ClientProvider, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[common.RefundRequest](c)
		if input == nil {
			return err // error response already written
		}
		client, err := provider.GetClient(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment method unavailable", err)
		}
		resp, err := client.RefundTransaction(c.UserContext(), input.URL, input.ServiceID, input.Amount)
		if err != nil {
			logger.Error("Imoje refund failed", "code", c.Params("code"), "error", err)
			return common.ProblemDetailsJSON(c, "Refund failed", err)
		}
		return common.RelayResponse(c, resp)
	}
}

// ShopInfo returns the decoded shop service. With ?currency=PLN&amount=1000
// it also lists the payment methods able to take that amount.
func ShopInfo(provider *imojegw.ClientProvider, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var amount int64
		if raw := c.Query("amount"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 0 {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
					"Invalid amount", "amount must be a non-negative integer")
			}
			amount = parsed
		}

		client, err := provider.GetClient(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment method unavailable", err)
		}
		service, err := client.GetShopInfo(c.UserContext(), c.Params("serviceId"))
		if err != nil {
			logger.Error("Imoje shop info failed", "code", c.Params("code"), "error", err)
			return common.ProblemDetailsJSON(c, "Shop info failed", err)
		}

		out := ShopInfoResponse{Service: service}
		if currency := c.Query("currency"); currency != "" {
			out.Available = service.AvailablePaymentMethods(currency, amount)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Shop info fetched", out)
	}
}
