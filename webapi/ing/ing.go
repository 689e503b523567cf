// Package ing exposes the ING client operations over HTTP.
package ing

import (
	"log/slog"

	inggw "github.com/amirasaad/paygate/pkg/gateway/ing"
	"github.com/amirasaad/paygate/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the ING endpoints under /api/ing/:code.
func Routes(app *fiber.App, provider *inggw.ClientProvider, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	group := app.Group("/api/ing/:code")
	group.Post("/transactions", CreateTransaction(provider, logger))
	group.Post("/transactions/:action", CreateTransaction(provider, logger))
	group.Get("/transactions/status", TransactionStatus(provider, logger))
	group.Post("/refunds", Refund(provider, logger))
}

// CreateTransaction relays a new transaction to {base}/{action}. Without an
// action path parameter the transaction endpoint is used.
func CreateTransaction(provider *inggw.ClientProvider, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[inggw.TransactionModel](c)
		if input == nil {
			return err // error response already written
		}
		action := c.Params("action", inggw.ActionTransaction)

		client, err := provider.GetClient(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment method unavailable", err)
		}
		resp, err := client.CreateTransaction(c.UserContext(), *input, action)
		if err != nil {
			logger.Error("ING transaction failed",
				"code", c.Params("code"),
				"action", action,
				"error", err,
			)
			return common.ProblemDetailsJSON(c, "Transaction failed", err)
		}
		return common.RelayResponse(c, resp)
	}
}

// TransactionStatus relays the transaction behind the url query parameter.
func TransactionStatus(provider *inggw.ClientProvider, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		client, err := provider.GetClient(c.UserContext(), c.Params("code"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Payment method unavailable", err)
		}
		resp, err := client.GetTransactionData(c.UserContext(), c.Query("url"))
		if err != nil {
			logger.Error("ING status lookup failed", "code", c.Params("code"), "error", err)
			return common.ProblemDetailsJSON(c, "Status lookup failed", err)
		}
		return common.RelayResponse(c, resp)
	}
}

// Refund relays a refund to the URL given in the body.
func Refund(provider *inggw.ClientProvider, logger *slog.Logger) fiber.Handler {
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
			logger.Error("ING refund failed", "code", c.Params("code"), "error", err)
			return common.ProblemDetailsJSON(c, "Refund failed", err)
		}
		return common.RelayResponse(c, resp)
	}
}
