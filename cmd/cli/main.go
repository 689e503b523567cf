package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/amirasaad/paygate/infra/initializer"
	"github.com/amirasaad/paygate/pkg/config"
	"github.com/amirasaad/paygate/pkg/gateway"
	log "github.com/charmbracelet/log"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  shop-info <code> [service_id]
  status <imoje|ing> <code> <transaction_url>
  refund <imoje|ing> <code> <refund_url> <amount> [service_id]`

var errUsage = errors.New(usage)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("failed to load application configuration", "error", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal("failed to initialize dependencies", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, deps, os.Args[1:], os.Stdout); err != nil {
		cancel()
		log.Fatal(err)
	}
}

func run(ctx context.Context, deps *config.Deps, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "shop-info":
		return shopInfo(ctx, deps, args[1:], out)
	case "status":
		return status(ctx, deps, args[1:], out)
	case "refund":
		return refund(ctx, deps, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func shopInfo(ctx context.Context, deps *config.Deps, args []string, out io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	code := args[0]
	serviceID, err := serviceIDArg(ctx, deps, code, args, 1)
	if err != nil {
		return err
	}

	client, err := deps.Imoje.GetClient(ctx, code)
	if err != nil {
		return err
	}
	service, err := client.GetShopInfo(ctx, serviceID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(service)
}

func status(ctx context.Context, deps *config.Deps, args []string, out io.Writer) error {
	if len(args) < 3 {
		return errUsage
	}
	name, code, transactionURL := gateway.Name(args[0]), args[1], args[2]

	var (
		resp *http.Response
		err  error
	)
	switch name {
	case gateway.Imoje:
		client, cerr := deps.Imoje.GetClient(ctx, code)
		if cerr != nil {
			return cerr
		}
		resp, err = client.GetTransactionData(ctx, transactionURL)
	case gateway.Ing:
		client, cerr := deps.Ing.GetClient(ctx, code)
		if cerr != nil {
			return cerr
		}
		resp, err = client.GetTransactionData(ctx, transactionURL)
	default:
		return fmt.Errorf("unknown gateway %q\n%w", name, errUsage)
	}
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

func refund(ctx context.Context, deps *config.Deps, args []string, out io.Writer) error {
	if len(args) < 4 {
		return errUsage
	}
	name, code, refundURL := gateway.Name(args[0]), args[1], args[2]
	amount, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q", gateway.ErrInvalidInput, args[3])
	}
	serviceID, err := serviceIDArg(ctx, deps, code, args, 4)
	if err != nil {
		return err
	}

	var resp *http.Response
	switch name {
	case gateway.Imoje:
		client, cerr := deps.Imoje.GetClient(ctx, code)
		if cerr != nil {
			return cerr
		}
		resp, err = client.RefundTransaction(ctx, refundURL, serviceID, amount)
	case gateway.Ing:
		client, cerr := deps.Ing.GetClient(ctx, code)
		if cerr != nil {
			return cerr
		}
		resp, err = client.RefundTransaction(ctx, refundURL, serviceID, amount)
	default:
		return fmt.Errorf("unknown gateway %q\n%w", name, errUsage)
	}
	if err != nil {
		return err
	}
	return printResponse(resp, out)
}

// serviceIDArg returns args[i], or the service id configured for code.
func serviceIDArg(ctx context.Context, deps *config.Deps, code string, args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	cfg, err := deps.Configurations.GetPaymentMethodConfiguration(ctx, code)
	if err != nil {
		return "", err
	}
	if cfg.ServiceID == "" {
		return "", fmt.Errorf("%w: no service id given or configured for %q", gateway.ErrInvalidInput, code)
	}
	return cfg.ServiceID, nil
}

func printResponse(resp *http.Response, out io.Writer) error {
	defer resp.Body.Close() //nolint:errcheck
	if _, err := fmt.Fprintln(out, resp.Status); err != nil {
		return err
	}
	_, err := io.Copy(out, resp.Body)
	return err
}
