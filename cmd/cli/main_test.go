package main

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/amirasaad/paygate/pkg/gateway"
	"github.com/amirasaad/paygate/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShopInfoUsesConfiguredServiceID(t *testing.T) {
	gw := testutils.NewFakeGateway(t, http.StatusOK, "application/json", `{"service":{"id":"svc1","name":"Shop"}}`)
	deps := testutils.NewDeps(t, gw.URL)
	out := &bytes.Buffer{}

	err := run(context.Background(), deps, []string{"shop-info", testutils.ImojeCode}, out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), `"id": "svc1"`)
	require.Len(t, gw.Requests(), 1)
	assert.Equal(t, "/M1/service/svc1", gw.Requests()[0].Path)
}

func TestRun_Status(t *testing.T) {
	gw := testutils.NewFakeGateway(t, http.StatusNotFound, "application/json", `{"error":"missing"}`)
	deps := testutils.NewDeps(t, gw.URL)
	out := &bytes.Buffer{}

	err := run(context.Background(), deps, []string{"status", "ing", testutils.IngCode, gw.URL + "/M2/transaction/t1"}, out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "404 Not Found")
	assert.Contains(t, out.String(), `{"error":"missing"}`)
}

func TestRun_Refund(t *testing.T) {
	gw := testutils.NewFakeGateway(t, http.StatusOK, "application/json", `{}`)
	deps := testutils.NewDeps(t, gw.URL)
	out := &bytes.Buffer{}

	err := run(context.Background(), deps,
		[]string{"refund", "imoje", testutils.ImojeCode, gw.URL + "/refund", "500", "svc9"}, out)
	require.NoError(t, err)

	require.Len(t, gw.Requests(), 1)
	assert.JSONEq(t, `{"type":"refund","serviceId":"svc9","amount":500}`, gw.Requests()[0].Body)
}

func TestRun_Errors(t *testing.T) {
	gw := testutils.NewFakeGateway(t, http.StatusOK, "", "")
	deps := testutils.NewDeps(t, gw.URL)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no command", nil, errUsage},
		{"unknown command", []string{"charge"}, errUsage},
		{"unknown gateway", []string{"status", "paypal", "x", gw.URL}, errUsage},
		{"missing arguments", []string{"refund", "imoje"}, errUsage},
		{"bad amount", []string{"refund", "imoje", testutils.ImojeCode, gw.URL, "ten"}, gateway.ErrInvalidInput},
		{"unknown code", []string{"shop-info", "missing"}, gateway.ErrConfigurationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), deps, tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, gw.Requests())
}
