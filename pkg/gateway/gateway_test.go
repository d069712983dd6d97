package gateway_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"silvacollect/apperr"
	"silvacollect/config"
	"silvacollect/entities"
	"silvacollect/pkg/gateway"
)

func TestPayloadFlatteningCapsInsumosAtFiveSlots(t *testing.T) {
	a := &entities.Apontamento{
		Data:      "2026-08-30",
		Operador:  "João",
		Servico:   "Adubação",
		Fazenda:   "Santa Rita",
		Talhao:    "T-01",
		ClientRef: "ref-1",
	}
	for i := 1; i <= 7; i++ {
		a.Insumos = append(a.Insumos, entities.InsumoUso{
			Insumo:     fmt.Sprintf("Insumo %d", i),
			Quantidade: decimal.NewFromInt(int64(i)),
		})
	}

	p := gateway.NewApontamentoPayload(a, "Maria", nil, config.GetLogger())

	require.NotNil(t, p.Insumo1)
	require.Equal(t, "Insumo 1", *p.Insumo1)
	require.NotNil(t, p.Insumo5)
	require.Equal(t, "Insumo 5", *p.Insumo5)
	require.True(t, p.Quantidade5.Equal(decimal.NewFromInt(5)))

	// entries 6 and 7 have no slot on the wire
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "Insumo 6")
	require.NotContains(t, string(raw), "Insumo 7")
}

func TestPayloadLooseRecordGetsAvulsoLabel(t *testing.T) {
	a := &entities.Apontamento{ClientRef: "ref-2"}
	p := gateway.NewApontamentoPayload(a, "Maria", nil, nil)
	require.Equal(t, "AVULSO", p.OS)
	require.Equal(t, "a faturar", p.Faturado)

	a.OrdemID = 17
	p = gateway.NewApontamentoPayload(a, "Maria", nil, nil)
	require.Equal(t, "OS-17", p.OS)
}

func TestClientSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"boom"}`)
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, 2*time.Second, config.GetLogger())
	_, err := c.Fazendas(context.Background())
	require.Error(t, err)
	require.True(t, apperr.IsNetwork(err))
	require.Contains(t, err.Error(), "api error 500")
}

func TestClientCreateApontamentoReturnsAssignedID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var p gateway.ApontamentoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		require.Equal(t, "ref-3", p.ClientRef)
		json.NewEncoder(w).Encode(map[string]any{"id": 42})
	}))
	defer srv.Close()

	c := gateway.New(srv.URL, 2*time.Second, config.GetLogger())
	created, err := c.CreateApontamento(context.Background(), gateway.ApontamentoPayload{ClientRef: "ref-3"})
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)
	require.Equal(t, "/apontamentos", gotPath)
}

func TestClientUnreachableHostIsNetworkError(t *testing.T) {
	c := gateway.New("http://127.0.0.1:1", 200*time.Millisecond, config.GetLogger())
	err := c.Ping(context.Background())
	require.Error(t, err)
	require.True(t, apperr.IsNetwork(err))
}
