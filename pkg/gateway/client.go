// Package gateway is the stateless HTTP layer against the central API.
// It does request/response translation and error surfacing only: no retries,
// no caching, no knowledge of the local store.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"silvacollect/apperr"
)

// API is the slice of the central service consumed by the device.
type API interface {
	Ping(ctx context.Context) error
	Fazendas(ctx context.Context) ([]FazendaRow, error)
	Frotas(ctx context.Context) ([]FrotaRow, error)
	Colaboradores(ctx context.Context) ([]ColaboradorRow, error)
	Atividades(ctx context.Context) ([]AtividadeRow, error)
	Insumos(ctx context.Context) ([]InsumoRow, error)
	CadastroParadas(ctx context.Context) ([]ParadaRow, error)
	Planejado(ctx context.Context) ([]PlanejadoRow, error)
	Apontamentos(ctx context.Context) ([]json.RawMessage, error)
	CreateApontamento(ctx context.Context, p ApontamentoPayload) (CreatedApontamento, error)
	CreateParadasRendimento(ctx context.Context, p ParadasRendimentoPayload) error
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

func New(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) Ping(ctx context.Context) error {
	var out map[string]any
	return c.get(ctx, "/test", &out)
}

func (c *Client) Fazendas(ctx context.Context) ([]FazendaRow, error) {
	var out []FazendaRow
	return out, c.get(ctx, "/fazendas", &out)
}

func (c *Client) Frotas(ctx context.Context) ([]FrotaRow, error) {
	var out []FrotaRow
	return out, c.get(ctx, "/frotas", &out)
}

func (c *Client) Colaboradores(ctx context.Context) ([]ColaboradorRow, error) {
	var out []ColaboradorRow
	return out, c.get(ctx, "/colaboradores", &out)
}

func (c *Client) Atividades(ctx context.Context) ([]AtividadeRow, error) {
	var out []AtividadeRow
	return out, c.get(ctx, "/atividades", &out)
}

func (c *Client) Insumos(ctx context.Context) ([]InsumoRow, error) {
	var out []InsumoRow
	return out, c.get(ctx, "/insumos", &out)
}

func (c *Client) CadastroParadas(ctx context.Context) ([]ParadaRow, error) {
	var out []ParadaRow
	return out, c.get(ctx, "/cadastro-paradas", &out)
}

func (c *Client) Planejado(ctx context.Context) ([]PlanejadoRow, error) {
	var out []PlanejadoRow
	return out, c.get(ctx, "/planejado", &out)
}

// Apontamentos lists the server-acknowledged records. Rows are passed through
// untyped; the device never merges them into its own store.
func (c *Client) Apontamentos(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	return out, c.get(ctx, "/apontamentos", &out)
}

func (c *Client) CreateApontamento(ctx context.Context, p ApontamentoPayload) (CreatedApontamento, error) {
	var out CreatedApontamento
	return out, c.post(ctx, "/apontamentos", p, &out)
}

func (c *Client) CreateParadasRendimento(ctx context.Context, p ParadasRendimentoPayload) error {
	return c.post(ctx, "/paradas-rendimento", p, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperr.Network("GET "+path, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, path, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return apperr.Network("POST "+path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return apperr.Network("POST "+path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Network(req.Method+" "+path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.Network(req.Method+" "+path,
			fmt.Errorf("api error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperr.Network(req.Method+" "+path, err)
	}
	return nil
}
