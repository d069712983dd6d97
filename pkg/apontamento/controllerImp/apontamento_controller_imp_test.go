package controllerImp_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"silvacollect/apperr"
	"silvacollect/entities"
	"silvacollect/pkg/apontamento/controllerImp"
	"silvacollect/pkg/apontamento/repository"
	"silvacollect/pkg/apontamento/service"
	"silvacollect/pkg/gateway"
)

type stubService struct {
	submitErr error
	rows      []entities.Apontamento
}

func (s *stubService) Submit(ctx context.Context, in service.NovoApontamento) (service.SubmitOutcome, error) {
	if s.submitErr != nil {
		return service.SubmitOutcome{}, s.submitErr
	}
	return service.SubmitOutcome{Apontamento: &entities.Apontamento{ID: 1, ClientRef: "ref-1"}, Synced: true}, nil
}

func (s *stubService) List(f repository.ListFilter) ([]entities.Apontamento, error) {
	return s.rows, nil
}

type stubGateway struct {
	gateway.API
	remotos    []json.RawMessage
	remotosErr error
}

func (g *stubGateway) Apontamentos(ctx context.Context) ([]json.RawMessage, error) {
	return g.remotos, g.remotosErr
}

func doJSON(h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}
	return rec
}

func TestCreateReturns400OnValidationError(t *testing.T) {
	svc := &stubService{submitErr: apperr.Validation("estouro de talhão")}
	ctrl := controllerImp.New(svc, &stubGateway{})

	rec := doJSON(ctrl.Create, http.MethodPost, "/apontamentos", `{"tipo":"Avulso"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "estouro de talhão")
}

func TestCreateReturns500OnStorageError(t *testing.T) {
	svc := &stubService{submitErr: apperr.Storage("create", errors.New("disk full"))}
	ctrl := controllerImp.New(svc, &stubGateway{})

	rec := doJSON(ctrl.Create, http.MethodPost, "/apontamentos", `{"tipo":"Avulso"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateReturns201WithOutcome(t *testing.T) {
	ctrl := controllerImp.New(&stubService{}, &stubGateway{})

	rec := doJSON(ctrl.Create, http.MethodPost, "/apontamentos", `{"tipo":"Avulso","data":"2026-08-30"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var out service.SubmitOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.True(t, out.Synced)
	require.Equal(t, "ref-1", out.Apontamento.ClientRef)
}

func TestRemotosReturns502WhenGatewayFails(t *testing.T) {
	gw := &stubGateway{remotosErr: apperr.Network("GET /apontamentos", errors.New("timeout"))}
	ctrl := controllerImp.New(&stubService{}, gw)

	rec := doJSON(ctrl.Remotos, http.MethodGet, "/apontamentos/remotos", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestExportStreamsWorkbook(t *testing.T) {
	svc := &stubService{rows: []entities.Apontamento{{ID: 1, Tipo: entities.TipoAvulso}}}
	ctrl := controllerImp.New(svc, &stubGateway{})

	rec := doJSON(ctrl.Export, http.MethodGet, "/apontamentos/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "apontamentos.xlsx")
	require.NotZero(t, rec.Body.Len())
}
