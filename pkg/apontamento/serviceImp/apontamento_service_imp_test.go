package serviceImp_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"silvacollect/apperr"
	"silvacollect/config"
	"silvacollect/database"
	"silvacollect/entities"
	"silvacollect/pkg/apontamento/repository"
	"silvacollect/pkg/apontamento/repositoryImp"
	"silvacollect/pkg/apontamento/service"
	"silvacollect/pkg/apontamento/serviceImp"
	"silvacollect/pkg/connectivity"
	ordemRepo "silvacollect/pkg/ordem/repository"
	ordemRepoImp "silvacollect/pkg/ordem/repositoryImp"
	syncService "silvacollect/pkg/sync/service"
)

// stubSync replaces the real uploader so submission tests control the push
// outcome directly.
type stubSync struct {
	pushErr   error
	pushCalls int
}

func (s *stubSync) RefreshReferenceData(ctx context.Context) syncService.RefreshResult {
	return syncService.RefreshResult{Status: syncService.StatusSkipped}
}

func (s *stubSync) UploadPending(ctx context.Context) syncService.UploadResult {
	return syncService.UploadResult{Status: syncService.StatusSkipped}
}

func (s *stubSync) SyncAll(ctx context.Context) (syncService.RefreshResult, syncService.UploadResult) {
	return s.RefreshReferenceData(ctx), s.UploadPending(ctx)
}

func (s *stubSync) PushRecord(ctx context.Context, a *entities.Apontamento) error {
	s.pushCalls++
	if s.pushErr != nil {
		return s.pushErr
	}
	a.SyncStatus = entities.SyncSynced
	return nil
}

type env struct {
	svc    service.ApontamentoService
	repo   repository.ApontamentoRepository
	ordens ordemRepo.OrdemRepository
	sync   *stubSync
}

func setup(t *testing.T, online bool) *env {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	e := &env{
		repo:   repositoryImp.New(db),
		ordens: ordemRepoImp.New(db),
		sync:   &stubSync{},
	}
	e.svc = serviceImp.New(e.repo, e.ordens, connectivity.New(online), e.sync, config.GetLogger())
	return e
}

func candidate() service.NovoApontamento {
	return service.NovoApontamento{
		Tipo:      entities.TipoAvulso,
		Data:      "2026-08-30",
		Operador:  "João",
		Servico:   "Adubação",
		Fazenda:   "Santa Rita",
		Talhao:    "T-01",
		Produzido: decimal.NewFromFloat(10),
		AreaTotal: decimal.NewFromFloat(25.5),
	}
}

func TestSubmitRejectsOverproductionBeforePersisting(t *testing.T) {
	e := setup(t, true)

	in := candidate()
	in.Produzido = decimal.NewFromFloat(30)
	in.AreaTotal = decimal.NewFromFloat(25.5)

	_, err := e.svc.Submit(context.Background(), in)
	require.Error(t, err)
	require.True(t, apperr.IsValidation(err))
	require.Contains(t, err.Error(), "estouro de talhão")

	// nothing persisted, nothing pushed
	rows, err := e.repo.List(repository.ListFilter{})
	require.NoError(t, err)
	require.Empty(t, rows)
	require.Zero(t, e.sync.pushCalls)
}

func TestSubmitAcceptsProductionEqualToArea(t *testing.T) {
	e := setup(t, true)

	in := candidate()
	in.Produzido = decimal.NewFromFloat(25.5)
	in.AreaTotal = decimal.NewFromFloat(25.5)

	out, err := e.svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.True(t, out.Apontamento.Restante.IsZero())
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	e := setup(t, true)

	in := candidate()
	in.Fazenda = ""
	_, err := e.svc.Submit(context.Background(), in)
	require.Error(t, err)
	require.True(t, apperr.IsValidation(err))
}

func TestSubmitOfflineStoresPendingWithoutPushing(t *testing.T) {
	e := setup(t, false)

	out, err := e.svc.Submit(context.Background(), candidate())
	require.NoError(t, err)
	require.False(t, out.Synced)
	require.Zero(t, e.sync.pushCalls)

	got, err := e.repo.FindByID(out.Apontamento.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SyncPending, got.SyncStatus)
	require.True(t, got.CreatedOffline)
	require.NotEmpty(t, got.ClientRef)
}

func TestSubmitOnlinePushesImmediately(t *testing.T) {
	e := setup(t, true)

	out, err := e.svc.Submit(context.Background(), candidate())
	require.NoError(t, err)
	require.True(t, out.Synced)
	require.Equal(t, 1, e.sync.pushCalls)
	require.False(t, out.Apontamento.CreatedOffline)
}

func TestSubmitOnlinePushFailureKeepsRecordPending(t *testing.T) {
	e := setup(t, true)
	e.sync.pushErr = errors.New("api unreachable")

	out, err := e.svc.Submit(context.Background(), candidate())
	require.NoError(t, err) // the local capture still succeeded
	require.False(t, out.Synced)

	got, err := e.repo.FindByID(out.Apontamento.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SyncPending, got.SyncStatus)
}

func TestSubmitUpdatesWorkOrderStatus(t *testing.T) {
	e := setup(t, false)

	require.NoError(t, e.ordens.ReplaceAll([]entities.OrdemServico{{
		ID:     501,
		Numero: "OS-501",
		Tipo:   "mecanizado",
		Status: entities.OSPendente,
	}}))

	in := candidate()
	in.Tipo = entities.TipoPlanejado
	in.OrdemID = 501
	in.Status = entities.OSFinalizadoParcial

	_, err := e.svc.Submit(context.Background(), in)
	require.NoError(t, err)

	os, err := e.ordens.FindByID(501)
	require.NoError(t, err)
	require.Equal(t, entities.OSFinalizadoParcial, os.Status)
}

func TestSubmitDropsHalfFilledParadasAndEmptyInsumos(t *testing.T) {
	e := setup(t, false)

	in := candidate()
	in.Paradas = []entities.ParadaEvento{
		{Motivo: "Chuva", HoraInicio: "08:00", HoraFim: "09:30"},
		{Motivo: "Sem hora fim", HoraInicio: "10:00"},
	}
	in.Insumos = []entities.InsumoUso{
		{Insumo: "Ureia", Quantidade: decimal.NewFromFloat(2.5)},
		{Insumo: "", Quantidade: decimal.NewFromFloat(1)},
		{Insumo: "Calcário", Quantidade: decimal.Zero},
	}

	out, err := e.svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Apontamento.Paradas, 1)
	require.Len(t, out.Apontamento.Insumos, 1)
	require.Equal(t, "Ureia", out.Apontamento.Insumos[0].Insumo)
}

func TestSubmitComputesPlantioTotals(t *testing.T) {
	e := setup(t, false)

	in := candidate()
	in.Plantio = &entities.Plantio{Viveiro: "Viveiro Central", Clone: "CL-001", Plantadas: 900, Descarte: 100}

	out, err := e.svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.Apontamento.Plantio)
	require.Equal(t, 1000, out.Apontamento.Plantio.TotalMudas)
}
