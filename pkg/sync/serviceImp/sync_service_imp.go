package serviceImp

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"silvacollect/apperr"
	"silvacollect/config"
	"silvacollect/entities"
	aptRepo "silvacollect/pkg/apontamento/repository"
	authRepo "silvacollect/pkg/auth/repository"
	"silvacollect/pkg/connectivity"
	"silvacollect/pkg/gateway"
	ordemRepo "silvacollect/pkg/ordem/repository"
	refRepo "silvacollect/pkg/reference/repository"
	"silvacollect/pkg/sync/service"
)

type syncSvc struct {
	gw       gateway.API
	monitor  *connectivity.Monitor
	refs     refRepo.ReferenceRepository
	ordens   ordemRepo.OrdemRepository
	apts     aptRepo.ApontamentoRepository
	usuarios authRepo.UsuarioRepository
	logger   *logrus.Logger

	// one pass of each kind at a time; a second trigger waits
	refreshMu sync.Mutex
	uploadMu  sync.Mutex
}

func New(
	gw gateway.API,
	monitor *connectivity.Monitor,
	refs refRepo.ReferenceRepository,
	ordens ordemRepo.OrdemRepository,
	apts aptRepo.ApontamentoRepository,
	usuarios authRepo.UsuarioRepository,
	logger *logrus.Logger,
) service.SyncService {
	return &syncSvc{
		gw:       gw,
		monitor:  monitor,
		refs:     refs,
		ordens:   ordens,
		apts:     apts,
		usuarios: usuarios,
		logger:   logger,
	}
}

// RefreshReferenceData replaces each reference collection from the central
// API, in a fixed order. A collection's failure is recorded and the pass
// moves on: earlier replacements stand, later collections still get their
// chance. Partial success is reported, never hidden.
func (s *syncSvc) RefreshReferenceData(ctx context.Context) service.RefreshResult {
	if !s.monitor.Online() {
		return service.RefreshResult{Status: service.StatusSkipped}
	}
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	steps := []struct {
		name string
		run  func(context.Context) (int, error)
	}{
		{"fazendas", s.refreshFazendas},
		{"frotas", s.refreshFrotas},
		{"colaboradores", s.refreshColaboradores},
		{"atividades", s.refreshAtividades},
		{"insumos", s.refreshInsumos},
		{"paradas", s.refreshParadas},
		{"ordensServico", s.refreshOrdens},
	}

	res := service.RefreshResult{Counts: map[string]int{}}
	for _, st := range steps {
		count, err := st.run(ctx)
		if err != nil {
			config.LogError(s.logger, "sync", "RefreshReferenceData", st.name, nil, err)
			res.Errors = append(res.Errors, service.CollectionError{
				Collection: st.name,
				Error:      err.Error(),
			})
			continue
		}
		res.Counts[st.name] = count
	}

	switch {
	case len(res.Errors) == 0:
		res.Status = service.StatusSuccess
	case len(res.Errors) == len(steps):
		res.Status = service.StatusFailed
	default:
		res.Status = service.StatusPartial
	}
	return res
}

func (s *syncSvc) refreshFazendas(ctx context.Context) (int, error) {
	rows, err := s.gw.Fazendas(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.Fazenda, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.Fazenda{
			ID:        row.Fazenda + "_" + row.Talhao,
			Fazenda:   row.Fazenda,
			Talhao:    row.Talhao,
			AreaTotal: row.AreaTotal,
		})
	}
	return len(out), s.refs.ReplaceFazendas(out)
}

func (s *syncSvc) refreshFrotas(ctx context.Context) (int, error) {
	rows, err := s.gw.Frotas(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.Frota, 0, len(rows))
	for i, row := range rows {
		out = append(out, entities.Frota{ID: uint(i + 1), Prefixo: row.Prefixo, Tipo: row.Tipo})
	}
	return len(out), s.refs.ReplaceFrotas(out)
}

// refreshColaboradores keeps only collaborators whose role reads as an
// operator; the device's dropdowns have no use for the rest.
func (s *syncSvc) refreshColaboradores(ctx context.Context) (int, error) {
	rows, err := s.gw.Colaboradores(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.Colaborador, 0, len(rows))
	for _, row := range rows {
		if !strings.Contains(strings.ToLower(row.Funcao), "operador") {
			continue
		}
		out = append(out, entities.Colaborador{
			ID:        uint(len(out) + 1),
			Nome:      row.Nome,
			Matricula: row.Matricula,
			Funcao:    row.Funcao,
		})
	}
	return len(out), s.refs.ReplaceColaboradores(out)
}

func (s *syncSvc) refreshAtividades(ctx context.Context) (int, error) {
	rows, err := s.gw.Atividades(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.Atividade, 0, len(rows))
	for i, row := range rows {
		out = append(out, entities.Atividade{
			ID:     uint(i + 1),
			Codigo: row.Codigo,
			Nome:   row.Atividade,
			Tarifa: row.Tarifa,
			Tipo:   row.Tipo,
		})
	}
	return len(out), s.refs.ReplaceAtividades(out)
}

func (s *syncSvc) refreshInsumos(ctx context.Context) (int, error) {
	rows, err := s.gw.Insumos(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.Insumo, 0, len(rows))
	for i, row := range rows {
		out = append(out, entities.Insumo{ID: uint(i + 1), Nome: row.Insumo})
	}
	return len(out), s.refs.ReplaceInsumos(out)
}

func (s *syncSvc) refreshParadas(ctx context.Context) (int, error) {
	rows, err := s.gw.CadastroParadas(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.Parada, 0, len(rows))
	for i, row := range rows {
		out = append(out, entities.Parada{ID: uint(i + 1), NomeParada: row.NomeParada, Tipo: row.Tipo})
	}
	return len(out), s.refs.ReplaceParadas(out)
}

func (s *syncSvc) refreshOrdens(ctx context.Context) (int, error) {
	rows, err := s.gw.Planejado(ctx)
	if err != nil {
		return 0, err
	}
	out := make([]entities.OrdemServico, 0, len(rows))
	for _, row := range rows {
		tipo := "mecanizado"
		if row.Maquina == "" {
			tipo = "manual"
		}
		status := row.Status
		if status == "" {
			status = entities.OSPendente
		}
		out = append(out, entities.OrdemServico{
			ID:        row.ID, // remote id is the stable key for work orders
			Numero:    row.OS,
			Tipo:      tipo,
			Prefixo:   row.Maquina,
			Operador:  row.Operador,
			Codigo:    row.Atividade,
			Servico:   row.Atividade,
			Fazenda:   row.Fazenda,
			Talhao:    row.Talhao,
			AreaTotal: row.AreaTotal,
			Status:    status,
		})
	}
	return len(out), s.ordens.ReplaceAll(out)
}

// UploadPending drains the queue of unacknowledged records, one POST each.
// A record's failure never blocks the rest. No retry loop here: the next
// invocation retries whatever stayed pending.
func (s *syncSvc) UploadPending(ctx context.Context) service.UploadResult {
	if !s.monitor.Online() {
		return service.UploadResult{Status: service.StatusSkipped}
	}
	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	pending, err := s.apts.Pending()
	if err != nil {
		config.LogError(s.logger, "sync", "UploadPending", "scan", nil, err)
		return service.UploadResult{
			Status: service.StatusFailed,
			Errors: []service.UploadError{{Error: err.Error()}},
		}
	}

	res := service.UploadResult{Pending: len(pending)}
	for i := range pending {
		a := pending[i]
		if err := s.PushRecord(ctx, &a); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, service.UploadError{
				ApontamentoID: a.ID,
				Error:         err.Error(),
			})
			continue
		}
		res.Synced++
	}

	switch {
	case res.Failed == 0:
		res.Status = service.StatusSuccess
	case res.Synced == 0:
		res.Status = service.StatusFailed
	default:
		res.Status = service.StatusPartial
	}
	return res
}

func (s *syncSvc) SyncAll(ctx context.Context) (service.RefreshResult, service.UploadResult) {
	refresh := s.RefreshReferenceData(ctx)
	upload := s.UploadPending(ctx)
	return refresh, upload
}

// PushRecord POSTs one record and marks it synced on acknowledgement. If the
// record carries stop events, a second POST follows tagged with the
// server-assigned id; that call is best-effort and never rolls back the
// already-accepted record.
func (s *syncSvc) PushRecord(ctx context.Context, a *entities.Apontamento) error {
	if a.SyncStatus == entities.SyncSynced {
		return nil
	}

	supervisor := s.loggedUser()
	payload := gateway.NewApontamentoPayload(a, supervisor, s.tarifaFor(a.Servico), s.logger)

	created, err := s.gw.CreateApontamento(ctx, payload)
	if err != nil {
		return err
	}
	if err := s.apts.MarkSynced(a.ID, time.Now()); err != nil {
		// The server holds the row but the local flag didn't flip; a later
		// pass will re-send and the server de-duplicates on client_ref.
		config.LogError(s.logger, "sync", "PushRecord", "mark synced", a.ID, err)
		return err
	}
	a.SyncStatus = entities.SyncSynced

	if len(a.Paradas) > 0 {
		paradas := gateway.NewParadasPayload(created.ID, a, supervisor)
		if err := s.gw.CreateParadasRendimento(ctx, paradas); err != nil {
			config.LogError(s.logger, "sync", "PushRecord", "paradas", a.ID, err)
		}
	}
	return nil
}

func (s *syncSvc) loggedUser() string {
	u, err := s.usuarios.Get()
	if err != nil || u.Nome == "" {
		return "Operador"
	}
	return u.Nome
}

func (s *syncSvc) tarifaFor(servico string) *decimal.Decimal {
	atv, err := s.refs.AtividadeByNome(servico)
	if err != nil {
		if !apperr.IsNotFound(err) {
			config.LogError(s.logger, "sync", "tarifaFor", servico, nil, err)
		}
		return nil
	}
	return atv.Tarifa
}
