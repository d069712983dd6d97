package serviceImp

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"silvacollect/apperr"
	"silvacollect/config"
	"silvacollect/entities"
	"silvacollect/pkg/apontamento/repository"
	"silvacollect/pkg/apontamento/service"
	"silvacollect/pkg/connectivity"
	ordemRepo "silvacollect/pkg/ordem/repository"
	syncSvc "silvacollect/pkg/sync/service"
)

var validate = validator.New()

type apontamentoSvc struct {
	repo    repository.ApontamentoRepository
	ordens  ordemRepo.OrdemRepository
	monitor *connectivity.Monitor
	sync    syncSvc.SyncService
	logger  *logrus.Logger
}

func New(
	repo repository.ApontamentoRepository,
	ordens ordemRepo.OrdemRepository,
	monitor *connectivity.Monitor,
	sync syncSvc.SyncService,
	logger *logrus.Logger,
) service.ApontamentoService {
	return &apontamentoSvc{repo: repo, ordens: ordens, monitor: monitor, sync: sync, logger: logger}
}

func (s *apontamentoSvc) Submit(ctx context.Context, in service.NovoApontamento) (service.SubmitOutcome, error) {
	if err := s.check(in); err != nil {
		return service.SubmitOutcome{}, err
	}

	a := s.build(in)

	// Store-then-sync, never the reverse: offline capture must not lose data.
	if err := s.repo.Create(a); err != nil {
		return service.SubmitOutcome{}, err
	}

	if a.OrdemID != 0 && a.Status != "" {
		// Work-order status only ever moves through a submitted record.
		if err := s.ordens.UpdateStatus(a.OrdemID, a.Status); err != nil {
			config.LogError(s.logger, "apontamento", "Submit", "update ordem status", a.OrdemID, err)
		}
	}

	outcome := service.SubmitOutcome{Apontamento: a}
	if s.monitor.Online() {
		if err := s.sync.PushRecord(ctx, a); err != nil {
			// Stays pending; the uploader sweeps it up later.
			config.LogError(s.logger, "apontamento", "Submit", "immediate push", a.ClientRef, err)
		} else {
			outcome.Synced = true
		}
	}
	return outcome, nil
}

// check gates the candidate before anything is persisted.
func (s *apontamentoSvc) check(in service.NovoApontamento) error {
	if err := validate.Struct(in); err != nil {
		return apperr.Validation("campos obrigatórios ausentes: %v", err)
	}
	if in.Produzido.IsNegative() {
		return apperr.Validation("produzido não pode ser negativo")
	}
	if in.AreaTotal.GreaterThan(decimal.Zero) && in.Produzido.GreaterThan(in.AreaTotal) {
		return apperr.Validation(
			"estouro de talhão: produzido (%s) maior que a área total (%s)",
			in.Produzido.String(), in.AreaTotal.String(),
		)
	}
	return nil
}

func (s *apontamentoSvc) build(in service.NovoApontamento) *entities.Apontamento {
	a := &entities.Apontamento{
		ClientRef:      uuid.NewString(),
		Tipo:           in.Tipo,
		Data:           in.Data,
		OrdemID:        in.OrdemID,
		Operador:       in.Operador,
		Prefixo:        in.Prefixo,
		Codigo:         in.Codigo,
		Servico:        in.Servico,
		Fazenda:        in.Fazenda,
		Talhao:         in.Talhao,
		Produzido:      in.Produzido,
		AreaTotal:      in.AreaTotal,
		Restante:       in.AreaTotal.Sub(in.Produzido),
		Status:         in.Status,
		Observacao:     in.Observacao,
		HoraInicio:     in.HoraInicio,
		HoraFinal:      in.HoraFinal,
		HorimetroIni:   in.HorimetroIni,
		HorimetroFim:   in.HorimetroFim,
		QtdColab:       in.QtdColab,
		Paradas:        completeParadas(in.Paradas),
		Insumos:        usableInsumos(in.Insumos),
		SyncStatus:     entities.SyncPending,
		CreatedOffline: !s.monitor.Online(),
	}
	if in.Plantio != nil {
		p := *in.Plantio
		p.TotalMudas = p.Plantadas + p.Descarte
		a.Plantio = &p
	}
	return a
}

// completeParadas keeps only fully filled stop events; half-filled rows are
// UI leftovers, not data.
func completeParadas(in []entities.ParadaEvento) []entities.ParadaEvento {
	out := make([]entities.ParadaEvento, 0, len(in))
	for _, p := range in {
		if p.Motivo != "" && p.HoraInicio != "" && p.HoraFim != "" {
			out = append(out, p)
		}
	}
	return out
}

func usableInsumos(in []entities.InsumoUso) []entities.InsumoUso {
	out := make([]entities.InsumoUso, 0, len(in))
	for _, i := range in {
		if i.Insumo != "" && i.Quantidade.GreaterThan(decimal.Zero) {
			out = append(out, i)
		}
	}
	return out
}

func (s *apontamentoSvc) List(f repository.ListFilter) ([]entities.Apontamento, error) {
	return s.repo.List(f)
}
