package service

import (
	"context"

	"github.com/shopspring/decimal"

	"silvacollect/entities"
	"silvacollect/pkg/apontamento/repository"
)

// NovoApontamento is a submission candidate as assembled by the form UI.
type NovoApontamento struct {
	Tipo         string                  `json:"tipo" validate:"required,oneof=Avulso Manual Mecanizado Planejado"`
	Data         string                  `json:"data" validate:"required"`
	OrdemID      uint                    `json:"ordem_id"`
	Operador     string                  `json:"operador" validate:"required"`
	Prefixo      string                  `json:"prefixo"`
	Codigo       string                  `json:"codigo"`
	Servico      string                  `json:"servico" validate:"required"`
	Fazenda      string                  `json:"fazenda" validate:"required"`
	Talhao       string                  `json:"talhao" validate:"required"`
	Produzido    decimal.Decimal         `json:"produzido"`
	AreaTotal    decimal.Decimal         `json:"area_total"`
	Status       string                  `json:"status"`
	Observacao   string                  `json:"observacao"`
	HoraInicio   string                  `json:"hora_inicio"`
	HoraFinal    string                  `json:"hora_final"`
	HorimetroIni *float64                `json:"horimetro_inicial"`
	HorimetroFim *float64                `json:"horimetro_final"`
	QtdColab     *int                    `json:"qtd_colaboradores"`
	Paradas      []entities.ParadaEvento `json:"paradas"`
	Insumos      []entities.InsumoUso    `json:"insumos"`
	Plantio      *entities.Plantio       `json:"plantio"`
}

// SubmitOutcome reports where the record landed: always in the local store,
// and on the server too when Synced is true.
type SubmitOutcome struct {
	Apontamento *entities.Apontamento `json:"apontamento"`
	Synced      bool                  `json:"synced"`
}

type ApontamentoService interface {
	// Submit validates the candidate, persists it locally (always, first),
	// and attempts an immediate upload when the device is online. A failed
	// upload is not an error: the record simply stays pending.
	Submit(ctx context.Context, in NovoApontamento) (SubmitOutcome, error)
	List(f repository.ListFilter) ([]entities.Apontamento, error)
}
