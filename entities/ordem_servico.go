package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdemServico status values. Status only moves through a submitted
// Apontamento that references the OS, never by direct edits.
const (
	OSPendente         = "Pendente"
	OSEmAndamento      = "Em Andamento"
	OSFinalizadoParcial = "Finalizado Parcial"
	OSFinalizadoTotal  = "Finalizado Total"
)

// OrdemServico is a planned work assignment pulled from the central API on
// each cache pass. The ID is the remote id; rows are fully replaced on sync.
type OrdemServico struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Numero    string          `json:"numero"`
	Tipo      string          `gorm:"index" json:"tipo"` // manual|mecanizado
	Prefixo   string          `json:"prefixo"`
	Operador  string          `json:"operador"`
	Codigo    string          `json:"codigo"`
	Servico   string          `json:"servico"`
	Fazenda   string          `json:"fazenda"`
	Talhao    string          `json:"talhao"`
	AreaTotal decimal.Decimal `gorm:"type:numeric" json:"area_total"`
	Status    string          `gorm:"index" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
