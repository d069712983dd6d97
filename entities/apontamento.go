package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sync status values for Apontamento.
const (
	SyncPending = "pending"
	SyncSynced  = "synced"
)

// Apontamento types.
const (
	TipoAvulso     = "Avulso"
	TipoManual     = "Manual"
	TipoMecanizado = "Mecanizado"
	TipoPlanejado  = "Planejado"
)

// Apontamento is a field-logged unit of completed work. Rows are created
// locally and pushed to the central API; SyncStatus tracks acknowledgement.
// Paradas and Insumos are owned by the row and never persisted on their own.
type Apontamento struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ClientRef      string          `gorm:"index" json:"client_ref"` // uuid, sent upstream for de-duplication
	Tipo           string          `gorm:"index" json:"tipo"`
	Data           string          `gorm:"index" json:"data"` // YYYY-MM-DD
	OrdemID        uint            `json:"ordem_id"`          // 0 for loose records
	Operador       string          `json:"operador"`
	Prefixo        string          `json:"prefixo"`
	Codigo         string          `json:"codigo"`
	Servico        string          `json:"servico"`
	Fazenda        string          `json:"fazenda"`
	Talhao         string          `json:"talhao"`
	Produzido      decimal.Decimal `gorm:"type:numeric" json:"produzido"`
	AreaTotal      decimal.Decimal `gorm:"type:numeric" json:"area_total"`
	Restante       decimal.Decimal `gorm:"type:numeric" json:"restante"`
	Status         string          `json:"status"` // Em Andamento|Finalizado Parcial|Finalizado Total
	Observacao     string          `json:"observacao"`
	HoraInicio     string          `json:"hora_inicio"` // HH:MM
	HoraFinal      string          `json:"hora_final"`
	HorimetroIni   *float64        `json:"horimetro_inicial"`
	HorimetroFim   *float64        `json:"horimetro_final"`
	QtdColab       *int            `json:"qtd_colaboradores"`
	Paradas        []ParadaEvento  `gorm:"serializer:json" json:"paradas"`
	Insumos        []InsumoUso     `gorm:"serializer:json" json:"insumos"`
	Plantio        *Plantio        `gorm:"serializer:json" json:"plantio,omitempty"`
	SyncStatus     string          `gorm:"index;default:pending" json:"sync_status"`
	SyncedAt       *time.Time      `json:"synced_at"`
	CreatedOffline bool            `json:"created_offline"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ParadaEvento is a downtime interval inside an Apontamento.
type ParadaEvento struct {
	Motivo     string `json:"motivo"`
	HoraInicio string `json:"hora_inicio"` // HH:MM
	HoraFim    string `json:"hora_fim"`
}

// InsumoUso is one material usage entry. The list is variable-length here;
// the 5-slot cap exists only in the wire encoding.
type InsumoUso struct {
	Insumo     string          `json:"insumo"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// Plantio is the optional planting sub-record.
type Plantio struct {
	Viveiro    string `json:"viveiro"`
	Clone      string `json:"clone"`
	Plantadas  int    `json:"plantadas"`
	Descarte   int    `json:"descarte"`
	TotalMudas int    `json:"total_mudas"`
}
