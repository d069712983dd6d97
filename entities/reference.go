package entities

import "github.com/shopspring/decimal"

// Reference rows are read-only on the device: the cache synchronizer clears
// and re-inserts each collection wholesale, so none carry gorm timestamps.

// Fazenda is one farm/plot pair. Key is the "fazenda_talhao" composite so a
// re-sync de-duplicates naturally.
type Fazenda struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Fazenda   string          `json:"fazenda"`
	Talhao    string          `json:"talhao"`
	AreaTotal decimal.Decimal `gorm:"type:numeric" json:"area_total"`
}

type Frota struct {
	ID      uint   `gorm:"primaryKey" json:"id"` // 1-based sequence assigned at cache fill
	Prefixo string `json:"prefixo"`
	Tipo    string `json:"tipo"`
}

type Colaborador struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	Funcao    string `json:"funcao"`
}

type Atividade struct {
	ID     uint             `gorm:"primaryKey" json:"id"`
	Codigo string           `json:"codigo"`
	Nome   string           `json:"nome"`
	Tarifa *decimal.Decimal `gorm:"type:numeric" json:"tarifa"`
	Tipo   string           `json:"tipo"` // plantio|manutencao|...
}

type Insumo struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `json:"nome"`
}

// Viveiro and Clone have no remote endpoint; they are seeded locally at
// bootstrap and kept out of the cache pass.
type Viveiro struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `json:"nome"`
}

type Clone struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

// Parada is a stop-reason definition (cadastro de paradas).
type Parada struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	NomeParada string `json:"nome_parada"`
	Tipo       string `json:"tipo"` // programada|nao_programada|climatica|outros
}
