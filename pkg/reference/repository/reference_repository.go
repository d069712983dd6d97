package repository

import "silvacollect/entities"

// ReferenceRepository owns the read-mostly lookup collections. Replace*
// methods clear and refill a collection as one transaction; reads feed the
// form dropdowns while offline.
type ReferenceRepository interface {
	ReplaceFazendas(rows []entities.Fazenda) error
	ReplaceFrotas(rows []entities.Frota) error
	ReplaceColaboradores(rows []entities.Colaborador) error
	ReplaceAtividades(rows []entities.Atividade) error
	ReplaceInsumos(rows []entities.Insumo) error
	ReplaceParadas(rows []entities.Parada) error

	Fazendas() ([]entities.Fazenda, error)
	Frotas() ([]entities.Frota, error)
	Colaboradores() ([]entities.Colaborador, error)
	Atividades() ([]entities.Atividade, error)
	AtividadeByNome(nome string) (*entities.Atividade, error)
	Insumos() ([]entities.Insumo, error)
	Viveiros() ([]entities.Viveiro, error)
	Clones() ([]entities.Clone, error)
	Paradas() ([]entities.Parada, error)
}
