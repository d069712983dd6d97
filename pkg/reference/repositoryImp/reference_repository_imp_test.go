package repositoryImp_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"silvacollect/apperr"
	"silvacollect/database"
	"silvacollect/entities"
	"silvacollect/pkg/reference/repository"
	"silvacollect/pkg/reference/repositoryImp"
)

func openRepo(t *testing.T) repository.ReferenceRepository {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return repositoryImp.New(db)
}

func TestReplaceFazendasIsDestructive(t *testing.T) {
	repo := openRepo(t)

	first := []entities.Fazenda{
		{ID: "Santa Rita_T-01", Fazenda: "Santa Rita", Talhao: "T-01", AreaTotal: decimal.NewFromFloat(25.5)},
		{ID: "Santa Rita_T-02", Fazenda: "Santa Rita", Talhao: "T-02", AreaTotal: decimal.NewFromFloat(30)},
	}
	require.NoError(t, repo.ReplaceFazendas(first))

	// second replace with one different row must leave exactly that row
	second := []entities.Fazenda{
		{ID: "Boa Vista_T-09", Fazenda: "Boa Vista", Talhao: "T-09", AreaTotal: decimal.NewFromFloat(12)},
	}
	require.NoError(t, repo.ReplaceFazendas(second))

	got, err := repo.Fazendas()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Boa Vista_T-09", got[0].ID)
	require.Equal(t, "Boa Vista", got[0].Fazenda)
	require.Equal(t, "T-09", got[0].Talhao)
}

func TestReplaceWithEmptySliceClearsCollection(t *testing.T) {
	repo := openRepo(t)

	require.NoError(t, repo.ReplaceInsumos([]entities.Insumo{{ID: 1, Nome: "Ureia"}}))
	require.NoError(t, repo.ReplaceInsumos(nil))

	got, err := repo.Insumos()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReplaceIsIdempotent(t *testing.T) {
	repo := openRepo(t)

	rows := []entities.Colaborador{
		{ID: 1, Nome: "João", Matricula: "1001", Funcao: "Operador de Máquinas"},
		{ID: 2, Nome: "Pedro", Matricula: "1002", Funcao: "Operador Florestal"},
	}
	require.NoError(t, repo.ReplaceColaboradores(rows))
	require.NoError(t, repo.ReplaceColaboradores(rows))

	got, err := repo.Colaboradores()
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestAtividadeByNome(t *testing.T) {
	repo := openRepo(t)

	tarifa := decimal.NewFromFloat(12.5)
	require.NoError(t, repo.ReplaceAtividades([]entities.Atividade{
		{ID: 1, Codigo: "AD-01", Nome: "Adubação", Tarifa: &tarifa, Tipo: "manual"},
	}))

	a, err := repo.AtividadeByNome("Adubação")
	require.NoError(t, err)
	require.Equal(t, "AD-01", a.Codigo)
	require.True(t, a.Tarifa.Equal(tarifa))

	_, err = repo.AtividadeByNome("Inexistente")
	require.Error(t, err)
	require.True(t, apperr.IsNotFound(err))
}

func TestLocalOnlyCollectionsAreSeeded(t *testing.T) {
	repo := openRepo(t)

	viveiros, err := repo.Viveiros()
	require.NoError(t, err)
	require.NotEmpty(t, viveiros)

	clones, err := repo.Clones()
	require.NoError(t, err)
	require.NotEmpty(t, clones)
}
