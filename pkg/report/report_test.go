package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"silvacollect/entities"
	"silvacollect/pkg/report"
)

func TestWorkbookLayout(t *testing.T) {
	rows := []entities.Apontamento{
		{
			ID:         1,
			Tipo:       entities.TipoAvulso,
			Data:       "2026-08-30",
			Operador:   "João",
			Servico:    "Adubação",
			Fazenda:    "Santa Rita",
			Talhao:     "T-01",
			Produzido:  decimal.NewFromFloat(10),
			AreaTotal:  decimal.NewFromFloat(25.5),
			Restante:   decimal.NewFromFloat(15.5),
			SyncStatus: entities.SyncPending,
			CreatedAt:  time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Tipo:       entities.TipoPlanejado,
			OrdemID:    501,
			Data:       "2026-08-30",
			SyncStatus: entities.SyncSynced,
		},
	}

	f, err := report.BuildApontamentosWorkbook(rows)
	require.NoError(t, err)

	header, err := f.GetCellValue("Apontamentos", "A1")
	require.NoError(t, err)
	require.Equal(t, "ID", header)

	// loose record carries the AVULSO label, planned one its OS tag
	os1, err := f.GetCellValue("Apontamentos", "D2")
	require.NoError(t, err)
	require.Equal(t, "AVULSO", os1)
	os2, err := f.GetCellValue("Apontamentos", "D3")
	require.NoError(t, err)
	require.Equal(t, "OS-501", os2)

	produzido, err := f.GetCellValue("Apontamentos", "K2")
	require.NoError(t, err)
	require.Equal(t, "10", produzido)
}

func TestWorkbookEmptyListStillHasHeader(t *testing.T) {
	f, err := report.BuildApontamentosWorkbook(nil)
	require.NoError(t, err)

	v, err := f.GetCellValue("Apontamentos", "A1")
	require.NoError(t, err)
	require.Equal(t, "ID", v)

	v, err = f.GetCellValue("Apontamentos", "A2")
	require.NoError(t, err)
	require.Empty(t, v)
}
