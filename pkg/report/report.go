// Package report renders the local apontamento table as a spreadsheet for
// supervisors who review the day's work off the device.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"silvacollect/entities"
)

const sheetName = "Apontamentos"

var header = []string{
	"ID", "Tipo", "Data", "OS", "Operador", "Prefixo", "Serviço", "Código",
	"Fazenda", "Talhão", "Produzido", "Área Total", "Restante", "Status",
	"Hora Início", "Hora Final", "Paradas", "Insumos", "Sincronizado", "Criado em",
}

func BuildApontamentosWorkbook(rows []entities.Apontamento) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, a := range rows {
		os := "AVULSO"
		if a.OrdemID != 0 {
			os = fmt.Sprintf("OS-%d", a.OrdemID)
		}
		values := []any{
			a.ID, a.Tipo, a.Data, os, a.Operador, a.Prefixo, a.Servico, a.Codigo,
			a.Fazenda, a.Talhao, a.Produzido.String(), a.AreaTotal.String(),
			a.Restante.String(), a.Status, a.HoraInicio, a.HoraFinal,
			len(a.Paradas), len(a.Insumos), a.SyncStatus,
			a.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
