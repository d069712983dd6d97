package gateway

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"silvacollect/entities"
)

// MaxInsumoSlots is the wire-protocol cap on material entries per record.
// The remote schema carries five fixed insumoN/quantidadeN column pairs;
// entries beyond the fifth cannot be transmitted.
const MaxInsumoSlots = 5

// Rows as served by the central API.

type FazendaRow struct {
	Fazenda   string          `json:"fazenda"`
	Talhao    string          `json:"talhao"`
	AreaTotal decimal.Decimal `json:"area_total"`
}

type FrotaRow struct {
	Prefixo string `json:"prefixo"`
	Tipo    string `json:"tipo"`
}

type ColaboradorRow struct {
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	Funcao    string `json:"funcao"`
}

type AtividadeRow struct {
	Codigo    string           `json:"codigo"`
	Atividade string           `json:"atividade"`
	Tarifa    *decimal.Decimal `json:"tarifa"`
	Tipo      string           `json:"tipo"`
}

type InsumoRow struct {
	Insumo string `json:"insumo"`
}

type ParadaRow struct {
	NomeParada string `json:"nome_parada"`
	Tipo       string `json:"tipo"`
}

type PlanejadoRow struct {
	ID        uint            `json:"id"`
	OS        string          `json:"os"`
	Maquina   string          `json:"maquina"`
	Operador  string          `json:"operador"`
	Atividade string          `json:"atividade"`
	Fazenda   string          `json:"fazenda"`
	Talhao    string          `json:"talhao"`
	AreaTotal decimal.Decimal `json:"area_total"`
	Status    string          `json:"status"`
}

// ApontamentoPayload is the flat row POSTed to /apontamentos, matching the
// remote relational schema column for column.
type ApontamentoPayload struct {
	Data         string           `json:"data"`
	OS           string           `json:"os"`
	Faturado     string           `json:"faturado"`
	Supervisor   string           `json:"supervisor"`
	Equipe       string           `json:"equipe"`
	NomeLider    string           `json:"nome_lider"`
	Operador     string           `json:"operador"`
	Maquina      string           `json:"maquina"`
	Fazenda      string           `json:"fazenda"`
	Talhao       string           `json:"talhao"`
	Atividade    string           `json:"atividade"`
	Codigo       *string          `json:"codigo"`
	Modalidade   string           `json:"modalidade"`
	Produzido    decimal.Decimal  `json:"produzido"`
	AreaTotal    decimal.Decimal  `json:"area_total"`
	Status       string           `json:"status"`
	Tarifa       *decimal.Decimal `json:"tarifa"`
	QtdColab     *int             `json:"qtd_colaboradores"`
	Observacao   string           `json:"observacao"`
	HI           *float64         `json:"hi"`
	HF           *float64         `json:"hf"`
	HoraInicio   *string          `json:"hora_inicio"`
	HoraFinal    *string          `json:"hora_final"`
	NFLoteMudas  *string          `json:"nf_lotemudas"`
	Viveiro      *string          `json:"viveiro"`
	Clone        *string          `json:"clone"`
	Plantadas    *int             `json:"plantadas"`
	Descarte     *int             `json:"descarte"`
	Insumo1      *string          `json:"insumo1"`
	Quantidade1  *decimal.Decimal `json:"quantidade1"`
	Insumo2      *string          `json:"insumo2"`
	Quantidade2  *decimal.Decimal `json:"quantidade2"`
	Insumo3      *string          `json:"insumo3"`
	Quantidade3  *decimal.Decimal `json:"quantidade3"`
	Insumo4      *string          `json:"insumo4"`
	Quantidade4  *decimal.Decimal `json:"quantidade4"`
	Insumo5      *string          `json:"insumo5"`
	Quantidade5  *decimal.Decimal `json:"quantidade5"`
	Anexo        *string          `json:"anexo"`
	ClientRef    string           `json:"client_ref"`
}

// CreatedApontamento is the server's echo of the inserted row. Only the
// assigned id matters to the device.
type CreatedApontamento struct {
	ID int64 `json:"id"`
}

type ParadaWire struct {
	Motivo     string `json:"motivo"`
	HoraInicio string `json:"hora_inicio"`
	HoraFim    string `json:"hora_fim"`
}

type ApontamentoContexto struct {
	Data       string          `json:"data"`
	Supervisor string          `json:"supervisor"`
	Equipe     string          `json:"equipe"`
	NomeLider  string          `json:"nome_lider"`
	Maquina    string          `json:"maquina"`
	Atividade  string          `json:"atividade"`
	Producao   decimal.Decimal `json:"producao"`
}

// ParadasRendimentoPayload is the dependent second POST carrying the stop
// events tagged with the server-assigned parent id.
type ParadasRendimentoPayload struct {
	IDApontamento   int64               `json:"id_apontamento"`
	Paradas         []ParadaWire        `json:"paradas"`
	ApontamentoData ApontamentoContexto `json:"apontamento_data"`
}

// NewApontamentoPayload flattens a locally stored record into the remote
// schema. Insumos beyond the fifth slot cannot be encoded; the drop is logged
// so it is never silent.
func NewApontamentoPayload(a *entities.Apontamento, supervisor string, tarifa *decimal.Decimal, logger *logrus.Logger) ApontamentoPayload {
	p := ApontamentoPayload{
		Data:       a.Data,
		OS:         osLabel(a),
		Faturado:   "a faturar",
		Supervisor: supervisor,
		Equipe:     supervisor,
		NomeLider:  supervisor,
		Operador:   a.Operador,
		Maquina:    a.Prefixo,
		Fazenda:    a.Fazenda,
		Talhao:     a.Talhao,
		Atividade:  a.Servico,
		Codigo:     optString(a.Codigo),
		Modalidade: a.Status,
		Produzido:  a.Produzido,
		AreaTotal:  a.AreaTotal,
		Status:     a.Status,
		Tarifa:     tarifa,
		QtdColab:   a.QtdColab,
		Observacao: a.Observacao,
		HI:         a.HorimetroIni,
		HF:         a.HorimetroFim,
		HoraInicio: optString(a.HoraInicio),
		HoraFinal:  optString(a.HoraFinal),
		ClientRef:  a.ClientRef,
	}
	if a.Plantio != nil {
		p.Viveiro = optString(a.Plantio.Viveiro)
		p.Clone = optString(a.Plantio.Clone)
		p.Plantadas = optInt(a.Plantio.Plantadas)
		p.Descarte = optInt(a.Plantio.Descarte)
	}

	insumos := a.Insumos
	if len(insumos) > MaxInsumoSlots {
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"module":     "gateway",
				"client_ref": a.ClientRef,
				"insumos":    len(insumos),
				"dropped":    len(insumos) - MaxInsumoSlots,
			}).Warn("insumo entries beyond the wire-protocol cap were dropped")
		}
		insumos = insumos[:MaxInsumoSlots]
	}
	for i, ins := range insumos {
		nome := ins.Insumo
		qtd := ins.Quantidade
		switch i {
		case 0:
			p.Insumo1, p.Quantidade1 = optString(nome), &qtd
		case 1:
			p.Insumo2, p.Quantidade2 = optString(nome), &qtd
		case 2:
			p.Insumo3, p.Quantidade3 = optString(nome), &qtd
		case 3:
			p.Insumo4, p.Quantidade4 = optString(nome), &qtd
		case 4:
			p.Insumo5, p.Quantidade5 = optString(nome), &qtd
		}
	}
	return p
}

// NewParadasPayload builds the dependent stop-events POST for a record the
// server has acknowledged under serverID.
func NewParadasPayload(serverID int64, a *entities.Apontamento, supervisor string) ParadasRendimentoPayload {
	paradas := make([]ParadaWire, 0, len(a.Paradas))
	for _, pe := range a.Paradas {
		paradas = append(paradas, ParadaWire{
			Motivo:     pe.Motivo,
			HoraInicio: pe.HoraInicio,
			HoraFim:    pe.HoraFim,
		})
	}
	return ParadasRendimentoPayload{
		IDApontamento: serverID,
		Paradas:       paradas,
		ApontamentoData: ApontamentoContexto{
			Data:       a.Data,
			Supervisor: supervisor,
			Equipe:     supervisor,
			NomeLider:  supervisor,
			Maquina:    a.Prefixo,
			Atividade:  a.Servico,
			Producao:   a.Produzido,
		},
	}
}

func osLabel(a *entities.Apontamento) string {
	if a.OrdemID == 0 {
		return "AVULSO"
	}
	return "OS-" + strconv.FormatUint(uint64(a.OrdemID), 10)
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
