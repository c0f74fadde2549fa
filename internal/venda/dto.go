// internal/venda/dto.go
package venda

// VendaDTO é o corpo do POST /vendas e do PUT /vendas/{id}.
// Datas no formato AAAA-MM-DD.
type VendaDTO struct {
	NumeroProposta    string  `json:"numeroProposta"`
	ClienteID         uint    `json:"clienteId"`
	PlanoID           uint    `json:"planoId"`
	ConsultorID       uint    `json:"consultorId"`
	ValorPlano        float64 `json:"valorPlano"`
	DescontoConsultor float64 `json:"descontoConsultor"`
	DataVenda         string  `json:"dataVenda"` // vazio assume hoje
	DataVigencia      string  `json:"dataVigencia"`
	DataVencimento    string  `json:"dataVencimento"`
}
