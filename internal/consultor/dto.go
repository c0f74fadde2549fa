package consultor

// ResumoConsultorDTO reúne os principais dados e métricas de comissão do
// consultor, calculadas sobre seus controles de recebimento.
type ResumoConsultorDTO struct {
	ID               uint    `json:"id"`
	Nome             string  `json:"nome"`
	Email            string  `json:"email"`
	Telefone         string  `json:"telefone"`
	VendasRealizadas int64   `json:"vendasRealizadas"`
	ComissaoRecebida float64 `json:"comissaoRecebida"`
	ComissaoAReceber float64 `json:"comissaoAReceber"`
}
