package plano

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type PlanoDTO struct {
	Operadora            string   `json:"operadora"`
	Tipo                 string   `json:"tipo"`
	ComissionamentoTotal float64  `json:"comissionamentoTotal"`
	NumeroParcelas       int      `json:"numeroParcelas"`
	TipoTaxa             TipoTaxa `json:"tipoTaxa"`
	ValorTaxa            float64  `json:"valorTaxa"`
}

// Resposta de leitura carrega também a soma das porcentagens cadastradas,
// para que o painel possa alertar quebras que não fecham em 100%.
type planoResponse struct {
	Plano
	SomaPorcentagens float64 `json:"somaPorcentagens"`
}

func montarResposta(p Plano) planoResponse {
	var soma float64
	for _, parc := range p.Parcelas {
		soma += parc.PorcentagemParcela
	}
	return planoResponse{Plano: p, SomaPorcentagens: soma}
}

func validarDTO(in *PlanoDTO) string {
	tiposPermitidos := map[string]bool{
		"PME":    true,
		"PF":     true,
		"Adesão": true,
	}
	if !tiposPermitidos[in.Tipo] {
		return "Tipo inválido. Use 'PME', 'PF' ou 'Adesão'."
	}
	if in.TipoTaxa == "" {
		in.TipoTaxa = TaxaFixa
	}
	if in.TipoTaxa != TaxaFixa && in.TipoTaxa != TaxaPercentual {
		return "Tipo de taxa inválido. Use 'Fixa' ou 'Percentual'."
	}
	return ""
}

// POST /planos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in PlanoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validarDTO(&in); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	p := &Plano{
		Operadora:            in.Operadora,
		Tipo:                 in.Tipo,
		ComissionamentoTotal: in.ComissionamentoTotal,
		NumeroParcelas:       in.NumeroParcelas,
		TipoTaxa:             in.TipoTaxa,
		ValorTaxa:            in.ValorTaxa,
	}
	if err := h.Repo.Create(p); err != nil {
		http.Error(w, "Erro ao criar plano (operadora e tipo já cadastrados?)", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /planos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	planos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao listar planos", http.StatusInternalServerError)
		return
	}

	resposta := make([]planoResponse, 0, len(planos))
	for _, p := range planos {
		resposta = append(resposta, montarResposta(p))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resposta)
}

// GET /planos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(montarResposta(*p))
}

// PUT /planos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}

	var in PlanoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validarDTO(&in); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	existente.Operadora = in.Operadora
	existente.Tipo = in.Tipo
	existente.ComissionamentoTotal = in.ComissionamentoTotal
	existente.NumeroParcelas = in.NumeroParcelas
	existente.TipoTaxa = in.TipoTaxa
	existente.ValorTaxa = in.ValorTaxa

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar plano", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(montarResposta(*existente))
}

// DELETE /planos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByID(uint(id)); err != nil {
		http.Error(w, "Plano não encontrado", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
