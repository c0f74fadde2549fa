package parcela

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

// DTO usado no POST /planos/{id}/parcelas e no PUT /parcelas/{pid}
type ParcelaDTO struct {
	NumeroParcela      int     `json:"numeroParcela"`
	PorcentagemParcela float64 `json:"porcentagemParcela"`
}

// GET /planos/{id}/parcelas
func (h *Handler) ListByPlano(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do plano inválido", http.StatusBadRequest)
		return
	}

	parcelas, err := h.Repo.ListByPlanoID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// POST /planos/{id}/parcelas
func (h *Handler) CreateForPlano(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do plano inválido", http.StatusBadRequest)
		return
	}

	var in ParcelaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.NumeroParcela < 1 {
		http.Error(w, "Número da parcela deve ser maior ou igual a 1", http.StatusBadRequest)
		return
	}
	if in.PorcentagemParcela < 0 {
		http.Error(w, "Porcentagem da parcela não pode ser negativa", http.StatusBadRequest)
		return
	}

	p := &Parcela{
		NumeroParcela:      in.NumeroParcela,
		PorcentagemParcela: in.PorcentagemParcela,
	}
	if err := h.Repo.CreateForPlano(uint(id), p); err != nil {
		http.Error(w, "Erro ao criar parcela", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// PUT /parcelas/{pid}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.FindByID(uint(pid))
	if err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	var in ParcelaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.NumeroParcela < 1 {
		http.Error(w, "Número da parcela deve ser maior ou igual a 1", http.StatusBadRequest)
		return
	}
	if in.PorcentagemParcela < 0 {
		http.Error(w, "Porcentagem da parcela não pode ser negativa", http.StatusBadRequest)
		return
	}

	existente.NumeroParcela = in.NumeroParcela
	existente.PorcentagemParcela = in.PorcentagemParcela

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "Erro ao atualizar a parcela", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /parcelas/{pid}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByID(uint(pid)); err != nil {
		http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
