package recebimento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sistemacomissoes/api-vendas/internal/utils"
)

/* ============================== Handler & DTOs ============================== */

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /recebimentos/{id}/receber. Data vazia assume hoje — o
// painel de recebimentos usa o campo para lançar datas retroativas.
type ReceberDTO struct {
	DataRecebimento string `json:"dataRecebimento"`
	NumeroExtrato   string `json:"numeroExtrato"`
}

// DTO usado no PUT /recebimentos/{id}
type ControleUpdateDTO struct {
	ValorParcela            float64 `json:"valorParcela"`
	DataPrevistaRecebimento string  `json:"dataPrevistaRecebimento"`
	DataRecebimento         string  `json:"dataRecebimento"`
	Status                  Status  `json:"status"`
	NumeroExtrato           string  `json:"numeroExtrato"`
}

/* ============================== Endpoints ============================== */

// GET /vendas/{id}/recebimentos
func (h *Handler) ListarPorVenda(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da venda inválido", http.StatusBadRequest)
		return
	}

	controles, err := h.Repo.ListByVendaID(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar recebimentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(controles)
}

// GET /recebimentos/atrasados
// Varredura preguiçosa: reclassifica vencidos antes de listar.
func (h *Handler) ListarAtrasados(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Repo.MarcarAtrasados(utils.Hoje()); err != nil {
		http.Error(w, "Erro ao atualizar parcelas atrasadas", http.StatusInternalServerError)
		return
	}

	controles, err := h.Repo.ListByStatus(StatusAtrasado)
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas atrasadas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(controles)
}

// POST /recebimentos/{id}/receber
// Marca a parcela como Recebida (vale também para Atrasada) e dispara a
// revisão das datas previstas das parcelas seguintes quando a data de
// recebimento mudou.
func (h *Handler) Receber(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	var in ReceberDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&in)
	}

	dataRecebida := utils.Hoje()
	if in.DataRecebimento != "" {
		dataRecebida, err = utils.ParseData(in.DataRecebimento)
		if err != nil {
			http.Error(w, "Data de recebimento inválida (use AAAA-MM-DD)", http.StatusBadRequest)
			return
		}
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Recebimento não encontrado", http.StatusNotFound)
		return
	}

	dataAntiga := c.DataRecebimento
	c.Status = StatusRecebido
	c.DataRecebimento = &dataRecebida
	if in.NumeroExtrato != "" {
		c.NumeroExtrato = in.NumeroExtrato
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.WithDB(tx).Update(c); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao marcar recebimento", http.StatusInternalServerError)
		return
	}

	if DataRecebimentoMudou(dataAntiga, c.DataRecebimento) {
		if err := RevisarDatasSubsequentes(tx, c.VendaID, c.Parcela.NumeroParcela, c.DataEfetiva()); err != nil {
			_ = tx.Rollback()
			http.Error(w, "Erro ao revisar datas das parcelas seguintes", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /recebimentos/{id}
// Edição genérica do painel. Alterar a data de recebimento (setar ou limpar)
// dispara a mesma revisão em cascata do Receber.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Recebimento não encontrado", http.StatusNotFound)
		return
	}

	var in ControleUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	allowed := map[Status]bool{
		StatusNaoRecebido: true,
		StatusRecebido:    true,
		StatusAtrasado:    true,
	}
	if !allowed[in.Status] {
		http.Error(w, "Status inválido. Use 'Não Recebido', 'Recebido' ou 'Atrasado'.", http.StatusBadRequest)
		return
	}

	prevista, err := utils.ParseData(in.DataPrevistaRecebimento)
	if err != nil {
		http.Error(w, "Data prevista inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	novaData, err := utils.ParseDataOpcional(in.DataRecebimento)
	if err != nil {
		http.Error(w, "Data de recebimento inválida (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}

	dataAntiga := c.DataRecebimento
	c.ValorParcela = in.ValorParcela
	c.DataPrevistaRecebimento = prevista
	c.DataRecebimento = novaData
	c.Status = in.Status
	c.NumeroExtrato = in.NumeroExtrato

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.WithDB(tx).Update(c); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao atualizar recebimento", http.StatusInternalServerError)
		return
	}

	if DataRecebimentoMudou(dataAntiga, novaData) {
		if err := RevisarDatasSubsequentes(tx, c.VendaID, c.Parcela.NumeroParcela, c.DataEfetiva()); err != nil {
			_ = tx.Rollback()
			http.Error(w, "Erro ao revisar datas das parcelas seguintes", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

/* ============================== Número de extrato ============================== */

// POST /recebimentos/{id}/extrato
func (h *Handler) AtualizarExtrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		NumeroExtrato string `json:"numeroExtrato"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateNumeroExtrato(uint(id), payload.NumeroExtrato); err != nil {
		http.Error(w, "Erro ao atualizar número de extrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"Número de extrato atualizado com sucesso"}`))
}

// DELETE /recebimentos/{id}/extrato
func (h *Handler) RemoverExtrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do recebimento inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateNumeroExtrato(uint(id), ""); err != nil {
		http.Error(w, "Erro ao remover número de extrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"Número de extrato removido com sucesso"}`))
}
