package venda

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sistemacomissoes/api-vendas/internal/notificacao"
	"github.com/sistemacomissoes/api-vendas/internal/recebimento"
	"github.com/sistemacomissoes/api-vendas/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func erroDeGeracao(err error) bool {
	return errors.Is(err, recebimento.ErrSemParcelas) ||
		errors.Is(err, recebimento.ErrNumeroParcela) ||
		errors.Is(err, recebimento.ErrPercentualNegativo) ||
		errors.Is(err, recebimento.ErrParcelasForaDeOrdem)
}

func (h *Handler) parseDatas(in *VendaDTO, v *Venda) string {
	var err error
	if in.DataVenda == "" {
		v.DataVenda = utils.Hoje()
	} else if v.DataVenda, err = utils.ParseData(in.DataVenda); err != nil {
		return "Data da venda inválida (use AAAA-MM-DD)"
	}
	if v.DataVigencia, err = utils.ParseData(in.DataVigencia); err != nil {
		return "Data de vigência inválida (use AAAA-MM-DD)"
	}
	if v.DataVencimento, err = utils.ParseData(in.DataVencimento); err != nil {
		return "Data de vencimento inválida (use AAAA-MM-DD)"
	}
	return ""
}

// POST /vendas
// Cria a venda e gera o cronograma completo de recebimentos na mesma
// transação.
func (h *Handler) CriarVenda(w http.ResponseWriter, r *http.Request) {
	var in VendaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.NumeroProposta == "" {
		http.Error(w, "O campo 'numeroProposta' é obrigatório", http.StatusBadRequest)
		return
	}

	v := Venda{
		NumeroProposta:    in.NumeroProposta,
		ClienteID:         in.ClienteID,
		PlanoID:           in.PlanoID,
		ConsultorID:       in.ConsultorID,
		ValorPlano:        in.ValorPlano,
		DescontoConsultor: in.DescontoConsultor,
	}
	if msg := h.parseDatas(&in, &v); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	duplicada, err := h.Repo.ExistsByNumeroProposta(in.NumeroProposta, 0)
	if err != nil {
		http.Error(w, "Erro ao verificar número de proposta", http.StatusInternalServerError)
		return
	}
	if duplicada {
		go notificacao.EnviarWebhookAlerta(in.NumeroProposta)
		http.Error(w, "Número de proposta já cadastrado", http.StatusConflict)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := tx.Omit("Cliente", "Plano", "Consultor", "ControlesDeRecebimento").Create(&v).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao criar venda", http.StatusInternalServerError)
		return
	}

	if err := RegerarRecebimentos(tx, &v); err != nil {
		_ = tx.Rollback()
		if erroDeGeracao(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao gerar controles de recebimento", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	criada, err := h.Repo.FindByID(v.ID)
	if err != nil {
		http.Error(w, "Erro ao buscar venda criada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(criada)
}

// GET /vendas
func (h *Handler) ListarVendas(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "Erro ao listar vendas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vendas)
}

// GET /vendas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// PUT /vendas/{id}
// Todo salvamento regenera o cronograma inteiro, inclusive quando os campos
// financeiros não mudaram. Recebimentos lançados no conjunto anterior são
// descartados junto com ele.
func (h *Handler) AtualizarVenda(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	var in VendaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.NumeroProposta == "" {
		http.Error(w, "O campo 'numeroProposta' é obrigatório", http.StatusBadRequest)
		return
	}

	duplicada, err := h.Repo.ExistsByNumeroProposta(in.NumeroProposta, v.ID)
	if err != nil {
		http.Error(w, "Erro ao verificar número de proposta", http.StatusInternalServerError)
		return
	}
	if duplicada {
		go notificacao.EnviarWebhookAlerta(in.NumeroProposta)
		http.Error(w, "Número de proposta já cadastrado", http.StatusConflict)
		return
	}

	v.NumeroProposta = in.NumeroProposta
	v.ClienteID = in.ClienteID
	v.PlanoID = in.PlanoID
	v.ConsultorID = in.ConsultorID
	v.ValorPlano = in.ValorPlano
	v.DescontoConsultor = in.DescontoConsultor
	if msg := h.parseDatas(&in, v); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := tx.Omit("Cliente", "Plano", "Consultor", "ControlesDeRecebimento").Save(v).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao atualizar venda", http.StatusInternalServerError)
		return
	}

	if err := RegerarRecebimentos(tx, v); err != nil {
		_ = tx.Rollback()
		if erroDeGeracao(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao regenerar controles de recebimento", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	atualizada, err := h.Repo.FindByID(v.ID)
	if err != nil {
		http.Error(w, "Erro ao buscar venda atualizada", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(atualizada)
}

// DELETE /vendas/{id}
// Apaga a venda e todos os seus controles de recebimento.
func (h *Handler) DeletarVenda(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var v Venda
	if err := h.Repo.DB.First(&v, id).Error; err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Falha ao iniciar transação", http.StatusInternalServerError)
		return
	}

	if err := recebimento.NewRepository(tx).DeleteByVendaID(nil, v.ID); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao deletar recebimentos da venda", http.StatusInternalServerError)
		return
	}

	if err := tx.Delete(&v).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao deletar venda", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Erro ao confirmar transação", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
