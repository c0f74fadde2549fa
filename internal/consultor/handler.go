package consultor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sistemacomissoes/api-vendas/internal/auth"
	"github.com/sistemacomissoes/api-vendas/internal/recebimento"
	"github.com/sistemacomissoes/api-vendas/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createConsultorRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Recebimento *recebimento.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Recebimento: recebimento.NewRepository(db),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarConsultor cadastra novo consultor (livre de autenticação)
func (h *Handler) CriarConsultor(w http.ResponseWriter, r *http.Request) {
	var req createConsultorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	c := Consultor{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
		Senha:    hash,
		IsAdmin:  req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar consultor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarConsultores retorna todos ou apenas o próprio registro
func (h *Handler) ListarConsultores(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin := auth.UsuarioDoContexto(r.Context())

	if isAdmin {
		consultores, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			http.Error(w, "erro ao listar consultores", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(consultores)
		return
	}

	// não-admin vê apenas o próprio
	obj, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode([]Consultor{*obj})
}

// BuscarPorID retorna um consultor pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Resumo retorna as métricas de comissão do consultor
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}

	resumo, err := h.montarResumo(*c)
	if err != nil {
		http.Error(w, "erro ao calcular resumo do consultor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}

// Monta o DTO com os principais dados e métricas do consultor
func (h *Handler) montarResumo(c Consultor) (ResumoConsultorDTO, error) {
	vendas, err := h.Recebimento.CountVendasByConsultor(c.ID)
	if err != nil {
		return ResumoConsultorDTO{}, err
	}
	recebida, err := h.Recebimento.SumValorByConsultorEStatus(c.ID, recebimento.StatusRecebido)
	if err != nil {
		return ResumoConsultorDTO{}, err
	}
	aReceber, err := h.Recebimento.SumValorByConsultorEStatus(c.ID, recebimento.StatusNaoRecebido, recebimento.StatusAtrasado)
	if err != nil {
		return ResumoConsultorDTO{}, err
	}

	return ResumoConsultorDTO{
		ID:               c.ID,
		Nome:             c.Nome,
		Email:            c.Email,
		Telefone:         c.Telefone,
		VendasRealizadas: vendas,
		ComissaoRecebida: recebida,
		ComissaoAReceber: aReceber,
	}, nil
}

// AtualizarConsultor atualiza os dados cadastrais
func (h *Handler) AtualizarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req createConsultorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	novos := Consultor{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), &novos); err != nil {
		http.Error(w, "consultor não encontrado", http.StatusNotFound)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar consultor atualizado", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DeletarConsultor remove um consultor
func (h *Handler) DeletarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao deletar consultor", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
