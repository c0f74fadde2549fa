package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/sistemacomissoes/api-vendas/internal/auth"
	"github.com/sistemacomissoes/api-vendas/internal/cliente"
	"github.com/sistemacomissoes/api-vendas/internal/consultor"
	"github.com/sistemacomissoes/api-vendas/internal/notificacao"
	"github.com/sistemacomissoes/api-vendas/internal/parcela"
	"github.com/sistemacomissoes/api-vendas/internal/plano"
	"github.com/sistemacomissoes/api-vendas/internal/recebimento"
	"github.com/sistemacomissoes/api-vendas/internal/utils/db"
	"github.com/sistemacomissoes/api-vendas/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&cliente.Cliente{},
		&consultor.Consultor{},
		&plano.Plano{},
		&parcela.Parcela{},
		&venda.Venda{},
		&recebimento.ControleDeRecebimento{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	clienteHandler := cliente.NewHandler(database)
	consultorHandler := consultor.NewHandler(database)
	planoHandler := plano.NewHandler(plano.NewRepository(database))
	parcelaHandler := parcela.NewHandler(parcela.NewRepository(database))
	vendaHandler := venda.NewHandler(venda.NewRepository(database))
	recebimentoHandler := recebimento.NewHandler(recebimento.NewRepository(database))
	notificacaoHandler := notificacao.NewHandler()

	// Router
	r := mux.NewRouter()

	// Rotas abertas
	r.HandleFunc("/login", consultorHandler.Login).Methods("POST")
	r.HandleFunc("/consultores", consultorHandler.CriarConsultor).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de consultores
	api.HandleFunc("/consultores", consultorHandler.ListarConsultores).Methods("GET")
	api.HandleFunc("/consultores/{id}", consultorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/consultores/{id}/resumo", consultorHandler.Resumo).Methods("GET")
	api.HandleFunc("/consultores/{id}", consultorHandler.AtualizarConsultor).Methods("PUT")
	api.HandleFunc("/consultores/{id}", consultorHandler.DeletarConsultor).Methods("DELETE")

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de planos e parcelas
	api.HandleFunc("/planos", planoHandler.Criar).Methods("POST")
	api.HandleFunc("/planos", planoHandler.Listar).Methods("GET")
	api.HandleFunc("/planos/{id}", planoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/planos/{id}", planoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/planos/{id}", planoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/planos/{id}/parcelas", parcelaHandler.ListByPlano).Methods("GET")
	api.HandleFunc("/planos/{id}/parcelas", parcelaHandler.CreateForPlano).Methods("POST")
	api.HandleFunc("/parcelas/{pid}", parcelaHandler.Update).Methods("PUT")
	api.HandleFunc("/parcelas/{pid}", parcelaHandler.Delete).Methods("DELETE")

	// Rotas de vendas
	api.HandleFunc("/vendas", vendaHandler.CriarVenda).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.ListarVendas).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.AtualizarVenda).Methods("PUT")
	api.HandleFunc("/vendas/{id}", vendaHandler.DeletarVenda).Methods("DELETE")
	api.HandleFunc("/vendas/{id}/recebimentos", recebimentoHandler.ListarPorVenda).Methods("GET")

	// Rotas de controle de recebimento
	api.HandleFunc("/recebimentos/atrasados", recebimentoHandler.ListarAtrasados).Methods("GET")
	api.HandleFunc("/recebimentos/{id}/receber", recebimentoHandler.Receber).Methods("POST")
	api.HandleFunc("/recebimentos/{id}", recebimentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/recebimentos/{id}/extrato", recebimentoHandler.AtualizarExtrato).Methods("POST")
	api.HandleFunc("/recebimentos/{id}/extrato", recebimentoHandler.RemoverExtrato).Methods("DELETE")

	// Rota de notificação (alerta de proposta duplicada)
	api.HandleFunc("/notificar", notificacaoHandler.EnviarAlerta).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
