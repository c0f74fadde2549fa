package notificacao

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// POST /notificar
// Reenvia manualmente o alerta de proposta duplicada.
func (h *Handler) EnviarAlerta(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		NumeroProposta string `json:"numeroProposta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.NumeroProposta == "" {
		http.Error(w, "O campo 'numeroProposta' é obrigatório", http.StatusBadRequest)
		return
	}

	go EnviarWebhookAlerta(payload.NumeroProposta)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"message":"Alerta enviado"}`))
}
