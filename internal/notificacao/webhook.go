package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookAlerta avisa o canal de integração quando uma venda chega com
// número de proposta já cadastrado. Sem URL configurada o alerta é ignorado.
func EnviarWebhookAlerta(numeroProposta string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":       "Alerta: nova venda com número de proposta já existente",
		"numeroProposta": numeroProposta,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
