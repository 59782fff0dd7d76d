package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/credimovil/backoffice-api/internal/application/usecase"
)

var _ usecase.Dispatcher = (*ExpoDispatcher)(nil)

// ExpoDispatcher envía notificaciones push vía el API HTTP de Expo
// (exp.host/--/api/v2/push/send). Es el adaptador del puerto Dispatcher; el
// caller lo trata como best-effort.
type ExpoDispatcher struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewExpoDispatcher construye el despachador. endpoint vacío deshabilita el envío.
func NewExpoDispatcher(endpoint, token string) *ExpoDispatcher {
	return &ExpoDispatcher{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type expoMessage struct {
	To    string         `json:"to"`
	Sound string         `json:"sound"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

type expoResponse struct {
	Data []struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// Notify envía un mensaje a un push token. Devuelve error si el API responde
// distinto de 200 o si el ticket viene con status "error".
func (d *ExpoDispatcher) Notify(ctx context.Context, pushToken, body string, data map[string]any) error {
	if d.endpoint == "" {
		return fmt.Errorf("push: despachador deshabilitado")
	}
	payload, err := json.Marshal([]expoMessage{{To: pushToken, Sound: "default", Body: body, Data: data}})
	if err != nil {
		return fmt.Errorf("push: marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("push: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("push: enviar: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push: status %d", resp.StatusCode)
	}

	var out expoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("push: decode: %w", err)
	}
	for _, ticket := range out.Data {
		if ticket.Status == "error" {
			return fmt.Errorf("push: ticket con error: %s", ticket.Message)
		}
	}
	return nil
}
