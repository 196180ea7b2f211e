// Package relay leva os quadros de uma partida para espectadores via
// websocket. Quem joga publica; quem assiste só recebe.
package relay

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong-solo/configs"
)

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// URL monta o endereço do relay a partir da config.
func URL(cfg configs.Config) string {
	u := url.URL{
		Scheme: "ws",
		Host:   cfg.ServerDomain + ":" + cfg.ServerPort,
		Path:   "/ws",
	}
	return u.String()
}

// dial conecta e já manda o Hello com o papel da conexão.
func dial(ctx context.Context, serverURL, role string) (*websocket.Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", serverURL, err)
	}

	msg, err := encode(configs.Hello{Role: role})
	if err != nil {
		ws.Close()
		return nil, fmt.Errorf("encode hello: %w", err)
	}
	if err := ws.WriteMessage(websocket.BinaryMessage, msg); err != nil {
		ws.Close()
		return nil, fmt.Errorf("send hello: %w", err)
	}

	return ws, nil
}
