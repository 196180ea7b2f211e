package relay

import (
	"context"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong-solo/configs"
)

// Subscribe conecta como espectador. O canal fecha quando a conexão cai ou
// o contexto acaba.
func Subscribe(ctx context.Context, serverURL string, log *slog.Logger) (<-chan configs.GameState, error) {
	if log == nil {
		log = slog.Default()
	}

	ws, err := dial(ctx, serverURL, configs.RoleViewer)
	if err != nil {
		return nil, err
	}

	frames := make(chan configs.GameState, 1)

	// ReadMessage não olha o contexto; fechar a conexão destrava a leitura.
	stop := context.AfterFunc(ctx, func() { ws.Close() })

	go func() {
		defer close(frames)
		defer stop()
		defer ws.Close()

		for {
			msgType, msgData, err := ws.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					log.Info("disconnected from relay", "error", err)
				}
				return
			}
			if msgType != websocket.BinaryMessage {
				continue
			}

			var state configs.GameState
			if err := decode(msgData, &state); err != nil {
				log.Error("error to decode frame", "error", err)
				continue
			}

			select {
			case frames <- state:
			case <-ctx.Done():
				return
			}
		}
	}()

	return frames, nil
}
