package relay

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong-solo/configs"
)

const publishQueue = 8

// Publisher é um game.Sink que manda cada quadro para o relay. Render nunca
// bloqueia o tick: com a fila cheia o quadro é descartado.
type Publisher struct {
	conn  *websocket.Conn
	queue chan configs.GameState
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
	log   *slog.Logger
}

func NewPublisher(ctx context.Context, serverURL string, log *slog.Logger) (*Publisher, error) {
	if log == nil {
		log = slog.Default()
	}

	ws, err := dial(ctx, serverURL, configs.RolePublisher)
	if err != nil {
		return nil, err
	}

	p := &Publisher{
		conn:  ws,
		queue: make(chan configs.GameState, publishQueue),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
		log:   log,
	}
	go p.writeLoop()

	return p, nil
}

func (p *Publisher) Render(state configs.GameState) {
	select {
	case <-p.stop:
	case p.queue <- state:
	default:
	}
}

func (p *Publisher) writeLoop() {
	defer close(p.done)

	for {
		select {
		case <-p.stop:
			return
		case state := <-p.queue:
			msg, err := encode(state)
			if err != nil {
				p.log.Error("error to encode frame", "error", err)
				continue
			}
			if err := p.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				p.log.Error("error to publish frame, relay disabled", "error", err)
				p.once.Do(func() { close(p.stop) })
				return
			}
		}
	}
}

// Close encerra a escrita e fecha a conexão.
func (p *Publisher) Close() error {
	p.once.Do(func() { close(p.stop) })
	<-p.done

	p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return p.conn.Close()
}
