package relay

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong-solo/configs"
)

// Eventos que o loop do Hub aceita.
type EventType int

const (
	EventJoin EventType = iota
	EventLeave
	EventFrame
)

type hubEvent struct {
	Type   EventType
	Client *client
	Frame  configs.GameState
}

type client struct {
	conn *websocket.Conn
	role string
	send chan []byte // só espectadores
}

// Quantos quadros um espectador lento pode acumular antes de perder quadros.
const viewerQueue = 32

// Hub repassa os quadros dos publicadores para todos os espectadores. O mapa
// de clientes só é tocado pela goroutine de Run.
type Hub struct {
	events   chan hubEvent
	done     chan struct{}
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		events: make(chan hubEvent, 100),
		done:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Run processa a fila de eventos até o contexto acabar.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	clients := make(map[*client]struct{})
	defer func() {
		for c := range clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case evt := <-h.events:
			switch evt.Type {
			case EventJoin:
				clients[evt.Client] = struct{}{}
				h.log.Info("client joined", "role", evt.Client.role, "total", len(clients))

			case EventLeave:
				if _, ok := clients[evt.Client]; ok {
					delete(clients, evt.Client)
					h.drop(evt.Client)
					h.log.Info("client left", "role", evt.Client.role, "total", len(clients))
				}

			case EventFrame:
				msg, err := encode(evt.Frame)
				if err != nil {
					h.log.Error("error to encode frame", "error", err)
					continue
				}
				for c := range clients {
					if c.send == nil {
						continue
					}
					// Espectador lento perde o quadro, o loop não espera.
					select {
					case c.send <- msg:
					default:
					}
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	if c.send != nil {
		close(c.send)
	}
	c.conn.Close()
}

// post entrega o evento ao loop, ou desiste se o loop já terminou.
func (h *Hub) post(evt hubEvent) bool {
	select {
	case h.events <- evt:
		return true
	case <-h.done:
		return false
	}
}

// ServeHTTP atende /ws: a primeira mensagem diz o papel da conexão.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("error to upgrade to websocket", "error", err)
		return
	}

	_, data, err := ws.ReadMessage()
	if err != nil {
		ws.Close()
		return
	}

	var hello configs.Hello
	if err := decode(data, &hello); err != nil {
		h.log.Error("error to decode hello", "error", err)
		ws.Close()
		return
	}

	c := &client{conn: ws, role: hello.Role}
	switch hello.Role {
	case configs.RolePublisher:
	case configs.RoleViewer:
		c.send = make(chan []byte, viewerQueue)
		go writeLoop(c)
	default:
		h.log.Error("unknown role", "role", hello.Role)
		ws.Close()
		return
	}

	if !h.post(hubEvent{Type: EventJoin, Client: c}) {
		h.drop(c)
		return
	}

	for {
		messageType, messageData, err := ws.ReadMessage()
		if err != nil {
			h.post(hubEvent{Type: EventLeave, Client: c})
			return
		}

		if messageType != websocket.BinaryMessage || c.role != configs.RolePublisher {
			continue
		}

		var frame configs.GameState
		if err := decode(messageData, &frame); err != nil {
			continue
		}
		if !h.post(hubEvent{Type: EventFrame, Client: c, Frame: frame}) {
			return
		}
	}
}

// writeLoop é o canal de saída de cada espectador; termina quando o Hub
// fecha c.send.
func writeLoop(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			c.conn.Close()
			return
		}
	}
}
