package server

// #region hub
// clientMessage pairs an incoming message with its sender.
type clientMessage struct {
	client *Client
	msg    Message
}

// EventHandler connects the transport to the engine logic.
type EventHandler interface {
	OnConnect(c *Client)
	OnDisconnect(c *Client)
	OnMessage(c *Client, msg Message)
}

// Hub owns the set of connected clients and routes events to the handler.
// The clients map is touched only by the hub goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan clientMessage
	broadcast  chan Message
	handler    EventHandler
}

// NewHub creates an initialized hub.
func NewHub(handler EventHandler) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan clientMessage),
		broadcast:  make(chan Message),
		handler:    handler,
	}
}

// Broadcast queues a message for every connected client.
func (h *Hub) Broadcast(msg Message) {
	h.broadcast <- msg
}

// Run processes hub events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.handler.OnConnect(client)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.handler.OnDisconnect(client)
			}

		case cm := <-h.incoming:
			h.handler.OnMessage(cm.client, cm.msg)

		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Client buffer full; drop rather than stall the hub.
				}
			}
		}
	}
}
// #endregion hub
