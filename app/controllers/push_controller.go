package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/services"
	"github.com/shashiranjanraj/foodcourt/pkg/ctx"
	"github.com/shashiranjanraj/foodcourt/pkg/event"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/metrics"
	"github.com/shashiranjanraj/foodcourt/pkg/sse"
	"github.com/shashiranjanraj/foodcourt/pkg/ws"
)

const heartbeat = 25 * time.Second

// Push is one store update as sent to push clients.
type Push struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// PushController streams session, cart and order updates over websocket
// and Server-Sent Events.
type PushController struct {
	session *services.SessionService
	cart    *services.CartService
	bus     *event.Bus
	hub     *ws.Hub
}

func NewPushController(session *services.SessionService, cart *services.CartService, bus *event.Bus, hub *ws.Hub) *PushController {
	return &PushController{session: session, cart: cart, bus: bus, hub: hub}
}

// Forward relays every store event to the websocket hub until the
// returned func is called.
func (pc *PushController) Forward() func() {
	relay := func(name string) func() {
		return pc.bus.Listen(name, func(p any) {
			msg, err := json.Marshal(Push{Event: name, Data: p})
			if err != nil {
				logger.Error("push: encode event", "event", name, "error", err)
				return
			}
			pc.hub.Publish(msg)
		})
	}

	stops := []func(){
		relay(services.EventSessionChanged),
		relay(services.EventCartUpdated),
		relay(services.EventOrderPlaced),
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}

// WebSocket serves /ws.
func (pc *PushController) WebSocket(c *ctx.Context) {
	pc.hub.ServeHTTP(c.W, c.R)
}

// Events serves /events. The stream opens with the current session and
// cart, then follows every change.
func (pc *PushController) Events(c *ctx.Context) {
	stream, err := sse.New(c.W, c.R)
	if err != nil {
		c.Error(http.StatusInternalServerError, err.Error())
		return
	}

	gauge := metrics.PushClients.WithLabelValues("sse")
	gauge.Inc()
	defer gauge.Dec()

	// Callbacks run on the mutating goroutine, so they only enqueue.
	log := c.Log()
	out := make(chan Push, 64)
	enqueue := func(p Push) {
		select {
		case out <- p:
		default:
			log.Warn("sse: client too slow, dropping event", "event", p.Event)
		}
	}

	stopSession := pc.session.Subscribe(func(u *models.User) {
		enqueue(Push{Event: services.EventSessionChanged, Data: u})
	})
	defer stopSession()
	stopCart := pc.cart.Subscribe(func(items []models.CartItem) {
		enqueue(Push{Event: services.EventCartUpdated, Data: items})
	})
	defer stopCart()
	stopOrders := pc.bus.Listen(services.EventOrderPlaced, func(p any) {
		enqueue(Push{Event: services.EventOrderPlaced, Data: p})
	})
	defer stopOrders()

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-stream.Done():
			return
		case p := <-out:
			if err := stream.Send(p.Event, p.Data); err != nil {
				return
			}
		case <-ticker.C:
			if err := stream.Comment("ping"); err != nil {
				return
			}
		}
	}
}
