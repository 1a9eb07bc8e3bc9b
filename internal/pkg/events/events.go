// Package events publica transições de estado (pagamentos, anúncios,
// assinaturas) em um canal Redis; o servidor assina o canal e repassa ao
// usuário conectado via WebSocket.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

const ChannelStatusEvents = "anonimax_status_events"

// Tipos de evento
const (
	TypePaymentVerified       = "payment_verified"
	TypePaymentRejected       = "payment_rejected"
	TypeListingApproved       = "listing_approved"
	TypeListingRejected       = "listing_rejected"
	TypeSubscriptionActivated = "subscription_activated"
)

// Mensagens padrão por tipo
var typeMessages = map[string]string{
	TypePaymentVerified:       "Pagamento verificado",
	TypePaymentRejected:       "Pagamento rejeitado",
	TypeListingApproved:       "Anúncio aprovado",
	TypeListingRejected:       "Anúncio rejeitado",
	TypeSubscriptionActivated: "Assinatura ativada",
}

// Event transição de estado entregue ao usuário afetado
type Event struct {
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	PaymentID int64  `json:"payment_id,omitempty"`
	ListingID int64  `json:"listing_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Publisher publica eventos no Redis
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Publish envia o evento; preenche a mensagem padrão quando ausente.
func (p *Publisher) Publish(ctx context.Context, evt *Event) error {
	if evt.Message == "" {
		if msg, ok := typeMessages[evt.Type]; ok {
			evt.Message = msg
		}
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.client.Publish(ctx, ChannelStatusEvents, data).Err()
}

// Subscriber assina o canal de eventos e entrega a um callback.
type Subscriber struct {
	client *redis.Client
}

func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Run consome eventos até o contexto ser cancelado.
func (s *Subscriber) Run(ctx context.Context, handle func(*Event)) error {
	sub := s.client.Subscribe(ctx, ChannelStatusEvents)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var evt Event
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("events: failed to unmarshal payload: %v", err)
				continue
			}
			handle(&evt)
		}
	}
}
