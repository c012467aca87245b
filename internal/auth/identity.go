package auth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Identity is a user as described by the identity provider.
type Identity struct {
	Subject   string
	Name      string
	Username  string
	Email     string
	AvatarURL string
}

// Identity webhook event types.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// IdentityEvent is a decoded identity webhook delivery.
type IdentityEvent struct {
	Type     string
	Identity Identity
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		Username       string `json:"username"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		PrimaryEmailID string `json:"primary_email_address_id"`
		EmailAddresses []struct {
			ID    string `json:"id"`
			Email string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// ParseIdentityEvent decodes a verified webhook body.
func ParseIdentityEvent(body []byte) (IdentityEvent, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return IdentityEvent{}, fmt.Errorf("decode identity event: %w", err)
	}
	if p.Type == "" || p.Data.ID == "" {
		return IdentityEvent{}, fmt.Errorf("decode identity event: missing type or id")
	}

	d := p.Data
	id := Identity{
		Subject:   d.ID,
		Username:  d.Username,
		Name:      strings.TrimSpace(d.FirstName + " " + d.LastName),
		AvatarURL: d.ImageURL,
	}
	for _, e := range d.EmailAddresses {
		if id.Email == "" || e.ID == d.PrimaryEmailID {
			id.Email = e.Email
		}
	}
	return IdentityEvent{Type: p.Type, Identity: id}, nil
}
