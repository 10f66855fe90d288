package dnd5e

import (
	"net/http"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// TODO: add context to functions once the upstream client accepts one
type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.MissingParam("cfg")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create dnd5e api client")
	}

	return &client{
		client: dndClient,
	}, nil
}

var keyPunctuation = strings.NewReplacer("'", "", ",", "", ".", "", "/", " ")

// Key turns a display name into an API index key, "Chain Mail" -> "chain-mail"
func Key(name string) string {
	cleaned := keyPunctuation.Replace(strings.ToLower(name))
	return strings.Join(strings.Fields(cleaned), "-")
}
