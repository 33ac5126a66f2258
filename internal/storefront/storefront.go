// Package storefront is the composition root: it opens persistent storage,
// restores the session, picks the API binding once, and wires the checkout
// flow. The rest of the application only sees the assembled pieces.
package storefront

import (
	"io"
	"log"
	"net/url"

	"auctionfront/internal/api"
	"auctionfront/internal/api/httpapi"
	"auctionfront/internal/api/mockapi"
	"auctionfront/internal/checkout"
	"auctionfront/internal/config"
	"auctionfront/internal/payment"
	"auctionfront/internal/session"
	"auctionfront/internal/storage"
)

type Storefront struct {
	Config   config.Config
	Store    *storage.Store
	Session  *session.Session
	Client   api.Client
	Gateway  payment.Gateway
	Flow     *checkout.Flow
	Wishlist *checkout.Wishlist

	logger *log.Logger
}

// New assembles the storefront. The binding choice between mock and remote
// is made exactly once, here.
func New(cfg config.Config, logger *log.Logger) (*Storefront, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	store, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	sess, err := session.Init(store)
	if err != nil {
		return nil, err
	}

	var client api.Client
	if cfg.UseMock {
		backend := mockapi.NewBackend(cfg.CatalogSeed, store, logger)
		client = mockapi.NewClient(backend, sess, cfg.MockLatency)
	} else {
		client = httpapi.NewClient(cfg.BackendURL, sess, logger)
	}

	gateway := payment.NewHostedWidget(cfg.PaymentWidgetURL, cfg.PaymentClientKey)
	flow := checkout.NewFlow(client, gateway, cfg.SuccessURL, cfg.FailURL, logger)

	return &Storefront{
		Config:   cfg,
		Store:    store,
		Session:  sess,
		Client:   client,
		Gateway:  gateway,
		Flow:     flow,
		Wishlist: checkout.NewWishlist(store, sess),
		logger:   logger,
	}, nil
}

// HandleOAuthCallback completes the social-login redirect by adopting the
// accessToken query parameter as the bearer token.
func (s *Storefront) HandleOAuthCallback(query url.Values) error {
	return s.Session.HandleOAuthCallback(query)
}
