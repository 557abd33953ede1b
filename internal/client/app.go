package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaughan-dsouza/bistro/internal/models"
)

var ErrLoginRequired = errors.New("please login to make a reservation")

// App ties the API client to session storage. Every action is a single round trip;
// failures are returned to the caller untouched.
type App struct {
	api   *Client
	store Store
}

func NewApp(api *Client, store Store) *App {
	return &App{api: api, store: store}
}

// Init restores the last saved session.
func (a *App) Init() (Session, error) {
	return a.store.Load()
}

func (a *App) Signup(ctx context.Context, name, email, password string) (Session, error) {
	res, err := a.api.Signup(ctx, name, email, password)
	if err != nil {
		return Session{}, err
	}
	return a.persist(res)
}

func (a *App) Login(ctx context.Context, email, password string) (Session, error) {
	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	return a.persist(res)
}

// Logout always returns the anonymous session, even if clearing storage fails.
func (a *App) Logout() (Session, error) {
	return Session{}, a.store.Clear()
}

func (a *App) Menu(ctx context.Context) ([]models.MenuItem, error) {
	return a.api.Menu(ctx)
}

func (a *App) Reserve(ctx context.Context, s Session, res NewReservation) (*models.Reservation, error) {
	if !s.LoggedIn() {
		return nil, ErrLoginRequired
	}
	return a.api.CreateReservation(ctx, s.Token, res)
}

// MyReservations returns nothing for an anonymous session without calling the API.
func (a *App) MyReservations(ctx context.Context, s Session) ([]models.Reservation, error) {
	if !s.LoggedIn() {
		return nil, nil
	}
	return a.api.MyReservations(ctx, s.Token)
}

func (a *App) AddMenuItem(ctx context.Context, s Session, item NewMenuItem) (*models.MenuItem, error) {
	if !s.LoggedIn() {
		return nil, errors.New("please login to add menu items")
	}
	return a.api.CreateMenuItem(ctx, s.Token, item)
}

func (a *App) persist(res *AuthResponse) (Session, error) {
	s := Session{Token: res.Token, User: res.User}
	if err := a.store.Save(s); err != nil {
		return s, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}
