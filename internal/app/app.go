package app

import (
	"log/slog"

	"chaincraft/internal/domain"
)

// App is what commands see: the identity service plus the process-wide lock
// that serializes writers sharing a data directory.
type App struct {
	Config   Config
	Log      *slog.Logger
	Identity domain.IdentityService

	lock func() (func() error, error)
}

func New(cfg Config, log *slog.Logger) (*App, error) {
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Log:      log,
		Identity: w.Identity,
		lock:     w.Store.Lock,
	}, nil
}

// Generate runs Identity.Generate while holding the data directory lock.
func (a *App) Generate(req domain.GenerateRequest) (domain.PersistedIdentity, error) {
	unlock, err := a.lock()
	if err != nil {
		return domain.PersistedIdentity{}, err
	}
	defer func() {
		if err := unlock(); err != nil {
			a.Log.Warn("release identity lock", slog.Any("err", err))
		}
	}()
	return a.Identity.Generate(req)
}
