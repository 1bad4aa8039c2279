package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cagegit/hotel-front-desk-agent/internal/infra/db"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/idscan"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/memstore"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/notify"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/repository"
	"github.com/cagegit/hotel-front-desk-agent/internal/infra/session"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/config"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/commands"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/queries"
	"github.com/cagegit/hotel-front-desk-agent/internal/usecase/shared"

	"go.uber.org/fx"
)

// BackendsModule selects every collaborator implementation exactly once, at
// process start, from BackendConfig. There is no per-call fallback: a flow
// that loses a backend mid-request fails that request.
var BackendsModule = fx.Module("backends",
	fx.Provide(
		NewPMSBackends,
		NewIdentityService,
		NewStaffNotifier,
		NewSessionStore,
	),
)

// PMSBackends bundles the four ports served by the property-management
// backend, so both modes can hand out one coherent set.
type PMSBackends struct {
	fx.Out

	Registry          commands.GuestRegistry
	Rooms             commands.RoomManager
	RoomReader        queries.RoomReader
	ReservationReader queries.ReservationReader
}

func NewPMSBackends(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (PMSBackends, error) {
	switch cfg.Backend.PMSMode {
	case "memory":
		store := memstore.NewSeededStore()
		logger.Info("using in-memory property management backend with seeded fixtures")
		return PMSBackends{
			Registry:          store,
			Rooms:             store,
			RoomReader:        store,
			ReservationReader: store,
		}, nil

	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return PMSBackends{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		registry := repository.NewGuestRegistryRepository(pool)
		rooms := repository.NewRoomManagerRepository(pool)
		logger.Info("using postgres property management backend", "host", cfg.DB.Host)
		return PMSBackends{
			Registry:          registry,
			Rooms:             rooms,
			RoomReader:        rooms,
			ReservationReader: registry,
		}, nil

	default:
		return PMSBackends{}, fmt.Errorf("unknown PMS_MODE %q", cfg.Backend.PMSMode)
	}
}

func NewIdentityService(cfg config.Config, logger *slog.Logger) (commands.IdentityService, error) {
	switch cfg.Backend.IdentityMode {
	case "mock":
		logger.Info("using mock identity service")
		return idscan.NewMockService(), nil
	case "live":
		logger.Info("using live identity service", "base_url", cfg.Identity.BaseURL)
		return idscan.NewClient(cfg.Identity), nil
	default:
		return nil, fmt.Errorf("unknown IDENTITY_MODE %q", cfg.Backend.IdentityMode)
	}
}

func NewStaffNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.StaffNotifier, error) {
	switch cfg.Backend.NotifyMode {
	case "log":
		return notify.NewLogNotifier(logger), nil
	case "mqtt":
		notifier, err := notify.NewMQTTNotifier(cfg.Notify)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				notifier.Close()
				return nil
			},
		})
		logger.Info("using mqtt staff notifier", "broker", cfg.Notify.Broker)
		return notifier, nil
	default:
		return nil, fmt.Errorf("unknown NOTIFY_MODE %q", cfg.Backend.NotifyMode)
	}
}

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.SessionStore, error) {
	switch cfg.Backend.SessionMode {
	case "memory":
		return session.NewMemoryStore(cfg.Session.TTL), nil
	case "redis":
		client, err := session.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("using redis session store", "addr", cfg.Redis.Addr)
		return session.NewRedisStore(client, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_MODE %q", cfg.Backend.SessionMode)
	}
}
