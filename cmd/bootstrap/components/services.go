package components

import (
	"context"
	"log/slog"
	"time"

	"rv-portal/internal/domain/checkout"
	"rv-portal/internal/domain/pricing"
	"rv-portal/internal/domain/signup"
	"rv-portal/internal/handler/middleware"
	"rv-portal/internal/infra/distance"
	"rv-portal/internal/infra/mailer"
	"rv-portal/internal/infra/memstore"
	"rv-portal/internal/infra/storage"
	"rv-portal/internal/pkg/clock"
	"rv-portal/internal/pkg/config"
	"rv-portal/internal/pkg/jwt"
	"rv-portal/internal/pkg/pinhash"
	"rv-portal/internal/usecase/commands"
	"rv-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServiceModule = fx.Module("service",
	domainOption,
	memstoreModule,
	externalModule,
)

var domainOption = fx.Provide(
	clock.NewRealClock,
	NewPricingTerms,
	NewCatalog,
	NewDomainPolicy,
)

var memstoreModule = fx.Module("service/memstore",
	fx.Provide(
		fx.Annotate(
			memstore.NewPINStore,
			fx.As(fx.Self()),
			fx.As(new(commands.PINStore)),
			fx.As(new(queries.PINInspector)),
		),
		fx.Annotate(
			memstore.NewEmailRegistry,
			fx.As(new(commands.EmailRegistry)),
			fx.As(new(queries.EmailLister)),
		),
		NewSweeper,
	),
	fx.Invoke(runSweeper),
)

var externalModule = fx.Module("service/external",
	fx.Provide(
		NewPINHasher,
		NewSessionIssuer,
		NewSessionValidator,
		fx.Annotate(
			NewDistanceClient,
			fx.As(new(queries.DistanceClient)),
			fx.As(new(commands.RouteDistances)),
		),
		NewStorage,
		NewMailer,
	),
)

func NewPricingTerms(cfg config.Config) (pricing.Terms, error) {
	return pricing.NewTerms(cfg.Pricing.DiscountRate, cfg.Pricing.APR, cfg.Pricing.TermMonths)
}

func NewCatalog(cfg config.Config) (*checkout.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return checkout.LoadCatalog(cfg.Catalog.Path)
	}
	return checkout.DefaultCatalog()
}

func NewDomainPolicy(cfg config.Config) signup.DomainPolicy {
	return signup.NewDomainPolicy(cfg.Signup.AllowedDomains)
}

func NewSweeper(store *memstore.PINStore, clk clock.Clock, cfg config.Config) *memstore.Sweeper {
	return memstore.NewSweeper(store, clk, cfg.Signup.SweepInterval, memstore.DefaultSweepGrace)
}

func runSweeper(lc fx.Lifecycle, sweeper *memstore.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: sweeper.Stop,
	})
}

func NewPINHasher(cfg config.Config) (commands.PINHasher, error) {
	h, err := pinhash.NewHasher(cfg.Signup.PINHashCost)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func NewSessionIssuer(s *jwt.Service) commands.SessionIssuer {
	return s
}

func NewSessionValidator(s *jwt.Service) middleware.SessionValidator {
	return s
}

func NewDistanceClient(cfg config.Config) *distance.Client {
	return distance.NewClient(cfg.Distance)
}

const storageInitTimeout = 10 * time.Second

type StorageOut struct {
	fx.Out

	Images     queries.ImageResolver
	Signatures commands.SignatureStore
}

func NewStorage(cfg config.Config) (StorageOut, error) {
	if !cfg.Storage.Enabled {
		s := storage.NewStaticStore(cfg.Storage.PublicImagePattern)
		return StorageOut{Images: s, Signatures: s}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageInitTimeout)
	defer cancel()
	s, err := storage.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		return StorageOut{}, err
	}
	return StorageOut{Images: s, Signatures: s}, nil
}

// ExposePIN reports whether issued PINs may be logged and echoed back. Never in release mode.
func ExposePIN(cfg config.Config) bool {
	return cfg.Signup.LogPIN && gin.Mode() != gin.ReleaseMode
}

func NewMailer(logger *slog.Logger, cfg config.Config) commands.Mailer {
	return mailer.NewLogMailer(logger, ExposePIN(cfg))
}
