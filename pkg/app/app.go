// Package app wires configuration, storage and services together.
package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/splitmoney/splitmoney/infra"
	eventrepo "github.com/splitmoney/splitmoney/infra/repository/event"
	reportrepo "github.com/splitmoney/splitmoney/infra/repository/report"
	rolerepo "github.com/splitmoney/splitmoney/infra/repository/role"
	txnrepo "github.com/splitmoney/splitmoney/infra/repository/transaction"
	userrepo "github.com/splitmoney/splitmoney/infra/repository/user"
	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/mailer"
	"github.com/splitmoney/splitmoney/pkg/service/auth"
	"github.com/splitmoney/splitmoney/pkg/service/dashboard"
	"github.com/splitmoney/splitmoney/pkg/service/event"
	"github.com/splitmoney/splitmoney/pkg/service/payment"
	"github.com/splitmoney/splitmoney/pkg/service/report"
	"github.com/splitmoney/splitmoney/pkg/service/role"
	"github.com/splitmoney/splitmoney/pkg/service/user"
)

type App struct {
	Config *config.App
	Logger *slog.Logger
	DB     *gorm.DB

	AuthService      *auth.Service
	UserService      *user.Service
	RoleService      *role.Service
	EventService     *event.Service
	PaymentService   *payment.Service
	ReportService    *report.Service
	DashboardService *dashboard.Service
}

// New connects storage, runs migrations and builds every service.
func New(cfg *config.App, logger *slog.Logger) (*App, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, err
	}
	if err = infra.Migrate(db); err != nil {
		return nil, err
	}

	users := userrepo.New(db)
	roles := rolerepo.New(db)
	events := eventrepo.New(db)
	txns := txnrepo.New(db)
	exports := reportrepo.New(db)

	sender := mailer.New(cfg.Smtp, logger)

	return &App{
		Config:           cfg,
		Logger:           logger,
		DB:               db,
		AuthService:      auth.New(users, roles, sender, cfg.Jwt, logger),
		UserService:      user.New(users, logger),
		RoleService:      role.New(roles, users, logger),
		EventService:     event.New(events, users, txns, logger),
		PaymentService:   payment.New(txns, events, logger),
		ReportService:    report.New(events, txns, exports, logger),
		DashboardService: dashboard.New(users, events, txns, logger),
	}, nil
}
