package dashboard

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/middleware"
	dashboardsvc "github.com/splitmoney/splitmoney/pkg/service/dashboard"
	"github.com/splitmoney/splitmoney/webapi/common"
)

// Stream pushes dashboard stats over server-sent events. The stats are
// polled on an interval and only emitted when their content changes; a
// comment line is sent as heartbeat to keep intermediaries from closing the
// connection. The loop stops when the client disconnects.
func Stream(
	dashboardSvc *dashboardsvc.Service,
	cfg *config.Stream,
	logger *slog.Logger,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		isAdmin := middleware.IsAdmin(c)

		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			streamStats(w, dashboardSvc, cfg, logger, userID, isAdmin)
		}))
		return nil
	}
}

func streamStats(
	w *bufio.Writer,
	dashboardSvc *dashboardsvc.Service,
	cfg *config.Stream,
	logger *slog.Logger,
	userID uuid.UUID,
	isAdmin bool,
) {
	log := logger.With("context", "Stream", "userID", userID, "admin", isAdmin)
	log.Debug("Stream opened")

	poll := time.NewTicker(cfg.PollInterval)
	defer poll.Stop()
	heartbeat := time.NewTicker(cfg.HeartbeatInterval)
	defer heartbeat.Stop()

	var lastHash [sha256.Size]byte

	// emit fetches the snapshot and writes it when it changed since the
	// last send. A flush error means the client went away.
	emit := func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.PollInterval)
		defer cancel()

		var payload any
		var err error
		if isAdmin {
			payload, err = dashboardSvc.AdminStats(ctx)
		} else {
			payload, err = dashboardSvc.UserStats(ctx, userID)
		}
		if err != nil {
			log.Error("Stream snapshot failed", "error", err)
			return true
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			log.Error("Stream encode failed", "error", err)
			return true
		}
		hash := sha256.Sum256(raw)
		if hash == lastHash {
			return true
		}
		lastHash = hash

		fmt.Fprintf(w, "event: stats\ndata: %s\n\n", raw)
		if err := w.Flush(); err != nil {
			return false
		}
		return true
	}

	if !emit() {
		log.Debug("Stream closed")
		return
	}
	for {
		select {
		case <-poll.C:
			if !emit() {
				log.Debug("Stream closed")
				return
			}
		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			if err := w.Flush(); err != nil {
				log.Debug("Stream closed")
				return
			}
		}
	}
}
