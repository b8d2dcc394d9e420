package focus

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	httperr "github.com/aevon-lab/anomaly-explorer/internal/core/errors"
	"github.com/aevon-lab/anomaly-explorer/internal/core/job"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	loadingWriteTimeout = 5 * time.Second
	loadingPingInterval = 30 * time.Second
)

var loadingUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(strings.TrimSpace(r.Host))
		originHost := strings.ToLower(strings.TrimSpace(u.Host))
		return host == originHost
	},
}

// loadingMessage is one frame of the loading stream.
type loadingMessage struct {
	DataLoading bool      `json:"dataLoading"`
	At          time.Time `json:"at"`
}

// HandleLoadingStream handles GET /v1/jobs/:job_id/loading. It upgrades to a
// WebSocket that receives the current loading flag, then every change, until
// the client goes away. Unknown jobs are rejected before the upgrade.
func (s *Service) HandleLoadingStream(c *gin.Context) {
	if _, err := s.jobs.Get(c.Request.Context(), c.Param("job_id")); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpJobNotFoundError,
				Message:   "Job not found",
				Details:   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to look up job",
			Details:   err.Error(),
		})
		return
	}

	conn, err := loadingUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	s.serveLoadingConnection(conn)
}

func (s *Service) serveLoadingConnection(conn *websocket.Conn) {
	defer conn.Close()

	// Buffer of one: only the latest flag matters to a slow reader.
	updates := make(chan bool, 1)
	unsubscribe := s.DataLoading().Subscribe(func(v bool) {
		select {
		case updates <- v:
		default:
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- v:
			default:
			}
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(loadingPingInterval)
	defer ticker.Stop()

	for {
		select {
		case v := <-updates:
			if err := writeLoadingPayload(conn, loadingMessage{DataLoading: v, At: s.nowFn().UTC()}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(loadingWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeLoadingPayload(conn *websocket.Conn, payload loadingMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(loadingWriteTimeout))
	return conn.WriteJSON(payload)
}
