// internal/handlers/http/deps.go
// Injection dependencies dari app ke handler (pola Set*)

package http

import (
	"github.com/sirupsen/logrus"

	"pdp-dashboard/internal/dashboard"
	"pdp-dashboard/internal/notify"
	"pdp-dashboard/internal/store"
)

var (
	ctrl    *dashboard.Controller
	st      *store.Store
	notices *notify.Center
	logg    = logrus.New()
)

func SetController(c *dashboard.Controller) { ctrl = c }
func SetStore(s *store.Store)               { st = s }
func SetNotices(n *notify.Center)           { notices = n }
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logg = l
	}
}
