package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TemirB/orders-admin/internal/returns"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(ServerTimingApp(s.metrics))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})
	r.Get("/healthz", s.handleHealth)
	if s.opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/admin", func(r chi.Router) {
		r.Use(cors(s.opts.CORS.Admin))

		r.Get("/orders", s.handleOrders)
		r.Get("/orders/{id}", s.handleOrder)
		r.Get("/orders/{id}/preview", s.handleOrderPreview)

		r.Get("/payments/{id}", s.handlePayment)
		r.Post("/payments/{id}/refund", s.handleRefund)

		r.Route("/returns", func(r chi.Router) {
			r.Get("/", s.handleReturns)
			r.Post("/", s.handleInitiateReturn)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleReturn)
				r.Post("/", command(s, (*returns.Hooks).UpdateReturn, nil))

				r.Post("/request", command(s, (*returns.Hooks).ConfirmReturnRequest, nil))
				r.Delete("/request", command(s, (*returns.Hooks).CancelReturnRequest, nil))
				r.Post("/request-items", command(s, (*returns.Hooks).AddReturnItems, nil))
				r.Post("/request-items/{action}", command(s, (*returns.Hooks).UpdateReturnItem, bindItemAction))
				r.Delete("/request-items/{action}", command(s, (*returns.Hooks).RemoveReturnItem, bindAction))

				r.Post("/shipping-method", command(s, (*returns.Hooks).AddReturnShipping, nil))
				r.Post("/shipping-method/{action}", command(s, (*returns.Hooks).UpdateReturnShipping, bindShippingAction))
				r.Delete("/shipping-method/{action}", command(s, (*returns.Hooks).DeleteReturnShipping, bindAction))

				r.Post("/receive", command(s, (*returns.Hooks).InitiateReceive, nil))
				r.Delete("/receive", command(s, (*returns.Hooks).CancelReceive, nil))
				r.Post("/receive/confirm", command(s, (*returns.Hooks).ConfirmReceive, nil))
				r.Post("/receive/submit", s.handleSubmitReceive)
				r.Post("/receive-items", command(s, (*returns.Hooks).AddReceiveItems, nil))
				r.Post("/receive-items/{action}", command(s, (*returns.Hooks).UpdateReceiveItem, bindItemAction))
				r.Delete("/receive-items/{action}", command(s, (*returns.Hooks).RemoveReceiveItem, bindAction))

				r.Post("/dismiss-items", command(s, (*returns.Hooks).AddDismissItems, nil))
				r.Post("/dismiss-items/{action}", command(s, (*returns.Hooks).UpdateDismissItem, bindItemAction))
				r.Delete("/dismiss-items/{action}", command(s, (*returns.Hooks).RemoveDismissItem, bindAction))
			})
		})

		if s.opts.Journal != nil {
			r.Get("/journal", s.handleJournal)
		}
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(cors(s.opts.CORS.Auth))
		r.Get("/session", s.handleSessionProbe)
	})

	r.Route("/store", func(r chi.Router) {
		r.Use(cors(s.opts.CORS.Store))
		r.Get("/health", s.handleStoreHealth)
	})

	return r
}
