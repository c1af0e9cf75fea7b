package routers

import (
	"confidant-service/internal/app/delivery/http/controllers"
	"confidant-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(
	r chi.Router,
	mw *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
) {
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Post("/initialize", paymentController.InitializePayment)
	})

	// The gateway calls these without a bearer token; the webhook is
	// authenticated by its signature instead.
	r.Get("/callback", paymentController.VerifyCallback)
	r.Post("/webhook", paymentController.HandleWebhook)
}
