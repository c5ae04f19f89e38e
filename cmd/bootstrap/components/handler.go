package components

import (
	"highway-booking/internal/handler"
	"highway-booking/internal/handler/api"
	"highway-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(app config.AppConfig, pool *pgxpool.Pool) *api.SystemHandler {
			return api.NewSystemHandler(app, pool)
		},
		api.NewExperienceHandler,
		api.NewBookingHandler,
		api.NewPromoHandler,
		func(
			system *api.SystemHandler,
			experience *api.ExperienceHandler,
			booking *api.BookingHandler,
			promo *api.PromoHandler,
		) handler.Handlers {
			return handler.Handlers{
				System:     system,
				Experience: experience,
				Booking:    booking,
				Promo:      promo,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
