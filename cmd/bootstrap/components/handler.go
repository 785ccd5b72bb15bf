package components

import (
	"library-backend/internal/domain/access"
	"library-backend/internal/handler"
	"library-backend/internal/handler/api"
	"library-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		access.NewDefaultGate,
		middleware.NewAuthorizer,
		api.NewAuthHandler,
		api.NewTransactionHandler,
		api.NewBookHandler,
		api.NewAccountHandlers,
		api.NewReviewHandler,
		func(
			auth *api.AuthHandler,
			transactions *api.TransactionHandler,
			books *api.BookHandler,
			accounts *api.AccountHandlers,
			reviews *api.ReviewHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				Transactions: transactions,
				Books:        books,
				Accounts:     accounts,
				Reviews:      reviews,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
