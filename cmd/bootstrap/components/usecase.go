package components

import (
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewTransactionCommands,
		commands.NewBookCommands,
		commands.NewAccountCommands,
		commands.NewReviewCommands,
		commands.NewAccountSeeder,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTransactionQueries,
		queries.NewBookQueries,
		queries.NewAccountQueries,
		queries.NewReviewQueries,
	),
)
