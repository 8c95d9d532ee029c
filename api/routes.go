package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/harborview-labs/finance-server/internal/auth"
	"github.com/harborview-labs/finance-server/internal/handlers/v1/account"
	"github.com/harborview-labs/finance-server/internal/handlers/v1/category"
	"github.com/harborview-labs/finance-server/internal/handlers/v1/status"
	"github.com/harborview-labs/finance-server/internal/handlers/v1/transaction"
	"github.com/harborview-labs/finance-server/internal/handlers/v1/user"
	"github.com/harborview-labs/finance-server/internal/logging"
	"github.com/harborview-labs/finance-server/internal/service"
)

// publicOperations are reachable without an API token.
var publicOperations = map[string]bool{
	"register-user": true,
	"login-user":    true,
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("finance-server", "1.0.0")
	humaAPI := humago.New(mux, config)
	humaAPI.UseMiddleware(r.loggingMiddleware())
	humaAPI.UseMiddleware(r.authMiddleware(humaAPI))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteSeriesHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewSummaryHandler(r.Service.Transaction).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Service.Account).Register(humaAPI)
	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)
	user.NewRegisterHandler(r.Service.User).Register(humaAPI)
	user.NewLoginHandler(r.Service.User).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// loggingMiddleware attaches a fresh LogData to each request and emits one
// structured line per request when it completes.
func (r *Rest) loggingMiddleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(r.Logger)
		operationID := ctx.Operation().OperationID

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logging.LogDataKey, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}

// authMiddleware resolves the Authorization token to a user and stores the
// user ID on the request context. Register and login stay reachable without
// a token.
func (r *Rest) authMiddleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if publicOperations[ctx.Operation().OperationID] {
			next(ctx)
			return
		}

		token := strings.TrimPrefix(ctx.Header("Authorization"), "Token ")
		resolved, err := r.Service.User.Authenticate(ctx.Context(), token)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusInternalServerError, "authentication failed", err)
			return
		}
		if resolved == nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or missing token")
			return
		}

		next(huma.WithValue(ctx, auth.UserIDKey, resolved.ID))
	}
}
