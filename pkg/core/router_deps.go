package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-api/pkg/endpoint"
	"github.com/joeydtaylor/steeze-api/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/steeze-api/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	LogMW    *logger.Middleware
	Metrics  http.Handler
	Router   httpx.Router
	Log      *zap.Logger
	State    *endpoint.State
	Registry *Registry
}
