package main

import (
	"taai-api/biz/adaptor/middleware"
	"taai-api/biz/infrastructure/config"
	"taai-api/biz/infrastructure/util/log"
	"taai-api/provider"

	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func init() {
	otel.SetTextMapPropagator(b3.New())
}

func main() {
	p, err := provider.NewProvider()
	if err != nil {
		panic(err)
	}

	h := newServer(p.Config)
	customizedRegister(h, p)
	log.Info("server start, listen on %s", p.Config.ListenOn)
	h.Spin()
}

func newServer(c *config.Config) *server.Hertz {
	tracer, cfg := tracing.NewServerTracer()
	opts := []hertzconfig.Option{
		server.WithHostPorts(c.ListenOn),
		server.WithReadTimeout(c.ReadTimeout),
		server.WithWriteTimeout(c.WriteTimeout),
		server.WithExitWaitTime(c.ExitWaitTime),
		server.WithMaxRequestBodySize(c.MaxRequestBodySize),
		tracer,
	}
	if c.Metrics.ListenOn != "" {
		opts = append(opts, server.WithTracer(prometheus.NewServerTracer(c.Metrics.ListenOn, c.Metrics.Path)))
	}

	h := server.New(opts...)
	h.Use(
		recovery.Recovery(),
		tracing.ServerMiddleware(cfg),
		middleware.AccessLog(),
		middleware.CORS(),
	)
	return h
}
