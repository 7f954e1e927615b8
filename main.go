package main

import (
	"context"

	"school-leave/biz/adaptor"
	"school-leave/biz/infrastructure/config"
	"school-leave/biz/infrastructure/util/log"
	"school-leave/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	if c.Seed {
		if err := provider.Get().SeedService.Reset(context.Background()); err != nil {
			log.Error("初始化数据失败: %v", err)
			panic(err)
		}
	}

	h := server.New(
		server.WithHostPorts(c.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(c.Metrics.ListenOn, c.Metrics.Path)),
	)
	h.Use(func(ctx context.Context, rc *app.RequestContext) {
		ctx = adaptor.InjectContext(ctx, rc)
		rc.Next(ctx)
	})
	customizedRegister(h)
	h.Spin()
}
