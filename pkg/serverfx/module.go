package serverfx

import (
	"net/http"
	"os"

	"github.com/ericjank/hyperf/pkg/container"
	"github.com/ericjank/hyperf/pkg/dispatch"
	"github.com/ericjank/hyperf/pkg/manifest"
	"github.com/ericjank/hyperf/pkg/middleware/logger"
	"github.com/ericjank/hyperf/pkg/middleware/metrics"
	"github.com/ericjank/hyperf/pkg/router"
	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	Service          string // for logs only
	ManifestEnv      string // e.g., SERVER_MANIFEST
	DefaultManifest  string // e.g., "manifest.toml"
	ListenEnv        string // SERVER_LISTEN_ADDRESS
	TLSCertEnv       string // SSL_SERVER_CERTIFICATE
	TLSKeyEnv        string // SSL_SERVER_KEY
	MetricsSkipPaths []string
}

type Option func(*Config)

func WithService(s string) Option            { return func(c *Config) { c.Service = s } }
func WithManifestEnv(k string) Option        { return func(c *Config) { c.ManifestEnv = k } }
func WithDefaultManifest(path string) Option { return func(c *Config) { c.DefaultManifest = path } }
func WithListenEnv(k string) Option          { return func(c *Config) { c.ListenEnv = k } }
func WithTLSCertKeyEnv(cert, key string) Option {
	return func(c *Config) { c.TLSCertEnv, c.TLSKeyEnv = cert, key }
}
func WithMetricsSkipPaths(paths ...string) Option {
	return func(c *Config) { c.MetricsSkipPaths = append(c.MetricsSkipPaths, paths...) }
}

func defaultConfig() Config {
	return Config{
		Service:         "app",
		ManifestEnv:     "SERVER_MANIFEST",
		DefaultManifest: "manifest.toml",
		ListenEnv:       "SERVER_LISTEN_ADDRESS",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

// Module returns a complete Fx option set; register controllers,
// signatures and inline handlers before the app starts (or via
// fx.Invoke alongside).
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		logger.Module,
		fx.Provide(fx.Annotate(metrics.ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
		// Config into DI
		fx.Provide(func() Config { return cfg }),
		// Resolution service + method signatures
		fx.Provide(container.New),
		fx.Provide(dispatch.NewMethodTable),
		fx.Provide(func(t *dispatch.MethodTable) dispatch.SignatureProvider { return t }),
		// Manifest, matcher, dispatch core
		fx.Provide(provideManifest),
		fx.Provide(provideMatcher),
		fx.Provide(provideCore),
		// App handler chain (named "app")
		fx.Provide(fx.Annotate(
			provideApp,
			fx.ResultTags(`name:"app"`),
		)),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

// ---------- Providers ----------

func provideManifest(cfg Config, zl *zap.Logger) manifest.Config {
	path := envOr(cfg.ManifestEnv, cfg.DefaultManifest)
	man, err := manifest.Load(path)
	if err != nil {
		zl.Fatal("manifest load failed", zap.Error(err), zap.String("path", path))
	}
	return man
}

func provideMatcher(man manifest.Config, zl *zap.Logger) router.Matcher {
	m := router.NewChi()
	for _, rt := range man.Routes {
		var ref router.HandlerRef
		switch rt.Handler.Type {
		case manifest.HandlerInline:
			fn, ok := router.LookupInline(rt.Handler.Name)
			if !ok {
				zl.Fatal("inline handler not registered",
					zap.String("name", rt.Handler.Name),
					zap.String("path", rt.Path),
				)
			}
			ref = router.Inline(fn)
		case manifest.HandlerController:
			ref = router.Bound(rt.Handler.Target, rt.Handler.Method)
		}
		m.Handle(rt.Method, rt.Path, ref)
	}
	return m
}

func provideCore(c *container.Container, sigs dispatch.SignatureProvider, man manifest.Config, zl *zap.Logger) *dispatch.Core {
	binder := dispatch.NewBinder(sigs, c)
	invoker := dispatch.NewInvoker(c, binder)
	return dispatch.NewCore(invoker,
		dispatch.WithServerName(man.Server.Name),
		dispatch.WithLogger(zl),
	)
}

type appDeps struct {
	fx.In

	Cfg     Config
	LogMW   *logger.Middleware
	Metrics http.Handler `name:"metrics"`
	Matcher router.Matcher
	Core    *dispatch.Core
	Log     *zap.Logger
}

func provideApp(d appDeps) http.Handler {
	mx := chi.NewRouter()
	mx.Use(chimd.RequestID, chimd.Recoverer)
	mx.Use(d.LogMW.Middleware())
	mx.Use(metrics.Collect(
		metrics.WithSkipPaths(d.Cfg.MetricsSkipPaths...),
		metrics.WithPathNormalizer(routePatternNormalizer(d.Matcher)),
	))

	mx.Handle("/metrics", d.Metrics)
	mx.Handle("/*", dispatch.NewHTTPHandler(d.Matcher, d.Core, d.Log))
	return mx
}

// routePatternNormalizer collapses request paths onto their registered
// route pattern so uri label cardinality tracks the route table, not
// the traffic.
func routePatternNormalizer(m router.Matcher) func(*http.Request) string {
	return func(r *http.Request) string {
		if out := m.Match(r.Method, r.URL.Path); out.Status == router.StatusFound && out.Pattern != "" {
			return out.Pattern
		}
		return r.URL.Path
	}
}

// ---------- tiny helpers ----------

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
