package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/agrisense/agri-advisor/internal/advisor"
	"github.com/agrisense/agri-advisor/internal/config"
	"github.com/agrisense/agri-advisor/internal/expand"
	"github.com/agrisense/agri-advisor/internal/fetch"
	"github.com/agrisense/agri-advisor/internal/resilience"
	"github.com/agrisense/agri-advisor/internal/server"
	"github.com/agrisense/agri-advisor/pkg/gemini"
	"github.com/agrisense/agri-advisor/pkg/perplexity"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the advisory HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate(); err != nil {
			return err
		}

		adv, err := buildAdvisor(ctx, cfg)
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: server.New(adv).Handler(),
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// buildAdvisor wires the provider clients and pipeline stages from config.
func buildAdvisor(ctx context.Context, cfg *config.Config) (*advisor.Advisor, error) {
	pplx := perplexity.NewClient(cfg.Perplexity.Key,
		perplexity.WithBaseURL(cfg.Perplexity.BaseURL),
		perplexity.WithModel(cfg.Perplexity.Model),
		perplexity.WithTimeout(time.Duration(cfg.Perplexity.TimeoutSecs)*time.Second),
		perplexity.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.Perplexity.RatePerSec), 1)),
	)

	llm, err := gemini.NewClient(ctx, cfg.Gemini.Key)
	if err != nil {
		return nil, eris.Wrap(err, "gemini client")
	}

	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.MaxAttempts = cfg.Retry.MaxAttempts

	return advisor.New(
		fetch.New(pplx, fetch.WithRetryConfig(retryCfg)),
		expand.New(llm),
		llm,
		advisor.Models{
			Pro:    cfg.Gemini.ProModel,
			Flash:  cfg.Gemini.FlashModel,
			Vision: cfg.Gemini.VisionModel,
		},
	), nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
