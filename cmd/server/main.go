package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	pb "meeting-scheduler/api/meeting/v1"
	"meeting-scheduler/internal/auth"
	"meeting-scheduler/internal/config"
	"meeting-scheduler/internal/dashboard"
	gweb "meeting-scheduler/internal/grpcweb"
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/httpapi"
	"meeting-scheduler/internal/logging"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/session"
	"meeting-scheduler/internal/store"
	"meeting-scheduler/internal/store/memory"
	"meeting-scheduler/internal/store/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "meeting-scheduler:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, closer, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		if secret, err = auth.RandomSecret(); err != nil {
			return err
		}
		log.Warn("JWT_SECRET not set, using a random key; sessions end on restart")
	}

	// storage
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer pg.Close()
		log.Info("connected to postgres")
		st = pg
	} else {
		st = memory.NewStore()
		log.Info("using in-memory store")
	}

	board := dashboard.New(st, log)
	seed := dashboard.DefaultSeed()
	if cfg.SeedFile != "" {
		if seed, err = dashboard.LoadSeed(cfg.SeedFile); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	if _, err := board.Seed(ctx, seed); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	authn, err := session.NewAuthenticator(session.Config{
		Email:    cfg.DemoEmail,
		Password: cfg.DemoPassword,
		Secret:   secret,
		TTL:      cfg.TokenTTL,
	}, log)
	if err != nil {
		return err
	}

	rl := middleware.NewRateLimiter(cfg.LoginRPS, cfg.LoginBurst)

	// grpc server
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.RateLimit(rl),
			middleware.Auth(authn),
		),
	)
	pb.RegisterMeetingServiceServer(srv, handler.New(board, authn, log))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.Dial(dialAddr(cfg.GRPCAddr), log)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	defer bridge.Close()

	gin.SetMode(gin.ReleaseMode)
	api := httpapi.New(board, authn, rl, log)
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Router(bridge.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rl.Run(gctx)
		return nil
	})
	g.Go(func() error {
		api.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info("grpc listening", "addr", cfg.GRPCAddr)
		return srv.Serve(lis)
	})
	g.Go(func() error {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := httpSrv.Shutdown(shutdownCtx)
		srv.GracefulStop()
		return err
	})

	return g.Wait()
}

// dialAddr turns a listen address such as ":50051" into one the bridge can dial.
func dialAddr(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
