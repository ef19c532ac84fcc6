package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/crossplay/xword/internal/httpapi"
	"github.com/crossplay/xword/pkg/engine"
	"github.com/crossplay/xword/pkg/grid"
)

var serveFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve one grid over HTTP for an external client",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveFile, "file", "", "grid file to load before serving (defaults to a blank 15x15 grid)")
}

func runServe(c *cobra.Command, args []string) error {
	var e *engine.Engine
	if serveFile != "" {
		loaded, err := loadEngine(serveFile)
		if err != nil {
			return err
		}
		e = loaded
	} else {
		e = engine.New(15, 15, engine.NewMetadata("Untitled", "", grid.Medium))
	}

	if cfg.DictPath != "" {
		e.LoadDeferred(cfg.DictPath)
	}

	router := gin.Default()
	httpapi.NewHandlers(e).Register(router)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("xword: server failed: %v", err)
		}
	}()
	fmt.Printf("xword: serving on %s\n", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("xword: server forced to shutdown: %w", err)
	}

	if serveFile != "" {
		if err := saveEngine(e, serveFile); err != nil {
			return err
		}
	}
	return nil
}
