package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/flashdeck/internal/api"
	"github.com/pdiddy/flashdeck/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pipeline over HTTP",
	Long: `Serve exposes the pipeline on an HTTP API for interactive frontends:

  GET  /api/health   liveness probe
  POST /api/parse    pasted list -> deck JSON
  POST /api/ocr      image upload -> extracted text (add ?parse=true for cards)
  POST /api/pdf      deck + options JSON -> PDF download
  GET  /api/qr       share-link QR PNG`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = viper.GetString("server.port")
	}
	if port == "" {
		port = "8080"
	}

	srvCfg := types.ServerConfig{
		Port:           port,
		MaxUploadBytes: viper.GetInt64("server.max_upload_bytes"),
	}

	s := api.NewServer(ocrConfig(cmd), srvCfg)

	r := gin.Default()
	s.RegisterRoutes(r)

	fmt.Fprintf(os.Stderr, "flashdeck listening on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func init() {
	serveCmd.Flags().String("port", "", "TCP port to listen on (default: 8080)")
	serveCmd.Flags().String("api-key", "", "OCR.space API key")
	serveCmd.Flags().String("language", "", "OCR language code (default: eng)")

	rootCmd.AddCommand(serveCmd)
}
