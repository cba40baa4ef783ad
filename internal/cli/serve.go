package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"h2_simulator/internal/httpapi"
	"h2_simulator/internal/ws"
)

func newServeCmd() *cobra.Command {
	var (
		addr        string
		frontendDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(cmd)
			if err != nil {
				return err
			}

			log := logger()

			hub := ws.NewHub(log)
			wsHandler := ws.NewHandler(hub, s, log)
			apiHandler := httpapi.NewHandler(s, log)

			r := mux.NewRouter()
			apiHandler.RegisterRoutes(r.PathPrefix("/api").Subrouter())
			r.Handle("/ws", wsHandler)
			r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, "ok")
			}).Methods("GET")

			// Serve frontend static files when a build is present
			if _, err := os.Stat(frontendDir); err == nil {
				log.Info().Str("dir", frontendDir).Msg("serving frontend")
				r.PathPrefix("/").Handler(http.FileServer(http.Dir(frontendDir)))
			}

			log.Info().Str("addr", addr).Msg("starting server")
			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&frontendDir, "frontend-dir", "frontend/build", "directory containing frontend build")

	return cmd
}
