package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/JasperRosales/aircraft-system-fe/api"
	"github.com/JasperRosales/aircraft-system-fe/applog"
	"github.com/JasperRosales/aircraft-system-fe/model"
)

func main() {
	server := flag.String("server", "", "API server address (overrides SERVER_API)")
	logPath := flag.String("log", "", "Path to a log file (diagnostics are dropped when unset)")
	flag.Parse()

	// Load .env from the working directory (ignore error if it doesn't exist)
	_ = godotenv.Load()

	base := *server
	if base == "" {
		base = os.Getenv("SERVER_API")
	}

	log := applog.Discard()
	if *logPath != "" {
		var err error
		log, err = applog.New(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer log.Close()
	}

	client := api.NewClient(base)
	log.Info("using API at %s", client.Base())

	m := model.New(model.NewServices(client, log))
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
