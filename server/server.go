// Package server exposes the durable conversation store over HTTP so
// multiple dashboard instances can share one dataset.
package server

import (
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/smerlos/convoset/server/data"
	"github.com/smerlos/convoset/server/db"
)

const DefaultAddr = ":11436"

type server struct {
	addr   net.Addr
	db     *sql.DB
	models *data.Models
}

func Serve(ln net.Listener) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal("Failed to get home directory:", err)
	}

	dsn := filepath.Join(homeDir, ".convoset", "convoset.db")

	database, err := db.OpenDB(db.Config{
		Dsn:          dsn,
		MaxOpenConns: 25,
		MaxIdleConns: 25,
		MaxIdleTime:  "15m",
	}, data.Schema)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err.Error())
	}
	defer database.Close()

	srv := &server{
		addr:   ln.Addr(),
		db:     database,
		models: data.NewModels(database),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/conversations", srv.conversationHandler)
	mux.HandleFunc("/conversations/", srv.conversationHandler)

	httpServer := &http.Server{Handler: mux, Addr: DefaultAddr}
	return httpServer.Serve(ln)
}
